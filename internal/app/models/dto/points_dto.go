package dto

// PointsBalanceResponse reports a student's current points balance
type PointsBalanceResponse struct {
	Points int `json:"points" example:"1250"`
}

// PurchaseLinkResponse carries a prefilled WhatsApp deep link for
// buying a points bundle
type PurchaseLinkResponse struct {
	URL          string `json:"url"`
	BundlePoints int    `json:"bundlePoints" example:"1000"`
	BundlePrice  int    `json:"bundlePrice" example:"100"`
	Currency     string `json:"currency" example:"SDG"`
}
