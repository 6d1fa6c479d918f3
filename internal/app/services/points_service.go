package services

import (
	"context"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/alawael/platform/internal/app/models"
	"github.com/alawael/platform/internal/app/models/dto"
	"github.com/alawael/platform/internal/app/repositories"
	"github.com/alawael/platform/internal/pkg/apperrors"
)

// Points are sold over WhatsApp in a single fixed bundle.
const (
	pointsVendorPhone = "249925385818"
	pointsBundleSize  = 1000
	pointsBundlePrice = 100
	purchaseMessage   = "أرغب في شراء 1000 نقطة مقابل 100 جنيه سوداني"
	purchaseCurrency  = "SDG"
)

// PointsService handles the student points balance and purchase flow
type PointsService struct {
	userRepo *repositories.UserRepository
	logger   zerolog.Logger
}

// NewPointsService creates a new PointsService
func NewPointsService(userRepo *repositories.UserRepository, logger zerolog.Logger) *PointsService {
	return &PointsService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Balance returns a student's current points balance
func (s *PointsService) Balance(ctx context.Context, userID string) (int, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, apperrors.ErrUserNotFound
	}
	if user.Role != models.RoleStudent || user.Points == nil {
		return 0, apperrors.NewForbiddenError("only student accounts carry a points balance")
	}
	return *user.Points, nil
}

// PurchaseLink builds the prefilled WhatsApp deep link for buying the
// standard points bundle
func (s *PointsService) PurchaseLink() dto.PurchaseLinkResponse {
	return dto.PurchaseLinkResponse{
		URL:          "https://wa.me/" + pointsVendorPhone + "?text=" + url.QueryEscape(purchaseMessage),
		BundlePoints: pointsBundleSize,
		BundlePrice:  pointsBundlePrice,
		Currency:     purchaseCurrency,
	}
}
