package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alawael/platform/internal/app/models/dto"
	"github.com/alawael/platform/internal/app/services"
	"github.com/alawael/platform/internal/middleware"
)

// PointsController handles the student points balance and purchase flow
type PointsController struct {
	pointsService *services.PointsService
	logger        zerolog.Logger
}

// NewPointsController creates a new PointsController
func NewPointsController(pointsService *services.PointsService, logger zerolog.Logger) *PointsController {
	return &PointsController{
		pointsService: pointsService,
		logger:        logger,
	}
}

// Balance returns the caller's points balance
// @Summary My points balance
// @Tags points
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.PointsBalanceResponse}
// @Failure 403 {object} dto.ErrorResponse "Student role required"
// @Router /points [get]
func (c *PointsController) Balance(ctx *gin.Context) {
	userID := ctx.GetString(middleware.ContextUserID)
	points, err := c.pointsService.Balance(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.PointsBalanceResponse{Points: points}, ""))
}

// PurchaseLink returns the WhatsApp deep link for buying points
// @Summary Points purchase link
// @Description Returns a prefilled WhatsApp link for buying the standard points bundle
// @Tags points
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.PurchaseLinkResponse}
// @Router /points/purchase-link [get]
func (c *PointsController) PurchaseLink(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.pointsService.PurchaseLink(), ""))
}
