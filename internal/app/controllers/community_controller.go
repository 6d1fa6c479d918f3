package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alawael/platform/internal/app/models/dto"
	"github.com/alawael/platform/internal/app/services"
	"github.com/alawael/platform/internal/middleware"
)

// CommunityController handles the community feed and study groups
type CommunityController struct {
	communityService *services.CommunityService
	logger           zerolog.Logger
}

// NewCommunityController creates a new CommunityController
func NewCommunityController(communityService *services.CommunityService, logger zerolog.Logger) *CommunityController {
	return &CommunityController{
		communityService: communityService,
		logger:           logger,
	}
}

// ListPosts returns the community feed
// @Summary List community posts
// @Description Returns all posts, most recent first, with like state resolved for the caller
// @Tags community
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.PostListResponse}
// @Router /community/posts [get]
func (c *CommunityController) ListPosts(ctx *gin.Context) {
	viewerID := ctx.GetString(middleware.ContextUserID)
	posts, err := c.communityService.ListPosts(ctx.Request.Context(), viewerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.PostListResponse{Posts: posts}, ""))
}

// CreatePost publishes a new post authored by the caller
// @Summary Publish a community post
// @Description Publishes a post at the head of the feed. An empty subject files the post under the general subject.
// @Tags community
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePostRequest true "Post content"
// @Success 201 {object} dto.APIResponse{data=dto.PostResponse}
// @Failure 400 {object} dto.ErrorResponse "Empty content"
// @Router /community/posts [post]
func (c *CommunityController) CreatePost(ctx *gin.Context) {
	var req dto.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid post payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	authorID := ctx.GetString(middleware.ContextUserID)
	post, err := c.communityService.CreatePost(ctx.Request.Context(), authorID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(post, "Post published"))
}

// ToggleLike flips the caller's like on a post
// @Summary Toggle a like
// @Description Likes the post, or removes the caller's existing like
// @Tags community
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} dto.APIResponse{data=dto.LikeResponse}
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /community/posts/{id}/like [post]
func (c *CommunityController) ToggleLike(ctx *gin.Context) {
	viewerID := ctx.GetString(middleware.ContextUserID)
	like, err := c.communityService.ToggleLike(ctx.Request.Context(), ctx.Param("id"), viewerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(like, ""))
}

// ListGroups returns the study group directory
// @Summary List study groups
// @Description Returns all study groups with membership resolved for the caller
// @Tags community
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.StudyGroupListResponse}
// @Router /community/groups [get]
func (c *CommunityController) ListGroups(ctx *gin.Context) {
	viewerID := ctx.GetString(middleware.ContextUserID)
	groups, err := c.communityService.ListGroups(ctx.Request.Context(), viewerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.StudyGroupListResponse{Groups: groups}, ""))
}

// ToggleMembership flips the caller's membership in a study group
// @Summary Join or leave a study group
// @Tags community
// @Produce json
// @Security BearerAuth
// @Param id path string true "Group ID"
// @Success 200 {object} dto.APIResponse{data=dto.JoinResponse}
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Router /community/groups/{id}/join [post]
func (c *CommunityController) ToggleMembership(ctx *gin.Context) {
	viewerID := ctx.GetString(middleware.ContextUserID)
	membership, err := c.communityService.ToggleMembership(ctx.Request.Context(), ctx.Param("id"), viewerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(membership, ""))
}
