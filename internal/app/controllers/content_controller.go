package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rcaa/rcaconnect/internal/app/models"
	"github.com/rcaa/rcaconnect/internal/app/models/dto"
	"github.com/rcaa/rcaconnect/internal/app/services"
	"github.com/rcaa/rcaconnect/internal/middleware"
	"github.com/rcaa/rcaconnect/internal/pkg/apperrors"
	"github.com/rcaa/rcaconnect/internal/pkg/helpers"
)

// ContentController handles event and notice endpoints
type ContentController struct {
	contentService *services.ContentService
}

// NewContentController creates a new ContentController
func NewContentController(contentService *services.ContentService) *ContentController {
	return &ContentController{contentService: contentService}
}

func caller(ctx *gin.Context) (int64, models.UserRole, bool) {
	id, ok := middleware.CurrentUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidToken)
		return 0, "", false
	}
	role, ok := middleware.CurrentUserRole(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidToken)
		return 0, "", false
	}
	return id, role, true
}

// ListEvents returns a page of events, newest event date first (public)
func (c *ContentController) ListEvents(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	events, pagination, err := c.contentService.ListEvents(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: events, Pagination: &pagination})
}

// GetEvent returns one event by slug (public)
func (c *ContentController) GetEvent(ctx *gin.Context) {
	event, err := c.contentService.GetEvent(ctx, ctx.Param("slug"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: event})
}

// CreateEvent creates an event (authenticated)
func (c *ContentController) CreateEvent(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	event, err := c.contentService.CreateEvent(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: event})
}

// DeleteEvent removes an event by slug (admin only)
func (c *ContentController) DeleteEvent(ctx *gin.Context) {
	if err := c.contentService.DeleteEventBySlug(ctx, ctx.Param("slug")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Event deleted"}})
}

// ListNotices returns published notices (public). Admins may pass ?all=true
// to include drafts.
func (c *ContentController) ListNotices(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	publishedOnly := true
	if ctx.Query("all") == "true" {
		if role, ok := middleware.CurrentUserRole(ctx); ok && role == models.RoleAdmin {
			publishedOnly = false
		}
	}

	notices, pagination, err := c.contentService.ListNotices(ctx, publishedOnly, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: notices, Pagination: &pagination})
}

// GetNotice returns one notice (public)
func (c *ContentController) GetNotice(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	notice, err := c.contentService.GetNotice(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: notice})
}

// CreateNotice creates a notice authored by the caller (authenticated)
func (c *ContentController) CreateNotice(ctx *gin.Context) {
	userID, _, ok := caller(ctx)
	if !ok {
		return
	}

	var req dto.CreateNoticeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	notice, err := c.contentService.CreateNotice(ctx, userID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: notice})
}

// UpdateNotice edits a notice; author or admin only
func (c *ContentController) UpdateNotice(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	userID, role, ok := caller(ctx)
	if !ok {
		return
	}

	var req dto.UpdateNoticeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	notice, err := c.contentService.UpdateNotice(ctx, id, userID, role, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: notice})
}

// DeleteNotice removes a notice; author or admin only
func (c *ContentController) DeleteNotice(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	userID, role, ok := caller(ctx)
	if !ok {
		return
	}

	if err := c.contentService.DeleteNotice(ctx, id, userID, role); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Notice deleted"}})
}
