package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rcaa/rcaconnect/internal/app/models/dto"
	"github.com/rcaa/rcaconnect/internal/app/services"
	"github.com/rcaa/rcaconnect/internal/middleware"
	"github.com/rcaa/rcaconnect/internal/pkg/helpers"
)

// CommitteeController handles committee session and roster endpoints
type CommitteeController struct {
	committeeService *services.CommitteeService
}

// NewCommitteeController creates a new CommitteeController
func NewCommitteeController(committeeService *services.CommitteeService) *CommitteeController {
	return &CommitteeController{committeeService: committeeService}
}

// GetActive returns the active session with its roster
func (c *CommitteeController) GetActive(ctx *gin.Context) {
	session, err := c.committeeService.GetActive(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: session})
}

// GetHistory returns past and present sessions, newest start date first
func (c *CommitteeController) GetHistory(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	sessions, pagination, err := c.committeeService.ListHistory(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: sessions, Pagination: &pagination})
}

// GetSession returns one session with its roster
func (c *CommitteeController) GetSession(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	session, err := c.committeeService.GetSession(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: session})
}

// CreateSession creates a committee term (admin only)
func (c *CommitteeController) CreateSession(ctx *gin.Context) {
	var req dto.CreateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	session, err := c.committeeService.CreateSession(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: session})
}

// UpdateSession edits a committee term (admin only)
func (c *CommitteeController) UpdateSession(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	session, err := c.committeeService.UpdateSession(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: session})
}

// ActivateSession marks one session active and deactivates the rest (admin only)
func (c *CommitteeController) ActivateSession(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	session, err := c.committeeService.ActivateSession(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: session})
}

// AddMember adds a roster member to a session (admin only)
func (c *CommitteeController) AddMember(ctx *gin.Context) {
	var req dto.CreateMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	member, err := c.committeeService.AddMember(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: member})
}

// UpdateMember edits a roster member (admin only)
func (c *CommitteeController) UpdateMember(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	member, err := c.committeeService.UpdateMember(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: member})
}
