package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rcaa/rcaconnect/internal/app/models/dto"
	"github.com/rcaa/rcaconnect/internal/app/services"
	"github.com/rcaa/rcaconnect/internal/middleware"
	"github.com/rcaa/rcaconnect/internal/pkg/apperrors"
	"github.com/rcaa/rcaconnect/internal/pkg/helpers"
)

// UserController handles profile self-service, admin user management and the
// bulk alumni import endpoint.
type UserController struct {
	userService   *services.UserService
	importService *services.ImportService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService, importService *services.ImportService) *UserController {
	return &UserController{
		userService:   userService,
		importService: importService,
	}
}

func pathID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id < 1 {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("id must be a positive number"))
		return 0, false
	}
	return id, true
}

// GetMe returns the caller's account with profile
func (c *UserController) GetMe(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidToken)
		return
	}

	user, err := c.userService.GetUser(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: user})
}

// UpdateMyProfile applies a partial update to the caller's profile
func (c *UserController) UpdateMyProfile(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidToken)
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	profile, err := c.userService.UpdateMyProfile(ctx, userID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: profile})
}

// ChangePassword replaces the caller's password
func (c *UserController) ChangePassword(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidToken)
		return
	}

	var req dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.userService.ChangePassword(ctx, userID, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Password updated"}})
}

// CreateUser creates an account with an explicit role (admin only)
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.AdminCreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	user, err := c.userService.CreateUser(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: user})
}

// GetUserByID returns one user with profile (admin only)
func (c *UserController) GetUserByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	user, err := c.userService.GetUser(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: user})
}

// ListUsers returns a page of users (admin only)
func (c *UserController) ListUsers(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	users, pagination, err := c.userService.ListUsers(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: users, Pagination: &pagination})
}

// UpdateUser changes a user's role or active flag (admin only)
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.AdminUpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	user, err := c.userService.UpdateUser(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: user})
}

// DeleteUser removes a user and its profile (admin only)
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.userService.DeleteUser(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "User deleted"}})
}

// ImportAlumni ingests an uploaded CSV/XLSX/XLS file and returns the import
// report, including any generated credentials (admin only).
func (c *UserController) ImportAlumni(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("a file upload named 'file' is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer file.Close()

	report, err := c.importService.ImportFile(ctx, fileHeader.Filename, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: report})
}
