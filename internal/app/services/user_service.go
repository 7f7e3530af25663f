package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rcaa/rcaconnect/internal/app/models"
	"github.com/rcaa/rcaconnect/internal/app/models/dto"
	"github.com/rcaa/rcaconnect/internal/pkg/apperrors"
	"github.com/rcaa/rcaconnect/internal/pkg/auth"
	"github.com/rcaa/rcaconnect/internal/pkg/helpers"
	"github.com/rcaa/rcaconnect/internal/pkg/logger"
)

// userStore is the persistence slice the user service needs
type userStore interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetProfileByUserID(ctx context.Context, userID int64) (*models.Profile, error)
	UpdateProfile(ctx context.Context, p *models.Profile) error
	UpdatePassword(ctx context.Context, userID int64, hashedPassword string) error
	UpdateRoleAndStatus(ctx context.Context, userID int64, role *models.UserRole, isActive *bool) error
	DeleteUser(ctx context.Context, userID int64) error
	ListUsers(ctx context.Context, offset uint64, limit int) ([]*models.User, error)
	CountUsers(ctx context.Context) (int64, error)
	CreateUserWithProfile(ctx context.Context, user *models.User, profile *models.Profile) error
}

// UserService handles self-service account operations and admin user CRUD
type UserService struct {
	store userStore
}

// NewUserService creates a new UserService
func NewUserService(store userStore) *UserService {
	return &UserService{store: store}
}

// GetUser returns a user with its profile attached
func (s *UserService) GetUser(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	profile, err := s.store.GetProfileByUserID(ctx, id)
	if err != nil && !errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, err
	}
	user.Profile = profile
	return dto.NewUserResponse(user), nil
}

// UpdateMyProfile applies a partial update to the caller's own profile.
// Nil fields keep their stored values.
func (s *UserService) UpdateMyProfile(ctx context.Context, userID int64, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := s.store.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		if strings.TrimSpace(*req.FullName) == "" {
			return nil, apperrors.NewValidationError("fullName must not be blank")
		}
		profile.FullName = *req.FullName
	}
	if req.Phone != nil {
		profile.Phone = req.Phone
	}
	if req.BloodGroup != nil {
		bg := parseBloodGroupPtr(req.BloodGroup)
		if bg == nil {
			return nil, apperrors.NewValidationError("unknown blood group")
		}
		profile.BloodGroup = bg
	}
	if req.Bio != nil {
		profile.Bio = req.Bio
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = req.AvatarURL
	}
	if req.UniversityID != nil {
		profile.UniversityID = *req.UniversityID
	}
	if req.Department != nil {
		profile.Department = *req.Department
	}
	if req.Series != nil {
		profile.Series = *req.Series
	}
	if req.IsEmployed != nil {
		profile.IsEmployed = *req.IsEmployed
	}
	if req.CurrentCompany != nil {
		profile.CurrentCompany = req.CurrentCompany
	}
	if req.Designation != nil {
		profile.Designation = req.Designation
	}
	if req.WorkLocation != nil {
		profile.WorkLocation = req.WorkLocation
	}
	if req.LinkedinProfile != nil {
		profile.LinkedinProfile = req.LinkedinProfile
	}

	if err := s.store.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}
	return dto.NewProfileResponse(profile), nil
}

// ChangePassword replaces the caller's password after verifying the old one
func (s *UserService) ChangePassword(ctx context.Context, userID int64, req dto.ChangePasswordRequest) error {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(user.Password, req.OldPassword) {
		return apperrors.ErrInvalidCredentials
	}

	hashed, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return s.store.UpdatePassword(ctx, userID, hashed)
}

// CreateUser creates an account with an explicit role (admin only). Academic
// fields stay blank placeholders; the full name falls back to the e-mail
// local part when not supplied.
func (s *UserService) CreateUser(ctx context.Context, req dto.AdminCreateUserRequest) (*dto.UserResponse, error) {
	if !models.ValidRole(req.Role) {
		return nil, apperrors.NewValidationError("unknown role")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	fullName := req.FullName
	if fullName == "" {
		fullName = req.Email
		if at := strings.Index(fullName, "@"); at > 0 {
			fullName = fullName[:at]
		}
	}

	user := &models.User{
		Email:    req.Email,
		Password: hashed,
		Role:     models.UserRole(req.Role),
		IsActive: isActive,
	}
	profile := &models.Profile{FullName: fullName}

	if err := s.store.CreateUserWithProfile(ctx, user, profile); err != nil {
		return nil, err
	}

	logger.Info().Int64("user_id", user.ID).Str("role", req.Role).Msg("User created by admin")
	return dto.NewUserResponse(user), nil
}

// UpdateUser changes a user's role and/or active flag (admin only)
func (s *UserService) UpdateUser(ctx context.Context, userID int64, req dto.AdminUpdateUserRequest) (*dto.UserResponse, error) {
	var role *models.UserRole
	if req.Role != nil {
		if !models.ValidRole(*req.Role) {
			return nil, apperrors.NewValidationError("unknown role")
		}
		r := models.UserRole(*req.Role)
		role = &r
	}

	if role == nil && req.IsActive == nil {
		return nil, apperrors.NewValidationError("nothing to update")
	}

	if err := s.store.UpdateRoleAndStatus(ctx, userID, role, req.IsActive); err != nil {
		return nil, err
	}
	return s.GetUser(ctx, userID)
}

// DeleteUser removes a user; the profile cascades with it
func (s *UserService) DeleteUser(ctx context.Context, userID int64) error {
	return s.store.DeleteUser(ctx, userID)
}

// ListUsers returns a page of users
func (s *UserService) ListUsers(ctx context.Context, page, size int) ([]*dto.UserResponse, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	users, err := s.store.ListUsers(ctx, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	total, err := s.store.CountUsers(ctx)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	resp := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.NewUserResponse(u))
	}
	return resp, helpers.NewPaginationInfo(total, page, size), nil
}
