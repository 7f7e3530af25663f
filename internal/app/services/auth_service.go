package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rcaa/rcaconnect/internal/app/models"
	"github.com/rcaa/rcaconnect/internal/app/models/dto"
	"github.com/rcaa/rcaconnect/internal/pkg/apperrors"
	"github.com/rcaa/rcaconnect/internal/pkg/auth"
	"github.com/rcaa/rcaconnect/internal/pkg/logger"
)

// authStore is the persistence slice the auth service needs
type authStore interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdatePassword(ctx context.Context, userID int64, hashedPassword string) error
	CreateUserWithProfile(ctx context.Context, user *models.User, profile *models.Profile) error
}

// AuthService handles login and self-service registration
type AuthService struct {
	store  authStore
	tokens *auth.TokenService
}

// NewAuthService creates a new AuthService
func NewAuthService(store authStore, tokens *auth.TokenService) *AuthService {
	return &AuthService{store: store, tokens: tokens}
}

// Login verifies credentials and issues an access token. Unknown e-mail and
// wrong password both surface as ErrInvalidCredentials; a disabled account is
// reported distinctly, but only after the password check succeeded.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	// Upgrade legacy bcrypt hashes now that we hold the plaintext.
	if auth.NeedsRehash(user.Password) {
		if hashed, hashErr := auth.HashPassword(req.Password); hashErr == nil {
			if updErr := s.store.UpdatePassword(ctx, user.ID, hashed); updErr != nil {
				logger.Warn().Err(updErr).Int64("user_id", user.ID).Msg("Password hash upgrade failed")
			}
		}
	}

	token, err := s.tokens.Generate(user.Email, 0)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokens.AccessTokenTTL().Seconds()),
	}, nil
}

// RegisterStudent creates a student account with its profile in one
// transaction. The role is always student, regardless of the payload.
func (s *AuthService) RegisterStudent(ctx context.Context, req dto.RegisterStudentRequest) (*dto.UserResponse, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    req.Email,
		Password: hashed,
		Role:     models.RoleStudent,
		IsActive: true,
	}
	profile := &models.Profile{
		FullName:     req.FullName,
		Phone:        req.Phone,
		BloodGroup:   parseBloodGroupPtr(req.BloodGroup),
		UniversityID: req.UniversityID,
		Department:   req.Department,
		Series:       req.Series,
	}

	if err := s.store.CreateUserWithProfile(ctx, user, profile); err != nil {
		return nil, err
	}

	logger.Info().Int64("user_id", user.ID).Msg("Student registered")
	return dto.NewUserResponse(user), nil
}

// RegisterAlumni creates an alumni account with its profile in one
// transaction. The role is always alumni, regardless of the payload.
func (s *AuthService) RegisterAlumni(ctx context.Context, req dto.RegisterAlumniRequest) (*dto.UserResponse, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    req.Email,
		Password: hashed,
		Role:     models.RoleAlumni,
		IsActive: true,
	}
	profile := &models.Profile{
		FullName:        req.FullName,
		Phone:           req.Phone,
		BloodGroup:      parseBloodGroupPtr(req.BloodGroup),
		UniversityID:    req.UniversityID,
		Department:      req.Department,
		Series:          req.Series,
		IsEmployed:      req.IsEmployed,
		CurrentCompany:  req.CurrentCompany,
		Designation:     req.Designation,
		WorkLocation:    req.WorkLocation,
		LinkedinProfile: req.LinkedinProfile,
	}

	if err := s.store.CreateUserWithProfile(ctx, user, profile); err != nil {
		return nil, err
	}

	logger.Info().Int64("user_id", user.ID).Msg("Alumni registered")
	return dto.NewUserResponse(user), nil
}

// parseBloodGroupPtr maps an optional raw blood group to the stored form.
// Unknown spellings are dropped rather than rejected.
func parseBloodGroupPtr(raw *string) *models.BloodGroup {
	if raw == nil {
		return nil
	}
	if bg, ok := models.ParseBloodGroup(strings.ToUpper(strings.TrimSpace(*raw))); ok {
		return &bg
	}
	return nil
}
