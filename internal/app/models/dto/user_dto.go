package dto

import (
	"time"

	"github.com/rcaa/rcaconnect/internal/app/models"
)

// UserResponse is the public view of a user with its profile attached
type UserResponse struct {
	ID        int64            `json:"id"`
	Email     string           `json:"email"`
	Role      models.UserRole  `json:"role"`
	IsActive  bool             `json:"isActive"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
	Profile   *ProfileResponse `json:"profile,omitempty"`
}

// ProfileResponse is the public view of a profile
type ProfileResponse struct {
	ID              int64              `json:"id"`
	UserID          int64              `json:"userId"`
	FullName        string             `json:"fullName"`
	Phone           *string            `json:"phone,omitempty"`
	BloodGroup      *models.BloodGroup `json:"bloodGroup,omitempty"`
	Bio             *string            `json:"bio,omitempty"`
	AvatarURL       *string            `json:"avatarUrl,omitempty"`
	UniversityID    string             `json:"universityId"`
	Department      string             `json:"department"`
	Series          string             `json:"series"`
	IsEmployed      bool               `json:"isEmployed"`
	CurrentCompany  *string            `json:"currentCompany,omitempty"`
	Designation     *string            `json:"designation,omitempty"`
	WorkLocation    *string            `json:"workLocation,omitempty"`
	LinkedinProfile *string            `json:"linkedinProfile,omitempty"`
}

// NewUserResponse maps a user (and optional profile) to its response shape
func NewUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	resp := &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	if user.Profile != nil {
		resp.Profile = NewProfileResponse(user.Profile)
	}
	return resp
}

// NewProfileResponse maps a profile to its response shape
func NewProfileResponse(p *models.Profile) *ProfileResponse {
	if p == nil {
		return nil
	}
	return &ProfileResponse{
		ID:              p.ID,
		UserID:          p.UserID,
		FullName:        p.FullName,
		Phone:           p.Phone,
		BloodGroup:      p.BloodGroup,
		Bio:             p.Bio,
		AvatarURL:       p.AvatarURL,
		UniversityID:    p.UniversityID,
		Department:      p.Department,
		Series:          p.Series,
		IsEmployed:      p.IsEmployed,
		CurrentCompany:  p.CurrentCompany,
		Designation:     p.Designation,
		WorkLocation:    p.WorkLocation,
		LinkedinProfile: p.LinkedinProfile,
	}
}

// AdminCreateUserRequest creates a user with an explicit role. Academic
// fields may stay blank; the member completes them later.
type AdminCreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=admin alumni student pending"`
	IsActive *bool  `json:"isActive,omitempty"`
	FullName string `json:"fullName"`
}

// AdminUpdateUserRequest changes role or active flag (admin only)
type AdminUpdateUserRequest struct {
	Role     *string `json:"role,omitempty" binding:"omitempty,oneof=admin alumni student pending"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// UpdateProfileRequest is a partial self-service profile update; nil fields
// are left untouched.
type UpdateProfileRequest struct {
	FullName        *string `json:"fullName,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	BloodGroup      *string `json:"bloodGroup,omitempty"`
	Bio             *string `json:"bio,omitempty"`
	AvatarURL       *string `json:"avatarUrl,omitempty"`
	UniversityID    *string `json:"universityId,omitempty"`
	Department      *string `json:"department,omitempty"`
	Series          *string `json:"series,omitempty"`
	IsEmployed      *bool   `json:"isEmployed,omitempty"`
	CurrentCompany  *string `json:"currentCompany,omitempty"`
	Designation     *string `json:"designation,omitempty"`
	WorkLocation    *string `json:"workLocation,omitempty"`
	LinkedinProfile *string `json:"linkedinProfile,omitempty"`
}
