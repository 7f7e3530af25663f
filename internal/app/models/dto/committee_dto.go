package dto

import (
	"time"

	"github.com/rcaa/rcaconnect/internal/app/models"
)

// CreateSessionRequest creates a committee term
type CreateSessionRequest struct {
	Name      string     `json:"name" binding:"required" example:"EC 2024-25"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	IsActive  bool       `json:"isActive"`
}

// UpdateSessionRequest updates a committee term; nil fields are untouched
type UpdateSessionRequest struct {
	Name      *string    `json:"name,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	IsActive  *bool      `json:"isActive,omitempty"`
}

// CreateMemberRequest adds a member to a session
type CreateMemberRequest struct {
	SessionID int64   `json:"sessionId" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Position  string  `json:"position" binding:"required" example:"General Secretary"`
	Rank      *int    `json:"rank,omitempty"`
	ImageURL  *string `json:"imageUrl,omitempty"`
	Facebook  *string `json:"facebookLink,omitempty"`
	Email     *string `json:"email,omitempty"`
	UserID    *int64  `json:"userId,omitempty"`
}

// UpdateMemberRequest changes a member's details; nil fields are untouched
type UpdateMemberRequest struct {
	Name     *string `json:"name,omitempty"`
	Position *string `json:"position,omitempty"`
	Rank     *int    `json:"rank,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
	Facebook *string `json:"facebookLink,omitempty"`
	Email    *string `json:"email,omitempty"`
	UserID   *int64  `json:"userId,omitempty"`
}

// SessionResponse is the public view of a session, members optional
type SessionResponse struct {
	ID        int64                     `json:"id"`
	Name      string                    `json:"name"`
	StartDate *time.Time                `json:"startDate,omitempty"`
	EndDate   *time.Time                `json:"endDate,omitempty"`
	IsActive  bool                      `json:"isActive"`
	CreatedAt time.Time                 `json:"createdAt"`
	UpdatedAt time.Time                 `json:"updatedAt"`
	Members   []*models.CommitteeMember `json:"members,omitempty"`
}

// NewSessionResponse maps a session (and attached members) to its response shape
func NewSessionResponse(s *models.CommitteeSession) *SessionResponse {
	if s == nil {
		return nil
	}
	return &SessionResponse{
		ID:        s.ID,
		Name:      s.Name,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		Members:   s.Members,
	}
}
