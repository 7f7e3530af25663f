package models

import (
	"time"
)

// CommitteeSession represents a committee term, e.g. "EC 2024-25".
// At most one session has IsActive=true at any time; activation deactivates
// every other session inside the same transaction.
type CommitteeSession struct {
	ID        int64      `json:"id" db:"id"`
	Name      string     `json:"name" db:"name" example:"EC 2024-25"`
	StartDate *time.Time `json:"startDate,omitempty" db:"start_date"`
	EndDate   *time.Time `json:"endDate,omitempty" db:"end_date"`
	IsActive  bool       `json:"isActive" db:"is_active"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`

	Members []*CommitteeMember `json:"members,omitempty"` // Relation, no db tag
}

// CommitteeMember is a person in a specific session. Basic info is stored
// directly because historical committees predate the system; UserID is only
// set when the member also has an account.
type CommitteeMember struct {
	ID        int64   `json:"id" db:"id"`
	SessionID int64   `json:"sessionId" db:"session_id"`
	Name      string  `json:"name" db:"name"`
	Position  string  `json:"position" db:"position" example:"President"`
	Rank      int     `json:"rank" db:"rank" example:"1"` // Lower = earlier in display order
	ImageURL  *string `json:"imageUrl,omitempty" db:"image_url"`
	Facebook  *string `json:"facebookLink,omitempty" db:"facebook_link"`
	Email     *string `json:"email,omitempty" db:"email"`
	UserID    *int64  `json:"userId,omitempty" db:"user_id"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// DefaultMemberRank applies when a member is created without a rank.
const DefaultMemberRank = 100
