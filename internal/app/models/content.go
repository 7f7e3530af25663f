package models

import (
	"time"
)

// Event is an association happening like "Freshers Reception" or "Iftar Mahfil".
type Event struct {
	ID          int64      `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Slug        string     `json:"slug" db:"slug" example:"iftar-2024"`
	Description *string    `json:"description,omitempty" db:"description"`
	Location    *string    `json:"location,omitempty" db:"location"`
	EventDate   *time.Time `json:"eventDate,omitempty" db:"event_date"`
	CoverImage  *string    `json:"coverImage,omitempty" db:"cover_image"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// Notice is an admin announcement tied to its authoring user.
type Notice struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Content     string    `json:"content" db:"content"`
	IsPublished bool      `json:"isPublished" db:"is_published"`
	AuthorID    int64     `json:"authorId" db:"author_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
