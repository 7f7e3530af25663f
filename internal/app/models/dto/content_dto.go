package dto

import (
	"time"
)

// CreateEventRequest creates an event
type CreateEventRequest struct {
	Title       string     `json:"title" binding:"required"`
	Slug        string     `json:"slug" binding:"required" example:"iftar-2024"`
	Description *string    `json:"description,omitempty"`
	Location    *string    `json:"location,omitempty"`
	EventDate   *time.Time `json:"eventDate,omitempty"`
	CoverImage  *string    `json:"coverImage,omitempty"`
}

// CreateNoticeRequest creates a notice; the author is the current user
type CreateNoticeRequest struct {
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content" binding:"required"`
	IsPublished *bool  `json:"isPublished,omitempty"`
}

// UpdateNoticeRequest edits a notice; nil fields are untouched
type UpdateNoticeRequest struct {
	Title       *string `json:"title,omitempty"`
	Content     *string `json:"content,omitempty"`
	IsPublished *bool   `json:"isPublished,omitempty"`
}
