package services

import (
	"context"

	"github.com/rcaa/rcaconnect/internal/app/models"
	"github.com/rcaa/rcaconnect/internal/app/models/dto"
	"github.com/rcaa/rcaconnect/internal/pkg/apperrors"
	"github.com/rcaa/rcaconnect/internal/pkg/helpers"
)

// contentStore is the persistence slice the content service needs
type contentStore interface {
	CreateEvent(ctx context.Context, e *models.Event) error
	GetEventBySlug(ctx context.Context, slug string) (*models.Event, error)
	ListEvents(ctx context.Context, offset uint64, limit int) ([]*models.Event, error)
	CountEvents(ctx context.Context) (int64, error)
	DeleteEvent(ctx context.Context, id int64) error
	CreateNotice(ctx context.Context, n *models.Notice) error
	GetNoticeByID(ctx context.Context, id int64) (*models.Notice, error)
	ListNotices(ctx context.Context, publishedOnly bool, offset uint64, limit int) ([]*models.Notice, error)
	CountNotices(ctx context.Context, publishedOnly bool) (int64, error)
	UpdateNotice(ctx context.Context, n *models.Notice) error
	DeleteNotice(ctx context.Context, id int64) error
}

// ContentService manages events and notices
type ContentService struct {
	store contentStore
}

// NewContentService creates a new ContentService
func NewContentService(store contentStore) *ContentService {
	return &ContentService{store: store}
}

// CreateEvent creates an event
func (s *ContentService) CreateEvent(ctx context.Context, req dto.CreateEventRequest) (*models.Event, error) {
	event := &models.Event{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Location:    req.Location,
		EventDate:   req.EventDate,
		CoverImage:  req.CoverImage,
	}
	if err := s.store.CreateEvent(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// GetEvent returns one event by slug
func (s *ContentService) GetEvent(ctx context.Context, slug string) (*models.Event, error) {
	return s.store.GetEventBySlug(ctx, slug)
}

// ListEvents returns a page of events, newest event date first
func (s *ContentService) ListEvents(ctx context.Context, page, size int) ([]*models.Event, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	events, err := s.store.ListEvents(ctx, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	total, err := s.store.CountEvents(ctx)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	return events, helpers.NewPaginationInfo(total, page, size), nil
}

// DeleteEvent removes an event (admin only, enforced by routing)
func (s *ContentService) DeleteEvent(ctx context.Context, id int64) error {
	return s.store.DeleteEvent(ctx, id)
}

// DeleteEventBySlug resolves the slug and removes the event
func (s *ContentService) DeleteEventBySlug(ctx context.Context, slug string) error {
	event, err := s.store.GetEventBySlug(ctx, slug)
	if err != nil {
		return err
	}
	return s.store.DeleteEvent(ctx, event.ID)
}

// CreateNotice creates a notice authored by the current user
func (s *ContentService) CreateNotice(ctx context.Context, authorID int64, req dto.CreateNoticeRequest) (*models.Notice, error) {
	published := true
	if req.IsPublished != nil {
		published = *req.IsPublished
	}
	notice := &models.Notice{
		Title:       req.Title,
		Content:     req.Content,
		IsPublished: published,
		AuthorID:    authorID,
	}
	if err := s.store.CreateNotice(ctx, notice); err != nil {
		return nil, err
	}
	return notice, nil
}

// GetNotice returns one notice by id. Drafts are hidden from everyone on
// this path; authors and admins reach them through the edit flow.
func (s *ContentService) GetNotice(ctx context.Context, id int64) (*models.Notice, error) {
	notice, err := s.store.GetNoticeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !notice.IsPublished {
		return nil, apperrors.ErrNoticeNotFound
	}
	return notice, nil
}

// ListNotices returns a page of notices, newest first. Non-admin callers see
// published notices only.
func (s *ContentService) ListNotices(ctx context.Context, publishedOnly bool, page, size int) ([]*models.Notice, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	notices, err := s.store.ListNotices(ctx, publishedOnly, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	total, err := s.store.CountNotices(ctx, publishedOnly)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	return notices, helpers.NewPaginationInfo(total, page, size), nil
}

// UpdateNotice edits a notice. Only the author or an admin may edit.
func (s *ContentService) UpdateNotice(ctx context.Context, id, callerID int64, callerRole models.UserRole, req dto.UpdateNoticeRequest) (*models.Notice, error) {
	notice, err := s.store.GetNoticeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if notice.AuthorID != callerID && callerRole != models.RoleAdmin {
		return nil, apperrors.ErrPermissionDenied
	}

	if req.Title != nil {
		notice.Title = *req.Title
	}
	if req.Content != nil {
		notice.Content = *req.Content
	}
	if req.IsPublished != nil {
		notice.IsPublished = *req.IsPublished
	}

	if err := s.store.UpdateNotice(ctx, notice); err != nil {
		return nil, err
	}
	return notice, nil
}

// DeleteNotice removes a notice. Only the author or an admin may delete.
func (s *ContentService) DeleteNotice(ctx context.Context, id, callerID int64, callerRole models.UserRole) error {
	notice, err := s.store.GetNoticeByID(ctx, id)
	if err != nil {
		return err
	}
	if notice.AuthorID != callerID && callerRole != models.RoleAdmin {
		return apperrors.ErrPermissionDenied
	}
	return s.store.DeleteNotice(ctx, notice.ID)
}
