package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rcaa/rcaconnect/internal/app/models"
	"github.com/rcaa/rcaconnect/internal/pkg/apperrors"
	"github.com/rcaa/rcaconnect/internal/pkg/dberrors"
)

// ContentRepository handles event and notice persistence
type ContentRepository struct {
	db Querier
}

// NewContentRepository creates a new ContentRepository
func NewContentRepository(db Querier) *ContentRepository {
	return &ContentRepository{db: db}
}

// WithTx returns a copy bound to the given transaction
func (r *ContentRepository) WithTx(tx pgx.Tx) *ContentRepository {
	return &ContentRepository{db: tx}
}

const eventColumns = `id, title, slug, description, location, event_date, cover_image, created_at, updated_at`

func scanEvent(row pgx.Row) (*models.Event, error) {
	e := &models.Event{}
	err := row.Scan(&e.ID, &e.Title, &e.Slug, &e.Description, &e.Location, &e.EventDate, &e.CoverImage, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error scanning event: %w", err)
	}
	return e, nil
}

// CreateEvent inserts an event row
func (r *ContentRepository) CreateEvent(ctx context.Context, e *models.Event) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO events (title, slug, description, location, event_date, cover_image)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		e.Title, e.Slug, e.Description, e.Location, e.EventDate, e.CoverImage,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err, "events_slug_key") {
			return apperrors.NewValidationError("an event with this slug already exists")
		}
		return fmt.Errorf("error creating event: %w", err)
	}
	return nil
}

// GetEventBySlug retrieves a single event by its slug
func (r *ContentRepository) GetEventBySlug(ctx context.Context, slug string) (*models.Event, error) {
	return scanEvent(r.db.QueryRow(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE slug = $1`, slug))
}

// ListEvents retrieves events newest-first by event date. Undated events
// sort last, then by creation order.
func (r *ContentRepository) ListEvents(ctx context.Context, offset uint64, limit int) ([]*models.Event, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+eventColumns+`
		FROM events
		ORDER BY event_date DESC NULLS LAST, id DESC
		OFFSET $1 LIMIT $2`, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		e := &models.Event{}
		if err := rows.Scan(&e.ID, &e.Title, &e.Slug, &e.Description, &e.Location, &e.EventDate, &e.CoverImage, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning event row: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// CountEvents returns the total number of events
func (r *ContentRepository) CountEvents(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM events`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting events: %w", err)
	}
	return count, nil
}

// DeleteEvent removes an event row
func (r *ContentRepository) DeleteEvent(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

const noticeColumns = `id, title, content, is_published, author_id, created_at, updated_at`

func scanNotice(row pgx.Row) (*models.Notice, error) {
	n := &models.Notice{}
	err := row.Scan(&n.ID, &n.Title, &n.Content, &n.IsPublished, &n.AuthorID, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoticeNotFound
		}
		return nil, fmt.Errorf("error scanning notice: %w", err)
	}
	return n, nil
}

// CreateNotice inserts a notice row
func (r *ContentRepository) CreateNotice(ctx context.Context, n *models.Notice) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO notices (title, content, is_published, author_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		n.Title, n.Content, n.IsPublished, n.AuthorID,
	).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating notice: %w", err)
	}
	return nil
}

// GetNoticeByID retrieves a notice row
func (r *ContentRepository) GetNoticeByID(ctx context.Context, id int64) (*models.Notice, error) {
	return scanNotice(r.db.QueryRow(ctx, `
		SELECT `+noticeColumns+`
		FROM notices
		WHERE id = $1`, id))
}

// ListNotices retrieves notices newest-first. When publishedOnly is set,
// drafts are excluded.
func (r *ContentRepository) ListNotices(ctx context.Context, publishedOnly bool, offset uint64, limit int) ([]*models.Notice, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+noticeColumns+`
		FROM notices
		WHERE NOT $1::boolean OR is_published
		ORDER BY created_at DESC, id DESC
		OFFSET $2 LIMIT $3`, publishedOnly, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing notices: %w", err)
	}
	defer rows.Close()

	var notices []*models.Notice
	for rows.Next() {
		n := &models.Notice{}
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.IsPublished, &n.AuthorID, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning notice row: %w", err)
		}
		notices = append(notices, n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notices, nil
}

// CountNotices returns the number of notices, optionally published only
func (r *ContentRepository) CountNotices(ctx context.Context, publishedOnly bool) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM notices
		WHERE NOT $1::boolean OR is_published`, publishedOnly).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting notices: %w", err)
	}
	return count, nil
}

// UpdateNotice writes notice fields back
func (r *ContentRepository) UpdateNotice(ctx context.Context, n *models.Notice) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE notices
		SET title = $1, content = $2, is_published = $3, updated_at = NOW()
		WHERE id = $4`,
		n.Title, n.Content, n.IsPublished, n.ID)

	if err != nil {
		return fmt.Errorf("error updating notice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNoticeNotFound
	}
	return nil
}

// DeleteNotice removes a notice row
func (r *ContentRepository) DeleteNotice(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM notices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting notice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNoticeNotFound
	}
	return nil
}
