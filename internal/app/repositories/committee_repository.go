package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rcaa/rcaconnect/internal/app/models"
	"github.com/rcaa/rcaconnect/internal/pkg/apperrors"
)

// CommitteeRepository handles committee session and member operations
type CommitteeRepository struct {
	db Querier
}

// NewCommitteeRepository creates a new CommitteeRepository
func NewCommitteeRepository(db Querier) *CommitteeRepository {
	return &CommitteeRepository{db: db}
}

// WithTx returns a copy bound to the given transaction
func (r *CommitteeRepository) WithTx(tx pgx.Tx) *CommitteeRepository {
	return &CommitteeRepository{db: tx}
}

const sessionColumns = `id, name, start_date, end_date, is_active, created_at, updated_at`

func scanSession(row pgx.Row) (*models.CommitteeSession, error) {
	s := &models.CommitteeSession{}
	err := row.Scan(&s.ID, &s.Name, &s.StartDate, &s.EndDate, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("error scanning session: %w", err)
	}
	return s, nil
}

// CreateSession inserts a session row
func (r *CommitteeRepository) CreateSession(ctx context.Context, s *models.CommitteeSession) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO committee_sessions (name, start_date, end_date, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		s.Name, s.StartDate, s.EndDate, s.IsActive).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating session: %w", err)
	}
	return nil
}

// UpdateSession writes session fields back
func (r *CommitteeRepository) UpdateSession(ctx context.Context, s *models.CommitteeSession) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE committee_sessions
		SET name = $1, start_date = $2, end_date = $3, is_active = $4, updated_at = NOW()
		WHERE id = $5`,
		s.Name, s.StartDate, s.EndDate, s.IsActive, s.ID)

	if err != nil {
		return fmt.Errorf("error updating session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSessionNotFound
	}
	return nil
}

// DeactivateAllSessions clears the active flag everywhere. Callers run this
// together with the activation write inside one transaction so the
// at-most-one-active invariant holds under concurrent activations.
func (r *CommitteeRepository) DeactivateAllSessions(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `
		UPDATE committee_sessions SET is_active = FALSE, updated_at = NOW()
		WHERE is_active`); err != nil {
		return fmt.Errorf("error deactivating sessions: %w", err)
	}
	return nil
}

// GetSessionByID retrieves a session row
func (r *CommitteeRepository) GetSessionByID(ctx context.Context, id int64) (*models.CommitteeSession, error) {
	return scanSession(r.db.QueryRow(ctx, `
		SELECT `+sessionColumns+`
		FROM committee_sessions
		WHERE id = $1`, id))
}

// GetActiveSession retrieves the single active session
func (r *CommitteeRepository) GetActiveSession(ctx context.Context) (*models.CommitteeSession, error) {
	return scanSession(r.db.QueryRow(ctx, `
		SELECT `+sessionColumns+`
		FROM committee_sessions
		WHERE is_active
		LIMIT 1`))
}

// ListSessions retrieves sessions ordered by start_date descending with
// NULL dates sorted last.
func (r *CommitteeRepository) ListSessions(ctx context.Context, offset uint64, limit int) ([]*models.CommitteeSession, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+sessionColumns+`
		FROM committee_sessions
		ORDER BY start_date DESC NULLS LAST, id DESC
		OFFSET $1 LIMIT $2`, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*models.CommitteeSession
	for rows.Next() {
		s := &models.CommitteeSession{}
		if err := rows.Scan(&s.ID, &s.Name, &s.StartDate, &s.EndDate, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning session row: %w", err)
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

// CountSessions returns the total number of sessions
func (r *CommitteeRepository) CountSessions(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM committee_sessions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting sessions: %w", err)
	}
	return count, nil
}

// CreateMember inserts a member row. An invalid session id surfaces as the
// foreign key constraint error.
func (r *CommitteeRepository) CreateMember(ctx context.Context, m *models.CommitteeMember) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO committee_members (session_id, name, position, rank, image_url, facebook_link, email, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		m.SessionID, m.Name, m.Position, m.Rank, m.ImageURL, m.Facebook, m.Email, m.UserID,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating committee member: %w", err)
	}
	return nil
}

// GetMemberByID retrieves a single committee member
func (r *CommitteeRepository) GetMemberByID(ctx context.Context, id int64) (*models.CommitteeMember, error) {
	m := &models.CommitteeMember{}
	err := r.db.QueryRow(ctx, `
		SELECT id, session_id, name, position, rank, image_url, facebook_link, email, user_id, created_at, updated_at
		FROM committee_members
		WHERE id = $1`, id).Scan(
		&m.ID, &m.SessionID, &m.Name, &m.Position, &m.Rank,
		&m.ImageURL, &m.Facebook, &m.Email, &m.UserID,
		&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("error getting committee member: %w", err)
	}
	return m, nil
}

// UpdateMember writes member fields back
func (r *CommitteeRepository) UpdateMember(ctx context.Context, m *models.CommitteeMember) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE committee_members
		SET name = $1, position = $2, rank = $3, image_url = $4, facebook_link = $5, email = $6, user_id = $7, updated_at = NOW()
		WHERE id = $8`,
		m.Name, m.Position, m.Rank, m.ImageURL, m.Facebook, m.Email, m.UserID, m.ID)
	if err != nil {
		return fmt.Errorf("error updating committee member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrMemberNotFound
	}
	return nil
}

// GetMembersBySessionID retrieves a session's members ordered by rank
// ascending, insertion order as the tie-break.
func (r *CommitteeRepository) GetMembersBySessionID(ctx context.Context, sessionID int64) ([]*models.CommitteeMember, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, session_id, name, position, rank, image_url, facebook_link, email, user_id, created_at, updated_at
		FROM committee_members
		WHERE session_id = $1
		ORDER BY rank ASC, id ASC`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("error listing committee members: %w", err)
	}
	defer rows.Close()

	var members []*models.CommitteeMember
	for rows.Next() {
		m := &models.CommitteeMember{}
		if err := rows.Scan(
			&m.ID, &m.SessionID, &m.Name, &m.Position, &m.Rank,
			&m.ImageURL, &m.Facebook, &m.Email, &m.UserID,
			&m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning member row: %w", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}
