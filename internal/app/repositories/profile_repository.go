package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rcaa/rcaconnect/internal/app/models"
	"github.com/rcaa/rcaconnect/internal/pkg/apperrors"
)

// ProfileRepository handles profile database operations
type ProfileRepository struct {
	db Querier
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db Querier) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// WithTx returns a copy bound to the given transaction
func (r *ProfileRepository) WithTx(tx pgx.Tx) *ProfileRepository {
	return &ProfileRepository{db: tx}
}

const profileColumns = `id, user_id, full_name, phone, blood_group, bio, avatar_url,
	university_id, department, series,
	is_employed, current_company, designation, work_location, linkedin_profile,
	created_at, updated_at`

func scanProfile(row pgx.Row) (*models.Profile, error) {
	p := &models.Profile{}
	err := row.Scan(
		&p.ID, &p.UserID, &p.FullName, &p.Phone, &p.BloodGroup, &p.Bio, &p.AvatarURL,
		&p.UniversityID, &p.Department, &p.Series,
		&p.IsEmployed, &p.CurrentCompany, &p.Designation, &p.WorkLocation, &p.LinkedinProfile,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error scanning profile: %w", err)
	}
	return p, nil
}

// CreateProfile creates the profile row for a user
func (r *ProfileRepository) CreateProfile(ctx context.Context, p *models.Profile) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO profiles (user_id, full_name, phone, blood_group, bio, avatar_url,
			university_id, department, series,
			is_employed, current_company, designation, work_location, linkedin_profile)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`,
		p.UserID, p.FullName, p.Phone, p.BloodGroup, p.Bio, p.AvatarURL,
		p.UniversityID, p.Department, p.Series,
		p.IsEmployed, p.CurrentCompany, p.Designation, p.WorkLocation, p.LinkedinProfile,
	).Scan(&p.ID)

	if err != nil {
		return fmt.Errorf("error creating profile: %w", err)
	}

	return nil
}

// GetProfileByUserID retrieves the profile attached to a user
func (r *ProfileRepository) GetProfileByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	return scanProfile(r.db.QueryRow(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE user_id = $1`, userID))
}

// UpdateProfile writes the full profile row back
func (r *ProfileRepository) UpdateProfile(ctx context.Context, p *models.Profile) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE profiles
		SET full_name = $1, phone = $2, blood_group = $3, bio = $4, avatar_url = $5,
		    university_id = $6, department = $7, series = $8,
		    is_employed = $9, current_company = $10, designation = $11,
		    work_location = $12, linkedin_profile = $13,
		    updated_at = NOW()
		WHERE user_id = $14`,
		p.FullName, p.Phone, p.BloodGroup, p.Bio, p.AvatarURL,
		p.UniversityID, p.Department, p.Series,
		p.IsEmployed, p.CurrentCompany, p.Designation,
		p.WorkLocation, p.LinkedinProfile,
		p.UserID)

	if err != nil {
		return fmt.Errorf("error updating profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}
