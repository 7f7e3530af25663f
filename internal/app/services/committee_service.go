package services

import (
	"context"
	"strings"

	"github.com/rcaa/rcaconnect/internal/app/models"
	"github.com/rcaa/rcaconnect/internal/app/models/dto"
	"github.com/rcaa/rcaconnect/internal/pkg/apperrors"
	"github.com/rcaa/rcaconnect/internal/pkg/dberrors"
	"github.com/rcaa/rcaconnect/internal/pkg/helpers"
	"github.com/rcaa/rcaconnect/internal/pkg/logger"
)

// committeeStore is the persistence slice the committee service needs
type committeeStore interface {
	SaveSession(ctx context.Context, sess *models.CommitteeSession) error
	GetSessionByID(ctx context.Context, id int64) (*models.CommitteeSession, error)
	GetActiveSession(ctx context.Context) (*models.CommitteeSession, error)
	ListSessions(ctx context.Context, offset uint64, limit int) ([]*models.CommitteeSession, error)
	CountSessions(ctx context.Context) (int64, error)
	CreateMember(ctx context.Context, m *models.CommitteeMember) error
	GetMemberByID(ctx context.Context, id int64) (*models.CommitteeMember, error)
	UpdateMember(ctx context.Context, m *models.CommitteeMember) error
	GetMembersBySessionID(ctx context.Context, sessionID int64) ([]*models.CommitteeMember, error)
}

// CommitteeService manages committee terms and their rosters
type CommitteeService struct {
	store committeeStore
}

// NewCommitteeService creates a new CommitteeService
func NewCommitteeService(store committeeStore) *CommitteeService {
	return &CommitteeService{store: store}
}

// CreateSession creates a committee term. Creating it active deactivates
// every other session in the same transaction.
func (s *CommitteeService) CreateSession(ctx context.Context, req dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	sess := &models.CommitteeSession{
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		IsActive:  req.IsActive,
	}
	if err := s.store.SaveSession(ctx, sess); err != nil {
		return nil, err
	}
	logger.Info().Int64("session_id", sess.ID).Bool("active", sess.IsActive).Msg("Committee session created")
	return dto.NewSessionResponse(sess), nil
}

// UpdateSession applies a partial update; activating here follows the same
// deactivate-all transaction as ActivateSession.
func (s *CommitteeService) UpdateSession(ctx context.Context, id int64, req dto.UpdateSessionRequest) (*dto.SessionResponse, error) {
	sess, err := s.store.GetSessionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		sess.Name = *req.Name
	}
	if req.StartDate != nil {
		sess.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		sess.EndDate = req.EndDate
	}
	if req.IsActive != nil {
		sess.IsActive = *req.IsActive
	}

	if err := s.store.SaveSession(ctx, sess); err != nil {
		return nil, err
	}
	return dto.NewSessionResponse(sess), nil
}

// ActivateSession marks one session active and every other inactive
func (s *CommitteeService) ActivateSession(ctx context.Context, id int64) (*dto.SessionResponse, error) {
	sess, err := s.store.GetSessionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.IsActive = true
	if err := s.store.SaveSession(ctx, sess); err != nil {
		return nil, err
	}
	logger.Info().Int64("session_id", sess.ID).Msg("Committee session activated")
	return dto.NewSessionResponse(sess), nil
}

// GetActive returns the active session with members attached, ordered by
// rank then insertion order.
func (s *CommitteeService) GetActive(ctx context.Context) (*dto.SessionResponse, error) {
	sess, err := s.store.GetActiveSession(ctx)
	if err != nil {
		return nil, err
	}
	return s.withMembers(ctx, sess)
}

// GetSession returns any session with members attached
func (s *CommitteeService) GetSession(ctx context.Context, id int64) (*dto.SessionResponse, error) {
	sess, err := s.store.GetSessionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withMembers(ctx, sess)
}

func (s *CommitteeService) withMembers(ctx context.Context, sess *models.CommitteeSession) (*dto.SessionResponse, error) {
	members, err := s.store.GetMembersBySessionID(ctx, sess.ID)
	if err != nil {
		return nil, err
	}
	sess.Members = members
	return dto.NewSessionResponse(sess), nil
}

// ListHistory returns sessions ordered by start date descending, undated
// sessions last.
func (s *CommitteeService) ListHistory(ctx context.Context, page, size int) ([]*dto.SessionResponse, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	sessions, err := s.store.ListSessions(ctx, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	total, err := s.store.CountSessions(ctx)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	resp := make([]*dto.SessionResponse, 0, len(sessions))
	for _, sess := range sessions {
		resp = append(resp, dto.NewSessionResponse(sess))
	}
	return resp, helpers.NewPaginationInfo(total, page, size), nil
}

// AddMember inserts a roster member. Session existence is only checked by
// the foreign key constraint.
func (s *CommitteeService) AddMember(ctx context.Context, req dto.CreateMemberRequest) (*models.CommitteeMember, error) {
	rank := models.DefaultMemberRank
	if req.Rank != nil {
		rank = *req.Rank
	}

	member := &models.CommitteeMember{
		SessionID: req.SessionID,
		Name:      req.Name,
		Position:  req.Position,
		Rank:      rank,
		ImageURL:  req.ImageURL,
		Facebook:  req.Facebook,
		Email:     req.Email,
		UserID:    req.UserID,
	}

	if err := s.store.CreateMember(ctx, member); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.NewCustomError(apperrors.ErrSessionNotFound, "committee session does not exist")
		}
		return nil, err
	}
	return member, nil
}

// UpdateMember changes a member's details; only the supplied fields change
func (s *CommitteeService) UpdateMember(ctx context.Context, memberID int64, req dto.UpdateMemberRequest) (*models.CommitteeMember, error) {
	member, err := s.store.GetMemberByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, apperrors.NewValidationError("name must not be blank")
		}
		member.Name = *req.Name
	}
	if req.Position != nil {
		member.Position = *req.Position
	}
	if req.Rank != nil {
		member.Rank = *req.Rank
	}
	if req.ImageURL != nil {
		member.ImageURL = req.ImageURL
	}
	if req.Facebook != nil {
		member.Facebook = req.Facebook
	}
	if req.Email != nil {
		member.Email = req.Email
	}
	if req.UserID != nil {
		member.UserID = req.UserID
	}

	if err := s.store.UpdateMember(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}
