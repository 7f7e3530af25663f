package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rcaa/rcaconnect/internal/app/models"
	"github.com/rcaa/rcaconnect/internal/app/repositories"
	"github.com/rcaa/rcaconnect/internal/db"
)

// AlumniBatch is the datastore surface available to a single import batch.
// Every call runs inside the batch transaction, so rows inserted earlier in
// the batch are visible to later EmailExists lookups.
type AlumniBatch interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	CreateUserWithProfile(ctx context.Context, user *models.User, profile *models.Profile) error
}

// Store is the postgres-backed persistence layer behind the services. It
// delegates single-table operations to the repositories and wraps multi-table
// writes in one transaction. Services depend on narrow slices of it so tests
// run against in-memory fakes instead.
type Store struct {
	pool  *pgxpool.Pool
	repos *repositories.Repositories
}

// NewStore creates a Store over the given pool and repositories
func NewStore(pool *pgxpool.Pool, repos *repositories.Repositories) *Store {
	return &Store{pool: pool, repos: repos}
}

// --- users ---

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.repos.User.GetUserByEmail(ctx, email)
}

func (s *Store) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.repos.User.GetUserByID(ctx, id)
}

func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.repos.User.EmailExists(ctx, email)
}

func (s *Store) UpdatePassword(ctx context.Context, userID int64, hashedPassword string) error {
	return s.repos.User.UpdatePassword(ctx, userID, hashedPassword)
}

func (s *Store) UpdateRoleAndStatus(ctx context.Context, userID int64, role *models.UserRole, isActive *bool) error {
	return s.repos.User.UpdateRoleAndStatus(ctx, userID, role, isActive)
}

func (s *Store) DeleteUser(ctx context.Context, userID int64) error {
	return s.repos.User.DeleteUser(ctx, userID)
}

func (s *Store) ListUsers(ctx context.Context, offset uint64, limit int) ([]*models.User, error) {
	return s.repos.User.ListUsers(ctx, offset, limit)
}

func (s *Store) CountUsers(ctx context.Context) (int64, error) {
	return s.repos.User.CountUsers(ctx)
}

// --- profiles ---

func (s *Store) GetProfileByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	return s.repos.Profile.GetProfileByUserID(ctx, userID)
}

func (s *Store) UpdateProfile(ctx context.Context, p *models.Profile) error {
	return s.repos.Profile.UpdateProfile(ctx, p)
}

// CreateUserWithProfile creates a user and its profile atomically. The
// profile's UserID is filled from the created user.
func (s *Store) CreateUserWithProfile(ctx context.Context, user *models.User, profile *models.Profile) error {
	return db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		return createUserWithProfile(ctx, s.repos.User.WithTx(tx), s.repos.Profile.WithTx(tx), user, profile)
	})
}

func createUserWithProfile(ctx context.Context, users *repositories.UserRepository, profiles *repositories.ProfileRepository, user *models.User, profile *models.Profile) error {
	id, err := users.CreateUser(ctx, user)
	if err != nil {
		return err
	}
	profile.UserID = id
	if err := profiles.CreateProfile(ctx, profile); err != nil {
		return err
	}
	user.Profile = profile
	return nil
}

// RunImport executes fn inside one transaction spanning the whole import
// batch. fn only returns an error on file-level failures; per-row errors are
// absorbed into the report so the batch commits with the successful rows.
func (s *Store) RunImport(ctx context.Context, fn func(ctx context.Context, batch AlumniBatch) error) error {
	return db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		return fn(ctx, &txAlumniBatch{
			users:    s.repos.User.WithTx(tx),
			profiles: s.repos.Profile.WithTx(tx),
		})
	})
}

type txAlumniBatch struct {
	users    *repositories.UserRepository
	profiles *repositories.ProfileRepository
}

func (b *txAlumniBatch) EmailExists(ctx context.Context, email string) (bool, error) {
	return b.users.EmailExists(ctx, email)
}

func (b *txAlumniBatch) CreateUserWithProfile(ctx context.Context, user *models.User, profile *models.Profile) error {
	return createUserWithProfile(ctx, b.users, b.profiles, user, profile)
}

// --- committee ---

// SaveSession creates (ID zero) or updates a session. When the session is
// active, every other session is deactivated in the same transaction so the
// single-active invariant holds under concurrent activations.
func (s *Store) SaveSession(ctx context.Context, sess *models.CommitteeSession) error {
	return db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		repo := s.repos.Committee.WithTx(tx)
		if sess.IsActive {
			if err := repo.DeactivateAllSessions(ctx); err != nil {
				return err
			}
		}
		if sess.ID == 0 {
			return repo.CreateSession(ctx, sess)
		}
		return repo.UpdateSession(ctx, sess)
	})
}

func (s *Store) GetSessionByID(ctx context.Context, id int64) (*models.CommitteeSession, error) {
	return s.repos.Committee.GetSessionByID(ctx, id)
}

func (s *Store) GetActiveSession(ctx context.Context) (*models.CommitteeSession, error) {
	return s.repos.Committee.GetActiveSession(ctx)
}

func (s *Store) ListSessions(ctx context.Context, offset uint64, limit int) ([]*models.CommitteeSession, error) {
	return s.repos.Committee.ListSessions(ctx, offset, limit)
}

func (s *Store) CountSessions(ctx context.Context) (int64, error) {
	return s.repos.Committee.CountSessions(ctx)
}

func (s *Store) CreateMember(ctx context.Context, m *models.CommitteeMember) error {
	return s.repos.Committee.CreateMember(ctx, m)
}

func (s *Store) GetMemberByID(ctx context.Context, id int64) (*models.CommitteeMember, error) {
	return s.repos.Committee.GetMemberByID(ctx, id)
}

func (s *Store) UpdateMember(ctx context.Context, m *models.CommitteeMember) error {
	return s.repos.Committee.UpdateMember(ctx, m)
}

func (s *Store) GetMembersBySessionID(ctx context.Context, sessionID int64) ([]*models.CommitteeMember, error) {
	return s.repos.Committee.GetMembersBySessionID(ctx, sessionID)
}

// --- content ---

func (s *Store) CreateEvent(ctx context.Context, e *models.Event) error {
	return s.repos.Content.CreateEvent(ctx, e)
}

func (s *Store) GetEventBySlug(ctx context.Context, slug string) (*models.Event, error) {
	return s.repos.Content.GetEventBySlug(ctx, slug)
}

func (s *Store) ListEvents(ctx context.Context, offset uint64, limit int) ([]*models.Event, error) {
	return s.repos.Content.ListEvents(ctx, offset, limit)
}

func (s *Store) CountEvents(ctx context.Context) (int64, error) {
	return s.repos.Content.CountEvents(ctx)
}

func (s *Store) DeleteEvent(ctx context.Context, id int64) error {
	return s.repos.Content.DeleteEvent(ctx, id)
}

func (s *Store) CreateNotice(ctx context.Context, n *models.Notice) error {
	return s.repos.Content.CreateNotice(ctx, n)
}

func (s *Store) GetNoticeByID(ctx context.Context, id int64) (*models.Notice, error) {
	return s.repos.Content.GetNoticeByID(ctx, id)
}

func (s *Store) ListNotices(ctx context.Context, publishedOnly bool, offset uint64, limit int) ([]*models.Notice, error) {
	return s.repos.Content.ListNotices(ctx, publishedOnly, offset, limit)
}

func (s *Store) CountNotices(ctx context.Context, publishedOnly bool) (int64, error) {
	return s.repos.Content.CountNotices(ctx, publishedOnly)
}

func (s *Store) UpdateNotice(ctx context.Context, n *models.Notice) error {
	return s.repos.Content.UpdateNotice(ctx, n)
}

func (s *Store) DeleteNotice(ctx context.Context, id int64) error {
	return s.repos.Content.DeleteNotice(ctx, id)
}
