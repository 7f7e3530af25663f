package services

import (
	"context"
	"sort"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rcaa/rcaconnect/internal/app/models"
	"github.com/rcaa/rcaconnect/internal/pkg/apperrors"
)

// fakeStore is an in-memory Store stand-in backing the service tests.
type fakeStore struct {
	users    map[int64]*models.User
	profiles map[int64]*models.Profile // keyed by user id
	sessions map[int64]*models.CommitteeSession
	members  []*models.CommitteeMember
	events   []*models.Event
	notices  map[int64]*models.Notice
	nextID   int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    map[int64]*models.User{},
		profiles: map[int64]*models.Profile{},
		sessions: map[int64]*models.CommitteeSession{},
		notices:  map[int64]*models.Notice{},
	}
}

func (f *fakeStore) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeStore) addUser(email, hash string, role models.UserRole, active bool) *models.User {
	u := &models.User{ID: f.id(), Email: email, Password: hash, Role: role, IsActive: active}
	f.users[u.ID] = u
	f.profiles[u.ID] = &models.Profile{ID: u.ID, UserID: u.ID, FullName: "Someone"}
	return u
}

func (f *fakeStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeStore) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeStore) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := f.GetUserByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeStore) UpdatePassword(_ context.Context, userID int64, hash string) error {
	u, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.Password = hash
	return nil
}

func (f *fakeStore) UpdateRoleAndStatus(_ context.Context, userID int64, role *models.UserRole, isActive *bool) error {
	u, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	if role != nil {
		u.Role = *role
	}
	if isActive != nil {
		u.IsActive = *isActive
	}
	return nil
}

func (f *fakeStore) DeleteUser(_ context.Context, userID int64) error {
	if _, ok := f.users[userID]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(f.users, userID)
	delete(f.profiles, userID)
	return nil
}

func (f *fakeStore) ListUsers(_ context.Context, offset uint64, limit int) ([]*models.User, error) {
	ids := make([]int64, 0, len(f.users))
	for id := range f.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []*models.User
	for i, id := range ids {
		if uint64(i) < offset {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, f.users[id])
	}
	return out, nil
}

func (f *fakeStore) CountUsers(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeStore) GetProfileByUserID(_ context.Context, userID int64) (*models.Profile, error) {
	if p, ok := f.profiles[userID]; ok {
		return p, nil
	}
	return nil, apperrors.ErrResourceNotFound
}

func (f *fakeStore) UpdateProfile(_ context.Context, p *models.Profile) error {
	if _, ok := f.profiles[p.UserID]; !ok {
		return apperrors.ErrResourceNotFound
	}
	f.profiles[p.UserID] = p
	return nil
}

func (f *fakeStore) CreateUserWithProfile(ctx context.Context, user *models.User, profile *models.Profile) error {
	if exists, _ := f.EmailExists(ctx, user.Email); exists {
		return apperrors.ErrEmailAlreadyExists
	}
	user.ID = f.id()
	f.users[user.ID] = user
	profile.ID = user.ID
	profile.UserID = user.ID
	f.profiles[user.ID] = profile
	user.Profile = profile
	return nil
}

// RunImport snapshots state so a batch-level failure rolls everything back,
// matching the transactional store.
func (f *fakeStore) RunImport(ctx context.Context, fn func(ctx context.Context, batch AlumniBatch) error) error {
	savedUsers := make(map[int64]*models.User, len(f.users))
	for id, u := range f.users {
		savedUsers[id] = u
	}
	savedProfiles := make(map[int64]*models.Profile, len(f.profiles))
	for id, p := range f.profiles {
		savedProfiles[id] = p
	}

	if err := fn(ctx, f); err != nil {
		f.users = savedUsers
		f.profiles = savedProfiles
		return err
	}
	return nil
}

func (f *fakeStore) SaveSession(_ context.Context, sess *models.CommitteeSession) error {
	if sess.IsActive {
		for _, other := range f.sessions {
			if other != sess {
				other.IsActive = false
			}
		}
	}
	if sess.ID == 0 {
		sess.ID = f.id()
	} else if _, ok := f.sessions[sess.ID]; !ok {
		return apperrors.ErrSessionNotFound
	}
	f.sessions[sess.ID] = sess
	return nil
}

func (f *fakeStore) GetSessionByID(_ context.Context, id int64) (*models.CommitteeSession, error) {
	if s, ok := f.sessions[id]; ok {
		return s, nil
	}
	return nil, apperrors.ErrSessionNotFound
}

func (f *fakeStore) GetActiveSession(_ context.Context) (*models.CommitteeSession, error) {
	for _, s := range f.sessions {
		if s.IsActive {
			return s, nil
		}
	}
	return nil, apperrors.ErrSessionNotFound
}

func (f *fakeStore) ListSessions(_ context.Context, offset uint64, limit int) ([]*models.CommitteeSession, error) {
	all := make([]*models.CommitteeSession, 0, len(f.sessions))
	for _, s := range f.sessions {
		all = append(all, s)
	}
	// start_date descending, nulls last, id as tie-break
	sort.Slice(all, func(i, j int) bool {
		a, b := all[i], all[j]
		switch {
		case a.StartDate == nil && b.StartDate == nil:
			return a.ID > b.ID
		case a.StartDate == nil:
			return false
		case b.StartDate == nil:
			return true
		case !a.StartDate.Equal(*b.StartDate):
			return a.StartDate.After(*b.StartDate)
		}
		return a.ID > b.ID
	})

	var out []*models.CommitteeSession
	for i, s := range all {
		if uint64(i) < offset {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeStore) CountSessions(_ context.Context) (int64, error) {
	return int64(len(f.sessions)), nil
}

func (f *fakeStore) CreateMember(_ context.Context, m *models.CommitteeMember) error {
	if _, ok := f.sessions[m.SessionID]; !ok {
		return &pgconn.PgError{Code: "23503", ConstraintName: "committee_members_session_id_fkey"}
	}
	m.ID = f.id()
	f.members = append(f.members, m)
	return nil
}

func (f *fakeStore) GetMemberByID(_ context.Context, id int64) (*models.CommitteeMember, error) {
	for _, m := range f.members {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, apperrors.ErrMemberNotFound
}

func (f *fakeStore) UpdateMember(_ context.Context, m *models.CommitteeMember) error {
	for i, existing := range f.members {
		if existing.ID == m.ID {
			f.members[i] = m
			return nil
		}
	}
	return apperrors.ErrMemberNotFound
}

func (f *fakeStore) GetMembersBySessionID(_ context.Context, sessionID int64) ([]*models.CommitteeMember, error) {
	var out []*models.CommitteeMember
	for _, m := range f.members {
		if m.SessionID == sessionID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Rank != out[j].Rank {
			return out[i].Rank < out[j].Rank
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeStore) CreateEvent(_ context.Context, e *models.Event) error {
	e.ID = f.id()
	f.events = append(f.events, e)
	return nil
}

func (f *fakeStore) GetEventBySlug(_ context.Context, slug string) (*models.Event, error) {
	for _, e := range f.events {
		if e.Slug == slug {
			return e, nil
		}
	}
	return nil, apperrors.ErrEventNotFound
}

func (f *fakeStore) ListEvents(_ context.Context, offset uint64, limit int) ([]*models.Event, error) {
	all := append([]*models.Event(nil), f.events...)
	sort.SliceStable(all, func(i, j int) bool {
		a, b := all[i], all[j]
		switch {
		case a.EventDate == nil && b.EventDate == nil:
			return a.ID > b.ID
		case a.EventDate == nil:
			return false
		case b.EventDate == nil:
			return true
		case !a.EventDate.Equal(*b.EventDate):
			return a.EventDate.After(*b.EventDate)
		}
		return a.ID > b.ID
	})

	var out []*models.Event
	for i, e := range all {
		if uint64(i) < offset {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeStore) CountEvents(_ context.Context) (int64, error) {
	return int64(len(f.events)), nil
}

func (f *fakeStore) DeleteEvent(_ context.Context, id int64) error {
	for i, e := range f.events {
		if e.ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrEventNotFound
}

func (f *fakeStore) CreateNotice(_ context.Context, n *models.Notice) error {
	n.ID = f.id()
	f.notices[n.ID] = n
	return nil
}

func (f *fakeStore) GetNoticeByID(_ context.Context, id int64) (*models.Notice, error) {
	if n, ok := f.notices[id]; ok {
		return n, nil
	}
	return nil, apperrors.ErrNoticeNotFound
}

func (f *fakeStore) ListNotices(_ context.Context, publishedOnly bool, offset uint64, limit int) ([]*models.Notice, error) {
	all := make([]*models.Notice, 0, len(f.notices))
	for _, n := range f.notices {
		if publishedOnly && !n.IsPublished {
			continue
		}
		all = append(all, n)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })

	var out []*models.Notice
	for i, n := range all {
		if uint64(i) < offset {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, n)
	}
	return out, nil
}

func (f *fakeStore) CountNotices(_ context.Context, publishedOnly bool) (int64, error) {
	count := int64(0)
	for _, n := range f.notices {
		if publishedOnly && !n.IsPublished {
			continue
		}
		count++
	}
	return count, nil
}

func (f *fakeStore) UpdateNotice(_ context.Context, n *models.Notice) error {
	if _, ok := f.notices[n.ID]; !ok {
		return apperrors.ErrNoticeNotFound
	}
	f.notices[n.ID] = n
	return nil
}

func (f *fakeStore) DeleteNotice(_ context.Context, id int64) error {
	if _, ok := f.notices[id]; !ok {
		return apperrors.ErrNoticeNotFound
	}
	delete(f.notices, id)
	return nil
}
