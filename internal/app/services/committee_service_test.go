package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rcaa/rcaconnect/internal/app/models"
	"github.com/rcaa/rcaconnect/internal/app/models/dto"
	"github.com/rcaa/rcaconnect/internal/pkg/apperrors"
)

func datePtr(t time.Time) *time.Time { return &t }

func TestCreateActiveSessionDeactivatesOthers(t *testing.T) {
	store := newFakeStore()
	svc := NewCommitteeService(store)
	ctx := context.Background()

	first, err := svc.CreateSession(ctx, dto.CreateSessionRequest{Name: "EC 2023-24", IsActive: true})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	second, err := svc.CreateSession(ctx, dto.CreateSessionRequest{Name: "EC 2024-25", IsActive: true})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	if store.sessions[first.ID].IsActive {
		t.Error("first session should have been deactivated")
	}
	if !store.sessions[second.ID].IsActive {
		t.Error("second session should be active")
	}

	active, err := svc.GetActive(ctx)
	if err != nil {
		t.Fatalf("GetActive: %v", err)
	}
	if active.ID != second.ID {
		t.Errorf("active session = %d, want %d", active.ID, second.ID)
	}
}

func TestActivateSession(t *testing.T) {
	store := newFakeStore()
	svc := NewCommitteeService(store)
	ctx := context.Background()

	a, _ := svc.CreateSession(ctx, dto.CreateSessionRequest{Name: "EC 2022-23", IsActive: true})
	b, _ := svc.CreateSession(ctx, dto.CreateSessionRequest{Name: "EC 2023-24"})

	if _, err := svc.ActivateSession(ctx, b.ID); err != nil {
		t.Fatalf("ActivateSession: %v", err)
	}
	if store.sessions[a.ID].IsActive {
		t.Error("previous active session not deactivated")
	}
	if !store.sessions[b.ID].IsActive {
		t.Error("target session not activated")
	}

	if _, err := svc.ActivateSession(ctx, 9999); !errors.Is(err, apperrors.ErrSessionNotFound) {
		t.Errorf("error = %v, want ErrSessionNotFound", err)
	}
}

func TestGetActiveNoneExists(t *testing.T) {
	svc := NewCommitteeService(newFakeStore())
	if _, err := svc.GetActive(context.Background()); !errors.Is(err, apperrors.ErrSessionNotFound) {
		t.Errorf("error = %v, want ErrSessionNotFound", err)
	}
}

func TestMembersOrderedByRank(t *testing.T) {
	store := newFakeStore()
	svc := NewCommitteeService(store)
	ctx := context.Background()

	sess, err := svc.CreateSession(ctx, dto.CreateSessionRequest{Name: "EC 2024-25", IsActive: true})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	two := 2
	one := 1
	add := func(name, position string, rank *int) {
		t.Helper()
		if _, err := svc.AddMember(ctx, dto.CreateMemberRequest{
			SessionID: sess.ID, Name: name, Position: position, Rank: rank,
		}); err != nil {
			t.Fatalf("AddMember(%s): %v", name, err)
		}
	}
	add("Treasurer A", "Treasurer", nil) // default rank 100
	add("Secretary B", "General Secretary", &two)
	add("President C", "President", &one)
	add("Treasurer D", "Treasurer", nil) // ties break by insertion order

	resp, err := svc.GetSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}

	wantOrder := []string{"President C", "Secretary B", "Treasurer A", "Treasurer D"}
	if len(resp.Members) != len(wantOrder) {
		t.Fatalf("members = %d, want %d", len(resp.Members), len(wantOrder))
	}
	for i, want := range wantOrder {
		if resp.Members[i].Name != want {
			t.Errorf("members[%d] = %q, want %q", i, resp.Members[i].Name, want)
		}
	}
	if resp.Members[2].Rank != models.DefaultMemberRank {
		t.Errorf("default rank = %d, want %d", resp.Members[2].Rank, models.DefaultMemberRank)
	}
}

func TestAddMemberUnknownSession(t *testing.T) {
	svc := NewCommitteeService(newFakeStore())
	_, err := svc.AddMember(context.Background(), dto.CreateMemberRequest{
		SessionID: 42, Name: "Ghost", Position: "President",
	})
	if !errors.Is(err, apperrors.ErrSessionNotFound) {
		t.Errorf("error = %v, want ErrSessionNotFound", err)
	}
}

func TestListHistoryOrder(t *testing.T) {
	store := newFakeStore()
	svc := NewCommitteeService(store)
	ctx := context.Background()

	if _, err := svc.CreateSession(ctx, dto.CreateSessionRequest{
		Name: "EC 2021-22", StartDate: datePtr(time.Date(2021, 7, 1, 0, 0, 0, 0, time.UTC)),
	}); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if _, err := svc.CreateSession(ctx, dto.CreateSessionRequest{Name: "Undated"}); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if _, err := svc.CreateSession(ctx, dto.CreateSessionRequest{
		Name: "EC 2023-24", StartDate: datePtr(time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)),
	}); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	sessions, pagination, err := svc.ListHistory(ctx, 1, 10)
	if err != nil {
		t.Fatalf("ListHistory: %v", err)
	}
	if pagination.TotalItems != 3 {
		t.Errorf("total = %d, want 3", pagination.TotalItems)
	}

	wantOrder := []string{"EC 2023-24", "EC 2021-22", "Undated"}
	for i, want := range wantOrder {
		if sessions[i].Name != want {
			t.Errorf("sessions[%d] = %q, want %q", i, sessions[i].Name, want)
		}
	}
}

func TestUpdateSessionPartial(t *testing.T) {
	store := newFakeStore()
	svc := NewCommitteeService(store)
	ctx := context.Background()

	sess, _ := svc.CreateSession(ctx, dto.CreateSessionRequest{Name: "EC 2024-25", IsActive: true})
	other, _ := svc.CreateSession(ctx, dto.CreateSessionRequest{Name: "Old"})

	name := "EC 2024-2025"
	active := true
	updated, err := svc.UpdateSession(ctx, sess.ID, dto.UpdateSessionRequest{Name: &name})
	if err != nil {
		t.Fatalf("UpdateSession: %v", err)
	}
	if updated.Name != name {
		t.Errorf("name = %q, want %q", updated.Name, name)
	}

	// Activating through update still deactivates everything else.
	if _, err := svc.UpdateSession(ctx, other.ID, dto.UpdateSessionRequest{IsActive: &active}); err != nil {
		t.Fatalf("UpdateSession: %v", err)
	}
	if store.sessions[sess.ID].IsActive {
		t.Error("previously active session should be deactivated")
	}
	if !store.sessions[other.ID].IsActive {
		t.Error("updated session should be active")
	}
}

func TestUpdateMemberPartial(t *testing.T) {
	store := newFakeStore()
	svc := NewCommitteeService(store)
	ctx := context.Background()

	sess, _ := svc.CreateSession(ctx, dto.CreateSessionRequest{Name: "EC 2024-25"})
	member, err := svc.AddMember(ctx, dto.CreateMemberRequest{
		SessionID: sess.ID, Name: "Karim Rahman", Position: "Treasurer",
	})
	if err != nil {
		t.Fatalf("AddMember: %v", err)
	}

	position := "General Secretary"
	rank := 2
	updated, err := svc.UpdateMember(ctx, member.ID, dto.UpdateMemberRequest{
		Position: &position, Rank: &rank,
	})
	if err != nil {
		t.Fatalf("UpdateMember: %v", err)
	}
	if updated.Position != position || updated.Rank != rank {
		t.Errorf("got %q rank %d, want %q rank %d", updated.Position, updated.Rank, position, rank)
	}
	if updated.Name != "Karim Rahman" {
		t.Errorf("name changed unexpectedly: %q", updated.Name)
	}

	blank := "  "
	if _, err := svc.UpdateMember(ctx, member.ID, dto.UpdateMemberRequest{Name: &blank}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("blank name error = %v, want ErrValidationFailed", err)
	}

	if _, err := svc.UpdateMember(ctx, 9999, dto.UpdateMemberRequest{Position: &position}); !errors.Is(err, apperrors.ErrMemberNotFound) {
		t.Errorf("unknown member error = %v, want ErrMemberNotFound", err)
	}
}
