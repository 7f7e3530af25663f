package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rcaa/rcaconnect/internal/app/models"
	"github.com/rcaa/rcaconnect/internal/app/models/dto"
	"github.com/rcaa/rcaconnect/internal/pkg/apperrors"
	"github.com/rcaa/rcaconnect/internal/pkg/auth"
)

func TestChangePassword(t *testing.T) {
	store := newFakeStore()
	user := store.addUser("member@rca.com", mustHash(t, "old-secret"), models.RoleAlumni, true)
	svc := NewUserService(store)
	ctx := context.Background()

	err := svc.ChangePassword(ctx, user.ID, dto.ChangePasswordRequest{
		OldPassword: "wrong", NewPassword: "new-secret",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("wrong old password: error = %v, want ErrInvalidCredentials", err)
	}

	err = svc.ChangePassword(ctx, user.ID, dto.ChangePasswordRequest{
		OldPassword: "old-secret", NewPassword: "new-secret",
	})
	if err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	if !auth.CheckPassword(store.users[user.ID].Password, "new-secret") {
		t.Error("new password does not verify")
	}
	if auth.CheckPassword(store.users[user.ID].Password, "old-secret") {
		t.Error("old password still verifies")
	}
}

func TestUpdateMyProfilePartial(t *testing.T) {
	store := newFakeStore()
	user := store.addUser("member@rca.com", "x", models.RoleAlumni, true)
	store.profiles[user.ID].Series = "2015"
	store.profiles[user.ID].Department = "CSE"
	svc := NewUserService(store)
	ctx := context.Background()

	bio := "Hello there"
	blood := "b-"
	resp, err := svc.UpdateMyProfile(ctx, user.ID, dto.UpdateProfileRequest{
		Bio:        &bio,
		BloodGroup: &blood,
	})
	if err != nil {
		t.Fatalf("UpdateMyProfile: %v", err)
	}

	if resp.Bio == nil || *resp.Bio != bio {
		t.Errorf("bio = %v, want %q", resp.Bio, bio)
	}
	if resp.BloodGroup == nil || *resp.BloodGroup != models.BloodBNeg {
		t.Errorf("blood group = %v, want B-", resp.BloodGroup)
	}
	// Untouched fields keep their stored values.
	if resp.Series != "2015" || resp.Department != "CSE" {
		t.Errorf("untouched fields changed: series=%q department=%q", resp.Series, resp.Department)
	}
}

func TestUpdateMyProfileRejectsBadValues(t *testing.T) {
	store := newFakeStore()
	user := store.addUser("member@rca.com", "x", models.RoleAlumni, true)
	svc := NewUserService(store)
	ctx := context.Background()

	blank := "  "
	if _, err := svc.UpdateMyProfile(ctx, user.ID, dto.UpdateProfileRequest{FullName: &blank}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("blank name: error = %v, want ErrValidationFailed", err)
	}

	unknown := "Z+"
	if _, err := svc.UpdateMyProfile(ctx, user.ID, dto.UpdateProfileRequest{BloodGroup: &unknown}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("unknown blood group: error = %v, want ErrValidationFailed", err)
	}
}

func TestAdminCreateUserDefaults(t *testing.T) {
	store := newFakeStore()
	svc := NewUserService(store)
	ctx := context.Background()

	resp, err := svc.CreateUser(ctx, dto.AdminCreateUserRequest{
		Email:    "new.admin@rca.com",
		Password: "secret123",
		Role:     "admin",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if resp.Role != models.RoleAdmin {
		t.Errorf("role = %q, want admin", resp.Role)
	}
	if !resp.IsActive {
		t.Error("created user should default to active")
	}
	// Full name falls back to the e-mail local part; academic fields stay
	// blank placeholders.
	if resp.Profile == nil || resp.Profile.FullName != "new.admin" {
		t.Errorf("profile = %+v, want full name new.admin", resp.Profile)
	}
	if resp.Profile.Series != "" || resp.Profile.UniversityID != "" {
		t.Errorf("academic fields should be blank: %+v", resp.Profile)
	}
}

func TestAdminUpdateUser(t *testing.T) {
	store := newFakeStore()
	user := store.addUser("member@rca.com", "x", models.RolePending, true)
	svc := NewUserService(store)
	ctx := context.Background()

	role := "alumni"
	inactive := false
	resp, err := svc.UpdateUser(ctx, user.ID, dto.AdminUpdateUserRequest{Role: &role, IsActive: &inactive})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if resp.Role != models.RoleAlumni || resp.IsActive {
		t.Errorf("user = role %q active %v, want alumni/false", resp.Role, resp.IsActive)
	}

	if _, err := svc.UpdateUser(ctx, user.ID, dto.AdminUpdateUserRequest{}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("empty update: error = %v, want ErrValidationFailed", err)
	}

	bad := "superuser"
	if _, err := svc.UpdateUser(ctx, user.ID, dto.AdminUpdateUserRequest{Role: &bad}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("unknown role: error = %v, want ErrValidationFailed", err)
	}
}

func TestDeleteUserCascadesProfile(t *testing.T) {
	store := newFakeStore()
	user := store.addUser("member@rca.com", "x", models.RoleAlumni, true)
	svc := NewUserService(store)
	ctx := context.Background()

	if err := svc.DeleteUser(ctx, user.ID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if _, err := svc.GetUser(ctx, user.ID); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("error = %v, want ErrUserNotFound", err)
	}
	if _, ok := store.profiles[user.ID]; ok {
		t.Error("profile should cascade with the user")
	}

	if err := svc.DeleteUser(ctx, 9999); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("error = %v, want ErrUserNotFound", err)
	}
}

func TestListUsersPagination(t *testing.T) {
	store := newFakeStore()
	for i := 0; i < 25; i++ {
		store.addUser(string(rune('a'+i))+"@rca.com", "x", models.RoleAlumni, true)
	}
	svc := NewUserService(store)

	users, pagination, err := svc.ListUsers(context.Background(), 2, 10)
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 10 {
		t.Errorf("page size = %d, want 10", len(users))
	}
	if pagination.TotalItems != 25 || pagination.TotalPages != 3 || pagination.CurrentPage != 2 {
		t.Errorf("pagination = %+v", pagination)
	}
}
