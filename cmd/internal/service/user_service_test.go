package service

import (
	"context"
	"doctorsportal/cmd/internal/domain/entity"
	"doctorsportal/cmd/internal/utils/apierror"
	"errors"
	"net/http"
	"testing"
)

func TestUserService_CreateUser(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewUserService(repo, newValidator(), stubIssuer{})
	ctx := context.Background()

	resp, apierr := svc.CreateUser(ctx, &CreateUserRequest{Name: "Ana", Email: "a@x.com"})
	if apierr != nil {
		t.Fatalf("unexpected error: %v", apierr)
	}
	if !resp.Acknowledged || resp.InsertedID == "" {
		t.Errorf("expected acknowledged insert, got %+v", resp)
	}

	if _, apierr := svc.CreateUser(ctx, &CreateUserRequest{Name: "Ana", Email: "a@x.com"}); apierr != apierror.UserAlreadyExistsError {
		t.Errorf("expected user already exists, got %v", apierr)
	}
	if _, apierr := svc.CreateUser(ctx, &CreateUserRequest{Email: "nope"}); apierr == nil || apierr.Code() != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid email, got %v", apierr)
	}
}

// lateDuplicateUserRepo misses the duplicate on lookup and hits the unique
// index on insert, as a concurrent sign-up would.
type lateDuplicateUserRepo struct {
	*mockUserRepo
}

func (lateDuplicateUserRepo) ExistsByEmail(context.Context, string) (bool, error) {
	return false, nil
}

func (lateDuplicateUserRepo) Save(context.Context, *entity.User) error {
	return entity.ErrDuplicateKey
}

func TestUserService_CreateUser_DuplicateOnInsert(t *testing.T) {
	svc := NewUserService(lateDuplicateUserRepo{&mockUserRepo{}}, newValidator(), stubIssuer{})

	_, apierr := svc.CreateUser(context.Background(), &CreateUserRequest{Name: "Ana", Email: "a@x.com"})
	if apierr != apierror.UserAlreadyExistsError {
		t.Errorf("expected user already exists, got %v", apierr)
	}
}

func TestUserService_IsAdmin(t *testing.T) {
	repo := &mockUserRepo{users: []*entity.User{
		{Email: "admin@x.com", Role: entity.RoleAdmin},
		{Email: "a@x.com"},
	}}
	svc := NewUserService(repo, newValidator(), stubIssuer{})

	tests := map[string]bool{"admin@x.com": true, "a@x.com": false, "ghost@x.com": false}
	for email, want := range tests {
		got, apierr := svc.IsAdmin(context.Background(), email)
		if apierr != nil {
			t.Fatalf("unexpected error: %v", apierr)
		}
		if got.IsAdmin != want {
			t.Errorf("IsAdmin(%s) = %v, want %v", email, got.IsAdmin, want)
		}
	}
}

func TestUserService_MakeAdmin(t *testing.T) {
	user := &entity.User{ID: entity.NewID(), Email: "a@x.com"}
	repo := &mockUserRepo{users: []*entity.User{user}}
	svc := NewUserService(repo, newValidator(), stubIssuer{})
	ctx := context.Background()

	resp, apierr := svc.MakeAdmin(ctx, user.ID)
	if apierr != nil {
		t.Fatalf("unexpected error: %v", apierr)
	}
	if resp.MatchedCount != 1 || resp.ModifiedCount != 1 || resp.UpsertedCount != 0 {
		t.Errorf("unexpected response: %+v", resp)
	}
	if user.Role != entity.RoleAdmin {
		t.Errorf("expected admin role, got %q", user.Role)
	}

	id := entity.NewID()
	upserted, apierr := svc.MakeAdmin(ctx, id)
	if apierr != nil {
		t.Fatalf("unexpected error: %v", apierr)
	}
	if upserted.UpsertedCount != 1 || upserted.UpsertedID != id {
		t.Errorf("expected upsert of %s, got %+v", id, upserted)
	}

	if _, apierr := svc.MakeAdmin(ctx, "not-an-id"); apierr != apierror.InvalidIdentifierError {
		t.Errorf("expected invalid identifier, got %v", apierr)
	}
}

func TestUserService_IssueToken(t *testing.T) {
	repo := &mockUserRepo{users: []*entity.User{{Email: "a@x.com"}}}
	svc := NewUserService(repo, newValidator(), stubIssuer{})
	ctx := context.Background()

	resp, apierr := svc.IssueToken(ctx, "a@x.com")
	if apierr != nil {
		t.Fatalf("unexpected error: %v", apierr)
	}
	if resp.AccessToken != "token-for-a@x.com" {
		t.Errorf("unexpected token %q", resp.AccessToken)
	}

	resp, apierr = svc.IssueToken(ctx, "ghost@x.com")
	if apierr == nil || apierr.Code() != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", apierr)
	}
	if resp == nil || resp.AccessToken != "" {
		t.Errorf("expected empty token body, got %+v", resp)
	}

	if _, apierr := svc.IssueToken(ctx, ""); apierr == nil || apierr.Code() != http.StatusBadRequest {
		t.Errorf("expected 400 for missing email, got %v", apierr)
	}
}

func TestUserService_IssueToken_SignFailure(t *testing.T) {
	repo := &mockUserRepo{users: []*entity.User{{Email: "a@x.com"}}}
	svc := NewUserService(repo, newValidator(), stubIssuer{err: errors.New("no key")})

	if _, apierr := svc.IssueToken(context.Background(), "a@x.com"); apierr != apierror.InternalServerError {
		t.Errorf("expected internal error, got %v", apierr)
	}
}
