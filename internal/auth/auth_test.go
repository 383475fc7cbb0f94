package auth

import (
	"errors"
	"testing"

	"github.com/Albane192/GL02-JSFORCE/pkg/model"
)

type memUsers struct {
	users []*model.User
}

func (m *memUsers) Users() ([]*model.User, error) { return m.users, nil }

func testDirectory(t *testing.T) *Directory {
	t.Helper()
	store := &memUsers{users: []*model.User{
		{ID: "admin", Name: "Alice Admin", Role: RoleAdmin},
		{ID: "dupont", Name: "Paul Dupont", Role: RoleTeacher},
	}}
	return NewDirectory(store, t.TempDir())
}

func TestLoginAndCurrent(t *testing.T) {
	users := testDirectory(t)

	user, err := users.Login("admin")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.Role != RoleAdmin {
		t.Errorf("expected an admin, got %s", user.Role)
	}

	session, err := users.Current()
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if session.User.ID != "admin" {
		t.Errorf("expected the logged-in admin, got %s", session.User.ID)
	}
}

func TestCurrent_NotLoggedIn(t *testing.T) {
	users := testDirectory(t)
	if _, err := users.Current(); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("expected ErrNotLoggedIn, got %v", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	users := testDirectory(t)
	if _, err := users.Login("ghost"); !errors.Is(err, ErrUnknownUser) {
		t.Errorf("expected ErrUnknownUser, got %v", err)
	}
	if _, err := users.Current(); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("a failed login must not record a user, got %v", err)
	}
}

func TestRequire(t *testing.T) {
	session := &Session{User: &model.User{ID: "dupont", Role: RoleTeacher}}

	if err := Require(session); err != nil {
		t.Errorf("no role constraint only needs a session, got %v", err)
	}
	if err := Require(session, RoleTeacher, RoleAdmin); err != nil {
		t.Errorf("matching role must pass, got %v", err)
	}
	if err := Require(session, RoleAdmin); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
	if err := Require(nil, RoleAdmin); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("expected ErrNotLoggedIn for a nil session, got %v", err)
	}
}
