// Package auth resolves users and keeps the CLI login state in a
// marker file under the data directory. The session is an explicit
// value threaded into command handlers, never process-wide state.
package auth

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Albane192/GL02-JSFORCE/pkg/model"
)

// Roles known to the user directory.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

var (
	ErrUnknownUser = errors.New("unknown user")
	ErrNotLoggedIn = errors.New("no user logged in")
	ErrForbidden   = errors.New("permission denied")
)

// UserStore lists the registered users.
type UserStore interface {
	Users() ([]*model.User, error)
}

// Session identifies the logged-in user for one invocation.
type Session struct {
	User *model.User
}

type Directory struct {
	store UserStore
	dir   string
}

func NewDirectory(store UserStore, dir string) *Directory {
	return &Directory{store: store, dir: dir}
}

func (d *Directory) stateFile() string {
	return filepath.Join(d.dir, "current-user")
}

// FindUser looks up a user by id.
func (d *Directory) FindUser(id string) (*model.User, error) {
	users, err := d.store.Users()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownUser, id)
}

// Login records id as the current user.
func (d *Directory) Login(id string) (*model.User, error) {
	user, err := d.FindUser(id)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(d.stateFile(), []byte(user.ID+"\n"), 0o644); err != nil {
		return nil, err
	}
	return user, nil
}

// Current returns the session for the recorded user, or
// ErrNotLoggedIn when no login happened.
func (d *Directory) Current() (*Session, error) {
	raw, err := os.ReadFile(d.stateFile())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotLoggedIn
		}
		return nil, err
	}
	id := strings.TrimSpace(string(raw))
	if id == "" {
		return nil, ErrNotLoggedIn
	}
	user, err := d.FindUser(id)
	if err != nil {
		return nil, err
	}
	return &Session{User: user}, nil
}

// Require checks the session's role against the allowed set. An
// empty set only requires a logged-in user.
func Require(s *Session, roles ...string) error {
	if s == nil || s.User == nil {
		return ErrNotLoggedIn
	}
	if len(roles) == 0 {
		return nil
	}
	for _, role := range roles {
		if s.User.Role == role {
			return nil
		}
	}
	return fmt.Errorf("%w: role %s, allowed: %s", ErrForbidden, s.User.Role, strings.Join(roles, ", "))
}
