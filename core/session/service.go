package session

import (
	"context"
	"errors"
	"sync"

	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/core"
)

var (
	// errors
	ErrNotAuthenticated = errors.New("not authenticated")
	errLoginFailed      = errors.New("login failed")
	errRegisterFailed   = errors.New("registration failed")
)

type (
	// TokenStore persists the session pair (token + serialized profile) across
	// process restarts. Save and Clear are atomic: a Read never observes a
	// token without its profile or vice versa.
	TokenStore interface {
		Save(token string, tchr Teacher) error
		Read() (token string, tchr Teacher, ok bool, err error)
		Clear() error
	}

	// Authenticator is the slice of the API gateway the session manager
	// consumes. It is satisfied by *api.Client.
	Authenticator interface {
		Login(ctx context.Context, teacherID, password string) (token string, tchr Teacher, err error)
		Register(ctx context.Context, nt NewTeacher) error
		Profile(ctx context.Context) (Teacher, error)
	}

	// Service owns the session lifecycle: ANONYMOUS <-> AUTHENTICATED.
	Service struct {
		auth  Authenticator
		store TokenStore
		log   core.Logger

		mu    sync.RWMutex
		creds *Credentials
	}
)

// NewService restores any persisted session pair from the store. A persisted
// token is re-decoded once here; an unreadable store starts anonymous.
func NewService(auth Authenticator, store TokenStore, log core.Logger) *Service {
	svc := &Service{auth: auth, store: store, log: log}
	if token, tchr, ok, err := store.Read(); err != nil {
		log.Warn("session: could not read persisted credentials", err)
	} else if ok {
		creds := NewCredentials(token, tchr)
		svc.creds = &creds
	}
	return svc
}

// Login authenticates against the server and, on success, transitions to
// AUTHENTICATED and persists the pair. All failures come back as error
// results; the cause is the server's message when it gave one.
func (svc *Service) Login(ctx context.Context, teacherID, password string) (Teacher, error) {
	teacherID = core.CleanString(teacherID)
	if err := core.CheckStruct(Login{TeacherID: teacherID, Password: password}, errLoginFailed); err != nil {
		return Teacher{}, err
	}

	token, tchr, err := svc.auth.Login(ctx, teacherID, password)
	if err != nil {
		return Teacher{}, err
	}

	creds := NewCredentials(token, tchr)
	if err := svc.store.Save(token, tchr); err != nil {
		return Teacher{}, err
	}
	svc.mu.Lock()
	svc.creds = &creds
	svc.mu.Unlock()
	return tchr, nil
}

// Register submits a new teacher account. It does not log the account in;
// callers follow up with Login.
func (svc *Service) Register(ctx context.Context, nt NewTeacher) error {
	nt.Name = core.CleanString(nt.Name)
	nt.TeacherID = core.CleanString(nt.TeacherID, true /* lower */)
	nt.Department = core.CleanString(nt.Department)
	if err := core.CheckStruct(nt, errRegisterFailed); err != nil {
		return err
	}
	return svc.auth.Register(ctx, nt)
}

// Logout transitions to ANONYMOUS unconditionally. Calling it while already
// anonymous is a no-op.
func (svc *Service) Logout() {
	svc.mu.Lock()
	svc.creds = nil
	svc.mu.Unlock()
	if err := svc.store.Clear(); err != nil {
		svc.log.Warn("session: could not clear persisted credentials", err)
	}
}

// Authenticated is true iff a token is held and its expiry claim is in the
// future. An expired token is treated as anonymous but is not cleared here;
// clearing happens on explicit Logout or when the gateway observes a 401.
func (svc *Service) Authenticated() bool {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return svc.creds != nil && !svc.creds.Expired()
}

// Current returns the authenticated teacher's profile, if any.
func (svc *Service) Current() (Teacher, bool) {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	if svc.creds == nil || svc.creds.Expired() {
		return Teacher{}, false
	}
	return svc.creds.Teacher, true
}

// RefreshProfile re-fetches the profile from the server and re-persists the
// pair under the current token.
func (svc *Service) RefreshProfile(ctx context.Context) (Teacher, error) {
	svc.mu.RLock()
	creds := svc.creds
	svc.mu.RUnlock()
	if creds == nil || creds.Expired() {
		return Teacher{}, ErrNotAuthenticated
	}

	tchr, err := svc.auth.Profile(ctx)
	if err != nil {
		return Teacher{}, err
	}
	if err := svc.store.Save(creds.Token, tchr); err != nil {
		return Teacher{}, err
	}
	svc.mu.Lock()
	if svc.creds != nil {
		svc.creds.Teacher = tchr
	}
	svc.mu.Unlock()
	return tchr, nil
}
