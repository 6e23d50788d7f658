// Package login drives the login form: field state, validation, the
// submit state machine and its one-shot terminal result.
package login

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"time"

	"huerto-hogar/internal/domain"
	"huerto-hogar/internal/validate"
)

// DefaultSubmitTimeout bounds the credential lookup.
const DefaultSubmitTimeout = 10 * time.Second

// Result classifies a finished submit attempt.
type Result string

const (
	ResultSuccess            Result = "SUCCESS"
	ResultInvalidCredentials Result = "INVALID_CREDENTIALS"
	ResultError              Result = "ERROR"
)

// FieldErrors carries per-field messages; empty string means valid.
type FieldErrors struct {
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

// FormState is the snapshot published to observers. Result is set at most
// once per submit attempt and stays until ClearResult.
type FormState struct {
	Email    string       `json:"email"`
	Password string       `json:"password"`
	Errors   FieldErrors  `json:"errors"`
	Loading  bool         `json:"loading"`
	Result   Result       `json:"result,omitempty"`
	User     *domain.User `json:"user,omitempty"`
}

// Directory looks up users by credentials. Implementations return
// domain.ErrNotFound when email and password do not match any account.
type Directory interface {
	FindByCredentials(ctx context.Context, email, password string) (*domain.User, error)
}

// Session records the signed-in user.
type Session interface {
	SetCurrentUser(u *domain.User)
}

// Service owns one login form. Create one per screen visit and Close it
// when the screen goes away.
type Service struct {
	mu      sync.Mutex
	state   FormState
	subs    map[int]func(FormState)
	nextID  int
	closed  bool
	dir     Directory
	session Session
	timeout time.Duration
	logger  *log.Logger
}

// New creates a Service. A non-positive timeout falls back to the default.
func New(dir Directory, session Session, timeout time.Duration, logger *log.Logger) *Service {
	if timeout <= 0 {
		timeout = DefaultSubmitTimeout
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		subs:    make(map[int]func(FormState)),
		dir:     dir,
		session: session,
		timeout: timeout,
		logger:  logger,
	}
}

// Subscribe registers fn and pushes the current snapshot before any
// later mutation can reach it.
func (s *Service) Subscribe(fn func(FormState)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	fn(s.state)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Snapshot returns the current form state.
func (s *Service) Snapshot() FormState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetEmail updates the field and re-validates it incrementally. An empty
// value clears the error instead of complaining before the user typed.
func (s *Service) SetEmail(email string) {
	s.mu.Lock()
	s.state.Email = email
	s.state.Errors.Email = ""
	if validate.NormalizeEmail(email) != "" {
		s.state.Errors.Email = validate.Email(email)
	}
	s.publishLocked()
}

// SetPassword updates the field and clears its error.
func (s *Service) SetPassword(password string) {
	s.mu.Lock()
	s.state.Password = password
	s.state.Errors.Password = ""
	s.publishLocked()
}

// ClearResult acknowledges the terminal result and returns to editing.
func (s *Service) ClearResult() {
	s.mu.Lock()
	s.state.Result = ""
	s.publishLocked()
}

// Close marks the form disposed. A submit still in flight is discarded
// rather than applied to released state.
func (s *Service) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// Submit runs exhaustive validation and, if it passes, resolves the
// credentials against the directory. Re-invoking while a submit is in
// flight is a no-op, so each attempt yields exactly one terminal result.
func (s *Service) Submit(ctx context.Context) {
	s.mu.Lock()
	if s.closed || s.state.Loading {
		s.mu.Unlock()
		return
	}

	errs := FieldErrors{
		Email:    validate.Email(s.state.Email),
		Password: validate.Password(s.state.Password),
	}
	if errs != (FieldErrors{}) {
		s.state.Errors = errs
		s.publishLocked()
		return
	}

	s.state.Errors = FieldErrors{}
	s.state.Loading = true
	email := validate.NormalizeEmail(s.state.Email)
	password := s.state.Password
	s.publishLocked()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	user, err := s.dir.FindByCredentials(ctx, email, password)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.state.Loading = false
	switch {
	case err == nil:
		s.session.SetCurrentUser(user)
		s.state.Result = ResultSuccess
		s.state.User = user
	case errors.Is(err, domain.ErrNotFound):
		// Holistic failure: no field is to blame.
		s.state.Result = ResultInvalidCredentials
	default:
		s.logger.Printf("login: credential lookup failed: %v", err)
		s.state.Result = ResultError
	}
	s.publishLocked()
}

// publishLocked notifies subscribers synchronously with the lock held,
// so snapshots arrive in commit order. Callbacks must not call back into
// the Service. The caller must hold s.mu; it is released here.
func (s *Service) publishLocked() {
	snap := s.state
	for _, fn := range s.subs {
		fn(snap)
	}
	s.mu.Unlock()
}
