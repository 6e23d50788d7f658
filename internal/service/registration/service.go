// Package registration drives the account creation form: seven validated
// fields, an asynchronous email uniqueness check and the create call.
package registration

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"time"

	"huerto-hogar/internal/domain"
	"huerto-hogar/internal/validate"

	"golang.org/x/crypto/bcrypt"
)

// DefaultSubmitTimeout bounds the uniqueness check plus the create call.
const DefaultSubmitTimeout = 10 * time.Second

// Result classifies a finished submit attempt.
type Result string

const (
	ResultSuccess            Result = "SUCCESS"
	ResultEmailAlreadyExists Result = "EMAIL_ALREADY_EXISTS"
	ResultError              Result = "ERROR"
)

// FieldErrors carries per-field messages; empty string means valid.
type FieldErrors struct {
	Name            string `json:"name,omitempty"`
	Lastname        string `json:"lastname,omitempty"`
	Email           string `json:"email,omitempty"`
	Password        string `json:"password,omitempty"`
	ConfirmPassword string `json:"confirmPassword,omitempty"`
	Address         string `json:"address,omitempty"`
	Phone           string `json:"phone,omitempty"`
}

// FormState is the snapshot published to observers.
type FormState struct {
	Name            string       `json:"name"`
	Lastname        string       `json:"lastname"`
	Email           string       `json:"email"`
	Password        string       `json:"password"`
	ConfirmPassword string       `json:"confirmPassword"`
	Address         string       `json:"address"`
	Phone           string       `json:"phone"`
	Errors          FieldErrors  `json:"errors"`
	Loading         bool         `json:"loading"`
	Result          Result       `json:"result,omitempty"`
	User            *domain.User `json:"user,omitempty"`
}

// Directory checks uniqueness and persists new users.
type Directory interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, u domain.User) (*domain.User, error)
}

// Service owns one registration form. Create one per screen visit and
// Close it when the screen goes away.
type Service struct {
	mu      sync.Mutex
	state   FormState
	subs    map[int]func(FormState)
	nextID  int
	closed  bool
	dir     Directory
	timeout time.Duration
	logger  *log.Logger
}

// New creates a Service. A non-positive timeout falls back to the default.
func New(dir Directory, timeout time.Duration, logger *log.Logger) *Service {
	if timeout <= 0 {
		timeout = DefaultSubmitTimeout
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		subs:    make(map[int]func(FormState)),
		dir:     dir,
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

func (s *Service) SetName(v string) {
	s.mu.Lock()
	s.state.Name = v
	s.state.Errors.Name = validateWhenTyped(v, validate.Name)
	s.publishLocked()
}

func (s *Service) SetLastname(v string) {
	s.mu.Lock()
	s.state.Lastname = v
	s.state.Errors.Lastname = validateWhenTyped(v, validate.Name)
	s.publishLocked()
}

func (s *Service) SetEmail(v string) {
	s.mu.Lock()
	s.state.Email = v
	s.state.Errors.Email = validateWhenTyped(v, validate.Email)
	s.publishLocked()
}

func (s *Service) SetPassword(v string) {
	s.mu.Lock()
	s.state.Password = v
	s.state.Errors.Password = ""
	s.publishLocked()
}

func (s *Service) SetConfirmPassword(v string) {
	s.mu.Lock()
	s.state.ConfirmPassword = v
	s.state.Errors.ConfirmPassword = ""
	if v != "" {
		s.state.Errors.ConfirmPassword = validate.ConfirmPassword(s.state.Password, v)
	}
	s.publishLocked()
}

func (s *Service) SetAddress(v string) {
	s.mu.Lock()
	s.state.Address = v
	s.state.Errors.Address = validateWhenTyped(v, validate.Address)
	s.publishLocked()
}

func (s *Service) SetPhone(v string) {
	s.mu.Lock()
	s.state.Phone = v
	s.state.Errors.Phone = validate.Phone(v)
	s.publishLocked()
}

// ClearResult acknowledges the terminal result and returns to editing.
func (s *Service) ClearResult() {
	s.mu.Lock()
	s.state.Result = ""
	s.publishLocked()
}

// Reset discards the whole form, e.g. after the success dialog closes.
func (s *Service) Reset() {
	s.mu.Lock()
	s.state = FormState{}
	s.publishLocked()
}

// Close marks the form disposed; in-flight results are discarded.
func (s *Service) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// Submit re-validates every field, then checks email uniqueness and
// creates the user. Duplicate submits while one is in flight are no-ops.
func (s *Service) Submit(ctx context.Context) {
	s.mu.Lock()
	if s.closed || s.state.Loading {
		s.mu.Unlock()
		return
	}

	errs := FieldErrors{
		Name:            validate.Name(s.state.Name),
		Lastname:        validate.Name(s.state.Lastname),
		Email:           validate.Email(s.state.Email),
		Password:        validate.Password(s.state.Password),
		ConfirmPassword: validate.ConfirmPassword(s.state.Password, s.state.ConfirmPassword),
		Address:         validate.Address(s.state.Address),
		Phone:           validate.Phone(s.state.Phone),
	}
	if errs != (FieldErrors{}) {
		s.state.Errors = errs
		s.publishLocked()
		return
	}

	s.state.Errors = FieldErrors{}
	s.state.Loading = true
	user := domain.User{
		Email:    validate.NormalizeEmail(s.state.Email),
		Name:     s.state.Name,
		Lastname: s.state.Lastname,
		Role:     domain.RoleCustomer,
		Address:  s.state.Address,
		Phone:    s.state.Phone,
	}
	password := s.state.Password
	s.publishLocked()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	result, created := s.resolve(ctx, user, password)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.state.Loading = false
	s.state.Result = result
	s.state.User = created
	s.publishLocked()
}

// resolve runs the collaborator calls outside the state lock and maps
// every fault to ResultError so nothing escapes to the caller.
func (s *Service) resolve(ctx context.Context, user domain.User, password string) (Result, *domain.User) {
	exists, err := s.dir.ExistsByEmail(ctx, user.Email)
	if err != nil {
		s.logger.Printf("registration: uniqueness check failed: %v", err)
		return ResultError, nil
	}
	if exists {
		// Holistic result, deliberately not attached to the email field.
		return ResultEmailAlreadyExists, nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Printf("registration: hash password: %v", err)
		return ResultError, nil
	}
	user.PasswordHash = string(hashed)
	created, err := s.dir.Create(ctx, user)
	if err != nil {
		// Lost race with a concurrent signup for the same email.
		if errors.Is(err, domain.ErrAlreadyExists) {
			return ResultEmailAlreadyExists, nil
		}
		s.logger.Printf("registration: create failed: %v", err)
		return ResultError, nil
	}
	return ResultSuccess, created
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

// validateWhenTyped skips validation for untouched (empty) fields so the
// form does not complain before the user started typing.
func validateWhenTyped(v string, rule func(string) string) string {
	if len(v) == 0 {
		return ""
	}
	return rule(v)
}
