package registration

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"huerto-hogar/internal/domain"
)

type stubDirectory struct {
	exists     bool
	existsErr  error
	created    *domain.User
	createErr  error
	lastCreate domain.User
	creates    int
	release    chan struct{} // when set, ExistsByEmail blocks until closed
	waitCtx    bool          // when set, ExistsByEmail blocks until the deadline
	mu         sync.Mutex
}

func (s *stubDirectory) ExistsByEmail(ctx context.Context, _ string) (bool, error) {
	if s.release != nil {
		<-s.release
	}
	if s.waitCtx {
		<-ctx.Done()
		return false, ctx.Err()
	}
	return s.exists, s.existsErr
}

func (s *stubDirectory) Create(_ context.Context, u domain.User) (*domain.User, error) {
	s.mu.Lock()
	s.creates++
	s.lastCreate = u
	s.mu.Unlock()
	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.created != nil {
		return s.created, nil
	}
	out := u
	out.ID = "generated"
	return &out, nil
}

func (s *stubDirectory) createCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creates
}

func fillValid(svc *Service) {
	svc.SetName("Anai")
	svc.SetLastname("Rojas")
	svc.SetEmail("ana@duocuc.cl")
	svc.SetPassword("abc123")
	svc.SetConfirmPassword("abc123")
	svc.SetAddress("Av. Siempre Viva 742")
	svc.SetPhone("987654321")
}

func TestSubmitValidationFailureSkipsDirectory(t *testing.T) {
	dir := &stubDirectory{}
	svc := New(dir, 0, nil)
	fillValid(svc)
	svc.SetConfirmPassword("abc124")

	svc.Submit(context.Background())

	state := svc.Snapshot()
	if state.Result != "" {
		t.Fatalf("expected no terminal result, got %q", state.Result)
	}
	if state.Errors.ConfirmPassword != "Las contraseñas no coinciden" {
		t.Fatalf("unexpected confirm error: %q", state.Errors.ConfirmPassword)
	}
	if state.Errors.Password != "" {
		t.Fatalf("mismatch must only hit confirm field, got %q", state.Errors.Password)
	}
	if dir.createCount() != 0 {
		t.Fatal("expected no create call")
	}
}

func TestSubmitEmptyFormReportsEveryField(t *testing.T) {
	svc := New(&stubDirectory{}, 0, nil)
	svc.Submit(context.Background())

	errs := svc.Snapshot().Errors
	if errs.Name == "" || errs.Lastname == "" || errs.Email == "" ||
		errs.Password == "" || errs.ConfirmPassword == "" || errs.Address == "" {
		t.Fatalf("expected all required fields flagged: %+v", errs)
	}
	if errs.Phone != "" {
		t.Fatalf("phone is optional, got %q", errs.Phone)
	}
}

func TestSubmitSuccessCreatesCustomerRole(t *testing.T) {
	dir := &stubDirectory{}
	svc := New(dir, 0, nil)
	fillValid(svc)

	svc.Submit(context.Background())

	state := svc.Snapshot()
	if state.Result != ResultSuccess {
		t.Fatalf("expected success, got %q", state.Result)
	}
	if state.User == nil || state.User.ID != "generated" {
		t.Fatalf("expected created user snapshot, got %+v", state.User)
	}
	if dir.lastCreate.Role != domain.RoleCustomer {
		t.Fatalf("expected default role, got %q", dir.lastCreate.Role)
	}
	if dir.lastCreate.Email != "ana@duocuc.cl" {
		t.Fatalf("expected normalized email, got %q", dir.lastCreate.Email)
	}
	if dir.lastCreate.PasswordHash == "" || dir.lastCreate.PasswordHash == "abc123" {
		t.Fatal("expected password hashed before create")
	}
}

func TestSubmitExistingEmailIsHolistic(t *testing.T) {
	dir := &stubDirectory{exists: true}
	svc := New(dir, 0, nil)
	fillValid(svc)

	svc.Submit(context.Background())

	state := svc.Snapshot()
	if state.Result != ResultEmailAlreadyExists {
		t.Fatalf("expected email exists result, got %q", state.Result)
	}
	if state.Errors.Email != "" {
		t.Fatalf("holistic result must not set the email field: %q", state.Errors.Email)
	}
	if dir.createCount() != 0 {
		t.Fatal("expected no user created")
	}
}

func TestSubmitCreateRaceMapsToEmailExists(t *testing.T) {
	dir := &stubDirectory{createErr: domain.ErrAlreadyExists}
	svc := New(dir, 0, nil)
	fillValid(svc)

	svc.Submit(context.Background())

	if got := svc.Snapshot().Result; got != ResultEmailAlreadyExists {
		t.Fatalf("expected email exists result, got %q", got)
	}
}

func TestSubmitDirectoryFaultMapsToError(t *testing.T) {
	dir := &stubDirectory{existsErr: errors.New("storage unavailable")}
	svc := New(dir, 0, nil)
	fillValid(svc)

	svc.Submit(context.Background())

	if got := svc.Snapshot().Result; got != ResultError {
		t.Fatalf("expected error result, got %q", got)
	}
}

func TestSubmitTimeoutMapsToError(t *testing.T) {
	dir := &stubDirectory{waitCtx: true}
	svc := New(dir, 5*time.Millisecond, nil)
	fillValid(svc)

	svc.Submit(context.Background())

	state := svc.Snapshot()
	if state.Result != ResultError {
		t.Fatalf("expected error result after timeout, got %q", state.Result)
	}
	if state.Loading {
		t.Fatal("expected loading cleared after timeout")
	}
	if dir.createCount() != 0 {
		t.Fatal("expected no user created after timeout")
	}
}

func TestDuplicateSubmitSuppressed(t *testing.T) {
	release := make(chan struct{})
	dir := &stubDirectory{release: release}
	svc := New(dir, 0, nil)
	fillValid(svc)

	done := make(chan struct{})
	go func() {
		svc.Submit(context.Background())
		close(done)
	}()

	waitFor(t, func() bool { return svc.Snapshot().Loading })
	svc.Submit(context.Background())
	close(release)
	<-done

	if dir.createCount() != 1 {
		t.Fatalf("expected 1 create, got %d", dir.createCount())
	}
}

func TestCloseDiscardsInFlightResult(t *testing.T) {
	release := make(chan struct{})
	dir := &stubDirectory{release: release}
	svc := New(dir, 0, nil)
	fillValid(svc)

	done := make(chan struct{})
	go func() {
		svc.Submit(context.Background())
		close(done)
	}()

	waitFor(t, func() bool { return svc.Snapshot().Loading })
	svc.Close()
	close(release)
	<-done

	if got := svc.Snapshot().Result; got != "" {
		t.Fatalf("expected result discarded after close, got %q", got)
	}
}

func TestResetClearsForm(t *testing.T) {
	svc := New(&stubDirectory{}, 0, nil)
	fillValid(svc)
	svc.Submit(context.Background())
	svc.Reset()
	if got := svc.Snapshot(); got != (FormState{}) {
		t.Fatalf("expected empty form, got %+v", got)
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}
