package session

import (
	"testing"

	"huerto-hogar/internal/domain"
)

func TestCurrentUserCopy(t *testing.T) {
	m := NewManager()
	if m.CurrentUser() != nil {
		t.Fatal("expected no user initially")
	}

	m.SetCurrentUser(&domain.User{ID: "u1", Name: "Anai"})
	got := m.CurrentUser()
	if got == nil || got.ID != "u1" {
		t.Fatalf("unexpected user: %+v", got)
	}

	got.Name = "changed"
	if m.CurrentUser().Name != "Anai" {
		t.Fatal("mutation of returned copy leaked into session")
	}
}

func TestLogoutRunsHooks(t *testing.T) {
	m := NewManager()
	m.SetCurrentUser(&domain.User{ID: "u1"})

	ran := 0
	m.OnLogout(func() { ran++ })
	m.Logout()

	if m.CurrentUser() != nil {
		t.Fatal("expected user cleared")
	}
	if ran != 1 {
		t.Fatalf("expected hook run once, got %d", ran)
	}
}
