// Package session holds the current signed-in user for the process.
// It replaces an ambient singleton: owners receive it as a dependency.
package session

import (
	"sync"

	"huerto-hogar/internal/domain"
)

// Manager is the single writer for the session user.
type Manager struct {
	mu       sync.Mutex
	user     *domain.User
	onLogout []func()
}

func NewManager() *Manager {
	return &Manager{}
}

// SetCurrentUser records the user after a successful login.
func (m *Manager) SetCurrentUser(u *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = u
}

// CurrentUser returns a copy of the session user, or nil when signed out.
func (m *Manager) CurrentUser() *domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// OnLogout registers a hook run when the session ends (e.g. cart reset).
func (m *Manager) OnLogout(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onLogout = append(m.onLogout, fn)
}

// Logout clears the user and runs the registered hooks.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.user = nil
	hooks := make([]func(), len(m.onLogout))
	copy(hooks, m.onLogout)
	m.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}
