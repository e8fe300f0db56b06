package auth

import (
	"context"
	"sync"

	adminRepo "salonadmin/database/repository/admin"
	"salonadmin/models"

	"go.uber.org/zap"
)

// Checker decides whether a session belongs to an allow-listed admin.
type Checker struct {
	Configs adminRepo.AdminConfigRepository
	Logger  *zap.Logger
}

// NewChecker returns a Checker reading the allow-list from configs.
func NewChecker(configs adminRepo.AdminConfigRepository, logger *zap.Logger) *Checker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Checker{Configs: configs, Logger: logger}
}

// Check reads the session's current user id and the admin config once.
// Any read or parse failure is logged and reported as not authenticated.
func (c *Checker) Check(ctx context.Context, session *Session) models.AuthState {
	denied := models.AuthState{}

	userID, found, err := session.CurrentUserID(ctx)
	if err != nil {
		c.Logger.Error("Failed to check admin rights", zap.String("session", session.ID), zap.Error(err))
		return denied
	}
	if !found {
		return denied
	}

	cfg, err := c.Configs.Get(ctx)
	if err != nil {
		c.Logger.Error("Failed to check admin rights", zap.String("session", session.ID), zap.Error(err))
		return denied
	}
	if cfg == nil {
		c.Logger.Warn("No admin config stored; denying access", zap.Int64("userID", userID))
		return denied
	}

	admins, err := cfg.Parse()
	if err != nil {
		c.Logger.Error("Invalid admin config; denying access", zap.Error(err))
		return denied
	}
	if !admins.Contains(userID) {
		c.Logger.Debug("User is not an admin", zap.Int64("userID", userID))
		return denied
	}

	id := userID
	return models.AuthState{Authenticated: true, AdminID: &id}
}

// Guard holds the auth state of one session. It starts out loading and
// settles after the first Refresh.
type Guard struct {
	mu      sync.RWMutex
	state   models.AuthState
	checker *Checker
	session *Session
}

// NewGuard returns a guard in the loading state.
func NewGuard(checker *Checker, session *Session) *Guard {
	return &Guard{
		state:   models.AuthState{Loading: true},
		checker: checker,
		session: session,
	}
}

// Refresh re-derives the auth state from persistence.
func (g *Guard) Refresh(ctx context.Context) models.AuthState {
	g.mu.Lock()
	g.state.Loading = true
	g.mu.Unlock()

	state := g.checker.Check(ctx, g.session)
	state.Loading = false

	g.mu.Lock()
	g.state = state
	g.mu.Unlock()
	return state
}

// State returns the last known auth state.
func (g *Guard) State() models.AuthState {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// Session is the session this guard watches.
func (g *Guard) Session() *Session {
	return g.session
}
