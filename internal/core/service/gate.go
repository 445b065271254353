package service

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/tooswasher/storefront/internal/core/domain"
	"github.com/tooswasher/storefront/internal/core/ports"
)

// Gate is the route guard of one request. It starts in GuardUnknown and moves
// exactly once to GuardAuthorized or GuardUnauthorized, and only after the
// session has been resolved and checked against the capability.
type Gate struct {
	sessions ports.SessionResolver
	allow    domain.Capability

	state   atomic.Int32
	once    sync.Once
	session domain.Session
}

func NewGate(sessions ports.SessionResolver, allow domain.Capability) *Gate {
	return &Gate{sessions: sessions, allow: allow}
}

// State is safe to read while Resolve runs.
func (g *Gate) State() domain.GuardState {
	return domain.GuardState(g.state.Load())
}

// Session is the resolved session; meaningful once State is not GuardUnknown.
func (g *Gate) Session() domain.Session {
	if g.State() == domain.GuardUnknown {
		return domain.Session{}
	}
	return g.session
}

// Resolve runs the session resolution and settles the gate. A failed or
// cancelled resolution leaves the gate in GuardUnknown and returns the error;
// a settled gate returns its state without resolving again.
func (g *Gate) Resolve(ctx context.Context) (domain.GuardState, error) {
	if st := g.State(); st != domain.GuardUnknown {
		return st, nil
	}

	session, err := g.sessions.Resolve(ctx)
	if err != nil {
		return g.State(), err
	}
	if !session.Resolved() {
		return g.State(), nil
	}

	g.once.Do(func() {
		g.session = session
		next := domain.GuardUnauthorized
		if session.Allows(g.allow) {
			next = domain.GuardAuthorized
		}
		g.state.Store(int32(next))
	})
	return g.State(), nil
}
