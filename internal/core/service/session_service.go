package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/tooswasher/storefront/internal/core/domain"
	"github.com/tooswasher/storefront/internal/core/ports"
	"github.com/tooswasher/storefront/internal/pkg/metrics"
)

// ProfileFetcher is the single backend call session resolution needs.
type ProfileFetcher interface {
	Profile(ctx context.Context) (*domain.User, error)
}

// SessionService resolves the session of the browser whose token store is
// attached to the request context.
type SessionService struct {
	profiles ProfileFetcher
	inflight singleflight.Group
	log      zerolog.Logger
}

func NewSessionService(profiles ProfileFetcher, log zerolog.Logger) *SessionService {
	return &SessionService{profiles: profiles, log: log}
}

// Resolve returns the anonymous session without any network call when no
// token is stored. Otherwise it fetches the profile; any failure drops the
// token and resolves to anonymous. Concurrent callers holding the same token
// share one profile fetch.
//
// If ctx ends before the fetch completes, Resolve returns ctx.Err() with the
// unresolved session and applies nothing.
func (s *SessionService) Resolve(ctx context.Context) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, err
	}

	tokens := ports.TokenStoreFrom(ctx)
	if tokens == nil {
		return s.anonymous(), nil
	}

	token, ok, err := tokens.Get(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("token storage read failed, treating session as anonymous")
		return s.anonymous(), nil
	}
	if !ok {
		return s.anonymous(), nil
	}

	// The shared fetch outlives any single caller; each caller decides on
	// its own whether it is still around to use the result. It carries the
	// token it is keyed by, whatever the session's slot holds meanwhile.
	ch := s.inflight.DoChan(token, func() (any, error) {
		fetchCtx := ports.WithTokenStore(context.WithoutCancel(ctx), pinnedToken(token))
		return s.profiles.Profile(fetchCtx)
	})

	select {
	case <-ctx.Done():
		return domain.Session{}, ctx.Err()
	case res := <-ch:
		if err := ctx.Err(); err != nil {
			return domain.Session{}, err
		}
		user, _ := res.Val.(*domain.User)
		if res.Err != nil || user == nil {
			s.expire(ctx, tokens, token, res.Err)
			return domain.AnonymousSession(), nil
		}
		u := *user
		metrics.SessionResolutionsTotal.WithLabelValues("authenticated").Inc()
		return domain.AuthenticatedSession(&u), nil
	}
}

func (s *SessionService) anonymous() domain.Session {
	metrics.SessionResolutionsTotal.WithLabelValues("anonymous").Inc()
	return domain.AnonymousSession()
}

// expire drops a token the backend refused. Only the failing token is
// removed, so a token saved by a concurrent login survives.
func (s *SessionService) expire(ctx context.Context, tokens ports.TokenStore, token string, cause error) {
	if cause == nil {
		cause = errors.New("empty profile")
	}
	metrics.SessionResolutionsTotal.WithLabelValues("expired").Inc()
	s.log.Warn().
		Err(cause).
		AnErr("reason", domain.ErrAuthExpired).
		Msg("profile fetch failed, dropping stored token")

	if err := tokens.ClearIfMatch(ctx, token); err != nil {
		s.log.Error().Err(err).Msg("failed to clear stored token")
	}
}

var errPinnedToken = errors.New("pinned token store is read-only")

// pinnedToken is a read-only ports.TokenStore holding one token.
type pinnedToken string

var _ ports.TokenStore = pinnedToken("")

func (t pinnedToken) Get(context.Context) (string, bool, error) {
	return string(t), t != "", nil
}

func (t pinnedToken) IsAuthenticated(context.Context) bool { return t != "" }

func (pinnedToken) Save(context.Context, string) error { return errPinnedToken }

func (pinnedToken) Clear(context.Context) error { return errPinnedToken }

func (pinnedToken) ClearIfMatch(context.Context, string) error { return errPinnedToken }
