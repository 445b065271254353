package domain

// SessionState is the resolution state of a browser session. The zero value
// is SessionUnknown: resolution has not completed yet.
type SessionState int

const (
	SessionUnknown SessionState = iota
	SessionAnonymous
	SessionAuthenticated
)

func (s SessionState) String() string {
	switch s {
	case SessionAnonymous:
		return "anonymous"
	case SessionAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

func (s SessionState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts the names MarshalText writes. Anything else is
// SessionUnknown.
func (s *SessionState) UnmarshalText(b []byte) error {
	switch string(b) {
	case "anonymous":
		*s = SessionAnonymous
	case "authenticated":
		*s = SessionAuthenticated
	default:
		*s = SessionUnknown
	}
	return nil
}

// Session is derived per request and never persisted.
type Session struct {
	State SessionState `json:"state"`
	User  *User        `json:"user"`
}

// AnonymousSession is the resolved logged-out session.
func AnonymousSession() Session {
	return Session{State: SessionAnonymous}
}

// AuthenticatedSession panics on a nil user to keep IsAuthenticated => User != nil.
func AuthenticatedSession(u *User) Session {
	if u == nil {
		panic("domain: authenticated session requires a user")
	}
	return Session{State: SessionAuthenticated, User: u}
}

func (s Session) Resolved() bool {
	return s.State != SessionUnknown
}

func (s Session) IsAuthenticated() bool {
	return s.State == SessionAuthenticated && s.User != nil
}

// Role is RoleUnknown for anything but an authenticated session.
func (s Session) Role() Role {
	if !s.IsAuthenticated() {
		return RoleUnknown
	}
	return s.User.Role
}

// Allows reports whether the session satisfies the capability.
func (s Session) Allows(c Capability) bool {
	return s.IsAuthenticated() && c(s.User.Role)
}

// GuardState is the route guard state machine:
// GuardUnknown -> {GuardAuthorized, GuardUnauthorized}, both terminal.
type GuardState int32

const (
	GuardUnknown GuardState = iota
	GuardAuthorized
	GuardUnauthorized
)

func (g GuardState) String() string {
	switch g {
	case GuardAuthorized:
		return "authorized"
	case GuardUnauthorized:
		return "unauthorized"
	default:
		return "unknown"
	}
}
