package users

import "errors"

// MaxAttempts is how many wrong passwords are allowed before lock out.
const MaxAttempts = 3

// ErrLockedOut is returned once every attempt has failed.
var ErrLockedOut = errors.New("users: too many failed attempts")

// Phase is where a login currently stands.
type Phase int

const (
	Authenticating Phase = iota
	Authenticated
	LockedOut
)

func (p Phase) String() string {
	switch p {
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	case LockedOut:
		return "locked out"
	default:
		return "unknown"
	}
}

// Attempt is the login state for an existing user. The zero value is not
// useful; start with NewAttempt.
type Attempt struct {
	Phase Phase
	Left  int
}

// NewAttempt starts authenticating with MaxAttempts tries.
func NewAttempt() Attempt {
	return Attempt{Phase: Authenticating, Left: MaxAttempts}
}

// Done reports whether the login reached a terminal phase.
func (a Attempt) Done() bool {
	return a.Phase != Authenticating
}

// Next returns the state after a password check that matched or not. Terminal
// states do not change.
func (a Attempt) Next(matched bool) Attempt {
	if a.Done() {
		return a
	}
	if matched {
		return Attempt{Phase: Authenticated, Left: a.Left}
	}
	left := a.Left - 1
	if left <= 0 {
		return Attempt{Phase: LockedOut, Left: 0}
	}
	return Attempt{Phase: Authenticating, Left: left}
}
