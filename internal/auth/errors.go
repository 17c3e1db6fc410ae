package auth

import "errors"

// Kind is the coarse classification the HTTP layer is allowed to see.
// Everything finer grained (revoked vs expired vs malformed) stays in
// Reason and goes to the log only.
type Kind int

const (
	// KindInvalidCredential covers every way a presented credential can be
	// unusable: malformed, bad signature, unknown session, revoked, expired,
	// or a session whose user no longer exists. Clients cannot tell these
	// apart; all of them mean "present a new credential".
	KindInvalidCredential Kind = iota + 1
	// KindUnauthorized is authentication failure on /auth itself.
	KindUnauthorized
	// KindForbidden is a resolved identity lacking privilege or ownership.
	KindForbidden
	// KindNotFound is a gate's secondary lookup missing its resource.
	KindNotFound
	// KindStorage is an infrastructure failure from the store, passed
	// through without retry.
	KindStorage
)

// Error is the structured failure the lifecycle manager and gates raise.
type Error struct {
	Kind    Kind
	Reason  string // internal diagnostic, never rendered to clients
	Message string // optional client-visible message (404s carry one)
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Reason + ": " + e.Err.Error()
	}
	return e.Reason
}

func (e *Error) Unwrap() error { return e.Err }

// AsError extracts an *Error from an error chain.
func AsError(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func invalidCredential(reason string, err error) *Error {
	return &Error{Kind: KindInvalidCredential, Reason: reason, Err: err}
}

func unauthorized(reason string) *Error {
	return &Error{Kind: KindUnauthorized, Reason: reason}
}

func forbidden() *Error {
	return &Error{Kind: KindForbidden, Reason: "not owner or admin"}
}

func notFound(message string) *Error {
	return &Error{Kind: KindNotFound, Reason: message, Message: message}
}

func storage(err error) *Error {
	return &Error{Kind: KindStorage, Reason: "store failure", Err: err}
}
