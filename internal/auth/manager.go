package auth

import (
	"context"
	"errors"
	"time"

	"taskboard/internal/token"
)

// TokenTTL is how long an issued session stays usable. It is a fixed
// property of the system, not configuration.
const TokenTTL = 168 * time.Hour

// Identity is the resolved, trusted caller: produced once per request
// after the credential checks out against server-side session state.
// Nothing downstream re-derives privilege from the raw credential.
type Identity struct {
	UserID    uint
	SessionID uint
	IsAdmin   bool
}

// Manager issues sessions and resolves presented credentials.
type Manager struct {
	codec *token.Codec
	store SessionStore
	now   func() time.Time
}

func NewManager(codec *token.Codec, store SessionStore) *Manager {
	return &Manager{codec: codec, store: store, now: time.Now}
}

// Authenticate exchanges an email for a fresh signed credential.
//
// There is no password and no possession proof: knowing a registered email
// is enough. That is a carried-over limitation of the original system, not
// something to strengthen here.
func (m *Manager) Authenticate(ctx context.Context, email string) (string, error) {
	user, err := m.store.GetUserByEmail(ctx, email)
	if err != nil {
		return "", storage(err)
	}
	if user == nil {
		return "", unauthorized("unknown email")
	}

	session, err := m.store.CreateSession(ctx, user.ID, TokenTTL)
	if err != nil {
		return "", storage(err)
	}

	credential, err := m.codec.Issue(session.ID)
	if err != nil {
		return "", storage(err)
	}
	return credential, nil
}

// Resolve validates a presented credential against stored session state and
// returns the caller's identity. Every failure mode collapses to the same
// invalid-credential kind externally; the distinct reasons exist for logs.
func (m *Manager) Resolve(ctx context.Context, credential string) (Identity, error) {
	sessionID, err := m.codec.Verify(credential)
	if err != nil {
		if errors.Is(err, token.ErrBadSignature) {
			return Identity{}, invalidCredential("bad signature", err)
		}
		return Identity{}, invalidCredential("malformed token", err)
	}

	session, err := m.store.GetSession(ctx, sessionID)
	if err != nil {
		return Identity{}, storage(err)
	}
	if session == nil {
		return Identity{}, invalidCredential("unknown session", nil)
	}
	if !session.Valid {
		return Identity{}, invalidCredential("token revoked", nil)
	}
	if !m.now().Before(session.Expiration) {
		return Identity{}, invalidCredential("token expired", nil)
	}

	user, err := m.store.GetUser(ctx, session.UserID)
	if err != nil {
		return Identity{}, storage(err)
	}
	if user == nil {
		return Identity{}, invalidCredential("session user missing", nil)
	}

	return Identity{
		UserID:    session.UserID,
		SessionID: session.ID,
		IsAdmin:   user.IsAdmin,
	}, nil
}

// Revoke marks a session unusable. Revoking an already-revoked session is
// a no-op, and expired sessions are never revoked automatically; expiry is
// a computed check, not a stored transition.
func (m *Manager) Revoke(ctx context.Context, sessionID uint) error {
	if err := m.store.RevokeSession(ctx, sessionID); err != nil {
		return storage(err)
	}
	return nil
}
