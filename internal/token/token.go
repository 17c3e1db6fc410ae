package token

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Codec signs and verifies the compact credential handed to API clients.
// The payload carries a single session id and nothing else; user id, role
// and expiry live server-side and are re-checked on every request.
type Codec struct {
	secret []byte
}

var (
	// ErrBadSignature means the credential was signed with a different key
	// or a different algorithm than the one this codec is pinned to.
	ErrBadSignature = errors.New("token: bad signature")
	// ErrMalformed means the credential is not a well-formed token or its
	// payload is missing the session id.
	ErrMalformed = errors.New("token: malformed")
)

// Claims is the full signed payload: the session id, nothing more.
type Claims struct {
	TokenID uint `json:"tokenId"`
	jwt.RegisteredClaims
}

// NewCodec builds a codec around an explicit secret. The secret is injected
// rather than read from process state so tests can use distinct keys.
func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Issue signs a credential for the given session id using HS256. No
// issued-at or expiry claim is embedded; the server-side session record
// governs lifetime.
func (c *Codec) Issue(sessionID uint) (string, error) {
	claims := &Claims{TokenID: sessionID}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and checks a presented credential and returns the embedded
// session id. Verification accepts exactly the algorithm used for issuance;
// any other method, including "none", is rejected before the key is used.
func (c *Codec) Verify(credential string) (uint, error) {
	var claims Claims
	tok, err := jwt.ParseWithClaims(credential, &claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return 0, ErrBadSignature
		}
		return 0, ErrMalformed
	}
	if !tok.Valid || claims.TokenID == 0 {
		return 0, ErrMalformed
	}
	return claims.TokenID, nil
}
