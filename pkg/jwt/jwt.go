package jwt

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the standard JWT claims plus the Cognito-specific ones the API reads.
// Groups feeds the RBAC middleware without calling the user pool.
type Claims struct {
	jwt.RegisteredClaims
	CognitoUsername string   `json:"cognito:username,omitempty"` // ID tokens
	Username        string   `json:"username,omitempty"`         // access tokens
	Groups          []string `json:"cognito:groups,omitempty"`
	TokenUse        string   `json:"token_use,omitempty"` // "id" | "access"
}

// Principal returns the caller's user name: cognito:username, then username, then sub.
func (c *Claims) Principal() string {
	switch {
	case c.CognitoUsername != "":
		return c.CognitoUsername
	case c.Username != "":
		return c.Username
	default:
		return c.Subject
	}
}

// KeySource hands out a jwt.Keyfunc bound to a request context.
// keyfunc.Keyfunc (JWKS) and StaticKeySet implement it.
type KeySource interface {
	KeyfuncCtx(ctx context.Context) jwt.Keyfunc
}

// ErrKeyNotFound is returned when no key matches the token's kid.
var ErrKeyNotFound = errors.New("jwt: signing key not found")

// StaticKeySet is a fixed kid -> key map.
type StaticKeySet map[string]*rsa.PublicKey

// KeyfuncCtx implements KeySource.
func (s StaticKeySet) KeyfuncCtx(context.Context) jwt.Keyfunc {
	return func(t *jwt.Token) (interface{}, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, fmt.Errorf("jwt: missing kid header")
		}
		if k, ok := s[kid]; ok {
			return k, nil
		}
		return nil, ErrKeyNotFound
	}
}

// Verifier validates user pool tokens: RS256 signature, issuer and expiry.
// Audience is not checked (access tokens carry client_id instead of aud).
type Verifier struct {
	issuer string
	keys   KeySource
}

// NewVerifier builds a verifier for the given issuer (https://cognito-idp.<region>.amazonaws.com/<poolId>).
func NewVerifier(issuer string, keys KeySource) *Verifier {
	return &Verifier{issuer: issuer, keys: keys}
}

// Parse validates the token and returns its claims.
// Fails when the token is malformed, expired, signed by an unknown key or issued by another pool.
func (v *Verifier) Parse(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, v.keys.KeyfuncCtx(ctx),
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("jwt: invalid token")
	}
	if claims.TokenUse != "" && claims.TokenUse != "id" && claims.TokenUse != "access" {
		return nil, fmt.Errorf("jwt: unexpected token_use %q", claims.TokenUse)
	}
	return claims, nil
}
