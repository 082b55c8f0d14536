// Package jwttest issues RS256 tokens shaped like user pool tokens, for tests.
package jwttest

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	pkgjwt "github.com/kwawicks/kwawicks-api/pkg/jwt"
)

// Issuer is the issuer used by Signer tokens.
const Issuer = "https://cognito-idp.af-south-1.amazonaws.com/af-south-1_test"

// Signer holds a throwaway RSA key registered under KeyID.
type Signer struct {
	KeyID string
	key   *rsa.PrivateKey
}

// NewSigner generates a 2048-bit key.
func NewSigner(t testing.TB) *Signer {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate rsa key: %v", err)
	}
	return &Signer{KeyID: "test-kid", key: key}
}

// KeySet returns a key set that knows the signer's public key.
func (s *Signer) KeySet() pkgjwt.StaticKeySet {
	return pkgjwt.StaticKeySet{s.KeyID: &s.key.PublicKey}
}

// JWKS returns the public key as a JWK Set document, as served by a user pool.
func (s *Signer) JWKS(t testing.TB) []byte {
	t.Helper()
	pub := s.key.PublicKey
	out, err := json.Marshal(map[string]any{
		"keys": []map[string]string{{
			"kid": s.KeyID,
			"kty": "RSA",
			"alg": "RS256",
			"use": "sig",
			"n":   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
			"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes()),
		}},
	})
	if err != nil {
		t.Fatalf("marshal jwks: %v", err)
	}
	return out
}

// Verifier returns a verifier for Issuer backed by KeySet.
func (s *Signer) Verifier() *pkgjwt.Verifier {
	return pkgjwt.NewVerifier(Issuer, s.KeySet())
}

// Sign signs arbitrary claims with the kid header set.
func (s *Signer) Sign(t testing.TB, claims jwt.Claims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	tok.Header["kid"] = s.KeyID
	out, err := tok.SignedString(s.key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return out
}

// IDToken signs an ID token for username with the given groups, valid for ttl.
func (s *Signer) IDToken(t testing.TB, username string, ttl time.Duration, groups ...string) string {
	t.Helper()
	now := time.Now()
	return s.Sign(t, &pkgjwt.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   "sub-" + username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		CognitoUsername: username,
		Groups:          groups,
		TokenUse:        "id",
	})
}
