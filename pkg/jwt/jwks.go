package jwt

import (
	"context"
	"strings"

	"github.com/MicahParks/keyfunc/v3"
)

// JWKSPath is appended to the issuer URL to locate the pool's public keys.
const JWKSPath = "/.well-known/jwks.json"

var _ KeySource = keyfunc.Keyfunc(nil)

// IssuerJWKSURL returns the JWKS location for a user pool issuer.
func IssuerJWKSURL(issuer string) string {
	return strings.TrimRight(issuer, "/") + JWKSPath
}

// NewJWKS returns a key source backed by the JWKS at url. Keys are refreshed
// in the background until ctx is done; an unknown kid triggers a
// rate-limited refresh. A failing first fetch is not an error: known keys
// arrive with the next refresh.
func NewJWKS(ctx context.Context, url string) (keyfunc.Keyfunc, error) {
	return keyfunc.NewDefaultCtx(ctx, []string{url})
}

// NewIssuerJWKS is NewJWKS for the issuer's well-known JWKS location.
func NewIssuerJWKS(ctx context.Context, issuer string) (keyfunc.Keyfunc, error) {
	return NewJWKS(ctx, IssuerJWKSURL(issuer))
}
