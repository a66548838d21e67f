package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const jwksFetchTimeout = 10 * time.Second

var (
	// ErrMissingSubject is returned when a valid token carries no subject claim.
	ErrMissingSubject = errors.New("token has no subject")

	errNoJWKS = errors.New("JWKS URL not configured")
)

// JWKS is a JSON Web Key Set as served by the identity provider.
type JWKS struct {
	Keys []JWK `json:"keys"`
}

// JWK is a single JSON Web Key. Only RSA keys are used.
type JWK struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	Alg string `json:"alg"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

func (k JWK) rsaKey() (*rsa.PublicKey, error) {
	if k.Kty != "RSA" {
		return nil, fmt.Errorf("unsupported key type %q", k.Kty)
	}
	n, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, fmt.Errorf("decode modulus: %w", err)
	}
	e, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, fmt.Errorf("decode exponent: %w", err)
	}
	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(n),
		E: int(new(big.Int).SetBytes(e).Int64()),
	}, nil
}

// keySet caches RSA keys by kid and refetches the JWKS on a miss.
type keySet struct {
	url    string
	client *http.Client

	mu   sync.RWMutex
	keys map[string]*rsa.PublicKey
}

func (s *keySet) lookup(kid string) (*rsa.PublicKey, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	key, ok := s.keys[kid]
	return key, ok
}

func (s *keySet) get(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	if key, ok := s.lookup(kid); ok {
		return key, nil
	}
	if err := s.fetch(ctx); err != nil {
		return nil, err
	}
	if key, ok := s.lookup(kid); ok {
		return key, nil
	}
	return nil, fmt.Errorf("key not found: %s", kid)
}

func (s *keySet) fetch(ctx context.Context) error {
	if s.url == "" {
		return errNoJWKS
	}

	ctx, cancel := context.WithTimeout(ctx, jwksFetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return fmt.Errorf("build JWKS request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch JWKS: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("JWKS endpoint returned status %d", resp.StatusCode)
	}

	var set JWKS
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		return fmt.Errorf("decode JWKS: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range set.Keys {
		if key, err := k.rsaKey(); err == nil {
			s.keys[k.Kid] = key
		}
	}
	return nil
}

// JWTValidator checks identity provider access tokens against the provider's JWKS.
type JWTValidator struct {
	keys    *keySet
	options []jwt.ParserOption
}

// NewJWTValidator creates a validator for tokens signed by keys at jwksURL.
// Empty issuer or audience disables that check.
func NewJWTValidator(jwksURL, issuer, audience string) *JWTValidator {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		options = append(options, jwt.WithIssuer(issuer))
	}
	if audience != "" {
		options = append(options, jwt.WithAudience(audience))
	}

	return &JWTValidator{
		keys: &keySet{
			url:    jwksURL,
			client: &http.Client{Timeout: jwksFetchTimeout},
			keys:   make(map[string]*rsa.PublicKey),
		},
		options: options,
	}
}

// IsConfigured reports whether a JWKS URL was given.
func (v *JWTValidator) IsConfigured() bool {
	return v != nil && v.keys.url != ""
}

// Subject validates the token and returns its `sub` claim, the caller's identity ID.
func (v *JWTValidator) Subject(ctx context.Context, tokenString string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		kid, ok := token.Header["kid"].(string)
		if !ok {
			return nil, errors.New("missing kid in token header")
		}
		return v.keys.get(ctx, kid)
	}, v.options...)
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}
	if claims.Subject == "" {
		return "", ErrMissingSubject
	}
	return claims.Subject, nil
}
