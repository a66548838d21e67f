package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	testKID      = "test-key"
	testIssuer   = "https://auth.example.com"
	testAudience = "social-wallet"
)

func newJWKSServer(t *testing.T, key *rsa.PublicKey) (*httptest.Server, *int32) {
	t.Helper()

	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&hits, 1)
		_ = json.NewEncoder(w).Encode(JWKS{Keys: []JWK{{
			Kid: testKID,
			Kty: "RSA",
			Alg: "RS256",
			Use: "sig",
			N:   base64.RawURLEncoding.EncodeToString(key.N.Bytes()),
			E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.E)).Bytes()),
		}}})
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.RegisteredClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = testKID
	signed, err := token.SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func validClaims(sub string) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Subject:   sub,
		Issuer:    testIssuer,
		Audience:  jwt.ClaimStrings{testAudience},
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
}

func generateKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate rsa key: %v", err)
	}
	return key
}

func TestJWTValidator_Subject(t *testing.T) {
	key := generateKey(t)
	srv, hits := newJWKSServer(t, &key.PublicKey)
	v := NewJWTValidator(srv.URL, testIssuer, testAudience)

	sub, err := v.Subject(context.Background(), signToken(t, key, validClaims("did:privy:abc")))
	if err != nil {
		t.Fatalf("Subject() error: %v", err)
	}
	if sub != "did:privy:abc" {
		t.Fatalf("expected subject did:privy:abc, got %q", sub)
	}

	// cached key, no second fetch
	if _, err = v.Subject(context.Background(), signToken(t, key, validClaims("did:privy:def"))); err != nil {
		t.Fatalf("Subject() second call error: %v", err)
	}
	if got := atomic.LoadInt32(hits); got != 1 {
		t.Fatalf("expected 1 JWKS fetch, got %d", got)
	}
}

func TestJWTValidator_Rejects(t *testing.T) {
	key := generateKey(t)
	other := generateKey(t)
	srv, _ := newJWKSServer(t, &key.PublicKey)
	v := NewJWTValidator(srv.URL, testIssuer, testAudience)

	expired := validClaims("did:privy:abc")
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	wrongIssuer := validClaims("did:privy:abc")
	wrongIssuer.Issuer = "https://evil.example.com"

	wrongAudience := validClaims("did:privy:abc")
	wrongAudience.Audience = jwt.ClaimStrings{"other-app"}

	tests := []struct {
		name  string
		token string
	}{
		{"expired", signToken(t, key, expired)},
		{"wrong issuer", signToken(t, key, wrongIssuer)},
		{"wrong audience", signToken(t, key, wrongAudience)},
		{"wrong key", signToken(t, other, validClaims("did:privy:abc"))},
		{"missing subject", signToken(t, key, validClaims(""))},
		{"garbage", "not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := v.Subject(context.Background(), tt.token); err == nil {
				t.Fatalf("expected error for %s token", tt.name)
			}
		})
	}
}

func TestJWTValidator_IsConfigured(t *testing.T) {
	var nilValidator *JWTValidator
	if nilValidator.IsConfigured() {
		t.Fatal("nil validator should not be configured")
	}
	if NewJWTValidator("", "", "").IsConfigured() {
		t.Fatal("validator without JWKS URL should not be configured")
	}
	if !NewJWTValidator("https://auth.example.com/jwks", "", "").IsConfigured() {
		t.Fatal("validator with JWKS URL should be configured")
	}
}

func TestJWTValidator_NoJWKS(t *testing.T) {
	key := generateKey(t)
	v := NewJWTValidator("", "", "")

	_, err := v.Subject(context.Background(), signToken(t, key, validClaims("did:privy:abc")))
	if !errors.Is(err, errNoJWKS) {
		t.Fatalf("expected errNoJWKS, got %v", err)
	}
}
