package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/chainsafe/social-wallet-api/pkg/auth"
	"github.com/chainsafe/social-wallet-api/pkg/config"
	profilemocks "github.com/chainsafe/social-wallet-api/pkg/profile/service/mocks"
	"github.com/chainsafe/social-wallet-api/pkg/user"
	usermocks "github.com/chainsafe/social-wallet-api/pkg/user/service/mocks"
	walletlinkmocks "github.com/chainsafe/social-wallet-api/pkg/walletlink/service/mocks"
)

type routerFixture struct {
	registration *usermocks.Service
	walletLink   *walletlinkmocks.Service
	profile      *profilemocks.Service
	handler      http.Handler
}

func newRouterFixture(t *testing.T, monitoring bool) *routerFixture {
	t.Helper()

	cfg := &config.APIServerConfig{}
	cfg.Monitoring.Enabled = monitoring

	f := &routerFixture{
		registration: usermocks.NewService(t),
		walletLink:   walletlinkmocks.NewService(t),
		profile:      profilemocks.NewService(t),
	}
	f.handler = newRouter(cfg, &services{
		registration: f.registration,
		walletLink:   f.walletLink,
		profile:      f.profile,
	}, auth.NewJWTValidator("", "", ""), zap.NewNop())
	return f
}

func serve(handler http.Handler, method, path, identityID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if identityID != "" {
		req.Header.Set(auth.HeaderIdentityID, identityID)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Health(t *testing.T) {
	f := newRouterFixture(t, false)

	rec := serve(f.handler, http.MethodGet, "/health", "", "")
	if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Fatalf("expected 200 OK, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestRouter_Metrics(t *testing.T) {
	rec := serve(newRouterFixture(t, true).handler, http.MethodGet, "/metrics", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d with monitoring enabled, got %d", http.StatusOK, rec.Code)
	}

	rec = serve(newRouterFixture(t, false).handler, http.MethodGet, "/metrics", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d with monitoring disabled, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestRouter_UsersRequireIdentity(t *testing.T) {
	f := newRouterFixture(t, false)

	for _, path := range []string{"/users/me", "/users/candidates", "/users/me/recommendations"} {
		rec := serve(f.handler, http.MethodGet, path, "", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected status %d, got %d", path, http.StatusBadRequest, rec.Code)
		}
	}
}

func TestRouter_MountsServices(t *testing.T) {
	f := newRouterFixture(t, false)
	identityID := "did:privy:alice"

	f.registration.EXPECT().Register(mock.Anything, identityID, "ABC123").Return(&user.User{ID: 1}, nil).Once()
	f.walletLink.EXPECT().IssueChallenge(mock.Anything, identityID, "0x2222222222222222222222222222222222222222").
		Return(&user.SigningChallenge{UserID: 1}, nil).Once()
	f.profile.EXPECT().GetMe(mock.Anything, identityID).Return(&user.User{ID: 1}, nil).Once()

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodPost, "/users/register", `{"invite_code":"ABC123"}`, http.StatusCreated},
		{http.MethodPost, "/users/social-wallet/challenge", `{"address":"0x2222222222222222222222222222222222222222"}`, http.StatusOK},
		{http.MethodGet, "/users/me", "", http.StatusOK},
	}
	for _, tt := range tests {
		rec := serve(f.handler, tt.method, tt.path, identityID, tt.body)
		if rec.Code != tt.want {
			t.Fatalf("%s %s: expected status %d, got %d (%s)", tt.method, tt.path, tt.want, rec.Code, rec.Body.String())
		}
	}
}

func TestRouter_PanicReturnsErrorEnvelope(t *testing.T) {
	f := newRouterFixture(t, false)
	f.profile.EXPECT().GetMe(mock.Anything, "did:privy:alice").
		RunAndReturn(func(context.Context, string) (*user.User, error) {
			panic("nil pointer in handler")
		}).Once()

	rec := serve(f.handler, http.MethodGet, "/users/me", "did:privy:alice", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
	want := `{"error":"unexpected","code":500}`
	if got := strings.TrimSpace(rec.Body.String()); got != want {
		t.Fatalf("expected body %s, got %s", want, got)
	}
}
