package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/social-wallet-api/pkg/app/errors"
	"github.com/chainsafe/social-wallet-api/pkg/auth"
	"github.com/chainsafe/social-wallet-api/pkg/user"
	"github.com/chainsafe/social-wallet-api/pkg/walletlink/service/mocks"
)

func newWalletLinkTestServer(svc Service) http.Handler {
	r := chi.NewRouter()
	r.Use(auth.IdentityMiddleware(nil, zap.NewNop()))
	RegisterRoutes(r, svc, zap.NewNop())
	return r
}

func post(handler http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set(auth.HeaderIdentityID, testIdentity)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeErrorKind(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	return body.Error
}

func TestWalletLinkHTTP_Challenge(t *testing.T) {
	svc := mocks.NewService(t)
	address := "0x2222222222222222222222222222222222222222"
	svc.EXPECT().IssueChallenge(mock.Anything, testIdentity, address).
		Return(&user.SigningChallenge{UserID: 1, Address: address, Message: "sign me", UpdatedAt: t0}, nil).Once()

	rec := post(newWalletLinkTestServer(svc), "/social-wallet/challenge", `{"address":"`+address+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var got struct {
		Data user.SigningChallenge `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.Data.Message != "sign me" || got.Data.Address != address {
		t.Fatalf("unexpected challenge: %+v", got.Data)
	}
}

func TestWalletLinkHTTP_Challenge_RejectsMalformedAddress(t *testing.T) {
	handler := newWalletLinkTestServer(mocks.NewService(t))

	for _, body := range []string{`{}`, `{"address":"not-an-address"}`, `{"address":`} {
		rec := post(handler, "/social-wallet/challenge", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected status %d, got %d", body, http.StatusBadRequest, rec.Code)
		}
		if kind := decodeErrorKind(t, rec); kind != apperrors.KindInvalidRequest {
			t.Fatalf("body %s: expected %q, got %q", body, apperrors.KindInvalidRequest, kind)
		}
	}
}

func TestWalletLinkHTTP_Verify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{"expired", apperrors.BadRequestError(user.ErrChallengeExpired, apperrors.KindChallengeExpired), http.StatusBadRequest, "challenge_expired"},
		{"bad signature", apperrors.UnAuthorizedError(user.ErrInvalidSignature, apperrors.KindInvalidSignature), http.StatusUnauthorized, "invalid_signature"},
		{"no challenge", apperrors.ResourceNotFoundError(user.ErrChallengeNotFound, apperrors.KindNotFound), http.StatusNotFound, "not_found"},
		{"taken", apperrors.ConflictError(user.ErrSocialWalletTaken, apperrors.KindAlreadyExists), http.StatusConflict, "already_exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewService(t)
			svc.EXPECT().VerifyAndLink(mock.Anything, testIdentity, "0xsig").Return(nil, tt.err).Once()

			rec := post(newWalletLinkTestServer(svc), "/social-wallet/verify", `{"signature":"0xsig"}`)
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if kind := decodeErrorKind(t, rec); kind != tt.wantKind {
				t.Fatalf("expected %q, got %q", tt.wantKind, kind)
			}
		})
	}

	t.Run("linked", func(t *testing.T) {
		wallet := "0x2222222222222222222222222222222222222222"
		svc := mocks.NewService(t)
		svc.EXPECT().VerifyAndLink(mock.Anything, testIdentity, "0xsig").
			Return(&user.User{ID: 1, SocialWallet: &wallet}, nil).Once()

		rec := post(newWalletLinkTestServer(svc), "/social-wallet/verify", `{"signature":"0xsig"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
		}
	})
}
