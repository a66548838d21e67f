package identity

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chainsafe/social-wallet-api/pkg/config"
)

const accountJSON = `{
  "id": "did:privy:alice",
  "linked_accounts": [
    {"type": "email", "address": "alice@example.com"},
    {"type": "wallet", "address": "0xEXTERNAL", "wallet_client_type": "metamask", "connector_type": "injected"},
    {"type": "wallet", "address": "0xAbCdEf0000000000000000000000000000000001", "chain_type": "ethereum",
     "wallet_client_type": "privy", "connector_type": "embedded"}
  ]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(&config.IdentityConfig{
		BaseURL:   srv.URL + "/",
		AppID:     "app-id",
		AppSecret: "app-secret",
		Timeout:   5 * time.Second,
	})
}

func TestClient_GetAccount(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/users/did:privy:alice" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "app-id" || pass != "app-secret" {
			t.Errorf("missing or wrong basic auth: %q %q", user, pass)
		}
		if r.Header.Get("privy-app-id") != "app-id" {
			t.Errorf("missing app id header")
		}
		_, _ = w.Write([]byte(accountJSON))
	})

	account, err := c.GetAccount(context.Background(), "did:privy:alice")
	if err != nil {
		t.Fatalf("GetAccount() error: %v", err)
	}
	if account.ID != "did:privy:alice" || len(account.LinkedAccounts) != 3 {
		t.Fatalf("unexpected account: %+v", account)
	}

	wallet, ok := account.EmbeddedWallet("privy")
	if !ok {
		t.Fatal("expected embedded wallet")
	}
	if wallet.Address != "0xAbCdEf0000000000000000000000000000000001" {
		t.Fatalf("picked wrong wallet: %s", wallet.Address)
	}
}

func TestClient_GetAccount_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"User not found"}`, http.StatusNotFound)
	})

	_, err := c.GetAccount(context.Background(), "did:privy:ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err = c.GetAccount(context.Background(), ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty identity, got %v", err)
	}
}

func TestClient_GetAccount_ProviderFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	_, err := c.GetAccount(context.Background(), "did:privy:alice")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected a non-NotFound provider error, got %v", err)
	}
}

func TestAccount_EmbeddedWallet(t *testing.T) {
	tests := []struct {
		name   string
		linked []LinkedAccount
		wantOK bool
	}{
		{
			name:   "no accounts",
			wantOK: false,
		},
		{
			name:   "external wallet only",
			linked: []LinkedAccount{{Type: "wallet", Address: "0x1", WalletClientType: "metamask", ConnectorType: "injected"}},
			wantOK: false,
		},
		{
			name:   "embedded wallet from another provider",
			linked: []LinkedAccount{{Type: "wallet", Address: "0x1", WalletClientType: "other", ConnectorType: "embedded"}},
			wantOK: false,
		},
		{
			name:   "provider client but external connector",
			linked: []LinkedAccount{{Type: "wallet", Address: "0x1", WalletClientType: "privy", ConnectorType: "injected"}},
			wantOK: false,
		},
		{
			name:   "embedded wallet",
			linked: []LinkedAccount{{Type: "wallet", Address: "0x1", WalletClientType: "privy", ConnectorType: "embedded"}},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Account{LinkedAccounts: tt.linked}
			_, ok := a.EmbeddedWallet("privy")
			if ok != tt.wantOK {
				t.Fatalf("EmbeddedWallet() ok = %v, want %v", ok, tt.wantOK)
			}
		})
	}
}
