// Package identity resolves caller identities against the identity provider's REST API.
package identity

import (
	"context"
	"errors"
	"strings"
)

// ErrNotFound is returned when the provider does not know the identity.
var ErrNotFound = errors.New("identity not found")

const (
	accountTypeWallet     = "wallet"
	connectorTypeEmbedded = "embedded"
	appIDHeader           = "privy-app-id"
	usersPathPrefix       = "/api/v1/users/"
	maxResponseBodyBytes  = 1 << 20
)

// Oracle resolves an identity ID to the provider's account record.
//
//go:generate mockery --name Oracle --output mocks --outpkg mocks --filename mock_oracle.go --with-expecter
type Oracle interface {
	GetAccount(ctx context.Context, identityID string) (*Account, error)
}

// Account is the provider's view of a user.
type Account struct {
	ID             string          `json:"id"`
	LinkedAccounts []LinkedAccount `json:"linked_accounts"`
}

// LinkedAccount is one credential or wallet attached to an Account.
type LinkedAccount struct {
	Type             string `json:"type"`
	Address          string `json:"address,omitempty"`
	ChainType        string `json:"chain_type,omitempty"`
	WalletClientType string `json:"wallet_client_type,omitempty"`
	ConnectorType    string `json:"connector_type,omitempty"`
}

// EmbeddedWallet returns the provider-custodied wallet whose client type matches clientType.
// Externally connected wallets are ignored.
func (a *Account) EmbeddedWallet(clientType string) (*LinkedAccount, bool) {
	for i := range a.LinkedAccounts {
		la := &a.LinkedAccounts[i]
		if la.Type != accountTypeWallet || la.Address == "" {
			continue
		}
		if !strings.EqualFold(la.WalletClientType, clientType) || !strings.EqualFold(la.ConnectorType, connectorTypeEmbedded) {
			continue
		}
		return la, true
	}
	return nil, false
}
