package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/social-wallet-api/pkg/app/errors"
	"github.com/chainsafe/social-wallet-api/pkg/identity"
	identitymocks "github.com/chainsafe/social-wallet-api/pkg/identity/mocks"
	"github.com/chainsafe/social-wallet-api/pkg/user"
	"github.com/chainsafe/social-wallet-api/pkg/user/service/mocks"
)

const (
	testIdentity = "did:privy:alice"
	testWallet   = "0xAbCdEf0000000000000000000000000000000001"
)

func embeddedAccount() *identity.Account {
	return &identity.Account{
		ID: testIdentity,
		LinkedAccounts: []identity.LinkedAccount{
			{Type: "wallet", Address: "0x9999999999999999999999999999999999999999", WalletClientType: "metamask", ConnectorType: "injected"},
			{Type: "wallet", Address: testWallet, WalletClientType: "privy", ConnectorType: "embedded"},
		},
	}
}

func newTestService(t *testing.T) (Service, *mocks.Store, *identitymocks.Oracle) {
	t.Helper()
	storeMock := mocks.NewStore(t)
	oracleMock := identitymocks.NewOracle(t)
	return NewService(storeMock, oracleMock, "privy", zap.NewNop()), storeMock, oracleMock
}

func assertKind(t *testing.T, err error, kind string, cat apperrors.Category) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", kind)
	}
	if got := apperrors.KindOf(err); got != kind {
		t.Fatalf("expected kind %q, got %q (%v)", kind, got, err)
	}
	if !apperrors.Is(err, cat) {
		t.Fatalf("expected %s, got %v", cat, err)
	}
}

func TestRegistrationService_Register_Success(t *testing.T) {
	ctx := context.Background()
	svc, storeMock, oracleMock := newTestService(t)

	oracleMock.EXPECT().GetAccount(ctx, testIdentity).Return(embeddedAccount(), nil).Once()
	storeMock.EXPECT().UserExists(ctx, testIdentity).Return(false, nil).Once()
	storeMock.EXPECT().GetInviteCode(ctx, "ABC123").
		Return(&user.InviteCode{ID: 7, Code: "ABC123", Active: true, Used: 0, MaxUses: 1}, nil).Once()
	storeMock.EXPECT().
		CreateUserWithInvite(ctx, mock.MatchedBy(func(u *user.User) bool {
			return u.IdentityID == testIdentity &&
				u.WalletAddress == strings.ToLower(testWallet) &&
				u.InviteCodeID == 7 &&
				u.SocialWallet == nil
		}), int64(7)).
		RunAndReturn(func(_ context.Context, u *user.User, _ int64) (*user.User, error) {
			saved := *u
			saved.ID = 42
			return &saved, nil
		}).Once()

	got, err := svc.Register(ctx, testIdentity, "  ABC123 ")
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if got.ID != 42 || got.WalletAddress != strings.ToLower(testWallet) {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestRegistrationService_Register_UnknownIdentity(t *testing.T) {
	ctx := context.Background()
	svc, _, oracleMock := newTestService(t)

	oracleMock.EXPECT().GetAccount(ctx, testIdentity).Return(nil, identity.ErrNotFound).Once()

	_, err := svc.Register(ctx, testIdentity, "ABC123")
	assertKind(t, err, apperrors.KindUnauthorized, apperrors.CategoryUnauthorized)
	if !errors.Is(err, user.ErrUnknownIdentity) {
		t.Fatalf("expected ErrUnknownIdentity, got %v", err)
	}
}

func TestRegistrationService_Register_OracleFailureIsInternal(t *testing.T) {
	ctx := context.Background()
	svc, _, oracleMock := newTestService(t)

	providerErr := errors.New("provider unavailable")
	oracleMock.EXPECT().GetAccount(ctx, testIdentity).Return(nil, providerErr).Once()

	_, err := svc.Register(ctx, testIdentity, "ABC123")
	if !errors.Is(err, providerErr) {
		t.Fatalf("expected provider error to be wrapped, got %v", err)
	}
	if !apperrors.IsInternalError(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestRegistrationService_Register_AlreadyExists(t *testing.T) {
	ctx := context.Background()
	svc, storeMock, oracleMock := newTestService(t)

	oracleMock.EXPECT().GetAccount(ctx, testIdentity).Return(embeddedAccount(), nil).Once()
	storeMock.EXPECT().UserExists(ctx, testIdentity).Return(true, nil).Once()

	_, err := svc.Register(ctx, testIdentity, "ABC123")
	assertKind(t, err, apperrors.KindAlreadyExists, apperrors.CategoryDataConflict)
}

func TestRegistrationService_Register_WalletMissing(t *testing.T) {
	ctx := context.Background()
	svc, storeMock, oracleMock := newTestService(t)

	account := embeddedAccount()
	account.LinkedAccounts = account.LinkedAccounts[:1]
	oracleMock.EXPECT().GetAccount(ctx, testIdentity).Return(account, nil).Once()
	storeMock.EXPECT().UserExists(ctx, testIdentity).Return(false, nil).Once()

	_, err := svc.Register(ctx, testIdentity, "ABC123")
	assertKind(t, err, apperrors.KindWalletMissing, apperrors.CategoryDataError)
}

func TestRegistrationService_Register_InvalidInviteCode(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		found *user.InviteCode
		err   error
	}{
		{name: "blank", code: "   "},
		{name: "unknown", code: "NOPE", err: user.ErrInviteCodeNotFound},
		{name: "inactive", code: "OLD", found: &user.InviteCode{ID: 1, Code: "OLD", Active: false, MaxUses: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc, storeMock, oracleMock := newTestService(t)

			oracleMock.EXPECT().GetAccount(ctx, testIdentity).Return(embeddedAccount(), nil).Once()
			storeMock.EXPECT().UserExists(ctx, testIdentity).Return(false, nil).Once()
			if strings.TrimSpace(tt.code) != "" {
				storeMock.EXPECT().GetInviteCode(ctx, tt.code).Return(tt.found, tt.err).Once()
			}

			_, err := svc.Register(ctx, testIdentity, tt.code)
			assertKind(t, err, apperrors.KindInvalidInviteCode, apperrors.CategoryDataError)
		})
	}
}

func TestRegistrationService_Register_CodeAlreadyUsed(t *testing.T) {
	ctx := context.Background()
	svc, storeMock, oracleMock := newTestService(t)

	oracleMock.EXPECT().GetAccount(ctx, testIdentity).Return(embeddedAccount(), nil).Once()
	storeMock.EXPECT().UserExists(ctx, testIdentity).Return(false, nil).Once()
	storeMock.EXPECT().GetInviteCode(ctx, "ABC123").
		Return(&user.InviteCode{ID: 7, Code: "ABC123", Active: true, Used: 1, MaxUses: 1}, nil).Once()

	_, err := svc.Register(ctx, testIdentity, "ABC123")
	assertKind(t, err, apperrors.KindCodeAlreadyUsed, apperrors.CategoryDataConflict)
}

func TestRegistrationService_Register_LostRaceForLastUse(t *testing.T) {
	ctx := context.Background()
	svc, storeMock, oracleMock := newTestService(t)

	oracleMock.EXPECT().GetAccount(ctx, testIdentity).Return(embeddedAccount(), nil).Once()
	storeMock.EXPECT().UserExists(ctx, testIdentity).Return(false, nil).Once()
	storeMock.EXPECT().GetInviteCode(ctx, "ABC123").
		Return(&user.InviteCode{ID: 7, Code: "ABC123", Active: true, Used: 0, MaxUses: 1}, nil).Once()
	storeMock.EXPECT().CreateUserWithInvite(ctx, mock.Anything, int64(7)).Return(nil, user.ErrCodeAlreadyUsed).Once()

	_, err := svc.Register(ctx, testIdentity, "ABC123")
	assertKind(t, err, apperrors.KindCodeAlreadyUsed, apperrors.CategoryDataConflict)
}

func TestRegistrationService_Register_StoreError(t *testing.T) {
	ctx := context.Background()
	svc, storeMock, oracleMock := newTestService(t)

	storeErr := errors.New("db unavailable")
	oracleMock.EXPECT().GetAccount(ctx, testIdentity).Return(embeddedAccount(), nil).Once()
	storeMock.EXPECT().UserExists(ctx, testIdentity).Return(false, storeErr).Once()

	_, err := svc.Register(ctx, testIdentity, "ABC123")
	if !strings.Contains(err.Error(), "failed to check user existence") {
		t.Fatalf("expected wrapped user-existence error, got %v", err)
	}
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to be wrapped, got %v", err)
	}
}
