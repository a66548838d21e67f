package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/social-wallet-api/pkg/app/errors"
	"github.com/chainsafe/social-wallet-api/pkg/identity"
	"github.com/chainsafe/social-wallet-api/pkg/user"
)

// Store is the narrow data-access interface for the registration service.
// Defined here to keep registration service decoupled from userstore implementation details.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	UserExists(ctx context.Context, identityID string) (bool, error)
	GetInviteCode(ctx context.Context, code string) (*user.InviteCode, error)
	CreateUserWithInvite(ctx context.Context, usr *user.User, inviteCodeID int64) (*user.User, error)
}

// Service defines the interface for the registration business logic
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Register(ctx context.Context, identityID, inviteCode string) (*user.User, error)
}

type registrationService struct {
	store            Store
	oracle           identity.Oracle
	walletClientType string
	logger           *zap.Logger
}

// NewService creates a new registration service.
// walletClientType selects which provider-custodied wallet becomes the user's primary wallet.
func NewService(store Store, oracle identity.Oracle, walletClientType string, logger *zap.Logger) Service {
	return &registrationService{
		store:            store,
		oracle:           oracle,
		walletClientType: walletClientType,
		logger:           logger,
	}
}

// Register creates an account for identityID, admitted by inviteCode.
//
// Checks run in order and the first failure wins:
//  1. the identity resolves at the provider
//  2. no account exists yet for the identity
//  3. the identity has an embedded wallet
//  4. the invite code exists and is active
//  5. the invite code is under its usage cap
//
// The user insert and the invite code increment happen in one transaction.
func (s *registrationService) Register(ctx context.Context, identityID, inviteCode string) (*user.User, error) {
	account, err := s.oracle.GetAccount(ctx, identityID)
	if err != nil {
		if errors.Is(err, identity.ErrNotFound) {
			return nil, apperrors.UnAuthorizedError(user.ErrUnknownIdentity, apperrors.KindUnauthorized)
		}
		return nil, fmt.Errorf("failed to resolve identity: %w", err)
	}

	exists, err := s.store.UserExists(ctx, identityID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user existence: %w", err)
	}
	if exists {
		return nil, apperrors.ConflictError(user.ErrUserAlreadyExists, apperrors.KindAlreadyExists)
	}

	wallet, ok := account.EmbeddedWallet(s.walletClientType)
	if !ok {
		return nil, apperrors.BadRequestError(user.ErrWalletMissing, apperrors.KindWalletMissing)
	}
	walletAddress := user.NormalizeAddress(wallet.Address)

	code := strings.TrimSpace(inviteCode)
	if code == "" {
		return nil, apperrors.BadRequestError(user.ErrInvalidInviteCode, apperrors.KindInvalidInviteCode)
	}

	ic, err := s.store.GetInviteCode(ctx, code)
	if err != nil {
		if errors.Is(err, user.ErrInviteCodeNotFound) {
			return nil, apperrors.BadRequestError(user.ErrInvalidInviteCode, apperrors.KindInvalidInviteCode)
		}
		return nil, fmt.Errorf("failed to get invite code: %w", err)
	}
	if !ic.Active {
		return nil, apperrors.BadRequestError(user.ErrInvalidInviteCode, apperrors.KindInvalidInviteCode)
	}
	if ic.Exhausted() {
		return nil, apperrors.ConflictError(user.ErrCodeAlreadyUsed, apperrors.KindCodeAlreadyUsed)
	}

	created, err := s.store.CreateUserWithInvite(ctx, user.New(identityID, walletAddress, ic.ID), ic.ID)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrCodeAlreadyUsed):
			// lost a race for the last use of the code
			return nil, apperrors.ConflictError(user.ErrCodeAlreadyUsed, apperrors.KindCodeAlreadyUsed)
		case errors.Is(err, user.ErrUserAlreadyExists):
			return nil, apperrors.ConflictError(user.ErrUserAlreadyExists, apperrors.KindAlreadyExists)
		default:
			return nil, fmt.Errorf("failed to save user: %w", err)
		}
	}

	s.logger.Info("User registered",
		zap.Int64("user_id", created.ID),
		zap.String("wallet_address", created.WalletAddress),
		zap.Int64("invite_code_id", ic.ID),
	)

	return created, nil
}
