// Package service implements social wallet linking: a signing challenge is issued for a candidate
// address and the address is linked to the caller once a matching EIP-191 signature is presented.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/social-wallet-api/pkg/app/errors"
	"github.com/chainsafe/social-wallet-api/pkg/auth"
	"github.com/chainsafe/social-wallet-api/pkg/downstream"
	"github.com/chainsafe/social-wallet-api/pkg/tasks"
	"github.com/chainsafe/social-wallet-api/pkg/user"
)

const challengeTemplate = "Link social wallet %s to your account.\n\nTimestamp: %s\nNonce: %s"

// Store is the narrow data-access interface for the wallet linking service.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	GetUserByIdentityID(ctx context.Context, identityID string) (*user.User, error)
	UpsertChallenge(ctx context.Context, ch *user.SigningChallenge) (*user.SigningChallenge, error)
	GetChallenge(ctx context.Context, userID int64) (*user.SigningChallenge, error)
	LinkSocialWallet(ctx context.Context, userID int64, address string) (*user.User, error)
}

// Verifier checks that signature over message was produced by address
//
//go:generate mockery --name Verifier --output mocks --outpkg mocks --filename mock_verifier.go --with-expecter
type Verifier interface {
	Verify(address, message, signature string) bool
}

// Triggers are the downstream pipelines notified after a wallet is linked
//
//go:generate mockery --name Triggers --output mocks --outpkg mocks --filename mock_triggers.go --with-expecter
type Triggers interface {
	RefreshProfile(ctx context.Context, wallet string) error
	RecomputeRecommendations(ctx context.Context, wallet string) error
}

// Service defines the interface for the wallet linking business logic
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	IssueChallenge(ctx context.Context, identityID, address string) (*user.SigningChallenge, error)
	VerifyAndLink(ctx context.Context, identityID, signature string) (*user.User, error)
}

// Option configures the wallet linking service
type Option func(*walletLinkService)

// WithClock overrides the time source used for challenge timestamps and expiry
func WithClock(now func() time.Time) Option {
	return func(s *walletLinkService) {
		s.now = now
	}
}

type walletLinkService struct {
	store    Store
	verifier Verifier
	queue    tasks.Queue
	triggers Triggers
	now      func() time.Time
	logger   *zap.Logger
}

// NewService creates a new wallet linking service
func NewService(
	store Store,
	verifier Verifier,
	queue tasks.Queue,
	triggers Triggers,
	logger *zap.Logger,
	opts ...Option,
) Service {
	s := &walletLinkService{
		store:    store,
		verifier: verifier,
		queue:    queue,
		triggers: triggers,
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IssueChallenge creates or replaces the caller's signing challenge for address.
func (s *walletLinkService) IssueChallenge(ctx context.Context, identityID, address string) (*user.SigningChallenge, error) {
	if !auth.ValidateEVMAddress(address) {
		return nil, apperrors.BadRequestError(fmt.Errorf("invalid address %q", address), apperrors.KindInvalidRequest)
	}

	usr, err := s.getUser(ctx, identityID)
	if err != nil {
		return nil, err
	}

	candidate := user.NormalizeAddress(address)
	issuedAt := s.now().UTC()

	ch, err := s.store.UpsertChallenge(ctx, &user.SigningChallenge{
		UserID:    usr.ID,
		Address:   candidate,
		Message:   fmt.Sprintf(challengeTemplate, candidate, issuedAt.Format(time.RFC3339), uuid.NewString()),
		UpdatedAt: issuedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save signing challenge: %w", err)
	}

	return ch, nil
}

// VerifyAndLink checks signature against the caller's pending challenge and, when it matches,
// links the challenged address as the caller's social wallet.
//
// An expired challenge is left in place; issuing a new one replaces it.
// Downstream refreshes are queued after the link is committed and never fail the call.
func (s *walletLinkService) VerifyAndLink(ctx context.Context, identityID, signature string) (*user.User, error) {
	usr, err := s.getUser(ctx, identityID)
	if err != nil {
		return nil, err
	}

	ch, err := s.store.GetChallenge(ctx, usr.ID)
	if err != nil && !errors.Is(err, user.ErrChallengeNotFound) {
		return nil, fmt.Errorf("failed to get signing challenge: %w", err)
	}

	state := user.StateOf(ch)
	if state.Status == user.NoChallenge {
		return nil, apperrors.ResourceNotFoundError(user.ErrChallengeNotFound, apperrors.KindNotFound)
	}
	if !state.Verifiable(s.now()) {
		return nil, apperrors.BadRequestError(user.ErrChallengeExpired, apperrors.KindChallengeExpired)
	}

	if !s.verifier.Verify(state.Pending.Address, state.Pending.Message, signature) {
		return nil, apperrors.UnAuthorizedError(user.ErrInvalidSignature, apperrors.KindInvalidSignature)
	}

	linked, err := s.store.LinkSocialWallet(ctx, usr.ID, state.Pending.Address)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrSocialWalletTaken):
			return nil, apperrors.ConflictError(user.ErrSocialWalletTaken, apperrors.KindAlreadyExists)
		case errors.Is(err, user.ErrChallengeNotFound):
			// consumed by a concurrent verify
			return nil, apperrors.ResourceNotFoundError(user.ErrChallengeNotFound, apperrors.KindNotFound)
		case errors.Is(err, user.ErrUserNotFound):
			return nil, apperrors.ResourceNotFoundError(user.ErrUserNotFound, apperrors.KindNotFound)
		default:
			return nil, fmt.Errorf("failed to link social wallet: %w", err)
		}
	}

	s.enqueueRefresh(state.Pending.Address)

	s.logger.Info("Social wallet linked",
		zap.Int64("user_id", linked.ID),
		zap.String("social_wallet", state.Pending.Address),
	)

	return linked, nil
}

func (s *walletLinkService) getUser(ctx context.Context, identityID string) (*user.User, error) {
	usr, err := s.store.GetUserByIdentityID(ctx, identityID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperrors.ResourceNotFoundError(user.ErrUserNotFound, apperrors.KindNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return usr, nil
}

func (s *walletLinkService) enqueueRefresh(wallet string) {
	s.queue.Enqueue(downstream.TaskProfileRefresh, func(ctx context.Context) error {
		return s.triggers.RefreshProfile(ctx, wallet)
	})
	s.queue.Enqueue(downstream.TaskRecommendations, func(ctx context.Context) error {
		return s.triggers.RecomputeRecommendations(ctx, wallet)
	})
}
