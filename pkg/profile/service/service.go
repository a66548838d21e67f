// Package service implements the read side of the user domain: profile lookups, candidate
// listing, wallet existence checks, recommendations, and the caller's own profile updates.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/social-wallet-api/pkg/app/errors"
	"github.com/chainsafe/social-wallet-api/pkg/auth"
	"github.com/chainsafe/social-wallet-api/pkg/downstream"
	"github.com/chainsafe/social-wallet-api/pkg/tasks"
	"github.com/chainsafe/social-wallet-api/pkg/user"
)

// Store is the narrow data-access interface for the profile service.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	GetUserByIdentityID(ctx context.Context, identityID string) (*user.User, error)
	GetUserByWallet(ctx context.Context, address string) (*user.User, error)
	ListUsers(ctx context.Context, opts user.ListOptions) ([]*user.User, error)
	ExistingSocialWallets(ctx context.Context, addresses []string) ([]string, error)
	UpdateProfile(ctx context.Context, userID int64, update *user.ProfileUpdate) (*user.User, error)
	ListRecommendations(ctx context.Context, userID int64) ([]*user.RecommendedUser, error)
}

// Refresher triggers a re-scrape of a wallet's social profile
//
//go:generate mockery --name Refresher --output mocks --outpkg mocks --filename mock_refresher.go --with-expecter
type Refresher interface {
	RefreshProfile(ctx context.Context, wallet string) error
}

// Service defines the interface for the profile business logic
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	GetMe(ctx context.Context, identityID string) (*user.User, error)
	GetByWallet(ctx context.Context, address string) (*user.User, error)
	ListCandidates(ctx context.Context, identityID string, offset int, search string) ([]*user.User, error)
	CheckUsersExist(ctx context.Context, addresses []string) ([]string, error)
	UpdateProfile(ctx context.Context, identityID string, update *user.ProfileUpdate) (*user.User, error)
	GetRecommendations(ctx context.Context, identityID string) ([]*user.RecommendedUser, error)
	RefreshProfile(ctx context.Context, identityID string) (bool, error)
}

type profileService struct {
	store     Store
	queue     tasks.Queue
	refresher Refresher
	pageSize  int
	logger    *zap.Logger
}

// NewService creates a new profile service. pageSize bounds every candidate page.
func NewService(store Store, queue tasks.Queue, refresher Refresher, pageSize int, logger *zap.Logger) Service {
	return &profileService{
		store:     store,
		queue:     queue,
		refresher: refresher,
		pageSize:  pageSize,
		logger:    logger,
	}
}

func (s *profileService) GetMe(ctx context.Context, identityID string) (*user.User, error) {
	return s.getUser(ctx, identityID)
}

// GetByWallet finds the user whose primary or social wallet is address
func (s *profileService) GetByWallet(ctx context.Context, address string) (*user.User, error) {
	if !auth.ValidateEVMAddress(address) {
		return nil, apperrors.BadRequestError(fmt.Errorf("invalid address %q", address), apperrors.KindInvalidRequest)
	}

	usr, err := s.store.GetUserByWallet(ctx, address)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperrors.ResourceNotFoundError(user.ErrUserNotFound, apperrors.KindNotFound)
		}
		return nil, fmt.Errorf("failed to get user by wallet: %w", err)
	}
	return usr, nil
}

// ListCandidates pages through every user except the caller, ordered by id
func (s *profileService) ListCandidates(ctx context.Context, identityID string, offset int, search string) ([]*user.User, error) {
	if offset < 0 {
		return nil, apperrors.BadRequestError(fmt.Errorf("negative offset %d", offset), apperrors.KindInvalidRequest)
	}

	caller, err := s.getUser(ctx, identityID)
	if err != nil {
		return nil, err
	}

	users, err := s.store.ListUsers(ctx, user.ListOptions{
		ExcludeUserID: caller.ID,
		Offset:        offset,
		Limit:         s.pageSize,
		Search:        strings.TrimSpace(search),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return users, nil
}

// CheckUsersExist returns the lower-cased subset of addresses linked as a social wallet
func (s *profileService) CheckUsersExist(ctx context.Context, addresses []string) ([]string, error) {
	normalized := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		normalized = append(normalized, user.NormalizeAddress(addr))
	}

	found, err := s.store.ExistingSocialWallets(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to check users exist: %w", err)
	}
	return found, nil
}

// UpdateProfile applies the non-nil fields of update to the caller's profile
func (s *profileService) UpdateProfile(ctx context.Context, identityID string, update *user.ProfileUpdate) (*user.User, error) {
	if update == nil || update.Empty() {
		return nil, apperrors.BadRequestError(errors.New("empty profile update"), apperrors.KindInvalidRequest)
	}
	if err := update.Validate(); err != nil {
		return nil, apperrors.BadRequestError(err, apperrors.KindInvalidRequest)
	}

	caller, err := s.getUser(ctx, identityID)
	if err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateProfile(ctx, caller.ID, update)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperrors.ResourceNotFoundError(user.ErrUserNotFound, apperrors.KindNotFound)
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return updated, nil
}

// GetRecommendations returns the caller's recommended wallets, best score first
func (s *profileService) GetRecommendations(ctx context.Context, identityID string) ([]*user.RecommendedUser, error) {
	caller, err := s.getUser(ctx, identityID)
	if err != nil {
		return nil, err
	}

	recs, err := s.store.ListRecommendations(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recommendations: %w", err)
	}
	return recs, nil
}

// RefreshProfile queues a profile refresh for the caller's social wallet.
// It reports whether the task was accepted by the queue.
func (s *profileService) RefreshProfile(ctx context.Context, identityID string) (bool, error) {
	caller, err := s.getUser(ctx, identityID)
	if err != nil {
		return false, err
	}
	if !caller.HasSocialWallet() {
		return false, apperrors.ResourceNotFoundError(user.ErrSocialWalletNotFound, apperrors.KindNotFound)
	}

	wallet := *caller.SocialWallet
	queued := s.queue.Enqueue(downstream.TaskProfileRefresh, func(ctx context.Context) error {
		return s.refresher.RefreshProfile(ctx, wallet)
	})
	if !queued {
		s.logger.Warn("Profile refresh not queued", zap.Int64("user_id", caller.ID))
	}
	return queued, nil
}

func (s *profileService) getUser(ctx context.Context, identityID string) (*user.User, error) {
	usr, err := s.store.GetUserByIdentityID(ctx, identityID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperrors.ResourceNotFoundError(user.ErrUserNotFound, apperrors.KindNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return usr, nil
}
