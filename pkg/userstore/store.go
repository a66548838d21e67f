package userstore

import (
	"context"

	"github.com/chainsafe/social-wallet-api/pkg/user"
)

// Store defines the full persistence surface of the user domain.
// Services depend on the narrow interfaces below (or their own subsets).
type Store interface {
	UserStore
	InviteStore
	ChallengeStore
	ProfileStore
}

// UserStore defines user lookups
type UserStore interface {
	GetUser(ctx context.Context, opts ...QueryOption) (*user.User, error)
	GetUserByIdentityID(ctx context.Context, identityID string) (*user.User, error)
	GetUserByWallet(ctx context.Context, address string) (*user.User, error)
	UserExists(ctx context.Context, identityID string) (bool, error)
}

// InviteStore defines invite code persistence and the invite-gated user insert
type InviteStore interface {
	GetInviteCode(ctx context.Context, code string) (*user.InviteCode, error)
	CreateInviteCode(ctx context.Context, code string, maxUses int) (*user.InviteCode, error)
	DeactivateInviteCode(ctx context.Context, code string) error
	ListInviteCodes(ctx context.Context) ([]*user.InviteCode, error)
	CreateUserWithInvite(ctx context.Context, usr *user.User, inviteCodeID int64) (*user.User, error)
}

// ChallengeStore defines signing challenge persistence and social wallet linking
type ChallengeStore interface {
	UpsertChallenge(ctx context.Context, ch *user.SigningChallenge) (*user.SigningChallenge, error)
	GetChallenge(ctx context.Context, userID int64) (*user.SigningChallenge, error)
	LinkSocialWallet(ctx context.Context, userID int64, address string) (*user.User, error)
}

// ProfileStore defines profile reads and updates
type ProfileStore interface {
	ListUsers(ctx context.Context, opts user.ListOptions) ([]*user.User, error)
	ExistingSocialWallets(ctx context.Context, addresses []string) ([]string, error)
	UpdateProfile(ctx context.Context, userID int64, update *user.ProfileUpdate) (*user.User, error)
	ListRecommendations(ctx context.Context, userID int64) ([]*user.RecommendedUser, error)
}

// QueryOptions defines options for querying users
type QueryOptions struct {
	ID            *int64
	IdentityID    *string
	WalletAddress *string
	SocialWallet  *string
	AnyWallet     *string
}

// QueryOption is a functional option for querying users
type QueryOption func(*QueryOptions)

// WithID sets the internal user ID filter
func WithID(id int64) QueryOption {
	return func(opts *QueryOptions) {
		opts.ID = &id
	}
}

// WithIdentityID sets the identity provider ID filter
func WithIdentityID(identityID string) QueryOption {
	return func(opts *QueryOptions) {
		opts.IdentityID = &identityID
	}
}

// WithWalletAddress sets the primary wallet filter
func WithWalletAddress(address string) QueryOption {
	return func(opts *QueryOptions) {
		address = user.NormalizeAddress(address)
		opts.WalletAddress = &address
	}
}

// WithSocialWallet sets the social wallet filter
func WithSocialWallet(address string) QueryOption {
	return func(opts *QueryOptions) {
		address = user.NormalizeAddress(address)
		opts.SocialWallet = &address
	}
}

// WithAnyWallet matches users whose primary or social wallet equals address
func WithAnyWallet(address string) QueryOption {
	return func(opts *QueryOptions) {
		address = user.NormalizeAddress(address)
		opts.AnyWallet = &address
	}
}
