package user

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ChallengeTTL is how long a signing challenge stays verifiable after it was last issued.
const ChallengeTTL = 15 * time.Minute

// User represents the domain model for a registered user.
type User struct {
	ID                 int64     `json:"id"`
	IdentityID         string    `json:"identity_id"`
	WalletAddress      string    `json:"wallet_address"`
	SocialWallet       *string   `json:"social_wallet"`
	OnboardingComplete bool      `json:"onboarding_complete"`
	DisplayName        *string   `json:"display_name"`
	InviteCodeID       int64     `json:"-"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// New creates a User admitted by the given invite code.
// The wallet address is stored lower-cased.
func New(identityID, walletAddress string, inviteCodeID int64) *User {
	now := time.Now().UTC()
	return &User{
		IdentityID:    identityID,
		WalletAddress: NormalizeAddress(walletAddress),
		InviteCodeID:  inviteCodeID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// HasSocialWallet reports whether a social wallet has been linked.
func (u *User) HasSocialWallet() bool {
	return u.SocialWallet != nil && *u.SocialWallet != ""
}

// InviteCode is an admission ticket consumed by registration.
type InviteCode struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	Active    bool      `json:"active"`
	Used      int       `json:"used"`
	MaxUses   int       `json:"max_uses"`
	CreatedAt time.Time `json:"created_at"`
}

// Exhausted reports whether the code has reached its usage cap.
func (c *InviteCode) Exhausted() bool {
	return c.Used >= c.MaxUses
}

// SigningChallenge is the pending proof-of-ownership record for a candidate social wallet.
// At most one exists per user.
type SigningChallenge struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Address   string    `json:"address"`
	Message   string    `json:"message"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Expired reports whether the challenge is older than ChallengeTTL at now.
func (c *SigningChallenge) Expired(now time.Time) bool {
	return now.Sub(c.UpdatedAt) > ChallengeTTL
}

// RecommendedUser is a scored wallet suggested to a user.
type RecommendedUser struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"user_id"`
	WalletAddress string          `json:"wallet_address"`
	Score         decimal.Decimal `json:"score"`
	CreatedAt     time.Time       `json:"created_at"`
}

// NormalizeAddress trims and lower-cases a hex wallet address.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}
