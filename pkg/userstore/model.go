package userstore

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/chainsafe/social-wallet-api/pkg/user"
)

// UserDao is a data access object that maps directly to the 'users' table in PostgreSQL.
type UserDao struct {
	bun.BaseModel      `bun:"table:users,alias:u"`
	ID                 int64     `bun:"id,pk,autoincrement"`
	IdentityID         string    `bun:"identity_id,unique,notnull,type:varchar(255)"`
	WalletAddress      string    `bun:"wallet_address,unique,notnull,type:varchar(42)"`
	SocialWallet       *string   `bun:"social_wallet,unique,type:varchar(42)"`
	OnboardingComplete bool      `bun:"onboarding_complete,notnull,default:false"`
	DisplayName        *string   `bun:"display_name,type:varchar(64)"`
	InviteCodeID       int64     `bun:"invite_code_id,notnull"`
	CreatedAt          time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt          time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// InviteCodeDao maps to the 'invite_codes' table.
type InviteCodeDao struct {
	bun.BaseModel `bun:"table:invite_codes,alias:ic"`
	ID            int64     `bun:"id,pk,autoincrement"`
	Code          string    `bun:"code,unique,notnull,type:varchar(64)"`
	Active        bool      `bun:"active,notnull,default:true"`
	Used          int       `bun:"used,notnull,default:0"`
	MaxUses       int       `bun:"max_uses,notnull,default:1"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// SigningChallengeDao maps to the 'signing_challenges' table. One row per user.
type SigningChallengeDao struct {
	bun.BaseModel `bun:"table:signing_challenges,alias:sc"`
	ID            int64     `bun:"id,pk,autoincrement"`
	UserID        int64     `bun:"user_id,unique,notnull"`
	Address       string    `bun:"address,notnull,type:varchar(42)"`
	Message       string    `bun:"message,notnull,type:text"`
	UpdatedAt     time.Time `bun:"updated_at,notnull"`
}

// RecommendedUserDao maps to the 'recommended_users' table.
type RecommendedUserDao struct {
	bun.BaseModel `bun:"table:recommended_users,alias:ru"`
	ID            int64           `bun:"id,pk,autoincrement"`
	UserID        int64           `bun:"user_id,notnull,unique:uq_recommended_users_user_wallet"`
	WalletAddress string          `bun:"wallet_address,notnull,type:varchar(42),unique:uq_recommended_users_user_wallet"`
	Score         decimal.Decimal `bun:"score,notnull,type:numeric(20,8)"`
	CreatedAt     time.Time       `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func toUserDao(usr *user.User) *UserDao {
	return &UserDao{
		ID:                 usr.ID,
		IdentityID:         usr.IdentityID,
		WalletAddress:      usr.WalletAddress,
		SocialWallet:       usr.SocialWallet,
		OnboardingComplete: usr.OnboardingComplete,
		DisplayName:        usr.DisplayName,
		InviteCodeID:       usr.InviteCodeID,
		CreatedAt:          usr.CreatedAt,
		UpdatedAt:          usr.UpdatedAt,
	}
}

func toUser(dao *UserDao) *user.User {
	return &user.User{
		ID:                 dao.ID,
		IdentityID:         dao.IdentityID,
		WalletAddress:      dao.WalletAddress,
		SocialWallet:       dao.SocialWallet,
		OnboardingComplete: dao.OnboardingComplete,
		DisplayName:        dao.DisplayName,
		InviteCodeID:       dao.InviteCodeID,
		CreatedAt:          dao.CreatedAt,
		UpdatedAt:          dao.UpdatedAt,
	}
}

func toUsers(daos []UserDao) []*user.User {
	users := make([]*user.User, len(daos))
	for i := range daos {
		users[i] = toUser(&daos[i])
	}
	return users
}

func toInviteCode(dao *InviteCodeDao) *user.InviteCode {
	return &user.InviteCode{
		ID:        dao.ID,
		Code:      dao.Code,
		Active:    dao.Active,
		Used:      dao.Used,
		MaxUses:   dao.MaxUses,
		CreatedAt: dao.CreatedAt,
	}
}

func toChallenge(dao *SigningChallengeDao) *user.SigningChallenge {
	return &user.SigningChallenge{
		ID:        dao.ID,
		UserID:    dao.UserID,
		Address:   dao.Address,
		Message:   dao.Message,
		UpdatedAt: dao.UpdatedAt,
	}
}

func toRecommendedUser(dao *RecommendedUserDao) *user.RecommendedUser {
	return &user.RecommendedUser{
		ID:            dao.ID,
		UserID:        dao.UserID,
		WalletAddress: dao.WalletAddress,
		Score:         dao.Score,
		CreatedAt:     dao.CreatedAt,
	}
}
