package userstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"

	"github.com/chainsafe/social-wallet-api/pkg/pgutil"
	"github.com/chainsafe/social-wallet-api/pkg/user"
)

var _ Store = (*pgStore)(nil)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the user store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) GetUser(ctx context.Context, opts ...QueryOption) (*user.User, error) {
	options := &QueryOptions{}
	for _, opt := range opts {
		opt(options)
	}

	dao := new(UserDao)
	query := s.db.NewSelect().Model(dao)

	if options.ID != nil {
		query = query.Where("id = ?", *options.ID)
	}
	if options.IdentityID != nil {
		query = query.Where("identity_id = ?", *options.IdentityID)
	}
	if options.WalletAddress != nil {
		query = query.Where("wallet_address = ?", *options.WalletAddress)
	}
	if options.SocialWallet != nil {
		query = query.Where("social_wallet = ?", *options.SocialWallet)
	}
	if options.AnyWallet != nil {
		address := *options.AnyWallet
		query = query.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("wallet_address = ?", address).WhereOr("social_wallet = ?", address)
		})
	}

	err := query.Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toUser(dao), nil
}

func (s *pgStore) UserExists(ctx context.Context, identityID string) (bool, error) {
	exists, err := s.db.NewSelect().
		Model((*UserDao)(nil)).
		Where("identity_id = ?", identityID).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check user exists: %w", err)
	}
	return exists, nil
}

func (s *pgStore) GetInviteCode(ctx context.Context, code string) (*user.InviteCode, error) {
	dao := new(InviteCodeDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("code = ?", code).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrInviteCodeNotFound
		}
		return nil, fmt.Errorf("failed to get invite code: %w", err)
	}
	return toInviteCode(dao), nil
}

func (s *pgStore) CreateInviteCode(ctx context.Context, code string, maxUses int) (*user.InviteCode, error) {
	dao := &InviteCodeDao{
		Code:      code,
		Active:    true,
		MaxUses:   maxUses,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.NewInsert().
		Model(dao).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create invite code: %w", err)
	}
	return toInviteCode(dao), nil
}

func (s *pgStore) DeactivateInviteCode(ctx context.Context, code string) error {
	res, err := s.db.NewUpdate().
		Model((*InviteCodeDao)(nil)).
		Set("active = FALSE").
		Where("code = ?", code).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to deactivate invite code: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return user.ErrInviteCodeNotFound
	}
	return nil
}

func (s *pgStore) ListInviteCodes(ctx context.Context) ([]*user.InviteCode, error) {
	var daos []InviteCodeDao
	err := s.db.NewSelect().
		Model(&daos).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invite codes: %w", err)
	}

	codes := make([]*user.InviteCode, len(daos))
	for i := range daos {
		codes[i] = toInviteCode(&daos[i])
	}
	return codes, nil
}

// CreateUserWithInvite consumes one use of the invite code and inserts the user in a single
// transaction. The increment is guarded so a racing registration cannot push used past max_uses.
func (s *pgStore) CreateUserWithInvite(ctx context.Context, usr *user.User, inviteCodeID int64) (*user.User, error) {
	dao := toUserDao(usr)
	dao.ID = 0
	dao.InviteCodeID = inviteCodeID

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().
			Model((*InviteCodeDao)(nil)).
			Set("used = used + 1").
			Where("id = ?", inviteCodeID).
			Where("active = TRUE").
			Where("used < max_uses").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to consume invite code: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return user.ErrCodeAlreadyUsed
		}

		_, err = tx.NewInsert().
			Model(dao).
			Returning("*").
			Exec(ctx)
		if err != nil {
			if pgutil.IsUniqueViolation(err) {
				return user.ErrUserAlreadyExists
			}
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toUser(dao), nil
}

// UpsertChallenge stores ch as the user's only challenge, replacing any previous one.
func (s *pgStore) UpsertChallenge(ctx context.Context, ch *user.SigningChallenge) (*user.SigningChallenge, error) {
	dao := &SigningChallengeDao{
		UserID:    ch.UserID,
		Address:   user.NormalizeAddress(ch.Address),
		Message:   ch.Message,
		UpdatedAt: ch.UpdatedAt,
	}
	if dao.UpdatedAt.IsZero() {
		dao.UpdatedAt = time.Now().UTC()
	}

	_, err := s.db.NewInsert().
		Model(dao).
		On("CONFLICT (user_id) DO UPDATE").
		Set("address = EXCLUDED.address").
		Set("message = EXCLUDED.message").
		Set("updated_at = EXCLUDED.updated_at").
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert signing challenge: %w", err)
	}
	return toChallenge(dao), nil
}

func (s *pgStore) GetChallenge(ctx context.Context, userID int64) (*user.SigningChallenge, error) {
	dao := new(SigningChallengeDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrChallengeNotFound
		}
		return nil, fmt.Errorf("failed to get signing challenge: %w", err)
	}
	return toChallenge(dao), nil
}

// LinkSocialWallet deletes the user's challenge and sets the social wallet in one transaction.
// A challenge consumed concurrently yields ErrChallengeNotFound.
func (s *pgStore) LinkSocialWallet(ctx context.Context, userID int64, address string) (*user.User, error) {
	dao := new(UserDao)

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewDelete().
			Model((*SigningChallengeDao)(nil)).
			Where("user_id = ?", userID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to delete signing challenge: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return user.ErrChallengeNotFound
		}

		res, err = tx.NewUpdate().
			Model(dao).
			Set("social_wallet = ?", user.NormalizeAddress(address)).
			Set("updated_at = ?", time.Now().UTC()).
			Where("id = ?", userID).
			Returning("*").
			Exec(ctx)
		if err != nil {
			if pgutil.IsUniqueViolation(err) {
				return user.ErrSocialWalletTaken
			}
			return fmt.Errorf("failed to set social wallet: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return user.ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toUser(dao), nil
}

func (s *pgStore) ListUsers(ctx context.Context, opts user.ListOptions) ([]*user.User, error) {
	var daos []UserDao
	query := s.db.NewSelect().
		Model(&daos).
		Where("id <> ?", opts.ExcludeUserID)

	if search := strings.TrimSpace(opts.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		query = query.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("display_name ILIKE ?", pattern).WhereOr("social_wallet ILIKE ?", pattern)
		})
	}

	err := query.
		Order("id ASC").
		Offset(opts.Offset).
		Limit(opts.Limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return toUsers(daos), nil
}

// ExistingSocialWallets returns the subset of addresses linked as a social wallet, lower-cased.
func (s *pgStore) ExistingSocialWallets(ctx context.Context, addresses []string) ([]string, error) {
	normalized := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		if addr = user.NormalizeAddress(addr); addr != "" {
			normalized = append(normalized, addr)
		}
	}

	found := make([]string, 0)
	if len(normalized) == 0 {
		return found, nil
	}

	err := s.db.NewSelect().
		Model((*UserDao)(nil)).
		Column("social_wallet").
		Where("social_wallet IN (?)", bun.In(normalized)).
		Order("social_wallet ASC").
		Scan(ctx, &found)
	if err != nil {
		return nil, fmt.Errorf("failed to check social wallets: %w", err)
	}
	return found, nil
}

func (s *pgStore) UpdateProfile(ctx context.Context, userID int64, update *user.ProfileUpdate) (*user.User, error) {
	dao := new(UserDao)
	query := s.db.NewUpdate().
		Model(dao).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", userID)

	if update.DisplayName != nil {
		query = query.Set("display_name = ?", strings.TrimSpace(*update.DisplayName))
	}
	if update.OnboardingComplete != nil {
		query = query.Set("onboarding_complete = ?", *update.OnboardingComplete)
	}

	res, err := query.Returning("*").Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, user.ErrUserNotFound
	}
	return toUser(dao), nil
}

func (s *pgStore) ListRecommendations(ctx context.Context, userID int64) ([]*user.RecommendedUser, error) {
	var daos []RecommendedUserDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("user_id = ?", userID).
		Order("score DESC", "id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}

	recs := make([]*user.RecommendedUser, len(daos))
	for i := range daos {
		recs[i] = toRecommendedUser(&daos[i])
	}
	return recs, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (s *pgStore) GetUserByIdentityID(ctx context.Context, identityID string) (*user.User, error) {
	return s.GetUser(ctx, WithIdentityID(identityID))
}

// GetUserByWallet matches the primary or the social wallet
func (s *pgStore) GetUserByWallet(ctx context.Context, address string) (*user.User, error) {
	return s.GetUser(ctx, WithAnyWallet(address))
}
