package apidb

import (
	"context"
	"log"

	mghelper "github.com/chainsafe/social-wallet-api/pkg/pgutil/migrations"
	"github.com/chainsafe/social-wallet-api/pkg/userstore"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating signing_challenges table...")
		if err := mghelper.CreateSchema(ctx, db, &userstore.SigningChallengeDao{}); err != nil {
			return err
		}
		return mghelper.AddConstraint(ctx, db, &userstore.SigningChallengeDao{},
			"fk_signing_challenges_user", "FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping signing_challenges table...")
		return mghelper.DropTables(ctx, db, &userstore.SigningChallengeDao{})
	})
}
