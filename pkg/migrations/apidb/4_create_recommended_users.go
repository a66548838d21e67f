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
		log.Println("creating recommended_users table...")
		if err := mghelper.CreateSchema(ctx, db, &userstore.RecommendedUserDao{}); err != nil {
			return err
		}
		if err := mghelper.AddConstraint(ctx, db, &userstore.RecommendedUserDao{},
			"fk_recommended_users_user", "FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE"); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &userstore.RecommendedUserDao{}, "score")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping recommended_users table...")
		return mghelper.DropTables(ctx, db, &userstore.RecommendedUserDao{})
	})
}
