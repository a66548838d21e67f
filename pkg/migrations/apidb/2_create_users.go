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
		log.Println("creating users table...")
		if err := mghelper.CreateSchema(ctx, db, &userstore.UserDao{}); err != nil {
			return err
		}
		if err := mghelper.AddConstraint(ctx, db, &userstore.UserDao{},
			"fk_users_invite_code", "FOREIGN KEY (invite_code_id) REFERENCES invite_codes (id)"); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &userstore.UserDao{}, "invite_code_id")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping users table...")
		return mghelper.DropTables(ctx, db, &userstore.UserDao{})
	})
}
