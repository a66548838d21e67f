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
		log.Println("creating invite_codes table...")
		if err := mghelper.CreateSchema(ctx, db, &userstore.InviteCodeDao{}); err != nil {
			return err
		}
		return mghelper.AddConstraint(ctx, db, &userstore.InviteCodeDao{},
			"chk_invite_codes_used", "CHECK (used >= 0 AND used <= max_uses)")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping invite_codes table...")
		return mghelper.DropTables(ctx, db, &userstore.InviteCodeDao{})
	})
}
