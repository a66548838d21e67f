// Package migrations holds the schema helpers used by bun migration sets and the migrate command.
package migrations

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

const usageText = `Usage:
  go run cmd/api-server/migrate/main.go -config config.yaml <command>

Supported commands are:
  - init - creates the migration bookkeeping tables.
  - up - applies every pending migration.
  - down - rolls back the last migration group.
  - status - prints applied and pending migrations.
`

// Usage prints command usage
func Usage() {
	fmt.Print(usageText)
	flag.PrintDefaults()
	os.Exit(2)
}

// Exitf prints the message and the usage, then exits
func Exitf(s string, args ...any) {
	fmt.Fprintf(os.Stderr, s+"\n", args...)
	Usage()
}

// CreateSchema creates a table per model, skipping existing ones
func CreateSchema(ctx context.Context, db bun.IDB, models ...any) error {
	for _, model := range models {
		q := db.NewCreateTable().Model(model).IfNotExists()
		log.Printf("creating table %s", q.GetTableName())
		if _, err := q.Exec(ctx); err != nil {
			return fmt.Errorf("create table %s: %w", q.GetTableName(), err)
		}
	}
	return nil
}

// DropTables drops the table of each model with CASCADE
func DropTables(ctx context.Context, db bun.IDB, models ...any) error {
	for _, model := range models {
		q := db.NewDropTable().Model(model).IfExists().Cascade()
		log.Printf("dropping table %s", q.GetTableName())
		if _, err := q.Exec(ctx); err != nil {
			return fmt.Errorf("drop table %s: %w", q.GetTableName(), err)
		}
	}
	return nil
}

// InsertEntry inserts seed rows, one statement per entry
func InsertEntry(ctx context.Context, db bun.IDB, entries ...any) error {
	for _, entry := range entries {
		if _, err := db.NewInsert().Model(entry).Exec(ctx); err != nil {
			return fmt.Errorf("insert %T: %w", entry, err)
		}
	}
	return nil
}

// CreateModelIndexes creates one idx_<table>_<column> index per column
func CreateModelIndexes(ctx context.Context, db bun.IDB, model any, columns ...string) error {
	table, err := tableName(db, model)
	if err != nil {
		return err
	}
	for _, column := range columns {
		name := fmt.Sprintf("idx_%s_%s", table, column)
		if _, err = db.NewCreateIndex().
			Model(model).
			Index(name).
			Column(column).
			IfNotExists().
			Exec(ctx); err != nil {
			return fmt.Errorf("create index %s: %w", name, err)
		}
	}
	return nil
}

// AddConstraint adds a named table constraint, e.g. a CHECK or FOREIGN KEY clause
func AddConstraint(ctx context.Context, db bun.IDB, model any, name, definition string) error {
	table, err := tableName(db, model)
	if err != nil {
		return err
	}
	if _, err = db.ExecContext(ctx, fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s %s", table, name, definition)); err != nil {
		return fmt.Errorf("add constraint %s: %w", name, err)
	}
	return nil
}

func tableName(db bun.IDB, model any) (string, error) {
	if model == nil {
		return "", fmt.Errorf("model cannot be nil")
	}
	name := db.NewCreateTable().Model(model).GetTableName()
	if name == "" {
		return "", fmt.Errorf("failed to resolve table name for model %T", model)
	}
	return strings.NewReplacer(`"`, "", ".", "_").Replace(name), nil
}

type command func(ctx context.Context, migrator *migrate.Migrator) error

var commands = map[string]command{
	"init": func(ctx context.Context, migrator *migrate.Migrator) error {
		if err := migrator.Init(ctx); err != nil {
			return err
		}
		log.Println("migration tables created")
		return nil
	},
	"up": locked(func(ctx context.Context, migrator *migrate.Migrator) error {
		group, err := migrator.Migrate(ctx)
		if err != nil {
			return err
		}
		if group.IsZero() {
			log.Println("database is up to date")
			return nil
		}
		log.Printf("migrated to %s", group)
		return nil
	}),
	"down": locked(func(ctx context.Context, migrator *migrate.Migrator) error {
		group, err := migrator.Rollback(ctx)
		if err != nil {
			return err
		}
		if group.IsZero() {
			log.Println("nothing to roll back")
			return nil
		}
		log.Printf("rolled back %s", group)
		return nil
	}),
	"status": func(ctx context.Context, migrator *migrate.Migrator) error {
		ms, err := migrator.MigrationsWithStatus(ctx)
		if err != nil {
			return err
		}
		log.Printf("migrations: %s", ms)
		log.Printf("pending: %s", ms.Unapplied())
		log.Printf("last group: %s", ms.LastGroup())
		return nil
	},
}

// locked runs cmd while holding the migration lock
func locked(cmd command) command {
	return func(ctx context.Context, migrator *migrate.Migrator) error {
		if err := migrator.Lock(ctx); err != nil {
			return fmt.Errorf("failed to acquire migration lock: %w", err)
		}
		defer func() {
			if err := migrator.Unlock(ctx); err != nil {
				log.Printf("failed to release migration lock: %v", err)
			}
		}()
		return cmd(ctx, migrator)
	}
}

// RunMigrations runs the command named by args[0]
func RunMigrations(ctx context.Context, migrator *migrate.Migrator, args ...string) error {
	if len(args) == 0 {
		return fmt.Errorf("no command provided")
	}

	cmd, ok := commands[args[0]]
	if !ok {
		names := make([]string, 0, len(commands))
		for name := range commands {
			names = append(names, name)
		}
		sort.Strings(names)
		return fmt.Errorf("unknown command %q (want one of %s)", args[0], strings.Join(names, ", "))
	}
	return cmd(ctx, migrator)
}
