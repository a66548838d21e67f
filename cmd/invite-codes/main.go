// Command invite-codes administers registration invite codes.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"

	"github.com/chainsafe/social-wallet-api/pkg/config"
	"github.com/chainsafe/social-wallet-api/pkg/pgutil"
	"github.com/chainsafe/social-wallet-api/pkg/user"
	"github.com/chainsafe/social-wallet-api/pkg/userstore"
)

const usageText = `Usage:
  go run cmd/invite-codes/main.go -config config.yaml <command> [args]

Supported commands are:
  - create [code] [max_uses] - creates a code; a random code is generated when omitted (max_uses defaults to 1).
  - deactivate <code> - stops a code from admitting new users.
  - list - prints every code with its usage.
`

var errUsage = errors.New("invalid usage")

func main() {
	cfgPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Usage = func() {
		fmt.Print(usageText)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.LoadAPIServer(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration file: %s", err.Error())
	}

	ctx := context.Background()
	db, err := pgutil.ConnectDB(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("error connecting to database: %s", err.Error())
	}
	defer db.Close()

	if err = run(ctx, userstore.NewStore(db), os.Stdout, flag.Args()...); err != nil {
		if errors.Is(err, errUsage) {
			flag.Usage()
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, store userstore.InviteStore, out io.Writer, args ...string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command provided", errUsage)
	}

	switch args[0] {
	case "create":
		code, maxUses, err := parseCreateArgs(args[1:])
		if err != nil {
			return err
		}
		ic, err := store.CreateInviteCode(ctx, code, maxUses)
		if err != nil {
			return fmt.Errorf("create invite code: %w", err)
		}
		fmt.Fprintf(out, "created invite code %s (max uses %d)\n", ic.Code, ic.MaxUses)
		return nil

	case "deactivate":
		if len(args) != 2 {
			return fmt.Errorf("%w: deactivate takes exactly one code", errUsage)
		}
		if err := store.DeactivateInviteCode(ctx, args[1]); err != nil {
			if errors.Is(err, user.ErrInviteCodeNotFound) {
				return fmt.Errorf("invite code %s not found", args[1])
			}
			return fmt.Errorf("deactivate invite code: %w", err)
		}
		fmt.Fprintf(out, "deactivated invite code %s\n", args[1])
		return nil

	case "list":
		codes, err := store.ListInviteCodes(ctx)
		if err != nil {
			return fmt.Errorf("list invite codes: %w", err)
		}
		printCodes(out, codes)
		return nil

	default:
		return fmt.Errorf("%w: unsupported command %q", errUsage, args[0])
	}
}

func parseCreateArgs(args []string) (string, int, error) {
	code, maxUses := "", 1

	switch len(args) {
	case 0:
	case 1:
		code = args[0]
	case 2:
		code = args[0]
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return "", 0, fmt.Errorf("%w: max_uses must be a positive integer", errUsage)
		}
		maxUses = n
	default:
		return "", 0, fmt.Errorf("%w: too many arguments for create", errUsage)
	}

	if code = strings.TrimSpace(code); code == "" {
		code = strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
	}
	return code, maxUses, nil
}

func printCodes(out io.Writer, codes []*user.InviteCode) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tACTIVE\tUSED\tMAX\tCREATED")
	for _, c := range codes {
		fmt.Fprintf(tw, "%s\t%t\t%d\t%d\t%s\n", c.Code, c.Active, c.Used, c.MaxUses, c.CreatedAt.Format("2006-01-02"))
	}
	_ = tw.Flush()
}
