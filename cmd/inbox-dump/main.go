// Command inbox-dump prints one user's activity feed as JSON, bypassing the
// HTTP layer. It is meant for support investigations ("why does X not see
// this answer?") against a live database.
//
// Usage:
//
//	inbox-dump -user=<uuid> [-direction=RECEIVED] [-type=NOTE] [-key-dev=<uuid>]
//	           [-core-app=<uuid>] [-q=text] [-since=<ms>] [-before=<ms>] [-limit=N]
//	inbox-dump -user=<uuid> -token
//
// With -token the command prints a signed access token for the user instead,
// for replaying requests against the API.
//
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/devtrack-inbox/internal/adapter/postgres"
	"github.com/heartmarshall/devtrack-inbox/internal/app"
	"github.com/heartmarshall/devtrack-inbox/internal/auth"
	"github.com/heartmarshall/devtrack-inbox/internal/config"
	"github.com/heartmarshall/devtrack-inbox/internal/domain"
	"github.com/heartmarshall/devtrack-inbox/internal/service/inbox"
	"github.com/heartmarshall/devtrack-inbox/internal/transport/rest"
	"github.com/heartmarshall/devtrack-inbox/pkg/ctxutil"
)

func main() {
	os.Exit(run())
}

// run does the work of main and returns the exit code, so deferred cleanup
// runs before the process exits.
func run() int {
	var (
		userFlag    = flag.String("user", "", "id of the user whose inbox to print (required)")
		direction   = flag.String("direction", "", "SENT or RECEIVED")
		itemType    = flag.String("type", "", "NOTE, KEY_DEV_ANSWER or CORE_APP_ANSWER")
		keyDevFlag  = flag.String("key-dev", "", "restrict to one KeyDev id")
		coreAppFlag = flag.String("core-app", "", "restrict to one CoreApp id")
		search      = flag.String("q", "", "case-insensitive search text")
		since       = flag.Int64("since", 0, "inclusive lower bound, epoch ms")
		before      = flag.Int64("before", -1, "exclusive upper bound, epoch ms")
		limit       = flag.Int("limit", 0, "page size (0 = configured default)")
		printToken  = flag.Bool("token", false, "print an access token for -user and exit")
	)
	flag.Parse()

	userID, err := uuid.Parse(*userFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "inbox-dump: -user must be a UUID")
		flag.Usage()
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		log.Printf("load config: %v", err)
		return 1
	}

	if *printToken {
		token, err := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL).Issue(userID)
		if err != nil {
			log.Printf("issue token: %v", err)
			return 1
		}
		fmt.Println(token)
		return 0
	}

	input := inbox.ListFeedInput{
		SearchQuery: *search,
		SinceTs:     *since,
		Limit:       *limit,
	}
	if *direction != "" {
		d := domain.Direction(strings.ToUpper(*direction))
		input.Direction = &d
	}
	if *itemType != "" {
		k := domain.ItemKind(strings.ToUpper(*itemType))
		input.ItemType = &k
	}
	if input.KeyDevID, err = optionalID(*keyDevFlag); err != nil {
		log.Printf("-key-dev: %v", err)
		return 2
	}
	if input.CoreAppID, err = optionalID(*coreAppFlag); err != nil {
		log.Printf("-core-app: %v", err)
		return 2
	}
	if *before >= 0 {
		input.BeforeTs = before
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		return 1
	}
	defer pool.Close()

	svc := app.NewInboxService(logger, pool, cfg.Inbox)

	result, err := svc.ListFeed(ctxutil.WithUserID(ctx, userID), input)
	if err != nil {
		logger.Error("list feed", slog.String("user_id", userID.String()), slog.String("error", err.Error()))
		return 1
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rest.NewFeedResponse(result)); err != nil {
		logger.Error("write output", slog.String("error", err.Error()))
		return 1
	}
	return 0
}

func optionalID(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
