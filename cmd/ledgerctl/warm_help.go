package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/ledgerfox/backend/internal/config"
	"github.com/ledgerfox/backend/internal/database"
	"github.com/ledgerfox/backend/internal/help"
	"github.com/ledgerfox/backend/internal/logger"
)

type warmHelpCmd struct {
	languages string
}

func (*warmHelpCmd) Name() string     { return "warm-help" }
func (*warmHelpCmd) Synopsis() string { return "prefetches help text into the Redis cache" }
func (*warmHelpCmd) Usage() string {
	return `warm-help [-languages en_US,de_DE]

Fetches every configured help route in every language that is not cached yet.
`
}

func (c *warmHelpCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.languages, "languages", "", "comma separated languages, defaults to the configured list")
}

func (c *warmHelpCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := config.LoadHelpConfig()
	log := logger.New(config.LoadLedgerConfig().LogLevel)

	languages := cfg.Languages
	if c.languages != "" {
		languages = strings.Split(c.languages, ",")
	}

	rdb := database.InitRedis(log)
	if rdb == nil {
		fmt.Fprintln(os.Stderr, "Error: Redis is required to warm the help cache.")
		return subcommands.ExitFailure
	}
	defer rdb.Close()

	provider := help.NewRemoteProvider(rdb, help.Options{
		BaseURL:  cfg.BaseURL,
		Routes:   cfg.Routes,
		CacheTTL: cfg.CacheTTL,
		Timeout:  cfg.Timeout,
	}, log)
	svc := help.NewService(provider, nil, cfg.DefaultLanguage, log)

	fetched := svc.Warm(ctx, provider.Routes(), languages)
	log.Info().Int("fetched", fetched).Int("routes", len(cfg.Routes)).Strs("languages", languages).Msg("Help cache warmed")
	return subcommands.ExitSuccess
}
