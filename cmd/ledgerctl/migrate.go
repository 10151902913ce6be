package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ledgerfox/backend/internal/config"
	"github.com/ledgerfox/backend/internal/database"
	"github.com/ledgerfox/backend/internal/logger"
	"github.com/ledgerfox/backend/internal/models"
	"github.com/ledgerfox/backend/internal/repository"
)

var currencyNames = map[string]string{
	"EUR": "Euro",
	"USD": "US Dollar",
	"GBP": "British Pound",
	"JPY": "Japanese Yen",
	"CHF": "Swiss Franc",
	"CAD": "Canadian Dollar",
	"AUD": "Australian Dollar",
	"SEK": "Swedish Krona",
	"NOK": "Norwegian Krone",
	"DKK": "Danish Krone",
	"PLN": "Polish Zloty",
}

type migrateCmd struct {
	seed bool
}

func (*migrateCmd) Name() string     { return "migrate" }
func (*migrateCmd) Synopsis() string { return "creates the ledger schema and seeds currencies" }
func (*migrateCmd) Usage() string {
	return `migrate [-seed=false]

Applies the embedded schema to the configured database. Safe to run repeatedly.
Unless -seed=false, the configured currencies are inserted when missing.
`
}

func (c *migrateCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.seed, "seed", true, "insert the configured currencies")
}

func (c *migrateCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := config.LoadLedgerConfig()
	log := logger.New(cfg.LogLevel)

	db, err := database.Open(ctx, database.GetConfig(), log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		fmt.Fprintf(os.Stderr, "Error applying schema: %v\n", err)
		return subcommands.ExitFailure
	}
	log.Info().Int("statements", len(database.Statements())).Msg("Schema applied")

	if !c.seed {
		return subcommands.ExitSuccess
	}

	currencies := repository.NewCurrencyRepository(db, nil, cfg.DefaultCurrency)
	for _, code := range cfg.Currencies {
		name, ok := currencyNames[code]
		if !ok {
			name = code
		}
		currency, err := models.NewCurrency(code, name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		if err := currencies.Seed(ctx, currency); err != nil {
			fmt.Fprintf(os.Stderr, "Error seeding %s: %v\n", currency.Code, err)
			return subcommands.ExitFailure
		}
		log.Info().Str("code", currency.Code).Int("decimal_places", currency.DecimalPlaces).Msg("Currency seeded")
	}
	return subcommands.ExitSuccess
}
