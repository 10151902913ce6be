// Command ledgerctl runs maintenance tasks against the ledger database and
// help cache.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/ledgerfox/backend/internal/config"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(&migrateCmd{}, "")
	commander.Register(&warmHelpCmd{}, "")

	flag.Parse()
	// A missing .env just means defaults and the environment apply.
	_ = config.Init()
	os.Exit(int(commander.Execute(context.Background())))
}
