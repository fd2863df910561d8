// Package cmd implements the CLI application to manage the shop's daily
// cash ledger.
package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/drajat/kasharian"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables for the app-wide flags.

var dataDir = flag.String("data", "", "Path to the data directory (defaults to KASHARIAN_DATA_DIR or .kasharian)")
var storeKind = flag.String("store", "", "Persistence backend: file or sqlite (defaults to KASHARIAN_STORE or file)")

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "ledger")
	c.Register(&historyCmd{}, "ledger")
	c.Register(&editCmd{}, "ledger")
	c.Register(&deleteCmd{}, "ledger")
	c.Register(&clearCmd{}, "ledger")

	c.Register(&summaryCmd{}, "reports")

	c.Register(&exportCmd{}, "backup")
	c.Register(&importCmd{}, "backup")
	c.Register(&queryCmd{}, "backup")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// appConfig merges the environment configuration with the app-wide flags;
// flags win.
func appConfig() kasharian.Config {
	cfg := kasharian.LoadConfig()
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *storeKind != "" {
		cfg.StoreKind = *storeKind
	}
	return cfg
}

// openLedger opens the configured store and loads the ledger from it. The
// returned closer must be called once the command is done with the store.
func openLedger() (*kasharian.Ledger, func() error, error) {
	cfg := appConfig()

	var store kasharian.Store
	closer := func() error { return nil }
	switch cfg.StoreKind {
	case "file":
		store = kasharian.NewFileStore(cfg.DataDir)
	case "sqlite":
		s, err := kasharian.OpenSQLiteStore(filepath.Join(cfg.DataDir, "kasharian.db"))
		if err != nil {
			return nil, nil, err
		}
		store, closer = s, s.Close
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q (want file or sqlite)", cfg.StoreKind)
	}

	ledger := kasharian.NewLedger(store)
	if err := ledger.Load(); err != nil {
		closer()
		return nil, nil, err
	}
	return ledger, closer, nil
}

// confirm asks a yes/no question on the terminal and reports the decision.
// The ledger itself never asks: destructive mutations reach it only after
// the decision is resolved here, at the UI boundary.
func confirm(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when no renderer can be built.
func printMarkdown(markdown string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		if out, rerr := r.Render(markdown); rerr == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Println(markdown)
}
