// Command kas manages a small shop's daily cash ledger from the terminal.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/drajat/kasharian/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion declares the shell completion for the kas command. It must be
// called before flag.Parse and is a no-op outside of a completion request.
func completion() {
	ledgerFlags := map[string]complete.Predictor{
		"d":        predict.Nothing,
		"sales":    predict.Nothing,
		"cash":     predict.Nothing,
		"transfer": predict.Nothing,
		"expenses": predict.Nothing,
		"notes":    predict.Nothing,
		"y":        predict.Nothing,
	}
	kas := &complete.Command{
		Sub: map[string]*complete.Command{
			"add":     {Flags: ledgerFlags},
			"history": {},
			"edit":    {Flags: map[string]complete.Predictor{"id": predict.Nothing}},
			"delete":  {Flags: map[string]complete.Predictor{"id": predict.Nothing, "y": predict.Nothing}},
			"clear":   {Flags: map[string]complete.Predictor{"y": predict.Nothing}},
			"summary": {},
			"export": {Flags: map[string]complete.Predictor{
				"format": predict.Set{"json", "csv"},
				"o":      predict.Dirs("*"),
			}},
			"import": {Args: predict.Files("*.json")},
			"query": {
				Args:  predict.Files("*.json"),
				Flags: map[string]complete.Predictor{"q": predict.Nothing},
			},
			"topic":  {},
			"assist": {},
		},
		Flags: map[string]complete.Predictor{
			"data":  predict.Dirs("*"),
			"store": predict.Set{"file", "sqlite"},
		},
	}
	kas.Complete("kas")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, "kas")
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
