package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/quantfold/folio/cmd"
)

// completion declares the shell completion tree for the application.
func completion() *complete.Command {
	files := predict.Files("*")
	dateFlags := map[string]complete.Predictor{"d": predict.Something}
	outputFlags := map[string]complete.Predictor{"d": predict.Something, "o": files}
	chartFlags := map[string]complete.Predictor{
		"prices": predict.Files("*.json"),
		"path":   predict.Something,
		"out":    predict.Files("*.png"),
	}
	runFlags := map[string]complete.Predictor{
		"d":      predict.Something,
		"report": files,
		"csv":    predict.Files("*.csv"),
		"prices": predict.Files("*.json"),
		"path":   predict.Something,
		"out":    predict.Files("*.png"),
	}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"stocks":   files,
			"bonds":    files,
			"db":       predict.Files("*.db"),
			"investor": predict.Files("*.yaml"),
			"v":        predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"run":     {Flags: runFlags},
			"report":  {Flags: outputFlags},
			"export":  {Flags: outputFlags},
			"filter":  {Flags: dateFlags},
			"chart":   {Flags: chartFlags},
			"db":      {Flags: map[string]complete.Predictor{"counts": predict.Nothing}},
			"summary": {Flags: dateFlags},
			"assist":  {},
			"topic":   {Args: predict.Set{"readme", "files", "metrics", "store", "chart"}},
			"help":    {},
		},
	}
}

func main() {
	completion().Complete("fol")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()

	// Unknown subcommands can be provided as fol-<name> binaries on the PATH.
	if name := flag.Arg(0); name != "" && !known(name) {
		if ran, code := cmd.RunExtension(name, flag.Args()[1:]); ran {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

func known(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, c := range cmd.Commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}
