package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Advise  AdviseCmd        `cmd:"" help:"Print flop advice for one or more hands"`
	Random  RandomCmd        `cmd:"" help:"Deal a random starting hand"`
	Label   LabelCmd         `cmd:"" help:"Print the shorthand label for a hand"`
	TUI     TUICmd           `cmd:"" name:"tui" default:"1" help:"Interactive advice as you type"`
	Serve   ServeCmd         `cmd:"" help:"Serve advice over a websocket"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("flopguide"),
		kong.Description("Flop texture advice for Texas Hold'em starting hands"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
