package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"legal-office-management/internal/cli"
)

var CLI struct {
	Version kong.VersionFlag
	TZ      string `name:"tz" help:"IANA timezone used to decide what \"today\" is." default:"America/Sao_Paulo"`

	Parse cli.ParseCmd `cmd:"" help:"Parse an intimação text and print its deadline classification."`
	Count cli.CountCmd `cmd:"" help:"Count unread urgent intimações in an exported andamento list."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("intimacao"),
		kong.Description("Intimação parser and deadline classifier"),
		kong.UsageOnError(),
		kong.Vars{"version": "v1.0.0"},
	)

	appCtx, err := cli.NewContext(CLI.TZ)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
