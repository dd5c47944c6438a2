package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/shibukawa/tablediff/cli"
)

// CLI represents the command-line interface
var CLI struct {
	Config   string          `help:"Configuration file path" default:"tablediff.yaml"`
	Verbose  bool            `help:"Enable verbose output" short:"v"`
	Quiet    bool            `help:"Suppress output" short:"q"`
	Generate cli.GenerateCmd `cmd:"" default:"withargs" help:"Generate two SELECT statements to compare source and target tables from metadata files"`
	Validate cli.ValidateCmd `cmd:"" help:"Validate metadata files"`
	Version  VersionCmd      `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(ctx *cli.Context) error {
	fmt.Println("tablediff v0.1.0")
	return nil
}

func main() {
	ctx := kong.Parse(&CLI)

	// Create context with config path
	appCtx := &cli.Context{
		Config:  CLI.Config,
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
