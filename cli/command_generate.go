package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/shibukawa/tablediff"
	"github.com/shibukawa/tablediff/compare"
)

// Error definitions
var (
	ErrInvalidDialect = errors.New("invalid dialect")
)

// GenerateCmd represents the generate command
type GenerateCmd struct {
	SourceMetadata string `arg:"" help:"Path to source table metadata file (JSON or YAML)" type:"path"`
	TargetMetadata string `arg:"" help:"Path to target table metadata file (JSON or YAML)" type:"path"`
	NoIntersection bool   `help:"Use all source columns (target may have fewer; not recommended for comparison)"`
	NoOrderBy      bool   `help:"Omit ORDER BY on key columns"`
	Dialect        string `help:"SQL dialect for identifiers (ansi|sqlserver|mssql|mysql, default from config)"`
	Quoted         bool   `help:"Use quoted identifiers (ANSI double-quote style)"`
	OutputFile     string `short:"o" name:"output" help:"Write SQL to file (defaults to stdout)" type:"path"`
}

// Run executes the generate command
func (g *GenerateCmd) Run(ctx *Context) error {
	config, err := LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	opts, err := g.resolveOptions(config)
	if err != nil {
		return err
	}

	source, err := tablediff.LoadTableMetadata(g.SourceMetadata)
	if err != nil {
		return err
	}

	target, err := tablediff.LoadTableMetadata(g.TargetMetadata)
	if err != nil {
		return err
	}

	if ctx.Verbose {
		color.Blue("Comparing %s against %s (dialect: %s)", source.QualifiedName(), target.QualifiedName(), opts.Dialect)
	}

	sourceSQL, targetSQL, err := compare.GenerateComparisonSelects(source, target, opts)
	if err != nil {
		return err
	}

	out := fmt.Sprintf("-- Source table: %s\n%s\n\n-- Target table: %s\n%s\n",
		source.QualifiedName(), sourceSQL, target.QualifiedName(), targetSQL)

	if g.OutputFile != "" {
		if err := os.WriteFile(g.OutputFile, []byte(out), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}

		if !ctx.Quiet {
			fmt.Fprintf(os.Stderr, "Wrote comparison SQL to %s\n", g.OutputFile)
		}

		return nil
	}

	fmt.Println(out)

	return nil
}

// resolveOptions merges CLI flags over config defaults. Flags only force
// values in one direction: --no-* flags disable, --quoted enables.
func (g *GenerateCmd) resolveOptions(config *tablediff.Config) (compare.Options, error) {
	dialect := g.Dialect
	if dialect == "" {
		dialect = config.Dialect
	}

	if !tablediff.IsPublicDialect(tablediff.Dialect(dialect)) {
		return compare.Options{}, fmt.Errorf("%w: '%s': must be one of ansi, sqlserver, mssql, mysql", ErrInvalidDialect, dialect)
	}

	opts := compare.Options{
		UseIntersection:   config.Generation.UseIntersection() && !g.NoIntersection,
		OrderByKeys:       config.Generation.UseOrderBy() && !g.NoOrderBy,
		Dialect:           tablediff.Dialect(dialect),
		QuotedIdentifiers: config.Quoted || g.Quoted,
	}

	return opts, nil
}
