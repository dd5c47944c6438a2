package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/shibukawa/tablediff"
)

// ValidateCmd represents the validate command
type ValidateCmd struct {
	Files []string `arg:"" help:"Metadata files to validate (JSON or YAML)" type:"path"`
}

// Run executes the validate command
func (v *ValidateCmd) Run(ctx *Context) error {
	var failed int

	for _, file := range v.Files {
		table, err := tablediff.LoadTableMetadata(file)
		if err != nil {
			failed++

			if !ctx.Quiet {
				color.Red("%s: %v", file, err)
			}

			continue
		}

		if !ctx.Quiet {
			keys := strings.Join(table.KeyColumns(), ", ")
			if keys == "" {
				keys = "(none)"
			}

			fmt.Printf("%s: table %s, %d columns, key: %s\n", file, table.QualifiedName(), len(table.Columns), keys)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d metadata files failed validation", failed, len(v.Files))
	}

	if !ctx.Quiet {
		color.Green("Validation completed successfully")
	}

	return nil
}
