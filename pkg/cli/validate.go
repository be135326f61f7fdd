package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/intakebox/intakebox/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var catalogCfg config.Catalog

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate a status catalog file",
		Flags:   catalogCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			catalog, err := catalogCfg.Configure()
			if err != nil {
				color.Red("✗ catalog validation failed")
				return goerr.Wrap(err, "catalog validation failed")
			}

			if catalogCfg.Path() == "" {
				color.Yellow("no catalog file given, showing the built-in catalog")
			}

			color.Green("✓ catalog is valid (%d statuses)", len(catalog.Statuses))
			for _, def := range catalog.Statuses {
				marker := " "
				if def.ID.Reserved() {
					marker = "*"
				}
				fmt.Printf("  %s %-40s %s\n", marker, def.ID, def.Name)
			}
			fmt.Println("  (* = reserved, not selectable as a manual status target)")
			return nil
		},
	}
}
