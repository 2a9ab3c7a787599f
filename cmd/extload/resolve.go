package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/extload/extload/pkg/extension"
	"github.com/extload/extload/pkg/style"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <kind> [directive]",
	Short: "Resolve the effective extension list for a kind",
	Long: `Resolve merges the configured default extension list for <kind> with a
directive string. The directive is taken from the argument when given,
otherwise from the configuration file.

Directive syntax: comma-separated names, "default" marks where the
default list is spliced in, "-name" removes a name, "-default" removes
all defaults.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		kind := args[0]
		ext := cfg.Extensions[kind]
		directive := ext.Directive
		if len(args) > 1 {
			directive = args[1]
		}

		// The CLI has no registered factories, so every configured
		// default is taken as existing.
		names := extension.Merge(ext.Defaults, directive, nil)

		fmt.Println(style.TitleStyle.Render(fmt.Sprintf("Active %s extensions", kind)))
		if len(names) == 0 {
			fmt.Println(style.MutedStyle.Render("  (none)"))
			return nil
		}
		for _, name := range names {
			fmt.Println(style.ListItemStyle.Render(style.NameStyle.Render(name)))
		}
		return nil
	},
}
