package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/extload/extload/pkg/props"
	"github.com/extload/extload/pkg/style"
)

var (
	propsMulti    bool
	propsOptional bool
)

var propsCmd = &cobra.Command{
	Use:   "props <name>",
	Short: "Load and print merged properties for a resource name",
	Long: `Props resolves <name> as a literal file path first, then against the
configured search path, and prints the merged key/value result. With
--multi all matches are merged last-write-wins; without it more than one
match falls back to the first resolution.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		name := args[0]
		if !propsMulti {
			// A literal disk path short-circuits discovery, so only
			// warn about ambiguity when the search path decides.
			if info, err := os.Stat(name); err != nil || !info.Mode().IsRegular() {
				if matches := props.SearchPath(cfg.SearchPath).FindAll(name); len(matches) > 1 {
					fmt.Println(style.WarningStyle.Render(
						fmt.Sprintf("%d resources match %q, using the first resolution", len(matches), name)))
				}
			}
		}

		set := cfg.NewPropsLoader().Load(name, propsMulti, propsOptional)
		for _, key := range set.Keys() {
			fmt.Printf("%s=%s\n", style.KeyStyle.Render(key), set[key])
		}
		return nil
	},
}

var ruleCmd = &cobra.Command{
	Use:   "rule <name>",
	Short: "Print the raw content of a migration rule resource",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		fmt.Print(cfg.NewPropsLoader().LoadMigrationRule(args[0]))
		return nil
	},
}

func init() {
	propsCmd.Flags().BoolVar(&propsMulti, "multi", false, "Merge all matching resources (last write wins)")
	propsCmd.Flags().BoolVar(&propsOptional, "optional", false, "Suppress the warning when nothing is found")
}
