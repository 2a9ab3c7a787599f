package main

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/extload/extload/pkg/errors"
)

var configFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Config prints the merged configuration after all layers applied:
built-in defaults, the config file, and EXTLOAD_-prefixed environment
variables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		var out []byte
		switch configFormat {
		case "toml":
			out, err = toml.Marshal(cfg)
		case "yaml":
			out, err = yaml.Marshal(cfg)
		default:
			return errors.Newf(errors.ErrInvalidInput, "unknown format %q (want toml or yaml)", configFormat)
		}
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to marshal configuration")
		}

		fmt.Print(string(out))
		return nil
	},
}

func init() {
	configCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format (toml or yaml)")
}
