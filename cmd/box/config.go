package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/ShayCichocki/boxtools/internal/cliout"
	"github.com/ShayCichocki/boxtools/internal/config"
)

func newConfigCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "config [key] [value]",
		Short: "Manage configuration",
		Long: `View or modify boxtools configuration.

Without arguments, prints the effective configuration as YAML.
With one argument (key), prints the value for that key.
With two arguments (key value), sets the value in the user config file.

Keys: box.style, box.padding, box.border_color, fraction.precision,
log.debug_file

Configuration is stored at ~/.config/boxtools/config.yaml
Project-specific overrides can be placed in .boxtools.yaml`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			switch len(args) {
			case 0:
				return displayAllConfig(stdout, cfg)
			case 1:
				value, err := config.Get(cfg, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(stdout, value)
				return nil
			default:
				return setConfigKey(stdout, cfg, args[0], args[1])
			}
		},
	}
}

// displayAllConfig prints the effective configuration as YAML.
func displayAllConfig(w io.Writer, cfg *config.Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}

// setConfigKey validates and stores a single value, then saves the
// configuration to the user config file.
func setConfigKey(w io.Writer, cfg *config.Config, key, value string) error {
	if err := config.Set(cfg, key, value); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	cliout.PrintSuccess(w, fmt.Sprintf("Set %s = %s", key, value))
	return nil
}
