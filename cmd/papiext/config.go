package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

func newConfigCommand(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect papiext configuration",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if a.cfgUsed != "" {
				fmt.Fprintf(out, "# config file: %s\n", a.cfgUsed)
			} else {
				fmt.Fprintln(out, "# config file: none (defaults and PAPIEXT_* environment)")
			}

			b, err := yaml.Marshal(a.cfg)
			if err != nil {
				return err
			}
			_, err = out.Write(b)
			return err
		},
	})

	return configCmd
}
