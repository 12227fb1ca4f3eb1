package main

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	papiext "github.com/contriboss/papi-extension-go"
)

func newStrategiesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List discovery strategies in priority order and whether they can run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			locator, err := a.newLocator()
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"#", "Strategy", "Source", "Status"})
			table.SetAutoWrapText(false)
			for i, s := range locator.ListStrategies() {
				source, status := describeStrategy(a.env, s)
				table.Append([]string{strconv.Itoa(i + 1), s.Name(), source, status})
			}
			table.Render()
			return nil
		},
	}
}

// describeStrategy reports where a strategy reads from and whether that
// source is currently available.
func describeStrategy(env papiext.Environment, s papiext.Strategy) (source, status string) {
	switch st := s.(type) {
	case *papiext.EnvPathStrategy:
		return "$" + st.Variable, envStatus(env, st.Variable)
	case *papiext.SearchPathStrategy:
		return "$" + st.Variable, envStatus(env, st.Variable)
	case *papiext.PkgConfigStrategy:
		checker, ok := st.Registry.(papiext.ToolChecker)
		if !ok {
			return "registry", "available"
		}
		source = "registry"
		if tools := checker.RequiredTools(); len(tools) > 0 {
			source = tools[0].Name
		}
		if err := checker.CheckTools(); err != nil {
			return source, fmt.Sprintf("unavailable: %v", err)
		}
		return source, "available"
	default:
		return "-", "-"
	}
}

func envStatus(env papiext.Environment, name string) string {
	if v, ok := env.LookupEnv(name); ok && v != "" {
		return "set: " + v
	}
	return "unset"
}
