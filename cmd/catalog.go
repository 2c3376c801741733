package main

import (
	"fmt"
	"logistics/internal/catalog"

	"github.com/spf13/cobra"
)

func catalogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Lists the known cargo and transport kinds",
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := catalog.Default()
			w := cmd.OutOrStdout()

			_, _ = fmt.Fprintln(w, "Cargo kinds:")
			for _, kind := range reg.CargoKinds() {
				p, err := reg.CargoProfile(kind)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(w, "  %-12s %-18s %8.2f kg/unit %8.2f $/kg\n", kind, p.Name, p.MassPerUnit, p.CostPerKg)
			}

			_, _ = fmt.Fprintln(w, "Transport kinds:")
			for _, kind := range reg.TransportKinds() {
				t, err := reg.ResolveTransport(kind)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(w, "  %-12s %-6s %8.2f $/km %6.0f km/h\n", kind, t.Category, t.CostPerKm, t.SpeedKmH)
			}

			return nil
		},
	}
}
