package cmd

import (
	"fmt"

	"github.com/USA-RedDragon/greatcircle/internal/config"
	"github.com/spf13/cobra"
)

func NewCommand(version, commit string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "greatcircle",
		Short:   "Great-circle distances and midpoints on a spherical Earth",
		Version: fmt.Sprintf("%s - %s", version, commit),
		Annotations: map[string]string{
			"version": version,
			"commit":  commit,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.RegisterFlags(cmd)
	cmd.AddCommand(newDistanceCommand(), newMidpointCommand())
	return cmd
}
