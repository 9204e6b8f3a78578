package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"pushkit/internal/domain"
)

// unsubscribe <endpoint>: drop the subscription holding an endpoint.
func unsubscribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unsubscribe <endpoint>",
		Short: "Remove the subscription for an endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Registry.Invalidate(cmd.Context(), domain.Endpoint(args[0])); err != nil {
				return err
			}
			fmt.Println("unsubscribed")
			return nil
		},
	}
}
