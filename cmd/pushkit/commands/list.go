package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"pushkit/internal/domain"
)

// list <user>: show a user's registered subscriptions.
func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <user>",
		Short: "List a user's push subscriptions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subs, err := appCtx.Registry.ListFor(cmd.Context(), domain.UserID(args[0]))
			if err != nil {
				return err
			}
			if len(subs) == 0 {
				fmt.Println("no subscriptions")
				return nil
			}
			for _, s := range subs {
				fmt.Printf("%s\t%s\n", s.CreatedAt.Format("2006-01-02 15:04"), s.Endpoint)
			}
			return nil
		},
	}
}
