package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"pushkit/internal/crypto"
)

// vapid: load (or create on first run) the server pair and print the public
// key clients pass as applicationServerKey when subscribing.
func vapidCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vapid",
		Short: "Print the VAPID public key for client subscriptions",
		RunE: func(cmd *cobra.Command, args []string) error {
			pair, err := appCtx.Keys.LoadOrCreate(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(crypto.B64(pair.Pub.Slice()))
			return nil
		},
	}
}
