package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"pushkit/internal/domain"
)

// browserSubscription matches the JSON a browser's pushManager.subscribe()
// call produces, which is what the web layer forwards here.
type browserSubscription struct {
	Endpoint string `json:"endpoint"`
	Keys     struct {
		P256dh string `json:"p256dh"`
		Auth   string `json:"auth"`
	} `json:"keys"`
}

// subscribe <user> [file]: register a subscription from a JSON file or stdin.
func subscribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subscribe <user> [subscription.json]",
		Short: "Register a browser push subscription for a user",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(args)
			if err != nil {
				return err
			}
			var bs browserSubscription
			if err := json.Unmarshal(raw, &bs); err != nil {
				return fmt.Errorf("parse subscription JSON: %w", err)
			}

			user := domain.UserID(args[0])
			sub := domain.PushSubscription{
				Endpoint: domain.Endpoint(bs.Endpoint),
				P256dh:   bs.Keys.P256dh,
				Auth:     bs.Keys.Auth,
			}
			if err := appCtx.Registry.Register(cmd.Context(), user, sub); err != nil {
				return err
			}
			fmt.Println("subscribed")
			return nil
		},
	}
}

func readInput(args []string) ([]byte, error) {
	if len(args) > 1 {
		return os.ReadFile(args[1])
	}
	return io.ReadAll(os.Stdin)
}
