package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"pushkit/internal/domain"
)

// send <user> <title> <body>: deliver a notification to all of a user's devices.
func sendCmd() *cobra.Command {
	var (
		urgency string
		ttl     int
		tag     string
		url     string
	)
	cmd := &cobra.Command{
		Use:   "send <user> <title> <body>",
		Short: "Send a notification to every device of a user",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := appCtx.Keys.LoadOrCreate(cmd.Context()); err != nil {
				return err
			}

			msg := domain.NotificationMessage{
				Title:      args[1],
				Body:       args[2],
				Urgency:    domain.Urgency(urgency),
				TTLSeconds: ttl,
			}
			if tag != "" || url != "" {
				msg.Data = map[string]any{}
				if tag != "" {
					msg.Data["tag"] = tag
				}
				if url != "" {
					msg.Data["url"] = url
				}
			}

			attempts, err := appCtx.Dispatcher.SendToAll(cmd.Context(), domain.UserID(args[0]), msg)
			if err != nil {
				return err
			}
			if len(attempts) == 0 {
				fmt.Println("no subscriptions for user")
				return nil
			}
			for _, a := range attempts {
				fmt.Printf("%s\t%s\tstatus=%d calls=%d\n", a.Endpoint, a.Outcome, a.HTTPStatus, a.Calls)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&urgency, "urgency", "normal", "very-low|low|normal|high")
	cmd.Flags().IntVar(&ttl, "ttl", 0, "seconds the push service should hold the message")
	cmd.Flags().StringVar(&tag, "tag", "", "client-side notification tag")
	cmd.Flags().StringVar(&url, "url", "", "URL the client opens on tap")
	return cmd
}
