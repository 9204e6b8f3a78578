package commands

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"pushkit/internal/app"
)

var (
	home     string
	redisURL string
	subject  string
	debug    bool

	appCtx *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "pushkit",
		Short: "Web Push delivery core: VAPID keys, subscriptions, dispatch",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".pushkit")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			var err error
			appCtx, err = app.NewWire(app.Config{
				Home:        home,
				RedisURL:    redisURL,
				Subject:     subject,
				SendTimeout: 2 * time.Minute,
				Debug:       debug,
			})
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.pushkit)")
	root.PersistentFlags().StringVar(&redisURL, "redis", "", "redis URL; store records in Redis instead of files")
	root.PersistentFlags().StringVar(&subject, "subject", "mailto:admin@localhost", "contact URI claimed in VAPID tokens")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "verbose logging")

	root.AddCommand(vapidCmd(), subscribeCmd(), unsubscribeCmd(), listCmd(), sendCmd(), logCmd())
	return root.Execute()
}
