package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// log: tail the delivery audit log.
func logCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show recent delivery attempts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			attempts, err := appCtx.Attempts.Recent(cmd.Context(), n)
			if err != nil {
				return err
			}
			if len(attempts) == 0 {
				fmt.Println("no delivery attempts recorded")
				return nil
			}
			for _, a := range attempts {
				fmt.Printf("%s\t%s\t%s\t%s\tstatus=%d calls=%d\n",
					a.At.Format("2006-01-02 15:04:05"), a.UserID, a.Message.Title, a.Outcome, a.HTTPStatus, a.Calls)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", 20, "number of records to show")
	return cmd
}
