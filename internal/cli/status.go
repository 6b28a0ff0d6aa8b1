package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Send a presence heartbeat for the acting participant",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.User == "" {
				return fmt.Errorf("--user is required to heartbeat")
			}

			if err := client.Post("/status", nil, nil); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print("ok")
			return nil
		},
	}
}
