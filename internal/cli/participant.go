package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newParticipantCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "participant",
		Short: "Participant management commands",
	}

	cmd.AddCommand(newParticipantListCmd())
	cmd.AddCommand(newParticipantRegisterCmd())

	return cmd
}

func newParticipantListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active participants",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Participant

			if err := client.Get("/participants", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newParticipantRegisterCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a participant",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"name": name}

			if err := client.Post("/participants", req, nil); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(fmt.Sprintf("registered %q", name))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
