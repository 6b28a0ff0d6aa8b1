package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newMessageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "message",
		Short: "Message commands",
	}

	cmd.AddCommand(newMessageListCmd())
	cmd.AddCommand(newMessagePostCmd())
	cmd.AddCommand(newMessageEditCmd())
	cmd.AddCommand(newMessageDeleteCmd())

	return cmd
}

func newMessageListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List messages visible to the acting participant",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/messages"
			if limit > 0 {
				path += "?limit=" + strconv.Itoa(limit)
			}

			var result []Message
			if err := client.Get(path, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Only the last N visible messages")

	return cmd
}

func messageBody(to, text, kind string) map[string]string {
	return map[string]string{"to": to, "text": text, "type": kind}
}

func newMessagePostCmd() *cobra.Command {
	var to, text, kind string

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Post a message as the acting participant",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.User == "" {
				return fmt.Errorf("--user is required to post")
			}

			if err := client.Post("/messages", messageBody(to, text, kind), nil); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print("sent")
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "Todos", "Recipient name, or Todos to broadcast")
	cmd.Flags().StringVar(&text, "text", "", "Message text (required)")
	cmd.Flags().StringVar(&kind, "type", "message", "Message type: message or private_message")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func newMessageEditCmd() *cobra.Command {
	var to, text, kind string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a message you sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.User == "" {
				return fmt.Errorf("--user is required to edit")
			}

			if err := client.Put("/messages/"+args[0], messageBody(to, text, kind), nil); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print("edited")
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "Todos", "Recipient name, or Todos to broadcast")
	cmd.Flags().StringVar(&text, "text", "", "New message text (required)")
	cmd.Flags().StringVar(&kind, "type", "message", "Message type: message or private_message")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func newMessageDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a message you sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.User == "" {
				return fmt.Errorf("--user is required to delete")
			}

			if err := client.Delete("/messages/" + args[0]); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print("deleted")
			return nil
		},
	}
}
