package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "batepapo",
		Short: "CLI client for the batepapo chat API",
		Long: `batepapo is a CLI client for the chat JSON API.

It covers every API operation: registering a participant, listing
participants and messages, posting, editing and deleting messages, and
sending presence heartbeats. The acting participant is set with --user and
sent as the caller-asserted identity header.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			client = NewClient(cfg.ServerURL, cfg.User)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: BATEPAPO_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.User, "user", "u", cfg.User, "Acting participant name (env: BATEPAPO_USER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	rootCmd.AddCommand(newParticipantCmd())
	rootCmd.AddCommand(newMessageCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
