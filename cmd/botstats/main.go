package main

import (
	"fmt"
	"os"

	"github.com/Egor213/BotStats/internal/app"
	"github.com/spf13/cobra"
)

var flags app.Flags

var rootCmd = &cobra.Command{
	Use:   "botstats",
	Short: "BotStats - statistics collector for bot accounts",
	Long: `BotStats collects run status, counters and log lines reported by bot
accounts and their keywords, keeps them in memory and serves them over HTTP.

Configuration is read from infra/config.yaml (or APP_CONFIG_PATH) and
environment variables. Flags override both.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cmd.Flags().Changed("retention-threshold") {
			n, err := cmd.Flags().GetInt("retention-threshold")
			if err != nil {
				return err
			}
			flags.RetentionThreshold = &n
		}
		app.Run(flags)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&flags.ConfigPath, "config", "", "config file (default: infra/config.yaml)")
	rootCmd.Flags().StringVarP(&flags.Port, "port", "p", "", "HTTP port of the API server")
	rootCmd.Flags().StringVar(&flags.HTMLPath, "html-path", "", "directory served as a static site at /")
	rootCmd.Flags().Int("retention-threshold", 0, "log entries kept per sequence by the sweeper; 0 drops all logs and resets counters")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
