package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "petcommunity",
	Short: "Pet Community web frontend",
	Long: `Pet Community serves the login, registration and dashboard pages of the
Pet Community and talks to the Pet API on behalf of the browser.

Configuration is read from the environment and an optional .env file:
  APP_ADDR         listen address (default :8080)
  API_BASE_URL     Pet API root (default http://127.0.0.1:5000)
  SESSION_SECRET   cookie signing key (required)
  API_TIMEOUT      per-call timeout, e.g. 5s (default none)
  STATIC_DIR       serve assets from disk instead of the binary
  LOG_FORMAT       text or json
  LOG_LEVEL        debug, info, warn or error`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
