package cmd

import (
	"github.com/nfrund/petcommunity/internal/config"
	"github.com/nfrund/petcommunity/internal/logging"
	"github.com/nfrund/petcommunity/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		logging.New()
		cfg := config.New()
		applyFlags(cmd, cfg)

		s, err := server.New(cfg)
		if err != nil {
			return err
		}
		s.RegisterRoutes()

		ctx, stop := server.SignalContext(cmd.Context())
		defer stop()
		return s.Start(ctx, cfg.GetAddr())
	},
}

// applyFlags lets explicitly set flags win over the environment.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("addr") {
		cfg.Addr, _ = cmd.Flags().GetString("addr")
	}
	if cmd.Flags().Changed("api-url") {
		cfg.APIBaseURL, _ = cmd.Flags().GetString("api-url")
	}
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address, overrides APP_ADDR")
	serveCmd.Flags().String("api-url", "", "Pet API base URL, overrides API_BASE_URL")
	rootCmd.AddCommand(serveCmd)
}
