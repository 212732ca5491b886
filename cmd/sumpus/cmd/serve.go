package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sumpus.exe.dev/srv"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web checker",
	Long: `Run the HTTP and WebSocket server.

Example:
  sumpus serve --addr :8000
  SUMPUS_DSN=postgres://user@localhost/sumpus sumpus serve`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "listen address (default :8000)")
	viper.BindPFlag("addr", serveCmd.Flags().Lookup("addr"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := getConfig()
	server, err := srv.New(cfg)
	if err != nil {
		return fmt.Errorf("starting server: %w", err)
	}
	defer server.Close()
	return server.Serve(cfg.Addr)
}
