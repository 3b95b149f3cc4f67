package cmd

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sarchlab/pagesim/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve simulations over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetInt("port")
		if !cmd.Flags().Changed("port") {
			port = portFromEnv()
		}

		return web.NewServer().
			WithPortNumber(port).
			Run()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Int("port", 0,
		"port to listen on, defaults to PAGESIM_PORT or a random port")
}

// portFromEnv is evaluated at run time, after the .env file has been
// loaded, so that PAGESIM_PORT from .env applies.
func portFromEnv() int {
	port, err := strconv.Atoi(os.Getenv("PAGESIM_PORT"))
	if err != nil {
		return 0
	}

	return port
}
