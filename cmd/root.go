// Package cmd provides the command-line interface for pagesim.
package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pagesim",
	Short: "Pagesim simulates page-replacement policies over a fixed frame table.",
	Long: `Pagesim replays a reference string of page accesses over a ` +
		`fixed-size frame table and reports, for every access, whether it hit ` +
		`and which slot was evicted, under FIFO, LRU, or OPT replacement.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. It exits through atexit so that registered flush hooks
// run.
func Execute() {
	atexit.Exit(execute())
}

func execute() int {
	// .env values serve as run-time defaults for flags such as --port
	// and --db.
	_ = godotenv.Load()

	err := rootCmd.Execute()
	if err != nil {
		return 1
	}

	return 0
}
