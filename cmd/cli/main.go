package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	host    string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "boardwatch-cli",
	Short: "A CLI to interact with the boardwatch server",
	Long: `boardwatch-cli talks to a running boardwatch daemon over HTTP.

It lists the merged players and the game state, looks up glossary entries
and game covers, shows poll counters and Prometheus metrics, and can force
an immediate refresh of every source.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:8080", "The host address of the server")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Ask the server for verbose logging of the request")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
