package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	glossaryCategory string
	dryRun           bool
)

func init() {
	glossaryCmd.Flags().StringVar(&glossaryCategory, "category", "", "Only list entries of this category (buff, debuff, item)")
	refreshCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Log live notifications instead of posting them")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(gameStateCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(glossaryCmd)
	rootCmd.AddCommand(coverCmd)
	rootCmd.AddCommand(countersCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/health", nil)
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the merged players",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/players", nil)
	},
}

var playerCmd = &cobra.Command{
	Use:   "player [id]",
	Short: "Show a single merged player",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/players/"+url.PathEscape(args[0]), nil)
	},
}

var gameStateCmd = &cobra.Command{
	Use:   "gamestate",
	Short: "Show the global game state and the recent event log",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/gamestate", nil)
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Poll every source once and report the outcome",
	RunE: func(cmd *cobra.Command, args []string) error {
		q := url.Values{}
		if dryRun {
			q.Set("dry_run", "true")
		}
		return performRequest(http.MethodPost, "/refresh", q)
	},
}

var glossaryCmd = &cobra.Command{
	Use:   "glossary [name]",
	Short: "List glossary entries or look up a single one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q := url.Values{}
		if len(args) == 1 {
			q.Set("q", args[0])
		}
		if glossaryCategory != "" {
			q.Set("category", glossaryCategory)
		}
		return performRequest(http.MethodGet, "/glossary", q)
	},
}

var coverCmd = &cobra.Command{
	Use:   "cover [game]",
	Short: "Look up the cover image of a game",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/covers", url.Values{"game": {args[0]}})
	},
}

var countersCmd = &cobra.Command{
	Use:   "counters",
	Short: "Show the persisted poll counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/counters", nil)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/metrics", nil)
	},
}

func performRequest(method, endpoint string, query url.Values) error {
	if query == nil {
		query = url.Values{}
	}
	if verbose {
		query.Set("verbose", "true")
	}
	target := host + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	fmt.Printf("Making %s request to %s\n", method, target)

	req, err := http.NewRequest(method, target, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
