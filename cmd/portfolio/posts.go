package main

import (
	"encoding/json"
	"fmt"

	"github.com/rohitlokhande/portfolio/internal/content"
	"github.com/rohitlokhande/portfolio/internal/observability"
	"github.com/spf13/cobra"
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Print the blog posts a build would use",
	Long:  "Fetches the latest Hashnode posts exactly as a build would, falling back to the built-in list on any failure, and prints them as JSON.",
	RunE:  runPosts,
}

var (
	postsFlags  siteFlags
	postsTable bool
)

func init() {
	postsFlags.register(postsCmd)
	postsCmd.Flags().BoolVar(&postsTable, "table", false, "Print a readable summary instead of JSON")
	rootCmd.AddCommand(postsCmd)
}

// postsOutput is the JSON printed by the posts command.
type postsOutput struct {
	Source string `json:"source"`
	Error  string `json:"error,omitempty"`
	Posts  any    `json:"posts"`
}

func runPosts(cmd *cobra.Command, _ []string) error {
	cfg, err := postsFlags.resolve(cmd)
	if err != nil {
		return err
	}

	provider := content.NewProvider(newBlogSource(cfg))
	feed := provider.LoadBlogPosts(cmd.Context())

	out := cmd.OutOrStdout()
	if postsTable {
		printer := observability.NewPrinter(out)
		printer.PrintBlogPosts(feed.Posts)
		_, _ = fmt.Fprintf(out, "Source: %s\n", feed.Origin)
		return nil
	}

	result := postsOutput{Source: string(feed.Origin), Posts: feed.Posts}
	if feed.Err != nil {
		result.Error = feed.Err.Error()
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal posts: %w", err)
	}
	_, _ = fmt.Fprintln(out, string(data))
	return nil
}
