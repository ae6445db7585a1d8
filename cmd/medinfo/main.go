// Command medinfo is a terminal front end for the medinfo API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
)

var (
	apiURL  string
	timeout time.Duration
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "medinfo",
	Short: "Search medicines, compare generics and find Kendras",
	Long: `medinfo talks to the medinfo API.

Sign in once with "medinfo login" (or "medinfo register"); the username is
remembered in the session file until "medinfo logout".`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "API base URL (default: MEDINFO_API_URL or http://127.0.0.1:8000)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(genericCmd)
	rootCmd.AddCommand(savedCmd)
	rootCmd.AddCommand(essentialsCmd)
	rootCmd.AddCommand(kendraCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(pricesCmd)
	rootCmd.AddCommand(reportCmd)

	blogCmd.AddCommand(blogListCmd)
	blogCmd.AddCommand(blogPostCmd)
	rootCmd.AddCommand(blogCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
