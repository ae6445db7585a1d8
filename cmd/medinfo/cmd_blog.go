package main

import (
	"fmt"

	"medinfo-be/internal/panel"

	"github.com/spf13/cobra"
)

var blogCmd = &cobra.Command{
	Use:   "blog",
	Short: "Read and write blog posts",
}

var blogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List blog posts",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		feed := panel.NewBlogFeed(a.api, a.logger)
		if err := feed.List(cmd.Context()); err != nil {
			return fmt.Errorf("could not load posts: %s", feed.State().Err)
		}

		out := cmd.OutOrStdout()
		posts := feed.State().Posts
		if len(posts) == 0 {
			fmt.Fprintln(out, "No posts yet.")
			return nil
		}
		for _, p := range posts {
			fmt.Fprintf(out, "# %s\n%s\n\n", p.Title, p.Content)
		}
		return nil
	},
}

var blogPostCmd = &cobra.Command{
	Use:   "post <title> <content>",
	Short: "Publish a blog post",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		feed := panel.NewBlogFeed(a.api, a.logger)
		if err := feed.Publish(cmd.Context(), args[0], args[1]); err != nil {
			return fmt.Errorf("could not publish: %s", feed.State().Err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Published. %d posts in the feed.\n", len(feed.State().Posts))
		return nil
	},
}
