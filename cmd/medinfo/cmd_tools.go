package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"medinfo-be/internal/panel"
	"medinfo-be/pkg/client"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search medicines by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withWorkspace(cmd, "", "", func(ctx context.Context, w *panel.Workspace) error {
			if err := w.Search.Search(ctx, strings.Join(args, " ")); err != nil {
				return fmt.Errorf("search failed: %s", w.Search.State().Err)
			}
			state := w.Search.State()
			if len(state.Results) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No medicines found.")
				return nil
			}
			printMedicines(cmd.OutOrStdout(), state.Results)
			return nil
		})
	},
}

var saveCmd = &cobra.Command{
	Use:   "save <medicine-id>",
	Short: "Save a medicine for a future purchase",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, strconv.IntSize)
		if err != nil {
			return fmt.Errorf("invalid medicine id %q", args[0])
		}
		return withWorkspace(cmd, "", "", func(ctx context.Context, w *panel.Workspace) error {
			if err := w.Search.Save(ctx, uint(id)); err != nil {
				return fmt.Errorf("save failed: %s", w.Search.State().SaveErr)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Saved. Your list:")
			printSaved(cmd.OutOrStdout(), w.Saved.State())
			return nil
		})
	},
}

var genericCmd = &cobra.Command{
	Use:   "generic <brand>",
	Short: "Find the generic name of a medicine and compare brand prices",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withWorkspace(cmd, "", "", func(ctx context.Context, w *panel.Workspace) error {
			if err := w.Generic.Lookup(ctx, strings.Join(args, " ")); err != nil {
				return fmt.Errorf("lookup failed: %s", w.Generic.State().Err)
			}

			out := cmd.OutOrStdout()
			res := w.Generic.State().Result
			switch {
			case res.Failed():
				fmt.Fprintln(out, res.Error)
				if res.Suggestion != "" {
					fmt.Fprintf(out, "Did you mean %s?\n", res.Suggestion)
				}
			case res.Found():
				fmt.Fprintf(out, "Generic Name: %s\nBrands & Prices:\n", res.Generic)
				for _, b := range res.Brands {
					fmt.Fprintf(out, "  %s  %s  ₹%s\n", b.Name, b.Company, formatPrice(b.Price))
				}
			}
			return nil
		})
	},
}

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "List saved medicines",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withWorkspace(cmd, "", "", func(ctx context.Context, w *panel.Workspace) error {
			state := w.Saved.State()
			if state.Err != "" {
				return fmt.Errorf("could not load saved medicines: %s", state.Err)
			}
			printSaved(cmd.OutOrStdout(), state)
			return nil
		})
	},
}

var essentialsCmd = &cobra.Command{
	Use:   "essentials [category]",
	Short: "Browse daily essentials by category",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withWorkspace(cmd, "", "", func(ctx context.Context, w *panel.Workspace) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				state := w.Essentials.State()
				if state.Err != "" {
					return fmt.Errorf("could not load categories: %s", state.Err)
				}
				for _, c := range state.Categories {
					fmt.Fprintln(out, c)
				}
				return nil
			}

			if err := w.Essentials.Select(ctx, args[0]); err != nil {
				return fmt.Errorf("could not load %s: %s", args[0], w.Essentials.State().Err)
			}
			state := w.Essentials.State()
			fmt.Fprintf(out, "%s Medicines:\n", capitalize(state.Selected))
			if len(state.Items) == 0 {
				fmt.Fprintln(out, "No medicines found.")
				return nil
			}
			printMedicines(out, state.Items)
			return nil
		})
	},
}

var kendraLat, kendraLng string

var kendraCmd = &cobra.Command{
	Use:   "kendra",
	Short: "Find Jan Aushadhi Kendras near you",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withWorkspace(cmd, kendraLat, kendraLng, func(ctx context.Context, w *panel.Workspace) error {
			// The first call resolves the location, the second fetches
			_ = w.Locator.FindNearMe(ctx)
			_ = w.Locator.FindNearMe(ctx)

			out := cmd.OutOrStdout()
			state := w.Locator.State()
			where := "your location"
			if state.UsedFallback {
				where = "New Delhi (location unavailable)"
			}
			fmt.Fprintf(out, "Near %s (%.4f, %.4f):\n", where, state.Location.Lat, state.Location.Lng)
			if len(state.Kendras) == 0 {
				fmt.Fprintln(out, "No Kendras found.")
				return nil
			}
			for _, k := range state.Kendras {
				fmt.Fprintf(out, "  %s  (%.4f, %.4f)  %.2f km\n", k.Name, k.Lat, k.Lng, k.DistanceKm)
			}
			return nil
		})
	},
}

var chatCmd = &cobra.Command{
	Use:   "chat <message>",
	Short: "Ask the medicine assistant",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withWorkspace(cmd, "", "", func(ctx context.Context, w *panel.Workspace) error {
			if err := w.Chat.Send(ctx, strings.Join(args, " ")); err != nil {
				return fmt.Errorf("assistant failed: %s", w.Chat.State().Err)
			}
			for _, m := range w.Chat.State().Messages {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", m.Role, m.Content)
			}
			return nil
		})
	},
}

func init() {
	kendraCmd.Flags().StringVar(&kendraLat, "lat", "", "Latitude (default: MEDINFO_LAT)")
	kendraCmd.Flags().StringVar(&kendraLng, "lng", "", "Longitude (default: MEDINFO_LNG)")
}

func printMedicines(out io.Writer, medicines []client.Medicine) {
	for _, m := range medicines {
		fmt.Fprintf(out, "  [%d] %s (%s)  %s  ₹%s\n", m.ID, m.Name, m.Generic, m.Company, formatPrice(m.Price))
	}
}

func printSaved(out io.Writer, state panel.SavedState) {
	if len(state.Items) == 0 {
		fmt.Fprintln(out, "No medicines saved yet.")
		return
	}
	printMedicines(out, state.Items)
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
