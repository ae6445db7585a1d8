package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"medinfo-be/pkg/client"

	"github.com/spf13/cobra"
)

var pricesCmd = &cobra.Command{
	Use:   "prices <medicine>",
	Short: "Compare online prices for a medicine",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		res, err := a.api.PriceComparison(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("price comparison failed: %s", apiMessage(err))
		}

		out := cmd.OutOrStdout()
		if len(res.Prices) == 0 {
			fmt.Fprintf(out, "No online prices found for %s.\n", res.MedicineName)
			return nil
		}
		fmt.Fprintf(out, "Prices for %s:\n", res.MedicineName)
		for _, p := range res.Prices {
			fmt.Fprintf(out, "  %s  %s  %s\n", p.Store, p.Price, p.URL)
		}
		return nil
	},
}

var reportCmd = &cobra.Command{
	Use:   "report <medicine>",
	Short: "Build a drug report: composition, uses, side effects, warnings and alternatives",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		r, err := a.api.DrugReport(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("report failed: %s", apiMessage(err))
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\nComposition: %s\nGeneric: %s\n", r.IdentifiedMedicine, r.Composition, r.GenericName)
		if r.ImageURL != "" {
			fmt.Fprintf(out, "Image: %s\n", r.ImageURL)
		}
		if r.GenericInfoParagraph != "" {
			fmt.Fprintf(out, "\n%s\n", r.GenericInfoParagraph)
		}
		printSection(out, "Uses", r.Summary.Uses)
		printSection(out, "Side effects", r.Summary.SideEffects)
		printSection(out, "Warnings", r.Summary.Warnings)

		alternatives := make([]string, 0, len(r.Alternatives))
		for _, alt := range r.Alternatives {
			alternatives = append(alternatives, fmt.Sprintf("%s (%s)", alt.BrandName, alt.Manufacturer))
		}
		printSection(out, "Alternatives", alternatives)
		return nil
	},
}

func printSection(out io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(out, "\n%s:\n", title)
	for _, it := range items {
		fmt.Fprintf(out, "  - %s\n", it)
	}
}

// apiMessage prefers the server's own error text.
func apiMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
