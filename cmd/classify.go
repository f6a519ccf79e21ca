package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/itemizer/internal/ingest"
	"github.com/abhisek/itemizer/internal/ui/theme"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [file|-]",
	Short: "Classify content and show its extracted structure",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		isHTML, _ := cmd.Flags().GetBool("html")

		content, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		out, err := newService(nil).Process(cmd.Context(), ingest.Request{Content: content, HTML: isHTML})
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if asJSON {
			b, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal result: %w", err)
			}
			fmt.Fprintln(w, string(b))
			return nil
		}
		fmt.Fprintln(w, theme.RenderResult(out.Classification, out.Extracted))
		return nil
	},
}

func init() {
	classifyCmd.Flags().Bool("json", false, "Print the classification and extracted content as JSON")
	classifyCmd.Flags().Bool("html", false, "Treat the input as HTML")
}
