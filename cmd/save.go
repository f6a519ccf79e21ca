package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/itemizer/internal/ingest"
	"github.com/abhisek/itemizer/internal/ui/theme"
)

var saveCmd = &cobra.Command{
	Use:   "save [file|-]",
	Short: "Classify content and store it for review",
	Long: "Classify content and store it. Items are saved as pending review unless " +
		"--approve is given; low-confidence items are never approved without it.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		approve, _ := cmd.Flags().GetBool("approve")
		isHTML, _ := cmd.Flags().GetBool("html")

		content, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		item, out, err := newService(s.ItemRepo()).Save(cmd.Context(), ingest.Request{Content: content, HTML: isHTML}, approve)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintln(w, theme.RenderResult(out.Classification, out.Extracted))
		fmt.Fprintf(w, "\nSaved %s (%s)\n", item.ID, theme.StatusStyle(item.Status).Render(string(item.Status)))
		return nil
	},
}

func init() {
	saveCmd.Flags().Bool("approve", false, "Store the item as approved, even when confidence is low")
	saveCmd.Flags().Bool("html", false, "Treat the input as HTML")
}
