package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/itemizer/internal/ingest"
	"github.com/abhisek/itemizer/internal/ui/theme"
)

type batchLine struct {
	File    string          `json:"file"`
	Outcome *ingest.Outcome `json:"outcome,omitempty"`
	Error   string          `json:"error,omitempty"`
}

var batchCmd = &cobra.Command{
	Use:   "batch <file>...",
	Short: "Classify many files concurrently",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		isHTML, _ := cmd.Flags().GetBool("html")

		lines := make([]batchLine, len(args))
		reqs := make([]ingest.Request, 0, len(args))
		idx := make([]int, 0, len(args))
		for i, path := range args {
			lines[i].File = path
			b, err := os.ReadFile(path)
			if err != nil {
				lines[i].Error = err.Error()
				continue
			}
			reqs = append(reqs, ingest.Request{Content: string(b), HTML: isHTML})
			idx = append(idx, i)
		}

		for _, res := range newService(nil).ProcessBatch(cmd.Context(), reqs) {
			line := &lines[idx[res.Index]]
			if res.Err != nil {
				line.Error = res.Err.Error()
				continue
			}
			line.Outcome = res.Outcome
		}

		w := cmd.OutOrStdout()
		failed := 0
		for _, l := range lines {
			if l.Error != "" {
				failed++
			}
		}

		if asJSON {
			enc := json.NewEncoder(w)
			for _, l := range lines {
				if err := enc.Encode(l); err != nil {
					return fmt.Errorf("encode result: %w", err)
				}
			}
		} else {
			fmt.Fprintf(w, "%-32s  %-10s  %s\n", "File", "Confidence", "Section")
			fmt.Fprintln(w, strings.Repeat("─", 90))
			for _, l := range lines {
				name := l.File
				if len(name) > 32 {
					name = "..." + name[len(name)-29:]
				}
				if l.Error != "" {
					fmt.Fprintf(w, "%-32s  %-10s  %s\n", name, theme.Failed.Render("error"), l.Error)
					continue
				}
				r := l.Outcome.Classification
				conf := theme.ConfidenceStyle(r.Confidence).Render(fmt.Sprintf("%-10s", r.Confidence))
				fmt.Fprintf(w, "%-32s  %s  %s\n", name, conf, r.SectionPath())
			}
			fmt.Fprintf(w, "\n%d files, %d failed\n", len(lines), failed)
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d files failed", failed, len(lines))
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().Bool("json", false, "Print one JSON object per file")
	batchCmd.Flags().Bool("html", false, "Treat the inputs as HTML")
}
