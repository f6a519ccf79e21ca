package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/itemizer/internal/taxonomy"
	"github.com/abhisek/itemizer/internal/ui/theme"
)

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Show the skill, category and item type hierarchy",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		tree := taxonomy.Hierarchy()
		w := cmd.OutOrStdout()

		if asJSON {
			b, err := json.MarshalIndent(map[string]any{"skills": tree}, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal taxonomy: %w", err)
			}
			fmt.Fprintln(w, string(b))
			return nil
		}

		for _, s := range tree {
			fmt.Fprintf(w, "%s %s\n", theme.Title.Render(string(s.Skill)), theme.Hint.Render("("+string(s.DefaultModule)+")"))
			for _, c := range s.Categories {
				fmt.Fprintf(w, "  %s\n", theme.Heading.Render(string(c.Category)))
				for _, t := range c.ItemTypes {
					fmt.Fprintf(w, "    %-40s %s\n", t, theme.Hint.Render(string(taxonomy.StorageCodeOf(t))))
				}
			}
			fmt.Fprintln(w)
		}
		return nil
	},
}

func init() {
	taxonomyCmd.Flags().Bool("json", false, "Print the hierarchy as JSON")
}
