package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/itemizer/internal/store"
	"github.com/abhisek/itemizer/internal/taxonomy"
	"github.com/abhisek/itemizer/internal/ui/theme"
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Browse stored items",
}

var itemsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored items, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		statusFlag, _ := cmd.Flags().GetString("status")
		skillFlag, _ := cmd.Flags().GetString("skill")
		limit, _ := cmd.Flags().GetInt("limit")

		opts := store.QueryOpts{Limit: limit}
		if statusFlag != "" {
			st, ok := store.ParseStatus(statusFlag)
			if !ok {
				return fmt.Errorf("unknown status %q (use pending_review, approved or rejected)", statusFlag)
			}
			opts.Status = st
		}
		if skillFlag != "" {
			sk, ok := taxonomy.ParseSkill(skillFlag)
			if !ok {
				return fmt.Errorf("unknown skill %q", skillFlag)
			}
			opts.Skill = sk
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		items, err := s.ItemRepo().List(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("list items: %w", err)
		}

		w := cmd.OutOrStdout()
		if len(items) == 0 {
			fmt.Fprintln(w, "No items found.")
			return nil
		}

		// Header.
		fmt.Fprintf(w, "%-36s  %-16s  %-10s  %-9s  %-14s  %s\n",
			"ID", "Created", "Skill", "Conf", "Status", "Item type")
		fmt.Fprintln(w, strings.Repeat("─", 120))

		for _, it := range items {
			status := theme.StatusStyle(it.Status).Render(fmt.Sprintf("%-14s", it.Status))
			conf := theme.ConfidenceStyle(it.Confidence).Render(fmt.Sprintf("%-9s", it.Confidence))
			fmt.Fprintf(w, "%-36s  %-16s  %-10s  %s  %s  %s\n",
				it.ID,
				it.CreatedAt.Local().Format("2006-01-02 15:04"),
				it.Skill,
				conf,
				status,
				it.ItemType,
			)
		}
		fmt.Fprintf(w, "\n%d items\n", len(items))
		return nil
	},
}

var itemsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a stored item and its review history as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		item, err := s.ItemRepo().Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		history, err := s.EventRepo().History(cmd.Context(), item.ID)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}

		b, err := json.MarshalIndent(map[string]any{"item": item, "history": history}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal item: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	},
}

var itemsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count stored items by review status",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		counts, err := s.ItemRepo().CountByStatus(cmd.Context())
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		for _, st := range []store.Status{store.StatusPendingReview, store.StatusApproved, store.StatusRejected} {
			fmt.Fprintf(w, "%s  %d\n", theme.StatusStyle(st).Render(fmt.Sprintf("%-14s", st)), counts[st])
		}
		return nil
	},
}

func reviewCmd(use, short string, status store.Status) *cobra.Command {
	c := &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			note, _ := cmd.Flags().GetString("note")

			s, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			svc := newService(s.ItemRepo())
			if status == store.StatusApproved {
				err = svc.Approve(cmd.Context(), args[0], note)
			} else {
				err = svc.Reject(cmd.Context(), args[0], note)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", args[0], theme.StatusStyle(status).Render(string(status)))
			return nil
		},
	}
	c.Flags().String("note", "", "Reviewer note recorded with the status change")
	return c
}

var (
	approveCmd = reviewCmd("approve", "Approve a stored item", store.StatusApproved)
	rejectCmd  = reviewCmd("reject", "Reject a stored item", store.StatusRejected)
)

func init() {
	itemsListCmd.Flags().String("status", "", "Filter by status (pending_review, approved, rejected)")
	itemsListCmd.Flags().String("skill", "", "Filter by skill (Reading, Listening, Writing, Speaking)")
	itemsListCmd.Flags().Int("limit", 50, "Maximum number of items to show (0 for all)")

	itemsCmd.AddCommand(itemsListCmd)
	itemsCmd.AddCommand(itemsShowCmd)
	itemsCmd.AddCommand(itemsStatsCmd)
}
