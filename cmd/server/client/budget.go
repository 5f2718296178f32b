package client

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Show the improvement point ledger for a draft",
	RunE:  runBudget,
}

func init() {
	budgetCmd.Flags().StringVar(&draftID, "draft-id", "", "Draft ID (required)")
	_ = budgetCmd.MarkFlagRequired("draft-id") // nolint:errcheck // safe to ignore in init
}

type budgetView struct {
	TitleLevel  int32            `json:"title_level"`
	TotalIP     int64            `json:"total_ip"`
	SpentIP     int64            `json:"spent_ip"`
	AvailableIP int64            `json:"available_ip"`
	PerSkill    map[string]int64 `json:"per_skill"`
}

func runBudget(_ *cobra.Command, _ []string) error {
	var out budgetView
	path := "/api/v1/builds/" + url.PathEscape(draftID) + "/ip"
	if err := getJSON(path, &out); err != nil {
		return fmt.Errorf("failed to get IP budget: %w", err)
	}

	fmt.Printf("💰 Improvement Points\n\n")
	fmt.Printf("Title level: %d\n", out.TitleLevel)
	fmt.Printf("Total: %d IP\n", out.TotalIP)
	fmt.Printf("Spent: %d IP\n", out.SpentIP)
	fmt.Printf("Available: %d IP\n", out.AvailableIP)
	if len(out.PerSkill) > 0 {
		fmt.Printf("\nPer stat:\n")
		for stat, spent := range out.PerSkill {
			fmt.Printf("  %6s: %d IP\n", stat, spent)
		}
	}
	return nil
}
