package client

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Show the resolved stat breakdown for a draft",
	Long:  `Resolve a draft's abilities and skills, itemizing base value, trickle-down, trained points, and bonuses.`,
	RunE:  runSkills,
}

func init() {
	skillsCmd.Flags().StringVar(&draftID, "draft-id", "", "Draft ID (required)")
	_ = skillsCmd.MarkFlagRequired("draft-id") // nolint:errcheck // safe to ignore in init
}

type skillView struct {
	ID             int32 `json:"id"`
	BaseValue      int32 `json:"base_value"`
	TrickleDown    int32 `json:"trickle_down"`
	Trained        int32 `json:"trained"`
	EquipmentBonus int32 `json:"equipment_bonus"`
	PerkBonus      int32 `json:"perk_bonus"`
	BuffBonus      int32 `json:"buff_bonus"`
	Total          int32 `json:"total"`
	Cap            int32 `json:"cap"`
}

type skillsView struct {
	Abilities map[string]skillView `json:"abilities"`
	Skills    map[string]skillView `json:"skills"`
}

func runSkills(_ *cobra.Command, _ []string) error {
	var out skillsView
	path := "/api/v1/builds/" + url.PathEscape(draftID) + "/skills"
	if err := getJSON(path, &out); err != nil {
		return fmt.Errorf("failed to resolve skills: %w", err)
	}

	fmt.Printf("📊 Stat Breakdown\n\n")
	fmt.Printf("Abilities:\n")
	printStatTable(out.Abilities)
	fmt.Printf("\nSkills:\n")
	printStatTable(out.Skills)
	return nil
}

func printStatTable(stats map[string]skillView) {
	fmt.Printf("%6s %6s %8s %8s %6s %6s %6s %7s %6s\n",
		"stat", "base", "trickle", "trained", "equip", "perk", "buff", "total", "cap")

	for _, id := range sortedStatKeys(stats) {
		sk := stats[id]
		fmt.Printf("%6s %6d %8d %8d %6d %6d %6d %7d %6d\n",
			id, sk.BaseValue, sk.TrickleDown, sk.Trained,
			sk.EquipmentBonus, sk.PerkBonus, sk.BuffBonus, sk.Total, sk.Cap)
	}
}

// sortedStatKeys orders the stringified stat IDs numerically
func sortedStatKeys(stats map[string]skillView) []string {
	ids := make([]int, 0, len(stats))
	for key := range stats {
		if id, err := strconv.Atoi(key); err == nil {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, strconv.Itoa(id))
	}
	return keys
}
