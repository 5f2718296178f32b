package client

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	itemAOID int64
)

var getItemCmd = &cobra.Command{
	Use:   "get-item",
	Short: "Get a catalog item by AOID",
	RunE:  runGetItem,
}

func init() {
	getItemCmd.Flags().Int64Var(&itemAOID, "aoid", 0, "Item AOID (required)")
	_ = getItemCmd.MarkFlagRequired("aoid") // nolint:errcheck // safe to ignore in init
}

type criterionView struct {
	Stat  int32 `json:"stat"`
	Op    int32 `json:"op"`
	Value int32 `json:"value"`
}

type itemView struct {
	AOID         int64           `json:"aoid"`
	Name         string          `json:"name"`
	QL           int32           `json:"ql"`
	Slot         string          `json:"slot"`
	Requirements []criterionView `json:"requirements"`
	Weapon       *struct {
		AttackSkill  int32 `json:"attack_skill"`
		AttackTime   int32 `json:"attack_time"`
		RechargeTime int32 `json:"recharge_time"`
		MinDamage    int32 `json:"min_damage"`
		MaxDamage    int32 `json:"max_damage"`
	} `json:"weapon"`
}

func runGetItem(_ *cobra.Command, _ []string) error {
	var item itemView
	if err := getJSON(fmt.Sprintf("/api/v1/items/%d", itemAOID), &item); err != nil {
		return fmt.Errorf("failed to get item: %w", err)
	}

	fmt.Printf("🎒 %s\n\n", item.Name)
	fmt.Printf("AOID: %d\n", item.AOID)
	fmt.Printf("QL: %d\n", item.QL)
	fmt.Printf("Slot: %s\n", item.Slot)
	if len(item.Requirements) > 0 {
		fmt.Printf("Requirements:\n")
		for _, r := range item.Requirements {
			fmt.Printf("  stat %d op %d value %d\n", r.Stat, r.Op, r.Value)
		}
	}
	if item.Weapon != nil {
		fmt.Printf("Weapon: attack skill %d, %d - %d damage, %dcs attack, %dcs recharge\n",
			item.Weapon.AttackSkill, item.Weapon.MinDamage, item.Weapon.MaxDamage,
			item.Weapon.AttackTime, item.Weapon.RechargeTime)
	}
	return nil
}
