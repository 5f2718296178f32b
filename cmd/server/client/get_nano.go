package client

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	nanoAOID int64
)

var getNanoCmd = &cobra.Command{
	Use:   "get-nano",
	Short: "Get a nano program by AOID",
	RunE:  runGetNano,
}

func init() {
	getNanoCmd.Flags().Int64Var(&nanoAOID, "aoid", 0, "Nano program AOID (required)")
	_ = getNanoCmd.MarkFlagRequired("aoid") // nolint:errcheck // safe to ignore in init
}

type nanoView struct {
	AOID         int64           `json:"aoid"`
	Name         string          `json:"name"`
	School       int32           `json:"school"`
	Strain       int32           `json:"strain"`
	QL           int32           `json:"ql"`
	NanoCost     int32           `json:"nano_cost"`
	AttackTime   int32           `json:"attack_time"`
	RechargeTime int32           `json:"recharge_time"`
	MinDamage    int32           `json:"min_damage"`
	MaxDamage    int32           `json:"max_damage"`
	Requirements []criterionView `json:"requirements"`
}

func runGetNano(_ *cobra.Command, _ []string) error {
	var nano nanoView
	if err := getJSON(fmt.Sprintf("/api/v1/nanos/%d", nanoAOID), &nano); err != nil {
		return fmt.Errorf("failed to get nano: %w", err)
	}

	fmt.Printf("💫 %s\n\n", nano.Name)
	fmt.Printf("AOID: %d\n", nano.AOID)
	fmt.Printf("QL: %d\n", nano.QL)
	fmt.Printf("School: %d, strain: %d\n", nano.School, nano.Strain)
	fmt.Printf("Nano cost: %d\n", nano.NanoCost)
	fmt.Printf("Timing: %dcs attack, %dcs recharge\n", nano.AttackTime, nano.RechargeTime)
	if nano.MaxDamage > 0 {
		fmt.Printf("Damage: %d - %d\n", nano.MinDamage, nano.MaxDamage)
	}
	if len(nano.Requirements) > 0 {
		fmt.Printf("Requirements:\n")
		for _, r := range nano.Requirements {
			fmt.Printf("  stat %d op %d value %d\n", r.Stat, r.Op, r.Value)
		}
	}
	return nil
}
