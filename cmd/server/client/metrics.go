package client

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	metricsNano     int64
	targetAC        int32
	genericModifier int32
	efficiency      int32
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Compute combat metrics for a nano program",
	Long: `Run a draft's resolved stats through the nano combat pipeline:
cast and recharge times, damage range, DPS, and sustain against the
character's nano pool.`,
	RunE: runMetrics,
}

func init() {
	metricsCmd.Flags().StringVar(&draftID, "draft-id", "", "Draft ID (required)")
	_ = metricsCmd.MarkFlagRequired("draft-id") // nolint:errcheck // safe to ignore in init
	metricsCmd.Flags().Int64Var(&metricsNano, "nano", 0, "Nano program AOID (required)")
	_ = metricsCmd.MarkFlagRequired("nano") // nolint:errcheck // safe to ignore in init
	metricsCmd.Flags().Int32Var(&targetAC, "target-ac", 0, "Assumed target armor class")
	metricsCmd.Flags().Int32Var(&genericModifier, "generic-modifier", 0, "Flat damage bonus applied to every line")
	metricsCmd.Flags().Int32Var(&efficiency, "efficiency", 0, "Damage efficiency percentage, e.g. 21 for +21%")
}

type metricsView struct {
	Nano struct {
		AOID int64  `json:"aoid"`
		Name string `json:"name"`
		QL   int32  `json:"ql"`
	} `json:"nano"`
	Metrics struct {
		CastTime          float64 `json:"cast_time"`
		RechargeTime      float64 `json:"recharge_time"`
		NanoCost          float64 `json:"nano_cost"`
		MinDamage         float64 `json:"min_damage"`
		MidDamage         float64 `json:"mid_damage"`
		MaxDamage         float64 `json:"max_damage"`
		DPS               float64 `json:"dps"`
		DamagePerResource float64 `json:"damage_per_resource"`
		SustainTime       float64 `json:"sustain_time"`
		UnitsToEmpty      float64 `json:"units_to_empty"`
		Unbounded         bool    `json:"unbounded"`
	} `json:"metrics"`
}

func runMetrics(_ *cobra.Command, _ []string) error {
	query := url.Values{}
	query.Set("nano", fmt.Sprintf("%d", metricsNano))
	if targetAC > 0 {
		query.Set("target_ac", fmt.Sprintf("%d", targetAC))
	}
	if genericModifier != 0 {
		query.Set("generic_modifier", fmt.Sprintf("%d", genericModifier))
	}
	if efficiency != 0 {
		query.Set("efficiency_percent", fmt.Sprintf("%d", efficiency))
	}

	var out metricsView
	path := "/api/v1/builds/" + url.PathEscape(draftID) + "/metrics?" + query.Encode()
	if err := getJSON(path, &out); err != nil {
		return fmt.Errorf("failed to compute metrics: %w", err)
	}

	fmt.Printf("⚔️  %s (AOID %d, QL %d)\n\n", out.Nano.Name, out.Nano.AOID, out.Nano.QL)
	m := out.Metrics
	fmt.Printf("Cast time: %.2fs\n", m.CastTime)
	fmt.Printf("Recharge: %.2fs\n", m.RechargeTime)
	fmt.Printf("Nano cost: %.0f\n", m.NanoCost)
	fmt.Printf("Damage: %.0f - %.0f (mid %.0f)\n", m.MinDamage, m.MaxDamage, m.MidDamage)
	fmt.Printf("DPS: %.2f\n", m.DPS)
	fmt.Printf("Damage per nano point: %.2f\n", m.DamagePerResource)
	if m.Unbounded {
		fmt.Printf("Sustain: unbounded, regeneration covers the cost\n")
	} else {
		fmt.Printf("Sustain: %.1fs until the pool empties (%.0f casts)\n", m.SustainTime, m.UnitsToEmpty)
	}
	return nil
}
