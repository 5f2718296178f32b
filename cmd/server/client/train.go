package client

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	trainStat   int32
	trainPoints int32
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Spend improvement points on a stat",
	Long: `Train a stat on a draft by its numeric ID. Points are a delta:
negative values untrain and refund the improvement points.`,
	RunE: runTrain,
}

func init() {
	trainCmd.Flags().StringVar(&draftID, "draft-id", "", "Draft ID (required)")
	_ = trainCmd.MarkFlagRequired("draft-id") // nolint:errcheck // safe to ignore in init
	trainCmd.Flags().Int32Var(&trainStat, "stat", 0, "Numeric stat ID (required)")
	_ = trainCmd.MarkFlagRequired("stat") // nolint:errcheck // safe to ignore in init
	trainCmd.Flags().Int32Var(&trainPoints, "points", 0, "Points delta (required)")
	_ = trainCmd.MarkFlagRequired("points") // nolint:errcheck // safe to ignore in init
}

type trainView struct {
	Draft        draftView     `json:"draft"`
	Cost         int64         `json:"cost"`
	SpentIP      int64         `json:"spent_ip"`
	AvailableIP  int64         `json:"available_ip"`
	EffectiveCap int32         `json:"effective_cap"`
	Warnings     []warningView `json:"warnings"`
}

func runTrain(_ *cobra.Command, _ []string) error {
	req := map[string]any{
		"stat":   trainStat,
		"points": trainPoints,
	}

	var out trainView
	path := "/api/v1/builds/" + url.PathEscape(draftID) + "/train"
	if err := postJSON(path, req, &out); err != nil {
		return fmt.Errorf("failed to train stat: %w", err)
	}

	fmt.Printf("✅ Trained stat %d by %d points\n\n", trainStat, trainPoints)
	fmt.Printf("Cost: %d IP\n", out.Cost)
	fmt.Printf("Spent: %d IP\n", out.SpentIP)
	fmt.Printf("Available: %d IP\n", out.AvailableIP)
	fmt.Printf("Effective cap: %d\n", out.EffectiveCap)
	printWarnings(out.Warnings)
	return nil
}
