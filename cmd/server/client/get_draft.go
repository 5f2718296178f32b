package client

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	draftID string
)

var getDraftCmd = &cobra.Command{
	Use:   "get-draft",
	Short: "Get a build draft by ID",
	Long:  `Retrieve a build draft to view its current progress and details.`,
	RunE:  runGetDraft,
}

func init() {
	getDraftCmd.Flags().StringVar(&draftID, "draft-id", "", "Draft ID (required)")
	_ = getDraftCmd.MarkFlagRequired("draft-id") // nolint:errcheck // safe to ignore in init
}

func runGetDraft(_ *cobra.Command, _ []string) error {
	var draft draftView
	if err := getJSON("/api/v1/builds/"+url.PathEscape(draftID), &draft); err != nil {
		return fmt.Errorf("failed to get draft: %w", err)
	}

	fmt.Printf("📋 Build Draft\n\n")
	printDraft(&draft)
	return nil
}
