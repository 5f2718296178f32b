package client

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	playerID   string
	draftName  string
	breed      string
	profession string
	level      int32
	notes      string
)

var createDraftCmd = &cobra.Command{
	Use:   "create-draft",
	Short: "Create a new build draft",
	Long:  `Create a build draft for a player, optionally seeding the character identity.`,
	RunE:  runCreateDraft,
}

func init() {
	createDraftCmd.Flags().StringVar(&playerID, "player", "", "Player ID (required)")
	_ = createDraftCmd.MarkFlagRequired("player") // nolint:errcheck // safe to ignore in init
	createDraftCmd.Flags().StringVar(&draftName, "name", "", "Character name")
	createDraftCmd.Flags().StringVar(&breed, "breed", "", "Breed (solitus, opifex, nanomage, atrox)")
	createDraftCmd.Flags().StringVar(&profession, "profession", "", "Profession, e.g. soldier or nano_technician")
	createDraftCmd.Flags().Int32Var(&level, "level", 0, "Character level")
	createDraftCmd.Flags().StringVar(&notes, "notes", "", "Free-form planning notes")
}

func runCreateDraft(_ *cobra.Command, _ []string) error {
	req := map[string]any{
		"player_id": playerID,
	}
	if notes != "" {
		req["notes"] = notes
	}
	if draftName != "" || breed != "" || profession != "" || level > 0 {
		req["character"] = map[string]any{
			"name":       draftName,
			"breed":      breed,
			"profession": profession,
			"level":      level,
		}
	}

	var draft draftView
	if err := postJSON("/api/v1/builds", req, &draft); err != nil {
		return fmt.Errorf("failed to create draft: %w", err)
	}

	fmt.Printf("✅ Draft created\n\n")
	printDraft(&draft)
	return nil
}
