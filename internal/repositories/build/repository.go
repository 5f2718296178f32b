// Package build defines the interface for build draft persistence
package build

//go:generate mockgen -destination=mock/mock_repository.go -package=buildmock github.com/rubika-tools/planner-api/internal/repositories/build Repository

import (
	"context"

	"github.com/rubika-tools/planner-api/internal/entities/rubika"
)

// Repository defines the interface for build draft persistence.
// A player can keep any number of drafts; each draft expires after a
// period of inactivity and every write renews the clock.
type Repository interface {
	// Create stores a new build draft
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if the draft ID is taken
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a build draft by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the draft doesn't exist or has expired
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListByPlayerID retrieves all of a player's live drafts
	// Returns errors.InvalidArgument for empty player IDs
	// Returns errors.Internal for storage failures
	ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error)

	// Update replaces an existing build draft and renews its expiry
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the draft doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a build draft by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the draft doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a build draft
type CreateInput struct {
	Draft *rubika.BuildDraft
}

// CreateOutput defines the output for creating a build draft
type CreateOutput struct {
	Draft *rubika.BuildDraft
}

// GetInput defines the input for getting a build draft
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a build draft
type GetOutput struct {
	Draft *rubika.BuildDraft
}

// ListByPlayerIDInput defines the input for listing a player's drafts
type ListByPlayerIDInput struct {
	PlayerID string
}

// ListByPlayerIDOutput defines the output for listing a player's drafts
type ListByPlayerIDOutput struct {
	Drafts []*rubika.BuildDraft
}

// UpdateInput defines the input for updating a build draft
type UpdateInput struct {
	Draft *rubika.BuildDraft
}

// UpdateOutput defines the output for updating a build draft
type UpdateOutput struct {
	Draft *rubika.BuildDraft
}

// DeleteInput defines the input for deleting a build draft
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a build draft
type DeleteOutput struct{}
