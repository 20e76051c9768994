package persist

import (
	"context"

	"ai-strategy-agent-be/pkg/agent/catalog"
	"ai-strategy-agent-be/pkg/agent/state"
	"ai-strategy-agent-be/pkg/richtext"
)

// LoadResult is what a section load yields. Degraded means the store was
// unreachable and the section should be treated as pending with no prior
// content; callers get exactly one place to decide about degraded behavior
// instead of scattering fallbacks.
type LoadResult struct {
	Status    state.Status
	Content   *richtext.Document
	PlainText string
	Score     *int
	Degraded  bool
}

// SaveRequest carries everything needed to persist one section.
type SaveRequest struct {
	Section   catalog.SectionID
	Content   *richtext.Document
	Score     *int
	Satisfied *bool
	Status    state.Status
}

// Gateway is the boundary to the remote section store. Load never returns an
// error: an unreachable store degrades to an empty pending result. Save does
// return an error, because a failed save must keep the in-memory state
// unmarked (no drift between memory and store) and the reply must not claim
// the data was saved.
type Gateway interface {
	Load(ctx context.Context, userID int64, section catalog.SectionID) LoadResult
	Save(ctx context.Context, userID int64, req SaveRequest) error
	ListStatus(ctx context.Context, userID int64) (map[catalog.SectionID]state.Status, error)
	Export(ctx context.Context, userID int64) (string, error)
	UserContext(ctx context.Context, userID int64) (map[string]string, error)
}
