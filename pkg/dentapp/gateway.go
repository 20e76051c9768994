package dentapp

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"ai-strategy-agent-be/pkg/agent/catalog"
	"ai-strategy-agent-be/pkg/agent/persist"
	"ai-strategy-agent-be/pkg/agent/state"
	"ai-strategy-agent-be/pkg/richtext"
)

// Gateway adapts the DentApp HTTP client to the agent persistence boundary.
// It maps internal section ids to the store's numeric ids through the
// catalog, and converts between rich-text documents and the plain text the
// store keeps.
type Gateway struct {
	client  *Client
	catalog *catalog.Catalog
	agentID int
	logger  *zap.Logger
}

func NewGateway(client *Client, cat *catalog.Catalog, agentID int, logger *zap.Logger) *Gateway {
	return &Gateway{
		client:  client,
		catalog: cat,
		agentID: agentID,
		logger:  logger,
	}
}

// Load fetches one section row. Store failures degrade to an empty pending
// result rather than erroring; the Degraded flag lets the caller mention the
// outage once in the reply.
func (g *Gateway) Load(ctx context.Context, userID int64, section catalog.SectionID) persist.LoadResult {
	desc, ok := g.catalog.Descriptor(section)
	if !ok {
		g.logger.Error("load for unknown section", zap.String("section", string(section)))
		return persist.LoadResult{Status: state.StatusPending}
	}

	dto, err := g.client.GetSectionState(ctx, g.agentID, desc.RemoteID, userID)
	if err != nil {
		g.logger.Warn("section store unreachable, degrading to empty state",
			zap.String("section", string(section)),
			zap.Error(err))
		return persist.LoadResult{Status: state.StatusPending, Degraded: true}
	}
	if dto == nil {
		return persist.LoadResult{Status: state.StatusPending}
	}

	res := persist.LoadResult{
		Status:    state.StatusInProgress,
		PlainText: dto.Content,
		Score:     dto.Score,
	}
	if dto.IsCompleted {
		res.Status = state.StatusDone
	}
	if dto.Content != "" {
		res.Content = richtext.FromPlainText(dto.Content)
	}
	return res
}

// Save upserts one section row. Errors propagate: the caller must not mark
// the section done in memory when the store did not accept it.
func (g *Gateway) Save(ctx context.Context, userID int64, req persist.SaveRequest) error {
	desc, ok := g.catalog.Descriptor(req.Section)
	if !ok {
		return fmt.Errorf("save for unknown section %q", req.Section)
	}

	var plain string
	if req.Content != nil {
		plain = req.Content.PlainText()
	}

	metadata := map[string]any{
		"is_completed": req.Status == state.StatusDone,
	}
	if req.Score != nil {
		metadata["score"] = *req.Score
	}
	if req.Satisfied != nil {
		metadata["satisfied"] = *req.Satisfied
	}

	return g.client.SaveSectionState(ctx, g.agentID, desc.RemoteID, userID, plain, metadata)
}

// ListStatus returns the store's view of every catalog section, pending for
// sections the store has no row for.
func (g *Gateway) ListStatus(ctx context.Context, userID int64) (map[catalog.SectionID]state.Status, error) {
	rows, err := g.client.GetAllSectionsStatus(ctx, g.agentID, userID)
	if err != nil {
		return nil, err
	}

	byRemote := make(map[int]SectionStateDTO, len(rows))
	for _, row := range rows {
		byRemote[row.SectionID] = row
	}

	out := make(map[catalog.SectionID]state.Status, g.catalog.Len())
	for _, id := range g.catalog.Order() {
		desc, _ := g.catalog.Descriptor(id)
		row, ok := byRemote[desc.RemoteID]
		switch {
		case !ok:
			out[id] = state.StatusPending
		case row.IsCompleted:
			out[id] = state.StatusDone
		case row.Content != "":
			out[id] = state.StatusInProgress
		default:
			out[id] = state.StatusPending
		}
	}
	return out, nil
}

// Export asks the store to build the aggregate deliverable and returns its
// location.
func (g *Gateway) Export(ctx context.Context, userID int64) (string, error) {
	res, err := g.client.ExportAgentData(ctx, g.agentID, userID)
	if err != nil {
		return "", err
	}
	return res.URL, nil
}

// UserContext fetches the profile fields used to render section prompts.
// An absent profile yields an empty map, not an error.
func (g *Gateway) UserContext(ctx context.Context, userID int64) (map[string]string, error) {
	dto, err := g.client.GetAgentContext(ctx, userID)
	if err != nil {
		return nil, err
	}
	if dto == nil {
		return map[string]string{}, nil
	}
	return map[string]string{
		"full_name":      dto.FullName,
		"preferred_name": dto.PreferredName,
		"company_name":   dto.CompanyName,
	}, nil
}

var _ persist.Gateway = (*Gateway)(nil)
