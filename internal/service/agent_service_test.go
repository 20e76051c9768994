package service

import (
	"context"
	"errors"
	"testing"

	"ai-strategy-agent-be/pkg/agent/catalog"
	"ai-strategy-agent-be/pkg/agent/persist"
	"ai-strategy-agent-be/pkg/agent/state"
	"ai-strategy-agent-be/pkg/agents"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGateway struct {
	statuses  map[catalog.SectionID]state.Status
	exportURL string
	exported  bool
}

func (g *stubGateway) Load(ctx context.Context, userID int64, section catalog.SectionID) persist.LoadResult {
	return persist.LoadResult{Status: state.StatusPending}
}

func (g *stubGateway) Save(ctx context.Context, userID int64, req persist.SaveRequest) error {
	return nil
}

func (g *stubGateway) ListStatus(ctx context.Context, userID int64) (map[catalog.SectionID]state.Status, error) {
	return g.statuses, nil
}

func (g *stubGateway) Export(ctx context.Context, userID int64) (string, error) {
	g.exported = true
	return g.exportURL, nil
}

func (g *stubGateway) UserContext(ctx context.Context, userID int64) (map[string]string, error) {
	return map[string]string{}, nil
}

func exportTestService(t *testing.T, gw persist.Gateway) *agentService {
	t.Helper()
	cat := catalog.MustNew([]catalog.Descriptor{
		{ID: "icp", Title: "Ideal customer", Next: "pain", RemoteID: 1},
		{ID: "pain", Title: "Pain points", RemoteID: 2},
	})
	return &agentService{
		runtimes: map[string]*agentRuntime{
			"value_canvas": {
				definition: agents.Definition{Key: "value_canvas", Catalog: cat},
				gateway:    gw,
			},
		},
	}
}

func TestExportRefusedWhileSectionsOpen(t *testing.T) {
	gw := &stubGateway{
		statuses: map[catalog.SectionID]state.Status{
			"icp":  state.StatusDone,
			"pain": state.StatusInProgress,
		},
		exportURL: "https://files.example.com/export.pdf",
	}
	svc := exportTestService(t, gw)

	res, err := svc.Export(context.Background(), "value_canvas", 42)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExportNotReady))
	assert.Contains(t, err.Error(), "pain")
	assert.Nil(t, res)
	assert.False(t, gw.exported, "export must not reach the remote store while sections are open")
}

func TestExportSucceedsWhenAllSectionsDone(t *testing.T) {
	gw := &stubGateway{
		statuses: map[catalog.SectionID]state.Status{
			"icp":  state.StatusDone,
			"pain": state.StatusDone,
		},
		exportURL: "https://files.example.com/export.pdf",
	}
	svc := exportTestService(t, gw)

	res, err := svc.Export(context.Background(), "value_canvas", 42)

	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "https://files.example.com/export.pdf", res.ExportURL)
	assert.Equal(t, "value_canvas", res.AgentKey)
	assert.True(t, gw.exported)
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{"defaults when unset", 0, 0, defaultPageSize, 0},
		{"negative values clamped", -10, -5, defaultPageSize, 0},
		{"oversized limit capped", 10_000, 20, maxPageSize, 20},
		{"in-range values kept", 25, 50, 25, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := normalizePage(tt.limit, tt.offset)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
