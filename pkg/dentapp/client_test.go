package dentapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ai-strategy-agent-be/pkg/agent/catalog"
	"ai-strategy-agent-be/pkg/agent/persist"
	"ai-strategy-agent-be/pkg/agent/state"
	"ai-strategy-agent-be/pkg/richtext"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.Descriptor{
		{ID: "icp", Title: "Ideal Client", Next: "pain", RemoteID: 10},
		{ID: "pain", Title: "Pain Points", RemoteID: 11},
	})
	require.NoError(t, err)
	return cat
}

func TestGetSectionState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/section_states/2/10", r.URL.Path)
		assert.Equal(t, "42", r.URL.Query().Get("user_id"))
		json.NewEncoder(w).Encode(SectionStateDTO{
			SectionID:   10,
			Content:     "who: founders",
			IsCompleted: true,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	dto, err := c.GetSectionState(context.Background(), 2, 10, 42)
	require.NoError(t, err)
	require.NotNil(t, dto)
	assert.Equal(t, "who: founders", dto.Content)
	assert.True(t, dto.IsCompleted)
}

func TestGetSectionStateNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	dto, err := c.GetSectionState(context.Background(), 2, 10, 42)
	require.NoError(t, err, "a missing row is not an error")
	assert.Nil(t, dto)
}

func TestDoRetriesServerErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(SectionStateDTO{SectionID: 10})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	dto, err := c.GetSectionState(context.Background(), 2, 10, 42)
	require.NoError(t, err)
	require.NotNil(t, dto)
	assert.Equal(t, int32(2), hits.Load())
}

func TestDoDoesNotRetryClientErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.GetSectionState(context.Background(), 2, 10, 42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 422")
	assert.Equal(t, int32(1), hits.Load(), "a rejected request must not be replayed")
}

func TestSaveSectionStateBody(t *testing.T) {
	var got saveSectionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/section_states/2/11", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	err := c.SaveSectionState(context.Background(), 2, 11, 42, "pains: churn", map[string]any{"is_completed": true})
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.UserID)
	assert.Equal(t, "pains: churn", got.Content)
	assert.Equal(t, true, got.Metadata["is_completed"])
}

func TestGatewayLoadDegradesWhenStoreUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	srv.Close() // unreachable on purpose

	c := NewClient(srv.URL, time.Second)
	c.Retries = 0
	gw := NewGateway(c, testCatalog(t), 2, zap.NewNop())

	res := gw.Load(context.Background(), 42, "icp")
	assert.True(t, res.Degraded)
	assert.Equal(t, state.StatusPending, res.Status)
	assert.Nil(t, res.Content)
}

func TestGatewayLoadMapsCompletedRow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(SectionStateDTO{
			SectionID:   10,
			Content:     "who: founders\nwhere: LinkedIn",
			IsCompleted: true,
		})
	}))
	defer srv.Close()

	gw := NewGateway(NewClient(srv.URL, time.Second), testCatalog(t), 2, zap.NewNop())

	res := gw.Load(context.Background(), 42, "icp")
	assert.False(t, res.Degraded)
	assert.Equal(t, state.StatusDone, res.Status)
	require.NotNil(t, res.Content)
	assert.Equal(t, "who: founders\nwhere: LinkedIn", res.Content.PlainText())
}

func TestGatewaySaveSendsPlainText(t *testing.T) {
	var got saveSectionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	gw := NewGateway(NewClient(srv.URL, time.Second), testCatalog(t), 2, zap.NewNop())
	score := 4
	err := gw.Save(context.Background(), 42, persist.SaveRequest{
		Section: "pain",
		Content: richtext.FromPlainText("pains: churn"),
		Score:   &score,
		Status:  state.StatusDone,
	})
	require.NoError(t, err)
	assert.Equal(t, "pains: churn", got.Content)
	assert.Equal(t, true, got.Metadata["is_completed"])
	assert.EqualValues(t, 4, got.Metadata["score"])
}

func TestGatewayListStatusFillsPendingForMissingRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/agent/get-all-sections-status/2", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"sections": []SectionStateDTO{
				{SectionID: 10, Content: "who: founders", IsCompleted: true},
			},
		})
	}))
	defer srv.Close()

	gw := NewGateway(NewClient(srv.URL, time.Second), testCatalog(t), 2, zap.NewNop())
	statuses, err := gw.ListStatus(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, state.StatusDone, statuses["icp"])
	assert.Equal(t, state.StatusPending, statuses["pain"])
}
