package dentapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"
)

// Client is the HTTP client for the DentApp AI Builder API, the remote store
// that keeps one plain-text blob and a completion flag per (agent, section,
// user) key.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Retries    int
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		Retries: 2,
	}
}

// SectionStateDTO is the store's representation of one section row.
type SectionStateDTO struct {
	SectionID   int     `json:"section_id"`
	Content     string  `json:"content"`
	IsCompleted bool    `json:"is_completed"`
	Score       *int    `json:"score,omitempty"`
	UpdatedAt   *string `json:"updated_at,omitempty"`
}

type saveSectionRequest struct {
	UserID   int64          `json:"user_id"`
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type statusRequest struct {
	UserID int64 `json:"user_id"`
}

type exportRequest struct {
	UserID  int64 `json:"user_id"`
	AgentID int   `json:"agent_id"`
}

// ExportResult references the aggregate artifact built by the store.
type ExportResult struct {
	URL string `json:"url"`
}

// UserContextDTO is the profile data the store knows about a user.
type UserContextDTO struct {
	FullName      string `json:"full_name"`
	PreferredName string `json:"preferred_name"`
	CompanyName   string `json:"company_name"`
}

// GetSectionState fetches one section row. A 404 yields (nil, nil): the
// section simply has no saved state yet.
func (c *Client) GetSectionState(ctx context.Context, agentID, sectionID int, userID int64) (*SectionStateDTO, error) {
	url := fmt.Sprintf("%s/section_states/%d/%d?user_id=%d", c.BaseURL, agentID, sectionID, userID)

	var out SectionStateDTO
	found, err := c.do(ctx, http.MethodGet, url, nil, &out)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &out, nil
}

// SaveSectionState upserts one section row. The store keys rows by
// (agent, section, user), so repeating the same save is idempotent.
func (c *Client) SaveSectionState(ctx context.Context, agentID, sectionID int, userID int64, content string, metadata map[string]any) error {
	url := fmt.Sprintf("%s/section_states/%d/%d", c.BaseURL, agentID, sectionID)
	body := saveSectionRequest{UserID: userID, Content: content, Metadata: metadata}

	_, err := c.do(ctx, http.MethodPost, url, body, nil)
	return err
}

// GetAllSectionsStatus returns every stored section row for a user.
func (c *Client) GetAllSectionsStatus(ctx context.Context, agentID int, userID int64) ([]SectionStateDTO, error) {
	url := fmt.Sprintf("%s/agent/get-all-sections-status/%d", c.BaseURL, agentID)

	var out struct {
		Sections []SectionStateDTO `json:"sections"`
	}
	if _, err := c.do(ctx, http.MethodPost, url, statusRequest{UserID: userID}, &out); err != nil {
		return nil, err
	}
	return out.Sections, nil
}

// ExportAgentData asks the store to build the aggregate deliverable.
func (c *Client) ExportAgentData(ctx context.Context, agentID int, userID int64) (*ExportResult, error) {
	url := c.BaseURL + "/agent/export"

	var out ExportResult
	if _, err := c.do(ctx, http.MethodPost, url, exportRequest{UserID: userID, AgentID: agentID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAgentContext fetches the user's profile for prompt rendering.
func (c *Client) GetAgentContext(ctx context.Context, userID int64) (*UserContextDTO, error) {
	url := fmt.Sprintf("%s/users/%d/agent-context", c.BaseURL, userID)

	var out UserContextDTO
	found, err := c.do(ctx, http.MethodGet, url, nil, &out)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &out, nil
}

// do performs one request with bounded retries and exponential backoff.
// Returns found=false for a 404 so callers can distinguish "no row" from a
// transport failure.
func (c *Client) do(ctx context.Context, method, url string, body any, out any) (found bool, err error) {
	var payload []byte
	if body != nil {
		payload, err = json.Marshal(body)
		if err != nil {
			return false, fmt.Errorf("marshal request: %w", err)
		}
	}

	attempts := c.Retries + 1
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * time.Second
			select {
			case <-ctx.Done():
				return false, ctx.Err()
			case <-time.After(backoff):
			}
		}

		found, err = c.once(ctx, method, url, payload, out)
		if err == nil {
			return found, nil
		}
		// A 4xx means the request itself is wrong; retrying cannot help.
		var se *statusError
		if errors.As(err, &se) && !se.retryable() {
			break
		}
	}
	return false, fmt.Errorf("dentapp %s %s: %w", method, url, err)
}

type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.code, e.body)
}

func (e *statusError) retryable() bool {
	return e.code >= 500
}

func (c *Client) once(ctx context.Context, method, url string, payload []byte, out any) (bool, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	case resp.StatusCode >= 400:
		data, _ := io.ReadAll(resp.Body)
		return false, &statusError{code: resp.StatusCode, body: string(data)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return false, fmt.Errorf("decode response: %w", err)
		}
	}
	return true, nil
}
