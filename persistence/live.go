package persistence

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/openfloor/planboard/models"
)

// LiveAdapter performs every operation against the remote planboard service
// immediately. Callers decide whether to await the result; the adapter itself
// never retries.
type LiveAdapter struct {
	baseURL string
	client  *http.Client
}

func NewLiveAdapter(baseURL string) *LiveAdapter {
	return &LiveAdapter{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (a *LiveAdapter) Mode() ConnectionMode { return ModeLive }

// envelope mirrors the service's response shape.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (a *LiveAdapter) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s: %s (HTTP %d)", method, path, env.Message, resp.StatusCode)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%s %s: decode data: %w", method, path, err)
		}
	}
	return nil
}

// Probe reports whether the service health endpoint answers. Only the HTTP
// status matters; the body shape is not the standard envelope.
func (a *LiveAdapter) Probe(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := a.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode == http.StatusOK
}

func (a *LiveAdapter) ListPlans(ctx context.Context) ([]models.FloorPlan, error) {
	var plans []models.FloorPlan
	if err := a.do(ctx, http.MethodGet, "/floor-plans", nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (a *LiveAdapter) CreatePlan(ctx context.Context, name, preset string) (*models.FloorPlan, error) {
	body := map[string]string{"name": name, "preset": preset}
	var plan models.FloorPlan
	if err := a.do(ctx, http.MethodPost, "/floor-plans", body, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (a *LiveAdapter) AddTable(ctx context.Context, planID uint, spec TableSpec) (*models.Table, error) {
	var table models.Table
	path := fmt.Sprintf("/floor-plans/%d/tables", planID)
	if err := a.do(ctx, http.MethodPost, path, spec, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

func (a *LiveAdapter) UpdateTable(ctx context.Context, tableID uint, fields TableFields) error {
	return a.do(ctx, http.MethodPatch, fmt.Sprintf("/tables/%d", tableID), fields, nil)
}

func (a *LiveAdapter) BatchUpdatePositions(ctx context.Context, planID uint, updates []PositionUpdate) error {
	body := map[string]interface{}{"updates": updates}
	return a.do(ctx, http.MethodPatch, fmt.Sprintf("/floor-plans/%d/positions", planID), body, nil)
}

func (a *LiveAdapter) DeleteTable(ctx context.Context, tableID uint) error {
	return a.do(ctx, http.MethodDelete, fmt.Sprintf("/tables/%d", tableID), nil, nil)
}
