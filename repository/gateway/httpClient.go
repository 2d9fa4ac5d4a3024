package gatewayrepo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/mustafidulibadahmad-commits/komunitas-berbagi/util/httpx"
)

type httpRepo struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTP returns a processor backed by a hosted gateway API.
func NewHTTP(baseURL, apiKey string) Repo {
	return &httpRepo{baseURL: baseURL, apiKey: apiKey, client: httpx.Client()}
}

func (r *httpRepo) Charge(ctx context.Context, req ChargeReq) (*ChargeResult, error) {
	body := map[string]any{
		"external_id": fmt.Sprintf("%s:%d", req.Type, req.UserID),
		"amount":      req.Amount,
		"description": req.Description,
	}
	b, _ := json.Marshal(body)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/v1/charges", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	httpReq.SetBasicAuth(r.apiKey, "")
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gateway charge failed: %s", resp.Status)
	}

	var out struct {
		Reference string `json:"reference"`
		Message   string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if out.Reference == "" {
		return nil, errors.New("gateway: empty charge reference")
	}
	return &ChargeResult{Success: true, Reference: out.Reference, Message: out.Message}, nil
}

func (r *httpRepo) Verify(ctx context.Context, reference string) (bool, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/v1/charges/"+reference, nil)
	if err != nil {
		return false, err
	}
	httpReq.SetBasicAuth(r.apiKey, "")

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK, nil
}
