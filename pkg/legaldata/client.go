// Package legaldata is the HTTP client for the judicial-data provider.
package legaldata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrNotFound is returned when the provider has no lawsuit for the CNJ number.
var ErrNotFound = errors.New("legaldata: lawsuit not found")

// Client is the HTTP wrapper for the provider REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a new provider client. A zero timeout means 30s.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GetLawsuit fetches the lawsuit and its movements via GET /processos/{cnj}/movimentacoes.
// cnj must be the bare 20 digits.
func (c *Client) GetLawsuit(ctx context.Context, cnj string) (*Lawsuit, error) {
	endpoint := fmt.Sprintf("%s/processos/%s/movimentacoes", c.baseURL, url.PathEscape(cnj))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build movements request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call legaldata movements API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("legaldata API error %d: %s", resp.StatusCode, string(raw))
	}

	var body movementsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode legaldata response: %w", err)
	}

	lawsuit := &Lawsuit{
		NumeroCNJ: body.NumeroCNJ,
		Tribunal:  body.Tribunal,
		Classe:    body.Classe,
		Movements: make([]Movement, 0, len(body.Movimentacoes)),
	}
	for i, raw := range body.Movimentacoes {
		var m Movement
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("failed to decode movement %d: %w", i, err)
		}
		m.Raw = raw
		lawsuit.Movements = append(lawsuit.Movements, m)
	}
	return lawsuit, nil
}

// GetMovements returns only the movements of the lawsuit.
func (c *Client) GetMovements(ctx context.Context, cnj string) ([]Movement, error) {
	lawsuit, err := c.GetLawsuit(ctx, cnj)
	if err != nil {
		return nil, err
	}
	return lawsuit.Movements, nil
}
