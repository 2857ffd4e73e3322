package custody

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPGateway implements ports.CustodyGateway against the custody provider's
// REST API. The provider holds the actual pooled funds; this process only
// tracks accounting, so every balance read and release goes over the wire.
type HTTPGateway struct {
	baseURL string
	client  HTTPClient
	log     zerolog.Logger
}

// NewHTTPGateway creates a custody gateway client for the given endpoint.
func NewHTTPGateway(endpoint string, client HTTPClient, log zerolog.Logger) *HTTPGateway {
	return &HTTPGateway{
		baseURL: strings.TrimRight(endpoint, "/"),
		client:  client,
		log:     log,
	}
}

type balanceResponse struct {
	Balance int64 `json:"balance"`
}

type releaseRequest struct {
	Destination string `json:"destination"`
	Amount      int64  `json:"amount"`
	Payload     []byte `json:"payload,omitempty"`
}

type releaseResponse struct {
	Released bool   `json:"released"`
	Reason   string `json:"reason,omitempty"`
}

// Balance fetches the externally observable custodied balance of a vault.
// The provider may report more than this process tracks: funds can arrive
// outside the announced deposit path.
func (g *HTTPGateway) Balance(ctx context.Context, vaultID uuid.UUID) (int64, error) {
	url := fmt.Sprintf("%s/vaults/%s/balance", g.baseURL, vaultID.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("custody balance request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("custody balance call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return 0, fmt.Errorf("custody balance: status %d: %s", resp.StatusCode, string(body))
	}

	var out balanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("custody balance decode: %w", err)
	}
	return out.Balance, nil
}

// Release asks the provider to transfer amount to destination. A 200 with
// released=false is an ordinary decline (false, nil); any other failure is a
// fatal fault and surfaces as an error.
func (g *HTTPGateway) Release(ctx context.Context, vaultID uuid.UUID, destination string, amount int64, payload []byte) (bool, error) {
	body, err := json.Marshal(releaseRequest{
		Destination: destination,
		Amount:      amount,
		Payload:     payload,
	})
	if err != nil {
		return false, fmt.Errorf("custody release marshal: %w", err)
	}

	url := fmt.Sprintf("%s/vaults/%s/release", g.baseURL, vaultID.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("custody release request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("custody release call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return false, fmt.Errorf("custody release: status %d: %s", resp.StatusCode, string(raw))
	}

	var out releaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, fmt.Errorf("custody release decode: %w", err)
	}

	if !out.Released {
		g.log.Warn().
			Str("vault_id", vaultID.String()).
			Str("destination", destination).
			Int64("amount", amount).
			Str("reason", out.Reason).
			Msg("Custody provider declined release")
	}
	return out.Released, nil
}
