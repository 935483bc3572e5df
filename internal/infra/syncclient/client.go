package syncclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"venue-ops/internal/domain/checkin"
	"venue-ops/internal/infra"
	"venue-ops/internal/pkg/config"

	"github.com/google/uuid"
)

// Client talks to the backend scan-sync endpoint. The endpoint is
// idempotent and id-keyed: it may receive overlapping batches across
// retries and answers with the subset of ids it accepted.
type Client struct {
	httpClient *http.Client
	syncURL    string
	verifyURL  string
}

func NewClient(cfg config.CheckInConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.SyncTimeout},
		syncURL:    cfg.SyncURL,
		verifyURL:  cfg.VerifyEndpoint,
	}
}

type syncRequest struct {
	Events []checkin.ScanEvent `json:"events"`
}

type syncResponse struct {
	AcceptedIDs []uuid.UUID `json:"accepted_ids"`
}

// SyncScans delivers a batch of queued scans and returns the ids the
// backend accepted. On any transport or status failure the whole batch
// stays queued for the next flush.
func (c *Client) SyncScans(ctx context.Context, events []checkin.ScanEvent) ([]uuid.UUID, error) {
	body, err := json.Marshal(syncRequest{Events: events})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode scan batch", err, infra.KindUpstreamFailure)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.syncURL, bytes.NewReader(body))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build sync request", err, infra.KindUpstreamFailure)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, infra.WrapRepoErr("scan sync request failed", err, infra.KindUpstreamFailure)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, infra.WrapRepoErr(
			fmt.Sprintf("scan sync returned status %d", resp.StatusCode),
			nil, infra.KindUpstreamFailure,
		)
	}

	var decoded syncResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, infra.WrapRepoErr("failed to decode sync response", err, infra.KindUpstreamFailure)
	}
	return decoded.AcceptedIDs, nil
}

type verifyRequest struct {
	Code       string `json:"code"`
	VenueID    string `json:"venue_id"`
	EntranceID string `json:"entrance_id"`
}

type verifyResponse struct {
	Result checkin.Result `json:"result"`
}

// VerifyScan asks the backend to validate a code at the door. Callers
// treat a transport failure as a signal to queue the scan offline.
func (c *Client) VerifyScan(ctx context.Context, code, venueID, entranceID string) (checkin.Result, error) {
	body, err := json.Marshal(verifyRequest{Code: code, VenueID: venueID, EntranceID: entranceID})
	if err != nil {
		return "", infra.WrapRepoErr("failed to encode verify request", err, infra.KindUpstreamFailure)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, bytes.NewReader(body))
	if err != nil {
		return "", infra.WrapRepoErr("failed to build verify request", err, infra.KindUpstreamFailure)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", infra.WrapRepoErr("scan verify request failed", err, infra.KindUpstreamFailure)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", infra.WrapRepoErr(
			fmt.Sprintf("scan verify returned status %d", resp.StatusCode),
			nil, infra.KindUpstreamFailure,
		)
	}

	var decoded verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", infra.WrapRepoErr("failed to decode verify response", err, infra.KindUpstreamFailure)
	}
	if !decoded.Result.IsValid() {
		return "", infra.WrapRepoErr("verify returned unknown result", nil, infra.KindUpstreamFailure)
	}
	return decoded.Result, nil
}
