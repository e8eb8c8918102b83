package dns

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	interrors "github.com/jrsteele09/go-cloud-client/internal/errors"
)

// Record is a single DNS record inside a zone.
type Record struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Data    string `json:"data"`
	TTL     int    `json:"ttl,omitempty"`
	Created string `json:"created,omitempty"`
	Updated string `json:"updated,omitempty"`
}

// Records lists a zone's records.
func (c *Client) Records(ctx context.Context, zoneID int64) ([]Record, error) {
	if zoneID == 0 {
		return nil, interrors.ErrMissingParameters
	}

	var payload struct {
		Records []Record `json:"records"`
	}
	if err := c.send(ctx, http.MethodGet, fmt.Sprintf("/domains/%d/records", zoneID), nil, &payload); err != nil {
		return nil, errors.Wrap(err, "[Client.Records] list records")
	}
	return payload.Records, nil
}

// Record fetches one record by id.
func (c *Client) Record(ctx context.Context, zoneID int64, recordID string) (*Record, error) {
	if zoneID == 0 || recordID == "" {
		return nil, interrors.ErrMissingParameters
	}

	var record Record
	if err := c.send(ctx, http.MethodGet, fmt.Sprintf("/domains/%d/records/%s", zoneID, recordID), nil, &record); err != nil {
		return nil, errors.Wrap(err, "[Client.Record] get record")
	}
	return &record, nil
}

// CreateRecord submits a record creation and returns the provider's job
// handle.
func (c *Client) CreateRecord(ctx context.Context, zoneID int64, record Record) (*Job, error) {
	if zoneID == 0 || record.Name == "" || record.Type == "" || record.Data == "" {
		return nil, interrors.ErrMissingParameters
	}

	body := map[string][]Record{"records": {record}}
	var job Job
	if err := c.send(ctx, http.MethodPost, fmt.Sprintf("/domains/%d/records", zoneID), body, &job); err != nil {
		return nil, errors.Wrap(err, "[Client.CreateRecord] create record")
	}
	return &job, nil
}

// UpdateRecord submits an update to an existing record.
func (c *Client) UpdateRecord(ctx context.Context, zoneID int64, record Record) (*Job, error) {
	if zoneID == 0 || record.ID == "" {
		return nil, interrors.ErrMissingParameters
	}

	var job Job
	if err := c.send(ctx, http.MethodPut, fmt.Sprintf("/domains/%d/records/%s", zoneID, record.ID), record, &job); err != nil {
		return nil, errors.Wrap(err, "[Client.UpdateRecord] update record")
	}
	return &job, nil
}

// DeleteRecord submits a record deletion.
func (c *Client) DeleteRecord(ctx context.Context, zoneID int64, recordID string) (*Job, error) {
	if zoneID == 0 || recordID == "" {
		return nil, interrors.ErrMissingParameters
	}

	var job Job
	if err := c.send(ctx, http.MethodDelete, fmt.Sprintf("/domains/%d/records/%s", zoneID, recordID), nil, &job); err != nil {
		return nil, errors.Wrap(err, "[Client.DeleteRecord] delete record")
	}
	return &job, nil
}
