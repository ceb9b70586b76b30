// Package subscribers talks to the external subscriber service that
// resolves subscriber ids to display names.
package subscribers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrNotFound is returned when the subscriber service does not know the
// requested id.
var ErrNotFound = errors.New("subscriber not found")

// Directory resolves a subscriber id to a display name.
type Directory interface {
	Lookup(ctx context.Context, id int) (string, error)
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient builds a lookup client for the given base URL. The client
// carries its own timeout so a stalled subscriber service cannot hang a
// request forever.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 5 * time.Second},
	}
}

// Lookup fetches the subscriber with the given id. Any non-200 response
// is treated as absence.
func (c *Client) Lookup(ctx context.Context, id int) (string, error) {
	url := fmt.Sprintf("%s/narocniki/%d", c.BaseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", ErrNotFound
	}

	var payload struct {
		Ime string `json:"ime"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode subscriber %d: %w", id, err)
	}
	return payload.Ime, nil
}
