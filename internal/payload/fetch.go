package payload

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
)

// Get performs a GET request and returns the body of a 200 response. Any
// transport failure or non-OK status is reported as ErrNetwork.
func Get(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	log.Debug("Requesting payload", "url", url)
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %v: %w", err, ErrNetwork)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Debug("Received non-OK HTTP status", "url", url, "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("received non-OK HTTP status %d: %w", resp.StatusCode, ErrNetwork)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %v: %w", err, ErrNetwork)
	}
	return body, nil
}
