package changelog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultRemoteTimeout is the default timeout for remote changelog fetches.
const DefaultRemoteTimeout = 10 * time.Second

// FetchRemote downloads the raw changelog from url. The context controls
// timeout and cancellation. Useful in CI where the changelog lives on the
// default branch rather than in the working tree.
func FetchRemote(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching changelog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	return body, nil
}

// ExtractRemote fetches the changelog from url and extracts the section
// for label. Extraction semantics match Extract.
func ExtractRemote(ctx context.Context, url, label, prefix string) (string, error) {
	body, err := FetchRemote(ctx, url)
	if err != nil {
		return "", err
	}
	return Extract(bytes.NewReader(body), label, prefix)
}
