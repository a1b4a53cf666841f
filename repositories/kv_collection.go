package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/thyeshengleng/collection-form/models"
)

// formPath is the key-value endpoint holding the record set
const formPath = "/api/form"

// KVCollection stores the record set as one JSON document behind an HTTP endpoint
type KVCollection struct {
	baseURL string
	client  *http.Client
}

// NewKVCollection creates a collection talking to the worker at baseURL
func NewKVCollection(baseURL string, timeout time.Duration) *KVCollection {
	return &KVCollection{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Load fetches the stored JSON array
func (kc *KVCollection) Load(ctx context.Context) (models.RecordSet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, kc.baseURL+formPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := kc.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch records: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch records: %s", responseError(resp))
	}

	set := models.RecordSet{}
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}
	if set == nil {
		set = models.RecordSet{}
	}
	return set, nil
}

// Save posts the full record set as a JSON array
func (kc *KVCollection) Save(ctx context.Context, set models.RecordSet) error {
	if set == nil {
		set = models.RecordSet{}
	}
	body, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, kc.baseURL+formPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := kc.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to store records: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("failed to store records: %s", responseError(resp))
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}

func responseError(resp *http.Response) string {
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	if text := strings.TrimSpace(string(msg)); text != "" {
		return fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, text)
	}
	return fmt.Sprintf("unexpected status %d", resp.StatusCode)
}
