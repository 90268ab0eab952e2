package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/emmanuelcheru/estate_backend/config"
)

const defaultBlobBaseURL = "https://blob.vercel-storage.com"

// Uploader stores raw bytes under a generated path and returns a publicly
// addressable URL.
type Uploader interface {
	Upload(ctx context.Context, data []byte, originalName string) (string, error)
}

// BlobService talks to the Vercel Blob REST API.
type BlobService struct {
	baseURL    string
	storeID    string
	token      string
	httpClient *http.Client
}

// NewBlobService creates a new blob service instance from the loaded
// configuration.
func NewBlobService(cfg *config.BlobConfig) *BlobService {
	return &BlobService{
		baseURL: defaultBlobBaseURL,
		storeID: cfg.StoreID,
		token:   cfg.Token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type blobPutResponse struct {
	URL      string `json:"url"`
	Pathname string `json:"pathname"`
}

// Upload writes the file publicly readable under
// uploads/<unixMillis>_<originalName> and returns the resulting URL. Store
// errors propagate unchanged; there is no retry.
func (s *BlobService) Upload(ctx context.Context, data []byte, originalName string) (string, error) {
	pathname := fmt.Sprintf("uploads/%d_%s", time.Now().UnixMilli(), originalName)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.baseURL+"/"+pathname, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("X-Store-Id", s.storeID)
	req.Header.Set("X-Access", "public")
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("blob store request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read blob store response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("blob store returned status %d: %s", resp.StatusCode, string(body))
	}

	var putResp blobPutResponse
	if err := json.Unmarshal(body, &putResp); err != nil {
		return "", fmt.Errorf("failed to decode blob store response: %w", err)
	}
	if putResp.URL == "" {
		return "", fmt.Errorf("blob store response did not contain a URL")
	}

	return putResp.URL, nil
}
