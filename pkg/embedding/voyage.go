package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	voyageDefaultBaseURL = "https://api.voyageai.com/v1"
	voyageDefaultModel   = "voyage-3"
)

// VoyageClient is the Voyage AI embedding API client.
type VoyageClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewVoyageClient creates a new Voyage AI client.
func NewVoyageClient(apiKey string) (*VoyageClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: voyage API key is required", ErrUnavailable)
	}

	return &VoyageClient{
		apiKey:     apiKey,
		baseURL:    voyageDefaultBaseURL,
		model:      voyageDefaultModel,
		httpClient: &http.Client{},
	}, nil
}

// WithModel sets a custom model (e.g., "voyage-3", "voyage-large-2").
func (c *VoyageClient) WithModel(model string) *VoyageClient {
	c.model = model
	return c
}

// WithBaseURL overrides the default Voyage API base URL.
func (c *VoyageClient) WithBaseURL(baseURL string) *VoyageClient {
	c.baseURL = baseURL
	return c
}

// Model returns the configured model identifier.
func (c *VoyageClient) Model() string {
	return c.model
}

// Embed generates embeddings for the given texts.
func (c *VoyageClient) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("no texts provided")
	}

	reqBody := embedRequest{
		Input: texts,
		Model: c.model,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/embeddings", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call Voyage API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if jsonErr := json.NewDecoder(resp.Body).Decode(&errResp); jsonErr == nil && errResp.Error.Message != "" {
			return nil, fmt.Errorf("voyage API error (%d): %s", resp.StatusCode, errResp.Error.Message)
		}
		return nil, fmt.Errorf("voyage API error: %d", resp.StatusCode)
	}

	var embedResp embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&embedResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	embeddings := make([][]float32, len(embedResp.Data))
	for i, data := range embedResp.Data {
		embeddings[i] = data.Embedding
	}

	return embeddings, nil
}
