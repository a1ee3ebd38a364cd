package embedding

// Provider names accepted by New().
const (
	ProviderVoyage = "voyage"
	ProviderOpenAI = "openai"
)

// Config selects and configures an embedding provider.
type Config struct {
	Provider string // "voyage" or "openai"
	APIKey   string
	Model    string // model identifier; usually taken from the catalog artifact
	BaseURL  string // optional override, mainly for tests
}

// embedRequest is the request body for the Voyage embeddings API.
type embedRequest struct {
	Input []string `json:"input"`
	Model string   `json:"model"`
}

// embedResponse is the response from the Voyage embeddings API.
type embedResponse struct {
	Object string          `json:"object"`
	Data   []embeddingData `json:"data"`
	Model  string          `json:"model"`
}

type embeddingData struct {
	Object    string    `json:"object"`
	Embedding []float32 `json:"embedding"`
	Index     int       `json:"index"`
}

// errorResponse is the error body returned by the Voyage API.
type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
