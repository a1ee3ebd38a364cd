package intent

// --- Catalog Domain Model ---

// Record is one known intent: its unique tag, its representative embedding,
// and the candidate replies for it.
type Record struct {
	Tag       string
	Embedding []float32
	Responses []string
}

// Catalog is the immutable table of known intents. It is loaded once at
// startup and shared read-only by all concurrent requests.
type Catalog struct {
	Model     string // embedding model the vectors were produced with
	Dimension int    // shared vector dimension of all records
	Records   []Record
}

// --- UseCase Inputs ---

type MatchInput struct {
	Text string
}

// --- UseCase Outputs ---

// MatchOutput is the ephemeral result of one match. Response is already
// selected from the matched record's candidates.
type MatchOutput struct {
	Tag        string
	Confidence float64 // in [0, 1]
	Response   string
}
