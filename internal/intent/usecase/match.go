package usecase

import (
	"context"
	"fmt"
	"math"

	"intent-chat-service/internal/intent"
)

// Match embeds the input text and returns the closest catalog intent.
func (uc *implUseCase) Match(ctx context.Context, input intent.MatchInput) (intent.MatchOutput, error) {
	vectors, err := uc.embedder.Embed(ctx, []string{input.Text})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Match Embed: %v", err)
		return intent.MatchOutput{}, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(vectors) == 0 {
		return intent.MatchOutput{}, fmt.Errorf("embedder returned no vector")
	}

	return uc.matchVector(ctx, vectors[0])
}

// matchVector scans every catalog record and selects the one with maximum
// cosine similarity. Ties keep the first record in catalog order, so the
// same catalog and query always yield the same tag.
func (uc *implUseCase) matchVector(ctx context.Context, query []float32) (intent.MatchOutput, error) {
	if len(query) != uc.catalog.Dimension {
		return intent.MatchOutput{}, fmt.Errorf("%w: got %d, catalog has %d",
			intent.ErrDimensionMismatch, len(query), uc.catalog.Dimension)
	}

	bestIdx := 0
	bestSim := math.Inf(-1)
	for i := range uc.catalog.Records {
		sim := cosineSimilarity(query, uc.catalog.Records[i].Embedding)
		if sim > bestSim {
			bestSim = sim
			bestIdx = i
		}
	}

	best := uc.catalog.Records[bestIdx]
	confidence := clamp01((bestSim + 1) / 2)

	uc.l.Debugf(ctx, "uc.Match: tag=%s similarity=%.4f confidence=%.4f", best.Tag, bestSim, confidence)

	return intent.MatchOutput{
		Tag:        best.Tag,
		Confidence: confidence,
		Response:   uc.pickResponse(best.Responses),
	}, nil
}

// pickResponse selects one candidate uniformly at random.
func (uc *implUseCase) pickResponse(responses []string) string {
	if len(responses) == 0 {
		return NoAnswerResponse
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	return responses[uc.rng.Intn(len(responses))]
}

// cosineSimilarity computes the cosine of the angle between a and b in
// float64 precision. Zero vectors score as fully dissimilar rather than NaN.
func cosineSimilarity(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return -1
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
