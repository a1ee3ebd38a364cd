package usecase

// Dialogue policy constants.
const (
	// ConfidenceThreshold is the cutoff below which the user sees the
	// fallback response instead of the matched one.
	ConfidenceThreshold = 0.45

	// FollowupConfidence is reported when the order-id override fires; the
	// reply is synthesized, not matched.
	FollowupConfidence = 0.95
)

// User-facing strings.
const (
	// FallbackResponse replaces a low-confidence match.
	FallbackResponse = "Sorry, I didn't understand. Could you rephrase or provide more details?"

	// FollowupResponseTemplate formats the reply for a captured order id.
	FollowupResponseTemplate = "Thanks — I found order **%s**. Current status: *In transit*. Estimated delivery: 2–4 business days."
)
