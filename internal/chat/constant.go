package chat

// Well-known intent tags with dialogue semantics.
const (
	// TagOrderStatus arms the order-id follow-up on the next user message.
	TagOrderStatus = "order_status"

	// TagOrderStatusFollowup marks a reply synthesized from a captured
	// order id, bypassing the matcher.
	TagOrderStatusFollowup = "order_status_followup"

	// TagUnknown is reported to callers for low-confidence matches. It is
	// presentation-only and never stored as a session's last tag.
	TagUnknown = "unknown"
)
