package chat

// --- Conversation Domain Model ---

// Role identifies who produced a turn.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Turn is one utterance in a conversation. Bot turns carry the intent tag
// that produced them; user turns carry no tag.
type Turn struct {
	Role Role
	Text string
	Tag  string
}

// State buckets the session by its last emitted bot tag. It drives the
// follow-up override: only StateOrderStatus arms the order-id short circuit.
type State int

const (
	StateNone State = iota // no bot turn yet
	StateOrderStatus
	StateOther
)

// StateForTag maps a last-emitted tag to its state bucket. The follow-up tag
// itself buckets as StateOther, so one captured order id disarms the rule.
func StateForTag(tag string) State {
	switch tag {
	case "":
		return StateNone
	case TagOrderStatus:
		return StateOrderStatus
	default:
		return StateOther
	}
}

// --- UseCase Inputs ---

type HandleMessageInput struct {
	Text string
}

// --- UseCase Outputs ---

type HandleMessageOutput struct {
	Tag        string
	Response   string
	Confidence float64
}

type HistoryOutput struct {
	Turns []Turn
}
