package store

import "context"

// Sender labels one side of a transcript turn.
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// ChatRecord is one resolved question/answer pair. Records are
// append-only: never updated, never deleted.
type ChatRecord struct {
	ID       int64
	Session  string
	Question string
	Answer   string
}

// Turn is one entry of a reconstructed transcript.
type Turn struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// Store is the durable history of answered questions. (session, question)
// is matched on exact strings with no normalization; the first recorded
// answer for a pair wins on lookup.
type Store interface {
	// Lookup returns the answer recorded for (session, question),
	// or found=false when the pair has never been answered.
	Lookup(ctx context.Context, session, question string) (answer string, found bool, err error)

	// Record appends a new chat record and returns it with its
	// store-assigned id.
	Record(ctx context.Context, session, question, answer string) (ChatRecord, error)

	// ListSessions returns the distinct session names across all
	// records, in unspecified order.
	ListSessions(ctx context.Context) ([]string, error)

	// History reconstructs the transcript of one session in storage
	// order: a user turn then a bot turn per record.
	History(ctx context.Context, session string) ([]Turn, error)

	Close() error
}
