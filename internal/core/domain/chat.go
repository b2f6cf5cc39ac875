package domain

// Message roles understood by every remote model.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage represents a single message in a turn.
type ChatMessage struct {
	// Role is one of RoleSystem, RoleUser or RoleAssistant.
	Role string

	// Content is the message text.
	Content string
}

// DefaultGroundingPreamble is the instruction placed before the corpus JSON
// unless the user overrides it.
const DefaultGroundingPreamble = `You are a helpful assistant that answers questions using the dataset below.
Answer strictly from this data and do not rely on outside knowledge.
If the information is not available, respond with 'I don't know'.`

// GroundingContext is the system instruction for a chat session.
// It is built once from the persisted corpus and never changes afterwards.
type GroundingContext struct {
	// CorpusPath is the file the corpus was read from.
	CorpusPath string

	// RecordCount is the number of records in the corpus.
	RecordCount int

	// Instruction is the full system instruction including the corpus JSON.
	Instruction string
}

// Turn builds the message list for one stateless exchange.
func (g *GroundingContext) Turn(text string) []ChatMessage {
	return []ChatMessage{
		{Role: RoleSystem, Content: g.Instruction},
		{Role: RoleUser, Content: text},
	}
}

// ChatResponse is the result of one model invocation.
// At most one of Accounting and Metadata is normally set.
type ChatResponse struct {
	// Content is the model's text reply.
	Content string

	// Model is the model that produced the reply.
	Model string

	// Accounting is provider-side token and cost accounting, if available.
	Accounting *TokenAccounting

	// Metadata is the usage record embedded in the response, if available.
	Metadata *UsageMetadata
}

// TokenAccounting is token and cost accounting reported for an invocation.
type TokenAccounting struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int

	// TotalCost is the estimated cost in USD.
	TotalCost float64
}

// UsageMetadata is the usage record embedded in a model response.
type UsageMetadata struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
