package driven

// PromptStore provides access to user-editable prompt templates.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	// Unknown names return an error; known names fall back to their default.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	Reload()
}

// Well-known prompt names.
const (
	// PromptGrounding is the preamble placed before the corpus JSON in
	// every chat session's system instruction. It has no placeholders.
	PromptGrounding = "grounding"
)
