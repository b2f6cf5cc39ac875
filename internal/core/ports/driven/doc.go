// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - RecordFetcher: Retrieves one raw record by identifier
//   - RecordMapper: Maps a raw record into its canonical shape
//   - CorpusStore: Persists and reads the corpus file
//   - RemoteModel: Hosted language model used by chat sessions
//   - ModelFactory: Creates a RemoteModel for a provider
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - RunStore: Ingestion run history. Without it, runs are not recorded.
//   - PromptStore: User-editable prompts. Without it, built-in prompts are used.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or mapper package
package driven
