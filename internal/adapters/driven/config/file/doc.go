// Package file provides file-backed configuration adapters.
//
//   - ConfigStore: ~/.corpuschat/config.toml, read and written with go-toml
//   - PromptStore: ~/.corpuschat/prompts/*.txt, user-editable prompt overrides
package file
