// Package domain defines the core business entities for corpuschat.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawRecord: Undecoded payload returned by a record fetcher
//   - Record: A canonical, flat record produced by a mapper
//   - PokemonRecord, CharacterRecord: The two canonical record shapes
//   - GroundingContext: The instruction that embeds a whole corpus
//   - ChatResponse: Model output plus optional usage accounting
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
