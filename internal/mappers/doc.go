// Package mappers provides implementations of the RecordMapper interface
// for each ingestible dataset. A mapper flattens one nested source payload
// into the canonical record shape defined in the domain package.
//
// Mappers are registered with the Registry at startup.
package mappers
