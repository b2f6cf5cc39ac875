// Package connectors wires record fetchers to the datasets they serve.
// Each dataset is read from a public REST catalogue that returns one JSON
// object per numeric identifier.
//
// Fetchers are created through the Factory at startup.
package connectors
