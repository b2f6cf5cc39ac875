// Package services implements the driving ports. Services depend only on
// domain types and driven ports; adapters are injected by the caller.
package services
