package domain

// Record is a canonical, flat record produced by a mapper.
// Concrete types control their own JSON key order through struct field order.
type Record interface {
	// RecordID returns the source identifier of the record.
	RecordID() int

	// RecordName returns the display name of the record.
	RecordName() string
}
