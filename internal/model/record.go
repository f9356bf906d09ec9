package model

// OwnedRecord is implemented by every vault record type. The owner
// reference is set at creation and never changes; it is the sole basis
// for access control.
type OwnedRecord interface {
	RecordID() int64
	OwnerID() int64
}
