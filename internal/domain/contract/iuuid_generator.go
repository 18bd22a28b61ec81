package contract

// IUUIDGenerator generates unique identifiers for new documents.
type IUUIDGenerator interface {
	NewUUID() string
}
