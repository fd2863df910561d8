package kasharian

// Store is the persistent key-value boundary the ledger writes through. It is
// deliberately opaque: a single fixed key holds the serialized collection,
// and the ledger treats the store as synchronous and always available.
type Store interface {
	// Get returns the value stored under key, with ok false when the key
	// holds no value.
	Get(key string) (value string, ok bool, err error)
	// Set writes the value under key, replacing any previous value.
	Set(key, value string) error
}
