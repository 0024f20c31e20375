package trivia

// The catalog is presented zero-based to clients while the store keys
// categories from 1. The offset lives here and nowhere else; every boundary
// crossing goes through these two functions so the shift cannot be applied
// twice.

// StoredKey maps a client-visible category ordinal to the stored key.
// No bounds check: an ordinal with no matching category yields an empty
// result set downstream.
func StoredKey(clientOrdinal int) int {
	return clientOrdinal + 1
}

// ClientOrdinal maps a stored category key back to the client-visible ordinal.
func ClientOrdinal(storedKey int) int {
	return storedKey - 1
}
