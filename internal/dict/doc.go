package dict

// Package dict implements word lookup: a corpus adapter over StarDict
// dictionaries, the persisted JSON definition cache, and the service that
// answers lookups cache-first.
