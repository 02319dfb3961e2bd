package cache

// Store is a best-effort key-value store for last-known-good snapshots.
// Save never reports failure to the caller; Load reports whether a usable
// value was decoded into dst.
type Store interface {
	Save(key string, value any)
	Load(key string, dst any) bool
}
