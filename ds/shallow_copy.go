package ds

// ShallowCopy keeps nil as nil, so an unset byte field stays unset.
func ShallowCopy[T any](ts []T) []T {
	if ts == nil {
		return nil
	}
	return append(make([]T, 0, len(ts)), ts...)
}
