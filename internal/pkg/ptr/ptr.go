package ptr

func Of[T any](v T) *T {
	return &v
}

// NonEmpty returns nil for an empty string so optional JSON fields are omitted.
func NonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
