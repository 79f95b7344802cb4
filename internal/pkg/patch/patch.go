package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Prefer returns a fresh copy of override when set, otherwise a fresh copy of current.
// The result never aliases either argument.
func Prefer[T any](override, current *T) *T {
	switch {
	case override != nil:
		v := *override
		return &v
	case current != nil:
		v := *current
		return &v
	default:
		return nil
	}
}

// Of returns a pointer to v.
func Of[T any](v T) *T {
	return &v
}
