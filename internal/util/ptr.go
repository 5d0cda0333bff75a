package util

// Ptr returns a pointer to v, for optional fields set from literals.
func Ptr[T any](v T) *T {
	return &v
}

// NonZero returns nil for the zero value of T and a pointer to v otherwise.
// Used where an empty value means "absent".
func NonZero[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}
