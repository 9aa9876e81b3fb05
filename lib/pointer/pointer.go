package pointer

// To returns a pointer to a copy of v.
// Handy for filling optional fields in literals.
func To[T any](v T) *T { return &v }

// Deref returns the value p points to, or fallback if p is nil.
func Deref[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
