package store

// Compose composes single-argument functions from right to left:
// Compose(f, g, h)(x) is f(g(h(x))).
//
// With no functions it returns the identity; with one it returns that
// function unchanged.
func Compose[T any](fns ...func(T) T) func(T) T {
	switch len(fns) {
	case 0:
		return func(v T) T { return v }
	case 1:
		return fns[0]
	}

	last := fns[len(fns)-1]
	rest := fns[:len(fns)-1]

	return func(v T) T {
		composed := last(v)
		for i := len(rest) - 1; i >= 0; i-- {
			composed = rest[i](composed)
		}
		return composed
	}
}
