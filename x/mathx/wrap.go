package mathx

import "golang.org/x/exp/constraints"

// WrapAdd returns (idx + n) mod count for non-negative idx and n.
// count must be positive; callers validate that at construction.
func WrapAdd[T constraints.Integer](idx, n, count T) T {
	return (idx%count + n%count) % count
}

// WrapSub returns idx - n wrapped into [0, count). n is reduced modulo count
// before the subtraction so no intermediate value goes negative.
func WrapSub[T constraints.Integer](idx, n, count T) T {
	return (idx%count + count - n%count) % count
}

// WrapStep applies a signed step: positive steps advance, negative steps
// retreat by the magnitude.
func WrapStep[T constraints.Signed](idx, step, count T) T {
	if step < 0 {
		return WrapSub(idx, -step, count)
	}
	return WrapAdd(idx, step, count)
}
