package test

import "go.uber.org/mock/gomock"

// cond adapts typed predicates to gomock.Cond, which takes func(any) bool
// in go.uber.org/mock v0.4 (the newest version buildable with Go 1.21).
func cond[T any](fn func(T) bool) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		v, ok := x.(T)
		return ok && fn(v)
	})
}
