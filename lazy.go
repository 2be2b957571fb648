package parsec

import (
	"sync"
)

// Lazy defers construction of a parser until it is first applied and
// memoises the result. Fix ties a single parser to its own recursive
// argument; Lazy is the more general tool a grammar with several named,
// mutually referencing rules needs, where each rule's parser has to be
// buildable before the rules it refers to exist yet.
//
// The thunk runs at most once, even under concurrent first use.
func Lazy[A any](thunk func() Parser[A]) Parser[A] {
	var once sync.Once
	var p Parser[A]

	return func(s *Scanner) (A, error) {
		once.Do(func() {
			p = thunk()
		})

		return p(s)
	}
}

// Must converts a function that takes a single argument
// and returns a single value and error and returns a function
// that instead of returning an error, panics when it encounters an
// error.
//
// This function is provided as a convenience for working with
// existing utilities that can't rely on validated data being
// passed in as arguments. Given that this function will likely
// be used alongside the `Lift` combinator, it is assumed that
// any input passed into a function fed through Must will have
// already been validated and ensure that the function f will
// not return an error.
func Must[A, B any](f func(A) (B, error)) func(A) B {
	return func(a A) B {
		b, err := f(a)
		if err != nil {
			panic(err)
		}

		return b
	}
}

func negate[T any](f func(T) bool) func(T) bool {
	return func(t T) bool {
		return !f(t)
	}
}
