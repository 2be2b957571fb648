package parsec

import (
	"errors"

	"go.uber.org/multierr"
)

// Or runs `p` and returns the result if it succeds.
// If `p` fails, the input will be reset and `q` will
// run instead.
func Or[A any](p Parser[A], q Parser[A]) Parser[A] {
	return Try(func(s *Scanner) (A, error) {
		res, err1 := Try(p)(s)
		if err1 == nil {
			return res, nil
		}

		res, err2 := q(s)
		if err2 != nil {
			var zero A
			return zero, multierr.Combine(err1, err2)
		}

		return res, nil
	})
}

// Best runs every parser in `ps` against the same starting input and
// returns the result of whichever one consumed the most input. Ties go
// to the earliest parser in `ps`. If every parser fails, Best fails
// with their combined errors.
//
// Unlike Or and Choice, which stop at the first success, Best always
// runs the full set of alternatives, so it is the most expensive of
// the three — reach for Or/Choice when first-match is the right
// semantics and reserve Best for grammars where alternation must be
// order-independent (e.g. the BNF compiler's rule alternatives).
func Best[A any](ps ...Parser[A]) Parser[A] {
	return Try(func(s *Scanner) (A, error) {
		checkpoint := s.pos

		var (
			found   bool
			best    A
			bestEnd int
			errs    error
		)

		for _, p := range ps {
			s.pos = checkpoint

			val, err := Try(p)(s)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}

			if !found || s.pos > bestEnd {
				found = true
				best = val
				bestEnd = s.pos
			}
		}

		if !found {
			var zero A
			return zero, errs
		}

		s.pos = bestEnd
		return best, nil
	})
}

// Choice runs each parser in `ps` in order until
// one succeeds and returns the result. In the case
// that none of the parsers succeeds, then the parser
// will fail with the message `msg`.
func Choice[A any](msg string, ps ...Parser[A]) Parser[A] {
	return Try(func(s *Scanner) (A, error) {
		for _, p := range ps {
			val, err := Try(p)(s)
			if err == nil {
				return val, nil
			}
		}

		var zero A
		return zero, errors.New(msg)
	})
}
