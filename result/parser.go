package result

import parsec "github.com/avrilgo/parsec"

// Unwrap takes a parsec Parser returning a Result-wrapped value
// and unwraps the returned result, passing the potentially wrapped
// error through the Parser's error handling-chain.
func Unwrap[A any](p parsec.Parser[Result[A]]) parsec.Parser[A] {
	return func(s *parsec.Scanner) (A, error) {
		res, err := p(s)
		if err != nil {
			var zero A
			return zero, err
		}

		return res.Unwrap()
	}
}
