package parsec

// Error wraps a function that can't fail into one returning a nil
// error alongside its value, so it can be handed to an API — such as
// the result package's Lift family — that expects an error-returning
// function.
func Error[A, B any](f func(A) B) func(A) (B, error) {
	return func(a A) (B, error) {
		return f(a), nil
	}
}

// Error2 is Error for 2-ary functions.
func Error2[A, B, C any](f func(A, B) C) func(A, B) (C, error) {
	return func(a A, b B) (C, error) {
		return f(a, b), nil
	}
}

// Error3 is Error for 3-ary functions.
func Error3[A, B, C, D any](f func(A, B, C) D) func(A, B, C) (D, error) {
	return func(a A, b B, c C) (D, error) {
		return f(a, b, c), nil
	}
}

// Error4 is Error for 4-ary functions.
func Error4[A, B, C, D, E any](f func(A, B, C, D) E) func(A, B, C, D) (E, error) {
	return func(a A, b B, c C, d D) (E, error) {
		return f(a, b, c, d), nil
	}
}

// Lift promotes a function into a parser. The returned parser first
// runs p, then transforms its result through f.
func Lift[A, B any](f func(A) B, p Parser[A]) Parser[B] {
	return func(s *Scanner) (B, error) {
		vala, err := p(s)
		if err != nil {
			var zero B
			return zero, err
		}

		return f(vala), nil
	}
}

// Lift2 promotes a 2-ary function into a parser over two sub-parsers,
// run in order.
func Lift2[A, B, C any](
	f func(A, B) C,
	p1 Parser[A],
	p2 Parser[B],
) Parser[C] {
	return func(s *Scanner) (C, error) {
		vala, err := p1(s)
		if err != nil {
			var zero C
			return zero, err
		}

		valb, err := p2(s)
		if err != nil {
			var zero C
			return zero, err
		}

		return f(vala, valb), nil
	}
}

// Lift3 promotes a 3-ary function into a parser over three sub-parsers,
// run in order.
func Lift3[A, B, C, D any](
	f func(A, B, C) D,
	p1 Parser[A],
	p2 Parser[B],
	p3 Parser[C],
) Parser[D] {
	return func(s *Scanner) (D, error) {
		vala, err := p1(s)
		if err != nil {
			var zero D
			return zero, err
		}

		valb, err := p2(s)
		if err != nil {
			var zero D
			return zero, err
		}

		valc, err := p3(s)
		if err != nil {
			var zero D
			return zero, err
		}

		return f(vala, valb, valc), nil
	}
}

// Lift4 promotes a 4-ary function into a parser over four sub-parsers,
// run in order.
func Lift4[A, B, C, D, E any](
	f func(A, B, C, D) E,
	p1 Parser[A],
	p2 Parser[B],
	p3 Parser[C],
	p4 Parser[D],
) Parser[E] {
	return func(s *Scanner) (E, error) {
		vala, err := p1(s)
		if err != nil {
			var zero E
			return zero, err
		}

		valb, err := p2(s)
		if err != nil {
			var zero E
			return zero, err
		}

		valc, err := p3(s)
		if err != nil {
			var zero E
			return zero, err
		}

		vald, err := p4(s)
		if err != nil {
			var zero E
			return zero, err
		}

		return f(vala, valb, valc, vald), nil
	}
}
