package parsec

// ParseString is the library's entry point for consumers who just have
// a string and a parser: it builds a Scanner over in, runs p once, and
// reports the produced value together with whatever suffix of in was
// left unconsumed. The third return value is false when p failed, in
// which case the other two are the zero value and the empty string.
func ParseString[A any](p Parser[A], in string) (A, string, bool) {
	s := NewScanner(in)

	val, err := p(s)
	if err != nil {
		var zero A
		return zero, "", false
	}

	return val, s.Remaining(), true
}
