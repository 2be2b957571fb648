package parsec

import (
	"strconv"
	"unicode"
)

// Char matches the single literal rune c.
func Char(c rune) Parser[rune] {
	return Rune(c)
}

// String matches the literal target string verbatim and returns it.
func String(target string) Parser[string] {
	return MatchString(target)
}

// Digits matches one or more decimal digits and returns them as a string.
func Digits() Parser[string] {
	return TakeWhile1(unicode.IsDigit)
}

// Integer matches an optionally-signed run of decimal digits and
// returns it as a base-10 int. "123", "+123", and "-123" all parse; a
// bare sign with no following digit fails.
func Integer() Parser[int] {
	sign := Option('+', Or(Rune('+'), Rune('-')))
	text := Consumed(DiscardLeft(sign, Digits()))

	return Lift(
		func(s string) int {
			n, err := strconv.Atoi(s)
			if err != nil {
				panic(err)
			}

			return n
		},
		text,
	)
}

// Double matches an optionally-signed decimal number: digits, an
// optional '.' followed by zero or more digits. "1", "1.", "1.5", and
// "-1.5" all parse. The decimal point is always '.'; there is no
// grouping separator and no exponent form.
func Double() Parser[float64] {
	sign := Option('+', Or(Rune('+'), Rune('-')))
	fraction := Option("", DiscardLeft(Rune('.'), Option("", Digits())))
	text := Consumed(DiscardLeft(sign, DiscardLeft(Digits(), fraction)))

	return Lift(
		func(s string) float64 {
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				panic(err)
			}

			return f
		},
		text,
	)
}

// Bool matches the literal "false" or "true" (case-sensitive) and
// returns the corresponding bool.
func Bool() Parser[bool] {
	return Or(
		DiscardLeft(MatchString("false"), Return(false)),
		DiscardLeft(MatchString("true"), Return(true)),
	)
}
