package wavefront

import (
	"strconv"
)

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func digitRun(b []byte, i int) int {
	start := i
	for i < len(b) && isDigit(b[i]) {
		i++
	}
	return i - start
}

// scanFloat returns the length of the longest prefix of b matching
// [-+]?(digits(.digits?)?|.digits)([eE][-+]?digits)?, or 0.
func scanFloat(b []byte) int {
	i := 0
	if i < len(b) && (b[i] == '-' || b[i] == '+') {
		i++
	}
	intDigits := digitRun(b, i)
	i += intDigits
	fracDigits := 0
	if i < len(b) && b[i] == '.' {
		fracDigits = digitRun(b, i+1)
		if intDigits > 0 || fracDigits > 0 {
			i += 1 + fracDigits
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0
	}
	if i < len(b) && (b[i] == 'e' || b[i] == 'E') {
		j := i + 1
		if j < len(b) && (b[j] == '-' || b[j] == '+') {
			j++
		}
		if n := digitRun(b, j); n > 0 {
			i = j + n
		}
	}
	return i
}

// ParseScalar reads one float32 at the start of b, after any leading spaces
// or tabs. It returns the value and the number of bytes consumed, including
// the skipped whitespace.
func ParseScalar(b []byte) (float32, int, error) {
	lead := 0
	for lead < len(b) && isBlank(b[lead]) {
		lead++
	}
	n := scanFloat(b[lead:])
	if n == 0 {
		return 0, 0, ErrMalformedNumber
	}
	f, err := strconv.ParseFloat(string(b[lead:lead+n]), 32)
	if err != nil {
		// Out of float32 range.
		return 0, 0, ErrMalformedNumber
	}
	return float32(f), lead + n, nil
}

// ParseIndex reads one integer of the form [-+]?digits at the start of b.
// Unlike ParseScalar it does not skip whitespace.
func ParseIndex(b []byte) (int, int, error) {
	i := 0
	if i < len(b) && (b[i] == '-' || b[i] == '+') {
		i++
	}
	n := digitRun(b, i)
	if n == 0 {
		return 0, 0, ErrMalformedNumber
	}
	v, err := strconv.Atoi(string(b[:i+n]))
	if err != nil {
		return 0, 0, ErrMalformedNumber
	}
	return v, i + n, nil
}
