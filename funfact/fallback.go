package funfact

import (
	"fmt"
	"strconv"
	"strings"

	"NumberClassifierService/classify"
)

// Fallback builds the local sentence used when the numbers API is unavailable.
//
// Armstrong numbers get the expansion of their digit powers, e.g.
// "153 is an Armstrong number because 1^3 + 5^3 + 3^3 = 153". Every other
// number gets its digit count, e.g. "The number 42 has 2 digits". The sign is
// never counted as a digit.
func Fallback(n int64) string {
	digits := classify.Digits(n)
	if !classify.IsArmstrong(n) {
		return fmt.Sprintf("The number %d has %d digits", n, len(digits))
	}

	power := strconv.Itoa(len(digits))
	terms := make([]string, len(digits))
	for i, d := range digits {
		terms[i] = strconv.Itoa(d) + "^" + power
	}
	return fmt.Sprintf("%d is an Armstrong number because %s = %d",
		n, strings.Join(terms, " + "), classify.Magnitude(n))
}
