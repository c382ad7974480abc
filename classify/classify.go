// Package classify contains the numeric predicates used to describe a number.
//
// Every predicate is total over int64, including math.MinInt64. Inputs that have
// no meaning for a predicate (negative numbers for primality or perfection)
// resolve to false instead of an error, so a single odd input can never fail a
// whole classification.
package classify

import (
	"math/big"
	"math/bits"
	"strconv"

	"NumberClassifierService/models"
)

// Property tags reported by Properties.
const (
	PropertyArmstrong = "armstrong"
	PropertyEven      = "even"
	PropertyOdd       = "odd"
)

const (
	// trialDivisionLimit is the bound below which IsPrime scans divisors directly.
	trialDivisionLimit = int64(1) << 32
	// divisorScanLimit is the bound below which IsPerfect sums divisor pairs.
	divisorScanLimit = int64(1) << 40
)

// Magnitude returns |n| as an unsigned value so that math.MinInt64 does not overflow.
func Magnitude(n int64) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}
	return uint64(n)
}

// Digits returns the decimal digits of |n|, most significant first.
func Digits(n int64) []int {
	s := strconv.FormatUint(Magnitude(n), 10)
	digits := make([]int, len(s))
	for i, c := range s {
		digits[i] = int(c - '0')
	}
	return digits
}

// IsPrime reports whether n is a prime number. Numbers below 2, negatives
// included, are never prime.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n < trialDivisionLimit {
		for i := int64(2); i*i <= n; i++ {
			if n%i == 0 {
				return false
			}
		}
		return true
	}
	// ProbablyPrime is exact for every input below 2^64.
	return big.NewInt(n).ProbablyPrime(0)
}

// IsPerfect reports whether n equals the sum of its proper divisors.
//
// Small inputs are checked by pairing every divisor i <= sqrt(n) with n/i.
// Larger inputs are checked against the Euclid–Euler form 2^(p-1)(2^p-1) with
// 2^p-1 prime, which covers every perfect number that fits in an int64.
func IsPerfect(n int64) bool {
	if n < 2 {
		return false
	}
	if n <= divisorScanLimit {
		return properDivisorSum(n) == n
	}
	k := bits.TrailingZeros64(uint64(n))
	if k == 0 {
		return false
	}
	odd := uint64(n) >> k
	return odd == (uint64(1)<<(k+1))-1 && IsPrime(int64(odd))
}

func properDivisorSum(n int64) int64 {
	sum := int64(1)
	for i := int64(2); i*i <= n; i++ {
		if n%i != 0 {
			continue
		}
		sum += i
		if j := n / i; j != i {
			sum += j
		}
	}
	return sum
}

// IsArmstrong reports whether |n| equals the sum of its digits, each raised to
// the power of the digit count.
func IsArmstrong(n int64) bool {
	mag := Magnitude(n)
	digits := Digits(n)
	power := len(digits)

	var sum uint64
	for _, d := range digits {
		sum += pow(uint64(d), power)
		if sum > mag {
			return false
		}
	}
	return sum == mag
}

// pow only sees single digits and at most 19 as the exponent; 9^19 fits a
// uint64 and IsArmstrong stops summing before the total can wrap.
func pow(base uint64, exp int) uint64 {
	result := uint64(1)
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}

// Properties returns the property tags of n. The armstrong tag, when present,
// always comes before the parity tag, and exactly one of even/odd is present.
func Properties(n int64) []string {
	properties := make([]string, 0, 2)
	if IsArmstrong(n) {
		properties = append(properties, PropertyArmstrong)
	}
	if n%2 == 0 {
		properties = append(properties, PropertyEven)
	} else {
		properties = append(properties, PropertyOdd)
	}
	return properties
}

// DigitSum returns the sum of the decimal digits of |n|.
func DigitSum(n int64) int {
	sum := 0
	for _, d := range Digits(n) {
		sum += d
	}
	return sum
}

// Classify runs every predicate against n. The FunFact field is left empty for
// the caller to fill in.
func Classify(n int64) models.ClassificationResult {
	return models.ClassificationResult{
		Number:     n,
		IsPrime:    IsPrime(n),
		IsPerfect:  IsPerfect(n),
		Properties: Properties(n),
		DigitSum:   DigitSum(n),
	}
}
