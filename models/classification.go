// Package models contains the data models returned by the classification endpoint.
package models

// ClassificationResult represents the properties derived from a single number.
// ClassificationResult has the following properties:
// - Number: The parsed input number.
// - IsPrime: Whether the number is prime.
// - IsPerfect: Whether the number equals the sum of its proper divisors.
// - Properties: The armstrong tag (if any) followed by the parity tag.
// - DigitSum: The sum of the decimal digits of the number's magnitude.
// - FunFact: A trivia sentence from the numbers API or the local fallback.
type ClassificationResult struct {
	Number     int64    `json:"number"`
	IsPrime    bool     `json:"is_prime"`
	IsPerfect  bool     `json:"is_perfect"`
	Properties []string `json:"properties"`
	DigitSum   int      `json:"digit_sum"`
	FunFact    string   `json:"fun_fact"`
}
