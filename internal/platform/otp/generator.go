// Package otp generates numeric one-time codes.
package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Digits is the length of every generated code.
const Digits = 6

var upper = big.NewInt(1_000_000)

// Generator draws codes uniformly from 000000-999999.
type Generator struct{}

// NewGenerator creates a new Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate returns a zero-padded 6-digit code.
func (Generator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, upper)
	if err != nil {
		return "", fmt.Errorf("failed to read random source: %w", err)
	}
	return fmt.Sprintf("%0*d", Digits, n.Int64()), nil
}
