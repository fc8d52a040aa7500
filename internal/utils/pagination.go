// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import (
	"math"
	"strconv"
	"strings"
)

// AtoiDefault converts a string to an int using strconv.Atoi.
// If the string is empty or cannot be parsed as an integer,
// it returns the provided default value instead.
//
// Example:
//
//	n := utils.AtoiDefault("42", 0) // returns 42
//	n = utils.AtoiDefault("", 10)   // returns 10
//	n = utils.AtoiDefault("x", 5)   // returns 5
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

// Uint32Default converts a string to a uint32 with JavaScript's ToUint32
// semantics: fractional values truncate toward zero, and values outside
// [0, 2^32) wrap modulo 2^32, so negatives land near the top of the range.
// An empty or unparseable string yields the default.
//
// Example:
//
//	s := utils.Uint32Default("7", 1)          // returns 7
//	s = utils.Uint32Default("3.7", 1)         // returns 3
//	s = utils.Uint32Default("-1", 1)          // returns 4294967295
//	s = utils.Uint32Default("4294967301", 1)  // returns 5 (wraps mod 2^32)
//	s = utils.Uint32Default("", 1)            // returns 1
func Uint32Default(s string, def uint32) uint32 {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return def
	}
	if math.IsInf(f, 0) {
		return 0
	}
	m := math.Mod(math.Trunc(f), 1<<32)
	if m < 0 {
		m += 1 << 32
	}
	return uint32(m)
}
