// Package radix converts values between positional numeral systems with
// bases of magnitude 2 through 36, including negative bases.
//
// The package is split into two halves:
//
// Radix conversion:
// ParseNumeral and ToDecimal take a digit string in any supported base to an
// exact base-10 decimal value. FromDecimal takes a decimal value back to a
// digit sequence in any supported base. Integer parts use exact big-integer
// arithmetic; fractional parts use arbitrary-precision decimal arithmetic
// (cockroachdb/apd) with a precision context scoped to the single call.
//
// Cycle detection and formatting:
// The fractional expansion is generated by repeated multiply-and-floor
// against the target base. Each intermediate remainder feeds a CycleDetector;
// a recurring remainder means the digits since its first occurrence repeat
// forever, and the formatter wraps them in parentheses ("0.1" in base 10 is
// "0.(0022)" in base 3).
//
// Negative bases follow the principal-value convention: division is floor
// adjusted so every remainder lands in [0, |base|), which makes a sign
// marker unnecessary. Inputs in a negative base must not carry one.
//
// CRITICAL PATTERNS:
//
// Every conversion is a pure function of (value, source base, target base,
// precision). No package-level state, no I/O, no logging. Rounding contexts
// are created per call, never shared, so concurrent conversions need no
// coordination.
package radix
