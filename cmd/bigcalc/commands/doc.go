// Package commands defines the bigcalc CLI, which applies a single decimal
// operation per invocation and prints the result.
//
// Commands
//
//   - add, sub, mul, div, mod, pow   Binary arithmetic
//   - root                           n-th root
//   - sqrt                           Square root
//   - cmp                            Compare two values (-1, 0, 1 or NaN)
//   - round, trunc, floor, ceil      Round to --scale decimal places
//
// Operands use the decimal grammar of [bigdec.Parse] and may also be NaN,
// Infinity or -Infinity. Negative operands must follow a "--" separator so
// that they are not taken for flags.
//
// # Configuration
//
// Settings are read from BIGCALC_ROUNDING, BIGCALC_MAX_DP,
// BIGCALC_MAX_PRECISION, BIGCALC_LOG_LEVEL and BIGCALC_JSON, and can be
// overridden by the flags of the same name. Logs are JSON lines on stderr.
package commands
