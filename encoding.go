package bigdec

import (
	"bytes"
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"

	"github.com/joeycumines/go-utilpkg/jsonenc"
)

// parseSpecial converts the textual forms of NaN and the infinities, as
// produced by [Decimal.String], and falls back to [Parse] otherwise.
func parseSpecial(text string) (Decimal, error) {
	switch text {
	case "NaN":
		return NaN, nil
	case "Infinity", "+Infinity":
		return PosInf, nil
	case "-Infinity":
		return NegInf, nil
	}
	return Parse(text)
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// In addition to the grammar of [Parse], it accepts "NaN", "Infinity",
// "+Infinity" and "-Infinity".
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = parseSpecial(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// MarshalJSON implements [json.Marshaler] interface.
// A finite decimal is encoded as a JSON number if a float64 holding it
// is encoded back into exactly the same digits, and as a JSON string
// otherwise, so no precision is lost on the way to a JavaScript client.
// NaN and infinities are encoded as the strings "NaN", "Infinity" and
// "-Infinity".
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (d Decimal) MarshalJSON() ([]byte, error) {
	s := d.String()
	if d.form == finite {
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) {
			if b := jsonenc.AppendFloat64(nil, f); string(b) == s {
				return b, nil
			}
		}
	}
	return jsonenc.AppendString(nil, s), nil
}

// UnmarshalJSON implements [json.Unmarshaler] interface.
// Both JSON numbers and JSON strings are accepted; strings may also hold
// "NaN", "Infinity" and "-Infinity". A JSON null leaves d unchanged.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (d *Decimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return fmt.Errorf("%s: %w", data, ErrInvalidDecimal)
		}
		return d.UnmarshalText([]byte(s))
	}
	var err error
	*d, err = Parse(string(data))
	return err
}

// Scan implements the [sql.Scanner] interface.
// It accepts strings, byte slices, integers and floats.
// A NULL value leaves d unchanged.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Decimal) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case nil:
		return nil
	case string:
		*d, err = parseSpecial(value)
	case []byte:
		*d, err = parseSpecial(string(value))
	case int64:
		*d = NewFromInt64(value)
	case float64:
		*d = NewFromFloat64(value)
	default:
		err = fmt.Errorf("can't scan %T: %w", value, errUnsupported)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// NaN and infinities are not valid SQL numerics and result in an error.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Decimal) Value() (driver.Value, error) {
	if d.form != finite {
		return nil, fmt.Errorf("can't store %v: %w", d, errNonFinite)
	}
	return d.String(), nil
}
