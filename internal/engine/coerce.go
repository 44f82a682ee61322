package engine

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/rgrange/sift/internal/schema"
)

// Accepted layouts for date/time coercion, tried in order.
var (
	dateTimeLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}
	dateLayouts     = []string{"2006-01-02"}
	timeLayouts     = []string{"15:04:05", "15:04"}
)

// coerce interprets a raw request value according to the field's type.
// The raw string is NFC-normalized first so visually identical inputs
// compare equal regardless of the client's Unicode composition.
//
// Returned values are Go native types: string, int64, float64, bool, or
// time.Time. Time-of-day values stay strings in canonical HH:MM:SS
// form, since database drivers have no bare time-of-day type.
func coerce(f *schema.Field, raw string) (any, error) {
	raw = norm.NFC.String(raw)

	switch f.Kind() {
	case schema.KindString:
		return raw, nil

	case schema.KindBoolean:
		return coerceBool(raw)

	case schema.KindRelation:
		// Relation filters compare the foreign key column. Keys are
		// usually integral, but string keys pass through untouched.
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return n, nil
		}
		return raw, nil

	default:
		return coerceNumeric(f.Type, raw)
	}
}

// coerceBool maps the synthetic True/False choice set: presence ("1",
// "true") is true, absence ("", "0", "false") is false.
func coerceBool(raw string) (any, error) {
	switch raw {
	case "1", "true", "True":
		return true, nil
	case "", "0", "false", "False":
		return false, nil
	default:
		return nil, fmt.Errorf("not a boolean choice")
	}
}

func coerceNumeric(t schema.Type, raw string) (any, error) {
	switch t {
	case schema.TypeInt, schema.TypeBigInt, schema.TypePrimaryKey:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("not an integer")
		}
		return n, nil

	case schema.TypeFloat, schema.TypeDouble, schema.TypeDecimal:
		x, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("not a number")
		}
		return x, nil

	case schema.TypeDate:
		return parseTime(raw, dateLayouts)

	case schema.TypeDateTime:
		return parseTime(raw, dateTimeLayouts)

	case schema.TypeTime:
		t, err := parseTime(raw, timeLayouts)
		if err != nil {
			return nil, err
		}
		return t.(time.Time).Format("15:04:05"), nil

	default:
		// Unknown types classified numeric: try integer, then float.
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return n, nil
		}
		x, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("not numeric")
		}
		return x, nil
	}
}

func parseTime(raw string, layouts []string) (any, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return nil, fmt.Errorf("not a valid timestamp")
}
