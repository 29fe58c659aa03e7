package endpoints

import (
	"context"
	"encoding/json"
	"math"
	"strconv"

	"github.com/piotrkosecki/endpoints/i18n"
	js "github.com/piotrkosecki/endpoints/jsonschema"
)

// String returns the string schema.
func String() Schema[string] { return stringSchema{} }

// Boolean returns the bool schema.
func Boolean() Schema[bool] { return boolSchema{} }

// Int returns the int schema. Fractional or out-of-range numbers fail with
// CodeInvalidType.
func Int() Schema[int] { return intSchema{} }

// Long returns the int64 schema. Values arrive as json.Number from the wire,
// so the full 64-bit range survives without float rounding.
func Long() Schema[int64] { return longSchema{} }

// Float64 returns the float64 schema.
func Float64() Schema[float64] { return floatSchema{} }

// Decimal returns the arbitrary-precision number schema. The textual form of
// the number is preserved end to end as json.Number.
func Decimal() Schema[json.Number] { return decimalSchema{} }

// StringEnum returns a string schema restricted to the given values.
func StringEnum(values ...string) Schema[string] {
	return enumSchema{values: append([]string{}, values...)}
}

// ArrayOf returns the schema for a homogeneous sequence of elem. Element
// failures are rebased under the failing index ("/1") and short-circuit the
// rest of the sequence.
func ArrayOf[A any](elem Schema[A]) Schema[[]A] { return arraySchema[A]{elem: elem} }

type stringSchema struct{}

func (stringSchema) Decode(ctx context.Context, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", Issues{{Path: "/", Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected string"}}
	}
	return s, nil
}

func (stringSchema) Encode(ctx context.Context, s string) (any, error) { return s, nil }

func (stringSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "string"}, nil }

type boolSchema struct{}

func (boolSchema) Decode(ctx context.Context, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, Issues{{Path: "/", Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected boolean"}}
	}
	return b, nil
}

func (boolSchema) Encode(ctx context.Context, b bool) (any, error) { return b, nil }

func (boolSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "boolean"}, nil }

type intSchema struct{}

func (intSchema) Decode(ctx context.Context, v any) (int, error) {
	i64, err := decodeInt64(v)
	if err != nil {
		return 0, err
	}
	if i64 < math.MinInt || i64 > math.MaxInt {
		return 0, Issues{{Path: "/", Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "int overflow"}}
	}
	return int(i64), nil
}

func (intSchema) Encode(ctx context.Context, i int) (any, error) {
	return json.Number(strconv.Itoa(i)), nil
}

func (intSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "integer"}, nil }

type longSchema struct{}

func (longSchema) Decode(ctx context.Context, v any) (int64, error) {
	return decodeInt64(v)
}

func (longSchema) Encode(ctx context.Context, i int64) (any, error) {
	return json.Number(strconv.FormatInt(i, 10)), nil
}

func (longSchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "integer", Format: "int64"}, nil
}

// decodeInt64 accepts the wire forms a JSON driver can produce for numbers
// (json.Number in UseNumber mode, float64 otherwise) plus Go ints for
// hand-built representation trees.
func decodeInt64(v any) (int64, error) {
	switch n := v.(type) {
	case json.Number:
		i64, err := n.Int64()
		if err != nil {
			return 0, Issues{{Path: "/", Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected integer", Cause: err}}
		}
		return i64, nil
	case float64:
		if math.Trunc(n) != n {
			return 0, Issues{{Path: "/", Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "fractional part not allowed"}}
		}
		return int64(n), nil
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	default:
		return 0, Issues{{Path: "/", Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected integer"}}
	}
}

type floatSchema struct{}

func (floatSchema) Decode(ctx context.Context, v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case json.Number:
		f64, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return 0, Issues{{Path: "/", Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected number", Cause: err}}
		}
		return f64, nil
	case int:
		return float64(n), nil
	default:
		return 0, Issues{{Path: "/", Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected number"}}
	}
}

func (floatSchema) Encode(ctx context.Context, f float64) (any, error) { return f, nil }

func (floatSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "number"}, nil }

type decimalSchema struct{}

func (decimalSchema) Decode(ctx context.Context, v any) (json.Number, error) {
	switch n := v.(type) {
	case json.Number:
		return n, nil
	case float64:
		return json.Number(strconv.FormatFloat(n, 'g', -1, 64)), nil
	case int:
		return json.Number(strconv.Itoa(n)), nil
	default:
		return json.Number(""), Issues{{Path: "/", Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected number"}}
	}
}

func (decimalSchema) Encode(ctx context.Context, n json.Number) (any, error) { return n, nil }

func (decimalSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "number"}, nil }

type enumSchema struct{ values []string }

func (e enumSchema) Decode(ctx context.Context, v any) (string, error) {
	s, err := (stringSchema{}).Decode(ctx, v)
	if err != nil {
		return "", err
	}
	for _, want := range e.values {
		if s == want {
			return s, nil
		}
	}
	return "", Issues{{
		Path:    "/",
		Code:    CodeInvalidEnum,
		Message: i18n.T(CodeInvalidEnum, nil),
		Hint:    "unexpected value: '" + s + "'",
		Params:  map[string]any{"got": s, "expected": e.values},
	}}
}

func (e enumSchema) Encode(ctx context.Context, s string) (any, error) { return s, nil }

func (e enumSchema) JSONSchema() (*js.Schema, error) {
	enum := make([]any, len(e.values))
	for i, v := range e.values {
		enum[i] = v
	}
	return &js.Schema{Type: "string", Enum: enum}, nil
}

type arraySchema[A any] struct{ elem Schema[A] }

func (s arraySchema[A]) Decode(ctx context.Context, v any) ([]A, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, Issues{{Path: "/", Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected array"}}
	}
	out := make([]A, 0, len(arr))
	for i, raw := range arr {
		a, err := s.elem.Decode(ctx, raw)
		if err != nil {
			return nil, rebase("/"+strconv.Itoa(i), err)
		}
		out = append(out, a)
	}
	return out, nil
}

func (s arraySchema[A]) Encode(ctx context.Context, as []A) (any, error) {
	out := make([]any, 0, len(as))
	for i, a := range as {
		v, err := s.elem.Encode(ctx, a)
		if err != nil {
			return nil, rebase("/"+strconv.Itoa(i), err)
		}
		out = append(out, v)
	}
	return out, nil
}

func (s arraySchema[A]) JSONSchema() (*js.Schema, error) {
	item, err := s.elem.JSONSchema()
	if err != nil {
		return nil, err
	}
	return &js.Schema{Type: "array", Items: item}, nil
}
