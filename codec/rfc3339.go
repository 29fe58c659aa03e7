// Package codec provides derived schemas bridging wire representations and
// richer domain types.
package codec

import (
	"context"
	"time"

	endpoints "github.com/piotrkosecki/endpoints"
	js "github.com/piotrkosecki/endpoints/jsonschema"
)

// TimeRFC3339 returns a Schema mapping RFC3339 strings to time.Time. The
// wire shape is a plain string; decode failures surface as invalid_format.
func TimeRFC3339() endpoints.Schema[time.Time] { return rfc3339Schema{} }

type rfc3339Schema struct{}

func (rfc3339Schema) Decode(ctx context.Context, v any) (time.Time, error) {
	s, err := endpoints.String().Decode(ctx, v)
	if err != nil {
		return time.Time{}, err
	}
	t, perr := parseRFC3339(s)
	if perr != nil {
		return time.Time{}, endpoints.Issues{{Path: "/", Code: endpoints.CodeInvalidFormat, Message: "invalid RFC3339 time", Cause: perr}}
	}
	return t, nil
}

func (rfc3339Schema) Encode(ctx context.Context, t time.Time) (any, error) {
	return formatRFC3339Canonical(t), nil
}

func (rfc3339Schema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "string", Format: "date-time"}, nil
}

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

func formatRFC3339Canonical(t time.Time) string {
	// Normalize to UTC and format using RFC3339Nano (Go trims trailing zeros)
	return t.UTC().Format(time.RFC3339Nano)
}
