package endpoints

import (
	"context"

	js "github.com/piotrkosecki/endpoints/jsonschema"
)

// Schema describes how values of type A map to and from the JSON-like
// representation (map[string]any, []any, string, json.Number, float64, bool,
// nil). One composed Schema value serves both interpreter modes: the codec
// (Decode/Encode) and the descriptor (JSONSchema).
//
// Schemas are immutable after construction and safe to share across
// goroutines; composition always produces a new value.
type Schema[A any] interface {
	// Decode transforms a representation value into A. All failures are
	// reported as Issues; the first failure short-circuits the decode.
	Decode(ctx context.Context, v any) (A, error)
	// Encode transforms A into a representation value. Encode is total for
	// well-typed input; errors can only arise from construction-time defects
	// surfaced lazily (see ChoiceTagged).
	Encode(ctx context.Context, a A) (any, error)
	// JSONSchema projects the schema into its descriptor document.
	JSONSchema() (*js.Schema, error)
}

// Unit is the trivial payload carried by EmptyRecord.
type Unit struct{}

// Pair is the product payload produced by Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf builds a Pair. It reads better than a composite literal when the
// type arguments are inferable.
func PairOf[A, B any](a A, b B) Pair[A, B] { return Pair[A, B]{First: a, Second: b} }

// Either is the sum payload produced by ChoiceTagged. Exactly one side is
// meaningful, selected by IsRight.
type Either[A, B any] struct {
	Left    A
	Right   B
	IsRight bool
}

// LeftOf builds the left alternative.
func LeftOf[A, B any](a A) Either[A, B] { return Either[A, B]{Left: a} }

// RightOf builds the right alternative.
func RightOf[A, B any](b B) Either[A, B] { return Either[A, B]{Right: b, IsRight: true} }

// Option carries the payload of OptField: an absent key decodes to None.
type Option[A any] struct {
	value   A
	present bool
}

// Some wraps a present value.
func Some[A any](a A) Option[A] { return Option[A]{value: a, present: true} }

// None is the absent value.
func None[A any]() Option[A] { return Option[A]{} }

// IsSome reports whether the option holds a value.
func (o Option[A]) IsSome() bool { return o.present }

// Get returns the value and whether it is present.
func (o Option[A]) Get() (A, bool) { return o.value, o.present }

// OrElse returns the value when present, fallback otherwise.
func (o Option[A]) OrElse(fallback A) A {
	if o.present {
		return o.value
	}
	return fallback
}

// Invmap transforms a Schema's payload type via a pair of functions that are
// mutually inverse in practice. The wire shape is unchanged; decode runs s
// then f, encode runs g then s. Round-trip correctness of f and g is the
// caller's responsibility and is not verified.
func Invmap[A, B any](s Schema[A], f func(A) B, g func(B) A) Schema[B] {
	return invmapped[A, B]{base: s, f: f, g: g}
}

type invmapped[A, B any] struct {
	base Schema[A]
	f    func(A) B
	g    func(B) A
}

func (m invmapped[A, B]) Decode(ctx context.Context, v any) (B, error) {
	a, err := m.base.Decode(ctx, v)
	if err != nil {
		var zero B
		return zero, err
	}
	return m.f(a), nil
}

func (m invmapped[A, B]) Encode(ctx context.Context, b B) (any, error) {
	return m.base.Encode(ctx, m.g(b))
}

func (m invmapped[A, B]) JSONSchema() (*js.Schema, error) { return m.base.JSONSchema() }

// Decode is a thin wrapper around Schema.Decode for call-site symmetry with
// the package-level Encode helper.
func Decode[A any](ctx context.Context, s Schema[A], v any) (A, error) {
	return s.Decode(ctx, v)
}

// Encode is a thin wrapper around Schema.Encode.
func Encode[A any](ctx context.Context, s Schema[A], a A) (any, error) {
	return s.Encode(ctx, a)
}

// SafeDecode decodes v into A, returning (zero, false) on error.
func SafeDecode[A any](ctx context.Context, s Schema[A], v any) (A, bool) {
	a, err := s.Decode(ctx, v)
	if err != nil {
		var zero A
		return zero, false
	}
	return a, true
}
