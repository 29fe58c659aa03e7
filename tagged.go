package endpoints

import (
	"context"
	"strings"

	"github.com/piotrkosecki/endpoints/i18n"
	js "github.com/piotrkosecki/endpoints/jsonschema"
)

// DefaultDiscriminator is the reserved key naming the active alternative of a
// tagged union on the wire.
const DefaultDiscriminator = "type"

// alternative is one leaf of a choice tree: a tag plus enough of the
// underlying record to build descriptors and detect discriminator conflicts.
type alternative struct {
	tag        string
	fieldNames []string
	doc        func() (*js.Schema, error)
}

// Tagged is a Schema for one or more string-tagged record alternatives.
// TaggedRecord builds a single-alternative value; ChoiceTagged composes two
// Tagged values into their disjoint union, preserving left-to-right match
// priority.
type Tagged[A any] struct {
	disc string // empty means DefaultDiscriminator
	alts []alternative
	dec  func(ctx context.Context, tag string, obj map[string]any) (A, bool, error)
	enc  func(ctx context.Context, a A) (string, map[string]any, error)
}

var _ Schema[Unit] = Tagged[Unit]{}

// Discriminator returns the wire key holding the tag.
func (t Tagged[A]) Discriminator() string {
	if t.disc == "" {
		return DefaultDiscriminator
	}
	return t.disc
}

// Tags returns the known tags in match-priority order.
func (t Tagged[A]) Tags() []string {
	tags := make([]string, len(t.alts))
	for i, alt := range t.alts {
		tags[i] = alt.tag
	}
	return tags
}

// WithDiscriminator returns a copy using name as the discriminator key. A
// collision between name and a declared field surfaces on first use, or
// eagerly when the result is composed via ChoiceTagged.
func (t Tagged[A]) WithDiscriminator(name string) Tagged[A] {
	t.disc = name
	return t
}

// conflictIssues reports alternatives whose record declares a field named
// like the discriminator. Encoding such a record would silently clobber the
// tag, so it is rejected instead.
func (t Tagged[A]) conflictIssues() Issues {
	disc := t.Discriminator()
	var iss Issues
	for _, alt := range t.alts {
		for _, name := range alt.fieldNames {
			if name == disc {
				iss = AppendIssues(iss, Issue{
					Path:    "/" + disc,
					Code:    CodeDiscriminatorConflict,
					Message: i18n.T(CodeDiscriminatorConflict, nil),
					Hint:    "variant '" + alt.tag + "' declares a field named like the discriminator",
				})
			}
		}
	}
	return iss
}

func (t Tagged[A]) Decode(ctx context.Context, v any) (A, error) {
	var zero A
	if iss := t.conflictIssues(); len(iss) > 0 {
		return zero, iss
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return zero, Issues{{Path: "/", Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected object"}}
	}
	disc := t.Discriminator()
	raw, ok := obj[disc]
	if !ok {
		return zero, Issues{{Path: "/" + disc, Code: CodeDiscriminatorMissing, Message: i18n.T(CodeDiscriminatorMissing, nil), Hint: "discriminator missing"}}
	}
	tag, ok := raw.(string)
	if !ok {
		return zero, Issues{{Path: "/" + disc, Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected string discriminator"}}
	}
	a, matched, err := t.dec(ctx, tag, obj)
	if err != nil {
		return zero, err
	}
	if !matched {
		return zero, Issues{{
			Path:    "/" + disc,
			Code:    CodeDiscriminatorUnknown,
			Message: i18n.T(CodeDiscriminatorUnknown, nil),
			Hint:    "unknown variant: '" + tag + "', expected one of: " + strings.Join(t.Tags(), ", "),
			Params:  map[string]any{"got": tag, "expected": t.Tags()},
		}}
	}
	return a, nil
}

func (t Tagged[A]) Encode(ctx context.Context, a A) (any, error) {
	if iss := t.conflictIssues(); len(iss) > 0 {
		return nil, iss
	}
	tag, fields, err := t.enc(ctx, a)
	if err != nil {
		return nil, err
	}
	fields[t.Discriminator()] = tag
	return fields, nil
}

func (t Tagged[A]) JSONSchema() (*js.Schema, error) {
	disc := t.Discriminator()
	oneOf := make([]*js.Schema, 0, len(t.alts))
	for _, alt := range t.alts {
		base, err := alt.doc()
		if err != nil {
			return nil, err
		}
		variant := *base
		props := make(map[string]*js.Schema, len(base.Properties)+1)
		for k, v := range base.Properties {
			props[k] = v
		}
		props[disc] = &js.Schema{Type: "string", Const: alt.tag}
		variant.Properties = props
		variant.Required = append(append([]string{}, base.Required...), disc)
		oneOf = append(oneOf, &variant)
	}
	return &js.Schema{
		OneOf:         oneOf,
		Discriminator: &js.Discriminator{PropertyName: disc},
	}, nil
}

// TaggedRecord wraps a Record as one alternative of a union, remembering tag.
// The tag is fixed at creation.
func TaggedRecord[A any](r Record[A], tag string) Tagged[A] {
	return Tagged[A]{
		alts: []alternative{{tag: tag, fieldNames: r.FieldNames(), doc: r.JSONSchema}},
		dec: func(ctx context.Context, got string, obj map[string]any) (A, bool, error) {
			if got != tag {
				var zero A
				return zero, false, nil
			}
			a, err := r.dec(ctx, obj)
			return a, true, err
		},
		enc: func(ctx context.Context, a A) (string, map[string]any, error) {
			dst := make(map[string]any, len(r.fields))
			if err := r.enc(ctx, a, dst); err != nil {
				return "", nil, err
			}
			return tag, dst, nil
		},
	}
}

// ChoiceTagged composes two tagged schemas into their disjoint union. Decode
// matches the discriminator against ta's tags first, then tb's (pre-order of
// the underlying choice tree). Construction fails on duplicate tags, on
// differing discriminator keys, and on a field/discriminator collision.
func ChoiceTagged[A, B any](ta Tagged[A], tb Tagged[B]) (Tagged[Either[A, B]], error) {
	var zero Tagged[Either[A, B]]
	if ta.Discriminator() != tb.Discriminator() {
		return zero, Issues{{
			Path:    "/",
			Code:    CodeDiscriminatorConflict,
			Message: i18n.T(CodeDiscriminatorConflict, nil),
			Hint:    "both sides of a choice must share one discriminator key",
		}}
	}
	seen := make(map[string]struct{}, len(ta.alts))
	for _, alt := range ta.alts {
		seen[alt.tag] = struct{}{}
	}
	for _, alt := range tb.alts {
		if _, dup := seen[alt.tag]; dup {
			return zero, Issues{{
				Path:    "/" + ta.Discriminator(),
				Code:    CodeDuplicateTag,
				Message: i18n.T(CodeDuplicateTag, nil),
				Hint:    "tag declared on both sides of choice: '" + alt.tag + "'",
			}}
		}
	}
	out := Tagged[Either[A, B]]{
		disc: ta.disc,
		alts: append(append([]alternative{}, ta.alts...), tb.alts...),
		dec: func(ctx context.Context, tag string, obj map[string]any) (Either[A, B], bool, error) {
			a, matched, err := ta.dec(ctx, tag, obj)
			if matched || err != nil {
				return Either[A, B]{Left: a}, matched, err
			}
			b, matched, err := tb.dec(ctx, tag, obj)
			if matched || err != nil {
				return Either[A, B]{Right: b, IsRight: true}, matched, err
			}
			return Either[A, B]{}, false, nil
		},
		enc: func(ctx context.Context, e Either[A, B]) (string, map[string]any, error) {
			if e.IsRight {
				return tb.enc(ctx, e.Right)
			}
			return ta.enc(ctx, e.Left)
		},
	}
	if iss := out.conflictIssues(); len(iss) > 0 {
		return zero, iss
	}
	return out, nil
}

// MustChoiceTagged is ChoiceTagged panicking on construction errors.
func MustChoiceTagged[A, B any](ta Tagged[A], tb Tagged[B]) Tagged[Either[A, B]] {
	t, err := ChoiceTagged(ta, tb)
	if err != nil {
		panic(err)
	}
	return t
}

// InvmapTagged transforms a Tagged schema's payload type, preserving tags,
// discriminator and wire shape.
func InvmapTagged[A, B any](t Tagged[A], f func(A) B, g func(B) A) Tagged[B] {
	return Tagged[B]{
		disc: t.disc,
		alts: t.alts,
		dec: func(ctx context.Context, tag string, obj map[string]any) (B, bool, error) {
			a, matched, err := t.dec(ctx, tag, obj)
			if err != nil || !matched {
				var zero B
				return zero, matched, err
			}
			return f(a), true, nil
		},
		enc: func(ctx context.Context, b B) (string, map[string]any, error) {
			return t.enc(ctx, g(b))
		},
	}
}
