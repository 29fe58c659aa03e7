package endpoints

import (
	"context"

	"github.com/piotrkosecki/endpoints/i18n"
	js "github.com/piotrkosecki/endpoints/jsonschema"
)

// fieldDesc is one named slot of a Record. The descriptor thunk defers to the
// field schema so that shared sub-schemas stay shared.
type fieldDesc struct {
	name     string
	doc      string
	optional bool
	schema   func() (*js.Schema, error)
}

// Record is a Schema over a fixed, ordered set of named fields. The zero
// value is not useful; build records with EmptyRecord, Field, OptField, Zip
// and InvmapRecord.
type Record[A any] struct {
	fields []fieldDesc
	dec    func(ctx context.Context, obj map[string]any) (A, error)
	enc    func(ctx context.Context, a A, dst map[string]any) error
}

var _ Schema[Unit] = Record[Unit]{}

// FieldNames returns the field names in declaration order.
func (r Record[A]) FieldNames() []string {
	names := make([]string, len(r.fields))
	for i, f := range r.fields {
		names[i] = f.name
	}
	return names
}

func (r Record[A]) Decode(ctx context.Context, v any) (A, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		var zero A
		return zero, Issues{{Path: "/", Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected object"}}
	}
	return r.dec(ctx, obj)
}

func (r Record[A]) Encode(ctx context.Context, a A) (any, error) {
	dst := make(map[string]any, len(r.fields))
	if err := r.enc(ctx, a, dst); err != nil {
		return nil, err
	}
	return dst, nil
}

func (r Record[A]) JSONSchema() (*js.Schema, error) {
	props := make(map[string]*js.Schema, len(r.fields))
	required := make([]string, 0, len(r.fields))
	for _, f := range r.fields {
		ps, err := f.schema()
		if err != nil {
			return nil, err
		}
		if ps == nil {
			ps = &js.Schema{}
		}
		if f.doc != "" {
			// Shallow copy before annotating: the sub-schema may be shared
			// across compositions.
			cp := *ps
			cp.Description = f.doc
			ps = &cp
		}
		props[f.name] = ps
		if !f.optional {
			required = append(required, f.name)
		}
	}
	return &js.Schema{Type: "object", Properties: props, Required: required}, nil
}

// EmptyRecord is the neutral element for Zip: no fields, encodes to an empty
// object and decodes any object to Unit.
func EmptyRecord() Record[Unit] {
	return Record[Unit]{
		dec: func(ctx context.Context, obj map[string]any) (Unit, error) { return Unit{}, nil },
		enc: func(ctx context.Context, u Unit, dst map[string]any) error { return nil },
	}
}

// Field describes a record with exactly one required field. Decoding fails
// with CodeRequired when the key is absent and with the field schema's error
// (rebased under /name) when the present value does not decode.
func Field[A any](name string, s Schema[A], doc ...string) Record[A] {
	d := ""
	if len(doc) > 0 {
		d = doc[0]
	}
	return Record[A]{
		fields: []fieldDesc{{name: name, doc: d, schema: s.JSONSchema}},
		dec: func(ctx context.Context, obj map[string]any) (A, error) {
			raw, ok := obj[name]
			if !ok {
				var zero A
				return zero, Issues{{Path: "/" + name, Code: CodeRequired, Message: i18n.T(CodeRequired, nil), Hint: "required property missing"}}
			}
			a, err := s.Decode(ctx, raw)
			if err != nil {
				var zero A
				return zero, rebase("/"+name, err)
			}
			return a, nil
		},
		enc: func(ctx context.Context, a A, dst map[string]any) error {
			v, err := s.Encode(ctx, a)
			if err != nil {
				return rebase("/"+name, err)
			}
			dst[name] = v
			return nil
		},
	}
}

// OptField describes a record with exactly one optional field. An absent key
// decodes to None (never CodeRequired); a present value decodes through the
// field schema and wraps in Some. Encoding omits the key entirely for None.
func OptField[A any](name string, s Schema[A], doc ...string) Record[Option[A]] {
	d := ""
	if len(doc) > 0 {
		d = doc[0]
	}
	return Record[Option[A]]{
		fields: []fieldDesc{{name: name, doc: d, optional: true, schema: s.JSONSchema}},
		dec: func(ctx context.Context, obj map[string]any) (Option[A], error) {
			raw, ok := obj[name]
			if !ok {
				return None[A](), nil
			}
			a, err := s.Decode(ctx, raw)
			if err != nil {
				return None[A](), rebase("/"+name, err)
			}
			return Some(a), nil
		},
		enc: func(ctx context.Context, o Option[A], dst map[string]any) error {
			a, ok := o.Get()
			if !ok {
				return nil
			}
			v, err := s.Encode(ctx, a)
			if err != nil {
				return rebase("/"+name, err)
			}
			dst[name] = v
			return nil
		},
	}
}

// Zip merges two records into one over the pair of their payloads. Field
// lists concatenate in order; a field name present in both sides is rejected
// at construction with CodeDuplicateField.
func Zip[A, B any](ra Record[A], rb Record[B]) (Record[Pair[A, B]], error) {
	seen := make(map[string]struct{}, len(ra.fields))
	for _, f := range ra.fields {
		seen[f.name] = struct{}{}
	}
	for _, f := range rb.fields {
		if _, dup := seen[f.name]; dup {
			return Record[Pair[A, B]]{}, Issues{{Path: "/" + f.name, Code: CodeDuplicateField, Message: i18n.T(CodeDuplicateField, nil), Hint: "field declared on both sides of zip: '" + f.name + "'"}}
		}
	}
	fields := make([]fieldDesc, 0, len(ra.fields)+len(rb.fields))
	fields = append(fields, ra.fields...)
	fields = append(fields, rb.fields...)
	return Record[Pair[A, B]]{
		fields: fields,
		dec: func(ctx context.Context, obj map[string]any) (Pair[A, B], error) {
			a, err := ra.dec(ctx, obj)
			if err != nil {
				return Pair[A, B]{}, err
			}
			b, err := rb.dec(ctx, obj)
			if err != nil {
				return Pair[A, B]{}, err
			}
			return Pair[A, B]{First: a, Second: b}, nil
		},
		enc: func(ctx context.Context, p Pair[A, B], dst map[string]any) error {
			if err := ra.enc(ctx, p.First, dst); err != nil {
				return err
			}
			return rb.enc(ctx, p.Second, dst)
		},
	}, nil
}

// MustZip is Zip panicking on duplicate field names. Intended for
// package-initialization composition where a defect is a programming error.
func MustZip[A, B any](ra Record[A], rb Record[B]) Record[Pair[A, B]] {
	r, err := Zip(ra, rb)
	if err != nil {
		panic(err)
	}
	return r
}

// InvmapRecord transforms a Record's payload type, leaving the field list and
// wire shape untouched.
func InvmapRecord[A, B any](r Record[A], f func(A) B, g func(B) A) Record[B] {
	return Record[B]{
		fields: r.fields,
		dec: func(ctx context.Context, obj map[string]any) (B, error) {
			a, err := r.dec(ctx, obj)
			if err != nil {
				var zero B
				return zero, err
			}
			return f(a), nil
		},
		enc: func(ctx context.Context, b B, dst map[string]any) error {
			return r.enc(ctx, g(b), dst)
		},
	}
}
