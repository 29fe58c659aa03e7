package endpoints_test

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"

	endpoints "github.com/piotrkosecki/endpoints"
)

func nameAgeSchema() endpoints.Record[endpoints.Pair[string, int]] {
	return endpoints.MustZip(
		endpoints.Field("name", endpoints.String()),
		endpoints.Field("age", endpoints.Int()),
	)
}

func TestZip_NameAge_Decode(t *testing.T) {
	ctx := context.Background()

	v, err := nameAgeSchema().Decode(ctx, map[string]any{"name": "Ann", "age": json.Number("30")})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v.First != "Ann" || v.Second != 30 {
		t.Fatalf("unexpected value: %+v", v)
	}
}

func TestZip_NameAge_MissingRequired(t *testing.T) {
	ctx := context.Background()

	_, err := nameAgeSchema().Decode(ctx, map[string]any{"name": "Ann"})
	if err == nil {
		t.Fatalf("expected required")
	}
	iss, ok := endpoints.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected issues, got: %v", err)
	}
	if iss[0].Code != endpoints.CodeRequired || iss[0].Path != "/age" {
		t.Fatalf("expected required at /age, got: %v", iss)
	}
}

func TestZip_NameAge_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := nameAgeSchema()

	in := endpoints.PairOf("Ann", 30)
	enc, err := s.Encode(ctx, in)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	out, err := s.Decode(ctx, enc)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip mismatch: %+v vs %+v", in, out)
	}
}

func TestZip_DuplicateFieldRejected(t *testing.T) {
	_, err := endpoints.Zip(
		endpoints.Field("name", endpoints.String()),
		endpoints.Field("name", endpoints.String()),
	)
	if err == nil {
		t.Fatalf("expected duplicate_field")
	}
	if iss, ok := endpoints.AsIssues(err); !ok || iss[0].Code != endpoints.CodeDuplicateField {
		t.Fatalf("expected duplicate_field, got: %v", err)
	}
}

func TestZip_FieldNamesDeclarationOrder(t *testing.T) {
	got := nameAgeSchema().FieldNames()
	if !reflect.DeepEqual(got, []string{"name", "age"}) {
		t.Fatalf("unexpected field order: %v", got)
	}
}

func TestEmptyRecord_Identity(t *testing.T) {
	ctx := context.Background()
	base := endpoints.Field("n", endpoints.Int())

	left := endpoints.MustZip(endpoints.EmptyRecord(), base)
	right := endpoints.MustZip(base, endpoints.EmptyRecord())

	repr := map[string]any{"n": json.Number("7")}
	lv, err := left.Decode(ctx, repr)
	if err != nil {
		t.Fatalf("left decode err: %v", err)
	}
	rv, err := right.Decode(ctx, repr)
	if err != nil {
		t.Fatalf("right decode err: %v", err)
	}
	if lv.Second != 7 || rv.First != 7 {
		t.Fatalf("unexpected payloads: %+v %+v", lv, rv)
	}

	want, err := base.Encode(ctx, 7)
	if err != nil {
		t.Fatalf("base encode err: %v", err)
	}
	le, err := left.Encode(ctx, lv)
	if err != nil {
		t.Fatalf("left encode err: %v", err)
	}
	re, err := right.Encode(ctx, rv)
	if err != nil {
		t.Fatalf("right encode err: %v", err)
	}
	if !reflect.DeepEqual(le, want) || !reflect.DeepEqual(re, want) {
		t.Fatalf("empty record is not an identity: %v / %v / %v", le, re, want)
	}
}

func TestOptField_AbsenceYieldsNone(t *testing.T) {
	ctx := context.Background()
	s := endpoints.OptField("nick", endpoints.String())

	v, err := s.Decode(ctx, map[string]any{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v.IsSome() {
		t.Fatalf("expected None, got: %+v", v)
	}
}

func TestOptField_PresentDecodes(t *testing.T) {
	ctx := context.Background()
	s := endpoints.OptField("nick", endpoints.String())

	v, err := s.Decode(ctx, map[string]any{"nick": "annie"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got, ok := v.Get(); !ok || got != "annie" {
		t.Fatalf("expected Some(annie), got: %+v", v)
	}
}

func TestOptField_PresentButMistyped(t *testing.T) {
	ctx := context.Background()
	s := endpoints.OptField("nick", endpoints.String())

	_, err := s.Decode(ctx, map[string]any{"nick": true})
	iss, ok := endpoints.AsIssues(err)
	if !ok || iss[0].Code != endpoints.CodeInvalidType || iss[0].Path != "/nick" {
		t.Fatalf("expected invalid_type at /nick, got: %v", err)
	}
}

func TestOptField_EncodeOmitsAbsent(t *testing.T) {
	ctx := context.Background()
	s := endpoints.OptField("nick", endpoints.String())

	enc, err := s.Encode(ctx, endpoints.None[string]())
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	obj, ok := enc.(map[string]any)
	if !ok || len(obj) != 0 {
		t.Fatalf("expected empty object, got: %#v", enc)
	}

	enc2, err := s.Encode(ctx, endpoints.Some("annie"))
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if obj2 := enc2.(map[string]any); obj2["nick"] != "annie" {
		t.Fatalf("expected nick present, got: %#v", enc2)
	}
}

type person struct {
	Name string
	Age  int
}

func personSchema() endpoints.Record[person] {
	return endpoints.InvmapRecord(
		nameAgeSchema(),
		func(p endpoints.Pair[string, int]) person { return person{Name: p.First, Age: p.Second} },
		func(p person) endpoints.Pair[string, int] { return endpoints.PairOf(p.Name, p.Age) },
	)
}

func TestInvmapRecord_PreservesWireShape(t *testing.T) {
	ctx := context.Background()
	base := nameAgeSchema()
	mapped := personSchema()

	pair := endpoints.PairOf("Ann", 30)
	want, err := base.Encode(ctx, pair)
	if err != nil {
		t.Fatalf("base encode err: %v", err)
	}
	got, err := mapped.Encode(ctx, person{Name: "Ann", Age: 30})
	if err != nil {
		t.Fatalf("mapped encode err: %v", err)
	}
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("wire shape changed: %v vs %v", want, got)
	}
}

func TestInvmapRecord_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := personSchema()

	in := person{Name: "Ann", Age: 30}
	enc, err := s.Encode(ctx, in)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	out, err := s.Decode(ctx, enc)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if out != in {
		t.Fatalf("round trip mismatch: %+v vs %+v", in, out)
	}
}

func TestRecord_DecodeNonObject(t *testing.T) {
	ctx := context.Background()

	_, err := nameAgeSchema().Decode(ctx, "nope")
	iss, ok := endpoints.AsIssues(err)
	if !ok || iss[0].Code != endpoints.CodeInvalidType {
		t.Fatalf("expected invalid_type, got: %v", err)
	}
}
