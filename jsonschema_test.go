package endpoints_test

import (
	"encoding/json"
	"reflect"
	"sort"
	"testing"

	endpoints "github.com/piotrkosecki/endpoints"
)

func TestRecord_JSONSchema_Snapshot(t *testing.T) {
	s := endpoints.MustZip(
		endpoints.Field("name", endpoints.String(), "display name"),
		endpoints.OptField("age", endpoints.Int()),
	)

	doc, err := s.JSONSchema()
	if err != nil {
		t.Fatalf("descriptor err: %v", err)
	}
	got, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal err: %v", err)
	}
	want := `{"type":"object","properties":{"age":{"type":"integer"},"name":{"type":"string","description":"display name"}},"required":["name"]}`
	if string(got) != want {
		t.Fatalf("snapshot mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestRecord_JSONSchema_SharedSubSchemaNotMutated(t *testing.T) {
	shared := endpoints.String()
	s := endpoints.MustZip(
		endpoints.Field("a", shared, "doc for a"),
		endpoints.Field("b", shared),
	)

	doc, err := s.JSONSchema()
	if err != nil {
		t.Fatalf("descriptor err: %v", err)
	}
	if doc.Properties["a"].Description != "doc for a" {
		t.Fatalf("missing description on a: %+v", doc.Properties["a"])
	}
	if doc.Properties["b"].Description != "" {
		t.Fatalf("description leaked onto b: %+v", doc.Properties["b"])
	}
}

func TestTagged_JSONSchema_OneOf(t *testing.T) {
	u := endpoints.MustChoiceTagged(cardSchema(), bankSchema())

	doc, err := u.JSONSchema()
	if err != nil {
		t.Fatalf("descriptor err: %v", err)
	}
	if len(doc.OneOf) != 2 {
		t.Fatalf("expected oneOf with 2 variants, got: %#v", doc)
	}
	if doc.Discriminator == nil || doc.Discriminator.PropertyName != "type" {
		t.Fatalf("expected discriminator propertyName type, got: %#v", doc.Discriminator)
	}

	card := doc.OneOf[0]
	if card.Properties["type"] == nil || card.Properties["type"].Const != "Card" {
		t.Fatalf("expected const-tagged discriminator property, got: %#v", card.Properties["type"])
	}
	req := append([]string{}, card.Required...)
	sort.Strings(req)
	if !reflect.DeepEqual(req, []string{"number", "type"}) {
		t.Fatalf("unexpected required list: %v", card.Required)
	}
}

func TestArray_JSONSchema_Items(t *testing.T) {
	doc, err := endpoints.ArrayOf(endpoints.Long()).JSONSchema()
	if err != nil {
		t.Fatalf("descriptor err: %v", err)
	}
	if doc.Type != "array" || doc.Items == nil || doc.Items.Type != "integer" || doc.Items.Format != "int64" {
		t.Fatalf("unexpected descriptor: %#v", doc)
	}
}

func TestInvmap_JSONSchema_Unchanged(t *testing.T) {
	base := nameAgeSchema()
	mapped := personSchema()

	bd, err := base.JSONSchema()
	if err != nil {
		t.Fatalf("base descriptor err: %v", err)
	}
	md, err := mapped.JSONSchema()
	if err != nil {
		t.Fatalf("mapped descriptor err: %v", err)
	}
	bs, _ := json.Marshal(bd)
	ms, _ := json.Marshal(md)
	if string(bs) != string(ms) {
		t.Fatalf("descriptor changed by invmap:\n%s\n%s", bs, ms)
	}
}
