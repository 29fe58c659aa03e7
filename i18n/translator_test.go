package i18n_test

import (
	"testing"

	"github.com/piotrkosecki/endpoints/i18n"
)

func TestDefaultTranslator_English(t *testing.T) {
	if got := i18n.T("invalid_type", nil); got != "invalid type" {
		t.Fatalf("unexpected message: %q", got)
	}
	if got := i18n.T("no_such_code", nil); got != "no_such_code" {
		t.Fatalf("unknown codes fall back to the code itself, got: %q", got)
	}
}

func TestSetLanguage_Japanese(t *testing.T) {
	i18n.SetLanguage("ja")
	defer i18n.SetLanguage("en")

	if got := i18n.T("required", nil); got != "必須プロパティが不足しています" {
		t.Fatalf("unexpected message: %q", got)
	}
}

type upperTranslator struct{}

func (upperTranslator) Message(code string, data map[string]string) string { return "!" + code }

func TestSetTranslator_Custom(t *testing.T) {
	i18n.SetTranslator(upperTranslator{})
	defer i18n.SetTranslator(nil)

	if got := i18n.T("required", nil); got != "!required" {
		t.Fatalf("unexpected message: %q", got)
	}
}
