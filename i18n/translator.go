package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "got").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "required":
			return "必須プロパティが不足しています"
		case "invalid_enum":
			return "許可されていない値です"
		case "invalid_format":
			return "形式が不正です"
		case "duplicate_key":
			return "キーが重複しています"
		case "duplicate_field":
			return "フィールド名が重複しています"
		case "duplicate_tag":
			return "タグが重複しています"
		case "discriminator_missing":
			return "判別キーが不足しています"
		case "discriminator_unknown":
			return "未知の判別値です"
		case "discriminator_conflict":
			return "判別キーとフィールド名が衝突しています"
		case "parse_error":
			return "解析エラー"
		case "truncated":
			return "打ち切られました"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "required":
			return "required property missing"
		case "invalid_enum":
			return "value not allowed"
		case "invalid_format":
			return "invalid format"
		case "duplicate_key":
			return "duplicate key"
		case "duplicate_field":
			return "duplicate field name"
		case "duplicate_tag":
			return "duplicate tag"
		case "discriminator_missing":
			return "discriminator missing"
		case "discriminator_unknown":
			return "unknown discriminator value"
		case "discriminator_conflict":
			return "discriminator collides with a field name"
		case "parse_error":
			return "parse error"
		case "truncated":
			return "truncated"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
