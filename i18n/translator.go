package i18n

// Translator retrieves localized messages for issue codes. data provides
// optional metadata to embed in the message (for example, "key" or "value");
// the built-in dictionaries keep details in the issue hint instead.
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "parse_error":
			return "解析エラー"
		case "invalid_type":
			return "型が不正です"
		case "required":
			return "必須プロパティが不足しています"
		case "too_short":
			return "短すぎます"
		case "pattern":
			return "パターンに一致しません"
		case "invalid_enum":
			return "許可されていない値です"
		case "unknown_key":
			return "未知のキーです"
		case "duplicate_key":
			return "キーが重複しています"
		case "uniqueness":
			return "値が重複しています"
		case "truncated":
			return "打ち切られました"
		case "id_mismatch":
			return "id がファイル名と一致しません"
		case "missing_optional":
			return "任意プロパティが未設定です"
		}
	default: // "en"
		switch code {
		case "parse_error":
			return "parse error"
		case "invalid_type":
			return "invalid type"
		case "required":
			return "required property missing"
		case "too_short":
			return "too short"
		case "pattern":
			return "does not match pattern"
		case "invalid_enum":
			return "value not in allowed set"
		case "unknown_key":
			return "unknown key"
		case "duplicate_key":
			return "duplicate key"
		case "uniqueness":
			return "duplicate value"
		case "truncated":
			return "input truncated"
		case "id_mismatch":
			return "id does not match filename"
		case "missing_optional":
			return "optional property missing"
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
