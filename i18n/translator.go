// Package i18n provides the localized titles the CLI prints for encode
// issue codes and document errors.
package i18n

import "sync/atomic"

// Translator retrieves localized messages for issue codes.
// data provides optional metadata to embed in the message (for example,
// "path" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"invalid_variant":  "exactly one variant must be set",
		"unsupported":      "decoding is not supported",
		"unsupported_type": "value cannot be encoded",
		"invalid_number":   "number is not representable",
		"invalid_enum":     "enumeration value has no name",
		"rule_violation":   "encoding rule failed",
		"unknown_gradient": "unknown gradient kind",
		"too_deep":         "configuration tree is nested too deeply",
		"duplicate_key":    "duplicate key",
		"document":         "invalid chart document",
	},
	"ja": {
		"invalid_variant":  "バリアントはちょうど1つ指定してください",
		"unsupported":      "デコードはサポートされていません",
		"unsupported_type": "エンコードできない値です",
		"invalid_number":   "表現できない数値です",
		"invalid_enum":     "列挙値に名前がありません",
		"rule_violation":   "エンコードルールが失敗しました",
		"unknown_gradient": "未知のグラデーションです",
		"too_deep":         "設定ツリーのネストが深すぎます",
		"duplicate_key":    "キーが重複しています",
		"document":         "チャート文書が不正です",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	if msg, ok := dictionaries[t.lang][code]; ok {
		return msg
	}
	return code
}

type holder struct{ tr Translator }

var current atomic.Pointer[holder]

func init() { current.Store(&holder{tr: dictTranslator{lang: "en"}}) }

// Languages lists the built-in dictionary languages.
func Languages() []string { return []string{"en", "ja"} }

// SetLanguage switches the built-in Translator language ("en"/"ja").
// Unknown languages fall back to "en".
func SetLanguage(lang string) {
	if _, ok := dictionaries[lang]; !ok {
		lang = "en"
	}
	current.Store(&holder{tr: dictTranslator{lang: lang}})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). nil restores the English dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	current.Store(&holder{tr: tr})
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return current.Load().tr.Message(code, data) }
