package kernel

import (
	"fmt"
	"strings"

	"commerce/internal/pkg/errs"
)

// Language selects which localized product fields are rendered and which
// display name gets frozen into an order item snapshot.
type Language int

const (
	// LanguageUnknown represents an invalid or undefined language.
	LanguageUnknown Language = iota

	// LanguageUz is the Uzbek locale, the catalog default.
	LanguageUz

	// LanguageRu is the Russian locale.
	LanguageRu
)

func getLanguageStrings() map[Language]string {
	return map[Language]string{
		LanguageUnknown: "unknown",
		LanguageUz:      "uz",
		LanguageRu:      "ru",
	}
}

// ParseLanguage maps a raw selector to a Language. Anything other than
// "ru" or "uz" (case-insensitive) falls back to the Uzbek default, matching
// the catalog's lenient language negotiation.
func ParseLanguage(s string) Language {
	switch strings.ToLower(s) {
	case "ru":
		return LanguageRu
	case "uz":
		return LanguageUz
	default:
		return LanguageUz
	}
}

// String returns the locale code, or "unknown" for invalid values.
func (l Language) String() string {
	if str, ok := getLanguageStrings()[l]; ok {
		return str
	}
	return "unknown"
}

// Validate returns an error for any value other than LanguageUz or LanguageRu.
func (l Language) Validate() error {
	if l != LanguageUz && l != LanguageRu {
		return errs.NewValueIsInvalidErrorWithCause("language",
			fmt.Errorf("%d is not a valid language", l))
	}
	return nil
}
