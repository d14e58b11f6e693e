// Package i18n holds the bilingual text pair type the catalog is written
// in, plus locale-aware currency and date rendering.
package i18n

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type Locale string

const (
	LocaleEN Locale = "en"
	LocaleZH Locale = "zh"

	DefaultLocale = LocaleEN
)

// ParseLocale maps any unknown value to the default locale.
func ParseLocale(s string) Locale {
	switch Locale(s) {
	case LocaleEN, LocaleZH:
		return Locale(s)
	default:
		return DefaultLocale
	}
}

// Text is a bilingual pair holding parallel english and chinese copy for
// the same field.
type Text struct {
	EN string `json:"en" yaml:"en"`
	ZH string `json:"zh" yaml:"zh"`
}

func (t Text) Pick(locale Locale) string {
	if locale == LocaleZH {
		return t.ZH
	}

	return t.EN
}

// TextList is the bilingual pair variant for string lists, e.g. a service's
// feature bullets.
type TextList struct {
	EN []string `json:"en" yaml:"en"`
	ZH []string `json:"zh" yaml:"zh"`
}

func (t TextList) Pick(locale Locale) []string {
	if locale == LocaleZH {
		return t.ZH
	}

	return t.EN
}

// FormatCurrency renders an amount in the currency conventional for the
// locale: CNY for chinese, USD otherwise. Amounts are rounded to cents
// before rendering so float noise never reaches the client.
func FormatCurrency(amount float64, locale Locale) string {
	rounded, _ := decimal.NewFromFloat(amount).Round(2).Float64()

	var tag language.Tag
	var symbol string

	switch locale {
	case LocaleZH:
		tag = language.SimplifiedChinese
		symbol = "¥"
	default:
		tag = language.AmericanEnglish
		symbol = "$"
	}

	printer := message.NewPrinter(tag)

	return symbol + printer.Sprintf(
		"%v",
		number.Decimal(
			rounded,
			number.MinFractionDigits(2),
			number.MaxFractionDigits(2),
		),
	)
}

func FormatDate(t time.Time, locale Locale) string {
	if locale == LocaleZH {
		return t.Format("2006年1月2日")
	}

	return t.Format("January 2, 2006")
}
