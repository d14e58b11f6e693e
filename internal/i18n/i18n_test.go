package i18n

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTextPick(t *testing.T) {
	name := Text{EN: "Max", ZH: "麦克斯"}

	assert.Equal(t, "麦克斯", name.Pick(LocaleZH))
	assert.Equal(t, "Max", name.Pick(LocaleEN))
	assert.Equal(t, "Max", name.Pick(ParseLocale("fr")), "unknown locale falls back to english")
}

func TestTextListPick(t *testing.T) {
	features := TextList{
		EN: []string{"Bath", "Nail trim"},
		ZH: []string{"洗澡", "修剪指甲"},
	}

	assert.Equal(t, []string{"洗澡", "修剪指甲"}, features.Pick(LocaleZH))
	assert.Equal(t, []string{"Bath", "Nail trim"}, features.Pick(LocaleEN))
}

func TestParseLocale(t *testing.T) {
	assert.Equal(t, LocaleZH, ParseLocale("zh"))
	assert.Equal(t, LocaleEN, ParseLocale("en"))
	assert.Equal(t, LocaleEN, ParseLocale(""))
	assert.Equal(t, LocaleEN, ParseLocale("de"))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$10.00", FormatCurrency(10, LocaleEN))
	assert.Equal(t, "¥10.00", FormatCurrency(10, LocaleZH))
	assert.Equal(t, "$1,234.50", FormatCurrency(1234.5, LocaleEN))
	assert.Equal(t, "¥1,234.50", FormatCurrency(1234.5, LocaleZH))
	assert.Equal(t, "$49.99", FormatCurrency(49.99, LocaleEN))
}

func TestFormatDate(t *testing.T) {
	date := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "March 5, 2024", FormatDate(date, LocaleEN))
	assert.Equal(t, "2024年3月5日", FormatDate(date, LocaleZH))
}
