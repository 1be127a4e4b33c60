package catalog

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/avstrong/stayhotel/internal/i18n"
)

var priceTags = map[i18n.Locale]language.Tag{
	i18n.Korean:   language.Korean,
	i18n.English:  language.AmericanEnglish,
	i18n.Japanese: language.Japanese,
	i18n.Chinese:  language.SimplifiedChinese,
}

// FormatPrice renders a KRW amount with the locale's digit grouping.
func FormatPrice(price int, l i18n.Locale) string {
	tag, ok := priceTags[l]
	if !ok {
		tag = language.AmericanEnglish
	}

	return "₩" + message.NewPrinter(tag).Sprintf("%d", price)
}
