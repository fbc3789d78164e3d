// Package i18n renders all user-facing response text. Handlers never embed
// literal labels; they go through a Translator so the API serves the same
// strings the mobile client used to build locally.
package i18n

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"golang.org/x/text/number"
)

const absoluteDayFormat = "02 Jan 2006"

// Translator resolves a request locale and formats catalog messages,
// amounts, and day labels for it.
type Translator struct {
	matcher   language.Matcher
	catalog   catalog.Catalog
	supported []language.Tag
	fallback  language.Tag
}

// New builds a Translator. defaultLocale is used when Accept-Language is
// missing or matches nothing; unknown values fall back to English.
func New(defaultLocale string) *Translator {
	fallback, err := language.Parse(defaultLocale)
	if err != nil {
		fallback = language.English
	}

	builder := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, messages := range catalogEntries {
		for key, msg := range messages {
			_ = builder.SetString(tag, key, msg)
		}
	}

	// The fallback goes first: the matcher prefers earlier tags on ties.
	supported := []language.Tag{fallback}
	for _, tag := range []language.Tag{language.Indonesian, language.English} {
		if tag != fallback {
			supported = append(supported, tag)
		}
	}

	return &Translator{
		matcher:   language.NewMatcher(supported),
		catalog:   builder,
		supported: supported,
		fallback:  fallback,
	}
}

// Locale negotiates the best supported language for an Accept-Language
// header value.
func (t *Translator) Locale(acceptLanguage string) language.Tag {
	if acceptLanguage == "" {
		return t.fallback
	}
	// MatchStrings may decorate the result with the caller's region, so the
	// index into the supported list is what identifies the catalog language.
	_, index := language.MatchStrings(t.matcher, acceptLanguage)
	return t.supported[index]
}

// T formats the catalog message for key in the given locale.
func (t *Translator) T(tag language.Tag, key string, args ...interface{}) string {
	return t.printer(tag).Sprintf(key, args...)
}

// Amount renders a decimal amount with the locale's digit grouping. The
// integer digits are grouped from their exact int64 value; a float round
// trip would drop digits on large totals.
func (t *Translator) Amount(tag language.Tag, amount decimal.Decimal) string {
	intPart := amount.Truncate(0)
	out := t.printer(tag).Sprintf("%v", number.Decimal(intPart.IntPart()))
	if amount.IsNegative() && intPart.IsZero() {
		out = "-" + out
	}

	frac := amount.Sub(intPart).Abs()
	if frac.IsZero() {
		return out
	}
	return out + t.decimalSeparator(tag) + strings.TrimPrefix(frac.String(), "0.")
}

// decimalSeparator reads the locale's separator off a formatted sample;
// x/text does not expose its symbol tables.
func (t *Translator) decimalSeparator(tag language.Tag) string {
	sample := t.printer(tag).Sprintf("%v", number.Decimal(0.5))
	return strings.Trim(sample, "05")
}

// DayLabel renders a calendar day relative to now: a today/yesterday message
// for the two most recent days, an absolute date otherwise. day must be
// midnight in the history timezone.
func (t *Translator) DayLabel(tag language.Tag, day, now time.Time) string {
	now = now.In(day.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, day.Location())
	switch {
	case day.Equal(today):
		return t.T(tag, "history.today")
	case day.Equal(today.AddDate(0, 0, -1)):
		return t.T(tag, "history.yesterday")
	default:
		return day.Format(absoluteDayFormat)
	}
}

func (t *Translator) printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(t.catalog))
}

var catalogEntries = map[language.Tag]map[string]string{
	language.English: {
		"history.today":      "Today",
		"history.yesterday":  "Yesterday",
		"history.loan_badge": "Loan %v",
		"history.quantity":   "x%v",
		"history.total":      "Total %v",
	},
	language.Indonesian: {
		"history.today":      "Hari ini",
		"history.yesterday":  "Kemarin",
		"history.loan_badge": "Pinjaman %v",
		"history.quantity":   "x%v",
		"history.total":      "Total %v",
	},
}
