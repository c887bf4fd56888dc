package utils

import (
	"strings"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var groupingPrinter = message.NewPrinter(language.English)

// FormatAmount renders an amount for display using a business's symbol and separators.
// Example: 1234567.5 with defaults returns "৳1,234,567.50"
// Example: -42 with "." grouping and "," decimals returns "-€42,00"
func FormatAmount(amount domain.Money, settings domain.BusinessSettings) string {
	rounded := amount.Round().Decimal()
	neg := rounded.IsNegative()
	abs := rounded.Abs()

	whole := abs.Truncate(0)
	fraction := abs.Sub(whole).StringFixed(2)[2:] // "0.50" -> "50"

	// English grouping always uses ','; swap in the configured separator afterwards.
	grouped := groupingPrinter.Sprintf("%d", whole.IntPart())
	grouped = strings.ReplaceAll(grouped, ",", settings.ThousandsSeparator)

	decimalSep := settings.DecimalSeparator
	if decimalSep == "" {
		decimalSep = "."
	}

	var b strings.Builder
	if neg {
		b.WriteString("-")
	}
	b.WriteString(settings.CurrencySymbol)
	b.WriteString(grouped)
	b.WriteString(decimalSep)
	b.WriteString(fraction)
	return b.String()
}
