package utils

import (
	"testing"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	defaults := domain.DefaultBusinessSettings()
	euro := domain.BusinessSettings{CurrencySymbol: "€", DecimalSeparator: ",", ThousandsSeparator: "."}
	plain := domain.BusinessSettings{DecimalSeparator: ".", ThousandsSeparator: ""}

	tests := []struct {
		name     string
		amount   string
		settings domain.BusinessSettings
		want     string
	}{
		{"defaults", "1234567.5", defaults, "৳1,234,567.50"},
		{"small", "5", defaults, "৳5.00"},
		{"rounds half up", "0.125", defaults, "৳0.13"},
		{"negative", "-42", euro, "-€42,00"},
		{"euro grouping", "98765.43", euro, "€98.765,43"},
		{"no grouping", "1000000", plain, "1000000.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(domain.NewMoney(decimal.RequireFromString(tt.amount)), tt.settings))
		})
	}
}
