package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "whole", input: "500", want: "500.00"},
		{name: "two places", input: "1250.50", want: "1250.50"},
		{name: "one place padded", input: "0.5", want: "0.50"},
		{name: "trailing zeros beyond two places", input: "12.3400", want: "12.34"},
		{name: "negative", input: "-50", want: "-50.00"},
		{name: "surrounding space", input: " 10.1 ", want: "10.10"},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "12abc", wantErr: true},
		{name: "three places", input: "100.004", wantErr: true},
		{name: "sub-cent", input: "0.004", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseMoney(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := domain.MustParseMoney("100.10")
	b := domain.MustParseMoney("0.20")

	assert.Equal(t, "100.30", a.Add(b).String())
	assert.Equal(t, "99.90", a.Sub(b).String())
	assert.Equal(t, "-100.10", a.Neg().String())
	assert.Equal(t, "100.10", a.Neg().Abs().String())
	assert.True(t, a.Sub(a).IsZero())
	assert.True(t, b.Sub(a).IsNegative())
	assert.Equal(t, 1, a.Cmp(b))
	assert.Equal(t, "300.60", domain.SumMoney(a, a, a, b.Add(b).Add(b).Sub(domain.MustParseMoney("0.30"))).String())
}

func TestMoneyMulPercent(t *testing.T) {
	m := domain.MoneyFromInt(1000)
	got := m.MulPercent(decimal.NewFromFloat(7.5))
	assert.True(t, got.Equal(domain.MustParseMoney("75")))

	odd := domain.MustParseMoney("10.01").MulPercent(decimal.NewFromInt(15))
	assert.Equal(t, "1.5015", odd.Decimal().String())
	assert.False(t, odd.WithinScale())
	assert.Equal(t, "1.50", odd.String())
	assert.True(t, odd.Round().WithinScale())
}

func TestMoneyEqualWithin(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"identical", "500", "500.00", true},
		{"sub-cent noise rounds away", "100.004", "100.001", true},
		{"one cent apart", "100.00", "100.01", false},
		{"rounding tips over", "100.005", "100.00", false},
		{"large difference", "500", "400", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := domain.NewMoney(decimal.RequireFromString(tt.a))
			b := domain.NewMoney(decimal.RequireFromString(tt.b))
			assert.Equal(t, tt.want, a.Balances(b))
			assert.Equal(t, tt.want, b.Balances(a))
		})
	}
}

func TestMoneyJSON(t *testing.T) {
	type wrapper struct {
		Amount domain.Money `json:"amount"`
	}

	out, err := json.Marshal(wrapper{Amount: domain.MustParseMoney("1250.5")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"1250.50"}`, string(out))

	var fromString wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"amount":"42.10"}`), &fromString))
	assert.Equal(t, "42.10", fromString.Amount.String())

	var fromNumber wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"amount":42.1}`), &fromNumber))
	assert.Equal(t, "42.10", fromNumber.Amount.String())

	var bad wrapper
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"amount":"x"}`), &bad), apperrors.ErrInvalidAmount)
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"amount":"100.004"}`), &bad), apperrors.ErrInvalidAmount)
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"amount":0.004}`), &bad), apperrors.ErrInvalidAmount)
}

func TestMoneyStringAlwaysTwoPlaces(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"0", "0.00"},
		{"7", "7.00"},
		{"-3.1", "-3.10"},
		{"100.004", "100.00"},
		{"100.005", "100.01"},
		{"-0.125", "-0.13"},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NewMoney(decimal.RequireFromString(tt.value)).String())
		})
	}
}

func TestMoneyScanValue(t *testing.T) {
	var m domain.Money
	require.NoError(t, m.Scan("12.34"))
	assert.Equal(t, "12.34", m.String())

	v, err := m.Value()
	require.NoError(t, err)
	assert.Equal(t, "12.34", v)
}
