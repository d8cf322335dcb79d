package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	m := NewMoney(1234.567)
	assert.Equal(t, "1234.57", m.String())
	assert.Equal(t, "1234.57", m.Round().String())
}

func TestNewMoneyFromString(t *testing.T) {
	m, err := NewMoneyFromString("99.5")
	require.NoError(t, err)
	assert.Equal(t, "99.50", m.String())

	_, err = NewMoneyFromString("ninety")
	assert.Error(t, err)
}

func TestMoneyArithmetic(t *testing.T) {
	a := NewMoney(10.25)
	b := NewMoney(0.75)
	assert.Equal(t, "11.00", a.Add(b).String())
	assert.Equal(t, "9.50", a.Sub(b).String())
	assert.True(t, b.Sub(a).IsNegative())
}

func TestSumAvoidsFloatDrift(t *testing.T) {
	values := make([]float64, 10)
	for i := range values {
		values[i] = 0.1
	}
	assert.Equal(t, "1.00", Sum(values).String())
	assert.True(t, Sum(values).Equal(NewMoney(1).Decimal))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{999.999, "$1,000.00"},
		{1234.5, "$1,234.50"},
		{123456, "$123,456.00"},
		{1234567.891, "$1,234,567.89"},
		{-1234.5, "-$1,234.50"},
		{-0.001, "$0.00"},
		{133.10000000000005, "$133.10"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, NewMoney(tt.value).Format())
		})
	}
}
