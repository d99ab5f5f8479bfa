package numfmt

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		opts     Options
		expected string
	}{
		{name: "seven digits", input: "1234567", opts: DefaultOptions, expected: "1,234,567"},
		{name: "six digits", input: "123456", opts: DefaultOptions, expected: "123,456"},
		{name: "exactly one group", input: "999", opts: DefaultOptions, expected: "999"},
		{name: "short number untouched", input: "42", opts: DefaultOptions, expected: "42"},
		{name: "fraction is not grouped", input: "1234567.8912", opts: DefaultOptions, expected: "1,234,567.8912"},
		{name: "negative sign preserved", input: "-1234567.25", opts: DefaultOptions, expected: "-1,234,567.25"},
		{name: "positive sign preserved", input: "+10000", opts: DefaultOptions, expected: "+10,000"},
		{name: "custom separator", input: "1234567", opts: Options{Separator: ".", GroupSize: 3}, expected: "1.234.567"},
		{name: "custom group size", input: "12345678", opts: Options{Separator: ",", GroupSize: 4}, expected: "1234,5678"},
		{name: "zero value options fall back to defaults", input: "10000", opts: Options{}, expected: "10,000"},
		{name: "empty string", input: "", opts: DefaultOptions, expected: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, Group(tc.input, tc.opts))
		})
	}
}

func TestGroupInt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1,234,567", GroupInt(1234567, DefaultOptions))
	assert.Equal(t, "-1,000", GroupInt(-1000, DefaultOptions))
	assert.Equal(t, "0", GroupInt(0, DefaultOptions))
}

func TestGroupUint(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "18,446,744,073,709,551,615", GroupUint(^uint64(0), DefaultOptions))
}

func TestGroupFloat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "123,456,789.90", GroupFloat(123456789.9, 2, DefaultOptions))
	assert.Equal(t, "23,456.7", GroupFloat(23456.7, 1, DefaultOptions))
	assert.Equal(t, "0.50", GroupFloat(0.5, 2, DefaultOptions))
}

func TestGroupDecimal(t *testing.T) {
	t.Parallel()

	d, err := decimal.NewFromString("-98765432.10")
	require.NoError(t, err)

	assert.Equal(t, "-98,765,432.1", GroupDecimal(d, DefaultOptions))
}
