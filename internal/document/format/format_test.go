package format

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDecimal(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"abc", 0},
		{"12.5", 12.5},
		{"12.5x", 12.5},
		{"$1,234.50", 1234.50},
		{"1.2.3", 0},
		{".", 0},
		{"0", 0},
		{"  42 ", 42},
		{"-10", 10}, // sign is stripped, not honored
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseDecimal(tc.in), "input %q", tc.in)
	}
}

func TestMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{1, "1.00"},
		{12.5, "12.50"},
		{100, "100.00"},
		{1234.5, "1,234.50"},
		{1234567.891, "1,234,567.89"},
		{-9876.5, "-9,876.50"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Money(tc.in))
	}
}

func TestMoneyNonFinite(t *testing.T) {
	// Overflowing lenient inputs can multiply out to Inf, and Inf*0 taxes
	// produce NaN; both must stay printable.
	huge := math.MaxFloat64
	cases := []struct {
		in   float64
		want string
	}{
		{math.Inf(1), "+Inf"},
		{math.Inf(-1), "-Inf"},
		{math.NaN(), "NaN"},
		{huge * 2, "+Inf"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Money(tc.in))
	}
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("ab", 50)
	assert.Len(t, []rune(Truncate(long, 60)), 60)
	assert.Equal(t, "short", Truncate("short", 60))
	assert.False(t, strings.HasSuffix(Truncate(long, 60), "..."))

	// rune boundaries, not bytes
	assert.Equal(t, "ééé", Truncate("ééééé", 3))
}

func TestWrapText(t *testing.T) {
	t.Run("empty input yields a dash line", func(t *testing.T) {
		assert.Equal(t, []string{Dash}, WrapText("", 95))
		assert.Equal(t, []string{Dash}, WrapText("   ", 95))
	})

	t.Run("fills greedily up to the budget", func(t *testing.T) {
		lines := WrapText("one two three four", 9)
		assert.Equal(t, []string{"one two", "three", "four"}, lines)
	})

	t.Run("overlong word keeps its own line", func(t *testing.T) {
		lines := WrapText("a verylongunbrokenword b", 10)
		assert.Equal(t, []string{"a", "verylongunbrokenword", "b"}, lines)
	})

	t.Run("long text never exceeds budget except single words", func(t *testing.T) {
		text := strings.Repeat("lorem ipsum dolor sit amet ", 40)
		for _, line := range WrapText(text, 95) {
			assert.LessOrEqual(t, len([]rune(line)), 95)
		}
	})
}

func TestOrDash(t *testing.T) {
	assert.Equal(t, Dash, OrDash(""))
	assert.Equal(t, "x", OrDash("x"))
}
