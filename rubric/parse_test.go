package rubric_test

import (
	"errors"
	"math"
	"testing"

	"github.com/warp/payroll-engine/rubric"
)

// =============================================================================
// BOUNDARY PARSING TESTS
// =============================================================================

func TestParseMoney_Formats(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1234.56", "1234.56"},
		{"1.234,56", "1234.56"},
		{"R$ 1.234,56", "1234.56"},
		{"R$1500", "1500.00"},
		{"150,00", "150.00"},
		{" 42 ", "42.00"},
		{"-83,33", "-83.33"},
	}

	for _, c := range cases {
		m, err := rubric.ParseMoney(c.in)
		if err != nil {
			t.Errorf("ParseMoney(%q): unexpected error %v", c.in, err)
			continue
		}
		if m.String() != c.want {
			t.Errorf("ParseMoney(%q) = %s, want %s", c.in, m, c.want)
		}
	}
}

func TestParseMoney_Unparseable(t *testing.T) {
	for _, in := range []string{"", "abc", "R$", "12,34,56"} {
		_, err := rubric.ParseMoney(in)
		if err == nil {
			t.Errorf("ParseMoney(%q): expected error", in)
			continue
		}
		var uerr *rubric.UnparseableAmountError
		if !errors.As(err, &uerr) {
			t.Errorf("ParseMoney(%q): expected UnparseableAmountError, got %v", in, err)
		}
	}
}

func TestParsePercentage(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"8", "8"},
		{"8,5", "8.5"},
		{"8.5%", "8.5"},
	}
	for _, c := range cases {
		d, err := rubric.ParsePercentage(c.in)
		if err != nil {
			t.Errorf("ParsePercentage(%q): unexpected error %v", c.in, err)
			continue
		}
		if d.String() != c.want {
			t.Errorf("ParsePercentage(%q) = %s, want %s", c.in, d, c.want)
		}
	}
}

func TestParseDate_Formats(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2024-03-01", "2024-03-01"},
		{"01/03/2024", "2024-03-01"},
		{"2024-03-01T00:00:00Z", "2024-03-01"},
		{"2024-03-01T12:30:00", "2024-03-01"},
	}
	for _, c := range cases {
		d, err := rubric.ParseDate(c.in)
		if err != nil {
			t.Errorf("ParseDate(%q): unexpected error %v", c.in, err)
			continue
		}
		if d.String() != c.want {
			t.Errorf("ParseDate(%q) = %s, want %s", c.in, d, c.want)
		}
	}
}

func TestParseDate_Unparseable(t *testing.T) {
	_, err := rubric.ParseDate("not-a-date")
	var derr *rubric.UnparseableDateError
	if !errors.As(err, &derr) || derr.Raw != "not-a-date" {
		t.Errorf("expected UnparseableDateError carrying the raw input, got %v", err)
	}
}

func TestMoneyFromFloat64_RejectsNonFinite(t *testing.T) {
	// NaN or infinite base salary indicates a caller bug: fail fast.
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := rubric.MoneyFromFloat64(f)
		if !errors.Is(err, rubric.ErrInvalidBaseSalary) {
			t.Errorf("MoneyFromFloat64(%v): expected ErrInvalidBaseSalary, got %v", f, err)
		}
	}

	m, err := rubric.MoneyFromFloat64(3000.50)
	if err != nil || m.String() != "3000.50" {
		t.Errorf("expected finite float to parse, got %v %v", m, err)
	}
}
