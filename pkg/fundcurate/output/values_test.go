package output

import "testing"

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
		{"nan", "nan"},
		{"Inf", "Inf"},
		{"2020-01-01", "2020-01-01"},
		{"0", int64(0)},
		{"0.25", 0.25},
		{"-0.5", -0.5},
		{"00123", "00123"},
		{"-007", "-007"},
		{"1e3", "1e3"},
		{"+5", "+5"},
		{"1.", "1."},
		{".5", ".5"},
		{"1,000", "1,000"},
		{"0x1F", "0x1F"},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestColumnWidth(t *testing.T) {
	tests := []struct {
		longest  int
		expected float64
	}{
		{0, 2},
		{10, 12},
		{253, 255},
		{1000, 255},
	}

	for _, tt := range tests {
		if got := columnWidth(tt.longest); got != tt.expected {
			t.Errorf("columnWidth(%d) = %v, expected %v", tt.longest, got, tt.expected)
		}
	}
}

func TestDisplayLength(t *testing.T) {
	if got := displayLength("Zürich"); got != 6 {
		t.Errorf("displayLength(%q) = %d, expected 6", "Zürich", got)
	}
}
