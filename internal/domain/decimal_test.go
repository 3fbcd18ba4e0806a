package domain

import (
	"encoding/json"
	"testing"
)

// --- Constructor Tests ---

func TestNewDecimalFromInt(t *testing.T) {
	testCases := []struct {
		name     string
		value    int64
		expected string
	}{
		{"zero", 0, "0"},
		{"positive", 100, "100"},
		{"negative", -50, "-50"},
		{"large", 1000000, "1000000"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDecimalFromInt(tc.value)
			if d.String() != tc.expected {
				t.Errorf("expected %s, got %s", tc.expected, d.String())
			}
		})
	}
}

func TestNewDecimalFromString(t *testing.T) {
	testCases := []struct {
		name        string
		value       string
		expectError bool
		expected    string
	}{
		{"valid integer", "100", false, "100"},
		{"valid decimal", "123.45", false, "123.45"},
		{"negative", "-50.25", false, "-50.25"},
		{"zero", "0", false, "0"},
		{"invalid", "not-a-number", true, ""},
		{"empty", "", true, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := NewDecimalFromString(tc.value)

			if tc.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if d.String() != tc.expected {
					t.Errorf("expected %s, got %s", tc.expected, d.String())
				}
			}
		})
	}
}

// --- Arithmetic Tests ---

func TestDecimal_Add(t *testing.T) {
	d1 := NewDecimalFromInt(100)
	d2 := NewDecimalFromInt(50)

	result, err := d1.Add(d2)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	expected := NewDecimalFromInt(150)
	if !result.Equal(expected) {
		t.Errorf("expected %s, got %s", expected, result)
	}
}

func TestDecimal_Add_Negative(t *testing.T) {
	d1 := NewDecimalFromInt(100)
	d2 := NewDecimalFromInt(-50)

	result, err := d1.Add(d2)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	expected := NewDecimalFromInt(50)
	if !result.Equal(expected) {
		t.Errorf("expected %s, got %s", expected, result)
	}
}

// --- Comparison Tests ---

func TestDecimal_IsZero(t *testing.T) {
	testCases := []struct {
		name     string
		value    Decimal
		expected bool
	}{
		{"zero", Zero, true},
		{"positive", NewDecimalFromInt(1), false},
		{"negative", NewDecimalFromInt(-1), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.value.IsZero()
			if result != tc.expected {
				t.Errorf("expected IsZero() = %v, got %v", tc.expected, result)
			}
		})
	}
}

func TestDecimal_Equal(t *testing.T) {
	testCases := []struct {
		name     string
		d1       Decimal
		d2       Decimal
		expected bool
	}{
		{"equal integers", NewDecimalFromInt(100), NewDecimalFromInt(100), true},
		{"different integers", NewDecimalFromInt(100), NewDecimalFromInt(50), false},
		{"both zero", Zero, NewDecimalFromInt(0), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.d1.Equal(tc.d2)
			if result != tc.expected {
				t.Errorf("expected Equal() = %v, got %v", tc.expected, result)
			}
		})
	}
}

func TestDecimal_Cmp(t *testing.T) {
	testCases := []struct {
		name     string
		d1       Decimal
		d2       Decimal
		expected int
	}{
		{"less than", NewDecimalFromInt(50), NewDecimalFromInt(100), -1},
		{"equal", NewDecimalFromInt(100), NewDecimalFromInt(100), 0},
		{"greater than", NewDecimalFromInt(150), NewDecimalFromInt(100), 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.d1.Cmp(tc.d2)
			if result != tc.expected {
				t.Errorf("expected Cmp() = %d, got %d", tc.expected, result)
			}
		})
	}
}

// --- JSON Marshaling Tests ---

func TestDecimal_MarshalJSON(t *testing.T) {
	testCases := []struct {
		name     string
		value    Decimal
		expected string
	}{
		{"integer", NewDecimalFromInt(100), "100"},
		{"decimal", mustDecimalFromString("123.45"), "123.45"},
		{"negative", NewDecimalFromInt(-50), "-50"},
		{"zero", Zero, "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := tc.value.MarshalJSON()
			if err != nil {
				t.Fatalf("MarshalJSON failed: %v", err)
			}

			if string(data) != tc.expected {
				t.Errorf("expected %s, got %s", tc.expected, string(data))
			}
		})
	}
}

func TestDecimal_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		name        string
		json        string
		expected    string
		expectError bool
	}{
		{"integer", "100", "100", false},
		{"quoted integer", "\"100\"", "100", false},
		{"decimal", "123.45", "123.45", false},
		{"quoted decimal", "\"123.45\"", "123.45", false},
		{"negative", "-50", "-50", false},
		{"invalid", "\"not-a-number\"", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var d Decimal
			err := d.UnmarshalJSON([]byte(tc.json))

			if tc.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				}
			} else {
				if err != nil {
					t.Fatalf("UnmarshalJSON failed: %v", err)
				}
				if d.String() != tc.expected {
					t.Errorf("expected %s, got %s", tc.expected, d.String())
				}
			}
		})
	}
}

func TestDecimal_JSON_RoundTrip(t *testing.T) {
	type TestStruct struct {
		Amount Decimal `json:"amount"`
	}

	original := TestStruct{
		Amount: mustDecimalFromString("123.45"),
	}

	// Marshal
	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	// Unmarshal
	var parsed TestStruct
	err = json.Unmarshal(data, &parsed)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	// Compare
	if !parsed.Amount.Equal(original.Amount) {
		t.Errorf("expected %s, got %s", original.Amount, parsed.Amount)
	}
}

func TestDecimal_UnmarshalJSON_Null(t *testing.T) {
	type payload struct {
		Price    Decimal  `json:"price"`
		BuyPrice *Decimal `json:"buyPrice"`
	}

	var p payload
	if err := json.Unmarshal([]byte(`{"price": null, "buyPrice": null}`), &p); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !p.Price.IsZero() {
		t.Errorf("expected zero price, got %s", p.Price)
	}
	if p.BuyPrice != nil {
		t.Errorf("expected nil buy price, got %s", p.BuyPrice)
	}
}

// --- Sign Tests ---

func TestDecimal_Sign(t *testing.T) {
	testCases := []struct {
		name     string
		value    Decimal
		positive bool
		negative bool
	}{
		{"zero", Zero, false, false},
		{"positive", mustDecimalFromString("0.01"), true, false},
		{"negative", NewDecimalFromInt(-3), false, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.value.IsPositive() != tc.positive {
				t.Errorf("expected IsPositive() = %v", tc.positive)
			}
			if tc.value.IsNegative() != tc.negative {
				t.Errorf("expected IsNegative() = %v", tc.negative)
			}
		})
	}
}

func TestDecimal_MinorUnits(t *testing.T) {
	testCases := []struct {
		name     string
		value    string
		places   int32
		expected int64
	}{
		{"cents", "1234.5", 2, 123450},
		{"rounds half up", "12.345", 2, 1235},
		{"no fraction digits", "1234.5", 0, 1235},
		{"negative", "-0.015", 2, -2},
		{"zero", "0", 2, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := mustDecimalFromString(tc.value).MinorUnits(tc.places)
			if err != nil {
				t.Fatalf("MinorUnits failed: %v", err)
			}
			if got != tc.expected {
				t.Errorf("expected %d, got %d", tc.expected, got)
			}
		})
	}
}

// --- Round Tests ---

func TestDecimal_Round(t *testing.T) {
	testCases := []struct {
		name     string
		value    string
		places   int32
		expected string
	}{
		{"round to 2 places", "123.456", 2, "123.46"},
		{"round to 0 places", "123.456", 0, "123"},
		{"round to 1 place", "123.456", 1, "123.5"},
		{"already rounded", "100.50", 2, "100.50"},
		{"negative", "-123.456", 2, "-123.46"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := mustDecimalFromString(tc.value)

			rounded, err := d.Round(tc.places)
			if err != nil {
				t.Fatalf("Round failed: %v", err)
			}

			if rounded.String() != tc.expected {
				t.Errorf("expected %s, got %s", tc.expected, rounded.String())
			}
		})
	}
}

// --- Helper Functions ---

func mustDecimalFromString(s string) Decimal {
	d, err := NewDecimalFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}
