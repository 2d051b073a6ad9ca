package huffcoding

import (
	"testing"
)

func TestSymbol_String(t *testing.T) {
	type testRow struct {
		symbol Symbol
		str    string
		valid  bool
	}

	testData := [...]testRow{
		{symbol: 'a', str: "'a'", valid: true},
		{symbol: ' ', str: "' '", valid: true},
		{symbol: 0, str: "0", valid: true},
		{symbol: '\n', str: "10", valid: true},
		{symbol: MaxSymbol, str: "127", valid: true},
		{symbol: InvalidSymbol, str: "-1", valid: false},
		{symbol: NumSymbols, str: "128", valid: false},
	}
	for _, row := range testData {
		t.Run(row.str, func(t *testing.T) {
			if actual := row.symbol.String(); actual != row.str {
				t.Errorf("expected %s, got %s", row.str, actual)
			}
			if actual := row.symbol.Valid(); actual != row.valid {
				t.Errorf("expected Valid() = %v, got %v", row.valid, actual)
			}
		})
	}
}

func TestMissingCodeError(t *testing.T) {
	expect := "huffcoding: no code for symbol 'c'"
	if actual := (MissingCodeError{Symbol: 'c'}).Error(); actual != expect {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
}
