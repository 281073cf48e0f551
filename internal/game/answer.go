package game

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Symbol is a comparison answer.
type Symbol string

const (
	SymbolGreater Symbol = ">"
	SymbolLess    Symbol = "<"
	SymbolEqual   Symbol = "="
)

func (s Symbol) Valid() bool {
	return s == SymbolGreater || s == SymbolLess || s == SymbolEqual
}

// Answer is either a number or a comparison symbol. A non-empty Symbol
// wins; otherwise Number is the value. On the wire numbers stay JSON
// numbers and symbols are strings, so clients can echo options back as-is.
type Answer struct {
	Number int
	Symbol Symbol
}

func NumberAnswer(n int) Answer {
	return Answer{Number: n}
}

func SymbolAnswer(s Symbol) Answer {
	return Answer{Symbol: s}
}

func (a Answer) IsSymbol() bool {
	return a.Symbol != ""
}

func (a Answer) String() string {
	if a.IsSymbol() {
		return string(a.Symbol)
	}
	return strconv.Itoa(a.Number)
}

// ParseAnswer accepts "7", " 12 ", ">", "<" and "=".
func ParseAnswer(s string) (Answer, error) {
	s = strings.TrimSpace(s)
	if sym := Symbol(s); sym.Valid() {
		return SymbolAnswer(sym), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Answer{}, fmt.Errorf("invalid answer %q", s)
	}
	return NumberAnswer(n), nil
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if a.IsSymbol() {
		return json.Marshal(string(a.Symbol))
	}
	return json.Marshal(a.Number)
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := ParseAnswer(s)
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("answer must be a number or one of > < =: %w", err)
	}
	*a = NumberAnswer(n)
	return nil
}
