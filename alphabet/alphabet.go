// SPDX-License-Identifier: MIT

package alphabet

import (
	"fmt"
	"unicode"
)

// russianSymbols is the ordered uppercase Russian alphabet. Index arithmetic
// in modalpha depends on this exact order.
const russianSymbols = "АБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯ"

// Russian is the 33-symbol alphabet used by the substitution engine.
var Russian = MustNew(russianSymbols)

// Alphabet is an ordered set of distinct uppercase symbols.
//   - symbols[i] is the symbol with index i.
//   - index is the reverse of symbols.
//   - fold maps every lowercase form to its uppercase symbol.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
	fold    map[rune]rune
}

// New builds an Alphabet from an ordered string of symbols.
// Every symbol must be distinct and must not be a lowercase letter; lowercase
// folds are derived with unicode.ToLower.
// Complexity: O(n) time and memory.
func New(symbols string) (*Alphabet, error) {
	a := &Alphabet{
		index: make(map[rune]int),
		fold:  make(map[rune]rune),
	}
	for _, r := range symbols {
		if unicode.IsLower(r) {
			return nil, fmt.Errorf("alphabet: symbol %q is lowercase", r)
		}
		if _, dup := a.index[r]; dup {
			return nil, fmt.Errorf("alphabet: duplicate symbol %q", r)
		}
		a.index[r] = len(a.symbols)
		a.symbols = append(a.symbols, r)
		if lo := unicode.ToLower(r); lo != r {
			a.fold[lo] = r
		}
	}
	if len(a.symbols) == 0 {
		return nil, fmt.Errorf("alphabet: no symbols")
	}

	return a, nil
}

// MustNew is New for package-level tables; it panics on a malformed alphabet.
func MustNew(symbols string) *Alphabet {
	a, err := New(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// Size returns the number of symbols.
func (a *Alphabet) Size() int {
	return len(a.symbols)
}

// Index returns the position of an uppercase symbol.
// Lowercase forms are not accepted here; fold them with ToUpper first.
func (a *Alphabet) Index(r rune) (int, bool) {
	i, ok := a.index[r]
	return i, ok
}

// Rune returns the symbol at position i.
func (a *Alphabet) Rune(i int) (rune, bool) {
	if i < 0 || i >= len(a.symbols) {
		return 0, false
	}
	return a.symbols[i], true
}

// IsUpper reports whether r is one of the alphabet's uppercase symbols.
func (a *Alphabet) IsUpper(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// Contains reports whether r belongs to the alphabet in either case.
func (a *Alphabet) Contains(r rune) bool {
	if _, ok := a.index[r]; ok {
		return true
	}
	_, ok := a.fold[r]
	return ok
}

// ToUpper folds a lowercase alphabet letter to its symbol.
// Any other rune is returned unchanged.
func (a *Alphabet) ToUpper(r rune) rune {
	if up, ok := a.fold[r]; ok {
		return up
	}
	return r
}

// Encode converts s to symbol indices, skipping runes that are not
// uppercase symbols.
// Complexity: O(len(s)).
func (a *Alphabet) Encode(s string) []int {
	out := make([]int, 0, len(s))
	for _, r := range s {
		if i, ok := a.index[r]; ok {
			out = append(out, i)
		}
	}
	return out
}

// Decode converts indices back to symbols, skipping out-of-range values.
// Complexity: O(len(idx)).
func (a *Alphabet) Decode(idx []int) string {
	out := make([]rune, 0, len(idx))
	for _, i := range idx {
		if i >= 0 && i < len(a.symbols) {
			out = append(out, a.symbols[i])
		}
	}
	return string(out)
}

// String returns the symbols in order.
func (a *Alphabet) String() string {
	return string(a.symbols)
}
