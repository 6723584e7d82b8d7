package alphabet_test

import (
	"fmt"

	"github.com/katalvlaran/lvcipher/alphabet"
)

// ExampleAlphabet_Sanitize shows the encrypt-side filter: punctuation, digits
// and Latin letters are dropped, lowercase is folded, Ё is kept.
func ExampleAlphabet_Sanitize() {
	fmt.Println(alphabet.Russian.Sanitize("Ёжик в тумане, 1975"))
	// Output:
	// ЁЖИКВТУМАНЕ
}

// ExampleAlphabet_Index prints the positions around Ё.
func ExampleAlphabet_Index() {
	for _, r := range "ЕЁЖ" {
		i, _ := alphabet.Russian.Index(r)
		fmt.Printf("%c=%d ", r, i)
	}
	fmt.Println()
	// Output:
	// Е=5 Ё=6 Ж=7
}
