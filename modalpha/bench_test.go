package modalpha_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvcipher/modalpha"
)

// BenchmarkEncrypt measures Encrypt on ~16 KiB of mixed-case Russian prose.
// Complexity: O(n)
func BenchmarkEncrypt(b *testing.B) {
	c, err := modalpha.New("ШИФРОВАНИЕ")
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	text := strings.Repeat("Съешь же ещё этих мягких французских булок, да выпей чаю. ", 160)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Encrypt(text)
	}
}

// BenchmarkDecrypt measures Decrypt on the ciphertext of the same prose.
// Complexity: O(n)
func BenchmarkDecrypt(b *testing.B) {
	c, err := modalpha.New("ШИФРОВАНИЕ")
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	ct, err := c.Encrypt(strings.Repeat("Съешь же ещё этих мягких французских булок, да выпей чаю. ", 160))
	if err != nil {
		b.Fatalf("setup Encrypt failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Decrypt(ct)
	}
}
