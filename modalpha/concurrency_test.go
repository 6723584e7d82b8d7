// Package modalpha_test verifies a shared *Cipher under concurrent use.
package modalpha_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcipher/modalpha"
)

// TestConcurrentEncryptDecrypt runs many round trips against one engine.
// Run with -race to catch any hidden mutation.
func TestConcurrentEncryptDecrypt(t *testing.T) {
	c, err := modalpha.New("КЛЮЧ")
	require.NoError(t, err)

	const num = 64
	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			text := fmt.Sprintf("сообщение номер %d для проверки", id)
			ct, err := c.Encrypt(text)
			if !assert.NoError(t, err) {
				return
			}
			pt, err := c.Decrypt(ct)
			assert.NoError(t, err)
			assert.Equal(t, modalpha.Sanitize(text), pt)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, "КЛЮЧ", c.Key(), "key must be unchanged")
}
