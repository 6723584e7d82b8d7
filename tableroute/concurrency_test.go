// Package tableroute_test verifies a shared *Cipher under concurrent use.
package tableroute_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcipher/tableroute"
)

// TestConcurrentEncryptDecrypt runs round trips of different lengths, and
// therefore different table shapes, against one engine.
func TestConcurrentEncryptDecrypt(t *testing.T) {
	c, err := tableroute.New(4)
	require.NoError(t, err)

	const num = 64
	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			text := fmt.Sprintf("message number %d goes %s", id, "here"[:id%4+1])
			ct, err := c.Encrypt(text)
			if !assert.NoError(t, err) {
				return
			}
			pt, err := c.Decrypt(ct)
			assert.NoError(t, err)
			assert.Equal(t, tableroute.Sanitize(text), pt)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 4, c.Columns())
}
