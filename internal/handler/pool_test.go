package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferPool(t *testing.T) {
	t.Run("buffers come back empty", func(t *testing.T) {
		buf := getBuffer()
		buf.WriteString(`{"data":"stale"}`)
		putBuffer(buf)

		for i := 0; i < 4; i++ {
			next := getBuffer()
			assert.Zero(t, next.Len())
			putBuffer(next)
		}
	})

	t.Run("oversized buffers are dropped", func(t *testing.T) {
		buf := getBuffer()
		buf.WriteString(strings.Repeat("x", maxPooledBufferSize+1))
		assert.NotPanics(t, func() { putBuffer(buf) })

		next := getBuffer()
		assert.LessOrEqual(t, next.Cap(), maxPooledBufferSize)
		putBuffer(next)
	})
}
