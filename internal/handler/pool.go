package handler

import (
	"bytes"
	"sync"
)

const (
	// initialBufferSize fits a single item envelope
	initialBufferSize = 512

	// maxPooledBufferSize stops a large list response from pinning memory in the pool
	maxPooledBufferSize = 64 << 10
)

var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

// getBuffer returns an empty buffer for encoding one response
func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// putBuffer hands a buffer back unless it grew past maxPooledBufferSize
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	bufferPool.Put(buf)
}
