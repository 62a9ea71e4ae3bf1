// Package report emits the line-oriented KEY=VALUE output consumed by
// test pipelines. Keys go to one writer, in call order, one per line.
package report

import (
	"fmt"
	"io"
)

// Writer emits KEY=VALUE lines.
type Writer struct {
	w io.Writer
}

// New returns a Writer emitting to w.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Put writes KEY=VALUE with the default formatting of value.
func (r *Writer) Put(key string, value any) {
	fmt.Fprintf(r.w, "%s=%v\n", key, value)
}

// Hex16 writes KEY=0xNNNN, the format used for vendor/product ids.
func (r *Writer) Hex16(key string, v uint16) {
	fmt.Fprintf(r.w, "%s=0x%04X\n", key, v)
}

// Hex32 writes KEY=0xNNNNNNNN, the format used for button masks.
func (r *Writer) Hex32(key string, v uint32) {
	fmt.Fprintf(r.w, "%s=0x%08X\n", key, v)
}
