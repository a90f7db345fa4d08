package graphml

import (
	"io"
	"sort"
)

// lineReader counts newlines flowing to the XML decoder so byte offsets can
// be mapped back to line:column pairs, and remembers the first failure of
// the source stream to tell transport errors apart from syntax errors.
type lineReader struct {
	src io.Reader
	off int64   // bytes seen so far
	nl  []int64 // offsets of '\n' bytes, ascending
	err error   // first non-EOF source error
}

func newLineReader(src io.Reader) *lineReader {
	return &lineReader{src: src}
}

// Read passes bytes through while recording newline offsets.
func (lr *lineReader) Read(p []byte) (int, error) {
	n, err := lr.src.Read(p)
	for i := 0; i < n; i++ {
		if p[i] == '\n' {
			lr.nl = append(lr.nl, lr.off+int64(i))
		}
	}
	lr.off += int64(n)
	if err != nil && err != io.EOF && lr.err == nil {
		lr.err = err
	}

	return n, err
}

// pos maps a byte offset to a 1-based line and column. Offsets at or past
// the bytes seen land on the last known line.
// Complexity: O(log lines)
func (lr *lineReader) pos(off int64) (line, col int) {
	i := sort.Search(len(lr.nl), func(i int) bool { return lr.nl[i] >= off })
	line = i + 1
	var lineStart int64
	if i > 0 {
		lineStart = lr.nl[i-1] + 1
	}
	col = int(off-lineStart) + 1

	return line, col
}
