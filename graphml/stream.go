package graphml

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/grafio/prop"
)

// Compression selects the wire encoding wrapped around a GraphML stream.
type Compression uint8

const (
	CompressNone Compression = iota
	CompressGzip
	CompressZstd
)

// String reports the conventional short name of the encoding.
func (c Compression) String() string {
	switch c {
	case CompressGzip:
		return "gzip"
	case CompressZstd:
		return "zstd"
	default:
		return "none"
	}
}

// CompressionForPath guesses the compression from a file extension.
// Unknown extensions map to CompressNone.
func CompressionForPath(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return CompressGzip
	case ".zst", ".zstd":
		return CompressZstd
	default:
		return CompressNone
	}
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// ReadAuto sniffs the stream's leading bytes, unwraps gzip or zstd when
// their magic is present and feeds the decoded document to Read. Plain
// documents pass through untouched, so callers never need to know how a
// file was stored.
func ReadAuto(r io.Reader, m Mutator, storeIDs bool) error {
	br := bufio.NewReader(r)
	head, err := br.Peek(4)
	if err != nil && err != io.EOF {
		return &Error{Kind: IOFailure, Msg: err.Error(), Err: err}
	}

	switch {
	case bytes.HasPrefix(head, zstdMagic):
		dec, err := zstd.NewReader(br)
		if err != nil {
			return &Error{Kind: IOFailure, Msg: err.Error(), Err: err}
		}
		defer dec.Close()

		return Read(dec, m, storeIDs)
	case bytes.HasPrefix(head, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return &Error{Kind: IOFailure, Msg: err.Error(), Err: err}
		}
		defer zr.Close()

		return Read(zr, m, storeIDs)
	default:
		return Read(br, m, storeIDs)
	}
}

// DetectDirected reports the edgedefault of the first <graph> element,
// unwrapping compression the way ReadAuto does. Tools reading documents of
// unknown orientation use it to build a matching host before parsing.
func DetectDirected(r io.Reader) (bool, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(4)
	if err != nil && err != io.EOF {
		return false, &Error{Kind: IOFailure, Msg: err.Error(), Err: err}
	}

	var src io.Reader = br
	switch {
	case bytes.HasPrefix(head, zstdMagic):
		dec, err := zstd.NewReader(br)
		if err != nil {
			return false, &Error{Kind: IOFailure, Msg: err.Error(), Err: err}
		}
		defer dec.Close()
		src = dec
	case bytes.HasPrefix(head, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return false, &Error{Kind: IOFailure, Msg: err.Error(), Err: err}
		}
		defer zr.Close()
		src = zr
	}

	dec := xml.NewDecoder(src)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return false, errf(SchemaViolation, "no <graph> element")
		}
		if err != nil {
			return false, &Error{Kind: XMLWellFormedness, Msg: err.Error(), Err: err}
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "graph" {
			continue
		}
		for _, a := range start.Attr {
			if a.Name.Local != "edgedefault" {
				continue
			}
			switch a.Value {
			case "directed":
				return true, nil
			case "undirected":
				return false, nil
			default:
				return false, errf(SchemaViolation, "edgedefault=%q, want directed or undirected", a.Value)
			}
		}

		return false, errf(SchemaViolation, "<graph> without edgedefault attribute")
	}
}

// WriteCompressed runs Write through the chosen compression, flushing and
// closing the compressor before returning. CompressNone degrades to a
// plain Write.
func WriteCompressed(w io.Writer, g View, maps *prop.Maps, orderedVertices bool, c Compression) error {
	switch c {
	case CompressGzip:
		zw := gzip.NewWriter(w)
		if err := Write(zw, g, maps, orderedVertices); err != nil {
			zw.Close()

			return err
		}
		if err := zw.Close(); err != nil {
			return &Error{Kind: IOFailure, Msg: err.Error(), Err: err}
		}

		return nil
	case CompressZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return &Error{Kind: IOFailure, Msg: err.Error(), Err: err}
		}
		if err := Write(zw, g, maps, orderedVertices); err != nil {
			zw.Close()

			return err
		}
		if err := zw.Close(); err != nil {
			return &Error{Kind: IOFailure, Msg: err.Error(), Err: err}
		}

		return nil
	default:
		return Write(w, g, maps, orderedVertices)
	}
}
