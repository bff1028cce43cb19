package pgnparse

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// ReadText reads all PGN text from r. A zstd stream is decompressed on the
// fly, so .pgn and .pgn.zst content can be passed alike.
func ReadText(r io.Reader) (string, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(zstdMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("peek input: %w", err)
	}

	var src io.Reader = br
	if bytes.Equal(head, zstdMagic) {
		dec, err := zstd.NewReader(br)
		if err != nil {
			return "", fmt.Errorf("open zstd stream: %w", err)
		}
		defer dec.Close()
		src = dec
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("read pgn: %w", err)
	}
	return string(data), nil
}
