package relay

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// MaxFrameSize is the largest payload a two byte length prefix can carry.
const MaxFrameSize = 1<<16 - 1

var (
	ErrFrameTooLarge = errors.New("relay: frame exceeds 65535 bytes")
	ErrInvalidUTF8   = errors.New("relay: frame is not valid UTF-8")
)

// ReadFrame reads one length-prefixed frame: a big-endian uint16 byte count
// followed by that many bytes of UTF-8 text.
func ReadFrame(r io.Reader) (string, error) {
	var n uint16
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return "", err
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("read frame body: %w", err)
	}
	if !utf8.Valid(buf) {
		return "", ErrInvalidUTF8
	}
	return string(buf), nil
}

func WriteFrame(w io.Writer, payload string) error {
	if len(payload) > MaxFrameSize {
		return ErrFrameTooLarge
	}

	buf := make([]byte, 2+len(payload))
	binary.BigEndian.PutUint16(buf, uint16(len(payload)))
	copy(buf[2:], payload)

	_, err := w.Write(buf)
	return err
}
