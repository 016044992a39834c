package ledger

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/natefinch/atomic"
	"go.uber.org/multierr"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Encoding is the character encoding of a ledger file.
type Encoding string

const (
	UTF8        Encoding = "utf-8"
	Latin1      Encoding = "latin1"
	Windows1252 Encoding = "windows-1252"
)

// Encodings lists the supported encodings.
var Encodings = []Encoding{UTF8, Latin1, Windows1252}

// ParseEncoding parses an encoding name.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(s) {
	case "", "utf-8", "utf8":
		return UTF8, nil
	case "latin1", "latin-1", "iso-8859-1":
		return Latin1, nil
	case "windows-1252", "cp1252":
		return Windows1252, nil
	}
	return "", fmt.Errorf("unsupported encoding %q", s)
}

func (e Encoding) charmap() encoding.Encoding {
	switch e {
	case Latin1:
		return charmap.ISO8859_1
	case Windows1252:
		return charmap.Windows1252
	}
	return nil
}

func (e Encoding) reader(r io.Reader) io.Reader {
	if cm := e.charmap(); cm != nil {
		return cm.NewDecoder().Reader(r)
	}
	return r
}

func (e Encoding) encode(b []byte) ([]byte, error) {
	if cm := e.charmap(); cm != nil {
		return cm.NewEncoder().Bytes(b)
	}
	return b, nil
}

// LoadFile loads the ledger stored at path.
func LoadFile(path string, enc Encoding) (l *Ledger, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()
	l, err = Load(enc.reader(bufio.NewReader(f)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// SaveFile writes the ledger to path. The file is replaced atomically, so
// that a failed write leaves the previous content intact.
func (l *Ledger) SaveFile(path string, enc Encoding) error {
	var buf bytes.Buffer
	if err := l.Save(&buf); err != nil {
		return err
	}
	b, err := enc.encode(buf.Bytes())
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return atomic.WriteFile(path, bytes.NewReader(b))
}
