package stream

import (
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultEncoding is used when no encoding is configured.
const DefaultEncoding = "utf-8"

// LookupEncoding resolves an encoding label such as "utf-8" or "latin1".
func LookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		return unicode.UTF8, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, errors.Wrapf(err, "unsupported encoding %q", name)
	}
	return enc, nil
}

// decoder turns raw socket bytes into text without ever failing.
// Incomplete multi-byte sequences are held back until the next chunk; invalid
// bytes come out as U+FFFD.
type decoder struct {
	t       transform.Transformer
	pending []byte
}

func newDecoder(enc encoding.Encoding) *decoder {
	if enc == nil {
		enc = unicode.UTF8
	}
	return &decoder{t: enc.NewDecoder()}
}

// decode converts chunk, carrying any incomplete trailing sequence.
func (d *decoder) decode(chunk []byte) string {
	src := append(d.pending, chunk...)
	out, rest := d.run(src, false)
	d.pending = append(d.pending[:0:0], rest...)
	return out
}

// flush converts whatever is still pending at end of stream.
func (d *decoder) flush() string {
	if len(d.pending) == 0 {
		return ""
	}
	out, _ := d.run(d.pending, true)
	d.pending = nil
	return out
}

func (d *decoder) run(src []byte, atEOF bool) (string, []byte) {
	dst := make([]byte, len(src)*utf8.UTFMax+utf8.UTFMax)
	var out []byte
	for {
		nDst, nSrc, err := d.t.Transform(dst, src, atEOF)
		out = append(out, dst[:nDst]...)
		src = src[nSrc:]
		switch {
		case err == nil:
			return string(out), nil
		case errors.Is(err, transform.ErrShortDst) && (nDst > 0 || nSrc > 0):
			continue
		case errors.Is(err, transform.ErrShortSrc):
			return string(out), src
		default:
			// Lossy: replace the offending byte and keep going.
			if len(src) == 0 {
				return string(out), nil
			}
			out = append(out, string(utf8.RuneError)...)
			src = src[1:]
		}
	}
}
