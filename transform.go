package cjknorm

import (
	"bytes"

	"golang.org/x/text/transform"
)

// Transformer normalizes a stream of text. It implements interface
// transform.Transformer from golang.org/x/text/transform, and may be used
// with transform.NewReader, transform.NewWriter or transform.String.
//
// As opposed to Normalize, a Transformer keeps line breaks: every "\n" of the
// input is copied to the output, and "\r\n" is written as "\n".
//
// Lines are normalized as a whole, so a Transformer will hold back input until
// it sees a line break or the end of input. Lines must fit into the source
// buffer of the caller; transform.Reader and transform.Writer use buffers of
// 4096 bytes.
type Transformer struct {
	transform.NopResetter
	nz *Normalizer
}

// Transformer returns a Transformer normalizing with nz.
func (nz *Normalizer) Transformer() Transformer {
	return Transformer{nz: nz}
}

// NewTransformer returns a Transformer with default settings.
func NewTransformer() Transformer {
	return defaultNormalizer.Transformer()
}

// Transform is part of interface transform.Transformer.
func (t Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	nz := t.nz
	if nz == nil {
		nz = defaultNormalizer
	}
	for nSrc < len(src) {
		var line []byte
		var advance int
		eol := bytes.IndexByte(src[nSrc:], '\n')
		if eol < 0 {
			if !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			line, advance = src[nSrc:], len(src)-nSrc
		} else {
			line, advance = src[nSrc:nSrc+eol], eol+1
		}
		out := nz.NormalizeLine(string(bytes.TrimSuffix(line, []byte{'\r'})))
		need := len(out)
		if eol >= 0 {
			need++
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], out)
		if eol >= 0 {
			dst[nDst] = '\n'
			nDst++
		}
		nSrc += advance
	}
	return nDst, nSrc, nil
}
