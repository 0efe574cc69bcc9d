// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
)

// File format, little-endian throughout:
//
//	magic   [4]byte "LEVT"
//	version uint16
//	npos, nalpha, nbeta uint32
//	poslim  float64
//	3 sections (pdf grid, cdf grid, breakpoints), each:
//	    rawLen  uint64  (bytes before compression)
//	    compLen uint64
//	    payload [compLen]byte (zstd)
//	digest  uint64  (xxhash64 of everything before it)
//
// The grids dominate the file (~25 MB of float64 raw at the canonical
// geometry) and zstd brings that down considerably; the digest guards
// against truncated or corrupted table files, which would otherwise
// surface as silently wrong densities.
const (
	fileMagic   = "LEVT"
	fileVersion = 1
)

// WriteTo writes the bundle to w in the table file format.
func (b *Bundle) WriteTo(w io.Writer) (int64, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return 0, err
	}
	defer enc.Close()

	var buf bytes.Buffer
	buf.WriteString(fileMagic)
	writeLE(&buf, uint16(fileVersion))
	writeLE(&buf, uint32(b.PDF.NPos))
	writeLE(&buf, uint32(b.PDF.NAlpha))
	writeLE(&buf, uint32(b.PDF.NBeta))
	writeLE(&buf, math.Float64bits(b.PDF.PosLim))

	for _, sec := range [][]float64{b.PDF.Data, b.CDF.Data, b.Breaks.Data} {
		raw := floatsToBytes(sec)
		comp := enc.EncodeAll(raw, nil)
		writeLE(&buf, uint64(len(raw)))
		writeLE(&buf, uint64(len(comp)))
		buf.Write(comp)
	}

	writeLE(&buf, xxhash.Sum64(buf.Bytes()))
	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// WriteFile writes the bundle to the named file.
func (b *Bundle) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := b.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a bundle from r and validates it.
func Load(r io.Reader) (*Bundle, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) < 4+2+3*4+8+8 || string(data[:4]) != fileMagic {
		return nil, ErrFormat
	}
	digest := binary.LittleEndian.Uint64(data[len(data)-8:])
	if xxhash.Sum64(data[:len(data)-8]) != digest {
		return nil, ErrChecksum
	}

	p := data[4:]
	version := binary.LittleEndian.Uint16(p)
	if version != fileVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrFormat, version)
	}
	p = p[2:]
	npos := int(binary.LittleEndian.Uint32(p))
	nalpha := int(binary.LittleEndian.Uint32(p[4:]))
	nbeta := int(binary.LittleEndian.Uint32(p[8:]))
	poslim := math.Float64frombits(binary.LittleEndian.Uint64(p[12:]))
	p = p[20 : len(p)-8] // the sections, excluding the trailing digest

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var secs [3][]float64
	for i := range secs {
		if len(p) < 16 {
			return nil, fmt.Errorf("%w: truncated section %d", ErrFormat, i)
		}
		rawLen := binary.LittleEndian.Uint64(p)
		compLen := binary.LittleEndian.Uint64(p[8:])
		p = p[16:]
		if uint64(len(p)) < compLen {
			return nil, fmt.Errorf("%w: truncated section %d", ErrFormat, i)
		}
		raw, err := dec.DecodeAll(p[:compLen], make([]byte, 0, rawLen))
		if err != nil {
			return nil, fmt.Errorf("table: decompressing section %d: %w", i, err)
		}
		if uint64(len(raw)) != rawLen || rawLen%8 != 0 {
			return nil, fmt.Errorf("%w: section %d raw length %d", ErrFormat, i, len(raw))
		}
		secs[i] = bytesToFloats(raw)
		p = p[compLen:]
	}

	b := &Bundle{
		PDF:    Grid{NPos: npos, NAlpha: nalpha, NBeta: nbeta, PosLim: poslim, Data: secs[0]},
		CDF:    Grid{NPos: npos, NAlpha: nalpha, NBeta: nbeta, PosLim: poslim, Data: secs[1]},
		Breaks: Breakpoints{NAlpha: nalpha, NBeta: nbeta, Data: secs[2]},
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// LoadFile reads a bundle from the named file. The returned bundle is
// immutable; load it once at startup and share it between evaluators.
func LoadFile(path string) (*Bundle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

func writeLE(buf *bytes.Buffer, v any) {
	binary.Write(buf, binary.LittleEndian, v)
}

func floatsToBytes(fs []float64) []byte {
	raw := make([]byte, 8*len(fs))
	for i, f := range fs {
		binary.LittleEndian.PutUint64(raw[8*i:], math.Float64bits(f))
	}
	return raw
}

func bytesToFloats(raw []byte) []float64 {
	fs := make([]float64, len(raw)/8)
	for i := range fs {
		fs[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[8*i:]))
	}
	return fs
}
