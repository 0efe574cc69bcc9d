// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bytes"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testBundle(t *testing.T) *Bundle {
	t.Helper()
	const npos, nalpha, nbeta = 8, 5, 4
	b := &Bundle{
		PDF:    Grid{NPos: npos, NAlpha: nalpha, NBeta: nbeta, PosLim: 1.5, Data: make([]float64, npos*nalpha*nbeta)},
		CDF:    Grid{NPos: npos, NAlpha: nalpha, NBeta: nbeta, PosLim: 1.5, Data: make([]float64, npos*nalpha*nbeta)},
		Breaks: Breakpoints{NAlpha: nalpha, NBeta: nbeta, Data: make([]float64, nalpha*nbeta)},
	}
	for i := range b.PDF.Data {
		b.PDF.Data[i] = math.Sin(float64(i))
		b.CDF.Data[i] = float64(i) / float64(len(b.CDF.Data))
	}
	for i := range b.Breaks.Data {
		b.Breaks.Data[i] = 10 + float64(i)
	}
	require.NoError(t, b.Validate())
	return b
}

func TestRoundTrip(t *testing.T) {
	b := testBundle(t)

	var buf bytes.Buffer
	_, err := b.WriteTo(&buf)
	require.NoError(t, err)

	got, err := Load(&buf)
	require.NoError(t, err)
	require.Equal(t, b.PDF, got.PDF)
	require.Equal(t, b.CDF, got.CDF)
	require.Equal(t, b.Breaks, got.Breaks)
}

func TestRoundTripFile(t *testing.T) {
	b := testBundle(t)
	path := filepath.Join(t.TempDir(), "tables.levt")
	require.NoError(t, b.WriteFile(path))

	got, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, b.Breaks, got.Breaks)
}

func TestLoadCorrupt(t *testing.T) {
	b := testBundle(t)
	var buf bytes.Buffer
	_, err := b.WriteTo(&buf)
	require.NoError(t, err)

	data := buf.Bytes()
	data[len(data)/2] ^= 0xff
	_, err = Load(bytes.NewReader(data))
	require.ErrorIs(t, err, ErrChecksum)
}

func TestLoadNotATable(t *testing.T) {
	_, err := Load(bytes.NewReader([]byte("definitely not a table file")))
	require.ErrorIs(t, err, ErrFormat)

	_, err = Load(bytes.NewReader(nil))
	require.ErrorIs(t, err, ErrFormat)
}

func TestValidateShape(t *testing.T) {
	b := testBundle(t)
	b.Breaks.NAlpha = 3
	require.ErrorIs(t, b.Validate(), ErrShape)

	b = testBundle(t)
	b.CDF.Data = b.CDF.Data[:10]
	require.ErrorIs(t, b.Validate(), ErrShape)
}

func TestBreakpointsAt(t *testing.T) {
	// 4 alpha nodes over [0.5, 2], 5 beta nodes over [-1, 1]. The
	// lookup truncates the linear index mapping, matching the grid
	// cell addressing used when the table was built.
	bp := Breakpoints{NAlpha: 4, NBeta: 5, Data: make([]float64, 20)}
	for i := range bp.Data {
		bp.Data[i] = float64(i)
	}
	require.Equal(t, 0.0, bp.At(0.5, -1))
	require.Equal(t, 19.0, bp.At(2.0, 1))
	// alpha=1.3 maps to index int((1.3-0.5)/1.5*3) = 1;
	// beta=0.2 maps to index int((0.2+1)/2*4) = 2.
	require.Equal(t, 7.0, bp.At(1.3, 0.2))
}
