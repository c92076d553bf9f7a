package eps

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleProlog = `%!PS-Adobe-3.0 EPSF-3.0
%%BoundingBox: 0 0 420 297
%%Title: sample figure
%%Creator: plotkit 4.2
%%CreationDate: 2024-11-05
%%LanguageLevel: 2
%%DocumentFonts: Helvetica
%%+ Courier
%%Pages: (atend)
%%EndComments
%%BeginPageSetup
%%EndPageSetup
GS
GR
%%Trailer
%%Pages: 1
%%EOF
`

func TestParseHeader(t *testing.T) {
	hdr := parseHeader(NewReader([]byte(sampleProlog)))

	require.Equal(t, "sample figure", hdr.GetString("Title"))
	require.Equal(t, "plotkit 4.2", hdr.GetString("Creator"))
	require.Equal(t, int64(2), hdr.GetInt("LanguageLevel"))
	require.Equal(t, []string{"Helvetica", "Courier"}, hdr.GetStrings("DocumentFonts"))

	box, ok := hdr.BoundingBox()
	require.True(t, ok)
	require.Equal(t, [4]float64{0, 0, 420, 297}, box)

	// deferred values read as absent: the trailer is not scanned
	require.Equal(t, "", hdr.GetString("Pages"))
	require.True(t, hdr.Has("Pages"))
	require.False(t, hdr.Has("Routing"))
}

func TestHeaderStopsAtSetup(t *testing.T) {
	buf := []byte("%%Title: before\n%%EndPageSetup\n%%Title: after\n")
	hdr := parseHeader(NewReader(buf))
	require.Equal(t, "before", hdr.GetString("Title"))
}

func TestHeaderFirstValueWins(t *testing.T) {
	buf := []byte("%%Title: first\n%%Title: second\n")
	hdr := parseHeader(NewReader(buf))
	require.Equal(t, "first", hdr.GetString("Title"))
}

func TestHeaderLatin1(t *testing.T) {
	buf := []byte("%%Title: caf\xe9\n")
	hdr := parseHeader(NewReader(buf))
	require.Equal(t, "café", hdr.GetString("Title"))
}

func TestHeaderBadBox(t *testing.T) {
	buf := []byte("%%BoundingBox: (atend)\n")
	hdr := parseHeader(NewReader(buf))
	_, ok := hdr.BoundingBox()
	require.False(t, ok)
}
