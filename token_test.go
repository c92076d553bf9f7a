package eps

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	data := []struct {
		Line string
		Want Kind
	}{
		{Line: "GS", Want: Gsave},
		{Line: "GR", Want: Grestore},
		{Line: "N", Want: Newpath},
		{Line: "cp", Want: Close},
		{Line: "f", Want: Fill},
		{Line: "S", Want: Stroke},
		{Line: "clip", Want: Clip},
		{Line: "123 456 M", Want: Moveto},
		{Line: "-1.5 2.25 L", Want: Lineto},
		{Line: "0 0 612 792 re", Want: Rect},
		{Line: "1 setlinecap", Want: LineCap},
		{Line: "[4 2] 0 setdash", Want: Dash},
		{Line: "2 LJ", Want: LineJoin},
		{Line: "%AXGBegin", Want: BitmapBegin},
		{Line: "%AXGEnd", Want: BitmapEnd},
		{Line: "%%EndPageSetup", Want: EndSetup},
		{Line: "%%Trailer", Want: Trailer},
		{Line: "0.5 0.5 0.5 RC", Want: Other},
		{Line: "%%Page: 1 1", Want: Other},
		{Line: "", Want: Other},
		{Line: "M", Want: Other},
		{Line: "gsM", Want: Other},
	}
	for _, d := range data {
		require.Equal(t, d.Want, Classify(d.Line), "line %q", d.Line)
	}
}

func TestPointOf(t *testing.T) {
	require.Equal(t, "123 456", pointOf("123 456 M"))
	require.Equal(t, "-1.5 2.25", pointOf("-1.5 2.25 L"))
}

func TestParsePoint(t *testing.T) {
	pt, err := parsePoint("12.5 -3")
	require.NoError(t, err)
	require.Equal(t, 12.5, pt.x)
	require.Equal(t, -3.0, pt.y)

	_, err = parsePoint("oops")
	require.Error(t, err)

	_, err = parsePoint("12 oops")
	require.Error(t, err)
}
