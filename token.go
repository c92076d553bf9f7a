package eps

import "strings"

// The engine understands a fixed subset of the operator shorthands that the
// plotting toolkit writes into its EPS output. Everything else is opaque
// passthrough.
const (
	opGsave    = "GS"
	opGrestore = "GR"
	opNewpath  = "N"
	opClose    = "cp"
	opFill     = "f"
	opStroke   = "S"
	opClip     = "clip"
	opMoveto   = "M"
	opLineto   = "L"
	opRect     = "re"
	opLineCap  = "setlinecap"
	opDash     = "setdash"
	opLineJoin = "LJ"

	begBitmap = "%AXGBegin"
	endBitmap = "%AXGEnd"

	endSetup   = "%%EndPageSetup"
	begTrailer = "%%Trailer"

	synthLineCap = "1 setlinecap"
)

type Kind int

const (
	Other Kind = iota
	Gsave
	Grestore
	Newpath
	Close
	Fill
	Stroke
	Clip
	Moveto
	Lineto
	Rect
	LineCap
	Dash
	LineJoin
	BitmapBegin
	BitmapEnd
	EndSetup
	Trailer
)

// Classify maps a terminator-stripped line to its token kind. Exact matches
// are tried before operator suffixes; the order of the suffix checks keeps
// the single-letter path operators from shadowing the named ones.
func Classify(str string) Kind {
	switch str {
	case opGsave:
		return Gsave
	case opGrestore:
		return Grestore
	case opNewpath:
		return Newpath
	case opClose:
		return Close
	case opFill:
		return Fill
	case opStroke:
		return Stroke
	case opClip:
		return Clip
	case endSetup:
		return EndSetup
	case begTrailer:
		return Trailer
	}
	switch {
	case strings.HasPrefix(str, begBitmap):
		return BitmapBegin
	case strings.HasPrefix(str, endBitmap):
		return BitmapEnd
	case hasOperator(str, opLineCap):
		return LineCap
	case hasOperator(str, opDash):
		return Dash
	case hasOperator(str, opLineJoin):
		return LineJoin
	case hasOperator(str, opRect):
		return Rect
	case strings.HasSuffix(str, " "+opMoveto):
		return Moveto
	case strings.HasSuffix(str, " "+opLineto):
		return Lineto
	}
	return Other
}

// hasOperator reports whether str is the bare operator or ends with it as a
// separate word.
func hasOperator(str, op string) bool {
	return str == op || strings.HasSuffix(str, " "+op)
}

// pointOf strips the trailing operator letter from a moveto/lineto line and
// returns the textual coordinate pair. The text is kept verbatim apart from
// surrounding blanks; equality of point ids is byte equality.
func pointOf(str string) string {
	return strings.TrimSpace(str[:len(str)-1])
}
