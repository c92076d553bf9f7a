package eps

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

var latin1 = charmap.ISO8859_1.NewDecoder()

// convertString decodes a DSC header value. The body of the files we
// process is 7-bit, but titles and creator strings occasionally carry
// Latin-1 bytes.
func convertString(str string) string {
	for i := 0; i < len(str); i++ {
		if str[i] >= 0x80 {
			if dec, err := latin1.String(str); err == nil {
				return dec
			}
			break
		}
	}
	return str
}

// parsePoint interprets a textual point id as coordinates. Ids stay
// verbatim everywhere else; only the polygon merger needs numbers.
func parsePoint(id string) (point, error) {
	var pt point
	ix := strings.IndexByte(id, ' ')
	if ix < 0 {
		return pt, fmt.Errorf("point %q: missing separator", id)
	}
	x, err := strconv.ParseFloat(id[:ix], 64)
	if err != nil {
		return pt, fmt.Errorf("point %q: %s", id, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(id[ix+1:]), 64)
	if err != nil {
		return pt, fmt.Errorf("point %q: %s", id, err)
	}
	pt.x, pt.y = x, y
	return pt, nil
}

func unit(p point) point {
	n := math.Hypot(p.x, p.y)
	if n == 0 {
		return p
	}
	return point{x: p.x / n, y: p.y / n}
}

func cross(a, b point) float64 {
	return a.x*b.y - a.y*b.x
}

func dot(a, b point) float64 {
	return a.x*b.x + a.y*b.y
}
