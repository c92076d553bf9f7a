package eps

import (
	"strconv"
	"strings"
)

// Header collects the document-structuring comments of the prolog, keyed
// by comment name without the %% prefix. Values of repeated keys keep the
// first occurrence unless it was deferred with (atend).
type Header map[string]string

const deferred = "(atend)"

func parseHeader(rs *Reader) Header {
	var (
		hdr  = make(Header)
		last string
	)
	for i := 1; i <= rs.Len(); i++ {
		str := rs.Line(i)
		if Classify(str) == EndSetup {
			break
		}
		if !strings.HasPrefix(str, "%%") {
			continue
		}
		if strings.HasPrefix(str, "%%+") && last != "" {
			hdr[last] += " " + strings.TrimSpace(str[3:])
			continue
		}
		ix := strings.IndexByte(str, ':')
		if ix < 0 {
			last = ""
			continue
		}
		var (
			key = str[2:ix]
			val = strings.TrimSpace(str[ix+1:])
		)
		last = key
		if old, ok := hdr[key]; !ok || old == deferred {
			hdr[key] = val
		}
	}
	return hdr
}

func (h Header) Has(key string) bool {
	_, ok := h[key]
	return ok
}

func (h Header) GetString(key string) string {
	v := h[key]
	if v == deferred {
		return ""
	}
	return convertString(v)
}

func (h Header) GetInt(key string) int64 {
	i, _ := strconv.ParseInt(h.GetString(key), 0, 64)
	return i
}

func (h Header) GetFloats(key string) []float64 {
	var (
		fields = strings.Fields(h.GetString(key))
		list   []float64
	)
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil
		}
		list = append(list, v)
	}
	return list
}

func (h Header) GetStrings(key string) []string {
	return strings.Fields(h.GetString(key))
}

// BoundingBox returns the declared llx, lly, urx, ury of the figure.
func (h Header) BoundingBox() ([4]float64, bool) {
	var box [4]float64
	list := h.GetFloats("BoundingBox")
	if len(list) != 4 {
		return box, false
	}
	copy(box[:], list)
	return box, true
}
