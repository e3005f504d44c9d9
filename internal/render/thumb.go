package render

import (
	"fmt"
	"strings"
)

const (
	thumbSaturation = 70
	thumbLightness  = 55
	thumbHueShift   = 70

	dataURIPrefix = "data:image/svg+xml,"
)

const thumbSVG = `<svg xmlns='http://www.w3.org/2000/svg' width='1200' height='675'>
      <defs><linearGradient id='g' x1='0' y1='0' x2='1' y2='1'>
        <stop offset='0%%' stop-color='hsl(%d,%d%%,%d%%)'/>
        <stop offset='100%%' stop-color='hsl(%d,%d%%,%d%%)'/>
      </linearGradient></defs>
      <rect width='100%%' height='100%%' fill='url(#g)'/>
      <text x='50%%' y='54%%' dominant-baseline='middle' text-anchor='middle'
        fill='rgba(0,0,0,.3)' font-family='Inter,Arial' font-size='86' font-weight='800'>
        %s
      </text>
    </svg>`

// Hue derives a hue in [0, 360) from the code points of title.
func Hue(title string) int {
	sum := 0
	for _, r := range title {
		sum += int(r)
	}
	return sum % 360
}

// Thumbnail returns a self-contained SVG data URI showing title over a
// gradient whose colors are derived from title.
func Thumbnail(title string) string {
	hue := Hue(title)
	svg := fmt.Sprintf(thumbSVG,
		hue, thumbSaturation, thumbLightness,
		(hue+thumbHueShift)%360, thumbSaturation, thumbLightness,
		Escape(title),
	)
	return dataURIPrefix + percentEncode(svg)
}

// percentEncode escapes every byte except ASCII letters, digits and "_.-~/".
func percentEncode(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s) * 2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '_', c == '.', c == '-', c == '~', c == '/':
		return true
	}
	return false
}
