package srv

import (
	"fmt"
	"net/http"
	"strings"

	"sumpus.exe.dev/klon"
)

// ogpVerses is how many verses fit on the card: one stanza.
const ogpVerses = klon.StanzaSize

// HandleOGPImage generates an SVG OGP image for a check result: the first stanza
// laid out as four couplets, each verse coloured by its status.
func (s *Server) HandleOGPImage(w http.ResponseWriter, r *http.Request) {
	result, ok := s.loadResult(w, r)
	if !ok {
		return
	}

	verses := displayVerses(result)
	var statuses []klon.Status
	if result.Report != nil {
		statuses = result.Report.VerseStatuses
	}

	var rows strings.Builder
	for i, v := range verses {
		if i >= ogpVerses {
			break
		}
		x := 170
		if i%2 == 1 {
			x = 470
		}
		y := 130 + (i/2)*40
		fill := "#2f7d4f"
		if i < len(statuses) && statuses[i] == klon.Fail {
			fill = "#b83a2a"
		}
		fmt.Fprintf(&rows,
			`<text x="%d" y="%d" text-anchor="middle" font-size="17" fill="%s" font-family="sans-serif">%s</text>`,
			x, y, fill, svgEsc(truncateRunes(v, 22)))
	}
	more := ""
	if len(verses) > ogpVerses {
		more = fmt.Sprintf(`<text x="320" y="282" text-anchor="middle" font-size="13" fill="#857868" font-family="sans-serif">และอีก %d วรรค</text>`,
			len(verses)-ogpVerses)
	}

	verdict, verdictFill := "สัมผัสครบถ้วน", "#2f7d4f"
	if result.Failures > 0 {
		verdict, verdictFill = fmt.Sprintf("ผิดสัมผัส %d จุด", result.Failures), "#b83a2a"
	}
	title := result.Title
	if title == "" {
		title = "กลอนแปด"
	}

	svg := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="1200" height="630" viewBox="0 0 640 330">
  <defs>
    <linearGradient id="bg" x1="0" y1="0" x2="1" y2="1">
      <stop offset="0%%" stop-color="#8a5a2b"/>
      <stop offset="100%%" stop-color="#c49a6c"/>
    </linearGradient>
  </defs>
  <rect width="640" height="330" rx="0" fill="url(#bg)"/>
  <rect x="16" y="16" width="608" height="298" rx="16" fill="#fcf9f2" opacity="0.97"/>

  <!-- Title -->
  <text x="320" y="60" text-anchor="middle" font-size="24" font-weight="700" fill="#2c2420" font-family="sans-serif">%s</text>
  <text x="320" y="88" text-anchor="middle" font-size="15" font-weight="600" fill="%s" font-family="sans-serif">%s</text>

  <!-- Divider -->
  <line x1="320" y1="105" x2="320" y2="260" stroke="#dcd2c0" stroke-width="1" stroke-dasharray="4,4"/>

  <!-- Verses -->
  %s
  %s

  <!-- Footer -->
  <text x="320" y="305" text-anchor="middle" font-size="12" fill="#c4b8a8" font-family="sans-serif">สัมผัส · ตรวจสัมผัสกลอนแปด</text>
</svg>`,
		svgEsc(truncateRunes(title, 30)), verdictFill, svgEsc(verdict), rows.String(), more)

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write([]byte(svg))
}

func svgEsc(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	return s
}

// truncateRunes shortens s to at most max runes, marking the cut with an ellipsis.
func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
