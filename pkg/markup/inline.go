package markup

import "regexp"

var boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

// Inline splits a line into spans. `**text**` pairs become bold first; in the
// text left between them a single `*text*` that touches no other `*` becomes
// italic. Emphasis does not nest.
func Inline(s string) []Span {
	var spans []Span
	last := 0
	for _, m := range boldPattern.FindAllStringSubmatchIndex(s, -1) {
		spans = appendItalic(spans, s[last:m[0]])
		if m[3] > m[2] {
			spans = append(spans, Span{Style: Bold, Text: s[m[2]:m[3]]})
		}
		last = m[1]
	}
	return appendItalic(spans, s[last:])
}

func appendItalic(spans []Span, s string) []Span {
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '*' || (i > 0 && s[i-1] == '*') {
			continue
		}
		j := i + 1
		for j < len(s) && s[j] != '*' && s[j] != '\n' {
			j++
		}
		if j == i+1 || j >= len(s) || s[j] != '*' {
			continue
		}
		if j+1 < len(s) && s[j+1] == '*' {
			continue
		}
		spans = appendPlain(spans, s[start:i])
		spans = append(spans, Span{Style: Italic, Text: s[i+1 : j]})
		start = j + 1
		i = j
	}
	return appendPlain(spans, s[start:])
}

func appendPlain(spans []Span, s string) []Span {
	if s == "" {
		return spans
	}
	if n := len(spans); n > 0 && spans[n-1].Style == Plain {
		spans[n-1].Text += s
		return spans
	}
	return append(spans, Span{Style: Plain, Text: s})
}
