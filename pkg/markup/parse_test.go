package markup

import (
	"reflect"
	"regexp"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Block
	}{
		{
			name: "heading then paragraph",
			in:   "# Title\n\nSome text",
			want: []Block{
				{Kind: Heading, Level: 1, Text: "Title"},
				{Kind: Break},
				{Kind: Paragraph, Spans: []Span{{Style: Plain, Text: "Some text"}}},
			},
		},
		{
			name: "unordered list",
			in:   "* one\n* two",
			want: []Block{
				{Kind: List, Items: [][]Span{
					{{Style: Plain, Text: "one"}},
					{{Style: Plain, Text: "two"}},
				}},
			},
		},
		{
			name: "ordered list",
			in:   "1. first\n2. second",
			want: []Block{
				{Kind: List, Ordered: true, Items: [][]Span{
					{{Style: Plain, Text: "first"}},
					{{Style: Plain, Text: "second"}},
				}},
			},
		},
		{
			name: "bold and italic",
			in:   "**bold** and *italic*",
			want: []Block{
				{Kind: Paragraph, Spans: []Span{
					{Style: Bold, Text: "bold"},
					{Style: Plain, Text: " and "},
					{Style: Italic, Text: "italic"},
				}},
			},
		},
		{
			name: "empty",
			in:   "",
			want: nil,
		},
		{
			name: "heading levels",
			in:   "## Two\n### Three\n#### Four",
			want: []Block{
				{Kind: Heading, Level: 2, Text: "Two"},
				{Kind: Heading, Level: 3, Text: "Three"},
				{Kind: Paragraph, Spans: []Span{{Style: Plain, Text: "#### Four"}}},
			},
		},
		{
			name: "unordered switches to ordered",
			in:   "* a\n1. b\n2. c",
			want: []Block{
				{Kind: List, Items: [][]Span{{{Style: Plain, Text: "a"}}}},
				{Kind: List, Ordered: true, Items: [][]Span{
					{{Style: Plain, Text: "b"}},
					{{Style: Plain, Text: "c"}},
				}},
			},
		},
		{
			name: "ordered then bullet stays in list",
			in:   "1. first\n* second",
			want: []Block{
				{Kind: List, Ordered: true, Items: [][]Span{
					{{Style: Plain, Text: "first"}},
					{{Style: Plain, Text: "second"}},
				}},
			},
		},
		{
			name: "paragraph closes list",
			in:   "* a\nplain\n* b",
			want: []Block{
				{Kind: List, Items: [][]Span{{{Style: Plain, Text: "a"}}}},
				{Kind: Paragraph, Spans: []Span{{Style: Plain, Text: "plain"}}},
				{Kind: List, Items: [][]Span{{{Style: Plain, Text: "b"}}}},
			},
		},
		{
			name: "indented bullets and emphasis in items",
			in:   "  * **Growth**: more *cells*",
			want: []Block{
				{Kind: List, Items: [][]Span{{
					{Style: Bold, Text: "Growth"},
					{Style: Plain, Text: ": more "},
					{Style: Italic, Text: "cells"},
				}}},
			},
		},
		{
			name: "blank lines only",
			in:   "\n",
			want: []Block{{Kind: Break}, {Kind: Break}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Parse(%q)\n got: %+v\nwant: %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestInline(t *testing.T) {
	tests := []struct {
		in   string
		want []Span
	}{
		{in: "no emphasis", want: []Span{{Style: Plain, Text: "no emphasis"}}},
		{in: "a **b** c", want: []Span{{Plain, "a "}, {Bold, "b"}, {Plain, " c"}}},
		{in: "**x** **y**", want: []Span{{Bold, "x"}, {Plain, " "}, {Bold, "y"}}},
		{in: "lone * star", want: []Span{{Plain, "lone * star"}}},
		{in: "unpaired **bold", want: []Span{{Plain, "unpaired **bold"}}},
		{in: "*a*b*", want: []Span{{Italic, "a"}, {Plain, "b*"}}},
		{in: "****", want: nil},
		{in: "F = m*a", want: []Span{{Plain, "F = m*a"}}},
	}
	for _, tt := range tests {
		got := Inline(tt.in)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Inline(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestHTML(t *testing.T) {
	got := HTML(Parse("# T <1>\n* **a**\n* *b*\n\n1. c\nend"))
	want := strings.Join([]string{
		"<h1>T &lt;1&gt;</h1>",
		"<ul>",
		"<li><strong>a</strong></li>",
		"<li><em>b</em></li>",
		"</ul>",
		"<br/>",
		"<ol>",
		"<li>c</li>",
		"</ol>",
		"<p>end</p>",
		"",
	}, "\n")
	if got != want {
		t.Fatalf("unexpected html:\n%s\nwant:\n%s", got, want)
	}
	if HTML(Parse("")) != "" {
		t.Fatalf("expected empty html for empty body")
	}
}

func TestPlainText(t *testing.T) {
	got := PlainText(Parse("# Cells\n1. one\n2. two\n\n* dot"), 0)
	want := "Cells\n=====\n  1. one\n  2. two\n\n  • dot"
	if got != want {
		t.Fatalf("unexpected text:\n%q\nwant:\n%q", got, want)
	}
}

func TestPlainTextWrapsListItems(t *testing.T) {
	got := PlainText(Parse("* alpha beta gamma delta epsilon"), 20)
	for _, line := range strings.Split(got, "\n")[1:] {
		if !strings.HasPrefix(line, "    ") {
			t.Fatalf("continuation line not indented: %q in\n%s", line, got)
		}
	}
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;:]*[A-Za-z~]`)

func TestTerminalKeepsText(t *testing.T) {
	out := Terminal(Parse("## Heading\n* **bold** item\nrunning *text*"), 60, DefaultStyles())
	plain := ansiPattern.ReplaceAllString(out, "")
	for _, want := range []string{"Heading", "• bold item", "running text"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("expected %q in rendered output:\n%s", want, plain)
		}
	}
}
