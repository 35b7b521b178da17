package layout

import (
	"strings"
	"unicode/utf8"

	"canvasedit/pkg/richdoc"
)

// Measurer reports rendered text metrics. Implementations must return the
// same result for the same input.
type Measurer interface {
	MeasureWidth(text string, f richdoc.Font) float64
	MeasureHeight(f richdoc.Font) float64
}

// maxCachedWidths bounds the width memo; it is dropped when full.
const maxCachedWidths = 1 << 14

type widthKey struct {
	text string
	font richdoc.Font
}

// Engine wraps runs into visual lines.
type Engine struct {
	measurer Measurer
	fallback richdoc.Style
	widths   map[widthKey]float64
	heights  map[richdoc.Font]float64
}

// NewEngine returns an engine measuring with m. fallback styles the caret
// line of an empty document.
func NewEngine(m Measurer, fallback richdoc.Style) *Engine {
	return &Engine{
		measurer: m,
		fallback: fallback.Normalize(),
		widths:   map[widthKey]float64{},
		heights:  map[richdoc.Font]float64{},
	}
}

func (e *Engine) Fallback() richdoc.Style { return e.fallback }

func (e *Engine) Width(text string, f richdoc.Font) float64 {
	if text == "" {
		return 0
	}
	key := widthKey{text: text, font: f}
	if w, ok := e.widths[key]; ok {
		return w
	}
	if len(e.widths) >= maxCachedWidths {
		e.reset()
	}
	w := e.measurer.MeasureWidth(text, f)
	e.widths[key] = w
	return w
}

func (e *Engine) Height(f richdoc.Font) float64 {
	if h, ok := e.heights[f]; ok {
		return h
	}
	h := e.measurer.MeasureHeight(f)
	e.heights[f] = h
	return h
}

// reset drops memoized measurements.
func (e *Engine) reset() {
	e.widths = map[widthKey]float64{}
	e.heights = map[richdoc.Font]float64{}
}

type word struct {
	text  string
	start int
}

// tokenize splits text into words: optional leading spaces followed by
// non-space characters, or a lone newline.
func tokenize(text string) []word {
	runes := []rune(text)
	var words []word
	for i := 0; i < len(runes); {
		if runes[i] == '\n' {
			words = append(words, word{text: "\n", start: i})
			i++
			continue
		}
		j := i
		for j < len(runes) && runes[j] == ' ' {
			j++
		}
		for j < len(runes) && runes[j] != ' ' && runes[j] != '\n' {
			j++
		}
		words = append(words, word{text: string(runes[i:j]), start: i})
		i = j
	}
	return words
}

// Generate lays runs out into lines no wider than maxWidth where word
// boundaries allow. A word wider than maxWidth gets a row of its own.
// Each fragment's Y is the bottom of its row.
func (e *Engine) Generate(runs richdoc.Runs, maxWidth float64) []Line {
	var frags []Fragment
	x := 0.0
	y := e.fallback.LineHeight
	if len(runs) > 0 {
		y = runs[0].Style.LineHeight
	}

	for ri, run := range runs {
		font := run.Style.Font()
		lineHeight := run.Style.LineHeight
		glyphHeight := e.Height(font)
		emit := func(text string, start int) {
			frags = append(frags, Fragment{
				Text:        text,
				Style:       run.Style,
				X:           x,
				Y:           y,
				Width:       e.Width(strings.TrimSuffix(text, "\n"), font),
				LineHeight:  lineHeight,
				GlyphHeight: glyphHeight,
				Run:         ri,
				Start:       start,
			})
		}

		acc, accStart := "", 0
		for _, w := range tokenize(run.Text) {
			switch {
			case w.text == "\n":
				if acc == "" {
					accStart = w.start
				}
				emit(acc+"\n", accStart)
				x = 0
				y += lineHeight
				acc = ""
			case (acc != "" || x > 0) && e.Width(acc+w.text, font) > maxWidth-x:
				if acc != "" {
					emit(acc, accStart)
				}
				x = 0
				y += lineHeight
				acc, accStart = w.text, w.start
			default:
				if acc == "" {
					accStart = w.start
				}
				acc += w.text
			}
		}
		if acc != "" {
			emit(acc, accStart)
			x += e.Width(acc, font)
		}
	}

	if n := len(frags); n == 0 || strings.HasSuffix(frags[n-1].Text, "\n") {
		style, run, start := e.fallback, -1, 0
		if len(runs) > 0 {
			last := runs[len(runs)-1]
			style, run, start = last.Style, len(runs)-1, last.Len()
		}
		frags = append(frags, Fragment{
			Style:       style,
			Y:           y,
			LineHeight:  style.LineHeight,
			GlyphHeight: e.Height(style.Font()),
			Run:         run,
			Start:       start,
		})
	}

	return e.group(frags)
}

// group collects consecutive fragments sharing a Y into lines.
func (e *Engine) group(frags []Fragment) []Line {
	var lines []Line
	start := 0
	for i := 0; i < len(frags); {
		j := i + 1
		for j < len(frags) && frags[j].Y == frags[i].Y {
			j++
		}
		line := Line{Fragments: frags[i:j:j], start: start, width: e.Width}
		lines = append(lines, line)
		start += line.Len()
		i = j
	}
	return lines
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
