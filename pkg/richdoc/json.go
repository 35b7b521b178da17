package richdoc

import (
	"errors"
	"fmt"
	"math"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Parse reads the load shape: a JSON array of {"style": {...}, "text": "..."}
// records, one run per record, in order.
func Parse(data []byte) (Runs, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidDocument)
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: top level must be an array", ErrInvalidDocument)
	}

	var (
		runs    Runs
		idx     int
		loopErr error
	)
	root.ForEach(func(_, value gjson.Result) bool {
		run, err := parseRun(value)
		if err != nil {
			loopErr = fmt.Errorf("%w: record %d: %w", ErrInvalidDocument, idx, err)
			return false
		}
		runs = append(runs, run)
		idx++
		return true
	})
	if loopErr != nil {
		return nil, loopErr
	}
	return runs, nil
}

func parseRun(v gjson.Result) (Run, error) {
	if !v.IsObject() {
		return Run{}, errors.New("record must be an object")
	}
	text := v.Get("text")
	if text.Type != gjson.String {
		return Run{}, errors.New("text must be a string")
	}
	st := v.Get("style")
	if !st.IsObject() {
		return Run{}, errors.New("style must be an object")
	}

	style := Style{
		Italic:     st.Get("fontStyle").String() == "italic",
		Bold:       isBold(st.Get("fontWeight")),
		FontSize:   DefaultFontSize,
		LineHeight: DefaultLineHeight,
		TextColor:  DefaultTextColor,
	}
	if fs := st.Get("fontSize"); fs.Exists() {
		style.FontSize = fs.Float()
	}
	if lh := st.Get("lineHeight"); lh.Exists() {
		style.LineHeight = lh.Float()
	}
	var err error
	if style.TextColor, err = parseColor(st.Get("textColor"), DefaultTextColor); err != nil {
		return Run{}, fmt.Errorf("textColor: %w", err)
	}
	if style.Highlight, err = parseColor(st.Get("highLight"), 0); err != nil {
		return Run{}, fmt.Errorf("highLight: %w", err)
	}
	if style.Underline, err = parseColor(st.Get("underLine"), 0); err != nil {
		return Run{}, fmt.Errorf("underLine: %w", err)
	}
	if err := style.Validate(); err != nil {
		return Run{}, err
	}
	return Run{Style: style, Text: text.String()}, nil
}

func isBold(w gjson.Result) bool {
	switch w.Type {
	case gjson.String:
		return w.String() == "bold" || w.String() == "bolder"
	case gjson.Number:
		return w.Float() >= 600
	}
	return false
}

// parseColor reads {r,g,b,a} with channels in 0..255 and alpha in 0..1.
func parseColor(v gjson.Result, fallback uint32) (uint32, error) {
	if !v.Exists() || v.Type == gjson.Null {
		return fallback, nil
	}
	if !v.IsObject() {
		return 0, errors.New("color must be an object")
	}
	channel := func(name string) uint32 {
		return uint32(int64(v.Get(name).Float()) % 256)
	}
	a := v.Get("a").Float()
	if !v.Get("a").Exists() {
		a = 1
	}
	a = math.Min(math.Max(a, 0), 1)
	return PackRGBA(channel("r"), channel("g"), channel("b"), uint32(math.Round(a*255))), nil
}

func PackRGBA(r, g, b, a uint32) uint32 {
	return (r&0xFF)<<24 | (g&0xFF)<<16 | (b&0xFF)<<8 | a&0xFF
}

func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Marshal writes runs in the same shape Parse reads.
func Marshal(runs Runs) ([]byte, error) {
	doc := "[]"
	for i, r := range runs {
		rec, err := marshalRun(r)
		if err != nil {
			return nil, fmt.Errorf("richdoc: marshal run %d: %w", i, err)
		}
		if doc, err = sjson.SetRaw(doc, "-1", rec); err != nil {
			return nil, fmt.Errorf("richdoc: marshal run %d: %w", i, err)
		}
	}
	return []byte(doc), nil
}

func MarshalIndent(runs Runs) ([]byte, error) {
	b, err := Marshal(runs)
	if err != nil {
		return nil, err
	}
	return pretty.Pretty(b), nil
}

func marshalRun(r Run) (string, error) {
	fontStyle := "normal"
	if r.Style.Italic {
		fontStyle = "italic"
	}
	weight := "normal"
	if r.Style.Bold {
		weight = "bold"
	}

	rec := "{}"
	var err error
	set := func(path string, value any) {
		if err != nil {
			return
		}
		rec, err = sjson.Set(rec, path, value)
	}
	set("style.fontStyle", fontStyle)
	set("style.fontWeight", weight)
	set("style.fontSize", r.Style.FontSize)
	set("style.lineHeight", r.Style.LineHeight)
	setColor := func(key string, c uint32) {
		cr, cg, cb, ca := UnpackRGBA(c)
		set("style."+key+".r", cr)
		set("style."+key+".g", cg)
		set("style."+key+".b", cb)
		set("style."+key+".a", math.Round(float64(ca)/255*1000)/1000)
	}
	setColor("textColor", r.Style.TextColor)
	if r.Style.HasHighlight() {
		setColor("highLight", r.Style.Highlight)
	}
	if r.Style.HasUnderline() {
		setColor("underLine", r.Style.Underline)
	}
	set("text", r.Text)
	return rec, err
}
