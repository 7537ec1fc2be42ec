package tool

import (
	"image/color"
	"strings"

	"sketchpad/internal/stroke"
)

type Kind int

const (
	Thin Kind = iota
	Thick
)

func (k Kind) String() string {
	switch k {
	case Thin:
		return "thin"
	case Thick:
		return "thick"
	}
	return "unknown"
}

// ParseKind accepts "thin" or "thick" in any case.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "thin":
		return Thin, true
	case "thick":
		return Thick, true
	}
	return Thin, false
}

var (
	thinStyle = &stroke.Style{
		Name:        "thin",
		LineWidth:   2,
		StrokeColor: color.Black,
		FillColor:   color.Black,
		DotRadius:   1,
	}
	thickStyle = &stroke.Style{
		Name:        "thick",
		LineWidth:   8,
		StrokeColor: color.Black,
		FillColor:   color.Black,
		DotRadius:   4,
	}
)

// Registry holds the style presets and the current selection.
type Registry struct {
	styles  map[Kind]*stroke.Style
	current Kind
}

func NewRegistry(initial Kind) *Registry {
	r := &Registry{
		styles: map[Kind]*stroke.Style{
			Thin:  thinStyle,
			Thick: thickStyle,
		},
	}
	r.Select(initial)
	return r
}

// Select makes k the current tool. Unknown kinds are ignored.
func (r *Registry) Select(k Kind) bool {
	if _, ok := r.styles[k]; !ok {
		return false
	}
	r.current = k
	return true
}

func (r *Registry) Current() Kind { return r.current }

func (r *Registry) Style() *stroke.Style { return r.styles[r.current] }

func (r *Registry) StyleFor(k Kind) *stroke.Style { return r.styles[k] }
