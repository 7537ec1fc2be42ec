package render

// Change identifies what a notification is about.
type Change int

const (
	// DrawingChanged fires when the committed log or the live stroke changed.
	DrawingChanged Change = iota
	// ToolMoved fires when only the preview marker moved or changed size.
	ToolMoved
)

func (c Change) String() string {
	switch c {
	case DrawingChanged:
		return "drawing-changed"
	case ToolMoved:
		return "tool-moved"
	}
	return "unknown"
}

// Bus fans a change out to every subscriber, in subscription order.
type Bus struct {
	subscribers []func(Change)
}

func (b *Bus) Subscribe(fn func(Change)) {
	b.subscribers = append(b.subscribers, fn)
}

func (b *Bus) Notify(c Change) {
	for _, fn := range b.subscribers {
		fn(c)
	}
}
