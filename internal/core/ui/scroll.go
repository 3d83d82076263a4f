package ui

import "strings"

// Scroll alignment values, matching scrollIntoView's block option.
const (
	BlockStart  = "start"
	BlockCenter = "center"
)

// ScrollIntent asks the browser to bring an element into view.
type ScrollIntent struct {
	Target string
	Block  string
	Smooth bool
}

// Anchors is the set of element ids an in-page link may target.
type Anchors struct {
	ids map[string]struct{}
}

func NewAnchors(ids ...string) *Anchors {
	a := &Anchors{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		a.Register(id)
	}
	return a
}

func (a *Anchors) Register(id string) {
	a.ids[id] = struct{}{}
}

// Resolve maps an in-page href such as "#about" to a smooth scroll. Hrefs
// that are not fragments, or whose id is unknown, resolve to nothing.
func (a *Anchors) Resolve(href string) (ScrollIntent, bool) {
	id, ok := strings.CutPrefix(href, "#")
	if !ok || id == "" {
		return ScrollIntent{}, false
	}
	if _, known := a.ids[id]; !known {
		return ScrollIntent{}, false
	}
	return ScrollIntent{Target: id, Block: BlockStart, Smooth: true}, true
}
