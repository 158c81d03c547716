// Package document models the root element of the rendered document: the
// place where presentation flags such as the "dark" class live.
package document

import (
	"sort"
	"strings"
	"sync"

	"github.com/bnema/colorpref/internal/reactive"
)

// DarkClass is the root class toggled when the effective theme is dark.
const DarkClass = "dark"

// Root holds the class list of the document root.
// Renderers subscribe to the class attribute to re-render on change.
type Root struct {
	mu      sync.Mutex
	classes map[string]struct{}
	attr    *reactive.Cell[string]
	serial  reactive.Serial
}

// NewRoot creates an empty document root.
func NewRoot() *Root {
	return &Root{
		classes: make(map[string]struct{}),
		attr:    reactive.NewCell(""),
	}
}

var defaultRoot = NewRoot()

// Default returns the process-wide document root.
func Default() *Root {
	return defaultRoot
}

// SetClass adds (on) or removes (!on) a class.
func (r *Root) SetClass(name string, on bool) {
	r.serial.Do(func() {
		r.mu.Lock()
		if on {
			r.classes[name] = struct{}{}
		} else {
			delete(r.classes, name)
		}
		attr := r.classAttrLocked()
		r.mu.Unlock()

		r.attr.Set(attr)
	})
}

// HasClass reports whether the class is present.
func (r *Root) HasClass(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.classes[name]
	return ok
}

// Classes returns the classes in sorted order.
func (r *Root) Classes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sortedLocked()
}

// ClassAttr returns the value of the root's class attribute.
func (r *Root) ClassAttr() string {
	return r.attr.Get()
}

// Get implements reactive.Readable; it is the same as ClassAttr.
func (r *Root) Get() string {
	return r.attr.Get()
}

// Subscribe observes the class attribute.
func (r *Root) Subscribe(run reactive.Subscriber[string], invalidate func()) reactive.Unsubscriber {
	return r.attr.Subscribe(run, invalidate)
}

func (r *Root) sortedLocked() []string {
	names := make([]string, 0, len(r.classes))
	for name := range r.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Root) classAttrLocked() string {
	return strings.Join(r.sortedLocked(), " ")
}

var _ reactive.Readable[string] = (*Root)(nil)
