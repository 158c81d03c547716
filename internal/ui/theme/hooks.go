package theme

import (
	"github.com/bnema/colorpref/internal/domain/entity"
	"github.com/bnema/colorpref/internal/ui/document"
)

// ApplyToDocument returns the default side effect: the dark class is present
// on root exactly when the effective theme is dark.
func ApplyToDocument(root *document.Root) EffectiveChangeFunc {
	return func(e entity.Effective) {
		root.SetClass(document.DarkClass, e.IsDark())
	}
}

// Chain runs several side effects in order.
func Chain(fns ...EffectiveChangeFunc) EffectiveChangeFunc {
	return func(e entity.Effective) {
		for _, fn := range fns {
			if fn != nil {
				fn(e)
			}
		}
	}
}
