package styles

import (
	"fmt"
	"time"

	"github.com/bnema/colorpref/internal/domain/entity"
)

// StatusLine renders "option -> effective" with icons, as printed by
// `colorpref get`.
func (t *Theme) StatusLine(option entity.ThemeOption, effective entity.Effective, source string) string {
	line := fmt.Sprintf("%s %s %s %s %s",
		t.Normal.Render(OptionIcon(option)),
		t.Title.Render(string(option)),
		t.Subtle.Render(IconArrow),
		t.Highlight.Render(EffectiveIcon(effective)),
		t.Highlight.Render(string(effective)),
	)
	if source != "" && option.FollowsSystem() {
		line += " " + t.Subtle.Render("("+source+")")
	}
	return line
}

// ChangeLine renders one effective value change for `colorpref watch`.
func (t *Theme) ChangeLine(at time.Time, effective entity.Effective) string {
	return fmt.Sprintf("%s %s %s",
		t.Subtle.Render(at.Format("15:04:05")),
		t.Highlight.Render(EffectiveIcon(effective)),
		t.Normal.Render(string(effective)),
	)
}
