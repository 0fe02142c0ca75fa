package components

// Checkbox glyphs.
const (
	CheckboxChecked   = "[x]"
	CheckboxUnchecked = "[ ]"
)

// Checkbox renders a row or header selection box.
type Checkbox struct {
	BaseComponent
	checked bool
}

// NewCheckbox creates a checkbox in the given state.
func NewCheckbox(checked bool) *Checkbox {
	return &Checkbox{
		BaseComponent: NewBaseComponent(),
		checked:       checked,
	}
}

// View renders the checkbox.
func (c *Checkbox) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the checkbox with the given theme context.
func (c *Checkbox) ViewWithContext(ctx RenderContext) string {
	style := c.ComputeStyle(ctx.Theme)
	if c.checked {
		style = Foreground(PalettePrimary)(style, ctx.Theme)
	}
	return style.Render(c.Glyph())
}

// Checked reports the checkbox state.
func (c *Checkbox) Checked() bool {
	return c.checked
}

// Glyph returns the unstyled checkbox text.
func (c *Checkbox) Glyph() string {
	if c.checked {
		return CheckboxChecked
	}
	return CheckboxUnchecked
}
