package templates

import (
	"context"

	"thirdcoast.systems/studio/cmd/web/viewtypes"
	"thirdcoast.systems/studio/pkg/panel"
	"thirdcoast.systems/studio/pkg/sparse"
	"thirdcoast.systems/studio/pkg/utils/format"
	"thirdcoast.systems/studio/pkg/utils/markdown"
)

// fieldView is everything needed to draw one control.
type fieldView struct {
	ID        string
	ActionURL string
	Field     panel.Field
	Value     any
	Has       bool
}

func (v fieldView) checked() bool {
	switch v.Field.Control {
	case panel.ControlPresence:
		_, ok := sparse.AsSection(v.Value)
		return v.Has && ok
	default:
		b, _ := v.Value.(bool)
		return v.Has && b
	}
}

// display is the value shown in the control when the leaf is absent too.
func (v fieldView) display() string {
	if v.Has {
		return format.Value(v.Value)
	}
	if v.Field.Off != nil {
		return format.Value(v.Field.Off)
	}
	return ""
}

func (v fieldView) sliderValue() float64 {
	if n, ok := v.Value.(float64); ok && v.Has {
		return n
	}
	if n, ok := v.Field.Off.(float64); ok {
		return n
	}
	return v.Field.Min
}

func (v fieldView) readout() string {
	if s, ok := v.Value.(string); ok && v.Has && s == v.Field.MinKeyword {
		return s
	}
	return format.Number(v.sliderValue(), v.Field.Decimals)
}

func (v fieldView) step() string {
	switch {
	case v.Field.Step > 0:
		return format.Num(v.Field.Step)
	case v.Field.Integer:
		return "1"
	default:
		return "any"
	}
}

func renderField(ctx context.Context, w *writer, v fieldView) {
	f := v.Field
	w.printf(`<div class="flex flex-col gap-1" id="%s-row">`, e(v.ID))

	switch f.Control {
	case panel.ControlToggle, panel.ControlPresence, panel.ControlTag:
		checked := ""
		if v.checked() {
			checked = " checked"
		}
		w.printf(`<label class="flex items-center gap-2 text-sm"><input type="checkbox" id="%s"%s data-on:change="%s"> %s</label>`,
			e(v.ID), checked, e(CheckedExpr(v.ActionURL)), e(f.Label))

	case panel.ControlSelect:
		w.printf(`<label for="%s" class="%s">%s</label>`, e(v.ID), viewtypes.SectionLabel, e(f.Label))
		w.printf(`<select id="%s" class="%s" data-on:change="%s">`, e(v.ID), viewtypes.InputClass, e(ValueExpr(v.ActionURL)))
		current := v.display()
		if f.Off == nil && !v.Has {
			w.raw(`<option value="" selected>Select...</option>`)
		}
		for _, o := range f.Options {
			sel := ""
			if o.Value == current {
				sel = " selected"
			}
			w.printf(`<option value="%s"%s>%s</option>`, e(o.Value), sel, e(o.Label))
		}
		w.raw(`</select>`)

	case panel.ControlSlider:
		w.printf(`<label for="%s" class="%s">%s</label>`, e(v.ID), viewtypes.SectionLabel, e(f.Label))
		w.printf(`<div class="flex items-center gap-2"><input type="range" id="%s" class="%s" min="%s" max="%s" step="%s" value="%s" data-on:input="%s" data-on:change="%s"><span class="text-xs font-mono w-12 text-right">%s</span></div>`,
			e(v.ID), viewtypes.RangeClass, format.Num(f.Min), format.Num(f.Max), v.step(), format.Num(v.sliderValue()),
			e(SliderReadoutExpr(f.Decimals)), e(ValueExpr(v.ActionURL)), e(v.readout()))

	case panel.ControlNumber:
		w.printf(`<label for="%s" class="%s">%s</label>`, e(v.ID), viewtypes.SectionLabel, e(f.Label))
		bounds := ""
		if f.Max > f.Min {
			bounds = ` min="` + format.Num(f.Min) + `"`
			if f.Max != panel.NoMax {
				bounds += ` max="` + format.Num(f.Max) + `"`
			}
		}
		w.printf(`<input type="number" id="%s" class="%s"%s step="%s" value="%s" placeholder="%s" data-on:change="%s">`,
			e(v.ID), viewtypes.InputClass, bounds, v.step(), e(v.display()), e(f.Placeholder), e(ValueExpr(v.ActionURL)))

	case panel.ControlTextarea:
		w.printf(`<label for="%s" class="%s">%s</label>`, e(v.ID), viewtypes.SectionLabel, e(f.Label))
		w.printf(`<textarea id="%s" class="%s" rows="3" placeholder="%s" data-on:change="%s">%s</textarea>`,
			e(v.ID), viewtypes.InputClass, e(f.Placeholder), e(ValueExpr(v.ActionURL)), e(v.display()))

	case panel.ControlColor:
		w.printf(`<label for="%s" class="%s">%s</label>`, e(v.ID), viewtypes.SectionLabel, e(f.Label))
		color := "#000000"
		if s := v.display(); s != "" {
			color = "#" + s
		}
		w.printf(`<input type="color" id="%s" class="h-8 w-16 bg-black border-2 border-white/20" value="%s" data-on:change="%s">`,
			e(v.ID), e(color), e(ValueExpr(v.ActionURL)))

	default:
		w.printf(`<label for="%s" class="%s">%s</label>`, e(v.ID), viewtypes.SectionLabel, e(f.Label))
		placeholder := f.Placeholder
		if placeholder == "" && f.Keyword != "" {
			placeholder = "number or " + f.Keyword
		}
		w.printf(`<input type="text" id="%s" class="%s" value="%s" placeholder="%s" data-on:change="%s">`,
			e(v.ID), viewtypes.InputClass, e(v.display()), e(placeholder), e(ValueExpr(v.ActionURL)))
	}

	if f.Help != "" {
		w.printf(`<div class="%s">%s</div>`, viewtypes.HelpClass, string(markdown.HTML(f.Help)))
	}
	w.raw(`</div>`)
}
