package ui

import (
	"image"
	"math"
	"strconv"

	"lifegrid/internal/core"
)

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// refreshControlValues copies current values out of the snapshot.
func refreshControlValues(controls []hudControlState, snapshot core.ParameterSnapshot) {
	for i := range controls {
		state := &controls[i]
		state.hasValue = false
		state.value = "--"
		param, ok := snapshot.Find(state.control.Key)
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
			state.hasValue = true
		}
	}
}

// adjustTarget returns the value one step in direction, clamped to the
// control bounds, and whether it differs from the current value.
func adjustTarget(state *hudControlState, direction int) (float64, bool) {
	if state == nil || direction == 0 || !state.hasValue {
		return 0, false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		step := math.Round(state.control.Step)
		if step <= 0 {
			step = 1
		}
		target := math.Round(state.control.Clamp(float64(state.intValue) + float64(direction)*step))
		return target, int(target) != state.intValue
	case core.ParamTypeFloat:
		step := state.control.Step
		if step <= 0 {
			step = 0.05
		}
		target := state.control.Clamp(state.floatValue + float64(direction)*step)
		// Snap to the step grid so repeated presses do not accumulate drift.
		target = math.Round(target/step) * step
		return target, math.Abs(target-state.floatValue) >= 1e-9
	}
	return 0, false
}

// applyAdjustment pushes one step through the matching setter.
func applyAdjustment(state *hudControlState, direction int, ints core.IntParameterSetter, floats core.FloatParameterSetter) bool {
	target, ok := adjustTarget(state, direction)
	if !ok {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		if ints == nil || !ints.SetIntParameter(state.control.Key, int(target)) {
			return false
		}
		state.intValue = int(target)
		state.floatValue = target
		state.value = strconv.Itoa(int(target))
		return true
	case core.ParamTypeFloat:
		if floats == nil || !floats.SetFloatParameter(state.control.Key, target) {
			return false
		}
		state.floatValue = target
		state.value = formatFloat(state.control, target)
		return true
	}
	return false
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func layoutControls(controls []hudControlState, width, top int) {
	for i := range controls {
		rowTop := top + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		controls[i].top = rowTop
		controls[i].minusRect = minusRect
		controls[i].plusRect = plusRect
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

const (
	panelPadding   = 12
	lineHeight     = 30
	statusHeight   = 16
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 20
)
