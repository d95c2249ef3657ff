package life

import (
	"strconv"

	"lifegrid/internal/core"
)

// Parameters reports the grid, the running rule and the values the next
// reset will use.
func (l *Life) Parameters() core.ParameterSnapshot {
	next := l.pending
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("rows", "Rows", l.cfg.Rows),
				intParam("cols", "Columns", l.cfg.Cols),
				int64Param("seed", "Seed", next.Seed),
			},
		},
		{
			Name:    "Running",
			Summary: "Rule of the current generation.",
			Params: []core.Parameter{
				stringParam("aging_mode", "Aging", l.cfg.Aging.String()),
				floatParam("active_liveness", "Liveness", l.cfg.Liveness),
				intParam("active_types", "Types", l.cfg.TypeCount),
			},
		},
		{
			Name:    "Next reset",
			Summary: "Edits apply when the grid is reset.",
			Params: []core.Parameter{
				floatParam("liveness", "Liveness", next.Liveness),
				intParam("types", "Types", next.TypeCount),
				stringParam("aging", "Aging mode", next.Aging.Kind.String()),
				intParam("aging_param", "Aging cap/bound", next.Aging.Param),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable parameters.
func (l *Life) ParameterControls() []core.ParameterControl {
	controls := []core.ParameterControl{
		{Key: "liveness", Label: "Liveness", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "types", Label: "Types", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: MaxTypeCount, HasMin: true, HasMax: true},
	}
	switch l.pending.Aging.Kind {
	case AgingFixedCap:
		controls = append(controls, core.ParameterControl{Key: "aging_param", Label: "Age cap", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true})
	case AgingProbabilistic:
		controls = append(controls, core.ParameterControl{Key: "aging_param", Label: "Age bound", Type: core.ParamTypeInt, Step: 1, Min: 1, HasMin: true})
	}
	return controls
}

// SetIntParameter stages an integer edit for the next reset. It rejects
// values that would not validate.
func (l *Life) SetIntParameter(key string, value int) bool {
	next := l.pending
	switch key {
	case "types":
		next.TypeCount = value
	case "aging_param":
		if next.Aging.Kind == AgingNone {
			return false
		}
		next.Aging.Param = value
	default:
		return false
	}
	if next.Validate() != nil {
		return false
	}
	l.pending = next
	return true
}

// SetFloatParameter stages a floating point edit for the next reset.
func (l *Life) SetFloatParameter(key string, value float64) bool {
	if key != "liveness" {
		return false
	}
	next := l.pending
	next.Liveness = value
	if next.Validate() != nil {
		return false
	}
	l.pending = next
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
}
