package smoothlife

import (
	"strconv"

	"smoothlife/internal/core"
)

// Parameters describes the world for HUDs and run snapshots.
func (w *World) Parameters() core.ParameterSnapshot {
	p := w.params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.w),
				intParam("h", "Height", w.h),
				int64Param("seed", "Seed", w.cfg.Seed),
				stringParam("convolver", "Convolver", w.conv.Name()),
			},
		},
		{
			Name:    "Kernel",
			Summary: "inner disk radius ra/3, outer ring radius ra",
			Params: []core.Parameter{
				floatParam("ra", "Outer radius", p.Ra),
				floatParam("ri", "Inner radius", w.kernel.Ri),
				intParam("inner_cells", "Inner cells", w.kernel.M()),
				intParam("outer_cells", "Outer cells", w.kernel.N()),
			},
		},
		{
			Name: "Transition",
			Params: []core.Parameter{
				floatParam("alpha_n", "Ring sharpness", p.AlphaN),
				floatParam("alpha_m", "Disk sharpness", p.AlphaM),
				floatParam("b1", "Birth low", p.B1),
				floatParam("b2", "Birth high", p.B2),
				floatParam("d1", "Survival low", p.D1),
				floatParam("d2", "Survival high", p.D2),
			},
		},
		{
			Name: "Integration",
			Params: []core.Parameter{
				floatParam("dt", "Time step", p.DT),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
