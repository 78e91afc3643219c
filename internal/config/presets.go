package config

import (
	"sort"

	"github.com/san-kum/ballistic/internal/physics"
)

const (
	airDensity     = 1.2257
	airViscosity   = 0.000018
	waterDensity   = 998.0
	waterViscosity = 0.001
	honeyDensity   = 1420.0
	honeyViscosity = 10.0
)

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"lapilli": {
		Params: physics.Params{
			Gravity: 9.81, FluidDensity: airDensity, Viscosity: airViscosity,
			Diameter: 0.02, Mass: 0.0105, Angle: 60, Speed: 40,
		},
		TimeStep: 0.001, MaxTime: 20, Rows: DefaultRows, LogLevel: DefaultLogLevel,
	},
	"ash": {
		Params: physics.Params{
			Gravity: 9.81, FluidDensity: airDensity, Viscosity: airViscosity,
			Diameter: 0.0001, Mass: 1.3e-9, Angle: 80, Speed: 5,
		},
		TimeStep: 0.0001, MaxTime: 10, Rows: DefaultRows, LogLevel: DefaultLogLevel,
	},
	"bomb": {
		Params: physics.Params{
			Gravity: 9.81, FluidDensity: airDensity, Viscosity: airViscosity,
			Diameter: 0.5, Mass: 170, Angle: 45, Speed: 100,
		},
		TimeStep: 0.001, MaxTime: 30, Rows: DefaultRows, LogLevel: DefaultLogLevel,
	},
	"water": {
		Params: physics.Params{
			Gravity: 9.81, FluidDensity: waterDensity, Viscosity: waterViscosity,
			Diameter: 0.01746, Mass: 0.0218, Angle: 25, Speed: 5.5,
		},
		TimeStep: 0.001, MaxTime: 10, Rows: DefaultRows, LogLevel: DefaultLogLevel,
	},
	"honey": {
		Params: physics.Params{
			Gravity: 9.81, FluidDensity: honeyDensity, Viscosity: honeyViscosity,
			Diameter: 0.01, Mass: 0.004, Angle: 30, Speed: 0.5,
		},
		TimeStep: 0.0001, MaxTime: 10, Rows: DefaultRows, LogLevel: DefaultLogLevel,
	},
	"vacuum": {
		Params: physics.Params{
			Gravity: 9.81, FluidDensity: 1e-12, Viscosity: 1e-12,
			Diameter: 0.01746, Mass: 0.0218, Angle: 25, Speed: 5.5,
		},
		TimeStep: 0.001, MaxTime: 10, Rows: DefaultRows, LogLevel: DefaultLogLevel,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
