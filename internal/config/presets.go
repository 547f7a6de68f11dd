package config

import "sort"

var Presets = map[string]map[string]*Config{
	"square": {
		"default": preset("square", PathConfig{N: 100}, DOSConfig{Steps: 2000, GDOS: true}, GridConfig{}),
		"vanhove": preset("square", PathConfig{N: 200, Points: "XMX"}, DOSConfig{Steps: 4000, Singularity: true}, GridConfig{}),
		"grid":    preset("square", PathConfig{N: 50}, DOSConfig{Steps: 1000}, GridConfig{N1: 64, N2: 64}),
	},
	"triangular": {
		"default": preset("triangular", PathConfig{N: 100}, DOSConfig{Steps: 2000}, GridConfig{}),
		"reverse": preset("triangular", PathConfig{N: 100, Points: "GKMG"}, DOSConfig{Steps: 2000}, GridConfig{}),
		"grid":    preset("triangular", PathConfig{N: 50}, DOSConfig{Steps: 1000}, GridConfig{N1: 48, N2: 48}),
	},
	"dice": {
		"default":  preset("dice", PathConfig{N: 100}, DOSConfig{Steps: 2000}, GridConfig{}),
		"flatband": preset("dice", PathConfig{N: 60, Points: "KMK"}, DOSConfig{Steps: 2001, Singularity: true}, GridConfig{}),
		"grid":     preset("dice", PathConfig{N: 50}, DOSConfig{Steps: 1000}, GridConfig{N1: 48, N2: 48}),
	},
}

func preset(lattice string, path PathConfig, dos DOSConfig, grid GridConfig) *Config {
	cfg := DefaultConfig()
	cfg.Lattice = lattice
	cfg.Path = path
	cfg.DOS = dos
	cfg.Grid = grid
	return cfg
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(lattice, name string) *Config {
	latticePresets, ok := Presets[lattice]
	if !ok {
		return nil
	}
	cfg, ok := latticePresets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets(lattice string) []string {
	latticePresets, ok := Presets[lattice]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(latticePresets))
	for name := range latticePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
