package config

import "sort"

var Presets = map[string]*Config{
	"cities": {
		Name: "cities", Capacity: DefaultCapacity,
		Plot: PlotConfig{Width: DefaultWidth, Height: DefaultHeight},
		Steps: []StepConfig{
			{Op: "add", Value: "New york"},
			{Op: "add", Value: "London"},
			{Op: "add", Value: "Baku"},
			{Op: "add", Value: "Istanbul"},
			{Op: "insert", Index: 2, Value: "Sydney"},
			{Op: "add", Value: "Baku"},
			{Op: "remove", Value: "Baku"},
			{Op: "remove_at", Index: 1},
			{Op: "add_range", Values: []string{"Berlin", "Logan", "Helena"}},
			{Op: "index_of", Value: "Helena"},
			{Op: "contains", Value: "Baku"},
			{Op: "find_all", Value: "Baku"},
			{Op: "clear"},
			{Op: "count"},
		},
	},
	"scenario": {
		Name: "scenario", Capacity: DefaultCapacity,
		Plot: PlotConfig{Width: DefaultWidth, Height: DefaultHeight},
		Steps: []StepConfig{
			{Op: "add_range", Values: []string{"New york", "London", "Baku", "Istanbul"}},
			{Op: "insert", Index: 2, Value: "Sydney"},
			{Op: "remove", Value: "Baku"},
			{Op: "remove_at", Index: 1},
			{Op: "add_range", Values: []string{"Berlin", "Logan", "Helena"}},
			{Op: "index_of", Value: "Helena"},
			{Op: "contains", Value: "Baku"},
			{Op: "clear"},
		},
	},
	"growth": {
		Name: "growth", Capacity: 1,
		Plot: PlotConfig{Width: DefaultWidth, Height: DefaultHeight},
		Steps: []StepConfig{
			{Op: "add_range", Values: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}},
			{Op: "reverse"},
			{Op: "reverse_range", Index: 2, Count: 4},
			{Op: "last_index_of", Value: "e"},
			{Op: "clear"},
			{Op: "add", Value: "z"},
		},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
