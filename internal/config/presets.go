package config

var Presets = map[string]*Config{
	"frictionless": {
		Gravity: 9.8, Curvature: 0.005, Mass: 1.0, StartX: -100,
		Duration: 10.0, FrameRate: 60,
	},
	"damped": {
		Gravity: 9.8, Friction: 0.3, FrictionOn: true, Curvature: 0.005,
		Mass: 1.0, StartX: -100, Duration: 20.0, FrameRate: 60,
	},
	"syrup": {
		Gravity: 9.8, Friction: 1.5, FrictionOn: true, Curvature: 0.005,
		Mass: 1.0, StartX: -120, Duration: 15.0, FrameRate: 60,
	},
	"steep": {
		Gravity: 9.8, Curvature: 0.02, Mass: 1.0, StartX: -60,
		Duration: 10.0, FrameRate: 60,
	},
	"moon": {
		Gravity: 1.6, Curvature: 0.005, Mass: 1.0, StartX: -100,
		Duration: 30.0, FrameRate: 60,
	},
	"heavy": {
		Gravity: 9.8, Friction: 0.3, FrictionOn: true, Curvature: 0.005,
		Mass: 5.0, StartX: -100, Duration: 20.0, FrameRate: 60,
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
	return names
}
