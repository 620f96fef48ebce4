package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagFrames      = flag.Int("frames", 0, "Frames to simulate (0 = until the input script ends)")
	flagFixedStep   = flag.Float64("fixed-step", 0, "Physics tick length in seconds")
	flagNoFeetIK    = flag.Bool("no-feet-ik", false, "Disable feet IK and head clearance")
	flagPelvisShift = flag.Bool("pelvis-shift", false, "Enable the pelvis shift")
	flagSolverDebug = flag.Bool("solver-debug", false, "Log solver rays and vertical branches")
	flagWidth       = flag.Int("width", 0, "Window width")
	flagHeight      = flag.Int("height", 0, "Window height")
	flagDumpConfig  = flag.String("dump-config", "", "Write the effective config to this path and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// DumpConfigPath returns the --dump-config target, or "".
func DumpConfigPath() string {
	return *flagDumpConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagFrames > 0 {
		cfg.Simulation.Frames = *flagFrames
	}
	if *flagFixedStep > 0 {
		cfg.Simulation.FixedStep = float32(*flagFixedStep)
	}
	if *flagNoFeetIK {
		cfg.IK.Feet.EnableFeetIK = false
	}
	if *flagPelvisShift {
		cfg.IK.Feet.EnablePelvisShift = true
	}
	if *flagSolverDebug {
		cfg.Locomotion.ShowSolverDebug = true
		cfg.IK.Feet.ShowSolverDebug = true
		cfg.Logging.Level = "debug"
	}
	if *flagWidth > 0 {
		cfg.Client.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Client.Height = *flagHeight
	}
}
