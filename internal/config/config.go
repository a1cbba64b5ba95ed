package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cncutils/gradfill/internal/gradient"
	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	Pattern          string  `mapstructure:"pattern"`
	Thickness        float64 `mapstructure:"thickness"`
	Discretization   int     `mapstructure:"discretization"`
	MaxFlow          float64 `mapstructure:"max_flow"`
	MinFlow          float64 `mapstructure:"min_flow"`
	ShortFlow        float64 `mapstructure:"short_flow"`
	GradualSpeed     bool    `mapstructure:"gradual_speed"`
	MaxOverSpeed     float64 `mapstructure:"max_over_speed"`
	MinOverSpeed     float64 `mapstructure:"min_over_speed"`
	Boundary         string  `mapstructure:"boundary"`
	InfillConnect    bool    `mapstructure:"infill_connect"`
	InfillBeforeWall bool    `mapstructure:"infill_before_walls"`
	Quiet            bool    `mapstructure:"quiet"`
}

// C is the global config instance
var C Config

// Init initializes configuration with viper
func Init() error {
	viper.SetDefault("pattern", "")
	viper.SetDefault("thickness", 6.0)
	viper.SetDefault("discretization", 4)
	viper.SetDefault("max_flow", 350.0)
	viper.SetDefault("min_flow", 50.0)
	viper.SetDefault("short_flow", 350.0)
	viper.SetDefault("gradual_speed", false)
	viper.SetDefault("max_over_speed", 200.0)
	viper.SetDefault("min_over_speed", 60.0)
	viper.SetDefault("boundary", "inner")
	viper.SetDefault("infill_connect", false)
	viper.SetDefault("infill_before_walls", false)
	viper.SetDefault("quiet", false)

	viper.SetConfigName("gradfill")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "gradfill"))
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("GRADFILL")
	viper.AutomaticEnv()

	// Try to read config, but don't fail if not found or malformed
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

// ValidationError reports a configuration value that prevents a run. It
// is always raised before any input line is processed.
type ValidationError struct {
	Option string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Option, e.Reason)
}

// Validate checks every precondition the rewrite depends on. The first
// violation is returned; a failing run produces no output at all.
func (c Config) Validate() error {
	if gradient.KindForPattern(c.Pattern) == gradient.KindUnsupported {
		return &ValidationError{"pattern", fmt.Sprintf("infill pattern %q is not supported", c.Pattern)}
	}
	if c.Thickness <= 0 {
		return &ValidationError{"thickness", "gradient thickness must be greater than zero"}
	}
	if c.Discretization < 1 {
		return &ValidationError{"discretization", "discretization count must be at least 1"}
	}
	if c.MaxFlow <= 0 {
		return &ValidationError{"max_flow", "max flow must be greater than zero"}
	}
	if c.MinFlow < 0 || c.MinFlow > c.MaxFlow {
		return &ValidationError{"min_flow", "min flow must be between 0 and max flow"}
	}
	if c.ShortFlow < 0 {
		return &ValidationError{"short_flow", "short distance flow must not be negative"}
	}
	if c.GradualSpeed && (c.MaxOverSpeed <= 0 || c.MinOverSpeed < 0 || c.MinOverSpeed > c.MaxOverSpeed) {
		return &ValidationError{"over_speed", "over-speed factors must satisfy 0 <= min <= max with max > 0"}
	}
	if c.Boundary != "inner" && c.Boundary != "outer" {
		return &ValidationError{"boundary", fmt.Sprintf("boundary wall must be \"inner\" or \"outer\", got %q", c.Boundary)}
	}
	if c.InfillConnect {
		return &ValidationError{"infill_connect", "connected infill lines are not supported; slice with infill line connection disabled"}
	}
	if c.InfillBeforeWall {
		return &ValidationError{"infill_before_walls", "walls must be printed before infill; slice with infill-before-walls disabled"}
	}
	return nil
}

// Options converts the validated config into engine options.
func (c Config) Options() gradient.Options {
	boundary := gradient.BoundaryInner
	if c.Boundary == "outer" {
		boundary = gradient.BoundaryOuter
	}
	return gradient.Options{
		Thickness:      c.Thickness,
		Discretization: c.Discretization,
		MaxFlow:        c.MaxFlow,
		MinFlow:        c.MinFlow,
		ShortFlow:      c.ShortFlow,
		GradualSpeed:   c.GradualSpeed,
		MaxOverSpeed:   c.MaxOverSpeed,
		MinOverSpeed:   c.MinOverSpeed,
		Boundary:       boundary,
		Kind:           gradient.KindForPattern(c.Pattern),
	}
}

// GetQuiet reports whether progress and summary output are suppressed.
func GetQuiet() bool {
	return C.Quiet
}
