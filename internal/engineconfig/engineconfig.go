package engineconfig

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"

	"racing-sim/internal/physics"
)

// EngineConfigPath is the path to the engine config file, relative to the process working directory.
const EngineConfigPath = "config/engine.json"

// Window holds the window settings.
type Window struct {
	Width     int    `mapstructure:"width"`
	Height    int    `mapstructure:"height"`
	Title     string `mapstructure:"title"`
	TargetFPS int    `mapstructure:"targetFps"`
}

// Textures maps logical texture slots to image files.
type Textures struct {
	Ground   string `mapstructure:"ground"`
	Track    string `mapstructure:"track"`
	Body     string `mapstructure:"body"`
	Building string `mapstructure:"building"`
}

// Vehicle overrides the vehicle tuning.
type Vehicle struct {
	MaxSpeed     float32 `mapstructure:"maxSpeed"`
	Acceleration float32 `mapstructure:"acceleration"`
	Deceleration float32 `mapstructure:"deceleration"`
	TurnRate     float32 `mapstructure:"turnRate"`
}

// Mouse holds pointer settings.
type Mouse struct {
	Sensitivity float64 `mapstructure:"sensitivity"`
}

// Config holds engine-only settings. Simulation state is never persisted here.
type Config struct {
	Window       Window   `mapstructure:"window"`
	LogLevel     string   `mapstructure:"logLevel"`
	ShowHUD      bool     `mapstructure:"showHud"`
	ShowMemAlloc bool     `mapstructure:"showMemAlloc"`
	Mouse        Mouse    `mapstructure:"mouse"`
	LayoutPath   string   `mapstructure:"layoutPath"`
	Textures     Textures `mapstructure:"textures"`
	Vehicle      Vehicle  `mapstructure:"vehicle"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 1200)
	v.SetDefault("window.height", 800)
	v.SetDefault("window.title", "Racing Car Simulator")
	v.SetDefault("window.targetFps", 60)

	v.SetDefault("logLevel", "info")
	v.SetDefault("showHud", false)
	v.SetDefault("showMemAlloc", false)
	v.SetDefault("mouse.sensitivity", 0.1)
	v.SetDefault("layoutPath", "")

	v.SetDefault("textures.ground", "textures/grass.jpg")
	v.SetDefault("textures.track", "textures/asphalt.jpg")
	v.SetDefault("textures.body", "textures/car.jpg")
	// Shipped as-is; the building renders with its flat color when this does not resolve.
	v.SetDefault("textures.building", "textures / building.jpg")

	p := physics.DefaultParams()
	v.SetDefault("vehicle.maxSpeed", p.MaxSpeed)
	v.SetDefault("vehicle.acceleration", p.Acceleration)
	v.SetDefault("vehicle.deceleration", p.Deceleration)
	v.SetDefault("vehicle.turnRate", p.TurnRate)
}

// Load reads the JSON config at path on top of the defaults. A missing file is not an error;
// a malformed one is.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("error decoding config file: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("engineconfig: window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Vehicle.MaxSpeed <= 0 {
		return fmt.Errorf("engineconfig: vehicle.maxSpeed %v must be positive", c.Vehicle.MaxSpeed)
	}
	for _, f := range []struct {
		key string
		val float32
	}{
		{"vehicle.acceleration", c.Vehicle.Acceleration},
		{"vehicle.deceleration", c.Vehicle.Deceleration},
		{"vehicle.turnRate", c.Vehicle.TurnRate},
	} {
		if f.val < 0 {
			return fmt.Errorf("engineconfig: %s %v must not be negative", f.key, f.val)
		}
	}
	return nil
}

// VehicleParams applies the configured tuning to the default vehicle parameters.
func (c Config) VehicleParams() physics.Params {
	p := physics.DefaultParams()
	p.MaxSpeed = c.Vehicle.MaxSpeed
	p.Acceleration = c.Vehicle.Acceleration
	p.Deceleration = c.Vehicle.Deceleration
	p.TurnRate = c.Vehicle.TurnRate
	return p
}
