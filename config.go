package orbit3d

import (
	"fmt"
	"strings"

	kitlog "github.com/go-kit/kit/log"
	"github.com/spf13/viper"
)

// Config is the configuration of position and path queries.
type Config struct {
	Scale            float64
	Reference        ReferenceFrame
	ReferenceName    string
	DensityThreshold float64
	SparseSamples    int
	DenseSamples     int
	Tolerance        float64
	MaxIterations    int
	Parallel         bool
	Workers          int
	OutputDir        string
}

// SetDefaults sets the configuration defaults on the provided viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("general.scale", DefaultScale)
	v.SetDefault("general.output_path", ".")
	v.SetDefault("frame.reference", "earth")
	v.SetDefault("sampling.density_threshold", DefaultDensityThreshold)
	v.SetDefault("sampling.sparse", DefaultSparseSamples)
	v.SetDefault("sampling.dense", DefaultDenseSamples)
	v.SetDefault("sampling.parallel", false)
	v.SetDefault("sampling.workers", 0)
	v.SetDefault("kepler.tolerance", DefaultTolerance)
	v.SetDefault("kepler.max_iterations", DefaultMaxIterations)
}

// LoadConfig reads the TOML file `name` from the directory `dir`.
// Any key may be overridden by an environment variable such as ORBIT3D_GENERAL_SCALE.
func LoadConfig(dir, name string) (Config, error) {
	name = strings.TrimSuffix(name, ".toml")
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("toml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("%s/%s.toml: %w", dir, name, err)
	}
	return ConfigFromViper(v)
}

// ConfigFromViper builds the configuration from an already loaded viper instance.
func ConfigFromViper(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix("ORBIT3D")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	conf := Config{
		Scale:            v.GetFloat64("general.scale"),
		OutputDir:        v.GetString("general.output_path"),
		DensityThreshold: v.GetFloat64("sampling.density_threshold"),
		SparseSamples:    v.GetInt("sampling.sparse"),
		DenseSamples:     v.GetInt("sampling.dense"),
		Parallel:         v.GetBool("sampling.parallel"),
		Workers:          v.GetInt("sampling.workers"),
		Tolerance:        v.GetFloat64("kepler.tolerance"),
		MaxIterations:    v.GetInt("kepler.max_iterations"),
	}
	if conf.Scale <= 0 {
		return Config{}, fmt.Errorf("general.scale must be positive, got %f", conf.Scale)
	}
	if conf.SparseSamples <= 0 || conf.DenseSamples <= 0 {
		return Config{}, fmt.Errorf("sample counts must be positive (sparse=%d dense=%d)", conf.SparseSamples, conf.DenseSamples)
	}

	// An explicit plane takes precedence over a reference body.
	if v.IsSet("frame.i") || v.IsSet("frame.om") {
		conf.Reference = ReferenceFrame{I: v.GetFloat64("frame.i"), Om: v.GetFloat64("frame.om")}
		conf.ReferenceName = "custom"
		return conf, nil
	}
	name := v.GetString("frame.reference")
	if strings.EqualFold(name, "none") || name == "" {
		conf.ReferenceName = "none"
		return conf, nil
	}
	body, err := BodyFromString(name)
	if err != nil {
		return Config{}, fmt.Errorf("frame.reference: %w", err)
	}
	conf.Reference = FrameOf(body)
	conf.ReferenceName = body.Name
	return conf, nil
}

// Frame returns the position query frame of this configuration.
func (c Config) Frame() Frame {
	return Frame{Reference: c.Reference, Scale: c.Scale, Solver: Solver{Tolerance: c.Tolerance, MaxIterations: c.MaxIterations}}
}

// Sampler returns a path sampler for this configuration.
func (c Config) Sampler(logger kitlog.Logger) *Sampler {
	s := NewSampler(c.Frame())
	s.DensityThreshold = c.DensityThreshold
	s.SparseSamples = c.SparseSamples
	s.DenseSamples = c.DenseSamples
	s.Parallel = c.Parallel
	s.Workers = c.Workers
	s.SetLogger(logger)
	return s
}
