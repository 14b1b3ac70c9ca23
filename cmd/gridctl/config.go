package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/grid"
)

const (
	configFileName = "gridctl"
	configFileType = "yaml"
	envPrefix      = "GRIDCTL"

	// Config keys; each is also a persistent flag of the same name.
	keyKind        = "kind"
	keySize        = "size"
	keyOrientation = "orientation"
	keyMetric      = "metric"
	keyOrigin      = "origin"
	keyBounds      = "bounds"
	keyWorkers     = "workers"
	keyJSON        = "json"
	keyVerbose     = "verbose"

	defaultKind        = "square"
	defaultSize        = 1.0
	defaultOrientation = "flat"
	defaultMetric      = "chebyshev"
)

// loadConfig layers flags over GRIDCTL_* environment variables over the
// config file. A missing gridctl.yaml is not an error; a missing file named
// with --config is.
func loadConfig(configFile string, cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/gridctl")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// settings is the validated configuration of one invocation.
type settings struct {
	Kind        grid.Kind
	Size        float64
	Orientation grid.Orientation
	Metric      grid.Metric
	Origin      grid.Point
	Bounds      *grid.Rect
	Workers     int
	JSON        bool
	Verbose     bool
}

func readSettings(v *viper.Viper) (settings, error) {
	var (
		s   settings
		err error
	)
	if s.Kind, err = grid.ParseKind(v.GetString(keyKind)); err != nil {
		return s, err
	}
	if s.Orientation, err = grid.ParseOrientation(v.GetString(keyOrientation)); err != nil {
		return s, err
	}
	if s.Metric, err = grid.ParseMetric(v.GetString(keyMetric)); err != nil {
		return s, err
	}
	s.Size = v.GetFloat64(keySize)
	s.Workers = v.GetInt(keyWorkers)
	s.JSON = v.GetBool(keyJSON)
	s.Verbose = v.GetBool(keyVerbose)

	if o := v.GetString(keyOrigin); o != "" {
		if s.Origin, err = parsePoint(o); err != nil {
			return s, fmt.Errorf("origin: %w", err)
		}
	}
	if b := v.GetString(keyBounds); b != "" {
		r, err := parseRect(b)
		if err != nil {
			return s, fmt.Errorf("bounds: %w", err)
		}
		s.Bounds = &r
	}
	return s, nil
}

func (s settings) options() []grid.Option {
	opts := []grid.Option{
		grid.WithOrigin(s.Origin),
		grid.WithOrientation(s.Orientation),
		grid.WithMetric(s.Metric),
		grid.WithWorkers(s.Workers),
	}
	if s.Bounds != nil {
		opts = append(opts, grid.WithBounds(*s.Bounds))
	}
	return opts
}

// parseFloats parses n comma-separated numbers, optionally wrapped in
// parentheses.
func parseFloats(s string, n int) ([]float64, error) {
	t := strings.TrimSpace(s)
	t = strings.TrimSuffix(strings.TrimPrefix(t, "("), ")")
	parts := strings.Split(t, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("%q: want %d comma-separated numbers", s, n)
	}
	out := make([]float64, n)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, err)
		}
		out[i] = f
	}
	return out, nil
}

func parsePoint(s string) (grid.Point, error) {
	f, err := parseFloats(s, 2)
	if err != nil {
		return grid.Point{}, err
	}
	return grid.Pt(f[0], f[1]), nil
}

func parseRect(s string) (grid.Rect, error) {
	f, err := parseFloats(s, 4)
	if err != nil {
		return grid.Rect{}, err
	}
	return grid.R(f[0], f[1], f[2], f[3]), nil
}
