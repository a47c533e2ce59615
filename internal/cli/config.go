// Package cli - viper-backed engine configuration.
//
// Resolution order for every engine parameter: command-line flag, then
// ACOPATH_* environment variable, then acopath.yaml in the working
// directory, then the engine's built-in default. Range validation happens
// here so configuration mistakes surface as CLI errors instead of panics
// from the engine's option constructors.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/acopath/acopath/antsystem"
)

const (
	configBaseName = "acopath"

	antsKey        = "ants"
	iterationsKey  = "iterations"
	seedKey        = "seed"
	alphaKey       = "alpha"
	betaKey        = "beta"
	evaporationKey = "evaporation"
	quantityKey    = "quantity"
	parallelKey    = "parallel"

	envPrefix = "ACOPATH"
)

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)

	viper.SetDefault(antsKey, antsystem.DefaultAnts)
	viper.SetDefault(iterationsKey, antsystem.DefaultIterations)
	viper.SetDefault(seedKey, 0)
	viper.SetDefault(alphaKey, antsystem.DefaultAlpha)
	viper.SetDefault(betaKey, antsystem.DefaultBeta)
	viper.SetDefault(evaporationKey, antsystem.DefaultEvaporationRate)
	viper.SetDefault(quantityKey, antsystem.DefaultPheromoneQuantity)
	viper.SetDefault(parallelKey, 1)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return // config file is optional
		}
		cobraCheckErr(err)
	}
}

// cobraCheckErr is split out so config parsing failures stay testable.
func cobraCheckErr(err error) {
	if err != nil {
		panic(fmt.Sprintf("cli: read config: %v", err))
	}
}

// engineOptions validates the resolved configuration and converts it into
// antsystem options. Ants/iterations are passed through untouched — the
// engine documents non-positive values as a silent fallback to defaults.
func engineOptions() ([]antsystem.Option, error) {
	var (
		alpha       = viper.GetFloat64(alphaKey)
		beta        = viper.GetFloat64(betaKey)
		evaporation = viper.GetFloat64(evaporationKey)
		quantity    = viper.GetFloat64(quantityKey)
	)

	if alpha < 0 || beta < 0 {
		return nil, fmt.Errorf("%w (alpha=%v, beta=%v)", antsystem.ErrBadExponent, alpha, beta)
	}
	if evaporation <= 0 || evaporation >= 1 {
		return nil, fmt.Errorf("%w (evaporation=%v)", antsystem.ErrBadEvaporationRate, evaporation)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w (quantity=%v)", antsystem.ErrBadPheromoneQuantity, quantity)
	}

	return []antsystem.Option{
		antsystem.WithAnts(viper.GetInt(antsKey)),
		antsystem.WithIterations(viper.GetInt(iterationsKey)),
		antsystem.WithSeed(viper.GetInt64(seedKey)),
		antsystem.WithAlpha(alpha),
		antsystem.WithBeta(beta),
		antsystem.WithEvaporationRate(evaporation),
		antsystem.WithPheromoneQuantity(quantity),
		antsystem.WithParallelism(viper.GetInt(parallelKey)),
	}, nil
}
