package util

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

func ReadConfig() error {
	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")
	viper.AutomaticEnv()

	setDefaults()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// env vars and defaults are enough to run
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("CITY_FILE", "./data/city.cty")
	viper.SetDefault("ROUTE_WORKERS", 4)
	viper.SetDefault("ROUTE_CACHE_SIZE", 1<<16)

	viper.SetDefault("COST_ROAD_UNIT", 5)
	viper.SetDefault("COST_STREET_MULTIPLIER", 2)
	viper.SetDefault("COST_CROSSROAD_MULTIPLIER", 15)

	viper.SetDefault("HTTP_SERVER_READ_TIMEOUT", "15s")
	viper.SetDefault("HTTP_SERVER_WRITE_TIMEOUT", "15s")
	viper.SetDefault("HTTP_SERVER_IDLE_TIMEOUT", "60s")
	viper.SetDefault("HTTP_SERVER_READ_HEADER_TIMEOUT", "5s")
}
