package config

import (
	"log"
	"os"
	"strconv"

	"github.com/mapleleafu/wardrush/wardrush-backend/game"
)

type Config struct {
	Port string
	Game game.Config
}

func LoadConfig() *Config {
	gameCfg := game.DefaultConfig()
	gameCfg.ProductTarget = getEnvInt("PRODUCT_TARGET", gameCfg.ProductTarget)
	gameCfg.HoleChance = getEnvFloat("HOLE_CHANCE", gameCfg.HoleChance)

	return &Config{
		Port: getEnv("PORT", "8080"),
		Game: gameCfg,
	}
}

// getEnv reads an environment variable and returns its value or a default value
func getEnv(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		value = defaultValue
		log.Printf("Environment variable %s not set, using default value: %s", key, defaultValue)
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Environment variable %s is not an integer, using default value: %d", key, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Environment variable %s is not a number, using default value: %g", key, defaultValue)
		return defaultValue
	}
	return f
}
