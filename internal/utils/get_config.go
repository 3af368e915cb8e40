package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Recipe provider configuration
	SpoonacularAPIKey  string `yaml:"SPOONACULAR_API_KEY"`
	SpoonacularBaseURL string `yaml:"SPOONACULAR_BASE_URL"`

	// Engine knobs; zero values fall back to built-in defaults
	CacheMaxAgeDays   int     `yaml:"CACHE_MAX_AGE_DAYS"`
	CacheHitThreshold int     `yaml:"CACHE_HIT_THRESHOLD"`
	SearchLimit       int     `yaml:"SEARCH_LIMIT"`
	BuyPenaltyScale   int     `yaml:"BUY_PENALTY_SCALE"`
	MacroTolerance    float64 `yaml:"MACRO_TOLERANCE"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	os.Setenv("SPOONACULAR_API_KEY", config.SpoonacularAPIKey)
}

func GetConfig(key string) string {
	switch key {
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "SPOONACULAR_API_KEY":
		return config.SpoonacularAPIKey
	case "SPOONACULAR_BASE_URL":
		if config.SpoonacularBaseURL == "" {
			return "https://api.spoonacular.com"
		}
		return config.SpoonacularBaseURL
	default:
		return ""
	}
}

func GetIntConfig(key string) int {
	switch key {
	case "CACHE_MAX_AGE_DAYS":
		return config.CacheMaxAgeDays
	case "CACHE_HIT_THRESHOLD":
		return config.CacheHitThreshold
	case "SEARCH_LIMIT":
		return config.SearchLimit
	case "BUY_PENALTY_SCALE":
		return config.BuyPenaltyScale
	default:
		return 0
	}
}

func GetFloatConfig(key string) float64 {
	switch key {
	case "MACRO_TOLERANCE":
		return config.MacroTolerance
	default:
		return 0
	}
}
