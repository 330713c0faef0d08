package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string
	}
	Game struct {
		StartingChips int64
		SmallBlind    int64
		BigBlind      int64
		LobbyTTL      int // seconds a queued player stays in a pool
	}
	Database struct {
		DSN string
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
	}
	JWT struct {
		Secret string
	}
}

var C Config

// Load reads config/config.yaml with env overrides (RIVERPOKER_*).
// A missing file falls back to defaults so tests and dev runs just work.
func Load() {
	viper.SetDefault("server.port", ":8080")
	viper.SetDefault("game.startingchips", 1000)
	viper.SetDefault("game.smallblind", 10)
	viper.SetDefault("game.bigblind", 20)
	viper.SetDefault("game.lobbyttl", 300)
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("jwt.secret", "dev-secret-change-me")

	viper.SetConfigFile("config/config.yaml")
	viper.SetEnvPrefix("riverpoker")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("config file not loaded: %v", err)
		}
	}
	if err := viper.Unmarshal(&C); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
}
