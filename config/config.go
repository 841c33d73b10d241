package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Host  string
	Port  int `default:"8050"`
	Debug bool

	DatasetPath string `split_words:"true" default:"./dataset/spotify_songs_clean.csv"`
	AssetsDir   string `split_words:"true" default:"./assets"`

	// Bins is the number of date bins used when zooming on an artist.
	Bins int `default:"10"`
	// CorrelationTop is how many of the most popular songs of each genre
	// computed correlations look at.
	CorrelationTop int `split_words:"true" default:"1000"`
}

// Load reads the configuration from SONGSTORY_* environment variables, after
// loading a .env file when there is one.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var cfg Config
	err := envconfig.Process("songstory", &cfg)
	return cfg, err
}

func ProvideConfig() Config {
	cfg, err := Load()
	if err != nil {
		log.Fatal(err.Error())
	}
	return cfg
}

var Options = ProvideConfig
