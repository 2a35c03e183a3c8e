package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env          string             `yaml:"env" env:"ENV" env-default:"local"`
	Log          LogConfig          `yaml:"log"`
	FootballData FootballDataConfig `yaml:"football_data"`
	Fixtures     FixturesConfig     `yaml:"fixtures"`
}

type LogConfig struct {
	Level    string `yaml:"level" env:"LOG_LEVEL" env-default:"warn"`
	Encoding string `yaml:"encoding" env:"LOG_ENCODING" env-default:"console"`
}

type FootballDataConfig struct {
	BaseURL  string        `yaml:"base_url" env:"FOOTBALL_DATA_BASE_URL" env-default:"https://api.football-data.org"`
	TeamID   int64         `yaml:"team_id" env:"FOOTBALL_DATA_TEAM_ID" env-default:"81"`
	TeamName string        `yaml:"team_name" env:"FOOTBALL_DATA_TEAM_NAME" env-default:"FC Barcelona"`
	APIKey   string        `yaml:"api_key" env:"FOOTBALL_DATA_API_KEY"`
	Timeout  time.Duration `yaml:"timeout" env:"FOOTBALL_DATA_TIMEOUT" env-default:"0s"`
}

type FixturesConfig struct {
	Timezone    string `yaml:"timezone" env:"FIXTURES_TIMEZONE"`
	Sort        string `yaml:"sort" env:"FIXTURES_SORT" env-default:"lexical"`
	MaxAttempts int    `yaml:"max_attempts" env:"FIXTURES_MAX_ATTEMPTS" env-default:"0"`
	ZoneinfoDir string `yaml:"zoneinfo_dir" env:"ZONEINFO_DIR"`
	NoColor     bool   `yaml:"no_color" env:"FIXTURES_NO_COLOR" env-default:"false"`
}

// MustLoad reads the YAML file named by -config or CONFIG_PATH when it exists.
// Without a file every value comes from the environment.
func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		return MustLoadEnv()
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return MustLoadEnv()
	}
	return MustLoadByPath(path)
}

func MustLoadByPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exists: " + configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read the config: " + err.Error())
	}

	return &cfg
}

func MustLoadEnv() *Config {
	cfg, err := LoadEnv()
	if err != nil {
		panic("cannot read the environment: " + err.Error())
	}
	return cfg
}

func LoadEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	if res == "" {
		res = "config/local.yaml"
	}

	return res
}
