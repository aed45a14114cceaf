package config

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env    string `yaml:"env" env:"ENV" env-default:"local"`
	OpenAI struct {
		ApiKey      string  `yaml:"api_key" env:"OPENAI_API_KEY" env-default:""`
		BaseURL     string  `yaml:"base_url" env:"OPENAI_BASE_URL" env-default:"https://api.openai.com/v1"`
		TextModel   string  `yaml:"text_model" env:"OPENAI_TEXT_MODEL" env-default:"gpt-4.1-mini"`
		ImageModel  string  `yaml:"image_model" env:"OPENAI_IMAGE_MODEL" env-default:"gpt-image-1"`
		Temperature float32 `yaml:"temperature" env:"OPENAI_TEMPERATURE" env-default:"0.7"`
		Effort      string  `yaml:"reasoning_effort" env:"OPENAI_REASONING_EFFORT" env-default:"medium"`
	} `yaml:"openai"`
	Listen struct {
		BindIP string `yaml:"bind_ip" env:"BIND_IP" env-default:"0.0.0.0"`
		Port   string `yaml:"port" env:"PORT" env-default:"8000"`
	} `yaml:"listen"`
}

var instance *Config
var once sync.Once

// MustLoad reads the config file when one exists, otherwise falls back to
// environment variables alone. Exits the process on a missing API key.
func MustLoad(path string) *Config {
	var err error
	once.Do(func() {
		instance = &Config{}

		if _, statErr := os.Stat(path); statErr == nil {
			err = cleanenv.ReadConfig(path, instance)
		} else {
			err = cleanenv.ReadEnv(instance)
		}
		if err != nil {
			desc, _ := cleanenv.GetDescription(instance, nil)
			err = fmt.Errorf("%s; %s", err, desc)
			instance = nil
			log.Fatal(err)
		}

		if instance.OpenAI.ApiKey == "" {
			instance = nil
			log.Fatal("OPENAI_API_KEY environment variable is required")
		}
	})
	return instance
}
