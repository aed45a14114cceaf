package gpt

import (
	"log/slog"
	"net/http"

	"CatalogBuilder/internal/config"
	"CatalogBuilder/internal/lib/sl"

	"github.com/sashabaranov/go-openai"
)

// Generator is the single long-lived handle to the OpenAI APIs. It is
// immutable after construction and safe for concurrent requests.
type Generator struct {
	client      *openai.Client
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	textModel   string
	imageModel  string
	temperature float32
	effort      string
	log         *slog.Logger
}

func NewGenerator(conf *config.Config, logger *slog.Logger) *Generator {
	clientConfig := openai.DefaultConfig(conf.OpenAI.ApiKey)
	clientConfig.BaseURL = conf.OpenAI.BaseURL

	return &Generator{
		client:      openai.NewClientWithConfig(clientConfig),
		httpClient:  http.DefaultClient,
		apiKey:      conf.OpenAI.ApiKey,
		baseURL:     conf.OpenAI.BaseURL,
		textModel:   conf.OpenAI.TextModel,
		imageModel:  conf.OpenAI.ImageModel,
		temperature: conf.OpenAI.Temperature,
		effort:      conf.OpenAI.Effort,
		log:         logger.With(sl.Module("gpt.generator")),
	}
}
