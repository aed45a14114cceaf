package main

import (
	"flag"
	"log/slog"

	"CatalogBuilder/ai/gpt"
	"CatalogBuilder/impl/core"
	"CatalogBuilder/internal/config"
	"CatalogBuilder/internal/http-server/api"
	"CatalogBuilder/internal/lib/logger"
	"CatalogBuilder/internal/lib/sl"
)

func main() {

	configPath := flag.String("conf", "config.yml", "path to config file")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	lg := logger.SetupLogger(conf.Env)

	lg.Info("starting catalog builder", slog.String("config", *configPath), slog.String("env", conf.Env))
	lg.Debug("debug messages enabled")

	handler := core.New(lg)

	generator := gpt.NewGenerator(conf, lg)
	handler.SetBriefService(generator)
	handler.SetImageService(generator)
	lg.With(
		sl.Secret("openai_key", conf.OpenAI.ApiKey),
		slog.String("text_model", conf.OpenAI.TextModel),
		slog.String("image_model", conf.OpenAI.ImageModel),
	).Info("generator initialized")

	// *** blocking start with http server ***
	err := api.New(conf, lg, handler)
	if err != nil {
		lg.Error("server start", sl.Err(err))
		return
	}
	lg.Error("service stopped")
}
