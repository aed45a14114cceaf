package core

import (
	"context"
	"log/slog"

	"CatalogBuilder/entity"
	"CatalogBuilder/internal/lib/sl"

	"github.com/go-playground/validator/v10"
)

type BriefService interface {
	CreateBrief(ctx context.Context, payload entity.GenerateRequest) (*entity.Brief, error)
}

type ImageService interface {
	CreateProductImages(ctx context.Context, productName string, bulletPoints []string) ([]string, error)
}

type Core struct {
	briefService BriefService
	imageService ImageService
	validate     *validator.Validate
	log          *slog.Logger
}

func New(log *slog.Logger) *Core {
	return &Core{
		validate: validator.New(),
		log:      log.With(sl.Module("core")),
	}
}

func (c *Core) SetBriefService(bs BriefService) {
	c.briefService = bs
}

func (c *Core) SetImageService(is ImageService) {
	c.imageService = is
}
