package generate

import (
	"context"

	"CatalogBuilder/entity"
)

type Core interface {
	GenerateContent(ctx context.Context, payload entity.GenerateRequest) (*entity.GenerateResponse, error)
}
