package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"CatalogBuilder/ai/gpt"
	"CatalogBuilder/entity"
	"CatalogBuilder/internal/lib/sl"
)

// GenerateContent runs the two-stage pipeline: localized marketing copy
// first, then a product image derived from it, merged into one document.
// The image call never starts before the brief call succeeds.
func (c *Core) GenerateContent(ctx context.Context, payload entity.GenerateRequest) (*entity.GenerateResponse, error) {
	if c.briefService == nil || c.imageService == nil {
		return nil, fmt.Errorf("content generation not initialized")
	}

	brief, err := c.briefService.CreateBrief(ctx, payload)
	if err != nil {
		c.log.With(
			slog.String("product", payload.ProductName),
			sl.Err(err),
		).Error("brief generation")
		if errors.Is(err, gpt.ErrMalformedReply) {
			return nil, &Error{Kind: KindUpstreamBrief, Detail: "Malformed response from language model"}
		}
		return nil, err
	}

	imageUrls, err := c.imageService.CreateProductImages(ctx, payload.ProductName, brief.BulletPoints)
	if err != nil {
		c.log.With(
			slog.String("product", payload.ProductName),
			sl.Err(err),
		).Error("image generation")
		return nil, &Error{Kind: KindUpstreamImage, Detail: fmt.Sprintf("Image generation failed: %v", err)}
	}

	// A nil slice means the sources key never appeared in the reply;
	// an empty one is a valid "no retailers found" answer.
	if brief.Sources == nil {
		c.log.With(
			slog.String("product", payload.ProductName),
		).Error("model response missing sources")
		return nil, &Error{Kind: KindResponseShape, Detail: "Invalid model response: sources missing"}
	}

	resp := &entity.GenerateResponse{
		ProductDescription: brief.ProductDescription,
		BulletPoints:       brief.BulletPoints,
		MarketingBlurb:     brief.MarketingBlurb,
		ImageUrls:          imageUrls,
		Sources:            brief.Sources,
	}

	if err := c.validate.Struct(resp); err != nil {
		c.log.With(
			slog.String("product", payload.ProductName),
			sl.Err(err),
		).Error("model response shape")
		return nil, &Error{Kind: KindResponseShape, Detail: fmt.Sprintf("Invalid model response: %v", err)}
	}

	c.log.With(
		slog.String("product", payload.ProductName),
		slog.Int("bullet_points", len(resp.BulletPoints)),
		slog.Int("image_urls", len(resp.ImageUrls)),
		slog.Int("sources", len(resp.Sources)),
	).Debug("content generated")

	return resp, nil
}
