package gpt

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const imagePromptTemplate = "Generate a product photo style image for '%s'. The image should align with the " +
	"following marketing context: %s. Style: clean studio lighting, realistic photography."

// CreateProductImages renders one studio-style product photo and returns
// every URL the API handed back. Zero URLs is not an error.
func (g *Generator) CreateProductImages(ctx context.Context, productName string, bulletPoints []string) ([]string, error) {
	highlights := bulletPoints
	if len(highlights) > 3 {
		highlights = highlights[:3]
	}
	prompt := fmt.Sprintf(imagePromptTemplate, productName, strings.Join(highlights, "; "))

	resp, err := g.client.CreateImage(ctx, openai.ImageRequest{
		Model:   g.imageModel,
		Prompt:  prompt,
		N:       1,
		Size:    "1024x1024",
		Quality: openai.CreateImageQualityMedium,
	})
	if err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(resp.Data))
	for _, data := range resp.Data {
		if data.URL != "" {
			urls = append(urls, data.URL)
		}
	}

	g.log.With(
		slog.String("product", productName),
		slog.Int("urls", len(urls)),
	).Debug("images generated")

	return urls, nil
}
