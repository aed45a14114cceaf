package gpt

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"CatalogBuilder/entity"
)

// ErrMalformedReply marks a Response API reply without a usable document:
// no output text at all, or output text that is not the requested JSON.
var ErrMalformedReply = errors.New("no parsable document in model reply")

const systemPrompt = "You are an e-commerce localization expert. Given a product name, optional keywords, " +
	"target country, and target language, create localized marketing content. " +
	"Output JSON with keys 'product_description' (markdown), 'bullet_points' (array of 3-5 " +
	"concise localized selling points), 'marketing_blurb' (one short paragraph), and 'sources' " +
	"(array of objects with 'name' and 'url' for reputable retailers that are likely to carry the product). " +
	"All copy must be written in the requested language. Invent sources only if you cannot find real ones, " +
	"but prefer well-known international or regional retailers that ship to the target country."

type ResponseAPIRequest struct {
	Model       string        `json:"model"`
	Temperature float32       `json:"temperature"`
	Input       []MessageItem `json:"input"`
	Text        TextSchema    `json:"text"`
	Reasoning   Reasoning     `json:"reasoning"`
	Store       bool          `json:"store"`
}

type MessageItem struct {
	Role    string        `json:"role"`
	Content []ContentItem `json:"content"`
}

type ContentItem struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type TextSchema struct {
	Format Format `json:"format"`
}

type Format struct {
	Type   string      `json:"type"`
	Name   string      `json:"name"`
	Strict bool        `json:"strict"`
	Schema interface{} `json:"schema"`
}

type Reasoning struct {
	Effort string `json:"effort"`
}

type ResponseAPIResponse struct {
	ID     string `json:"id"`
	Output []struct {
		Type    string `json:"type"`
		Status  string `json:"status,omitempty"`
		Role    string `json:"role,omitempty"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content,omitempty"`
	} `json:"output"`
}

// CreateBrief asks the language model for localized marketing copy,
// constrained to the product_content JSON schema.
func (g *Generator) CreateBrief(ctx context.Context, payload entity.GenerateRequest) (*entity.Brief, error) {
	keywords := strings.Join(payload.Keywords, ", ")
	if keywords == "" {
		keywords = "(none)"
	}

	userMsg := fmt.Sprintf(
		"Product name: %s\nKeywords: %s\nCountry: %s\nLanguage: %s\n",
		payload.ProductName, keywords, payload.Country, payload.Language,
	)

	reqBody := ResponseAPIRequest{
		Model:       g.textModel,
		Temperature: g.temperature,
		Input: []MessageItem{
			{
				Role: "system",
				Content: []ContentItem{
					{Type: "input_text", Text: systemPrompt},
				},
			},
			{
				Role: "user",
				Content: []ContentItem{
					{Type: "input_text", Text: userMsg},
				},
			},
		},
		Text: TextSchema{
			Format: Format{
				Type:   "json_schema",
				Name:   entity.ProductContentFormat,
				Strict: true,
				Schema: entity.GetResponseFormat(entity.ProductContentFormat),
			},
		},
		Reasoning: Reasoning{Effort: g.effort},
		Store:     false,
	}

	b, _ := json.Marshal(reqBody)
	req, err := http.NewRequestWithContext(ctx, "POST", g.baseURL+"/responses", bytes.NewBuffer(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// Limit the body read to 10MB to avoid OOM on a broken upstream
	body, err := io.ReadAll(io.LimitReader(resp.Body, 10*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("response API error: %s", string(body))
	}

	var apiResp ResponseAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %v", err)
	}

	briefText := ""
	for _, out := range apiResp.Output {
		if out.Type != "message" {
			continue
		}
		for _, c := range out.Content {
			if c.Type == "output_text" && c.Text != "" {
				briefText = c.Text // keep overwriting, the final one wins
			}
		}
	}

	if briefText == "" {
		g.log.With(
			slog.String("response_id", apiResp.ID),
			slog.Int("output_items", len(apiResp.Output)),
		).Warn("no output text in model reply")
		return nil, ErrMalformedReply
	}

	var brief entity.Brief
	if err := json.Unmarshal([]byte(briefText), &brief); err != nil {
		g.log.With(
			slog.String("response_id", apiResp.ID),
			slog.Int("text_length", len(briefText)),
		).Warn("model reply is not the requested JSON document")
		return nil, ErrMalformedReply
	}

	g.log.With(
		slog.String("response_id", apiResp.ID),
		slog.Int("bullet_points", len(brief.BulletPoints)),
		slog.Int("sources", len(brief.Sources)),
	).Debug("brief generated")

	return &brief, nil
}
