package entity

type GenerateRequest struct {
	ProductName string   `json:"product_name" validate:"required,min=2,max=150"`
	Keywords    []string `json:"keywords"`
	Country     string   `json:"country" validate:"required,min=2,max=120"`
	Language    string   `json:"language" validate:"required,min=2,max=60"`
}

type Source struct {
	Name string `json:"name" validate:"required"`
	URL  string `json:"url" validate:"required,url"`
}

type GenerateResponse struct {
	ProductDescription string   `json:"product_description" validate:"required"`
	BulletPoints       []string `json:"bullet_points" validate:"required,min=3,max=6"`
	MarketingBlurb     string   `json:"marketing_blurb" validate:"required"`
	ImageUrls          []string `json:"image_urls" validate:"dive,url"`
	Sources            []Source `json:"sources" validate:"dive"`
}

// Brief is the marketing-copy document produced by the language model.
// Sources are validated later, at the merge step, so missing fields
// survive unmarshalling and surface as a shape error instead of a panic.
type Brief struct {
	ProductDescription string   `json:"product_description"`
	BulletPoints       []string `json:"bullet_points"`
	MarketingBlurb     string   `json:"marketing_blurb"`
	Sources            []Source `json:"sources"`
}

const ProductContentFormat = "product_content"

func GetResponseFormat(name string) interface{} {
	switch name {
	case ProductContentFormat:
		return map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"product_description": map[string]interface{}{
					"type":        "string",
					"description": "Localized product description in markdown, written in the requested language.",
				},
				"bullet_points": map[string]interface{}{
					"type":        "array",
					"description": "Concise localized selling points.",
					"items": map[string]interface{}{
						"type": "string",
					},
					"minItems": 3,
					"maxItems": 6,
				},
				"marketing_blurb": map[string]interface{}{
					"type":        "string",
					"description": "One short localized marketing paragraph.",
				},
				"sources": map[string]interface{}{
					"type":        "array",
					"description": "Reputable retailers likely to carry the product in the target country.",
					"items": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"name": map[string]interface{}{
								"type": "string",
							},
							"url": map[string]interface{}{
								"type":   "string",
								"format": "uri",
							},
						},
						"required":             []string{"name", "url"},
						"additionalProperties": false,
					},
				},
			},
			"required": []string{
				"product_description",
				"bullet_points",
				"marketing_blurb",
				"sources",
			},
			"additionalProperties": false,
		}
	default:
		return nil
	}
}
