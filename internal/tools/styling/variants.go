package styling

import (
	"encoding/json"
	"fmt"

	"github.com/peralt/cerealstyle-mcp/internal/style"
	"github.com/peralt/cerealstyle-mcp/internal/tools"
)

type VariantsRequest struct {
	Transformed style.TransformedComponentRecord `json:"transformed"`
	Count       int                              `json:"count"`
}

type VariantsResponse struct {
	Variants style.VariantSet `json:"variants"`
}

type GenerateVariantsTool struct{}

func (t *GenerateVariantsTool) Name() string {
	return "generate_variants"
}

func (t *GenerateVariantsTool) Description() string {
	return "Produce bounded variations of a transformed record, perturbing modifiers and mood deterministically while holding subject, action and category fixed"
}

func (t *GenerateVariantsTool) Title() string {
	return "Generate Variants"
}

func (t *GenerateVariantsTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *GenerateVariantsTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"transformed": {
				"type": "object",
				"description": "Transformed component record from apply_transformations"
			},
			"count": {
				"type": "integer",
				"description": "Number of variants to generate",
				"minimum": 1
			}
		},
		"required": ["transformed", "count"]
	}`)
}

func (t *GenerateVariantsTool) Execute(input json.RawMessage) (interface{}, error) {
	var req VariantsRequest
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	variants, err := style.GenerateVariants(req.Transformed, req.Count)
	if err != nil {
		return nil, fmt.Errorf("generate variants: %w", err)
	}
	return VariantsResponse{Variants: variants}, nil
}
