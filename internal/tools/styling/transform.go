package styling

import (
	"encoding/json"
	"fmt"

	"github.com/peralt/cerealstyle-mcp/internal/style"
	"github.com/peralt/cerealstyle-mcp/internal/tools"
)

type ApplyRequest struct {
	Components  style.ComponentRecord `json:"components"`
	Category    string                `json:"category"`
	StyleParams *style.StyleParams    `json:"style_params,omitempty"`
}

type ApplyTransformationsTool struct{}

func (t *ApplyTransformationsTool) Name() string {
	return "apply_transformations"
}

func (t *ApplyTransformationsTool) Description() string {
	return "Rewrite each parsed component according to one category's rule clauses; the deterministic mapping layer between parsing and skeleton assembly"
}

func (t *ApplyTransformationsTool) Title() string {
	return "Apply Transformations"
}

func (t *ApplyTransformationsTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *ApplyTransformationsTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"components": {
				"type": "object",
				"description": "Component record from parse_prompt"
			},
			"category": {
				"type": "string",
				"description": "Target category identifier"
			},
			"style_params": {
				"type": "object",
				"description": "Optional dials: energy_level (0-1), color_saturation (pastel|bright|neon|muted|bold), era, metallic_accent, outline_weight",
				"properties": {
					"energy_level": {"type": "number", "minimum": 0, "maximum": 1},
					"color_saturation": {"type": "string"},
					"era": {"type": "string"},
					"metallic_accent": {"type": "string"},
					"outline_weight": {"type": "string"}
				}
			}
		},
		"required": ["components", "category"]
	}`)
}

func (t *ApplyTransformationsTool) Execute(input json.RawMessage) (interface{}, error) {
	var req ApplyRequest
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	cat, err := style.ParseCategory(req.Category)
	if err != nil {
		return nil, err
	}

	params := style.StyleParams{}
	if req.StyleParams != nil {
		params = *req.StyleParams
	}

	transformed, err := style.ApplyWithParams(req.Components, cat, params)
	if err != nil {
		return nil, fmt.Errorf("apply transformations: %w", err)
	}
	return transformed, nil
}
