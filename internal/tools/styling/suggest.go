package styling

import (
	"encoding/json"
	"fmt"

	"github.com/peralt/cerealstyle-mcp/internal/style"
	"github.com/peralt/cerealstyle-mcp/internal/tools"
)

type SuggestRequest struct {
	Components style.ComponentRecord `json:"components"`
	Weights    style.WeightMap       `json:"weights"`
}

type SuggestResponse struct {
	PrimarySuggestion style.Category         `json:"primary_suggestion"`
	Alternatives      []style.Category       `json:"alternatives"`
	Ranking           []style.RankedCategory `json:"ranking"`
}

type SuggestCategoryTool struct{}

func (t *SuggestCategoryTool) Name() string {
	return "suggest_category"
}

func (t *SuggestCategoryTool) Description() string {
	return "Score parsed components against every category's rule keywords and suggest the best fit, with the full deterministic ranking"
}

func (t *SuggestCategoryTool) Title() string {
	return "Suggest Category"
}

func (t *SuggestCategoryTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *SuggestCategoryTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"components": {
				"type": "object",
				"description": "Component record from parse_prompt"
			},
			"weights": {
				"type": "object",
				"description": "Slot weight map from parse_prompt; missing slots count as zero"
			}
		},
		"required": ["components"]
	}`)
}

func (t *SuggestCategoryTool) Execute(input json.RawMessage) (interface{}, error) {
	var req SuggestRequest
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	if req.Weights == nil {
		req.Weights = style.ZeroWeights()
	}

	primary, ranking := style.Suggest(req.Components, req.Weights)

	alternatives := make([]style.Category, 0, 2)
	for _, r := range ranking[1:] {
		if len(alternatives) == 2 {
			break
		}
		alternatives = append(alternatives, r.Category)
	}

	return SuggestResponse{
		PrimarySuggestion: primary,
		Alternatives:      alternatives,
		Ranking:           ranking,
	}, nil
}
