package styling

import (
	"encoding/json"
	"fmt"

	"github.com/peralt/cerealstyle-mcp/internal/style"
	"github.com/peralt/cerealstyle-mcp/internal/tools"
)

type CategoryRulesRequest struct {
	Category string `json:"category"`
}

type CategoryRulesTool struct{}

func (t *CategoryRulesTool) Name() string {
	return "get_category_rules"
}

func (t *CategoryRulesTool) Description() string {
	return "Retrieve the full rule clause set (palette, composition, line_treatment, lighting, lettering, density, texture) for one category"
}

func (t *CategoryRulesTool) Title() string {
	return "Get Category Rules"
}

func (t *CategoryRulesTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *CategoryRulesTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"category": {
				"type": "string",
				"description": "Category identifier",
				"enum": ["mascot_theater", "health_halo", "nostalgia_revival", "premium_disruptor", "kid_chaos", "transparent_honest", "adventure_fantasy"]
			}
		},
		"required": ["category"]
	}`)
}

func (t *CategoryRulesTool) Execute(input json.RawMessage) (interface{}, error) {
	var req CategoryRulesRequest
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	cat, err := style.ParseCategory(req.Category)
	if err != nil {
		return nil, err
	}
	return style.RulesFor(cat)
}
