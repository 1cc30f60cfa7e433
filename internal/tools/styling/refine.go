package styling

import (
	"encoding/json"
	"fmt"

	"github.com/peralt/cerealstyle-mcp/internal/style"
	"github.com/peralt/cerealstyle-mcp/internal/tools"
)

type RefineRequest struct {
	Skeleton    *style.PromptSkeleton             `json:"skeleton,omitempty"`
	Transformed *style.TransformedComponentRecord `json:"transformed,omitempty"`
	Slot        string                            `json:"slot"`
	NewText     string                            `json:"new_text"`
}

type RefineComponentTool struct{}

func (t *RefineComponentTool) Name() string {
	return "refine_component"
}

func (t *RefineComponentTool) Description() string {
	return "Replace a single named slot of a skeleton or transformed record without re-running the pipeline; every other field stays unchanged"
}

func (t *RefineComponentTool) Title() string {
	return "Refine Component"
}

func (t *RefineComponentTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *RefineComponentTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"skeleton": {
				"type": "object",
				"description": "Prompt skeleton from build_prompt_skeleton (provide this or transformed)"
			},
			"transformed": {
				"type": "object",
				"description": "Transformed component record from apply_transformations (provide this or skeleton)"
			},
			"slot": {
				"type": "string",
				"description": "Slot to replace",
				"enum": ["subject", "action", "setting", "modifiers", "mood"]
			},
			"new_text": {
				"type": "string",
				"description": "Replacement text; for modifiers, a comma-separated list"
			}
		},
		"required": ["slot", "new_text"]
	}`)
}

func (t *RefineComponentTool) Execute(input json.RawMessage) (interface{}, error) {
	var req RefineRequest
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	slot := style.SlotName(req.Slot)

	switch {
	case req.Skeleton != nil:
		refined, err := style.RefineSkeleton(*req.Skeleton, slot, req.NewText)
		if err != nil {
			return nil, fmt.Errorf("refine skeleton: %w", err)
		}
		return refined, nil
	case req.Transformed != nil:
		refined, err := style.RefineRecord(*req.Transformed, slot, req.NewText)
		if err != nil {
			return nil, fmt.Errorf("refine record: %w", err)
		}
		return refined, nil
	default:
		return nil, fmt.Errorf("either skeleton or transformed is required")
	}
}
