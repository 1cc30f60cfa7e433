package styling

import (
	"encoding/json"
	"fmt"

	"github.com/peralt/cerealstyle-mcp/internal/style"
	"github.com/peralt/cerealstyle-mcp/internal/tools"
)

type BuildSkeletonRequest struct {
	Transformed style.TransformedComponentRecord `json:"transformed"`
	Weights     style.WeightMap                  `json:"weights"`
}

type BuildSkeletonTool struct{}

func (t *BuildSkeletonTool) Name() string {
	return "build_prompt_skeleton"
}

func (t *BuildSkeletonTool) Description() string {
	return "Assemble transformed components and their salience weights into the ordered, labeled prompt skeleton handed to downstream synthesis"
}

func (t *BuildSkeletonTool) Title() string {
	return "Build Prompt Skeleton"
}

func (t *BuildSkeletonTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *BuildSkeletonTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"transformed": {
				"type": "object",
				"description": "Transformed component record from apply_transformations"
			},
			"weights": {
				"type": "object",
				"description": "Slot weight map from parse_prompt; must cover exactly the fixed slot set"
			}
		},
		"required": ["transformed", "weights"]
	}`)
}

func (t *BuildSkeletonTool) Execute(input json.RawMessage) (interface{}, error) {
	var req BuildSkeletonRequest
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	skeleton, err := style.BuildSkeleton(req.Transformed, req.Weights)
	if err != nil {
		return nil, fmt.Errorf("build skeleton: %w", err)
	}
	return skeleton, nil
}
