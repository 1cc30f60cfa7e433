package styling

import (
	"encoding/json"
	"fmt"

	"github.com/peralt/cerealstyle-mcp/internal/style"
	"github.com/peralt/cerealstyle-mcp/internal/tools"
)

type ParseRequest struct {
	Prompt string `json:"prompt"`
}

type ParseResponse struct {
	Components style.ComponentRecord `json:"components"`
	Weights    style.WeightMap       `json:"weights"`
}

type ParsePromptTool struct{}

func (t *ParsePromptTool) Name() string {
	return "parse_prompt"
}

func (t *ParsePromptTool) Description() string {
	return "Decompose a free-text creative prompt into semantic components (subject, action, setting, modifiers, mood) with salience weights"
}

func (t *ParsePromptTool) Title() string {
	return "Parse Prompt"
}

func (t *ParsePromptTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *ParsePromptTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"prompt": {
				"type": "string",
				"description": "Raw creative prompt text, e.g. 'a tired chef tasting soup'"
			}
		},
		"required": ["prompt"]
	}`)
}

func (t *ParsePromptTool) Execute(input json.RawMessage) (interface{}, error) {
	var req ParseRequest
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	// Parsing is total: empty input yields an empty record, not an error.
	components, weights := style.Parse(req.Prompt)
	return ParseResponse{Components: components, Weights: weights}, nil
}
