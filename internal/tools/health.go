package tools

import (
	"encoding/json"

	"github.com/peralt/cerealstyle-mcp/pkg/version"
)

type HealthTool struct{}

func NewHealthTool() *HealthTool {
	return &HealthTool{}
}

func (t *HealthTool) Name() string {
	return "health"
}

func (t *HealthTool) Description() string {
	return "Check server health status"
}

func (t *HealthTool) Title() string {
	return "Health Check"
}

func (t *HealthTool) Annotations() map[string]bool {
	return ReadOnlyAnnotations()
}

func (t *HealthTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {},
		"required": []
	}`)
}

func (t *HealthTool) Execute(input json.RawMessage) (interface{}, error) {
	return map[string]interface{}{
		"status":  "healthy",
		"version": version.Version,
	}, nil
}
