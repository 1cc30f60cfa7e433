package library

import (
	"encoding/json"
	"fmt"

	libstore "github.com/peralt/cerealstyle-mcp/internal/library"
	"github.com/peralt/cerealstyle-mcp/internal/style"
	"github.com/peralt/cerealstyle-mcp/internal/tools"
)

type SaveTool struct {
	store *libstore.Store
}

func NewSaveTool(store *libstore.Store) *SaveTool {
	return &SaveTool{store: store}
}

func (t *SaveTool) Name() string {
	return "skeleton_save"
}

func (t *SaveTool) Description() string {
	return "Save a prompt skeleton to the library under a name, so it can be recalled in a later session. Saving to an existing name overwrites it."
}

func (t *SaveTool) Title() string {
	return "Save Skeleton"
}

func (t *SaveTool) Annotations() map[string]bool {
	return tools.SafeWriteAnnotations()
}

func (t *SaveTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"name": {
				"type": "string",
				"description": "Library name for the skeleton"
			},
			"skeleton": {
				"type": "object",
				"description": "Prompt skeleton from build_prompt_skeleton"
			}
		},
		"required": ["name", "skeleton"]
	}`)
}

func (t *SaveTool) Execute(input json.RawMessage) (interface{}, error) {
	var req struct {
		Name     string               `json:"name"`
		Skeleton style.PromptSkeleton `json:"skeleton"`
	}
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	return t.store.Save(req.Name, req.Skeleton)
}

type GetTool struct {
	store *libstore.Store
}

func NewGetTool(store *libstore.Store) *GetTool {
	return &GetTool{store: store}
}

func (t *GetTool) Name() string {
	return "skeleton_get"
}

func (t *GetTool) Description() string {
	return "Load a saved prompt skeleton from the library by name"
}

func (t *GetTool) Title() string {
	return "Get Skeleton"
}

func (t *GetTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *GetTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"name": {
				"type": "string",
				"description": "Library name of the skeleton"
			}
		},
		"required": ["name"]
	}`)
}

func (t *GetTool) Execute(input json.RawMessage) (interface{}, error) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	return t.store.Get(req.Name)
}

type ListTool struct {
	store *libstore.Store
}

func NewListTool(store *libstore.Store) *ListTool {
	return &ListTool{store: store}
}

func (t *ListTool) Name() string {
	return "skeleton_list"
}

func (t *ListTool) Description() string {
	return "List saved skeletons, optionally filtered by a glob pattern on the name (e.g. 'mascot-*')"
}

func (t *ListTool) Title() string {
	return "List Skeletons"
}

func (t *ListTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *ListTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"pattern": {
				"type": "string",
				"description": "Optional glob pattern to filter names"
			}
		},
		"required": []
	}`)
}

func (t *ListTool) Execute(input json.RawMessage) (interface{}, error) {
	var req struct {
		Pattern string `json:"pattern"`
	}
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, fmt.Errorf("invalid request: %w", err)
		}
	}

	skeletons, err := t.store.List(req.Pattern)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"skeletons": skeletons,
		"count":     len(skeletons),
	}, nil
}

type DeleteTool struct {
	store *libstore.Store
}

func NewDeleteTool(store *libstore.Store) *DeleteTool {
	return &DeleteTool{store: store}
}

func (t *DeleteTool) Name() string {
	return "skeleton_delete"
}

func (t *DeleteTool) Description() string {
	return "Delete a saved skeleton from the library by name"
}

func (t *DeleteTool) Title() string {
	return "Delete Skeleton"
}

func (t *DeleteTool) Annotations() map[string]bool {
	return tools.DestructiveAnnotations()
}

func (t *DeleteTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"name": {
				"type": "string",
				"description": "Library name of the skeleton"
			}
		},
		"required": ["name"]
	}`)
}

func (t *DeleteTool) Execute(input json.RawMessage) (interface{}, error) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if err := t.store.Delete(req.Name); err != nil {
		return nil, err
	}
	return map[string]interface{}{"deleted": req.Name}, nil
}
