package tests

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/peralt/cerealstyle-mcp/internal/mcp"
	"github.com/peralt/cerealstyle-mcp/internal/tools"
	"github.com/peralt/cerealstyle-mcp/internal/tools/library"
	"github.com/peralt/cerealstyle-mcp/internal/tools/styling"
)

func buildRegistry(t *testing.T, dbPath string) *tools.Registry {
	t.Helper()

	registry := tools.NewRegistry()

	if err := registry.Register(tools.NewHealthTool()); err != nil {
		t.Fatalf("Failed to register health tool: %v", err)
	}
	for _, tool := range styling.GetTools() {
		if err := registry.Register(tool); err != nil {
			t.Fatalf("Failed to register %s: %v", tool.Name(), err)
		}
	}

	libTools, err := library.GetTools(dbPath)
	if err != nil {
		t.Fatalf("Failed to get library tools: %v", err)
	}
	for _, tool := range libTools {
		if err := registry.Register(tool); err != nil {
			t.Fatalf("Failed to register %s: %v", tool.Name(), err)
		}
	}

	return registry
}

// callTool drives a tools/call request through the server and decodes the
// text content back into out.
func callTool(t *testing.T, server *mcp.Server, name string, args map[string]interface{}, out interface{}) {
	t.Helper()

	resp := server.HandleRequest(&mcp.Request{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params: map[string]interface{}{
			"name":      name,
			"arguments": args,
		},
	})

	if resp.Error != nil {
		t.Fatalf("%s failed: %d %s", name, resp.Error.Code, resp.Error.Message)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("%s: unexpected result type %T", name, resp.Result)
	}
	content, ok := result["content"].([]map[string]interface{})
	if !ok || len(content) == 0 {
		t.Fatalf("%s: missing content in result", name)
	}
	text, ok := content[0]["text"].(string)
	if !ok {
		t.Fatalf("%s: content is not text", name)
	}

	if out != nil {
		if err := json.Unmarshal([]byte(text), out); err != nil {
			t.Fatalf("%s: failed to decode result: %v", name, err)
		}
	}
}

func TestServerE2E(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "cerealstyle-e2e-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	registry := buildRegistry(t, filepath.Join(tmpDir, "library.db"))
	server := mcp.NewServer(registry)

	t.Run("Registry_AllToolsRegistered", func(t *testing.T) {
		names := registry.Names()
		expectedCount := 13
		if len(names) != expectedCount {
			t.Errorf("Expected %d tools, got %d: %v", expectedCount, len(names), names)
		}
	})

	t.Run("Initialize", func(t *testing.T) {
		resp := server.HandleRequest(&mcp.Request{
			JSONRPC: "2.0",
			ID:      1,
			Method:  "initialize",
			Params: map[string]interface{}{
				"protocolVersion": "2024-11-05",
				"clientInfo": map[string]interface{}{
					"name":    "e2e-test",
					"version": "0.0.1",
				},
			},
		})
		if resp.Error != nil {
			t.Fatalf("initialize failed: %v", resp.Error)
		}

		result := resp.Result.(map[string]interface{})
		if result["protocolVersion"] != "2024-11-05" {
			t.Errorf("Unexpected protocol version: %v", result["protocolVersion"])
		}
		serverInfo := result["serverInfo"].(map[string]interface{})
		if serverInfo["name"] == "" {
			t.Error("Expected non-empty server name")
		}
	})

	t.Run("ToolsList", func(t *testing.T) {
		resp := server.HandleRequest(&mcp.Request{
			JSONRPC: "2.0",
			ID:      2,
			Method:  "tools/list",
		})
		if resp.Error != nil {
			t.Fatalf("tools/list failed: %v", resp.Error)
		}

		result := resp.Result.(map[string]interface{})
		toolsData := result["tools"].([]map[string]interface{})
		if len(toolsData) != 13 {
			t.Errorf("Expected 13 tools listed, got %d", len(toolsData))
		}

		for _, td := range toolsData {
			if td["name"] == "" {
				t.Error("Tool with empty name in listing")
			}
			if td["inputSchema"] == nil {
				t.Errorf("Tool %v missing inputSchema", td["name"])
			}
			if td["annotations"] == nil {
				t.Errorf("Tool %v missing annotations", td["name"])
			}
		}
	})

	t.Run("StylingPipeline", func(t *testing.T) {
		var parsed struct {
			Components map[string]interface{} `json:"components"`
			Weights    map[string]float64     `json:"weights"`
		}
		callTool(t, server, "parse_prompt", map[string]interface{}{
			"prompt": "a tired chef tasting soup in a busy kitchen",
		}, &parsed)

		if parsed.Components["subject"] != "chef" {
			t.Errorf("Expected subject chef, got %v", parsed.Components["subject"])
		}
		if parsed.Components["mood"] != "tired" {
			t.Errorf("Expected mood tired, got %v", parsed.Components["mood"])
		}

		var suggestion struct {
			PrimarySuggestion string   `json:"primary_suggestion"`
			Alternatives      []string `json:"alternatives"`
		}
		callTool(t, server, "suggest_category", map[string]interface{}{
			"components": parsed.Components,
			"weights":    parsed.Weights,
		}, &suggestion)

		if suggestion.PrimarySuggestion == "" {
			t.Fatal("Expected a primary suggestion")
		}
		if len(suggestion.Alternatives) != 2 {
			t.Errorf("Expected 2 alternatives, got %d", len(suggestion.Alternatives))
		}

		var transformed map[string]interface{}
		callTool(t, server, "apply_transformations", map[string]interface{}{
			"components": parsed.Components,
			"category":   suggestion.PrimarySuggestion,
		}, &transformed)

		if transformed["category"] != suggestion.PrimarySuggestion {
			t.Errorf("Transformed record tagged %v, want %v",
				transformed["category"], suggestion.PrimarySuggestion)
		}

		var skeleton map[string]interface{}
		callTool(t, server, "build_prompt_skeleton", map[string]interface{}{
			"transformed": transformed,
			"weights":     parsed.Weights,
		}, &skeleton)

		sections := skeleton["sections"].([]interface{})
		if len(sections) == 0 {
			t.Fatal("Expected skeleton sections")
		}
		if skeleton["ready_for_synthesis"] != true {
			t.Error("Expected skeleton marked ready for synthesis")
		}

		var refined map[string]interface{}
		callTool(t, server, "refine_component", map[string]interface{}{
			"skeleton": skeleton,
			"slot":     "setting",
			"new_text": "a gleaming chrome test kitchen",
		}, &refined)

		modified, _ := refined["modified"].([]interface{})
		if len(modified) != 1 || modified[0] != "setting" {
			t.Errorf("Expected modified=[setting], got %v", modified)
		}

		var variants struct {
			Variants []struct {
				Name   string                 `json:"name"`
				Record map[string]interface{} `json:"record"`
			} `json:"variants"`
		}
		callTool(t, server, "generate_variants", map[string]interface{}{
			"transformed": transformed,
			"count":       3,
		}, &variants)

		if len(variants.Variants) != 3 {
			t.Fatalf("Expected 3 variants, got %d", len(variants.Variants))
		}
		seen := map[string]bool{}
		for _, v := range variants.Variants {
			if seen[v.Name] {
				t.Errorf("Duplicate variant name %s", v.Name)
			}
			seen[v.Name] = true
		}
	})

	t.Run("SkeletonLibrary", func(t *testing.T) {
		var skeleton map[string]interface{}
		callTool(t, server, "build_prompt_skeleton", map[string]interface{}{
			"transformed": map[string]interface{}{
				"category": "mascot_theater",
				"subject":  "a cartoon tiger",
				"action":   "surfing a milk wave",
				"setting":  "a breakfast table",
				"mood":     "ecstatic",
			},
			"weights": map[string]float64{
				"subject":   0.5,
				"action":    0.3,
				"setting":   0.2,
				"modifiers": 0,
				"mood":      0,
			},
		}, &skeleton)

		callTool(t, server, "skeleton_save", map[string]interface{}{
			"name":     "tiger-hero",
			"skeleton": skeleton,
		}, nil)

		var fetched map[string]interface{}
		callTool(t, server, "skeleton_get", map[string]interface{}{
			"name": "tiger-hero",
		}, &fetched)
		if fetched["name"] != "tiger-hero" {
			t.Errorf("Fetched wrong entry: %v", fetched["name"])
		}

		var listed map[string]interface{}
		callTool(t, server, "skeleton_list", map[string]interface{}{
			"pattern": "tiger-*",
		}, &listed)

		callTool(t, server, "skeleton_delete", map[string]interface{}{
			"name": "tiger-hero",
		}, nil)

		resp := server.HandleRequest(&mcp.Request{
			JSONRPC: "2.0",
			ID:      9,
			Method:  "tools/call",
			Params: map[string]interface{}{
				"name":      "skeleton_get",
				"arguments": map[string]interface{}{"name": "tiger-hero"},
			},
		})
		if resp.Error == nil {
			t.Error("Expected error fetching deleted skeleton")
		}
	})

	t.Run("UnknownMethod", func(t *testing.T) {
		resp := server.HandleRequest(&mcp.Request{
			JSONRPC: "2.0",
			ID:      3,
			Method:  "does/not/exist",
		})
		if resp.Error == nil || resp.Error.Code != -32601 {
			t.Errorf("Expected -32601, got %v", resp.Error)
		}
	})

	t.Run("UnknownTool", func(t *testing.T) {
		resp := server.HandleRequest(&mcp.Request{
			JSONRPC: "2.0",
			ID:      4,
			Method:  "tools/call",
			Params: map[string]interface{}{
				"name":      "no_such_tool",
				"arguments": map[string]interface{}{},
			},
		})
		if resp.Error == nil || resp.Error.Code != -32601 {
			t.Errorf("Expected -32601 for unknown tool, got %v", resp.Error)
		}
	})
}
