package mcp

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/peralt/cerealstyle-mcp/internal/tools"
	"github.com/peralt/cerealstyle-mcp/internal/tools/styling"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	registry := tools.NewRegistry()
	for _, tool := range styling.GetTools() {
		if err := registry.Register(tool); err != nil {
			t.Fatalf("Failed to register %s: %v", tool.Name(), err)
		}
	}
	return NewServer(registry)
}

func TestInitializeNegotiatesProtocolVersion(t *testing.T) {
	server := testServer(t)

	resp := server.HandleRequest(&Request{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "initialize",
		Params: map[string]interface{}{
			"protocolVersion": "2025-06-18",
			"clientInfo":      map[string]interface{}{"name": "test", "version": "1.0"},
		},
	})
	if resp.Error != nil {
		t.Fatalf("initialize failed: %v", resp.Error)
	}

	result := resp.Result.(map[string]interface{})
	if result["protocolVersion"] != "2025-06-18" {
		t.Errorf("Expected negotiated 2025-06-18, got %v", result["protocolVersion"])
	}
}

func TestInitializeFallsBackOnUnknownVersion(t *testing.T) {
	server := testServer(t)

	resp := server.HandleRequest(&Request{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "initialize",
		Params: map[string]interface{}{
			"protocolVersion": "1999-01-01",
		},
	})
	if resp.Error != nil {
		t.Fatalf("initialize failed: %v", resp.Error)
	}

	result := resp.Result.(map[string]interface{})
	if result["protocolVersion"] == "1999-01-01" {
		t.Error("Server echoed an unsupported protocol version")
	}
}

func TestPing(t *testing.T) {
	server := testServer(t)

	resp := server.HandleRequest(&Request{JSONRPC: "2.0", ID: 1, Method: "ping"})
	if resp.Error != nil {
		t.Fatalf("ping failed: %v", resp.Error)
	}
}

func TestToolsListIncludesAnnotations(t *testing.T) {
	server := testServer(t)

	resp := server.HandleRequest(&Request{JSONRPC: "2.0", ID: 1, Method: "tools/list"})
	if resp.Error != nil {
		t.Fatalf("tools/list failed: %v", resp.Error)
	}

	result := resp.Result.(map[string]interface{})
	toolsData := result["tools"].([]map[string]interface{})
	if len(toolsData) != len(styling.GetTools()) {
		t.Fatalf("Expected %d tools, got %d", len(styling.GetTools()), len(toolsData))
	}
	for _, td := range toolsData {
		if td["title"] == nil {
			t.Errorf("Tool %v missing title", td["name"])
		}
		if td["annotations"] == nil {
			t.Errorf("Tool %v missing annotations", td["name"])
		}
	}
}

func TestCallToolInvalidArguments(t *testing.T) {
	server := testServer(t)

	resp := server.HandleRequest(&Request{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params: map[string]interface{}{
			"arguments": map[string]interface{}{},
		},
	})
	if resp.Error == nil {
		t.Fatal("Expected error for missing tool name")
	}
}

func TestProcessStreamParseError(t *testing.T) {
	server := testServer(t)

	input := strings.NewReader("this is not json\n")
	var output bytes.Buffer

	if err := server.ProcessStream(input, &output); err != nil {
		t.Fatalf("ProcessStream failed: %v", err)
	}

	var resp Response
	if err := json.Unmarshal(output.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != -32700 {
		t.Errorf("Expected -32700 parse error, got %v", resp.Error)
	}
}

func TestProcessStreamRoundTrip(t *testing.T) {
	server := testServer(t)

	req, _ := json.Marshal(Request{
		JSONRPC: "2.0",
		ID:      7,
		Method:  "tools/call",
		Params: map[string]interface{}{
			"name": "parse_prompt",
			"arguments": map[string]interface{}{
				"prompt": "a grumpy wizard stirring a cauldron",
			},
		},
	})

	input := bytes.NewReader(append(req, '\n'))
	var output bytes.Buffer

	if err := server.ProcessStream(input, &output); err != nil {
		t.Fatalf("ProcessStream failed: %v", err)
	}

	var resp Response
	if err := json.Unmarshal(output.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}
	if resp.ID == nil {
		t.Error("Response lost the request ID")
	}
}
