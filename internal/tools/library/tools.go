package library

import (
	libstore "github.com/peralt/cerealstyle-mcp/internal/library"
	"github.com/peralt/cerealstyle-mcp/internal/tools"
)

func GetTools(dbPath string) ([]tools.Tool, error) {
	store, err := libstore.NewStore(dbPath)
	if err != nil {
		return nil, err
	}
	return GetToolsFromStore(store), nil
}

func GetToolsFromStore(store *libstore.Store) []tools.Tool {
	return []tools.Tool{
		NewSaveTool(store),
		NewGetTool(store),
		NewListTool(store),
		NewDeleteTool(store),
	}
}
