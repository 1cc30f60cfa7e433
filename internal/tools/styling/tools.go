package styling

import (
	"github.com/peralt/cerealstyle-mcp/internal/tools"
)

func GetTools() []tools.Tool {
	return []tools.Tool{
		&ParsePromptTool{},
		&ListCategoriesTool{},
		&SuggestCategoryTool{},
		&CategoryRulesTool{},
		&ApplyTransformationsTool{},
		&BuildSkeletonTool{},
		&RefineComponentTool{},
		&GenerateVariantsTool{},
	}
}

func GetToolByName(name string) tools.Tool {
	for _, tool := range GetTools() {
		if tool.Name() == name {
			return tool
		}
	}
	return nil
}
