package styling

import (
	"encoding/json"

	"github.com/peralt/cerealstyle-mcp/internal/style"
	"github.com/peralt/cerealstyle-mcp/internal/tools"
)

type CategorySummary struct {
	Name        style.Category `json:"name"`
	Description string         `json:"description"`
	VisualDNA   []string       `json:"visual_dna"`
}

type ListCategoriesResponse struct {
	Categories []CategorySummary `json:"categories"`
}

type ListCategoriesTool struct{}

func (t *ListCategoriesTool) Name() string {
	return "get_available_categories"
}

func (t *ListCategoriesTool) Description() string {
	return "List the seven packaging-design categories in canonical priority order, with descriptions and visual DNA"
}

func (t *ListCategoriesTool) Title() string {
	return "List Categories"
}

func (t *ListCategoriesTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *ListCategoriesTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {},
		"required": []
	}`)
}

func (t *ListCategoriesTool) Execute(input json.RawMessage) (interface{}, error) {
	categories := style.Categories()
	summaries := make([]CategorySummary, 0, len(categories))
	for _, cat := range categories {
		set, err := style.RulesFor(cat)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, CategorySummary{
			Name:        cat,
			Description: set.Description,
			VisualDNA:   set.VisualDNA,
		})
	}
	return ListCategoriesResponse{Categories: summaries}, nil
}
