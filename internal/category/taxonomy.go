package category

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed taxonomy.json
var defaultTaxonomy []byte

// Taxonomy is the ordered three-level category tree.
type Taxonomy struct {
	Groups []Group
}

type Group struct {
	Name      string
	Subgroups []Subgroup
}

type Subgroup struct {
	Name   string
	Leaves []string
}

// DefaultTaxonomy returns the built-in category tree.
func DefaultTaxonomy() (*Taxonomy, error) {
	return ParseTaxonomy(defaultTaxonomy)
}

// LoadTaxonomy reads a taxonomy file. An empty path yields the default tree.
func LoadTaxonomy(path string) (*Taxonomy, error) {
	if path == "" {
		return DefaultTaxonomy()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy %s: %w", path, err)
	}

	return ParseTaxonomy(data)
}

// ParseTaxonomy decodes a JSON or YAML mapping of
// level1 -> level2 -> [level3], keeping source order at every level.
func ParseTaxonomy(data []byte) (*Taxonomy, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode taxonomy: %w", err)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("decode taxonomy: empty document")
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("decode taxonomy: line %d: expected a mapping", root.Line)
	}

	tax := &Taxonomy{}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if value.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("decode taxonomy: line %d: %q must map to subgroups", value.Line, key.Value)
		}

		group := Group{Name: key.Value}

		for j := 0; j+1 < len(value.Content); j += 2 {
			subKey, subValue := value.Content[j], value.Content[j+1]

			var leaves []string
			if err := subValue.Decode(&leaves); err != nil {
				return nil, fmt.Errorf("decode taxonomy: line %d: %s/%s: %w", subValue.Line, key.Value, subKey.Value, err)
			}

			group.Subgroups = append(group.Subgroups, Subgroup{Name: subKey.Value, Leaves: leaves})
		}

		tax.Groups = append(tax.Groups, group)
	}

	return tax, nil
}

// Flatten enumerates the leaves depth-first in source order with ids from 0.
func (t *Taxonomy) Flatten() []Category {
	var cats []Category

	for _, g := range t.Groups {
		for _, sg := range g.Subgroups {
			for _, leaf := range sg.Leaves {
				cats = append(cats, Category{
					ID:     len(cats),
					Level1: g.Name,
					Level2: sg.Name,
					Level3: leaf,
				})
			}
		}
	}

	return cats
}
