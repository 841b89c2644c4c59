package category

// Category is one leaf of the taxonomy together with its ancestors.
type Category struct {
	ID     int    `json:"id"`
	Level1 string `json:"category_1"`
	Level2 string `json:"category_2"`
	Level3 string `json:"category_3"`
}

// Level1Options returns the distinct first levels in catalog order.
func Level1Options(cats []Category) []string {
	return distinct(cats, func(c Category) (string, bool) {
		return c.Level1, true
	})
}

// Level2Options returns the distinct second levels below level1 in catalog order.
func Level2Options(cats []Category, level1 string) []string {
	return distinct(cats, func(c Category) (string, bool) {
		return c.Level2, c.Level1 == level1
	})
}

// Level3Options returns the leaves below level1/level2 in catalog order.
func Level3Options(cats []Category, level1, level2 string) []Category {
	var out []Category

	for _, c := range cats {
		if c.Level1 == level1 && c.Level2 == level2 {
			out = append(out, c)
		}
	}

	return out
}

func distinct(cats []Category, pick func(Category) (string, bool)) []string {
	seen := make(map[string]struct{})

	var out []string

	for _, c := range cats {
		v, ok := pick(c)
		if !ok {
			continue
		}

		if _, dup := seen[v]; dup {
			continue
		}

		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}
