package render

import "fmt"

// Category identifies one of the five render kinds. The set is closed:
// renderer types are open for extension, categories are not, so dispatch
// over Category can be exhaustive.
type Category uint8

const (
	CategoryView Category = iota
	CategoryGroup
	CategoryField
	CategoryData
	CategoryAction

	categoryCount
)

var categoryNames = [categoryCount]string{
	CategoryView:   "view",
	CategoryGroup:  "group",
	CategoryField:  "field",
	CategoryData:   "data",
	CategoryAction: "action",
}

// String returns the lowercase category name.
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("category(%d)", uint8(c))
	}
	return categoryNames[c]
}

// Valid reports whether c is one of the five known categories.
func (c Category) Valid() bool {
	return c < categoryCount
}

// ParseCategory resolves a category name. It accepts exactly the five
// lowercase names String produces.
func ParseCategory(name string) (Category, error) {
	for c, known := range categoryNames {
		if known == name {
			return Category(c), nil
		}
	}
	return categoryCount, fmt.Errorf("render: unknown category %q", name)
}

// Categories lists every category in declaration order.
func Categories() []Category {
	out := make([]Category, categoryCount)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}
