package types

import "github.com/m-mizutani/goerr/v2"

// Category classifies the subject matter of a report
type Category string

const (
	CategoryFinancial Category = "Financial"
	CategoryHR        Category = "HR"
	CategorySafety    Category = "Safety"
	CategoryOther     Category = "Other"
)

// AllCategories returns all valid categories
func AllCategories() []Category {
	return []Category{
		CategoryFinancial,
		CategoryHR,
		CategorySafety,
		CategoryOther,
	}
}

// IsValid checks if the category is valid
func (c Category) IsValid() bool {
	switch c {
	case CategoryFinancial, CategoryHR, CategorySafety, CategoryOther:
		return true
	default:
		return false
	}
}

// String returns the string representation of the category
func (c Category) String() string {
	return string(c)
}

// ParseCategory parses a string into a Category
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", goerr.New("invalid category", goerr.V("category", s))
	}
	return c, nil
}
