package analysis

// Category is one of the four fixed section labels of a parsed analysis
type Category string

const (
	CategoryStrengths     Category = "Strengths"
	CategoryWeaknesses    Category = "Weaknesses"
	CategoryOpportunities Category = "Opportunities"
	CategoryThreats       Category = "Threats"
)

// Categories lists the four labels in their fixed presentation order
var Categories = []Category{
	CategoryStrengths,
	CategoryWeaknesses,
	CategoryOpportunities,
	CategoryThreats,
}

// Record is the parsed analysis result. The label set is closed, so the
// mapping is a fixed struct rather than a dynamic map. Item order is the
// order of appearance in the raw response; a missing section is an empty
// slice, not an error.
type Record struct {
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Opportunities []string `json:"opportunities"`
	Threats       []string `json:"threats"`
}

// Items returns the item list for a category
func (r Record) Items(c Category) []string {
	switch c {
	case CategoryStrengths:
		return r.Strengths
	case CategoryWeaknesses:
		return r.Weaknesses
	case CategoryOpportunities:
		return r.Opportunities
	case CategoryThreats:
		return r.Threats
	}
	return nil
}

// IsEmpty reports whether every category is empty. An all-empty record
// is invalid and never leaves the parser.
func (r Record) IsEmpty() bool {
	for _, c := range Categories {
		if len(r.Items(c)) > 0 {
			return false
		}
	}
	return true
}

// ItemCount returns the total number of items across all categories
func (r Record) ItemCount() int {
	n := 0
	for _, c := range Categories {
		n += len(r.Items(c))
	}
	return n
}

func (r *Record) setItems(c Category, items []string) {
	switch c {
	case CategoryStrengths:
		r.Strengths = items
	case CategoryWeaknesses:
		r.Weaknesses = items
	case CategoryOpportunities:
		r.Opportunities = items
	case CategoryThreats:
		r.Threats = items
	}
}
