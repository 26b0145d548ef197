package assessment

// Category is a risk label with its recommendations.
type Category struct {
	Name            string
	Recommendations []string
}

// Categorize maps a score onto the table's bands. Upper bounds are inclusive;
// anything above the last bound (NaN included) lands in the open band.
func (t *Table) Categorize(score float64) Category {
	for _, b := range t.Bands {
		if b.Max == nil || score <= *b.Max {
			return newCategory(b)
		}
	}
	return newCategory(t.Bands[len(t.Bands)-1])
}

// Categories lists every category in ascending severity.
func (t *Table) Categories() []string {
	names := make([]string, 0, len(t.Bands))
	for _, b := range t.Bands {
		names = append(names, b.Category)
	}
	return names
}

func newCategory(b Band) Category {
	recs := make([]string, len(b.Recommendations))
	copy(recs, b.Recommendations)
	return Category{Name: b.Category, Recommendations: recs}
}
