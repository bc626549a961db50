package domain

import "sort"

// Count is one bucket of a Summary breakdown
type Count struct {
	Label string
	Value int
}

// Summary aggregates the asset store for reporting
type Summary struct {
	Total      int
	ByCategory map[string]int
	ByStatus   map[string]int
	ByLocation map[string]int
	ByAssignee map[string]int
}

// Summarize counts assets per category, status, location and assignee
func Summarize(assets []Asset) Summary {
	s := Summary{
		Total:      len(assets),
		ByCategory: make(map[string]int),
		ByStatus:   make(map[string]int),
		ByLocation: make(map[string]int),
		ByAssignee: make(map[string]int),
	}
	for _, a := range assets {
		s.ByCategory[labelOrBlank(a.Category)]++
		s.ByStatus[labelOrBlank(a.Status)]++
		s.ByLocation[labelOrBlank(a.Location)]++
		s.ByAssignee[labelOrBlank(a.Assignee)]++
	}
	return s
}

// Sorted returns buckets by descending count, ties broken alphabetically
func Sorted(counts map[string]int) []Count {
	out := make([]Count, 0, len(counts))
	for label, v := range counts {
		out = append(out, Count{Label: label, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Label < out[j].Label
	})
	return out
}

func labelOrBlank(s string) string {
	if s == "" {
		return "(BLANK)"
	}
	return s
}
