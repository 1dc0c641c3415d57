package catalog

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Sort keys accepted by Query. Anything else keeps the input order.
const (
	SortRecent   = "recentes"
	SortViews    = "visualizacoes"
	SortDuration = "duracao"
)

// CategoryAll disables category filtering.
const CategoryAll = "Todos"

// Query filters and orders the given videos. It is pure: the input slice is
// never modified and equal inputs always produce the same ordering, with ties
// kept in input order (there is no secondary sort key).
//
// A record passes the filter when its category matches (or category is
// "Todos") and the search term is empty or a case-insensitive substring of
// the title or of any tag.
func Query(all []Video, term, category, sortKey string) []Video {
	needle := strings.ToLower(term)

	filtered := make([]Video, 0, len(all))
	for _, v := range all {
		if category != CategoryAll && category != "" && v.Category != category {
			continue
		}
		if needle != "" && !matchesTerm(v, needle) {
			continue
		}
		filtered = append(filtered, v)
	}

	switch sortKey {
	case SortRecent:
		sort.SliceStable(filtered, func(i, j int) bool {
			return parseUploadDate(filtered[i].UploadDate).After(parseUploadDate(filtered[j].UploadDate))
		})
	case SortViews:
		sort.SliceStable(filtered, func(i, j int) bool {
			return parseViews(filtered[i].Views) > parseViews(filtered[j].Views)
		})
	case SortDuration:
		sort.SliceStable(filtered, func(i, j int) bool {
			return durationMinutes(filtered[i].Duration) > durationMinutes(filtered[j].Duration)
		})
	}

	return filtered
}

func matchesTerm(v Video, needle string) bool {
	if strings.Contains(strings.ToLower(v.Title), needle) {
		return true
	}
	for _, tag := range v.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func parseUploadDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// parseViews strips the trailing "K" and parses the rest as a float. The
// fixture only ever uses "K"; a record using "M" would be mis-ranked, a
// fragility inherited from the source data representation.
func parseViews(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSuffix(s, "K"), 64)
	if err != nil {
		return 0
	}
	return f
}

// durationMinutes orders by the minutes portion of "mm:ss" only; seconds do
// not break ties.
func durationMinutes(s string) int {
	mm, _, _ := strings.Cut(s, ":")
	n, err := strconv.Atoi(mm)
	if err != nil {
		return 0
	}
	return n
}
