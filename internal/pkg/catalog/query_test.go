package catalog

import (
	"reflect"
	"testing"
)

func sample() []Video {
	return []Video{
		{ID: "a", Title: "Go para iniciantes", Category: "Programação", Duration: "10:30", Views: "6.9K", UploadDate: "2024-12-01", Tags: []string{"Go", "Backend"}},
		{ID: "b", Title: "Edição de vídeo no DaVinci", Category: "Edição", Duration: "25:10", Views: "18.2K", UploadDate: "2024-12-10", Tags: []string{"DaVinci"}},
		{ID: "c", Title: "Fotografia noturna", Category: "Fotografia", Duration: "25:45", Views: "9.3K", UploadDate: "2024-12-05", Tags: []string{"Câmera"}},
	}
}

func ids(vs []Video) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.ID
	}
	return out
}

func TestQuery_SortByViews(t *testing.T) {
	t.Parallel()

	got := Query(sample(), "", CategoryAll, SortViews)

	want := []string{"b", "c", "a"} // 18.2K, 9.3K, 6.9K
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("view sort order = %v, want %v", ids(got), want)
	}
}

func TestQuery_SortByRecent(t *testing.T) {
	t.Parallel()

	got := Query(sample(), "", CategoryAll, SortRecent)

	want := []string{"b", "c", "a"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("recent sort order = %v, want %v", ids(got), want)
	}
}

func TestQuery_SortByDuration_MinutesOnlyKeepsTiesStable(t *testing.T) {
	t.Parallel()

	// b (25:10) and c (25:45) tie on the minutes component, so they keep
	// their input order.
	got := Query(sample(), "", CategoryAll, SortDuration)

	want := []string{"b", "c", "a"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("duration sort order = %v, want %v", ids(got), want)
	}
}

func TestQuery_UnknownSortKeepsInputOrder(t *testing.T) {
	t.Parallel()

	got := Query(sample(), "", CategoryAll, "whatever")

	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("order = %v, want input order %v", ids(got), want)
	}
}

func TestQuery_CategoryFilter(t *testing.T) {
	t.Parallel()

	got := Query(sample(), "", "Fotografia", "")
	if len(got) != 1 || got[0].ID != "c" {
		t.Fatalf("expected only video c, got %v", ids(got))
	}

	if n := len(Query(sample(), "", CategoryAll, "")); n != 3 {
		t.Fatalf("category %q should disable filtering, got %d results", CategoryAll, n)
	}
}

func TestQuery_SearchMatchesTitleAndTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		term string
		want []string
	}{
		{term: "go", want: []string{"a"}},          // title, case-insensitive
		{term: "davinci", want: []string{"b"}},     // tag
		{term: "CÂMERA", want: []string{"c"}},      // tag, unicode upper
		{term: "nada disso", want: []string{}},     // no match
		{term: "", want: []string{"a", "b", "c"}},  // empty term matches all
	}

	for _, tt := range tests {
		got := ids(Query(sample(), tt.term, CategoryAll, ""))
		if !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("Query(term=%q) = %v, want %v", tt.term, got, tt.want)
		}
	}
}

func TestQuery_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	in := sample()
	Query(in, "", CategoryAll, SortViews)

	if !reflect.DeepEqual(ids(in), []string{"a", "b", "c"}) {
		t.Fatalf("input slice was reordered: %v", ids(in))
	}
}

func TestQuery_FilterIsSubsetRegardlessOfSort(t *testing.T) {
	t.Parallel()

	all := All()
	for _, sortKey := range []string{SortRecent, SortViews, SortDuration, ""} {
		got := Query(all, "", "Programação", sortKey)
		for _, v := range got {
			if v.Category != "Programação" {
				t.Fatalf("sort %q leaked category %q into filtered results", sortKey, v.Category)
			}
		}
	}
}

func TestFixture(t *testing.T) {
	t.Parallel()

	all := All()
	if len(all) != 9 {
		t.Fatalf("expected 9 fixture videos, got %d", len(all))
	}

	featured := Featured()
	if !featured.IsFeatured {
		t.Fatalf("Featured() returned a non-featured video: %+v", featured)
	}

	cats := Categories()
	if len(cats) == 0 || cats[0] != CategoryAll {
		t.Fatalf("Categories() must start with %q, got %v", CategoryAll, cats)
	}
	seen := make(map[string]struct{})
	for _, c := range cats {
		if _, dup := seen[c]; dup {
			t.Fatalf("duplicate category %q", c)
		}
		seen[c] = struct{}{}
	}
}

func TestParseViews(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want float64
	}{
		{in: "12.5K", want: 12.5},
		{in: "980", want: 980},
		{in: "garbage", want: 0},
	}

	for _, tt := range tests {
		if got := parseViews(tt.in); got != tt.want {
			t.Fatalf("parseViews(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
