package resolve

import (
	"slices"
	"strconv"
	"strings"

	"github.com/steviee/go-modlist/internal/catalog"
)

// CompareVersions compares dotted versions segment by segment as integers.
// Missing or non-numeric segments count as 0. It returns -1, 0 or 1.
func CompareVersions(a, b string) int {
	pa := strings.Split(a, ".")
	pb := strings.Split(b, ".")
	for i := 0; i < max(len(pa), len(pb)); i++ {
		va, vb := segment(pa, i), segment(pb, i)
		switch {
		case va < vb:
			return -1
		case va > vb:
			return 1
		}
	}
	return 0
}

func segment(parts []string, i int) int {
	if i >= len(parts) {
		return 0
	}
	n, err := strconv.Atoi(parts[i])
	if err != nil {
		return 0
	}
	return n
}

// SortVersions sorts versions newest first in place. Equal versions keep their order.
func SortVersions(versions []string) {
	slices.SortStableFunc(versions, func(a, b string) int {
		return CompareVersions(b, a)
	})
}

// AvailableVersions returns every game version any file supports, newest first.
func AvailableVersions(files []catalog.File) []string {
	return mergeVersions(func(yield func(string)) {
		for _, f := range files {
			for _, v := range f.GameVersions {
				yield(v)
			}
		}
	})
}

// mergeVersions dedupes the versions produced by each and sorts them.
func mergeVersions(each func(yield func(string))) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	each(func(v string) {
		if v == "" || seen[v] {
			return
		}
		seen[v] = true
		out = append(out, v)
	})
	SortVersions(out)
	return out
}

// UnionVersions merges version lists, deduplicated and sorted newest first.
func UnionVersions(lists ...[]string) []string {
	return mergeVersions(func(yield func(string)) {
		for _, l := range lists {
			for _, v := range l {
				yield(v)
			}
		}
	})
}
