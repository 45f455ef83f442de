package dataset

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/jonathan/salary-predictor/internal/types"
)

// Options lists the categories a caller can choose from. Map-backed categories
// are sorted; regions keep the dataset order.
func Options(ds *types.Dataset) *types.Options {
	if ds == nil {
		return &types.Options{}
	}
	return &types.Options{
		MajorGroups: slices.Sorted(maps.Keys(ds.MajorGroups)),
		Regions:     slices.Clone(ds.Regions),
		SchoolTiers: slices.Sorted(maps.Keys(ds.SchoolTierMultipliers)),
		Internships: sortInternships(slices.Collect(maps.Keys(ds.InternshipMultipliers))),
		Skills:      slices.Sorted(maps.Keys(ds.Skills)),
	}
}

// sortInternships orders numeric counts numerically ("10" after "9") and puts
// any non-numeric keys after them in lexical order.
func sortInternships(keys []string) []string {
	slices.SortFunc(keys, func(a, b string) int {
		na, errA := strconv.Atoi(a)
		nb, errB := strconv.Atoi(b)
		switch {
		case errA == nil && errB == nil:
			return na - nb
		case errA == nil:
			return -1
		case errB == nil:
			return 1
		default:
			return strings.Compare(a, b)
		}
	})
	return keys
}
