package sidebar

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	ferrors "github.com/kbchulan/clblogs/internal/foundation/errors"
	"github.com/kbchulan/clblogs/internal/page"
)

// SortKey names one ordering criterion of the sidebar sorter.
type SortKey string

const (
	SortReadme   SortKey = "readme"
	SortOrder    SortKey = "order"
	SortDate     SortKey = "date"
	SortDateDesc SortKey = "date-desc"
	SortTitle    SortKey = "title"
	SortFilename SortKey = "filename"
)

// Sorter applies its keys left to right; ties fall through to the next key
// and finally to the route.
type Sorter []SortKey

// ParseSorter validates a list of sorter key names.
func ParseSorter(keys []string) (Sorter, error) {
	out := make(Sorter, 0, len(keys))
	for _, k := range keys {
		key := SortKey(strings.ToLower(strings.TrimSpace(k)))
		switch key {
		case SortReadme, SortOrder, SortDate, SortDateDesc, SortTitle, SortFilename:
			out = append(out, key)
		default:
			return nil, ferrors.ValidationError(fmt.Sprintf("unknown sidebar sorter key %q", k)).
				WithContext("key", k).Build()
		}
	}
	return out, nil
}

// Entry is what the sorter compares: a page (or the README standing in for
// a directory) plus its display title and file name.
type Entry struct {
	Page  page.Page
	Title string
	Name  string
}

// Compare orders two entries.
func (s Sorter) Compare(a, b Entry) int {
	for _, key := range s {
		var c int
		switch key {
		case SortReadme:
			c = cmp.Compare(readmeRank(a), readmeRank(b))
		case SortOrder:
			c = compareOrder(a.Page, b.Page)
		case SortDate:
			c = compareDate(a.Page, b.Page, false)
		case SortDateDesc:
			c = compareDate(a.Page, b.Page, true)
		case SortTitle:
			c = strings.Compare(a.Title, b.Title)
		case SortFilename:
			c = strings.Compare(a.Name, b.Name)
		}
		if c != 0 {
			return c
		}
	}
	return cmp.Or(strings.Compare(a.Page.Route, b.Page.Route), strings.Compare(a.Name, b.Name))
}

// Sort orders entries in place.
func (s Sorter) Sort(entries []Entry) {
	slices.SortStableFunc(entries, s.Compare)
}

// readmeRank puts README files ahead of everything else.
func readmeRank(e Entry) int {
	if strings.EqualFold(e.Name, "README.md") {
		return 0
	}
	return 1
}

// orderRank places non-negative orders first, unordered pages next and
// negative orders last, so that order -1 is always the final item.
func orderRank(p page.Page) (bucket, value int) {
	n, ok := p.Int("order")
	switch {
	case !ok:
		return 1, 0
	case n >= 0:
		return 0, n
	default:
		return 2, n
	}
}

func compareOrder(a, b page.Page) int {
	ab, av := orderRank(a)
	bb, bv := orderRank(b)
	return cmp.Or(cmp.Compare(ab, bb), cmp.Compare(av, bv))
}

func compareDate(a, b page.Page, desc bool) int {
	az, bz := a.Date.IsZero(), b.Date.IsZero()
	switch {
	case az && bz:
		return 0
	case az:
		return 1
	case bz:
		return -1
	}
	c := a.Date.Compare(b.Date)
	if desc {
		return -c
	}
	return c
}
