package plot

import (
	"image"
	"math"

	"github.com/matzehuels/facetplot/pkg/errors"
	"github.com/matzehuels/facetplot/pkg/style"
	"github.com/matzehuels/facetplot/pkg/table"
)

// Kind selects a figure type.
type Kind string

const (
	KindFacet Kind = "facet"
	KindPairs Kind = "pairs"
)

// ParseKind validates a figure kind name.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindFacet, KindPairs:
		return Kind(s), nil
	case "":
		return KindFacet, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "invalid kind %q (must be one of: facet, pairs)", s)
}

// Render draws a figure of the given kind.
func Render(kind Kind, t *table.TidyTable, styles *style.Map, opts Options) (image.Image, error) {
	switch kind {
	case KindFacet, "":
		return Facet(t, styles, opts)
	case KindPairs:
		return Pairs(t, styles, opts)
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "invalid kind %q", kind)
}

// checkInputs verifies that t has categories and that every one of them
// has a style.
func checkInputs(t *table.TidyTable, styles *style.Map) error {
	if t == nil || len(t.Categories) == 0 {
		return errors.New(errors.ErrCodeSchema, "nothing to plot: no measurement columns")
	}
	var missing []string
	for _, cat := range t.Categories {
		if styles == nil {
			missing = append(missing, cat)
			continue
		}
		if _, ok := styles.Color(cat); !ok {
			missing = append(missing, cat)
		}
	}
	if len(missing) > 0 {
		return &errors.MissingStyleError{Categories: missing}
	}
	return nil
}

func ceilDiv(a, b int) int { return int(math.Ceil(float64(a) / float64(b))) }
