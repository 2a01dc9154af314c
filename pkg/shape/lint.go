package shape

import (
	"errors"
	"fmt"
	"slices"
)

const lintMaxDepth = 64

// Lint reports every descriptor entry in s that can never match, keyed by its
// dotted property path. It returns nil for a shape whose entries are all usable.
// Lint is a diagnostic for shape authors; predicates behave the same either way.
func Lint(s Shape) error {
	var errs []error
	lintShape(s, "", 0, &errs)
	return errors.Join(errs...)
}

func lintShape(s Shape, path string, depth int, errs *[]error) {
	if depth > lintMaxDepth {
		*errs = append(*errs, fmt.Errorf("%w: %s", ErrShapeTooDeep, path))
		return
	}

	// Sorted so reports are stable.
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		p := joinPath(path, name)
		d := Classify(s[name])
		if d.Kind != KindAlternatives {
			lintDescriptor(d, s[name], p, depth, errs)
			continue
		}
		if len(d.Alternatives) == 0 {
			*errs = append(*errs, fmt.Errorf("%w: %s", ErrEmptyAlternatives, p))
			continue
		}
		raws, _ := alternatives(s[name])
		for i, alt := range d.Alternatives {
			altPath := fmt.Sprintf("%s[%d]", p, i)
			if alt.Kind == KindAlternatives {
				*errs = append(*errs, fmt.Errorf("%w: %s", ErrNestedAlternatives, altPath))
				continue
			}
			lintDescriptor(alt, raws[i], altPath, depth, errs)
		}
	}
}

func lintDescriptor(d Descriptor, raw any, path string, depth int, errs *[]error) {
	switch d.Kind {
	case KindInvalid:
		*errs = append(*errs, fmt.Errorf("%w: %s: %#v (%T)", ErrInvalidDescriptor, path, raw, raw))
	case KindShape:
		lintShape(d.Shape, path, depth+1, errs)
	}
}
