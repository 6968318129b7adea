package variant

import (
	"sort"

	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

// Selection maps axis ids to chosen option keys. Absent axes, and axes mapped
// to the empty string, resolve to the axis default.
type Selection map[string]string

// With returns a copy of s with axis set to option.
func (s Selection) With(axis, option string) Selection {
	out := make(Selection, len(s)+1)
	for k, v := range s {
		out[k] = v
	}
	out[axis] = option
	return out
}

// Resolve is shorthand for table.Resolve.
func Resolve(table *Table, sel Selection, override string) (ClassSet, error) {
	return table.Resolve(sel, override)
}

// ResolveString resolves and joins the result into a class attribute value.
func (t *Table) ResolveString(sel Selection, override string) (string, error) {
	classes, err := t.Resolve(sel, override)
	if err != nil {
		return "", err
	}
	return classes.String(), nil
}

// Resolve computes the class set for sel followed by the override tokens.
// Tokens are emitted base first, then per axis in declared order, then
// override; repeated tokens keep their first position.
func (t *Table) Resolve(sel Selection, override string) (ClassSet, error) {
	return t.resolve(sel, override, t.merger)
}

// ResolveMerged resolves like Resolve but merges conflicting tokens with m,
// whatever merger the table was built with. A nil m disables merging.
func (t *Table) ResolveMerged(sel Selection, override string, m *Merger) (ClassSet, error) {
	return t.resolve(sel, override, m)
}

// resolve merges the raw token sequence before dedupe so a repeated override
// token still wins over the earlier conflicting one.
func (t *Table) resolve(sel Selection, override string, m *Merger) (ClassSet, error) {
	if err := t.checkSelection(sel); err != nil {
		return nil, err
	}

	tokens := make([]string, 0, len(t.base)+len(t.axes)*4)
	tokens = append(tokens, t.base...)
	for _, axis := range t.axes {
		key := sel[axis.ID]
		if key == "" {
			key = axis.Default
		}
		opt, _ := axis.Option(key)
		tokens = append(tokens, opt.Classes...)
	}
	tokens = append(tokens, Fields(override)...)

	if m != nil {
		tokens = m.Merge(tokens)
	}
	return dedupe(tokens), nil
}

// checkSelection rejects unknown axes and options. Keys are visited in sorted
// order so the reported error is stable.
func (t *Table) checkSelection(sel Selection) error {
	if len(sel) == 0 {
		return nil
	}

	keys := make([]string, 0, len(sel))
	for k := range sel {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, id := range keys {
		i, ok := t.index[id]
		if !ok {
			return stylekiterrors.NewUnknownAxisError(t.name, id)
		}
		key := sel[id]
		if key == "" {
			continue
		}
		axis := t.axes[i]
		if _, ok := axis.Option(key); !ok {
			return stylekiterrors.NewUnknownOptionError(t.name, id, key, axis.Keys())
		}
	}
	return nil
}
