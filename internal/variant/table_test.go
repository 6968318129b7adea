package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

func TestNewTableRejectsDefaultOutsideOptions(t *testing.T) {
	t.Parallel()

	_, err := NewTable(Definition{
		Name: "broken",
		Axes: []Axis{NewAxis("axisX", "x", Opt("y", "b"))},
	})

	require.ErrorIs(t, err, stylekiterrors.ErrInvalidVariantTable)
	assert.Contains(t, err.Error(), `default option "x" is not one of [y]`)
	assert.Contains(t, err.Error(), "axes[0].default")
}

func TestNewTableReportsEveryViolation(t *testing.T) {
	t.Parallel()

	_, err := NewTable(Definition{
		Name: "button",
		Axes: []Axis{
			NewAxis("size", "md", Opt("sm", "h-8"), Opt("md", "h-10")),
			NewAxis("size", "sm", Opt("sm", "h-8")),
			NewAxis("color", "red"),
			NewAxis("tone", "a", Opt("a", "x"), Opt("a", "y")),
			NewAxis("9lives", "a", Opt("a", "x")),
		},
	})
	require.Error(t, err)

	var tableErr *stylekiterrors.InvalidVariantTableError
	require.ErrorAs(t, err, &tableErr)
	assert.Equal(t, "button", tableErr.Table)
	require.Len(t, tableErr.Violations, 4)

	fields := make([]string, 0, len(tableErr.Violations))
	for _, v := range tableErr.Violations {
		var ve *stylekiterrors.ValidationError
		require.ErrorAs(t, v, &ve)
		fields = append(fields, ve.Field)
	}
	assert.ElementsMatch(t, []string{
		"axes[2].options",
		"axes[4].id",
		"axes[1].id",
		"axes[3].options[1].key",
	}, fields)
	assert.Contains(t, err.Error(), "option set is empty")
	assert.Contains(t, err.Error(), `duplicate axis id "size"`)
	assert.Contains(t, err.Error(), `duplicate option key "a"`)
}

func TestNewTableAllowsBaseOnly(t *testing.T) {
	t.Parallel()

	table, err := NewTable(Definition{Name: "separator", Base: "shrink-0 bg-border"})
	require.NoError(t, err)

	out, err := table.ResolveString(nil, "")
	require.NoError(t, err)
	assert.Equal(t, "shrink-0 bg-border", out)
}

func TestMustTablePanicsOnInvalidDefinition(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		MustTable(Definition{Axes: []Axis{NewAxis("", "a", Opt("a", "x"))}})
	})
}

func TestTableIsIsolatedFromDefinition(t *testing.T) {
	t.Parallel()

	axes := []Axis{NewAxis("size", "sm", Opt("sm", "h-8"), Opt("lg", "h-12"))}
	table := MustTable(Definition{Name: "box", Axes: axes})

	axes[0].Options[0].Classes[0] = "mutated"
	copied := table.Axes()
	copied[0].Options[0].Classes[0] = "also-mutated"

	out, err := table.ResolveString(nil, "")
	require.NoError(t, err)
	assert.Equal(t, "h-8", out)
}

func TestTableAccessors(t *testing.T) {
	t.Parallel()

	table := MustTable(Definition{
		Name: "badge",
		Base: "inline-flex",
		Axes: []Axis{
			NewAxis("variant", "default", Opt("default", "bg-primary"), Opt("outline", "border")),
			NewAxis("size", "md", Opt("sm", "text-xs"), Opt("md", "text-sm")),
		},
	})

	assert.Equal(t, "badge", table.Name())
	assert.Equal(t, []string{"inline-flex"}, table.Base())
	assert.Equal(t, Selection{"variant": "default", "size": "md"}, table.Defaults())
	assert.False(t, table.Merging())

	axis, ok := table.Axis("size")
	require.True(t, ok)
	assert.Equal(t, []string{"sm", "md"}, axis.Keys())
	assert.Equal(t, "sm", axis.Next("md"))
	assert.Equal(t, "md", axis.Prev("sm"))
	assert.Equal(t, "sm", axis.Next("unknown"))

	_, ok = table.Axis("missing")
	assert.False(t, ok)
}
