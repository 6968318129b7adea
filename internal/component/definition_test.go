package component

import (
	"bytes"
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/stylekit/internal/variant"
	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func chipDefinition() *Definition {
	return Define("", "span", variant.MustTable(variant.Definition{
		Name: "chip",
		Base: "chip",
		Axes: []variant.Axis{variant.NewAxis("tone", "plain", variant.Opt("plain", "chip-plain"), variant.Opt("loud", "chip-loud"))},
	}))
}

func TestDefineUsesTableName(t *testing.T) {
	t.Parallel()

	def := chipDefinition()
	assert.Equal(t, "chip", def.Name)
	assert.Equal(t, "span", def.Element)
}

func TestDefinitionClasses(t *testing.T) {
	t.Parallel()

	classes, err := chipDefinition().Classes(variant.Selection{"tone": "loud"}, "ml-2")
	require.NoError(t, err)
	assert.Equal(t, "chip chip-loud ml-2", classes)
}

func TestRenderWritesElementAttributesAndChildren(t *testing.T) {
	t.Parallel()

	c, err := chipDefinition().Render(Props{
		Selection: variant.Selection{"tone": "loud"},
		Class:     "ml-2",
		Attrs:     templ.Attributes{"title": `say "hi"`, "hidden": true, "disabled": false, "data-x": nil, "class": "ignored"},
	}, Text("a < b"))
	require.NoError(t, err)

	assert.Equal(t, `<span class="chip chip-loud ml-2" hidden title="say &#34;hi&#34;">a &lt; b</span>`, render(t, c))
}

func TestRenderPrintsNonStringAttributes(t *testing.T) {
	t.Parallel()

	c, err := chipDefinition().Render(Props{Attrs: templ.Attributes{"aria-valuenow": 25, "data-ratio": 12.5, "role": "status"}})
	require.NoError(t, err)

	assert.Equal(t, `<span class="chip chip-plain" aria-valuenow="25" data-ratio="12.5" role="status"></span>`, render(t, c))
}

func TestRenderVoidElementHasNoChildren(t *testing.T) {
	t.Parallel()

	def := Define("rule", "hr", SeparatorTable)
	c, err := def.Render(Props{}, Text("ignored"))
	require.NoError(t, err)
	assert.Equal(t, `<hr class="shrink-0 bg-border h-[1px] w-full">`, render(t, c))
}

func TestRenderFailsBeforeWriting(t *testing.T) {
	t.Parallel()

	c, err := chipDefinition().Render(Props{Selection: variant.Selection{"tone": "quiet"}})
	require.ErrorIs(t, err, stylekiterrors.ErrUnknownOption)
	assert.Nil(t, c)
}

func TestBuiltinButtonResolvesDefaultsAndOverrides(t *testing.T) {
	t.Parallel()

	lib := Builtin(nil)

	classes, err := lib.Resolve("button", nil, "")
	require.NoError(t, err)
	assert.Contains(t, classes, "bg-primary text-primary-foreground")
	assert.Contains(t, classes, "h-9 px-4 py-2")

	classes, err = lib.Resolve("button", variant.Selection{"variant": "ghost", "size": "icon"}, "w-full")
	require.NoError(t, err)
	assert.NotContains(t, classes, "bg-primary ")
	assert.Contains(t, classes, "h-9 w-9 w-full")

	_, err = lib.Resolve("button", variant.Selection{"tone": "loud"}, "")
	require.ErrorIs(t, err, stylekiterrors.ErrUnknownAxis)
}

func TestDialogContentMergesConflicts(t *testing.T) {
	t.Parallel()

	classes, err := DialogContentTable.ResolveString(variant.Selection{"size": "full"}, "max-w-xl p-2")
	require.NoError(t, err)
	assert.NotContains(t, classes, "max-w-none")
	assert.NotContains(t, classes, "p-6")
	assert.Contains(t, classes, "max-w-xl p-2")
}
