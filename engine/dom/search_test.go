package dom

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var searchDoc = `<body id="root">
<div id="a" class="x"><div id="a1" class="x"><span id="deep" class="x"></span></div></div>
<div id="b"><span id="b1"></span></div>
</body>`

func TestElementByID(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rui.dom")
	defer teardown()
	//
	body, err := ParseString(searchDoc)
	require.NoError(t, err)
	assert.Equal(t, body, ElementByID(body, "root"))
	assert.Equal(t, "deep", ElementByID(body, "deep").ID())
	assert.Nil(t, ElementByID(body, "none"))
}

func TestElementsByTagNameIsBreadthFirst(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rui.dom")
	defer teardown()
	//
	body, err := ParseString(searchDoc)
	require.NoError(t, err)
	spans := ElementsByTagName(body, "span")
	require.Len(t, spans, 2)
	assert.Equal(t, "b1", spans[0].ID()) // depth 2 before depth 3
	assert.Equal(t, "deep", spans[1].ID())
	assert.Empty(t, ElementsByTagName(body, "body"))
}

func TestElementsByClassName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rui.dom")
	defer teardown()
	//
	body, err := ParseString(searchDoc)
	require.NoError(t, err)
	xs := ElementsByClassName(body, "x")
	require.Len(t, xs, 3)
	assert.Equal(t, []string{"a", "a1", "deep"}, []string{xs[0].ID(), xs[1].ID(), xs[2].ID()})
}

func TestQuerySelector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rui.dom")
	defer teardown()
	//
	body, err := ParseString(searchDoc)
	require.NoError(t, err)
	all, err := QuerySelectorAll(body, "div.x > *")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	first, err := QuerySelector(body, "#b span")
	require.NoError(t, err)
	assert.Equal(t, "b1", first.ID())
	ok, err := first.Matches("span")
	require.NoError(t, err)
	assert.True(t, ok)
	_, err = QuerySelector(body, "div[")
	assert.Error(t, err)
}
