package databind

import (
	"testing"

	"github.com/npillmayer/rui/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelVariables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rui.databind")
	defer teardown()
	//
	model := NewModel("m")
	model.Bind("b", 2)
	model.Bind(" a ", "x")
	assert.Equal(t, []string{"a", "b"}, model.Variables())
	assert.True(t, model.IsDirty("a"))
	assert.Equal(t, 0, model.Update(), "no views")
	assert.False(t, model.IsDirty("a"))
	require.NoError(t, model.Set("a", "y"))
	assert.Equal(t, "y", model.GetString("a"))
	err := model.Set("c", 1)
	require.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestTruthy(t *testing.T) {
	for _, v := range []interface{}{true, "yes", 1, 0.5, []int{1}} {
		assert.True(t, truthy(v), "%v", v)
	}
	for _, v := range []interface{}{nil, false, "", "false", "0", 0, 0.0, []string{}} {
		assert.False(t, truthy(v), "%v", v)
	}
}

func TestModelUpdate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rui.databind")
	defer teardown()
	//
	model := NewModel("m")
	model.Bind("title", "A")
	model.Bind("visible", true)
	model.Bind("color", "red")
	body := parse(t, `<p data-attr-title="title" data-if="visible" data-style-color="color">text</p>`, model)
	p := first(t, body, "p")
	assert.True(t, ApplyDataViewsControllers(p))
	assert.Len(t, model.Views(), 3)
	model.Update()
	assert.Equal(t, "red", p.ComputedValues().GetPropertyValue("color").String())
	//
	require.NoError(t, model.Set("title", "B"))
	require.NoError(t, model.Set("visible", false))
	assert.Equal(t, 2, model.Update())
	title, _ := p.GetAttribute("title")
	assert.Equal(t, "B", title)
	assert.Equal(t, "none", p.ComputedValues().Display.String())
	assert.Equal(t, "red", p.ComputedValues().GetPropertyValue("color").String())
	require.NoError(t, model.Set("visible", "yes"))
	model.Update()
	assert.Equal(t, "block", p.ComputedValues().Display.String())
}

func TestValueController(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rui.databind")
	defer teardown()
	//
	model := NewModel("m")
	model.Bind("name", "x")
	body := parse(t, `<input data-value="name">`, model)
	input := first(t, body, "input")
	assert.True(t, ApplyDataViewsControllers(input))
	assert.Len(t, model.Views(), 1)
	assert.Len(t, model.Controllers(), 1)
	value, _ := input.GetAttribute("value")
	assert.Equal(t, "x", value)
	model.Update()
	assert.False(t, model.ElementChanged(input), "value unchanged")
	input.SetAttribute("value", "y")
	assert.True(t, model.ElementChanged(input))
	assert.Equal(t, "y", model.GetString("name"))
	assert.True(t, model.IsDirty("name"))
}

func TestForViewRegenerates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rui.databind")
	defer teardown()
	//
	model := NewModel("m")
	model.Bind("items", []string{"a", "b", "c"})
	model.Bind("sel", false)
	body := parse(t, `<ul data-for="items"><li data-class-sel="sel">{{it}}</li></ul>`, model)
	BindTree(body)
	ul := first(t, body, "ul")
	assert.Equal(t, 3, ul.NumChildren())
	assert.Len(t, model.Views(), 4)
	model.Update()
	//
	require.NoError(t, model.Set("items", []string{"d", "e"}))
	model.Update()
	require.Equal(t, 2, ul.NumChildren())
	assert.Equal(t, "e", ul.Child(1).InnerMarkup())
	assert.Len(t, model.Views(), 3, "views of removed items are released")
	//
	require.NoError(t, model.Set("items", 4))
	model.Update()
	assert.Equal(t, 4, ul.NumChildren())
	assert.Equal(t, "3", ul.Child(3).InnerMarkup())
	require.NoError(t, model.Set("items", "not a list"))
	assert.Equal(t, 0, model.Update())
}
