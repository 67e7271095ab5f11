package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const navFixture = `{
	"data": {
		"children": [
			{"data": {"title": "first", "over_18": false, "score": 42}},
			{"data": {"title": "second"}}
		]
	}
}`

func TestNavWalksObjectsAndArrays(t *testing.T) {
	doc, err := DecodeJSON(navFixture)
	assert.Nil(t, err)

	title, err := NavString(doc, "data", "children", 0, "data", "title")
	assert.Nil(t, err)
	assert.Equal(t, "first", title)

	title, err = NavString(doc, "data", "children", 1, "data", "title")
	assert.Nil(t, err)
	assert.Equal(t, "second", title)

	nsfw, err := NavBool(doc, "data", "children", 0, "data", "over_18")
	assert.Nil(t, err)
	assert.False(t, nsfw)
}

func TestNavMissingKey(t *testing.T) {
	doc, err := DecodeJSON(navFixture)
	assert.Nil(t, err)

	_, err = Nav(doc, "data", "missing", "deeper")
	assert.NotNil(t, err)

	var navErr *NavError
	assert.ErrorAs(t, err, &navErr)
	assert.Equal(t, "data.missing", navErr.Path)
}

func TestNavIndexOutOfRange(t *testing.T) {
	doc, err := DecodeJSON(navFixture)
	assert.Nil(t, err)

	_, err = Nav(doc, "data", "children", 5)
	var navErr *NavError
	assert.ErrorAs(t, err, &navErr)
	assert.Equal(t, "data.children.5", navErr.Path)
}

func TestNavTypeMismatch(t *testing.T) {
	doc, err := DecodeJSON(navFixture)
	assert.Nil(t, err)

	// indexing into an object with an int
	_, err = Nav(doc, "data", 0)
	var navErr *NavError
	assert.ErrorAs(t, err, &navErr)
	assert.Equal(t, "array", navErr.Expected)

	// leaf has the wrong type
	_, err = NavString(doc, "data", "children", 0, "data", "over_18")
	assert.ErrorAs(t, err, &navErr)
	assert.Equal(t, "string", navErr.Expected)
}

func TestNavObjectAndArray(t *testing.T) {
	doc, err := DecodeJSON(navFixture)
	assert.Nil(t, err)

	obj, err := NavObject(doc, "data", "children", 0, "data")
	assert.Nil(t, err)
	assert.Contains(t, obj, "title")

	arr, err := NavArray(doc, "data", "children")
	assert.Nil(t, err)
	assert.Len(t, arr, 2)
}

func TestDecodeJSONInvalid(t *testing.T) {
	_, err := DecodeJSON("{not json")
	assert.NotNil(t, err)

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}
