package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"estatecrm/utils"
)

func TestParsePagination(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p := ParsePagination("", "", DefaultLimit, SearchMaxLimit)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, DefaultLimit, p.Limit)
		assert.Equal(t, int64(0), p.Skip())
	})

	t.Run("explicit values", func(t *testing.T) {
		p := ParsePagination("3", "25", DefaultLimit, SearchMaxLimit)
		assert.Equal(t, 3, p.Page)
		assert.Equal(t, 25, p.Limit)
		assert.Equal(t, int64(50), p.Skip())
	})

	t.Run("limit clamped to max", func(t *testing.T) {
		p := ParsePagination("1", "5000", DefaultLimit, SearchMaxLimit)
		assert.Equal(t, SearchMaxLimit, p.Limit)
	})

	t.Run("garbage falls back to defaults", func(t *testing.T) {
		p := ParsePagination("abc", "-4", DefaultLimit, SearchMaxLimit)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, DefaultLimit, p.Limit)
	})

	t.Run("zero page falls back", func(t *testing.T) {
		p := ParsePagination("0", "10", DefaultLimit, SearchMaxLimit)
		assert.Equal(t, 1, p.Page)
	})
}

func TestParseBool(t *testing.T) {
	trueVal := ParseBool("true")
	require.NotNil(t, trueVal)
	assert.True(t, *trueVal)

	falseVal := ParseBool("false")
	require.NotNil(t, falseVal)
	assert.False(t, *falseVal)

	// Anything else means "filter not applied", never false.
	assert.Nil(t, ParseBool(""))
	assert.Nil(t, ParseBool("TRUE"))
	assert.Nil(t, ParseBool("1"))
	assert.Nil(t, ParseBool("yes"))
}

func TestSearch(t *testing.T) {
	filter := Search("lake view", "title", "description")

	or, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, or, 2)

	title := or[0]["title"].(bson.M)
	assert.Equal(t, "lake view", title["$regex"])
	assert.Equal(t, "i", title["$options"])
}

func TestRange(t *testing.T) {
	t.Run("both bounds", func(t *testing.T) {
		cond, err := Range("price", "100", "500")
		require.NoError(t, err)
		assert.Equal(t, bson.M{"$gte": 100.0, "$lte": 500.0}, cond)
	})

	t.Run("min only", func(t *testing.T) {
		cond, err := Range("price", "100", "")
		require.NoError(t, err)
		assert.Equal(t, bson.M{"$gte": 100.0}, cond)
	})

	t.Run("absent bounds yield no condition", func(t *testing.T) {
		cond, err := Range("price", "", "")
		require.NoError(t, err)
		assert.Nil(t, cond)
	})

	t.Run("unparseable value is a validation error, not a no-op", func(t *testing.T) {
		_, err := Range("price", "cheap", "")
		require.Error(t, err)

		appErr, ok := err.(*utils.AppError)
		require.True(t, ok)
		assert.Equal(t, 400, appErr.Code)
		require.Len(t, appErr.Errors, 1)
		assert.Equal(t, "minPrice", appErr.Errors[0].Path)
	})
}

func TestSort(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "name", Value: 1}}, Sort("", "name", 1))
	assert.Equal(t, bson.D{{Key: "price", Value: 1}}, Sort("price", "name", 1))
	assert.Equal(t, bson.D{{Key: "price", Value: -1}}, Sort("-price", "name", 1))
}

func TestNewPage(t *testing.T) {
	t.Run("pages is ceil(total/limit)", func(t *testing.T) {
		p := Pagination{Page: 1, Limit: 10}
		page := NewPage([]int{1, 2, 3}, 31, p)
		assert.Equal(t, 4, page.Pages)
		assert.Equal(t, int64(31), page.Total)
	})

	t.Run("exact multiple", func(t *testing.T) {
		page := NewPage([]int{}, 30, Pagination{Page: 1, Limit: 10})
		assert.Equal(t, 3, page.Pages)
	})

	t.Run("empty result", func(t *testing.T) {
		page := NewPage[int](nil, 0, Pagination{Page: 1, Limit: 10})
		assert.Equal(t, 0, page.Pages)
		assert.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
	})
}
