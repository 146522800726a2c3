// file: internals/helpers/json_response_test.go
package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveFor(t *testing.T, target string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()
	app := fiber.New()
	var got Paging
	app.Get("/t", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePaging(t *testing.T) {
	t.Run("default tanpa query", func(t *testing.T) {
		p := resolveFor(t, "/t", 20, 100)
		assert.Equal(t, Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}, p)
	})

	t.Run("page dan per_page normal", func(t *testing.T) {
		p := resolveFor(t, "/t?page=3&per_page=50", 20, 100)
		assert.Equal(t, Paging{Page: 3, PerPage: 50, Offset: 100, Limit: 50}, p)
	})

	t.Run("alias limit dipakai kalau per_page kosong", func(t *testing.T) {
		p := resolveFor(t, "/t?limit=10", 20, 100)
		assert.Equal(t, 10, p.PerPage)
	})

	t.Run("per_page di atas max dijepit", func(t *testing.T) {
		p := resolveFor(t, "/t?per_page=500", 20, 100)
		assert.Equal(t, 100, p.PerPage)
	})

	t.Run("nilai aneh jatuh ke default", func(t *testing.T) {
		p := resolveFor(t, "/t?page=-2&per_page=abc", 20, 100)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 20, p.PerPage)
	})

	t.Run("max nol berarti tanpa batas", func(t *testing.T) {
		p := resolveFor(t, "/t?per_page=500", 20, 0)
		assert.Equal(t, 500, p.PerPage)
	})
}

func TestBuildPaginationFromPage(t *testing.T) {
	t.Run("kosong tetap satu halaman", func(t *testing.T) {
		pg := BuildPaginationFromPage(0, 1, 20)
		assert.Equal(t, 1, pg.TotalPages)
		assert.False(t, pg.HasNext)
		assert.False(t, pg.HasPrev)
	})

	t.Run("halaman tengah", func(t *testing.T) {
		pg := BuildPaginationFromPage(45, 2, 20)
		assert.Equal(t, 3, pg.TotalPages)
		assert.True(t, pg.HasNext)
		assert.True(t, pg.HasPrev)
		assert.Equal(t, int64(45), pg.Total)
	})

	t.Run("halaman terakhir", func(t *testing.T) {
		pg := BuildPaginationFromPage(45, 3, 20)
		assert.False(t, pg.HasNext)
		assert.True(t, pg.HasPrev)
	})

	t.Run("input nol dinormalisasi", func(t *testing.T) {
		pg := BuildPaginationFromPage(10, 0, 0)
		assert.Equal(t, 1, pg.Page)
		assert.Equal(t, 20, pg.PerPage)
	})
}

func TestLenOf(t *testing.T) {
	assert.Equal(t, 0, lenOf(nil))
	assert.Equal(t, 3, lenOf([]int{1, 2, 3}))
	assert.Equal(t, 2, lenOf(map[string]int{"a": 1, "b": 2}))
	assert.Equal(t, 0, lenOf(42))
}
