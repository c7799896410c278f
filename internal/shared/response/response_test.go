package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-shiftplan/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newContext(target string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

func TestNewPaginationMeta(t *testing.T) {
	meta := response.NewPaginationMeta(21, 2, 10)
	assert.Equal(t, 3, meta.TotalPages)

	empty := response.NewPaginationMeta(5, 1, 0)
	assert.Equal(t, 0, empty.TotalPages)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	t.Run("no params returns everything", func(t *testing.T) {
		c, _ := newContext("/x")
		got, meta := response.Paginate(c, items)
		assert.Equal(t, items, got)
		assert.Equal(t, int64(5), meta.Total)
		assert.Equal(t, 1, meta.TotalPages)
	})

	t.Run("second page", func(t *testing.T) {
		c, _ := newContext("/x?page=2&page_size=2")
		got, meta := response.Paginate(c, items)
		assert.Equal(t, []int{3, 4}, got)
		assert.Equal(t, 3, meta.TotalPages)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		c, _ := newContext("/x?page=9&page_size=2")
		got, _ := response.Paginate(c, items)
		assert.Empty(t, got)
	})

	t.Run("invalid values fall back", func(t *testing.T) {
		c, _ := newContext("/x?page=-1&page_size=abc")
		got, meta := response.Paginate(c, items)
		assert.Equal(t, items, got)
		assert.Equal(t, 1, meta.Page)
		assert.Equal(t, 10, meta.PageSize)
	})
}

func TestError(t *testing.T) {
	c, w := newContext("/x")
	response.Error(c, http.StatusNotFound, "NOT_FOUND", "missing", nil)

	var body response.ApiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, body.Ok)
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
}

func TestAttachment(t *testing.T) {
	c, w := newContext("/x")
	response.Attachment(c, "planilla.csv", "text/csv; charset=utf-8", []byte("a,b\n"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="planilla.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "a,b\n", w.Body.String())
}
