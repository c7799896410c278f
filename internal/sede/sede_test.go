package sede_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-shiftplan/internal/sede"
	sedeerrors "go-shiftplan/internal/sede/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRegistry_Resolve(t *testing.T) {
	r := sede.NewRegistry([]string{"Amagá", " Paso Nivel ", "amagá", ""})

	assert.Equal(t, []string{"Amagá", "Paso Nivel"}, r.All())

	got, err := r.Resolve("AMAGÁ")
	assert.NoError(t, err)
	assert.Equal(t, "Amagá", got)

	got, err = r.Resolve("paso nivel")
	assert.NoError(t, err)
	assert.Equal(t, "Paso Nivel", got)

	_, err = r.Resolve("")
	assert.ErrorIs(t, err, sedeerrors.ErrSedeRequired)

	_, err = r.Resolve("Medellín")
	assert.ErrorIs(t, err, sedeerrors.ErrUnknownSede)
}

func TestRegistry_ResolveIgnoresAccents(t *testing.T) {
	r := sede.NewRegistry([]string{"Amagá", "Paso Nivel"})

	for _, in := range []string{"amaga", "AMAGA", " Amagá ", "amagá"} {
		got, err := r.Resolve(in)
		assert.NoError(t, err, in)
		assert.Equal(t, "Amagá", got, in)
	}
}

func TestSame(t *testing.T) {
	assert.True(t, sede.Same("Amagá", "amaga"))
	assert.True(t, sede.Same("Paso Nivel", "PASO NIVEL"))
	assert.False(t, sede.Same("Amagá", "Paso Nivel"))
}

func TestRegistry_AllIsACopy(t *testing.T) {
	r := sede.NewRegistry([]string{"Amagá"})
	all := r.All()
	all[0] = "changed"
	assert.Equal(t, []string{"Amagá"}, r.All())
}

func TestHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := sede.NewHandler(sede.NewRegistry([]string{"Amagá", "Paso Nivel"}))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/sedes", nil)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Ok   bool     `json:"ok"`
		Data []string `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Ok)
	assert.Equal(t, []string{"Amagá", "Paso Nivel"}, body.Data)
}
