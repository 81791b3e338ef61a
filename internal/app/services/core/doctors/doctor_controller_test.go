package doctors

import (
	"errors"
	"medifind-service/internal/app/models"
	"medifind-service/internal/pkg/dto/responses"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type searchResponseBody struct {
	Success    bool                    `json:"success"`
	Data       responses.SearchDoctors `json:"data"`
	Pagination *responses.Pagination   `json:"pagination"`
}

func TestSearchPagination(t *testing.T) {
	repo := &stubDoctorRepository{docs: []models.Doctor{
		{ID: "m1", Name: "Dr. One", Location: "Jayanagar, Bangalore"},
		{ID: "m2", Name: "Dr. Two", Location: "Indiranagar, Bangalore"},
		{ID: "m3", Name: "Dr. Three", Location: "Koramangala, Bangalore"},
	}}
	ctrl := NewDoctorController(zap.NewNop(), newTestUsecase(&stubDirectoryClient{err: errors.New("down")}, repo))

	t.Run("Second page returns the remainder", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors?city=Bangalore&page=2&page_size=2", nil)
		rec := httptest.NewRecorder()
		ctrl.Search(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var body searchResponseBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.NotNil(t, body.Pagination)
		assert.Equal(t, 3, body.Pagination.Total)
		assert.Equal(t, 2, body.Pagination.Page)
		assert.NotEmpty(t, body.Pagination.PrevURL)
		require.Len(t, body.Data.Doctors, 1)
		assert.Equal(t, "m3", body.Data.Doctors[0].ID)
	})

	t.Run("Defaults fit the whole list on one page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors?city=Bangalore", nil)
		rec := httptest.NewRecorder()
		ctrl.Search(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var body searchResponseBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.NotNil(t, body.Pagination)
		assert.Equal(t, 1, body.Pagination.Page)
		assert.Empty(t, body.Pagination.NextURL)
		assert.Len(t, body.Data.Doctors, 3)
	})

	t.Run("Page past the end is empty not an error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors?city=Bangalore&page=9&page_size=2", nil)
		rec := httptest.NewRecorder()
		ctrl.Search(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var body searchResponseBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Empty(t, body.Data.Doctors)
		assert.Equal(t, 3, body.Pagination.Total)
	})
}
