package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/workout-api/internal/api/shared"
	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/stretchr/testify/require"
)

// doRequest serves a single request through router and returns the recorder.
// body may be a string (sent verbatim), nil, or any value marshaled to JSON.
func doRequest(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	switch b := body.(type) {
	case nil:
	case string:
		payload = []byte(b)
	default:
		var err error
		payload, err = json.Marshal(b)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeErrorResponse(t *testing.T, rr *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	var resp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	return resp
}

func athleteRouter(h *AthleteHandler) http.Handler {
	r := chi.NewRouter()
	r.Post("/atletas", h.CreateAthlete)
	r.Get("/atletas", h.ListAthletes)
	r.Get("/atletas/{id}", h.GetAthlete)
	r.Patch("/atletas/{id}", h.UpdateAthlete)
	r.Delete("/atletas/{id}", h.DeleteAthlete)
	return r
}

func registryRouter(ch *CategoryHandler, th *TrainingCenterHandler) http.Handler {
	r := chi.NewRouter()
	r.Post("/categorias", ch.CreateCategory)
	r.Get("/categorias", ch.ListCategories)
	r.Get("/categorias/{id}", ch.GetCategory)
	r.Post("/centros_de_treinamento", th.CreateTrainingCenter)
	r.Get("/centros_de_treinamento", th.ListTrainingCenters)
	r.Get("/centros_de_treinamento/{id}", th.GetTrainingCenter)
	return r
}

func strPtr(s string) *string { return &s }

func sampleAthlete(pkID int64) *domain.Athlete {
	return &domain.Athlete{
		ID:               uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		PkID:             pkID,
		Name:             "Joao",
		CPF:              "12345678900",
		Age:              25,
		Weight:           75.5,
		Height:           1.70,
		Sex:              "M",
		TrainingCenterID: 1,
		CategoryID:       1,
		Category:         domain.Category{PkID: 1, Name: "Scale"},
		TrainingCenter: domain.TrainingCenter{
			PkID:    1,
			Name:    "CT King",
			Address: strPtr("Rua X, Q02"),
			Owner:   strPtr("Marcos"),
		},
	}
}

func validAthletePayload() map[string]any {
	return map[string]any{
		"nome":                     "Joao",
		"cpf":                      "12345678900",
		"idade":                    25,
		"peso":                     75.5,
		"altura":                   1.70,
		"sexo":                     "M",
		"centro_de_treinamento_id": 1,
		"categoria_id":             1,
	}
}
