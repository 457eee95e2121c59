package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/phrazzld/workout-api/internal/api/shared"
	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/phrazzld/workout-api/internal/platform/logger"
	"github.com/phrazzld/workout-api/internal/service"
)

// AthleteHandler serves the /atletas resource.
type AthleteHandler struct {
	athleteService service.AthleteService
	logger         *slog.Logger
}

// NewAthleteHandler creates an AthleteHandler.
func NewAthleteHandler(athleteService service.AthleteService, logger *slog.Logger) *AthleteHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AthleteHandler{
		athleteService: athleteService,
		logger:         logger.With(slog.String("component", "athlete_handler")),
	}
}

// CreateAthlete handles POST /atletas.
func (h *AthleteHandler) CreateAthlete(w http.ResponseWriter, r *http.Request) {
	var req CreateAthleteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	athlete, err := h.athleteService.CreateAthlete(r.Context(), req.toParams())
	if err != nil {
		handleAPIError(w, r, err, errorMessages{
			Failure:   "Erro ao criar atleta",
			Duplicate: fmt.Sprintf("Já existe um atleta cadastrado com o cpf: %s", req.CPF),
			Location:  athleteCPFLocation(req.CPF),
		})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, athleteToResponse(athlete))
}

// ListAthletes handles GET /atletas with the optional nome and cpf filters.
// An empty result is a 404.
func (h *AthleteHandler) ListAthletes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := domain.AthleteFilter{
		Name: query.Get("nome"),
		CPF:  query.Get("cpf"),
	}

	athletes, err := h.athleteService.ListAthletes(r.Context(), filter)
	if err != nil {
		handleAPIError(w, r, err, errorMessages{Failure: "Problema ao listar Atletas"})
		return
	}

	if len(athletes) == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, "Nenhum atleta encontrado")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, athletesToResponse(athletes))
}

// GetAthlete handles GET /atletas/{id}. The athlete is returned wrapped in a
// single-element list.
func (h *AthleteHandler) GetAthlete(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "id")
	if !ok {
		return
	}

	athlete, err := h.athleteService.GetAthlete(r.Context(), id)
	if err != nil {
		handleAPIError(w, r, err, errorMessages{
			Failure:  "Problema ao buscar atleta",
			NotFound: fmt.Sprintf("Atleta não encontrado no id: %d", id),
		})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, athletesToResponse([]*domain.Athlete{athlete}))
}

// UpdateAthlete handles PATCH /atletas/{id}.
func (h *AthleteHandler) UpdateAthlete(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateAthleteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	athlete, err := h.athleteService.UpdateAthlete(r.Context(), id, req.toUpdate())
	if err != nil {
		handleAPIError(w, r, err, errorMessages{
			Failure:  "Erro ao atualizar atleta",
			NotFound: fmt.Sprintf("Atleta não encontrado no id: %d", id),
		})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, athleteToResponse(athlete))
}

// DeleteAthlete handles DELETE /atletas/{id}.
func (h *AthleteHandler) DeleteAthlete(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.athleteService.DeleteAthlete(r.Context(), id); err != nil {
		handleAPIError(w, r, err, errorMessages{
			Failure:  "Erro ao remover atleta",
			NotFound: fmt.Sprintf("Atleta não encontrado com o id: %d", id),
		})
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("athlete removed", slog.Int64("pk_id", id))
	w.WriteHeader(http.StatusNoContent)
}

func athleteCPFLocation(cpf string) string {
	return "/api/v1/atletas/?" + url.Values{"cpf": []string{cpf}}.Encode()
}
