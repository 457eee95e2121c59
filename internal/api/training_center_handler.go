package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/workout-api/internal/api/shared"
	"github.com/phrazzld/workout-api/internal/service"
)

const trainingCentersLocation = "/api/v1/centros_de_treinamento/"

// TrainingCenterHandler serves the /centros_de_treinamento resource.
type TrainingCenterHandler struct {
	trainingCenterService service.TrainingCenterService
	logger                *slog.Logger
}

// NewTrainingCenterHandler creates a TrainingCenterHandler.
func NewTrainingCenterHandler(
	trainingCenterService service.TrainingCenterService,
	logger *slog.Logger,
) *TrainingCenterHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TrainingCenterHandler{
		trainingCenterService: trainingCenterService,
		logger:                logger.With(slog.String("component", "training_center_handler")),
	}
}

// CreateTrainingCenter handles POST /centros_de_treinamento.
func (h *TrainingCenterHandler) CreateTrainingCenter(w http.ResponseWriter, r *http.Request) {
	var req CreateTrainingCenterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	tc, err := h.trainingCenterService.CreateTrainingCenter(r.Context(), req.toParams())
	if err != nil {
		handleAPIError(w, r, err, errorMessages{
			Failure:   "Erro ao criar CT",
			Duplicate: fmt.Sprintf("Já existe um Centro de Treinamento com o nome: %s", req.Name),
			Location:  trainingCentersLocation,
		})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, trainingCenterToResponse(tc))
}

// ListTrainingCenters handles GET /centros_de_treinamento.
func (h *TrainingCenterHandler) ListTrainingCenters(w http.ResponseWriter, r *http.Request) {
	centers, err := h.trainingCenterService.ListTrainingCenters(r.Context())
	if err != nil {
		handleAPIError(w, r, err, errorMessages{Failure: "Problema ao listar CTs"})
		return
	}

	resp := make([]TrainingCenterResponse, 0, len(centers))
	for _, tc := range centers {
		resp = append(resp, trainingCenterToResponse(tc))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// GetTrainingCenter handles GET /centros_de_treinamento/{id}.
func (h *TrainingCenterHandler) GetTrainingCenter(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "id")
	if !ok {
		return
	}

	tc, err := h.trainingCenterService.GetTrainingCenter(r.Context(), id)
	if err != nil {
		handleAPIError(w, r, err, errorMessages{
			Failure:  "Problema ao buscar CT",
			NotFound: fmt.Sprintf("Centro de Treinamento não encontrado no id: %d", id),
		})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, trainingCenterToResponse(tc))
}
