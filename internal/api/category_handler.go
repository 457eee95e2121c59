package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/workout-api/internal/api/shared"
	"github.com/phrazzld/workout-api/internal/service"
)

const categoriesLocation = "/api/v1/categorias/"

// CategoryHandler serves the /categorias resource.
type CategoryHandler struct {
	categoryService service.CategoryService
	logger          *slog.Logger
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(categoryService service.CategoryService, logger *slog.Logger) *CategoryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger.With(slog.String("component", "category_handler")),
	}
}

// CreateCategory handles POST /categorias.
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	category, err := h.categoryService.CreateCategory(r.Context(), req.Name)
	if err != nil {
		handleAPIError(w, r, err, errorMessages{
			Failure:   "Erro ao criar categoria",
			Duplicate: fmt.Sprintf("Já Existe uma categoria cadastrada com o nome: %s", req.Name),
			Location:  categoriesLocation,
		})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, categoryToResponse(category))
}

// ListCategories handles GET /categorias.
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.ListCategories(r.Context())
	if err != nil {
		handleAPIError(w, r, err, errorMessages{Failure: "Problema ao listar categorias"})
		return
	}

	resp := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, categoryToResponse(c))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// GetCategory handles GET /categorias/{id}.
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "id")
	if !ok {
		return
	}

	category, err := h.categoryService.GetCategory(r.Context(), id)
	if err != nil {
		handleAPIError(w, r, err, errorMessages{
			Failure:  "Problema ao buscar categoria",
			NotFound: fmt.Sprintf("Categoria não encontrada no id: %d", id),
		})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, categoryToResponse(category))
}
