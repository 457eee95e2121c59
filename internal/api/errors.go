package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/workout-api/internal/api/shared"
	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/phrazzld/workout-api/internal/redact"
	"github.com/phrazzld/workout-api/internal/service"
	"github.com/phrazzld/workout-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
func MapErrorToStatusCode(err error) int {
	var (
		storeErr   *store.StoreError
		serviceErr *service.ServiceError
	)

	switch {
	case err == nil:
		return http.StatusOK

	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity

	case errors.Is(err, store.ErrDuplicate):
		return http.StatusSeeOther

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrInvalidEntity),
		errors.As(err, &storeErr),
		errors.As(err, &serviceErr):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-facing message for err that does not
// leak internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "Ocorreu um erro inesperado"
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		return "Erro de validação"

	case errors.Is(err, store.ErrCPFExists):
		return "Já existe um atleta cadastrado com este cpf"
	case errors.Is(err, store.ErrCategoryNameExists):
		return "Já existe uma categoria cadastrada com este nome"
	case errors.Is(err, store.ErrTrainingCenterNameExists):
		return "Já existe um centro de treinamento cadastrado com este nome"

	case errors.Is(err, store.ErrAthleteNotFound):
		return "Atleta não encontrado"
	case errors.Is(err, store.ErrCategoryNotFound):
		return "Categoria não encontrada"
	case errors.Is(err, store.ErrTrainingCenterNotFound):
		return "Centro de treinamento não encontrado"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Dados inválidos"

	default:
		return "Ocorreu um erro inesperado"
	}
}

// errorMessages overrides the generic messages of GetSafeErrorMessage for
// one operation. Empty fields fall back to the generic message.
type errorMessages struct {
	// Failure prefixes the redacted error for 400 responses, e.g. "Erro ao criar atleta".
	Failure string
	// Duplicate is sent with 303 responses.
	Duplicate string
	// Location points 303 responses at the existing resource.
	Location string
	// NotFound is sent with 404 responses.
	NotFound string
}

// handleAPIError writes the error response for err.
func handleAPIError(w http.ResponseWriter, r *http.Request, err error, msgs errorMessages) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	var opts []shared.ResponseOption

	switch status {
	case http.StatusUnprocessableEntity:
		if fields := validationFields(err); len(fields) > 0 {
			opts = append(opts, shared.WithFields(fields...))
			message = message + ": " + err.Error()
		}

	case http.StatusSeeOther:
		if msgs.Duplicate != "" {
			message = msgs.Duplicate
		}
		if msgs.Location != "" {
			w.Header().Set("Location", msgs.Location)
		}

	case http.StatusNotFound:
		if msgs.NotFound != "" {
			message = msgs.NotFound
		}

	case http.StatusBadRequest:
		if msgs.Failure != "" {
			message = msgs.Failure + ": " + redact.Error(err)
		}
		opts = append(opts, shared.WithElevatedLogLevel())
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}

// validationFields lists the offending fields carried by err, in order and
// without duplicates.
func validationFields(err error) []string {
	var fields []string
	seen := map[string]bool{}
	add := func(field string) {
		if !seen[field] {
			seen[field] = true
			fields = append(fields, field)
		}
	}

	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		for _, f := range verrs.Fields() {
			add(f)
		}
		return fields
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		add(verr.Field)
	}
	return fields
}
