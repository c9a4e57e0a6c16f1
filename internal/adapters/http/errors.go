package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"abusetriage/internal/api"
	"abusetriage/internal/domain"
)

var (
	notFoundBody      = api.ErrorMessage{Detail: "Domain not found"}
	internalErrorBody = api.ErrorMessage{Detail: "Internal Server Error"}
)

func validationBody(verr *domain.ValidationError) api.HTTPValidationError {
	items := make([]api.ValidationErrorItem, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		items = append(items, api.ValidationErrorItem{Field: f.Field, Message: f.Message})
	}
	return api.HTTPValidationError{Detail: items}
}

// requestError answers requests the generated layer could not decode.
func (s *Server) requestError(w http.ResponseWriter, r *http.Request, err error) {
	writeJSON(w, http.StatusUnprocessableEntity, api.HTTPValidationError{
		Detail: []api.ValidationErrorItem{decodeFailure(err)},
	})
}

// responseError logs the cause and hides it from the client.
func (s *Server) responseError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.WithError(err).WithFields(logrus.Fields{
		"method":     r.Method,
		"path":       r.URL.Path,
		"request_id": middleware.GetReqID(r.Context()),
	}).Error("request failed")
	writeJSON(w, http.StatusInternalServerError, internalErrorBody)
}

func decodeFailure(err error) api.ValidationErrorItem {
	var (
		typeErr  *json.UnmarshalTypeError
		paramErr *api.InvalidParamFormatError
	)
	switch {
	case errors.As(err, &paramErr):
		return api.ValidationErrorItem{Field: paramErr.ParamName, Message: "is not valid"}
	case errors.Is(err, io.EOF):
		return api.ValidationErrorItem{Field: "body", Message: "is required"}
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return api.ValidationErrorItem{Field: typeErr.Field, Message: "must be of type " + typeErr.Type.String()}
	default:
		return api.ValidationErrorItem{Field: "body", Message: "is not valid JSON"}
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
