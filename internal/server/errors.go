package server

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/jonathan/resume-studio/internal/coach"
	"github.com/jonathan/resume-studio/internal/ingestion"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr  *coach.ValidationError
		stageErr       *coach.StageError
		unsupportedErr *ingestion.UnsupportedTypeError
		emptyDocErr    *ingestion.EmptyDocumentError
		extractionErr  *ingestion.ExtractionError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &stageErr):
		return http.StatusBadGateway
	case errors.As(err, &unsupportedErr):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &emptyDocErr), errors.As(err, &extractionErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage returns the message shown to clients. Unclassified errors are not echoed.
func errorMessage(err error) string {
	if HTTPStatus(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}

// writeError maps err to a status and writes the {error} envelope.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	entry := s.logger.WithError(err).WithFields(logrus.Fields{
		"path":   r.URL.Path,
		"status": status,
	})
	if status >= http.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Debug("request rejected")
	}
	s.errorResponse(w, status, errorMessage(err))
}
