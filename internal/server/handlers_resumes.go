package server

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jonathan/resume-studio/internal/db"
	"github.com/jonathan/resume-studio/internal/ingestion"
	"github.com/jonathan/resume-studio/internal/server/middleware"
	"github.com/jonathan/resume-studio/internal/types"
)

// ImportResponse is returned by the resume import endpoint.
type ImportResponse struct {
	Resume   types.Resume        `json:"resume"`
	Metadata *ingestion.Metadata `json:"metadata"`
}

// currentUser returns the authenticated user ID, writing a 401 when absent.
func (s *Server) currentUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, false
	}
	return userID, true
}

// resumeID parses the {id} path value, writing a 400 when invalid.
func (s *Server) resumeID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid resume ID")
		return uuid.Nil, false
	}
	return id, true
}

func toAPIResumes(resumes []db.Resume) []types.Resume {
	out := make([]types.Resume, 0, len(resumes))
	for i := range resumes {
		out = append(out, resumes[i].ToAPI())
	}
	return out
}

func (s *Server) handleGetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, types.CurrentUser{ID: userID})
}

// handleSignOut acknowledges a sign-out. Sessions live with the identity provider,
// so there is nothing to revoke here.
func (s *Server) handleSignOut(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	s.logger.WithField("user_id", userID).Info("user signed out")
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	resumes, err := s.store.ListResumesByOwner(r.Context(), userID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, toAPIResumes(resumes))
}

func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	var req types.CreateResumeRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	resume, err := s.store.CreateResume(r.Context(), userID, req.Title, req.Content)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, resume.ToAPI())
}

func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	id, ok := s.resumeID(w, r)
	if !ok {
		return
	}

	resume, err := s.store.GetResume(r.Context(), userID, id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "resume not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, resume.ToAPI())
}

func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	id, ok := s.resumeID(w, r)
	if !ok {
		return
	}

	var req types.UpdateResumeRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	resume, err := s.store.UpdateResumeContent(r.Context(), userID, id, req.Content)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "resume not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, resume.ToAPI())
}

func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	id, ok := s.resumeID(w, r)
	if !ok {
		return
	}

	deleted, err := s.store.DeleteResume(r.Context(), userID, id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "resume not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleImportResume stores the text of an uploaded PDF, DOCX or text file.
// The multipart form carries the file under "file" and an optional "title".
func (s *Server) handleImportResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBody)
	if err := r.ParseMultipartForm(maxUploadBody); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			s.errorResponse(w, http.StatusBadRequest, "missing file")
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "invalid file: "+err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read file: "+err.Error())
		return
	}

	text, metadata, err := ingestion.Ingest(header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		title = strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename))
	}
	if title == "" {
		title = "Imported resume"
	}

	resume, err := s.store.CreateResume(r.Context(), userID, title, text)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":      userID,
		"content_type": metadata.ContentType,
		"words":        metadata.Words,
	}).Info("resume imported")
	s.jsonResponse(w, http.StatusCreated, ImportResponse{Resume: resume.ToAPI(), Metadata: metadata})
}

// handleResumeQuestions generates interview questions from a stored resume.
func (s *Server) handleResumeQuestions(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	id, ok := s.resumeID(w, r)
	if !ok {
		return
	}

	resume, err := s.store.GetResume(r.Context(), userID, id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "resume not found")
		return
	}

	questions, err := s.coach.GenerateQuestions(r.Context(), types.QuestionsRequest{ResumeContent: resume.Content})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, types.QuestionsResponse{Questions: questions})
}
