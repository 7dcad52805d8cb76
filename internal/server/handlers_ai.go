package server

import (
	"net/http"

	"github.com/jonathan/resume-studio/internal/types"
)

// handleGenerateQuestions returns interview questions for a resume.
func (s *Server) handleGenerateQuestions(w http.ResponseWriter, r *http.Request) {
	var req types.QuestionsRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	questions, err := s.coach.GenerateQuestions(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, types.QuestionsResponse{Questions: questions})
}

// handleEvaluateAnswer returns structured feedback on an interview answer.
func (s *Server) handleEvaluateAnswer(w http.ResponseWriter, r *http.Request) {
	var req types.EvaluateRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	feedback, err := s.coach.EvaluateAnswer(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, feedback)
}

// handleGenerateSuggestions returns suggestions for one resume section.
func (s *Server) handleGenerateSuggestions(w http.ResponseWriter, r *http.Request) {
	var req types.SuggestionsRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	suggestions, err := s.coach.GenerateSuggestions(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, types.SuggestionsResponse{Suggestions: suggestions})
}

// handleGenerateResume writes a resume from a job title, experience and skills.
func (s *Server) handleGenerateResume(w http.ResponseWriter, r *http.Request) {
	var req types.ComposeResumeRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	content, err := s.coach.GenerateResume(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, types.ResumeTextResponse{Content: content})
}

// handleOptimizeResume writes a resume tailored to a job description.
func (s *Server) handleOptimizeResume(w http.ResponseWriter, r *http.Request) {
	var req types.OptimizeResumeRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	content, err := s.coach.OptimizeResume(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, types.ResumeTextResponse{Content: content})
}
