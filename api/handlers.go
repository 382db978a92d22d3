package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"novelpub/novel"
	"novelpub/pipeline"
	"novelpub/render"
	"novelpub/storage"
	"novelpub/text"

	"go.uber.org/zap"
)

// ConvertRequest carries one document, either as plain text or as an HTML page.
type ConvertRequest struct {
	Text          string        `json:"text"`
	HTML          string        `json:"html"`
	Name          string        `json:"name"`
	BlockKeywords []string      `json:"block_keywords"`
	Book          pipeline.Book `json:"book"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ConvertHandler converts the posted document and stores the result.
func (s *Server) ConvertHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req ConvertRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxUploadBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if (req.Text == "") == (req.HTML == "") {
		writeError(w, http.StatusBadRequest, "exactly one of text or html is required")
		return
	}

	name, data := req.Name, []byte(req.Text)
	if req.HTML != "" {
		data = []byte(req.HTML)
		if name == "" {
			name = "upload.html"
		}
	}
	if name == "" {
		name = "upload.txt"
	}

	doc, err := s.loader.LoadBytes(name, data)
	if errors.Is(err, text.ErrUnsupportedFormat) {
		writeError(w, http.StatusUnsupportedMediaType, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.converter.Convert(r.Context(), doc, pipeline.Options{
		BlockKeywords: req.BlockKeywords,
		Book:          req.Book,
	})
	if errors.Is(err, novel.ErrEmptyChapterSet) {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		s.logger.Error("Conversion failed", zap.String("source", name), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "conversion failed")
		return
	}

	if err := s.store.Save(r.Context(), result); err != nil {
		s.logger.Error("Failed to store conversion", zap.String("conversion_id", result.ID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to store conversion")
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (s *Server) ListHandler(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.store.List(r.Context())
	if err != nil {
		s.logger.Error("Failed to list conversions", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list conversions")
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) GetHandler(w http.ResponseWriter, r *http.Request) {
	result, err := s.store.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// PreviewHandler renders a stored conversion as Markdown, one level-two
// heading per chapter.
func (s *Server) PreviewHandler(w http.ResponseWriter, r *http.Request) {
	result, err := s.store.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.storeError(w, err)
		return
	}

	var b strings.Builder
	b.WriteString("# " + result.Book.Title + "\n")
	for _, ch := range result.Chapters {
		md, err := render.Markdown(ch.Body)
		if err != nil {
			s.logger.Error("Failed to render markdown", zap.String("conversion_id", result.ID), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to render preview")
			return
		}
		b.WriteString("\n## " + ch.Title + "\n\n" + strings.TrimSpace(md) + "\n")
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Write([]byte(b.String()))
}

func (s *Server) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) storeError(w http.ResponseWriter, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, storage.ErrNotFound.Error())
		return
	}
	s.logger.Error("Store request failed", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "store request failed")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
