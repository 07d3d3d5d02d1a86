package book

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"livraria/internal/httpx"

	"go.uber.org/zap"
)

const (
	msgListFailed   = "Erro ao consultar os livros: "
	msgCreated      = "Livro adicionado com sucesso!"
	msgCreateFailed = "Erro ao adicionar o livro: "
	msgUpdated      = "Livro atualizado com sucesso!"
	msgUpdateFailed = "Erro ao atualizar o livro: "
	msgFound        = "Livro encontrado!"
	msgGetFailed    = "Erro ao consultar o livro: "
	msgDeleteFailed = "Erro ao deletar o livro: "
)

type HTTPHandler struct {
	service *Service
	log     *zap.Logger
}

func NewHTTPHandler(service *Service, log *zap.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, log: log}
}

// Register binds the book routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /livros", h.List)
	mux.HandleFunc("POST /livros", h.Create)
	mux.HandleFunc("PUT /livros", h.Update)
	mux.HandleFunc("GET /livros/{codigo}", h.GetByCode)
	mux.HandleFunc("DELETE /livros/{codigo}", h.Delete)
}

type updateRequest struct {
	Code int64 `json:"code"`
	Input
}

// storageFailure answers 400 with the error text appended to prefix.
func (h *HTTPHandler) storageFailure(w http.ResponseWriter, r *http.Request, prefix string, err error) {
	h.log.Error("book storage failure",
		zap.String("request_id", httpx.RequestIDFrom(r)),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	httpx.JSONError(w, http.StatusBadRequest, prefix+err.Error())
}

func pathCode(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("codigo"), 10, 64)
}

// List handles GET /livros
// @Summary List books
// @Tags livros
// @Produce json
// @Success 200 {array} Book
// @Failure 400 {object} httpx.Envelope
// @Router /livros [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		h.storageFailure(w, r, msgListFailed, err)
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}

// Create handles POST /livros
// @Summary Create a book
// @Tags livros
// @Accept json
// @Produce json
// @Param book body Input true "Book fields"
// @Success 201 {object} httpx.Envelope
// @Failure 400 {object} httpx.Envelope
// @Router /livros [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.storageFailure(w, r, msgCreateFailed, err)
		return
	}

	created, err := h.service.Create(r.Context(), in)
	if err != nil {
		h.storageFailure(w, r, msgCreateFailed, err)
		return
	}
	httpx.JSONSuccess(w, http.StatusCreated, msgCreated, created)
}

// Update handles PUT /livros
// @Summary Replace a book
// @Tags livros
// @Accept json
// @Produce json
// @Success 200 {object} httpx.Envelope
// @Failure 400 {object} httpx.Envelope
// @Failure 404 {object} httpx.Envelope
// @Router /livros [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.storageFailure(w, r, msgUpdateFailed, err)
		return
	}

	updated, err := h.service.Update(r.Context(), req.Code, req.Input)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, fmt.Sprintf("Livro com código %d não encontrado!", req.Code))
			return
		}
		h.storageFailure(w, r, msgUpdateFailed, err)
		return
	}
	httpx.JSONSuccess(w, http.StatusOK, msgUpdated, updated)
}

// GetByCode handles GET /livros/{codigo}
// @Summary Get a book by code
// @Tags livros
// @Produce json
// @Param codigo path int true "Book code"
// @Success 200 {object} httpx.Envelope
// @Failure 400 {object} httpx.Envelope
// @Failure 404 {object} httpx.Envelope
// @Router /livros/{codigo} [get]
func (h *HTTPHandler) GetByCode(w http.ResponseWriter, r *http.Request) {
	code, err := pathCode(r)
	if err != nil {
		h.storageFailure(w, r, msgGetFailed, err)
		return
	}

	found, err := h.service.GetByCode(r.Context(), code)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, fmt.Sprintf("Livro com código %d não encontrado", code))
			return
		}
		h.storageFailure(w, r, msgGetFailed, err)
		return
	}
	httpx.JSONSuccess(w, http.StatusOK, msgFound, found)
}

// Delete handles DELETE /livros/{codigo}
// @Summary Delete a book
// @Tags livros
// @Produce json
// @Param codigo path int true "Book code"
// @Success 200 {object} httpx.Envelope
// @Failure 400 {object} httpx.Envelope
// @Failure 404 {object} httpx.Envelope
// @Router /livros/{codigo} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	code, err := pathCode(r)
	if err != nil {
		h.storageFailure(w, r, msgDeleteFailed, err)
		return
	}

	if err := h.service.Delete(r.Context(), code); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, fmt.Sprintf("Livro com código %d não encontrado", code))
			return
		}
		h.storageFailure(w, r, msgDeleteFailed, err)
		return
	}
	httpx.JSONSuccess(w, http.StatusOK, fmt.Sprintf("Livro com código %d deletado com sucesso!", code), nil)
}
