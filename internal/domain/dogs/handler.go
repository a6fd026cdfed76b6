package dogs

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"dog-registry/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const maxFormMemory = 1 << 20

func RegisterRoutes(r chi.Router, reg *Registry, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}

	r.Get("/table-rows", listRowsHandler(reg, log))
	r.Post("/dog", createDogHandler(reg, log))
	r.Delete("/dog/{id}", deleteDogHandler(reg, log))
}

// listRowsHandler godoc
// @Summary Filas de la tabla de perros
// @Description Devuelve un fragmento HTML con una fila `<tr>` por perro, ordenado por nombre. Store vacío => body vacío.
// @Tags dogs
// @Produce html
// @Success 200 {string} string "fragmento HTML"
// @Failure 500 {string} string "internal error"
// @Router /table-rows [get]
func listRowsHandler(reg *Registry, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := reg.ListAll(r.Context())
		if err != nil {
			internalError(w, r, log, "list dogs failed", err)
			return
		}

		writeHTML(w, r, log, http.StatusOK, func(out io.Writer) error {
			return RenderRows(out, items)
		})
	}
}

// createDogHandler godoc
// @Summary Crear perro
// @Description Crea un perro desde un form (urlencoded o multipart). Campos faltantes quedan como string vacío.
// @Tags dogs
// @Accept x-www-form-urlencoded
// @Accept mpfd
// @Produce html
// @Param name formData string false "Nombre"
// @Param breed formData string false "Raza"
// @Success 201 {string} string "fila HTML del perro creado"
// @Failure 400 {string} string "invalid form"
// @Failure 500 {string} string "internal error"
// @Router /dog [post]
func createDogHandler(reg *Registry, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// ParseMultipartForm también parsea urlencoded (y devuelve ErrNotMultipart).
		if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		d, err := reg.Add(r.Context(), r.PostFormValue("name"), r.PostFormValue("breed"))
		if err != nil {
			internalError(w, r, log, "create dog failed", err)
			return
		}

		writeHTML(w, r, log, http.StatusCreated, func(out io.Writer) error {
			return RenderRow(out, d)
		})
	}
}

// deleteDogHandler godoc
// @Summary Borrar perro
// @Description Borra el perro indicado. Un id desconocido también responde 200.
// @Tags dogs
// @Param id path string true "ID del perro"
// @Success 200 "body vacío"
// @Failure 500 {string} string "internal error"
// @Router /dog/{id} [delete]
func deleteDogHandler(reg *Registry, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if err := reg.Delete(r.Context(), id); err != nil {
			internalError(w, r, log, "delete dog failed", err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

// writeHTML renderiza a un buffer primero para no mandar un 200 a medias.
func writeHTML(w http.ResponseWriter, r *http.Request, log logger.Logger, status int, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		internalError(w, r, log, "render failed", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// internalError no filtra detalle del store al cliente.
func internalError(w http.ResponseWriter, r *http.Request, log logger.Logger, msg string, err error) {
	log.Error(msg, map[string]any{
		"request_id": chimw.GetReqID(r.Context()),
		"error":      err.Error(),
		"storage":    errors.Is(err, ErrStorage),
	})
	http.Error(w, "internal error", http.StatusInternalServerError)
}
