package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/hfujimoto/athlete-site-api/internal/domain"
	"github.com/hfujimoto/athlete-site-api/internal/usecases/publishing"
	"github.com/hfujimoto/athlete-site-api/pkg/apiErrors"
	"github.com/hfujimoto/athlete-site-api/pkg/log"
)

type GeneratePostRequest struct {
	URL string `json:"url"`
}

// ListPublishedPosts serve a listagem pública do blog
func ListPublishedPosts(service publishing.Publisher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		posts, err := service.ListPublished()
		if err != nil {
			logger.WithError(err).Error("blog: erro ao listar posts publicados")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar posts", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(posts); err != nil {
			logger.WithError(err).Error("blog: erro ao codificar resposta")
		}
	})
}

// GetPublishedPost serve um post publicado pelo slug
func GetPublishedPost(service publishing.Publisher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		slug := httprouter.ParamsFromContext(r.Context()).ByName("slug")
		post, err := service.GetPublishedBySlug(slug)
		if err != nil {
			if errors.Is(err, publishing.ErrPostNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Post não encontrado", nil)
				return
			}

			logger.WithError(err).WithField("slug", slug).Error("blog: erro ao buscar post")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar post", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(post); err != nil {
			logger.WithError(err).Error("blog: erro ao codificar resposta")
		}
	})
}

// ListAllPosts lista todos os posts para o dashboard, com filtro opcional de
// status
func ListAllPosts(service publishing.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		posts, err := service.ListAll(r.URL.Query().Get("status"))
		if err != nil {
			logger.WithError(err).Error("blog: erro ao listar posts")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar posts", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(posts); err != nil {
			logger.WithError(err).Error("blog: erro ao codificar resposta")
		}
	}
}

// CreatePost cria um post a partir do dashboard
func CreatePost(service publishing.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var post domain.BlogPost
		if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreatePost(&post)
		if err != nil {
			if errors.Is(err, publishing.ErrMissingTitle) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Título é obrigatório", nil)
				return
			}

			logger.WithError(err).Error("blog: erro ao criar post")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar post", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logger.WithError(err).Error("blog: erro ao codificar resposta")
		}
	}
}

// UpdatePost atualiza campos de um post existente
func UpdatePost(service publishing.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id, err := postIDFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID do post inválido", nil)
			return
		}

		var request domain.UpdateBlogPostRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		request.ID = id

		if err := service.UpdatePost(&request); err != nil {
			if errors.Is(err, publishing.ErrPostNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Post não encontrado", nil)
				return
			}

			logger.WithError(err).WithField("post_id", id).Error("blog: erro ao atualizar post")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar post", nil)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

// DeletePost remove um post do blog
func DeletePost(service publishing.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id, err := postIDFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID do post inválido", nil)
			return
		}

		if err := service.DeletePost(id); err != nil {
			if errors.Is(err, publishing.ErrPostNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Post não encontrado", nil)
				return
			}

			logger.WithError(err).WithField("post_id", id).Error("blog: erro ao excluir post")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao excluir post", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GeneratePost pede à IA um rascunho de post a partir de uma URL de referência
func GeneratePost(service publishing.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request GeneratePostRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		generated, err := service.GeneratePost(r.Context(), request.URL)
		if err != nil {
			if errors.Is(err, publishing.ErrMissingURL) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "URL de referência é obrigatória", nil)
				return
			}

			logger.WithError(err).WithField("url", request.URL).Error("blog: erro na geração assistida")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao gerar rascunho", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(generated); err != nil {
			logger.WithError(err).Error("blog: erro ao codificar resposta")
		}
	}
}

func postIDFromRequest(r *http.Request) (int, error) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	return strconv.Atoi(idStr)
}
