package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/channel-dashboard-api/internal/usecases/catalog"
	"github.com/vfg2006/channel-dashboard-api/pkg/apiErrors"
)

type CreateNamedResourceRequest struct {
	Name string `json:"name"`
}

// CreateProduct cadastra um novo produto na lista de referência
func CreateProduct(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateNamedResourceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		product, err := service.CreateProduct(req.Name)
		if err != nil {
			if errors.Is(err, catalog.ErrNameRequired) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar produto", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(product)
	}
}

// ListProducts retorna os produtos ordenados por nome
func ListProducts(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := service.ListProducts()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar produtos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(products)
	}
}

// DeleteProduct remove um produto da lista de referência
func DeleteProduct(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do produto não fornecido", nil)
			return
		}

		if err := service.DeleteProduct(id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Produto não encontrado", nil)
				return
			}
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover produto", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
