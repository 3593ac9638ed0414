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

// CreateTeamMember cadastra um novo membro do time na lista de referência
func CreateTeamMember(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateNamedResourceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		member, err := service.CreateTeamMember(req.Name)
		if err != nil {
			if errors.Is(err, catalog.ErrNameRequired) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar membro do time", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(member)
	}
}

// ListTeamMembers retorna os membros do time ordenados por nome
func ListTeamMembers(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		members, err := service.ListTeamMembers()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar membros do time", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(members)
	}
}

// DeleteTeamMember remove um membro do time da lista de referência
func DeleteTeamMember(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do membro do time não fornecido", nil)
			return
		}

		if err := service.DeleteTeamMember(id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Membro do time não encontrado", nil)
				return
			}
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover membro do time", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
