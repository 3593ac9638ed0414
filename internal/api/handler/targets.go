package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/channel-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/channel-dashboard-api/internal/domain"
	"github.com/vfg2006/channel-dashboard-api/internal/usecases/targeting"
	"github.com/vfg2006/channel-dashboard-api/pkg/apiErrors"
)

// CreateTarget cadastra uma meta para um par canal+produto. Um par já
// cadastrado retorna 409 sem alterar nada.
func CreateTarget(service targeting.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var target domain.Target
		if err := json.NewDecoder(r.Body).Decode(&target); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateTarget(&target)
		if err != nil {
			handleTargetError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

// ListTargets retorna as metas mais recentes primeiro, cada uma com o
// progresso calculado sobre os lançamentos
func ListTargets(service targeting.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targets, err := service.ListTargetsWithProgress()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar metas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(targets)
	}
}

// DeleteTarget remove uma meta
func DeleteTarget(service targeting.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da meta não fornecido", nil)
			return
		}

		if err := service.DeleteTarget(id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Meta não encontrada", nil)
				return
			}
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover meta", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// handleTargetError mapeia os erros de meta para as respostas da API
func handleTargetError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrDuplicateTarget):
		apiErrors.WriteError(w, apiErrors.ErrDuplicateTarget, err.Error(), nil)

	case errors.Is(err, targeting.ErrUnknownChannel):
		apiErrors.WriteError(w, apiErrors.ErrUnknownChannel, "Canal inválido", nil)

	case errors.Is(err, targeting.ErrProductRequired),
		errors.Is(err, targeting.ErrInvalidAmount):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
	}
}
