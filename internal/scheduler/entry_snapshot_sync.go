package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/channel-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/channel-dashboard-api/internal/config"
	"github.com/vfg2006/channel-dashboard-api/internal/domain"
)

// EntrySnapshotSyncConfig representa a configuração do agendador de snapshot
// de entradas
type EntrySnapshotSyncConfig struct {
	IntervalSeconds int
	SyncEnabled     bool
}

// ChannelSnapshot é a visão em memória das entradas de um canal em um
// instante, servida pelo endpoint de leitura ao vivo.
type ChannelSnapshot struct {
	Channel     domain.Channel      `json:"channel"`
	Entries     []*domain.DataEntry `json:"entries"`
	RefreshedAt time.Time           `json:"refreshedAt"`
}

// EntrySnapshotSyncService gerencia o agendamento e execução da atualização
// periódica do snapshot de entradas por canal. Substitui o polling dos
// clientes: o servidor re-busca as coleções em intervalo fixo e os clientes
// leem o snapshot.
type EntrySnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              EntrySnapshotSyncConfig
	entryRepo           repository.DataEntryRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	snapshots           map[domain.Channel]*ChannelSnapshot
	snapshotMutex       sync.RWMutex
	scheduleActive      bool
	scheduleMutex       sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewEntrySnapshotSyncService cria uma nova instância do serviço de snapshot
// de entradas
func NewEntrySnapshotSyncService(
	entryRepo repository.DataEntryRepository,
	appConfig *config.Config,
) *EntrySnapshotSyncService {
	snapshotConfig := EntrySnapshotSyncConfig{
		IntervalSeconds: appConfig.EntrySnapshotSync.IntervalSeconds,
		SyncEnabled:     appConfig.EntrySnapshotSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"interval_seconds": snapshotConfig.IntervalSeconds,
		"sync_enabled":     snapshotConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshot de entradas carregada")

	return &EntrySnapshotSyncService{
		scheduler:   scheduler,
		config:      snapshotConfig,
		entryRepo:   entryRepo,
		syncRunning: false,
		snapshots:   make(map[domain.Channel]*ChannelSnapshot),
	}
}

// Start inicia o agendador
func (s *EntrySnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Snapshot de entradas desabilitado por configuração")
		return nil
	}

	if err := s.StartSchedule(); err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshot de entradas")
		s.scheduler.Stop()
	}()

	return nil
}

// StartSchedule ativa o intervalo de atualização. Idempotente: iniciar um
// agendamento já ativo não cria um segundo job.
func (s *EntrySnapshotSyncService) StartSchedule() error {
	s.scheduleMutex.Lock()
	defer s.scheduleMutex.Unlock()

	if s.scheduleActive {
		logrus.Info("Agendamento de snapshot de entradas já ativo, ignorando")
		return nil
	}

	logrus.WithField("interval_seconds", s.config.IntervalSeconds).
		Info("Iniciando agendador de snapshot de entradas")

	_, err := s.scheduler.Every(s.config.IntervalSeconds).Seconds().Do(func() {
		s.syncAllChannelSnapshots()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshot de entradas: %w", err)
	}

	s.scheduler.StartAsync()
	s.scheduleActive = true

	return nil
}

// StopSchedule desativa o intervalo de atualização sem descartar os
// snapshots já coletados.
func (s *EntrySnapshotSyncService) StopSchedule() {
	s.scheduleMutex.Lock()
	defer s.scheduleMutex.Unlock()

	if !s.scheduleActive {
		logrus.Info("Agendamento de snapshot de entradas já inativo, ignorando")
		return
	}

	logrus.Info("Desativando agendamento de snapshot de entradas")
	s.scheduler.Clear()
	s.scheduleActive = false
}

// syncAllChannelSnapshots re-busca as entradas de todos os canais. Execuções
// nunca se sobrepõem: se uma atualização ainda está em andamento quando o
// intervalo dispara, o tick é ignorado.
func (s *EntrySnapshotSyncService) syncAllChannelSnapshots() {
	startTime := time.Now()

	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização de snapshot já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	var refreshed int
	for _, channel := range domain.Channels {
		entries, err := s.entryRepo.ListDataEntries(string(channel))
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"channel": channel,
				"error":   err.Error(),
			}).Error("Erro ao atualizar snapshot de entradas do canal")
			continue
		}

		s.snapshotMutex.Lock()
		s.snapshots[channel] = &ChannelSnapshot{
			Channel:     channel,
			Entries:     entries,
			RefreshedAt: time.Now(),
		}
		s.snapshotMutex.Unlock()
		refreshed++
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"channels": refreshed,
	}).Info("Atualização de snapshot de entradas concluída")
}

// Snapshot retorna a visão em memória das entradas do canal, ou nil se o
// canal ainda não foi coletado.
func (s *EntrySnapshotSyncService) Snapshot(channel domain.Channel) *ChannelSnapshot {
	s.snapshotMutex.RLock()
	defer s.snapshotMutex.RUnlock()
	return s.snapshots[channel]
}

// TriggerManualSync inicia manualmente uma atualização de snapshot
func (s *EntrySnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização de snapshot já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual de snapshot de entradas")
	go s.syncAllChannelSnapshots()
}

// GetStatus retorna o status atual do agendador. Os horários da última
// atualização são lidos sob o mesmo mutex que os protege na escrita.
func (s *EntrySnapshotSyncService) GetStatus() map[string]any {
	s.scheduleMutex.Lock()
	active := s.scheduleActive
	s.scheduleMutex.Unlock()

	s.syncMutex.Lock()
	startedAt := s.lastSyncStartedAt
	completedAt := s.lastSyncCompletedAt
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_interval_seconds":  s.config.IntervalSeconds,
		"schedule_active":        active,
		"last_sync_started_at":   startedAt,
		"last_sync_completed_at": completedAt,
	}
}
