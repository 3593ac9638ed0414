package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/channel-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/channel-dashboard-api/internal/domain"
	"github.com/vfg2006/channel-dashboard-api/pkg/utils"
)

const targetsTable = "targets"

// pq error code para violação de índice único
const uniqueViolationCode = "23505"

// ErrDuplicateTarget indica que já existe uma meta para o par canal+produto.
// A unicidade é garantida pelo índice único da tabela, não por verificação no
// cliente — duas criações concorrentes nunca produzem duplicata.
var ErrDuplicateTarget = errors.New("já existe uma meta para este canal e produto")

//go:generate mockgen -source=target.go -destination=mocks/target.go -package=mocks

type TargetRepository interface {
	CreateTarget(target *domain.Target) (*domain.Target, error)
	ListTargets() ([]*domain.Target, error)
	DeleteTarget(id string) error
}

type targetRepository struct {
	conn postgres.Queryer
}

func NewTargetRepository(conn *postgres.Connection) TargetRepository {
	return &targetRepository{
		conn: conn,
	}
}

func (r *targetRepository) CreateTarget(target *domain.Target) (*domain.Target, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	target.ID = id
	target.CreatedAt = time.Now().UTC()

	queryBuilder := squirrel.
		Insert(targetsTable).
		Columns("id", "channel", "product", "amount", "created_at").
		Values(target.ID, target.Channel, target.Product, target.Amount, target.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	targetSQL, targetArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.conn.Exec(targetSQL, targetArgs...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return nil, ErrDuplicateTarget
		}
		return nil, err
	}

	return target, nil
}

// ListTargets retorna as metas mais recentes primeiro.
func (r *targetRepository) ListTargets() ([]*domain.Target, error) {
	queryBuilder := squirrel.
		Select("id", "channel", "product", "amount", "created_at").
		From(targetsTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	targetSQL, targetArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(targetSQL, targetArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var targets []*domain.Target
	for rows.Next() {
		var target domain.Target
		if err := rows.Scan(
			&target.ID,
			&target.Channel,
			&target.Product,
			&target.Amount,
			&target.CreatedAt,
		); err != nil {
			return nil, err
		}
		targets = append(targets, &target)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return targets, nil
}

func (r *targetRepository) DeleteTarget(id string) error {
	queryBuilder := squirrel.
		Delete(targetsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	targetSQL, targetArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.Exec(targetSQL, targetArgs...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
