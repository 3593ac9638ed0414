package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/channel-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/channel-dashboard-api/internal/domain"
	"github.com/vfg2006/channel-dashboard-api/pkg/utils"
)

const entriesTable = "entries"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=data_entry.go -destination=mocks/data_entry.go -package=mocks

type DataEntryRepository interface {
	CreateDataEntry(entry *domain.DataEntry) (*domain.DataEntry, error)
	ListDataEntries(channel string) ([]*domain.DataEntry, error)
	GetDataEntryByID(id string) (*domain.DataEntry, error)
	UpdateDataEntry(entry *domain.DataEntry) error
	DeleteDataEntry(id string) error
}

type dataEntryRepository struct {
	conn postgres.Queryer
}

func NewDataEntryRepository(conn *postgres.Connection) DataEntryRepository {
	return &dataEntryRepository{
		conn: conn,
	}
}

func (r *dataEntryRepository) CreateDataEntry(entry *domain.DataEntry) (*domain.DataEntry, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	entry.ID = id
	entry.CreatedAt = time.Now().UTC()

	fieldsJSON, err := json.Marshal(entry.Fields)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar campos dinâmicos")
	}

	queryBuilder := squirrel.
		Insert(entriesTable).
		Columns("id", "channel", "date", "product", "team_member", "fields", "created_at").
		Values(entry.ID, entry.Channel, entry.Date, nullable(entry.Product), nullable(entry.TeamMember), fieldsJSON, entry.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	entrySQL, entryArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.conn.Exec(entrySQL, entryArgs...)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// ListDataEntries retorna as entradas mais recentes primeiro. Canal vazio
// retorna todas as entradas.
func (r *dataEntryRepository) ListDataEntries(channel string) ([]*domain.DataEntry, error) {
	queryBuilder := squirrel.
		Select("id", "channel", "date", "product", "team_member", "fields", "created_at").
		From(entriesTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if channel != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"channel": channel})
	}

	entrySQL, entryArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(entrySQL, entryArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.DataEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *dataEntryRepository) GetDataEntryByID(id string) (*domain.DataEntry, error) {
	queryBuilder := squirrel.
		Select("id", "channel", "date", "product", "team_member", "fields", "created_at").
		From(entriesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	entrySQL, entryArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(entrySQL, entryArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, nil
	}

	return scanEntry(rows)
}

func (r *dataEntryRepository) UpdateDataEntry(entry *domain.DataEntry) error {
	fieldsJSON, err := json.Marshal(entry.Fields)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar campos dinâmicos")
	}

	queryBuilder := squirrel.
		Update(entriesTable).
		Set("date", entry.Date).
		Set("product", nullable(entry.Product)).
		Set("team_member", nullable(entry.TeamMember)).
		Set("fields", fieldsJSON).
		Where(squirrel.Eq{"id": entry.ID}).
		PlaceholderFormat(squirrel.Dollar)

	entrySQL, entryArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.Exec(entrySQL, entryArgs...)
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

func (r *dataEntryRepository) DeleteDataEntry(id string) error {
	queryBuilder := squirrel.
		Delete(entriesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	entrySQL, entryArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.Exec(entrySQL, entryArgs...)
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

func scanEntry(rows *sql.Rows) (*domain.DataEntry, error) {
	var (
		entry      domain.DataEntry
		date       any
		product    sql.NullString
		teamMember sql.NullString
		fieldsJSON []byte
	)

	if err := rows.Scan(
		&entry.ID,
		&entry.Channel,
		&date,
		&product,
		&teamMember,
		&fieldsJSON,
		&entry.CreatedAt,
	); err != nil {
		return nil, err
	}

	entry.Date = dateString(date)
	entry.Product = product.String
	entry.TeamMember = teamMember.String

	entry.Fields = make(map[string]any)
	if len(fieldsJSON) > 0 {
		if err := json.Unmarshal(fieldsJSON, &entry.Fields); err != nil {
			return nil, errors.Wrapf(err, "erro ao decodificar campos da entrada %s", entry.ID)
		}
	}

	return &entry, nil
}

// dateString normaliza a coluna date para YYYY-MM-DD. Todo o filtro de datas
// compara strings ISO lexicograficamente, então a data nunca pode chegar ao
// domínio como RFC3339. Drivers podem devolver a coluna como texto ou como
// time.Time.
func dateString(value any) string {
	switch v := value.(type) {
	case time.Time:
		return v.Format(time.DateOnly)
	case []byte:
		return string(v)
	case string:
		return v
	default:
		return ""
	}
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
