package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/channel-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/channel-dashboard-api/internal/domain"
	"github.com/vfg2006/channel-dashboard-api/pkg/utils"
)

const teamMembersTable = "team_members"

//go:generate mockgen -source=team_member.go -destination=mocks/team_member.go -package=mocks

type TeamMemberRepository interface {
	CreateTeamMember(name string) (*domain.TeamMember, error)
	ListTeamMembers() ([]*domain.TeamMember, error)
	DeleteTeamMember(id string) error
}

type teamMemberRepository struct {
	conn postgres.Queryer
}

func NewTeamMemberRepository(conn *postgres.Connection) TeamMemberRepository {
	return &teamMemberRepository{
		conn: conn,
	}
}

func (r *teamMemberRepository) CreateTeamMember(name string) (*domain.TeamMember, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	member := &domain.TeamMember{
		ID:        id,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	queryBuilder := squirrel.
		Insert(teamMembersTable).
		Columns("id", "name", "created_at").
		Values(member.ID, member.Name, member.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	memberSQL, memberArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.conn.Exec(memberSQL, memberArgs...)
	if err != nil {
		return nil, err
	}

	return member, nil
}

func (r *teamMemberRepository) ListTeamMembers() ([]*domain.TeamMember, error) {
	queryBuilder := squirrel.
		Select("id", "name", "created_at").
		From(teamMembersTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	memberSQL, memberArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(memberSQL, memberArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*domain.TeamMember
	for rows.Next() {
		var member domain.TeamMember
		if err := rows.Scan(&member.ID, &member.Name, &member.CreatedAt); err != nil {
			return nil, err
		}
		members = append(members, &member)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}

func (r *teamMemberRepository) DeleteTeamMember(id string) error {
	queryBuilder := squirrel.
		Delete(teamMembersTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	memberSQL, memberArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.Exec(memberSQL, memberArgs...)
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
