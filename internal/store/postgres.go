package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"groupadmin/server/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const groupColumns = "id, name, description, disabled, mute, call_no, created_at, updated_at"

// PostgresStore persists groups in the groups table
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore wraps an open pgx pool
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) List(ctx context.Context, q Query) (*models.GroupPage, error) {
	q.Normalize()

	where, args := buildFilter(q)

	var total int
	err := s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM groups"+where, args...).Scan(&total)
	if err != nil {
		return nil, fmt.Errorf("count groups: %w", err)
	}

	args = append(args, q.PageSize, q.Offset())
	query := "SELECT " + groupColumns + " FROM groups" + where + orderClause(q.Sort) +
		" LIMIT $" + strconv.Itoa(len(args)-1) + " OFFSET $" + strconv.Itoa(len(args))

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()

	groups := []models.Group{}
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		groups = append(groups, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}

	return &models.GroupPage{
		Groups: groups,
		Pagination: models.Pagination{
			Current:  q.Current,
			PageSize: q.PageSize,
			Total:    total,
		},
	}, nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (*models.Group, error) {
	row := s.pool.QueryRow(ctx, "SELECT "+groupColumns+" FROM groups WHERE id = $1", id)
	return s.one(row)
}

func (s *PostgresStore) Create(ctx context.Context, req models.CreateGroupRequest) (*models.Group, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}

	now := time.Now()
	row := s.pool.QueryRow(ctx, `
		INSERT INTO groups (id, name, description, call_no, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+groupColumns,
		uuid.New().String(), req.Name, req.Description, req.CallNo, now, now)
	return s.one(row)
}

func (s *PostgresStore) Update(ctx context.Context, id string, req models.UpdateGroupRequest) (*models.Group, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}

	row := s.pool.QueryRow(ctx, `
		UPDATE groups SET name = $1, description = $2, updated_at = $3
		WHERE id = $4
		RETURNING `+groupColumns,
		req.Name, req.Description, time.Now(), id)
	return s.one(row)
}

func (s *PostgresStore) Remove(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result, err := s.pool.Exec(ctx, "DELETE FROM groups WHERE id = ANY($1)", ids)
	if err != nil {
		return 0, fmt.Errorf("remove groups: %w", err)
	}
	return int(result.RowsAffected()), nil
}

func (s *PostgresStore) SetFlag(ctx context.Context, id string, flag models.Flag, value bool) (*models.Group, error) {
	if !flag.Valid() {
		return nil, fmt.Errorf("unknown flag %q", flag)
	}

	// flag is validated above so the column name is never user text
	query := "UPDATE groups SET " + string(flag) + " = $1, updated_at = $2 WHERE id = $3 RETURNING " + groupColumns
	return s.one(s.pool.QueryRow(ctx, query, value, time.Now(), id))
}

func (s *PostgresStore) one(row pgx.Row) (*models.Group, error) {
	g, err := scanGroup(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan group: %w", err)
	}
	return g, nil
}

func scanGroup(row pgx.Row) (*models.Group, error) {
	var g models.Group
	err := row.Scan(&g.ID, &g.Name, &g.Description, &g.Disabled, &g.Mute,
		&g.CallNo, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// orderClause renders ORDER BY with id as the final key so equal sort
// values page deterministically
func orderClause(s Sort) string {
	if s.IsZero() {
		return " ORDER BY updated_at DESC, id"
	}

	direction := "ASC"
	if s.Order == Descend {
		direction = "DESC"
	}
	return " ORDER BY " + s.Column() + " " + direction + ", id"
}

// buildFilter renders the WHERE clause shared by the count and page queries
func buildFilter(q Query) (string, []interface{}) {
	var conds []string
	var args []interface{}

	if q.Name != "" {
		args = append(args, "%"+q.Name+"%")
		conds = append(conds, "name ILIKE $"+strconv.Itoa(len(args)))
	}
	if q.Disabled != nil {
		args = append(args, *q.Disabled)
		conds = append(conds, "disabled = $"+strconv.Itoa(len(args)))
	}
	if q.Mute != nil {
		args = append(args, *q.Mute)
		conds = append(conds, "mute = $"+strconv.Itoa(len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
