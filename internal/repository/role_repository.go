package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/admin-console/internal/domain"
)

// RoleRepository manages persistence for roles.
type RoleRepository interface {
	Create(ctx context.Context, role *domain.Role) error
	Update(ctx context.Context, role *domain.Role) error
	GetByID(ctx context.Context, id int64) (*domain.Role, error)
	List(ctx context.Context) ([]domain.Role, error)
}

type roleRepository struct {
	pool *pgxpool.Pool
}

// NewRoleRepository constructs repository.
func NewRoleRepository(pool *pgxpool.Pool) RoleRepository {
	return &roleRepository{pool: pool}
}

func (r *roleRepository) Create(ctx context.Context, role *domain.Role) error {
	const query = `
        INSERT INTO roles (name, description, onboarding, employee_updates, offboarding, manage_modify, admin, payroll, api_report)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		role.Name,
		role.Description,
		role.Onboarding,
		role.EmployeeUpdates,
		role.Offboarding,
		role.ManageModify,
		role.Admin,
		role.Payroll,
		role.APIReport,
	).Scan(&role.ID, &role.CreatedAt, &role.UpdatedAt)
}

func (r *roleRepository) Update(ctx context.Context, role *domain.Role) error {
	const query = `
        UPDATE roles SET name=$1, description=$2, onboarding=$3, employee_updates=$4, offboarding=$5,
            manage_modify=$6, admin=$7, payroll=$8, api_report=$9, updated_at=NOW()
        WHERE id=$10`
	cmd, err := r.pool.Exec(ctx, query,
		role.Name,
		role.Description,
		role.Onboarding,
		role.EmployeeUpdates,
		role.Offboarding,
		role.ManageModify,
		role.Admin,
		role.Payroll,
		role.APIReport,
		role.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *roleRepository) GetByID(ctx context.Context, id int64) (*domain.Role, error) {
	const query = `
        SELECT id, name, description, onboarding, employee_updates, offboarding, manage_modify, admin, payroll, api_report, created_at, updated_at
        FROM roles WHERE id=$1`
	var role domain.Role
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&role.ID,
		&role.Name,
		&role.Description,
		&role.Onboarding,
		&role.EmployeeUpdates,
		&role.Offboarding,
		&role.ManageModify,
		&role.Admin,
		&role.Payroll,
		&role.APIReport,
		&role.CreatedAt,
		&role.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) List(ctx context.Context) ([]domain.Role, error) {
	const query = `
        SELECT id, name, description, onboarding, employee_updates, offboarding, manage_modify, admin, payroll, api_report, created_at, updated_at
        FROM roles ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Role
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(
			&role.ID,
			&role.Name,
			&role.Description,
			&role.Onboarding,
			&role.EmployeeUpdates,
			&role.Offboarding,
			&role.ManageModify,
			&role.Admin,
			&role.Payroll,
			&role.APIReport,
			&role.CreatedAt,
			&role.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, role)
	}
	return result, rows.Err()
}
