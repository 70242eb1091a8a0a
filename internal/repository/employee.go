package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/geology-api/internal/model"
	"github.com/jackc/pgx/v5"
)

const employeeTable = "employees"

type EmployeeRepository struct {
	db DBTX
}

func NewEmployeeRepository(db DBTX) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) List(ctx context.Context) ([]model.Employee, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, full_name, photo, positions, bio, created_at
		FROM employees
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	employees, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Employee])
	if err != nil {
		return nil, fmt.Errorf("collect employees: %w", err)
	}
	return employees, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*model.Employee, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, full_name, photo, positions, bio, created_at
		FROM employees WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get employee: %w", err)
	}

	employee, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Employee])
	if err != nil {
		return nil, notFound(employeeTable, err)
	}
	return &employee, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, e *model.Employee) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO employees (full_name, photo, positions, bio)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		e.FullName, e.Photo, e.Positions, e.Bio,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepository) Update(ctx context.Context, e *model.Employee) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE employees SET full_name = $2, photo = $3, positions = $4, bio = $5
		WHERE id = $1`,
		e.ID, e.FullName, e.Photo, e.Positions, e.Bio,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return expectOne(employeeTable, tag)
}

func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return expectOne(employeeTable, tag)
}
