package model

import "github.com/deppfellow/geology-api/internal/validation"

type EmployeeRequest struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

func (r *EmployeeRequest) Validate() error {
	return validation.Struct(r)
}

type CreateEmployeeRequest struct {
	FullName  string  `json:"full_name" form:"full_name" validate:"required,max=255"`
	Positions string  `json:"positions" form:"positions"`
	Bio       string  `json:"bio" form:"bio"`
	Photo     *Upload `json:"-"`
}

func (r *CreateEmployeeRequest) Validate() error {
	return validation.Struct(r)
}

type UpdateEmployeeRequest struct {
	ID        int64   `param:"id" json:"-" validate:"required,gt=0"`
	FullName  *string `json:"full_name" form:"full_name" validate:"omitnil,min=1,max=255"`
	Positions *string `json:"positions" form:"positions"`
	Bio       *string `json:"bio" form:"bio"`
	Photo     *Upload `json:"-"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	return validation.Struct(r)
}

// ListEmployeesRequest takes no parameters; the list is not paginated.
type ListEmployeesRequest struct{}

func (r *ListEmployeesRequest) Validate() error {
	return nil
}
