package service

import (
	"context"
	"path/filepath"

	"github.com/deppfellow/geology-api/internal/lib/media"
	"github.com/deppfellow/geology-api/internal/model"
	"github.com/rs/zerolog"
)

type EmployeeService struct {
	employees EmployeeStore
	storage   media.Storage
}

func NewEmployeeService(employees EmployeeStore, storage media.Storage) *EmployeeService {
	return &EmployeeService{employees: employees, storage: storage}
}

func (s *EmployeeService) List(ctx context.Context) ([]model.Employee, error) {
	return s.employees.List(ctx)
}

func (s *EmployeeService) Get(ctx context.Context, id int64) (*model.Employee, error) {
	return s.employees.GetByID(ctx, id)
}

// Create inserts the employee first because the photo key embeds the id.
func (s *EmployeeService) Create(ctx context.Context, req *model.CreateEmployeeRequest) (*model.Employee, error) {
	var contentType string
	if req.Photo != nil {
		var err error
		if contentType, err = checkUpload("photo", req.Photo); err != nil {
			return nil, err
		}
	}

	employee := &model.Employee{FullName: req.FullName, Positions: req.Positions, Bio: req.Bio}
	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, err
	}

	if req.Photo != nil {
		if err := s.savePhoto(ctx, employee, req.Photo, contentType); err != nil {
			if delErr := s.employees.Delete(ctx, employee.ID); delErr != nil {
				zerolog.Ctx(ctx).Error().Err(delErr).Int64("employee_id", employee.ID).Msg("failed to roll back employee")
			}
			return nil, err
		}
	}

	zerolog.Ctx(ctx).Info().Int64("employee_id", employee.ID).Msg("employee created")
	return employee, nil
}

// Update applies the non-nil fields. The photo always lives under the key
// derived from the current name: a new upload is stored there, and a rename
// without one moves the existing file.
func (s *EmployeeService) Update(ctx context.Context, req *model.UpdateEmployeeRequest) (*model.Employee, error) {
	employee, err := s.employees.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	var contentType string
	if req.Photo != nil {
		if contentType, err = checkUpload("photo", req.Photo); err != nil {
			return nil, err
		}
	}

	if req.FullName != nil {
		employee.FullName = *req.FullName
	}
	if req.Positions != nil {
		employee.Positions = *req.Positions
	}
	if req.Bio != nil {
		employee.Bio = *req.Bio
	}

	if req.Photo != nil {
		if err := s.savePhoto(ctx, employee, req.Photo, contentType); err != nil {
			return nil, err
		}
		return employee, nil
	}

	if key, ok := s.copyRenamedPhoto(ctx, employee); ok {
		if err := s.setPhoto(ctx, employee, key); err != nil {
			return nil, err
		}
		return employee, nil
	}

	if err := s.employees.Update(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.employees.Delete(ctx, id); err != nil {
		return err
	}
	if employee.Photo != nil {
		removeObjects(ctx, s.storage, *employee.Photo)
	}
	return nil
}

// savePhoto stores up under the employee's canonical key and points the row
// at it.
func (s *EmployeeService) savePhoto(ctx context.Context, e *model.Employee, up *model.Upload, contentType string) error {
	key := media.EmployeePhotoKey(e.FullName, e.ID, filepath.Ext(up.Filename))
	if err := s.storage.Save(ctx, key, up.Data, contentType); err != nil {
		return err
	}
	return s.setPhoto(ctx, e, key)
}

// copyRenamedPhoto copies the current photo to the key matching the
// employee's name. ok is false when there is nothing to move or the copy
// failed; the employee then keeps the old key.
func (s *EmployeeService) copyRenamedPhoto(ctx context.Context, e *model.Employee) (key string, ok bool) {
	if e.Photo == nil {
		return "", false
	}
	key = media.EmployeePhotoKey(e.FullName, e.ID, filepath.Ext(*e.Photo))
	if key == *e.Photo {
		return "", false
	}
	if err := s.storage.Copy(ctx, *e.Photo, key); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Int64("employee_id", e.ID).Msg("failed to move photo after rename")
		return "", false
	}
	return key, true
}

// setPhoto points the row at an already stored key. The previous file is
// removed once the row is updated; if the update fails the new file is
// removed instead, unless it overwrote the previous one in place.
func (s *EmployeeService) setPhoto(ctx context.Context, e *model.Employee, key string) error {
	var old string
	if e.Photo != nil {
		old = *e.Photo
	}
	e.Photo = &key

	if err := s.employees.Update(ctx, e); err != nil {
		if key != old {
			removeObjects(ctx, s.storage, key)
		}
		return err
	}
	if old != key {
		removeObjects(ctx, s.storage, old)
	}
	return nil
}
