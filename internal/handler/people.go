package handler

import (
	"github.com/deppfellow/geology-api/internal/model"
	"github.com/deppfellow/geology-api/internal/serializer"
	"github.com/deppfellow/geology-api/internal/server"
	"github.com/deppfellow/geology-api/internal/service"
	"github.com/labstack/echo/v4"
)

type EmployeeHandler struct {
	Handler
	employees *service.EmployeeService
}

func NewEmployeeHandler(s *server.Server, employees *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{Handler: NewHandler(s), employees: employees}
}

func (h *EmployeeHandler) List(c echo.Context, _ *model.ListEmployeesRequest) ([]serializer.Employee, error) {
	employees, err := h.employees.List(c.Request().Context())
	if err != nil {
		return nil, err
	}
	return h.serializer(c).Employees(employees), nil
}

func (h *EmployeeHandler) Get(c echo.Context, req *model.EmployeeRequest) (serializer.Employee, error) {
	e, err := h.employees.Get(c.Request().Context(), req.ID)
	if err != nil {
		return serializer.Employee{}, err
	}
	return h.serializer(c).Employee(e), nil
}

func (h *EmployeeHandler) Create(c echo.Context, req *model.CreateEmployeeRequest) (serializer.Employee, error) {
	photo, err := formUpload(c, "photo")
	if err != nil {
		return serializer.Employee{}, err
	}
	req.Photo = photo

	e, err := h.employees.Create(c.Request().Context(), req)
	if err != nil {
		return serializer.Employee{}, err
	}
	return h.serializer(c).Employee(e), nil
}

func (h *EmployeeHandler) Update(c echo.Context, req *model.UpdateEmployeeRequest) (serializer.Employee, error) {
	photo, err := formUpload(c, "photo")
	if err != nil {
		return serializer.Employee{}, err
	}
	req.Photo = photo

	e, err := h.employees.Update(c.Request().Context(), req)
	if err != nil {
		return serializer.Employee{}, err
	}
	return h.serializer(c).Employee(e), nil
}

func (h *EmployeeHandler) Delete(c echo.Context, req *model.EmployeeRequest) error {
	return h.employees.Delete(c.Request().Context(), req.ID)
}

type ContactHandler struct {
	Handler
	contacts *service.ContactService
}

func NewContactHandler(s *server.Server, contacts *service.ContactService) *ContactHandler {
	return &ContactHandler{Handler: NewHandler(s), contacts: contacts}
}

func (h *ContactHandler) Create(c echo.Context, req *model.CreateContactMessageRequest) (serializer.ContactMessage, error) {
	m, err := h.contacts.Create(c.Request().Context(), req)
	if err != nil {
		return serializer.ContactMessage{}, err
	}
	return serializer.ContactMessageOf(m), nil
}
