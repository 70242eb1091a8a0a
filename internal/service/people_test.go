package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/deppfellow/geology-api/internal/errs"
	"github.com/deppfellow/geology-api/internal/lib/job"
	"github.com/deppfellow/geology-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployees struct {
	rows      map[int64]model.Employee
	updateErr error
}

func (f *fakeEmployees) List(context.Context) ([]model.Employee, error) {
	var out []model.Employee
	for _, e := range f.rows {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployees) GetByID(_ context.Context, id int64) (*model.Employee, error) {
	e, ok := f.rows[id]
	if !ok {
		return nil, errNotFound("employees")
	}
	return &e, nil
}

func (f *fakeEmployees) Create(_ context.Context, e *model.Employee) error {
	e.ID = int64(len(f.rows) + 1)
	f.rows[e.ID] = *e
	return nil
}

func (f *fakeEmployees) Update(_ context.Context, e *model.Employee) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.rows[e.ID] = *e
	return nil
}

func (f *fakeEmployees) Delete(_ context.Context, id int64) error {
	delete(f.rows, id)
	return nil
}

func TestEmployeeService_PhotoKey(t *testing.T) {
	storage, fs := memStorage()
	employees := &fakeEmployees{rows: map[int64]model.Employee{}}
	svc := NewEmployeeService(employees, storage)
	ctx := context.Background()

	created, err := svc.Create(ctx, &model.CreateEmployeeRequest{
		FullName: "John Smith",
		Photo:    pngUpload(t, "IMG_0001.PNG"),
	})
	require.NoError(t, err)
	require.NotNil(t, created.Photo)
	assert.Equal(t, "employees/john-smith-1.png", *created.Photo)
	assert.Equal(t, "employees/john-smith-1.png", *employees.rows[1].Photo)

	updated, err := svc.Update(ctx, &model.UpdateEmployeeRequest{
		ID:       1,
		FullName: ptr("Jane Doe"),
		Photo:    pngUpload(t, "new.png"),
	})
	require.NoError(t, err)
	assert.Equal(t, "employees/jane-doe-1.png", *updated.Photo)
	assert.Equal(t, []string{"/employees/jane-doe-1.png"}, storedFiles(t, fs))
}

func TestEmployeeService_RenameMovesPhoto(t *testing.T) {
	storage, fs := memStorage()
	employees := &fakeEmployees{rows: map[int64]model.Employee{}}
	svc := NewEmployeeService(employees, storage)
	ctx := context.Background()

	_, err := svc.Create(ctx, &model.CreateEmployeeRequest{
		FullName: "John Smith",
		Photo:    pngUpload(t, "portrait.png"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, &model.UpdateEmployeeRequest{ID: 1, FullName: ptr("Jane Doe")})
	require.NoError(t, err)
	assert.Equal(t, "employees/jane-doe-1.png", *updated.Photo)
	assert.Equal(t, "employees/jane-doe-1.png", *employees.rows[1].Photo)
	assert.Equal(t, []string{"/employees/jane-doe-1.png"}, storedFiles(t, fs))

	bio := "Drilling engineer"
	_, err = svc.Update(ctx, &model.UpdateEmployeeRequest{ID: 1, Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, []string{"/employees/jane-doe-1.png"}, storedFiles(t, fs))
}

func TestEmployeeService_FailedUpdateRemovesNewPhoto(t *testing.T) {
	storage, fs := memStorage()
	employees := &fakeEmployees{rows: map[int64]model.Employee{}}
	svc := NewEmployeeService(employees, storage)
	ctx := context.Background()

	_, err := svc.Create(ctx, &model.CreateEmployeeRequest{
		FullName: "John Smith",
		Photo:    pngUpload(t, "portrait.png"),
	})
	require.NoError(t, err)
	employees.updateErr = errBoom

	_, err = svc.Update(ctx, &model.UpdateEmployeeRequest{
		ID:       1,
		FullName: ptr("Jane Doe"),
		Photo:    pngUpload(t, "new.png"),
	})
	require.ErrorIs(t, err, errBoom)

	_, err = svc.Update(ctx, &model.UpdateEmployeeRequest{ID: 1, FullName: ptr("Ann Lee")})
	require.ErrorIs(t, err, errBoom)

	assert.Equal(t, "employees/john-smith-1.png", *employees.rows[1].Photo)
	assert.Equal(t, []string{"/employees/john-smith-1.png"}, storedFiles(t, fs))
}

func TestEmployeeService_RejectsBadPhoto(t *testing.T) {
	storage, fs := memStorage()
	employees := &fakeEmployees{rows: map[int64]model.Employee{}}
	svc := NewEmployeeService(employees, storage)

	_, err := svc.Create(context.Background(), &model.CreateEmployeeRequest{
		FullName: "John Smith",
		Photo:    &model.Upload{Filename: "cv.docx", Data: []byte("PK")},
	})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "photo", httpErr.Errors[0].Field)
	assert.Empty(t, employees.rows)
	assert.Empty(t, storedFiles(t, fs))
}

type fakeContacts struct {
	created []model.ContactMessage
}

func (f *fakeContacts) Create(_ context.Context, m *model.ContactMessage) error {
	m.ID = int64(len(f.created) + 1)
	f.created = append(f.created, *m)
	return nil
}

func TestContactService_Create(t *testing.T) {
	contacts := &fakeContacts{}
	queue := &fakeQueue{}
	svc := NewContactService(contacts, queue)

	msg, err := svc.Create(context.Background(), &model.CreateContactMessageRequest{
		Email:   "client@example.com",
		Message: "Need a quote",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), msg.ID)

	require.Len(t, queue.tasks, 1)
	assert.Equal(t, job.TaskContactMessage, queue.tasks[0].Type())

	var payload job.ContactEmailPayload
	require.NoError(t, json.Unmarshal(queue.tasks[0].Payload(), &payload))
	assert.Equal(t, "client@example.com", payload.Contact.From)
}

func TestContactService_QueueFailureIsSwallowed(t *testing.T) {
	contacts := &fakeContacts{}
	svc := NewContactService(contacts, &fakeQueue{err: errBoom})

	_, err := svc.Create(context.Background(), &model.CreateContactMessageRequest{Email: "a@b.c", Message: "hi"})
	require.NoError(t, err)
	assert.Len(t, contacts.created, 1)
}
