package department

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrlite/crm-backend-go/internal/domain/department"
	"github.com/hrlite/crm-backend-go/internal/pkg/validator"
	"github.com/hrlite/crm-backend-go/internal/repository/sqlite"
	"github.com/hrlite/crm-backend-go/internal/repository/sqlite/sqlitetest"
)

func newDepartmentService(t *testing.T) department.DepartmentService {
	t.Helper()

	db := sqlitetest.NewTestDatabase(t)
	sqlitetest.SeedDefaults(t, db)

	return NewDepartmentService(sqlite.NewDepartmentRepository(db))
}

func TestDepartmentService_List_SeededDepartments(t *testing.T) {
	ctx := context.Background()
	svc := newDepartmentService(t)

	departments, err := svc.ListDepartments(ctx)
	require.NoError(t, err)
	require.Len(t, departments, 4)

	names := make([]string, 0, len(departments))
	total := 0
	for _, dept := range departments {
		names = append(names, dept.Name)
		total += dept.EmployeeCount
	}
	assert.Contains(t, names, "Finance")
	assert.Contains(t, names, "Human Resources")
	assert.Contains(t, names, "Information Technology")
	assert.Contains(t, names, "Marketing")
	assert.Equal(t, 5, total, "seeded headcounts must sum to the employee count")
}

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()
	svc := newDepartmentService(t)

	head := "Laura Chen"
	created, err := svc.CreateDepartment(ctx, department.CreateDepartmentRequest{
		Name: "Operations",
		Head: &head,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Operations", created.Name)
	require.NotNil(t, created.Head)
	assert.Equal(t, "Laura Chen", *created.Head)
	assert.Equal(t, 0, created.EmployeeCount)

	departments, err := svc.ListDepartments(ctx)
	require.NoError(t, err)
	assert.Len(t, departments, 5)
}

func TestDepartmentService_Create_WithoutHead(t *testing.T) {
	ctx := context.Background()
	svc := newDepartmentService(t)

	created, err := svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "Legal"})
	require.NoError(t, err)
	assert.Nil(t, created.Head)
}

func TestDepartmentService_Create_DuplicateName(t *testing.T) {
	ctx := context.Background()
	svc := newDepartmentService(t)

	_, err := svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "Finance"})
	assert.ErrorIs(t, err, department.ErrDepartmentNameExists)
}

func TestDepartmentService_Create_MissingName(t *testing.T) {
	ctx := context.Background()
	svc := newDepartmentService(t)

	_, err := svc.CreateDepartment(ctx, department.CreateDepartmentRequest{})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}
