package employee

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrlite/crm-backend-go/internal/domain/department"
	"github.com/hrlite/crm-backend-go/internal/domain/employee"
	"github.com/hrlite/crm-backend-go/internal/pkg/validator"
	"github.com/hrlite/crm-backend-go/internal/repository/sqlite"
	"github.com/hrlite/crm-backend-go/internal/repository/sqlite/sqlitetest"
)

type employeeTestEnv struct {
	svc            employee.EmployeeService
	departmentRepo department.DepartmentRepository
}

func newEmployeeTestEnv(t *testing.T) employeeTestEnv {
	t.Helper()

	db := sqlitetest.NewTestDatabase(t)
	sqlitetest.SeedDefaults(t, db)

	employeeRepo := sqlite.NewEmployeeRepository(db)
	departmentRepo := sqlite.NewDepartmentRepository(db)

	return employeeTestEnv{
		svc:            NewEmployeeService(db, employeeRepo, departmentRepo),
		departmentRepo: departmentRepo,
	}
}

func departmentCount(t *testing.T, repo department.DepartmentRepository, name string) int {
	t.Helper()
	dept, err := repo.GetByName(context.Background(), name)
	require.NoError(t, err)
	return dept.EmployeeCount
}

func TestEmployeeService_NextCode_AfterSeed(t *testing.T) {
	ctx := context.Background()
	env := newEmployeeTestEnv(t)

	next, err := env.svc.NextCode(ctx)
	require.NoError(t, err)
	assert.Equal(t, "EMP006", next.EmployeeCode)
}

func TestEmployeeService_Create_IncrementsDepartmentCount(t *testing.T) {
	ctx := context.Background()
	env := newEmployeeTestEnv(t)

	before := departmentCount(t, env.departmentRepo, "Finance")

	finance, err := env.departmentRepo.GetByName(ctx, "Finance")
	require.NoError(t, err)

	created, err := env.svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		Name:         "Nina Test",
		Email:        "nina@company.com",
		DepartmentID: finance.ID,
		Designation:  "Auditor",
		Salary:       decimal.NewFromInt(45000),
	})
	require.NoError(t, err)
	assert.Equal(t, "EMP006", created.EmployeeCode)
	assert.Equal(t, "Active", created.Status)

	assert.Equal(t, before+1, departmentCount(t, env.departmentRepo, "Finance"))
}

func TestEmployeeService_Create_ValidationFailures(t *testing.T) {
	ctx := context.Background()
	env := newEmployeeTestEnv(t)

	cases := []struct {
		name string
		req  employee.CreateEmployeeRequest
	}{
		{"missing name", employee.CreateEmployeeRequest{Email: "a@b.co", DepartmentID: 1, Designation: "Dev", Salary: decimal.NewFromInt(1)}},
		{"bad email", employee.CreateEmployeeRequest{Name: "A", Email: "not-an-email", DepartmentID: 1, Designation: "Dev", Salary: decimal.NewFromInt(1)}},
		{"missing department", employee.CreateEmployeeRequest{Name: "A", Email: "a@b.co", Designation: "Dev", Salary: decimal.NewFromInt(1)}},
		{"zero salary", employee.CreateEmployeeRequest{Name: "A", Email: "a@b.co", DepartmentID: 1, Designation: "Dev"}},
		{"negative salary", employee.CreateEmployeeRequest{Name: "A", Email: "a@b.co", DepartmentID: 1, Designation: "Dev", Salary: decimal.NewFromInt(-5)}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := env.svc.CreateEmployee(ctx, c.req)
			var verrs validator.ValidationErrors
			assert.ErrorAs(t, err, &verrs)
		})
	}
}

func TestEmployeeService_Create_UnknownDepartment(t *testing.T) {
	ctx := context.Background()
	env := newEmployeeTestEnv(t)

	_, err := env.svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		Name:         "A",
		Email:        "a@b.co",
		DepartmentID: 999,
		Designation:  "Dev",
		Salary:       decimal.NewFromInt(1000),
	})
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}

func TestEmployeeService_Delete_DecrementsDepartmentCount(t *testing.T) {
	ctx := context.Background()
	env := newEmployeeTestEnv(t)

	employees, err := env.svc.ListEmployees(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, employees)

	// EMP001 Ahmed Ali, Finance.
	target := employees[0]
	before := departmentCount(t, env.departmentRepo, target.DepartmentName)

	require.NoError(t, env.svc.DeleteEmployee(ctx, target.ID))

	assert.Equal(t, before-1, departmentCount(t, env.departmentRepo, target.DepartmentName))

	after, err := env.svc.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(employees)-1)
	for _, emp := range after {
		assert.NotEqual(t, target.ID, emp.ID)
	}
}

func TestEmployeeService_Delete_UnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	env := newEmployeeTestEnv(t)

	err := env.svc.DeleteEmployee(ctx, 12345)
	assert.NoError(t, err)

	employees, err := env.svc.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Len(t, employees, 5)
}

func TestEmployeeService_Update_MovesHeadcountBetweenDepartments(t *testing.T) {
	ctx := context.Background()
	env := newEmployeeTestEnv(t)

	employees, err := env.svc.ListEmployees(ctx)
	require.NoError(t, err)
	target := employees[0] // Finance

	marketing, err := env.departmentRepo.GetByName(ctx, "Marketing")
	require.NoError(t, err)

	financeBefore := departmentCount(t, env.departmentRepo, "Finance")
	marketingBefore := departmentCount(t, env.departmentRepo, "Marketing")

	updated, err := env.svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{
		ID:           target.ID,
		Name:         target.Name,
		Email:        target.Email,
		DepartmentID: marketing.ID,
		Designation:  "Brand Accountant",
		Salary:       decimal.NewFromInt(51000),
		Status:       "Active",
	})
	require.NoError(t, err)
	assert.Equal(t, "Marketing", updated.DepartmentName)
	assert.Equal(t, target.EmployeeCode, updated.EmployeeCode, "code must survive updates")

	assert.Equal(t, financeBefore-1, departmentCount(t, env.departmentRepo, "Finance"))
	assert.Equal(t, marketingBefore+1, departmentCount(t, env.departmentRepo, "Marketing"))
}

func TestEmployeeService_List_OrderedByCode(t *testing.T) {
	ctx := context.Background()
	env := newEmployeeTestEnv(t)

	employees, err := env.svc.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 5)

	for i := 1; i < len(employees); i++ {
		assert.Less(t, employees[i-1].EmployeeCode, employees[i].EmployeeCode)
	}
}
