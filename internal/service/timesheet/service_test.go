package timesheet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/oredipendenti/backend-go/internal/domain/employee"
	"github.com/oredipendenti/backend-go/internal/domain/timesheet"
	"github.com/oredipendenti/backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDayRepo struct {
	days map[string]timesheet.Day // keyed by employeeID + "/" + date
}

func newFakeDayRepo() *fakeDayRepo {
	return &fakeDayRepo{days: make(map[string]timesheet.Day)}
}

func (f *fakeDayRepo) GetDay(_ context.Context, employeeID, date string) (*timesheet.Day, error) {
	d, ok := f.days[employeeID+"/"+date]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (f *fakeDayRepo) GetMonth(_ context.Context, employeeID string, year, month int) (map[string]timesheet.Day, error) {
	result := make(map[string]timesheet.Day)
	for _, d := range f.days {
		if d.EmployeeID == employeeID && matchesMonth(d.Date, year, month) {
			result[d.Date] = d
		}
	}
	return result, nil
}

func (f *fakeDayRepo) GetMonthAll(_ context.Context, year, month int) (map[string]map[string]timesheet.Day, error) {
	result := make(map[string]map[string]timesheet.Day)
	for _, d := range f.days {
		if !matchesMonth(d.Date, year, month) {
			continue
		}
		if _, ok := result[d.EmployeeID]; !ok {
			result[d.EmployeeID] = make(map[string]timesheet.Day)
		}
		result[d.EmployeeID][d.Date] = d
	}
	return result, nil
}

func (f *fakeDayRepo) SaveDay(_ context.Context, day timesheet.Day) error {
	f.days[day.EmployeeID+"/"+day.Date] = day
	return nil
}

func matchesMonth(date string, year, month int) bool {
	return strings.HasPrefix(date, fmt.Sprintf("%04d-%02d", year, month))
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees = append(f.employees, emp)
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByName(_ context.Context, name string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Name == name {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func newService(dayRepo *fakeDayRepo, empRepo *fakeEmployeeRepo) timesheet.TimesheetService {
	return NewTimesheetService(nil, dayRepo, empRepo)
}

func TestSaveDayMergesIntoExistingDay(t *testing.T) {
	dayRepo := newFakeDayRepo()
	dayRepo.days["anna/2025-03-10"] = timesheet.Day{
		EmployeeID: "anna",
		Date:       "2025-03-10",
		Activities: []timesheet.Activity{
			{Name: "Pulizie uffici", Category: timesheet.CategoryOffices, Minutes: 90, Headcount: 1, Multiplier: 1},
		},
	}
	svc := newService(dayRepo, &fakeEmployeeRepo{})

	resp, err := svc.SaveDay(context.Background(), "anna", "2025-03-10", timesheet.SaveDayRequest{
		Activities: []timesheet.ActivityInput{
			{Name: "Pulizie uffici", Category: timesheet.CategoryOffices, Minutes: 30, Headcount: 2, Multiplier: 1},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Activities, 1)
	assert.Equal(t, 120, resp.Activities[0].Minutes)
	assert.Equal(t, 2, resp.Activities[0].Headcount)
	assert.Equal(t, 1, resp.Activities[0].Multiplier)

	stored := dayRepo.days["anna/2025-03-10"]
	require.Len(t, stored.Activities, 1)
	assert.Equal(t, 120, stored.Activities[0].Minutes)
}

func TestSaveDayRejectsInvalidDate(t *testing.T) {
	svc := newService(newFakeDayRepo(), &fakeEmployeeRepo{})

	_, err := svc.SaveDay(context.Background(), "anna", "10-03-2025", timesheet.SaveDayRequest{
		Activities: []timesheet.ActivityInput{{Name: "Pulizie", Minutes: 30}},
	})
	assert.ErrorIs(t, err, timesheet.ErrInvalidDate)
}

func TestSaveDayRequiresActivityOnWorkingDay(t *testing.T) {
	svc := newService(newFakeDayRepo(), &fakeEmployeeRepo{})

	_, err := svc.SaveDay(context.Background(), "anna", "2025-03-10", timesheet.SaveDayRequest{})
	var verrs validator.ValidationErrors
	assert.True(t, errors.As(err, &verrs))
}

func TestSaveDayAcceptsFlagDayWithoutActivities(t *testing.T) {
	dayRepo := newFakeDayRepo()
	svc := newService(dayRepo, &fakeEmployeeRepo{})

	resp, err := svc.SaveDay(context.Background(), "anna", "2025-03-10", timesheet.SaveDayRequest{Sick: true})
	require.NoError(t, err)
	assert.Equal(t, "sick", resp.DayType)
	assert.Zero(t, resp.TotalMinutes)
}

func TestSaveDayDropsUnnamedActivities(t *testing.T) {
	dayRepo := newFakeDayRepo()
	svc := newService(dayRepo, &fakeEmployeeRepo{})

	resp, err := svc.SaveDay(context.Background(), "anna", "2025-03-10", timesheet.SaveDayRequest{
		Activities: []timesheet.ActivityInput{
			{Name: "Pulizie uffici", Minutes: 60},
			{Name: "   ", Minutes: 45},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Activities, 1)
	assert.Equal(t, "Pulizie uffici", resp.Activities[0].Name)
}

func TestGetDayAbsentIsEmptyNormalDay(t *testing.T) {
	svc := newService(newFakeDayRepo(), &fakeEmployeeRepo{})

	resp, err := svc.GetDay(context.Background(), "anna", "2025-03-15")
	require.NoError(t, err)
	assert.Equal(t, "normal", resp.DayType)
	assert.Empty(t, resp.Activities)
	assert.Zero(t, resp.TotalMinutes)
	assert.Zero(t, resp.DecimalHours)
}

func TestReplaceDayDoesNotMerge(t *testing.T) {
	dayRepo := newFakeDayRepo()
	dayRepo.days["anna/2025-03-10"] = timesheet.Day{
		EmployeeID: "anna",
		Date:       "2025-03-10",
		Activities: []timesheet.Activity{
			{Name: "Pulizie uffici", Category: timesheet.CategoryOffices, Minutes: 90, Headcount: 1, Multiplier: 1},
		},
	}
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{{ID: "anna", Name: "Anna"}}}
	svc := newService(dayRepo, empRepo)

	resp, err := svc.ReplaceDay(context.Background(), "anna", "2025-03-10", timesheet.SaveDayRequest{
		Activities: []timesheet.ActivityInput{
			{Name: "Pulizie bagni", Category: timesheet.CategoryApartments, Minutes: 40, Headcount: 1, Multiplier: 1},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Activities, 1)
	assert.Equal(t, "Pulizie bagni", resp.Activities[0].Name)
	assert.Equal(t, 40, resp.Activities[0].Minutes)
}

func TestReplaceDayUnknownEmployee(t *testing.T) {
	svc := newService(newFakeDayRepo(), &fakeEmployeeRepo{})

	_, err := svc.ReplaceDay(context.Background(), "ghost", "2025-03-10", timesheet.SaveDayRequest{Rest: true})
	assert.ErrorIs(t, err, timesheet.ErrEmployeeNotFound)
}

func TestGetMonthSummarizesDays(t *testing.T) {
	dayRepo := newFakeDayRepo()
	dayRepo.days["anna/2025-03-10"] = timesheet.Day{
		EmployeeID: "anna", Date: "2025-03-10",
		Activities: []timesheet.Activity{{Name: "Pulizie", Minutes: 90, Headcount: 1, Multiplier: 1}},
	}
	dayRepo.days["anna/2025-03-11"] = timesheet.Day{EmployeeID: "anna", Date: "2025-03-11", Vacation: true}
	dayRepo.days["anna/2025-04-01"] = timesheet.Day{
		EmployeeID: "anna", Date: "2025-04-01",
		Activities: []timesheet.Activity{{Name: "Pulizie", Minutes: 600, Headcount: 1, Multiplier: 1}},
	}
	svc := newService(dayRepo, &fakeEmployeeRepo{})

	resp, err := svc.GetMonth(context.Background(), "anna", "2025-03")
	require.NoError(t, err)

	assert.Len(t, resp.Days, 2)
	assert.Equal(t, 1.5, resp.Summary.DecimalHours)
	assert.Equal(t, 1, resp.Summary.WorkedDays)
	assert.Equal(t, 1, resp.Summary.VacationCount)
}

func TestGetMonthRejectsInvalidMonth(t *testing.T) {
	svc := newService(newFakeDayRepo(), &fakeEmployeeRepo{})

	_, err := svc.GetMonth(context.Background(), "anna", "03-2025")
	assert.ErrorIs(t, err, timesheet.ErrInvalidMonth)
}

func TestGetAllMonthlySummariesCoversWholeRoster(t *testing.T) {
	dayRepo := newFakeDayRepo()
	dayRepo.days["anna/2025-03-10"] = timesheet.Day{
		EmployeeID: "anna", Date: "2025-03-10",
		Activities: []timesheet.Activity{{Name: "Pulizie", Minutes: 120, Headcount: 1, Multiplier: 1}},
	}
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "bea", Name: "Beatrice"},
		{ID: "anna", Name: "Anna"},
	}}
	svc := newService(dayRepo, empRepo)

	result, err := svc.GetAllMonthlySummaries(context.Background(), "2025-03")
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.Equal(t, "Anna", result[0].EmployeeName)
	assert.Equal(t, 2.0, result[0].Summary.DecimalHours)
	assert.Equal(t, "Beatrice", result[1].EmployeeName)
	assert.Zero(t, result[1].Summary.DecimalHours)
	assert.Zero(t, result[1].Summary.WorkedDays)
}
