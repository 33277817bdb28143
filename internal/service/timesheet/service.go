package timesheet

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/oredipendenti/backend-go/internal/domain/employee"
	"github.com/oredipendenti/backend-go/internal/domain/timesheet"
	"github.com/oredipendenti/backend-go/internal/pkg/database"
	"github.com/oredipendenti/backend-go/internal/pkg/observability"
	"github.com/oredipendenti/backend-go/internal/pkg/validator"
)

type TimesheetServiceImpl struct {
	db      *database.DB
	dayRepo timesheet.DayRepository
	empRepo employee.EmployeeRepository
}

func NewTimesheetService(db *database.DB, dayRepo timesheet.DayRepository, empRepo employee.EmployeeRepository) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		db:      db,
		dayRepo: dayRepo,
		empRepo: empRepo,
	}
}

// SaveDay implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) SaveDay(ctx context.Context, employeeID string, date string, req timesheet.SaveDayRequest) (timesheet.DayResponse, error) {
	if !validator.IsValidDate(date) {
		return timesheet.DayResponse{}, timesheet.ErrInvalidDate
	}
	if err := req.Validate(); err != nil {
		return timesheet.DayResponse{}, err
	}

	incoming := normalizeNamed(req.Activities)

	existing, err := s.dayRepo.GetDay(ctx, employeeID, date)
	if err != nil {
		return timesheet.DayResponse{}, fmt.Errorf("failed to load existing day: %w", err)
	}

	day := timesheet.Day{
		EmployeeID: employeeID,
		Date:       date,
		Rest:       req.Rest,
		Vacation:   req.Vacation,
		Sick:       req.Sick,
		Activities: incoming,
	}
	if existing != nil {
		day.Activities = MergeActivities(existing.Activities, incoming)
	}

	if err := s.dayRepo.SaveDay(ctx, day); err != nil {
		return timesheet.DayResponse{}, fmt.Errorf("failed to save day: %w", err)
	}
	observability.RecordDaySaved()

	return toDayResponse(day), nil
}

// ReplaceDay implements timesheet.TimesheetService. Unlike SaveDay it does
// not merge: the admin edit screen rewrites the whole activities array.
func (s *TimesheetServiceImpl) ReplaceDay(ctx context.Context, employeeID string, date string, req timesheet.SaveDayRequest) (timesheet.DayResponse, error) {
	if !validator.IsValidDate(date) {
		return timesheet.DayResponse{}, timesheet.ErrInvalidDate
	}

	if _, err := s.empRepo.GetByID(ctx, employeeID); err != nil {
		return timesheet.DayResponse{}, timesheet.ErrEmployeeNotFound
	}

	day := timesheet.Day{
		EmployeeID: employeeID,
		Date:       date,
		Rest:       req.Rest,
		Vacation:   req.Vacation,
		Sick:       req.Sick,
		Activities: normalizeNamed(req.Activities),
	}

	if err := s.dayRepo.SaveDay(ctx, day); err != nil {
		return timesheet.DayResponse{}, fmt.Errorf("failed to replace day: %w", err)
	}
	observability.RecordDaySaved()

	return toDayResponse(day), nil
}

// GetDay implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GetDay(ctx context.Context, employeeID string, date string) (timesheet.DayResponse, error) {
	if !validator.IsValidDate(date) {
		return timesheet.DayResponse{}, timesheet.ErrInvalidDate
	}

	day, err := s.dayRepo.GetDay(ctx, employeeID, date)
	if err != nil {
		return timesheet.DayResponse{}, fmt.Errorf("failed to get day: %w", err)
	}
	if day == nil {
		// Absence is a valid state: an empty normal day with zero minutes.
		return toDayResponse(timesheet.Day{EmployeeID: employeeID, Date: date}), nil
	}
	return toDayResponse(*day), nil
}

// GetMonth implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GetMonth(ctx context.Context, employeeID string, month string) (timesheet.MonthResponse, error) {
	year, m, err := parseMonth(month)
	if err != nil {
		return timesheet.MonthResponse{}, err
	}

	days, err := s.dayRepo.GetMonth(ctx, employeeID, year, m)
	if err != nil {
		return timesheet.MonthResponse{}, fmt.Errorf("failed to get month: %w", err)
	}

	resp := timesheet.MonthResponse{
		EmployeeID: employeeID,
		Month:      month,
		Days:       make(map[string]timesheet.DayResponse, len(days)),
	}
	list := make([]timesheet.Day, 0, len(days))
	for date, d := range days {
		resp.Days[date] = toDayResponse(d)
		list = append(list, d)
	}
	resp.Summary = toSummaryResponse(AggregateMonth(list))
	observability.RecordSummaryComputed()

	return resp, nil
}

// GetMonthlySummary implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GetMonthlySummary(ctx context.Context, employeeID string, month string) (timesheet.SummaryResponse, error) {
	year, m, err := parseMonth(month)
	if err != nil {
		return timesheet.SummaryResponse{}, err
	}

	days, err := s.dayRepo.GetMonth(ctx, employeeID, year, m)
	if err != nil {
		return timesheet.SummaryResponse{}, fmt.Errorf("failed to get month: %w", err)
	}

	list := make([]timesheet.Day, 0, len(days))
	for _, d := range days {
		list = append(list, d)
	}
	observability.RecordSummaryComputed()
	return toSummaryResponse(AggregateMonth(list)), nil
}

// GetAllMonthlySummaries implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GetAllMonthlySummaries(ctx context.Context, month string) ([]timesheet.EmployeeSummaryResponse, error) {
	year, m, err := parseMonth(month)
	if err != nil {
		return nil, err
	}

	byEmployee, err := s.dayRepo.GetMonthAll(ctx, year, m)
	if err != nil {
		return nil, fmt.Errorf("failed to get month for all employees: %w", err)
	}

	employees, err := s.empRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	result := make([]timesheet.EmployeeSummaryResponse, 0, len(employees))
	for _, emp := range employees {
		days := byEmployee[emp.ID]
		list := make([]timesheet.Day, 0, len(days))
		for _, d := range days {
			list = append(list, d)
		}
		result = append(result, timesheet.EmployeeSummaryResponse{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			Summary:      toSummaryResponse(AggregateMonth(list)),
		})
		observability.RecordSummaryComputed()
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].EmployeeName < result[j].EmployeeName
	})
	return result, nil
}

// normalizeNamed coerces submitted activities and drops unnamed rows, the
// same filter the legacy entry form applied before saving.
func normalizeNamed(inputs []timesheet.ActivityInput) []timesheet.Activity {
	out := make([]timesheet.Activity, 0, len(inputs))
	for _, in := range inputs {
		a := NormalizeActivity(in)
		if a.Name == "" {
			continue
		}
		out = append(out, a)
	}
	return out
}

// parseMonth parses YYYY-MM.
func parseMonth(month string) (int, int, error) {
	parsed, err := time.Parse("2006-01", month)
	if err != nil {
		return 0, 0, timesheet.ErrInvalidMonth
	}
	return parsed.Year(), int(parsed.Month()), nil
}

func toDayResponse(d timesheet.Day) timesheet.DayResponse {
	resp := timesheet.DayResponse{
		EmployeeID: d.EmployeeID,
		Date:       d.Date,
		DayType:    Classify(d).String(),
		Activities: make([]timesheet.ActivityResponse, 0, len(d.Activities)),
	}
	if d.EmployeeName != nil {
		resp.EmployeeName = *d.EmployeeName
	}
	for _, a := range d.Activities {
		resp.Activities = append(resp.Activities, timesheet.ActivityResponse{
			Name:             a.Name,
			Category:         a.Category,
			Minutes:          a.Minutes,
			Headcount:        a.Headcount,
			Multiplier:       a.Multiplier,
			EffectiveMinutes: DisplayEffectiveMinutes(a),
		})
	}
	resp.TotalMinutes = AggregateDay(d)
	resp.DecimalHours = DecimalHours(resp.TotalMinutes)
	return resp
}

func toSummaryResponse(s timesheet.MonthlySummary) timesheet.SummaryResponse {
	return timesheet.SummaryResponse{
		TotalEffectiveMinutes: s.TotalEffectiveMinutes,
		DecimalHours:          s.DecimalHours,
		WorkedDays:            s.WorkedDays,
		RestCount:             s.RestCount,
		VacationCount:         s.VacationCount,
		SickCount:             s.SickCount,
	}
}
