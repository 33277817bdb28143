package report

import (
	"context"
	"sort"
	"time"

	"github.com/oredipendenti/backend-go/internal/domain/employee"
	"github.com/oredipendenti/backend-go/internal/domain/report"
	"github.com/oredipendenti/backend-go/internal/domain/timesheet"
	tssvc "github.com/oredipendenti/backend-go/internal/service/timesheet"
)

type ReportServiceImpl struct {
	dayRepo      timesheet.DayRepository
	employeeRepo employee.EmployeeRepository
}

func NewReportService(dayRepo timesheet.DayRepository, employeeRepo employee.EmployeeRepository) report.ReportService {
	return &ReportServiceImpl{
		dayRepo:      dayRepo,
		employeeRepo: employeeRepo,
	}
}

// GenerateMonthlyReport implements report.ReportService. The grid covers the
// whole roster; employees without entries appear with an empty day map so
// the export keeps one row group per employee.
func (s *ReportServiceImpl) GenerateMonthlyReport(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyReport{}, err
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return report.MonthlyReport{}, err
	}

	allDays, err := s.dayRepo.GetMonthAll(ctx, req.Year, req.Month)
	if err != nil {
		return report.MonthlyReport{}, err
	}

	periodStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, -1)

	result := report.MonthlyReport{
		PeriodMonth: req.Month,
		PeriodYear:  req.Year,
		PeriodStart: periodStart.Format("2006-01-02"),
		PeriodEnd:   periodEnd.Format("2006-01-02"),
		GeneratedAt: time.Now().Format(time.RFC3339),
		Employees:   make([]report.EmployeeMonthlyReport, 0, len(employees)),
	}

	for _, emp := range employees {
		days := allDays[emp.ID]
		cells := make(map[string]report.DayCell, len(days))

		ordered := make([]timesheet.Day, 0, len(days))
		for _, day := range days {
			ordered = append(ordered, day)
		}
		sort.Slice(ordered, func(i, j int) bool { return ordered[i].Date < ordered[j].Date })

		for _, day := range ordered {
			cells[day.Date] = report.DayCell{
				Hours:   tssvc.DecimalHours(tssvc.AggregateDay(day)),
				DayType: tssvc.Classify(day).String(),
			}
		}

		summary := tssvc.AggregateMonth(ordered)
		result.Employees = append(result.Employees, report.EmployeeMonthlyReport{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			Days:         cells,
			Summary: timesheet.SummaryResponse{
				TotalEffectiveMinutes: summary.TotalEffectiveMinutes,
				DecimalHours:          summary.DecimalHours,
				WorkedDays:            summary.WorkedDays,
				RestCount:             summary.RestCount,
				VacationCount:         summary.VacationCount,
				SickCount:             summary.SickCount,
			},
		})
	}

	return result, nil
}
