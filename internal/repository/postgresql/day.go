package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/oredipendenti/backend-go/internal/domain/timesheet"
	"github.com/oredipendenti/backend-go/internal/pkg/database"
)

type dayRepositoryImpl struct {
	db *database.DB
}

func NewDayRepository(db *database.DB) timesheet.DayRepository {
	return &dayRepositoryImpl{db: db}
}

// GetDay implements timesheet.DayRepository.
func (d *dayRepositoryImpl) GetDay(ctx context.Context, employeeID string, date string) (*timesheet.Day, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT employee_id, date, rest, vacation, sick, activities, created_at, updated_at
		FROM employee_days
		WHERE employee_id = $1 AND date = $2
	`

	day, err := scanDay(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get day: %w", err)
	}

	return &day, nil
}

// GetMonth implements timesheet.DayRepository.
func (d *dayRepositoryImpl) GetMonth(ctx context.Context, employeeID string, year int, month int) (map[string]timesheet.Day, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT employee_id, date, rest, vacation, sick, activities, created_at, updated_at
		FROM employee_days
		WHERE employee_id = $1
			AND EXTRACT(YEAR FROM date) = $2
			AND EXTRACT(MONTH FROM date) = $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to get month: %w", err)
	}
	defer rows.Close()

	days := make(map[string]timesheet.Day)
	for rows.Next() {
		day, err := scanDay(rows)
		if err != nil {
			return nil, err
		}
		days[day.Date] = day
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return days, nil
}

// GetMonthAll implements timesheet.DayRepository. The LEFT JOIN keeps
// employees with no rows in the result so the roster stays complete.
func (d *dayRepositoryImpl) GetMonthAll(ctx context.Context, year int, month int) (map[string]map[string]timesheet.Day, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT e.id, d.employee_id, d.date, d.rest, d.vacation, d.sick, d.activities, d.created_at, d.updated_at
		FROM employees e
		LEFT JOIN employee_days d ON d.employee_id = e.id
			AND EXTRACT(YEAR FROM d.date) = $1
			AND EXTRACT(MONTH FROM d.date) = $2
		ORDER BY e.name, d.date
	`

	rows, err := q.Query(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to get month for all employees: %w", err)
	}
	defer rows.Close()

	result := make(map[string]map[string]timesheet.Day)
	for rows.Next() {
		var (
			rosterID   string
			employeeID pgtype.Text
			date       pgtype.Date
			rest       pgtype.Bool
			vacation   pgtype.Bool
			sick       pgtype.Bool
			raw        []byte
			createdAt  pgtype.Timestamptz
			updatedAt  pgtype.Timestamptz
		)
		err := rows.Scan(&rosterID, &employeeID, &date, &rest, &vacation, &sick, &raw, &createdAt, &updatedAt)
		if err != nil {
			return nil, err
		}

		if _, ok := result[rosterID]; !ok {
			result[rosterID] = make(map[string]timesheet.Day)
		}
		if !employeeID.Valid {
			continue
		}

		day := timesheet.Day{
			EmployeeID: employeeID.String,
			Date:       date.Time.Format("2006-01-02"),
			Rest:       rest.Bool,
			Vacation:   vacation.Bool,
			Sick:       sick.Bool,
			CreatedAt:  createdAt.Time,
			UpdatedAt:  updatedAt.Time,
		}
		if err := json.Unmarshal(raw, &day.Activities); err != nil {
			return nil, fmt.Errorf("failed to decode activities: %w", err)
		}
		result[rosterID][day.Date] = day
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// SaveDay implements timesheet.DayRepository. The whole row is replaced on
// conflict; merge semantics live in the service.
func (d *dayRepositoryImpl) SaveDay(ctx context.Context, day timesheet.Day) error {
	q := GetQuerier(ctx, d.db)

	activities := day.Activities
	if activities == nil {
		activities = []timesheet.Activity{}
	}
	raw, err := json.Marshal(activities)
	if err != nil {
		return fmt.Errorf("failed to encode activities: %w", err)
	}

	query := `
		INSERT INTO employee_days (employee_id, date, rest, vacation, sick, activities)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id, date) DO UPDATE
		SET rest = EXCLUDED.rest,
			vacation = EXCLUDED.vacation,
			sick = EXCLUDED.sick,
			activities = EXCLUDED.activities,
			updated_at = NOW()
	`

	_, err = q.Exec(ctx, query, day.EmployeeID, day.Date, day.Rest, day.Vacation, day.Sick, raw)
	if err != nil {
		return fmt.Errorf("failed to save day: %w", err)
	}

	return nil
}

func scanDay(row pgx.Row) (timesheet.Day, error) {
	var (
		day  timesheet.Day
		date pgtype.Date
		raw  []byte
	)
	err := row.Scan(&day.EmployeeID, &date, &day.Rest, &day.Vacation, &day.Sick, &raw, &day.CreatedAt, &day.UpdatedAt)
	if err != nil {
		return timesheet.Day{}, err
	}
	day.Date = date.Time.Format("2006-01-02")

	if err := json.Unmarshal(raw, &day.Activities); err != nil {
		return timesheet.Day{}, fmt.Errorf("failed to decode activities: %w", err)
	}

	return day, nil
}
