package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/akhmetov-d/presentio/internal/domain"
)

const presentationColumns = `id, title, description, faculty_id, faculty_name, venue,
	registration_start, registration_end, presentation_start, presentation_end,
	participation_type, team_size_min, team_size_max,
	slot_start_time, slot_end_time, slot_duration_minutes, slot_buffer_minutes,
	target_years, target_schools, target_departments,
	grading_criteria, custom_grading_criteria, created_at, updated_at`

type PresentationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPresentationRepo(db *dbpg.DB) *PresentationRepository {
	return &PresentationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PresentationRepository) Create(ctx context.Context, p *domain.Presentation, slots []domain.Slot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	criteria, err := json.Marshal(p.GradingCriteria)
	if err != nil {
		return fmt.Errorf("marshal grading criteria: %w", err)
	}

	query := `INSERT INTO presentations (` + presentationColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
					  $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)`
	_, err = tx.ExecContext(ctx, query,
		p.ID, p.Title, p.Description, p.FacultyID, p.FacultyName, p.Venue,
		p.RegistrationPeriod.Start, p.RegistrationPeriod.End,
		p.PresentationPeriod.Start, p.PresentationPeriod.End,
		p.ParticipationType, p.TeamSizeMin, p.TeamSizeMax,
		p.SlotConfig.StartTime, p.SlotConfig.EndTime,
		p.SlotConfig.DurationMinutes, p.SlotConfig.BufferMinutes,
		pq.Array(p.TargetAudience.Years), pq.Array(p.TargetAudience.Schools),
		pq.Array(p.TargetAudience.Departments),
		criteria, p.CustomGradingCriteria, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert presentation: %w", err)
	}

	if err = insertSlots(ctx, tx, p.ID, slots); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PresentationRepository) GetByID(ctx context.Context, id string) (*domain.Presentation, error) {
	query := `SELECT ` + presentationColumns + `
			  FROM presentations
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get presentation: %w", err)
	}

	p, err := scanPresentation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPresentationNotFound
		}
		return nil, err
	}

	return p, nil
}

func (r *PresentationRepository) Update(ctx context.Context, p *domain.Presentation) error {
	criteria, err := json.Marshal(p.GradingCriteria)
	if err != nil {
		return fmt.Errorf("marshal grading criteria: %w", err)
	}

	query := `UPDATE presentations
			  SET title = $2, description = $3, venue = $4,
				  registration_start = $5, registration_end = $6,
				  presentation_start = $7, presentation_end = $8,
				  slot_start_time = $9, slot_end_time = $10,
				  slot_duration_minutes = $11, slot_buffer_minutes = $12,
				  target_years = $13, target_schools = $14, target_departments = $15,
				  grading_criteria = $16, custom_grading_criteria = $17, updated_at = $18
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		p.ID, p.Title, p.Description, p.Venue,
		p.RegistrationPeriod.Start, p.RegistrationPeriod.End,
		p.PresentationPeriod.Start, p.PresentationPeriod.End,
		p.SlotConfig.StartTime, p.SlotConfig.EndTime,
		p.SlotConfig.DurationMinutes, p.SlotConfig.BufferMinutes,
		pq.Array(p.TargetAudience.Years), pq.Array(p.TargetAudience.Schools),
		pq.Array(p.TargetAudience.Departments),
		criteria, p.CustomGradingCriteria, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update presentation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrPresentationNotFound
	}

	return nil
}

// ReplaceSlots swaps the whole uncommitted schedule for a regenerated one.
func (r *PresentationRepository) ReplaceSlots(ctx context.Context, presentationID string, slots []domain.Slot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx,
		`DELETE FROM slots WHERE presentation_id = $1`, presentationID,
	); err != nil {
		return fmt.Errorf("delete slots: %w", err)
	}

	if err = insertSlots(ctx, tx, presentationID, slots); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PresentationRepository) ListByFaculty(ctx context.Context, facultyID string) ([]*domain.PresentationStats, error) {
	query := `SELECT ` + prefixedPresentationColumns("p") + `,
					 COUNT(s.id),
					 COUNT(s.id) FILTER (WHERE s.status = 'available'),
					 COUNT(s.id) FILTER (WHERE s.status = 'booked'),
					 COUNT(s.id) FILTER (WHERE s.status = 'in-progress'),
					 COUNT(s.id) FILTER (WHERE s.status = 'completed')
			  FROM presentations p
			  LEFT JOIN slots s ON s.presentation_id = p.id
			  WHERE p.faculty_id = $1
			  GROUP BY p.id
			  ORDER BY p.presentation_start DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, facultyID)
	if err != nil {
		return nil, fmt.Errorf("list by faculty: %w", err)
	}
	defer rows.Close()

	var res []*domain.PresentationStats
	for rows.Next() {
		var ps domain.PresentationStats
		p, err := scanPresentationFrom(rows,
			&ps.Stats.Total, &ps.Stats.Available, &ps.Stats.Booked,
			&ps.Stats.InProgress, &ps.Stats.Completed,
		)
		if err != nil {
			return nil, err
		}
		ps.Presentation = *p
		res = append(res, &ps)
	}

	return res, rows.Err()
}

// ListAvailable returns non-expired presentations matching the audience
// filters, each carrying only its unbooked slots.
func (r *PresentationRepository) ListAvailable(ctx context.Context, f domain.AudienceFilter) ([]*domain.PresentationWithSlots, error) {
	var year sql.NullInt64
	if f.Year != nil {
		year = sql.NullInt64{Int64: int64(*f.Year), Valid: true}
	}

	query := `SELECT ` + presentationColumns + `
			  FROM presentations
			  WHERE presentation_end >= NOW()
				AND ($1::bigint IS NULL OR cardinality(target_years) = 0 OR $1 = ANY(target_years))
				AND ($2 = '' OR cardinality(target_schools) = 0 OR $2 = ANY(target_schools))
				AND ($3 = '' OR cardinality(target_departments) = 0 OR $3 = ANY(target_departments))
			  ORDER BY presentation_start`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, year, f.School, f.Department)
	if err != nil {
		return nil, fmt.Errorf("list available presentations: %w", err)
	}
	defer rows.Close()

	var res []*domain.PresentationWithSlots
	ids := make([]string, 0)
	byID := make(map[string]*domain.PresentationWithSlots)
	for rows.Next() {
		p, err := scanPresentationFrom(rows)
		if err != nil {
			return nil, err
		}
		ps := &domain.PresentationWithSlots{Presentation: *p, Slots: []domain.Slot{}}
		res = append(res, ps)
		ids = append(ids, p.ID)
		byID[p.ID] = ps
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return res, nil
	}

	slotQuery := `SELECT ` + slotColumns + `
				  FROM slots
				  WHERE presentation_id = ANY($1) AND status = 'available'
				  ORDER BY slot_time`
	slotRows, err := r.db.QueryWithRetry(ctx, r.strategy, slotQuery, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("list available slots: %w", err)
	}
	defer slotRows.Close()

	for slotRows.Next() {
		s, err := scanSlotFrom(slotRows)
		if err != nil {
			return nil, err
		}
		if ps, ok := byID[s.PresentationID]; ok {
			ps.Slots = append(ps.Slots, *s)
		}
	}

	return res, slotRows.Err()
}

// Delete removes the presentation and, via cascade, all its slots. Unless
// force is set, the delete is refused while any slot is past available.
func (r *PresentationRepository) Delete(ctx context.Context, id string, force bool) error {
	query := `DELETE FROM presentations
			  WHERE id = $1
				AND ($2 OR NOT EXISTS (
					SELECT 1 FROM slots
					WHERE presentation_id = $1 AND status <> 'available'
				))`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, force)
	if err != nil {
		return fmt.Errorf("delete presentation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete rows affected: %w", err)
	}
	if rows == 0 {
		// Either the presentation is gone or committed slots blocked it.
		var exists bool
		checkRow, err := r.db.QueryRowWithRetry(ctx, r.strategy,
			`SELECT EXISTS (SELECT 1 FROM presentations WHERE id = $1)`, id)
		if err != nil {
			return fmt.Errorf("check presentation: %w", err)
		}
		if err = checkRow.Scan(&exists); err != nil {
			return fmt.Errorf("scan presentation check: %w", err)
		}
		if !exists {
			return domain.ErrPresentationNotFound
		}
		return domain.ErrSlotsCommitted
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPresentation(row rowScanner) (*domain.Presentation, error) {
	return scanPresentationFrom(row)
}

func scanPresentationFrom(row rowScanner, extra ...any) (*domain.Presentation, error) {
	var (
		p        domain.Presentation
		criteria []byte
	)
	dest := []any{
		&p.ID, &p.Title, &p.Description, &p.FacultyID, &p.FacultyName, &p.Venue,
		&p.RegistrationPeriod.Start, &p.RegistrationPeriod.End,
		&p.PresentationPeriod.Start, &p.PresentationPeriod.End,
		&p.ParticipationType, &p.TeamSizeMin, &p.TeamSizeMax,
		&p.SlotConfig.StartTime, &p.SlotConfig.EndTime,
		&p.SlotConfig.DurationMinutes, &p.SlotConfig.BufferMinutes,
		pq.Array(&p.TargetAudience.Years), pq.Array(&p.TargetAudience.Schools),
		pq.Array(&p.TargetAudience.Departments),
		&criteria, &p.CustomGradingCriteria, &p.CreatedAt, &p.UpdatedAt,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan presentation: %w", err)
	}

	if len(criteria) > 0 {
		if err := json.Unmarshal(criteria, &p.GradingCriteria); err != nil {
			return nil, fmt.Errorf("unmarshal grading criteria: %w", err)
		}
	}

	return &p, nil
}

func prefixedPresentationColumns(alias string) string {
	return alias + `.id, ` + alias + `.title, ` + alias + `.description, ` +
		alias + `.faculty_id, ` + alias + `.faculty_name, ` + alias + `.venue, ` +
		alias + `.registration_start, ` + alias + `.registration_end, ` +
		alias + `.presentation_start, ` + alias + `.presentation_end, ` +
		alias + `.participation_type, ` + alias + `.team_size_min, ` + alias + `.team_size_max, ` +
		alias + `.slot_start_time, ` + alias + `.slot_end_time, ` +
		alias + `.slot_duration_minutes, ` + alias + `.slot_buffer_minutes, ` +
		alias + `.target_years, ` + alias + `.target_schools, ` + alias + `.target_departments, ` +
		alias + `.grading_criteria, ` + alias + `.custom_grading_criteria, ` +
		alias + `.created_at, ` + alias + `.updated_at`
}
