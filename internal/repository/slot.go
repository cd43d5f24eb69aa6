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

const slotColumns = `id, presentation_id, slot_time, status,
	booked_by_id, booked_by_email, booked_by_name, booked_at,
	team_name, topic, description, team_members, file_attachment,
	started_at, completed_at, grades, individual_grades, feedback, total_score`

type SlotRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSlotRepo(db *dbpg.DB) *SlotRepository {
	return &SlotRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func insertSlots(ctx context.Context, tx *sql.Tx, presentationID string, slots []domain.Slot) error {
	query := `INSERT INTO slots (id, presentation_id, slot_time, status)
			  VALUES ($1, $2, $3, $4)`
	for _, s := range slots {
		if _, err := tx.ExecContext(ctx, query, s.ID, presentationID, s.Time, s.Status); err != nil {
			return fmt.Errorf("insert slot: %w", err)
		}
	}
	return nil
}

func (r *SlotRepository) GetByID(ctx context.Context, presentationID, slotID string) (*domain.Slot, error) {
	query := `SELECT ` + slotColumns + `
			  FROM slots
			  WHERE presentation_id = $1 AND id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, presentationID, slotID)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}

	s, err := scanSlotFrom(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, err
	}

	return s, nil
}

func (r *SlotRepository) ListByPresentation(ctx context.Context, presentationID string) ([]*domain.Slot, error) {
	query := `SELECT ` + slotColumns + `
			  FROM slots
			  WHERE presentation_id = $1
			  ORDER BY slot_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, presentationID)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	var res []*domain.Slot
	for rows.Next() {
		s, err := scanSlotFrom(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}

	return res, rows.Err()
}

// Book flips an available slot to booked in a single conditional update.
// Under contention exactly one caller's UPDATE matches; the rest observe
// ErrSlotTaken.
func (r *SlotRepository) Book(ctx context.Context, presentationID, slotID string, rec *domain.BookingRecord) (*domain.Slot, error) {
	members, err := json.Marshal(rec.TeamMembers)
	if err != nil {
		return nil, fmt.Errorf("marshal team members: %w", err)
	}
	var attachment []byte
	if rec.FileAttachment != nil {
		if attachment, err = json.Marshal(rec.FileAttachment); err != nil {
			return nil, fmt.Errorf("marshal attachment: %w", err)
		}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE slots
			  SET status = 'booked',
				  booked_by_id = $3, booked_by_email = $4, booked_by_name = $5,
				  booked_at = $6, team_name = $7, topic = $8, description = $9,
				  team_members = $10, file_attachment = $11
			  WHERE presentation_id = $1 AND id = $2 AND status = 'available'
			  RETURNING ` + slotColumns
	s, err := scanSlotFrom(tx.QueryRowContext(ctx, query,
		presentationID, slotID,
		rec.Booker.ID, rec.Booker.Email, rec.Booker.Name,
		rec.BookedAt, rec.TeamName, rec.Topic, rec.Description,
		members, attachment,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.classify(ctx, tx, presentationID, slotID, domain.SlotStatusAvailable)
		}
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit booking: %w", err)
	}

	return s, nil
}

// Start flips booked -> in-progress conditionally.
func (r *SlotRepository) Start(ctx context.Context, presentationID, slotID string, at time.Time) (*domain.Slot, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE slots
			  SET status = 'in-progress', started_at = $3
			  WHERE presentation_id = $1 AND id = $2 AND status = 'booked'
			  RETURNING ` + slotColumns
	s, err := scanSlotFrom(tx.QueryRowContext(ctx, query, presentationID, slotID, at))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.classify(ctx, tx, presentationID, slotID, domain.SlotStatusBooked)
		}
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit start: %w", err)
	}

	return s, nil
}

// Complete flips booked or in-progress -> completed conditionally and stores
// the grading result.
func (r *SlotRepository) Complete(ctx context.Context, presentationID, slotID string, res *domain.GradingResult) (*domain.Slot, error) {
	grades, err := json.Marshal(res.Grades)
	if err != nil {
		return nil, fmt.Errorf("marshal grades: %w", err)
	}
	var individual []byte
	if len(res.IndividualGrades) > 0 {
		if individual, err = json.Marshal(res.IndividualGrades); err != nil {
			return nil, fmt.Errorf("marshal individual grades: %w", err)
		}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE slots
			  SET status = 'completed', grades = $3, individual_grades = $4,
				  feedback = $5, total_score = $6, completed_at = $7
			  WHERE presentation_id = $1 AND id = $2
				AND status IN ('booked', 'in-progress')
			  RETURNING ` + slotColumns
	s, err := scanSlotFrom(tx.QueryRowContext(ctx, query,
		presentationID, slotID,
		grades, individual, res.Feedback, res.TotalScore, res.CompletedAt,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.classify(ctx, tx, presentationID, slotID, domain.SlotStatusInProgress)
		}
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit completion: %w", err)
	}

	return s, nil
}

// classify re-reads the slot to explain why a conditional update matched
// nothing: the slot is missing, or its current status was not the expected
// one.
func (r *SlotRepository) classify(ctx context.Context, tx *sql.Tx, presentationID, slotID string, expected domain.SlotStatus) error {
	var status domain.SlotStatus
	err := tx.QueryRowContext(ctx,
		`SELECT status FROM slots WHERE presentation_id = $1 AND id = $2`,
		presentationID, slotID,
	).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrSlotNotFound
		}
		return fmt.Errorf("classify slot state: %w", err)
	}

	switch status {
	case domain.SlotStatusAvailable:
		if expected == domain.SlotStatusAvailable {
			// Matched the expected status yet the update missed: lost the
			// race to a concurrent writer between UPDATE and re-read.
			return domain.ErrSlotTaken
		}
		return domain.ErrSlotNotBooked
	case domain.SlotStatusBooked:
		return domain.ErrSlotTaken
	case domain.SlotStatusInProgress:
		return domain.ErrSlotStarted
	case domain.SlotStatusCompleted:
		return domain.ErrSlotCompleted
	default:
		return fmt.Errorf("unexpected slot status %q", status)
	}
}

func (r *SlotRepository) HasBooking(ctx context.Context, presentationID, identityID, email string) (bool, error) {
	query := `SELECT EXISTS (
				SELECT 1 FROM slots s
				WHERE s.presentation_id = $1
				  AND s.status <> 'available'
				  AND (s.booked_by_id = $2 OR s.booked_by_email = $3
					   OR EXISTS (
						   SELECT 1 FROM jsonb_array_elements(COALESCE(s.team_members, '[]'::jsonb)) m
						   WHERE m->>'email' = $3 OR m->>'identity_id' = $2
					   ))
			  )`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, presentationID, identityID, email)
	if err != nil {
		return false, fmt.Errorf("check booking: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan booking check: %w", err)
	}

	return exists, nil
}

// BookedRosterEmails reports which of the given e-mails already sit on a
// committed roster within one presentation.
func (r *SlotRepository) BookedRosterEmails(ctx context.Context, presentationID string, emails []string) ([]string, error) {
	query := `SELECT DISTINCT m->>'email'
			  FROM slots s,
				   jsonb_array_elements(COALESCE(s.team_members, '[]'::jsonb)) m
			  WHERE s.presentation_id = $1
				AND s.status <> 'available'
				AND m->>'email' = ANY($2)`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, presentationID, pq.Array(emails))
	if err != nil {
		return nil, fmt.Errorf("roster emails: %w", err)
	}
	defer rows.Close()

	return collectStrings(rows)
}

// CommittedEmails is the system-wide variant: it reports which of the given
// e-mails appear as a booker or roster member of any committed slot in any
// presentation.
func (r *SlotRepository) CommittedEmails(ctx context.Context, emails []string) ([]string, error) {
	query := `SELECT DISTINCT e FROM (
				  SELECT booked_by_email AS e FROM slots WHERE status <> 'available'
				  UNION
				  SELECT m->>'email'
				  FROM slots s,
					   jsonb_array_elements(COALESCE(s.team_members, '[]'::jsonb)) m
				  WHERE s.status <> 'available'
			  ) committed
			  WHERE e = ANY($1)`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(emails))
	if err != nil {
		return nil, fmt.Errorf("committed emails: %w", err)
	}
	defer rows.Close()

	return collectStrings(rows)
}

func (r *SlotRepository) HasCommittedSlots(ctx context.Context, presentationID string) (bool, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
		`SELECT EXISTS (
			SELECT 1 FROM slots WHERE presentation_id = $1 AND status <> 'available'
		)`, presentationID)
	if err != nil {
		return false, fmt.Errorf("check committed slots: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan committed check: %w", err)
	}

	return exists, nil
}

func (r *SlotRepository) ListByMember(ctx context.Context, identityID, email string) ([]*domain.MyBooking, error) {
	query := `SELECT p.id, p.title, p.venue, ` + prefixedSlotColumns("s") + `
			  FROM slots s
			  JOIN presentations p ON p.id = s.presentation_id
			  WHERE s.status <> 'available'
				AND (s.booked_by_id = $1 OR s.booked_by_email = $2
					 OR EXISTS (
						 SELECT 1 FROM jsonb_array_elements(COALESCE(s.team_members, '[]'::jsonb)) m
						 WHERE m->>'email' = $2 OR m->>'identity_id' = $1
					 ))
			  ORDER BY s.slot_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, identityID, email)
	if err != nil {
		return nil, fmt.Errorf("list bookings by member: %w", err)
	}
	defer rows.Close()

	var res []*domain.MyBooking
	for rows.Next() {
		var b domain.MyBooking
		s, err := scanSlotPrefixed(rows, &b.PresentationID, &b.PresentationTitle, &b.Venue)
		if err != nil {
			return nil, err
		}
		b.Slot = *s
		b.Time = s.Time
		res = append(res, &b)
	}

	return res, rows.Err()
}

func collectStrings(rows *sql.Rows) ([]string, error) {
	var res []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan string: %w", err)
		}
		res = append(res, s)
	}
	return res, rows.Err()
}

func scanSlotFrom(row rowScanner) (*domain.Slot, error) {
	return scanSlot(row, nil)
}

func scanSlotPrefixed(row rowScanner, lead ...any) (*domain.Slot, error) {
	return scanSlot(row, lead)
}

func scanSlot(row rowScanner, lead []any) (*domain.Slot, error) {
	var (
		s          domain.Slot
		bookerID   sql.NullString
		bookerMail sql.NullString
		bookerName sql.NullString
		bookedAt   sql.NullTime
		startedAt  sql.NullTime
		completed  sql.NullTime
		members    []byte
		attachment []byte
		grades     []byte
		individual []byte
		total      sql.NullFloat64
	)

	dest := append(lead,
		&s.ID, &s.PresentationID, &s.Time, &s.Status,
		&bookerID, &bookerMail, &bookerName, &bookedAt,
		&s.TeamName, &s.Topic, &s.Description, &members, &attachment,
		&startedAt, &completed, &grades, &individual, &s.Feedback, &total,
	)

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan slot: %w", err)
	}

	if bookerID.Valid {
		s.BookedBy = &domain.Booker{
			ID:    bookerID.String,
			Email: bookerMail.String,
			Name:  bookerName.String,
		}
	}
	if bookedAt.Valid {
		t := bookedAt.Time
		s.BookedAt = &t
	}
	if startedAt.Valid {
		t := startedAt.Time
		s.StartedAt = &t
	}
	if completed.Valid {
		t := completed.Time
		s.CompletedAt = &t
	}
	if total.Valid {
		v := total.Float64
		s.TotalScore = &v
	}
	if len(members) > 0 {
		if err := json.Unmarshal(members, &s.TeamMembers); err != nil {
			return nil, fmt.Errorf("unmarshal team members: %w", err)
		}
	}
	if len(attachment) > 0 {
		if err := json.Unmarshal(attachment, &s.FileAttachment); err != nil {
			return nil, fmt.Errorf("unmarshal attachment: %w", err)
		}
	}
	if len(grades) > 0 {
		if err := json.Unmarshal(grades, &s.Grades); err != nil {
			return nil, fmt.Errorf("unmarshal grades: %w", err)
		}
	}
	if len(individual) > 0 {
		if err := json.Unmarshal(individual, &s.IndividualGrades); err != nil {
			return nil, fmt.Errorf("unmarshal individual grades: %w", err)
		}
	}

	return &s, nil
}

func prefixedSlotColumns(alias string) string {
	return alias + `.id, ` + alias + `.presentation_id, ` + alias + `.slot_time, ` + alias + `.status, ` +
		alias + `.booked_by_id, ` + alias + `.booked_by_email, ` + alias + `.booked_by_name, ` + alias + `.booked_at, ` +
		alias + `.team_name, ` + alias + `.topic, ` + alias + `.description, ` +
		alias + `.team_members, ` + alias + `.file_attachment, ` +
		alias + `.started_at, ` + alias + `.completed_at, ` +
		alias + `.grades, ` + alias + `.individual_grades, ` + alias + `.feedback, ` + alias + `.total_score`
}
