// Package timeline implements the append-only temporal fact store used for
// product details, stock levels, and product images.
//
// A temporal fact is a row valid over a half-open interval
// [start_time, close_time). The row whose close_time equals OpenEnd (the
// year-9999 sentinel) is the currently binding value for its subject. A
// value change never mutates history: it closes the open-ended row at the
// new start instant and inserts a successor row in the same transaction.
//
// Exposed operations:
//
//   - Open: insert the first open-ended row for a subject (bootstrap).
//   - Supersede: close the open-ended row and insert its successor. This is
//     the only way to change a fact's value; close and insert are never
//     exposed separately, so a subject can not be left half-updated.
//   - Retire: close the open-ended row with no successor. The subject then
//     has no binding value and reads must treat it as unavailable.
//
// All three require a *gorm.DB that is already inside a transaction; the
// package never begins or commits one itself. Supersede and Retire return
// ErrNoOpenFact when the subject has no open-ended row, which signals a
// broken fact-store discipline: callers must abort the enclosing
// transaction, not retry.
//
// Two uniqueness constraints back the invariants mechanically: the
// (subject, start_time) index forbids two revisions at the same instant and
// the (subject, close_time) index forbids two concurrently open-ended rows.
package timeline

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// OpenEnd is the close_time sentinel marking the currently active fact row.
// It matches the maximal DATETIME the schema can hold, so "active now"
// queries are plain equality comparisons.
var OpenEnd = time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)

var (
	// ErrNoOpenFact is returned by Supersede and Retire when the subject has
	// no open-ended row to close. It is a consistency violation, never a
	// normal business outcome.
	ErrNoOpenFact = errors.New("timeline: subject has no open-ended fact")

	// ErrOpenFactExists is returned by Open when the subject already has an
	// open-ended row.
	ErrOpenFactExists = errors.New("timeline: subject already has an open-ended fact")
)

// Fact is implemented by GORM models stored as temporal fact sequences.
type Fact interface {
	// SubjectWhere returns the condition selecting every row that belongs
	// to this fact's subject, e.g. "product_option_id = ?".
	SubjectWhere() (query string, args []any)
	// SetValidity stamps the half-open interval [start, close) onto the row.
	SetValidity(start, close time.Time)
}

// Open inserts the first open-ended row for a subject, valid from start.
// It returns ErrOpenFactExists when the subject already has an open-ended
// row; use Supersede to replace one.
func Open(tx *gorm.DB, first Fact, start time.Time) error {
	first.SetValidity(start, OpenEnd)
	if err := tx.Create(first).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrOpenFactExists
		}
		return err
	}
	return nil
}

// Supersede terminates the subject's open-ended row at start and inserts
// next as the new open-ended row. Both statements run against tx, which must
// already be a transaction: a failure of either leaves the other to be
// rolled back by the caller.
func Supersede(tx *gorm.DB, next Fact, start time.Time) error {
	if err := closeOpen(tx, next, start); err != nil {
		return err
	}
	next.SetValidity(start, OpenEnd)
	return tx.Create(next).Error
}

// Retire terminates the subject's open-ended row at the given instant
// without opening a successor, leaving the subject with no binding value.
// The prototype fact carries only the subject identity; it is never
// inserted.
func Retire(tx *gorm.DB, prototype Fact, at time.Time) error {
	return closeOpen(tx, prototype, at)
}

// closeOpen sets close_time on the subject's single open-ended row.
func closeOpen(tx *gorm.DB, f Fact, at time.Time) error {
	cond, args := f.SubjectWhere()
	res := tx.Model(f).
		Where(cond, args...).
		Where("close_time = ?", OpenEnd).
		Update("close_time", at.UTC())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNoOpenFact
	}
	return nil
}

// ActiveAt returns a scope restricting a fact query to rows whose validity
// interval contains the given instant.
func ActiveAt(at time.Time) func(*gorm.DB) *gorm.DB {
	utc := at.UTC()
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("start_time <= ? AND close_time > ?", utc, utc)
	}
}

// OpenOnly returns a scope restricting a fact query to open-ended rows.
func OpenOnly() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("close_time = ?", OpenEnd)
	}
}

// isUniqueViolation reports whether err is a uniqueness-constraint failure,
// matched textually to stay driver-agnostic.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "constraint failed")
}
