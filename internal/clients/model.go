package clients

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/dporg/internal/common"
)

// DateLayout is the creation-date format stored in the clients file.
const DateLayout = "2006-01-02 15:04"

// filesSeparator joins the file paths inside the single files column.
// It is reserved: a path containing it cannot be stored.
const filesSeparator = "|"

// Record is one client row. There is no surrogate id: the (Name, Email, Date)
// tuple identifies a record for edit purposes, and (Name, Email) for delete.
type Record struct {
	Name  string
	Email string
	Date  string
	Files []string
}

// Key is the natural key used to locate a record for edit.
type Key struct {
	Name  string
	Email string
	Date  string
}

// Key returns the record's natural key.
func (r *Record) Key() Key {
	return Key{Name: r.Name, Email: r.Email, Date: r.Date}
}

// Validate checks the record before any side effect: name and email must be
// non-empty after trimming, and no file path may contain the reserved
// separator.
func (r *Record) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: client name is required", common.ErrorValidation)
	}
	if strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("%w: client email is required", common.ErrorValidation)
	}
	for _, f := range r.Files {
		if strings.Contains(f, filesSeparator) {
			return fmt.Errorf("%w: file path %q contains reserved separator %q",
				common.ErrorValidation, f, filesSeparator)
		}
	}
	return nil
}

func (r *Record) toRow() []string {
	return []string{r.Name, r.Email, r.Date, strings.Join(r.Files, filesSeparator)}
}

func fromRow(row []string) (Record, bool) {
	if len(row) < 4 {
		return Record{}, false
	}
	rec := Record{Name: row[0], Email: row[1], Date: row[2]}
	if row[3] != "" {
		rec.Files = strings.Split(row[3], filesSeparator)
	}
	return rec, true
}

// now is a test seam for the clock used to stamp new records.
var now = time.Now
