// Package repository holds the data access layer. Every repository is built
// around an injected *gorm.DB; writes that depend on another row existing are
// issued as a single conditional statement so no check-then-act window exists.
package repository

import (
	"errors" // Error classification
	"time"   // Write timestamps

	"gorm.io/gorm" // GORM ORM library
)

// DefaultLimit is the page size used when the caller supplies none
const DefaultLimit = 5

// Page is an offset-based pagination window
type Page struct {
	Limit  int
	Offset int
}

// normalized applies the defaults. Limit has no upper bound.
func (p Page) normalized() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// paginate scopes a query to the page window
func paginate(p Page) func(*gorm.DB) *gorm.DB {
	p = p.normalized()
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Offset).Limit(p.Limit)
	}
}

// patch collects the columns of a partial update. updated_at is always set so
// the statement is never empty and a matched row is always reported.
type patch map[string]any

func newPatch() patch {
	return patch{"updated_at": now()}
}

func (p patch) set(column string, value any) {
	p[column] = value
}

// now is the timestamp stored on writes issued as raw SQL
func now() time.Time {
	return time.Now().UTC()
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
