package domain

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewID returns a fresh entity identifier
func NewID() string {
	return uuid.NewString()
}

// BeforeCreate assigns an ID when the caller did not
func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = NewID()
	}
	return nil
}

func (a *Artist) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = NewID()
	}
	return nil
}

func (a *Album) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = NewID()
	}
	return nil
}

func (t *Track) BeforeCreate(*gorm.DB) error {
	if t.ID == "" {
		t.ID = NewID()
	}
	return nil
}

func (f *Favorite) BeforeCreate(*gorm.DB) error {
	if f.ID == "" {
		f.ID = NewID()
	}
	return nil
}

// Models lists every persisted model in migration order
func Models() []any {
	return []any{&User{}, &Artist{}, &Album{}, &Track{}, &Favorite{}}
}
