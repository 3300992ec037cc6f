package store

import "gorm.io/gorm"

// Scope is one reusable query fragment from the catalog.
type Scope = func(*gorm.DB) *gorm.DB

// UserByEmail matches a user row by exact email.
func UserByEmail(email string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("email = ?", email)
	}
}

// UserByName matches a user row by exact name.
func UserByName(name string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("name = ?", name)
	}
}

// ByID matches any row by primary key.
func ByID(id uint64) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	}
}

// OrderedBy sorts ascending by the resource's display column.
func OrderedBy(column string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(column + " ASC")
	}
}
