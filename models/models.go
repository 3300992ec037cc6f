package models

import (
	"time"

	"github.com/lib/pq"
)

// User is a directory account. The password column holds a bcrypt digest,
// never the plaintext.
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"password"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Profile is the shared row shape behind the companies and associates
// tables. ImagePath references a blob owned exclusively by this row.
type Profile struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"not null" json:"description"`
	ImagePath   string    `json:"image_path"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Event carries up to five image references, kept in upload order.
type Event struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	EventName        string         `gorm:"size:255;not null" json:"event_name"`
	EventDescription string         `gorm:"not null" json:"event_description"`
	EventImages      pq.StringArray `gorm:"type:text[]" json:"event_images"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}
