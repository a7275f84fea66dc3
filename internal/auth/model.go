package auth

import "time"

// User is the authentication principal. Username is the natural primary
// key; MemberID is the owning side of the optional one-to-one link to a
// membership record. The reverse direction is resolved by query, never
// stored.
type User struct {
	Username       string    `gorm:"primaryKey;size:100" json:"username"`
	Email          string    `gorm:"size:255;not null" json:"email"`
	FullName       string    `gorm:"size:255" json:"full_name"`
	HashedPassword string    `gorm:"size:255" json:"-"`
	Disabled       bool      `gorm:"default:false" json:"disabled"`
	IsAdmin        bool      `gorm:"default:false" json:"is_admin"`
	MemberID       *uint     `gorm:"index" json:"member_id,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
