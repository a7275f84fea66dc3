package event

import (
	"time"
)

// ============================
// 🔷 GORM Event Model
//
// CreatedOn is fixed at creation and never mutated afterwards.
type Event struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	CategoryID *uint     `gorm:"index" json:"-"`
	SemesterID *uint     `gorm:"index" json:"-"`
	CreatedOn  string    `gorm:"size:10;not null" json:"created_on"` // YYYY-MM-DD
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Event) TableName() string {
	return "events"
}

// MemberEventLink records that a member attended an event. The composite
// primary key keeps attendance unique per (event, member) pair.
type MemberEventLink struct {
	EventID  uint `gorm:"primaryKey" json:"event_id"`
	MemberID uint `gorm:"primaryKey" json:"member_id"`
}

func (MemberEventLink) TableName() string {
	return "member_event_links"
}

// ============================
// 🟡 Create Event Request
type CreateEventRequest struct {
	Name     string  `json:"name" binding:"required"`
	Category *string `json:"category"`
	Semester *string `json:"semester"`
}

// ============================
// 🟠 Update Event Request (partial)
type UpdateEventRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Semester *string `json:"semester"`
}

// ============================
// 🔷 Read models

// MemberSummary is the slice of member data embedded in an event read.
type MemberSummary struct {
	ID          uint    `json:"id"`
	FirstName   string  `json:"first_name"`
	OtherNames  *string `json:"other_names"`
	LastName    string  `json:"last_name"`
	PhoneNumber string  `json:"phone_number"`
}

// EventResponse is the API shape with lookup names and attendees embedded.
type EventResponse struct {
	ID              uint            `json:"id"`
	Name            string          `json:"name"`
	Category        *string         `json:"category"`
	Semester        *string         `json:"semester"`
	CreatedOn       string          `json:"created_on"`
	MembersAttended []MemberSummary `json:"members_attended"`
}
