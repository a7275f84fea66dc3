package member

import (
	"time"
)

// Member stores lookup references as surrogate ids; the API carries the
// unique lookup names and the service translates between the two.
type Member struct {
	ID                       uint      `gorm:"primaryKey" json:"id"`
	FirstName                string    `gorm:"size:100;not null" json:"first_name"`
	OtherNames               *string   `gorm:"size:100" json:"other_names,omitempty"`
	LastName                 string    `gorm:"size:100;not null" json:"last_name"`
	Sex                      string    `gorm:"size:10;not null" json:"sex"`
	PhoneNumber              string    `gorm:"size:20;not null" json:"phone_number"`
	HallID                   *uint     `gorm:"index" json:"-"`
	RoomNumber               *string   `gorm:"size:20" json:"room_number,omitempty"`
	ProgrammeID              *uint     `gorm:"index" json:"-"`
	LevelID                  *uint     `gorm:"index" json:"-"`
	DateOfBirth              string    `gorm:"size:10;not null" json:"date_of_birth"` // YYYY-MM-DD
	CongregationID           *uint     `gorm:"index" json:"-"`
	CommitteeID              *uint     `gorm:"index" json:"-"`
	EmergencyContactName     *string   `gorm:"size:255" json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone    *string   `gorm:"size:20" json:"emergency_contact_phone,omitempty"`
	EmergencyContactRelation *string   `gorm:"size:50" json:"emergency_contact_relation,omitempty"`
	CreatedAt                time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Member) TableName() string {
	return "members"
}

// ============================
// 🟡 Create Member Request
type CreateMemberRequest struct {
	FirstName                string  `json:"first_name" binding:"required"`
	OtherNames               *string `json:"other_names"`
	LastName                 string  `json:"last_name" binding:"required"`
	Sex                      string  `json:"sex" binding:"required"`
	PhoneNumber              string  `json:"phone_number" binding:"required"`
	Hall                     *string `json:"hall"`
	RoomNumber               *string `json:"room_number"`
	Programme                *string `json:"programme"`
	Level                    *string `json:"level"`
	DateOfBirth              string  `json:"date_of_birth" binding:"required"` // YYYY-MM-DD
	Congregation             *string `json:"congregation"`
	Committee                *string `json:"committee"`
	EmergencyContactName     *string `json:"emergency_contact_name"`
	EmergencyContactPhone    *string `json:"emergency_contact_phone"`
	EmergencyContactRelation *string `json:"emergency_contact_relation"`
}

// ============================
// 🟠 Update Member Request (partial; only supplied fields are applied)
type UpdateMemberRequest struct {
	FirstName                *string `json:"first_name"`
	OtherNames               *string `json:"other_names"`
	LastName                 *string `json:"last_name"`
	Sex                      *string `json:"sex"`
	PhoneNumber              *string `json:"phone_number"`
	Hall                     *string `json:"hall"`
	RoomNumber               *string `json:"room_number"`
	Programme                *string `json:"programme"`
	Level                    *string `json:"level"`
	DateOfBirth              *string `json:"date_of_birth"`
	Congregation             *string `json:"congregation"`
	Committee                *string `json:"committee"`
	EmergencyContactName     *string `json:"emergency_contact_name"`
	EmergencyContactPhone    *string `json:"emergency_contact_phone"`
	EmergencyContactRelation *string `json:"emergency_contact_relation"`
}

// ============================
// 🔷 Read models

// EventSummary is the slice of event data embedded in a member read.
type EventSummary struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Category  *string `json:"category"`
	Semester  *string `json:"semester"`
	CreatedOn string  `json:"created_on"`
}

// MemberCard is the lightweight read variant without attendance.
type MemberCard struct {
	ID                       uint    `json:"id"`
	FirstName                string  `json:"first_name"`
	OtherNames               *string `json:"other_names"`
	LastName                 string  `json:"last_name"`
	Sex                      string  `json:"sex"`
	PhoneNumber              string  `json:"phone_number"`
	Hall                     *string `json:"hall"`
	RoomNumber               *string `json:"room_number"`
	Programme                *string `json:"programme"`
	Level                    *string `json:"level"`
	DateOfBirth              string  `json:"date_of_birth"`
	Congregation             *string `json:"congregation"`
	Committee                *string `json:"committee"`
	EmergencyContactName     *string `json:"emergency_contact_name"`
	EmergencyContactPhone    *string `json:"emergency_contact_phone"`
	EmergencyContactRelation *string `json:"emergency_contact_relation"`
}

// MemberResponse is the full read variant with attendance embedded.
type MemberResponse struct {
	MemberCard
	EventsAttended []EventSummary `json:"events_attended"`
}
