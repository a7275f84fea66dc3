package event

import (
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ===========================
// 🎯 Create Event
func (r *Repository) Create(e *Event) error {
	return r.DB.Create(e).Error
}

// ===========================
// 🔍 Get Event By ID
func (r *Repository) GetByID(id uint) (*Event, error) {
	var e Event
	err := r.DB.First(&e, id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ===========================
// 📄 List Events with pagination, insertion order
func (r *Repository) List(offset, limit int) ([]Event, error) {
	var events []Event
	err := r.DB.Order("id ASC").Offset(offset).Limit(limit).Find(&events).Error
	return events, err
}

// ===========================
// 🛠 Update Event
func (r *Repository) Update(e *Event) error {
	return r.DB.Save(e).Error
}

// ===========================
// ❌ Delete Event (attendance links go with it)
func (r *Repository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&MemberEventLink{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Event{}, id).Error
	})
}

// ===========================
// 👥 Attendees of an event
func (r *Repository) Attendees(eventID uint) ([]MemberSummary, error) {
	var members []MemberSummary
	err := r.DB.Table("member_event_links").
		Select("members.id, members.first_name, members.other_names, members.last_name, members.phone_number").
		Joins("JOIN members ON members.id = member_event_links.member_id").
		Where("member_event_links.event_id = ?", eventID).
		Order("members.id ASC").
		Scan(&members).Error
	return members, err
}

// ===========================
// 🔗 Attendance link helpers
func (r *Repository) HasAttended(eventID, memberID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&MemberEventLink{}).
		Where("event_id = ? AND member_id = ?", eventID, memberID).
		Count(&count).Error
	return count > 0, err
}

func (r *Repository) AddAttendee(eventID, memberID uint) error {
	return r.DB.Create(&MemberEventLink{EventID: eventID, MemberID: memberID}).Error
}

// MemberExists checks the members table directly; the attendee path must
// fail descriptively instead of assuming the row is there.
func (r *Repository) MemberExists(memberID uint) (bool, error) {
	var count int64
	err := r.DB.Table("members").Where("id = ?", memberID).Count(&count).Error
	return count > 0, err
}
