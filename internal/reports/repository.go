package reports

import (
	"gorm.io/gorm"
)

// Repository reads denormalised report rows straight from the database.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// MemberRows returns the full roster with lookup names resolved.
func (r *Repository) MemberRows() ([]MemberReportRow, error) {
	var rows []MemberReportRow
	err := r.DB.Table("members").
		Select(`members.id, members.first_name,
			COALESCE(members.other_names, '') AS other_names,
			members.last_name, members.sex, members.phone_number,
			COALESCE(halls.name, '') AS hall,
			COALESCE(members.room_number, '') AS room_number,
			COALESCE(programmes.name, '') AS programme,
			COALESCE(levels.name, '') AS level,
			members.date_of_birth,
			COALESCE(congregations.name, '') AS congregation,
			COALESCE(committees.name, '') AS committee`).
		Joins("LEFT JOIN halls ON halls.id = members.hall_id").
		Joins("LEFT JOIN programmes ON programmes.id = members.programme_id").
		Joins("LEFT JOIN levels ON levels.id = members.level_id").
		Joins("LEFT JOIN congregations ON congregations.id = members.congregation_id").
		Joins("LEFT JOIN committees ON committees.id = members.committee_id").
		Order("members.id ASC").
		Scan(&rows).Error
	return rows, err
}

// AttendanceRows returns every attendee of the given event.
func (r *Repository) AttendanceRows(eventID uint) ([]AttendanceReportRow, error) {
	var rows []AttendanceReportRow
	err := r.DB.Table("member_event_links").
		Select(`events.id AS event_id, events.name AS event_name,
			members.id AS member_id, members.first_name,
			COALESCE(members.other_names, '') AS other_names,
			members.last_name, members.phone_number,
			COALESCE(halls.name, '') AS hall,
			COALESCE(programmes.name, '') AS programme`).
		Joins("JOIN events ON events.id = member_event_links.event_id").
		Joins("JOIN members ON members.id = member_event_links.member_id").
		Joins("LEFT JOIN halls ON halls.id = members.hall_id").
		Joins("LEFT JOIN programmes ON programmes.id = members.programme_id").
		Where("member_event_links.event_id = ?", eventID).
		Order("members.id ASC").
		Scan(&rows).Error
	return rows, err
}

// EventExists reports whether the event id is known.
func (r *Repository) EventExists(eventID uint) (bool, error) {
	var count int64
	err := r.DB.Table("events").Where("id = ?", eventID).Count(&count).Error
	return count > 0, err
}
