package member

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
// 🎯 Create Member
func (r *Repository) Create(m *Member) error {
	return r.DB.Create(m).Error
}

// ===========================
// 🔍 Get Member By ID
func (r *Repository) GetByID(id uint) (*Member, error) {
	var m Member
	err := r.DB.First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ===========================
// 📄 List Members with pagination, insertion order
func (r *Repository) List(offset, limit int) ([]Member, error) {
	var members []Member
	err := r.DB.Order("id ASC").Offset(offset).Limit(limit).Find(&members).Error
	return members, err
}

// ===========================
// 🛠 Update Member
func (r *Repository) Update(m *Member) error {
	return r.DB.Save(m).Error
}

// ===========================
// ❌ Delete Member (attendance links go with it)
func (r *Repository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM member_event_links WHERE member_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&Member{}, id).Error
	})
}

// ===========================
// 📆 Events attended by a member, in attendance order
func (r *Repository) EventsAttended(memberID uint) ([]EventSummary, error) {
	var events []EventSummary
	err := r.DB.Table("member_event_links").
		Select("events.id, events.name, categories.name AS category, semesters.name AS semester, events.created_on").
		Joins("JOIN events ON events.id = member_event_links.event_id").
		Joins("LEFT JOIN categories ON categories.id = events.category_id").
		Joins("LEFT JOIN semesters ON semesters.id = events.semester_id").
		Where("member_event_links.member_id = ?", memberID).
		Order("events.id ASC").
		Scan(&events).Error
	return events, err
}
