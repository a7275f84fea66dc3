package lookup

import (
	"gorm.io/gorm"
)

// Item is the row shape shared by every lookup table.
type Item struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Repository interface {
	Create(table string, item *Item) error
	List(table string, offset, limit int) ([]Item, error)
	GetByID(table string, id uint) (*Item, error)
	FindByName(table, name string) (*Item, error)
	UpdateName(table string, id uint, name string) error
	Delete(table string, id uint) error
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(table string, item *Item) error {
	return r.db.Table(table).Create(item).Error
}

// List returns rows in insertion order
func (r *repository) List(table string, offset, limit int) ([]Item, error) {
	var items []Item
	err := r.db.Table(table).Order("id ASC").Offset(offset).Limit(limit).Find(&items).Error
	return items, err
}

func (r *repository) GetByID(table string, id uint) (*Item, error) {
	var item Item
	err := r.db.Table(table).Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) FindByName(table, name string) (*Item, error) {
	var item Item
	err := r.db.Table(table).Where("name = ?", name).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) UpdateName(table string, id uint, name string) error {
	return r.db.Table(table).Where("id = ?", id).Update("name", name).Error
}

func (r *repository) Delete(table string, id uint) error {
	return r.db.Table(table).Where("id = ?", id).Delete(&Item{}).Error
}
