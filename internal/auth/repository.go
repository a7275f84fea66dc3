package auth

import (
	"gorm.io/gorm"
)

type Repository interface {
	Create(user *User) error
	FindByUsername(username string) (*User, error)
	List(offset, limit int) ([]User, error)
	UpdatePassword(username string, hashed string) error
	LinkMember(username string, memberID uint) error
	Delete(username string) error
	FindAdmin() (*User, error)
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

// Create a new user
func (r *repository) Create(user *User) error {
	return r.db.Create(user).Error
}

// Find user by username (used in login & token resolution)
func (r *repository) FindByUsername(username string) (*User, error) {
	var u User
	err := r.db.Where("username = ?", username).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// List users in insertion order
func (r *repository) List(offset, limit int) ([]User, error) {
	var users []User
	err := r.db.Order("created_at ASC").Offset(offset).Limit(limit).Find(&users).Error
	return users, err
}

func (r *repository) UpdatePassword(username string, hashed string) error {
	return r.db.Model(&User{}).Where("username = ?", username).
		Update("hashed_password", hashed).Error
}

// LinkMember attaches a member record to the user (one-to-one, owning side)
func (r *repository) LinkMember(username string, memberID uint) error {
	return r.db.Model(&User{}).Where("username = ?", username).
		Update("member_id", memberID).Error
}

func (r *repository) Delete(username string) error {
	return r.db.Where("username = ?", username).Delete(&User{}).Error
}

// FindAdmin returns any admin user, used by the startup seed to decide
// whether one already exists
func (r *repository) FindAdmin() (*User, error) {
	var u User
	err := r.db.Where("is_admin = ?", true).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}
