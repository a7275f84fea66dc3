package lookup

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/kdanso/campus-ministry-backend/internal/auditlog"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrNameTaken = errors.New("name already exists")
)

// Service carries the CRUD logic for one lookup resource. Routes build
// one instance per table.
type Service struct {
	repo     Repository
	auditSvc auditlog.Service
	table    string
	label    string
}

func NewService(repo Repository, auditSvc auditlog.Service, table, label string) *Service {
	return &Service{repo: repo, auditSvc: auditSvc, table: table, label: label}
}

// Label is the human-readable resource name used in error messages.
func (s *Service) Label() string { return s.label }

func (s *Service) Create(name string, actor *string, ip string) (*Item, error) {
	if existing, err := s.repo.FindByName(s.table, name); err == nil && existing != nil {
		return nil, ErrNameTaken
	}

	item := &Item{Name: name}
	if err := s.repo.Create(s.table, item); err != nil {
		// the unique index is the backstop when a concurrent insert
		// slips past the name check above
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrNameTaken
		}
		return nil, err
	}

	s.audit(actor, s.action("CREATED"), map[string]interface{}{"id": item.ID, "name": name}, ip)
	return item, nil
}

func (s *Service) List(offset, limit int) ([]Item, error) {
	return s.repo.List(s.table, offset, limit)
}

func (s *Service) GetByID(id uint) (*Item, error) {
	item, err := s.repo.GetByID(s.table, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return item, nil
}

// Update applies a partial update; a nil name leaves the row unchanged.
func (s *Service) Update(id uint, name *string, actor *string, ip string) (*Item, error) {
	item, err := s.repo.GetByID(s.table, id)
	if err != nil {
		return nil, ErrNotFound
	}

	if name == nil {
		return item, nil
	}

	if existing, err := s.repo.FindByName(s.table, *name); err == nil && existing.ID != id {
		return nil, ErrNameTaken
	}

	if err := s.repo.UpdateName(s.table, id, *name); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrNameTaken
		}
		return nil, err
	}
	item.Name = *name

	s.audit(actor, s.action("UPDATED"), map[string]interface{}{"id": id, "name": *name}, ip)
	return item, nil
}

func (s *Service) Delete(id uint, actor *string, ip string) error {
	if _, err := s.repo.GetByID(s.table, id); err != nil {
		return ErrNotFound
	}

	if err := s.repo.Delete(s.table, id); err != nil {
		return err
	}

	s.audit(actor, s.action("DELETED"), map[string]interface{}{"id": id}, ip)
	return nil
}

func (s *Service) action(verb string) string {
	return strings.ToUpper(s.label) + "_" + verb
}

func (s *Service) audit(actor *string, action string, details map[string]interface{}, ip string) {
	if s.auditSvc == nil {
		return
	}
	_ = s.auditSvc.LogAction(context.Background(), actor, action, details, ip, "success")
}
