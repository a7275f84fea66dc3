package event

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/kdanso/campus-ministry-backend/internal/auditlog"
	"github.com/kdanso/campus-ministry-backend/internal/lookup"
)

var (
	ErrNotFound        = errors.New("event not found")
	ErrMemberNotFound  = errors.New("member not found")
	ErrAlreadyAttended = errors.New("member already attended")
)

// LookupError reports a named lookup row that does not exist, e.g. an
// event created with an unknown category.
type LookupError struct {
	Resource string
	Name     string
}

func (e *LookupError) Error() string {
	return e.Resource + " " + e.Name + " not found"
}

// Service wraps business logic for events and attendance
type Service struct {
	Repo     *Repository
	Lookups  lookup.Repository
	AuditSvc auditlog.Service
}

func NewService(r *Repository, lookups lookup.Repository, auditSvc auditlog.Service) *Service {
	return &Service{Repo: r, Lookups: lookups, AuditSvc: auditSvc}
}

// ===========================
// 🎯 Create Event
func (s *Service) Create(req *CreateEventRequest, actor *string, ip string) (*EventResponse, error) {
	e := &Event{
		Name:      req.Name,
		CreatedOn: time.Now().Format("2006-01-02"),
	}

	var err error
	if e.CategoryID, err = s.resolveLookup(lookup.TableCategories, "category", req.Category); err != nil {
		return nil, err
	}
	if e.SemesterID, err = s.resolveLookup(lookup.TableSemesters, "semester", req.Semester); err != nil {
		return nil, err
	}

	if err := s.Repo.Create(e); err != nil {
		return nil, err
	}

	s.audit(actor, "EVENT_CREATED", map[string]interface{}{
		"event_id": e.ID,
		"name":     e.Name,
	}, ip)

	return s.toResponse(e)
}

// ===========================
// 🔍 Get Event by ID (with attendees)
func (s *Service) GetByID(id uint) (*EventResponse, error) {
	e, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.toResponse(e)
}

// ===========================
// 📄 List Events (with attendees)
func (s *Service) List(offset, limit int) ([]EventResponse, error) {
	events, err := s.Repo.List(offset, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]EventResponse, 0, len(events))
	for i := range events {
		resp, err := s.toResponse(&events[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

// ===========================
// 🛠 Update Event (partial; created_on is never touched)
func (s *Service) Update(id uint, req *UpdateEventRequest, actor *string, ip string) (*EventResponse, error) {
	e, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Category != nil {
		if e.CategoryID, err = s.resolveLookup(lookup.TableCategories, "category", req.Category); err != nil {
			return nil, err
		}
	}
	if req.Semester != nil {
		if e.SemesterID, err = s.resolveLookup(lookup.TableSemesters, "semester", req.Semester); err != nil {
			return nil, err
		}
	}

	if err := s.Repo.Update(e); err != nil {
		return nil, err
	}

	s.audit(actor, "EVENT_UPDATED", map[string]interface{}{"event_id": e.ID}, ip)

	return s.toResponse(e)
}

// ===========================
// ❌ Delete Event
func (s *Service) Delete(id uint, actor *string, ip string) error {
	if _, err := s.Repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.Repo.Delete(id); err != nil {
		return err
	}

	s.audit(actor, "EVENT_DELETED", map[string]interface{}{"event_id": id}, ip)
	return nil
}

// ===========================
// ➕ Add Attendee
//
// Both lookups fail descriptively; a duplicate pair is rejected before
// the composite primary key would.
func (s *Service) AddAttendee(eventID, memberID uint, actor *string, ip string) error {
	exists, err := s.Repo.MemberExists(memberID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrMemberNotFound
	}

	if _, err := s.Repo.GetByID(eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	attended, err := s.Repo.HasAttended(eventID, memberID)
	if err != nil {
		return err
	}
	if attended {
		return ErrAlreadyAttended
	}

	if err := s.Repo.AddAttendee(eventID, memberID); err != nil {
		return err
	}

	s.audit(actor, "EVENT_ATTENDEE_ADDED", map[string]interface{}{
		"event_id":  eventID,
		"member_id": memberID,
	}, ip)

	return nil
}

// ===========================
// Helpers

func (s *Service) resolveLookup(table, resource string, name *string) (*uint, error) {
	if name == nil || *name == "" {
		return nil, nil
	}
	item, err := s.Lookups.FindByName(table, *name)
	if err != nil {
		return nil, &LookupError{Resource: resource, Name: *name}
	}
	return &item.ID, nil
}

func (s *Service) lookupName(table string, id *uint) *string {
	if id == nil {
		return nil
	}
	item, err := s.Lookups.GetByID(table, *id)
	if err != nil {
		return nil
	}
	return &item.Name
}

func (s *Service) toResponse(e *Event) (*EventResponse, error) {
	attendees, err := s.Repo.Attendees(e.ID)
	if err != nil {
		return nil, err
	}
	if attendees == nil {
		attendees = []MemberSummary{}
	}

	return &EventResponse{
		ID:              e.ID,
		Name:            e.Name,
		Category:        s.lookupName(lookup.TableCategories, e.CategoryID),
		Semester:        s.lookupName(lookup.TableSemesters, e.SemesterID),
		CreatedOn:       e.CreatedOn,
		MembersAttended: attendees,
	}, nil
}

func (s *Service) audit(actor *string, action string, details map[string]interface{}, ip string) {
	if s.AuditSvc == nil {
		return
	}
	_ = s.AuditSvc.LogAction(context.Background(), actor, action, details, ip, "success")
}
