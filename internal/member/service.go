package member

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/kdanso/campus-ministry-backend/internal/auditlog"
	"github.com/kdanso/campus-ministry-backend/internal/auth"
	"github.com/kdanso/campus-ministry-backend/internal/lookup"
)

var (
	ErrNotFound   = errors.New("member not found")
	ErrInvalidDOB = errors.New("invalid date_of_birth format. Use YYYY-MM-DD")
)

// LookupError reports a named lookup row that does not exist, e.g. a
// member created with an unknown hall.
type LookupError struct {
	Resource string
	Name     string
}

func (e *LookupError) Error() string {
	return e.Resource + " " + e.Name + " not found"
}

// Service wraps business logic for membership records
type Service struct {
	Repo     *Repository
	Lookups  lookup.Repository
	AuthRepo auth.Repository
	AuditSvc auditlog.Service
}

func NewService(r *Repository, lookups lookup.Repository, authRepo auth.Repository, auditSvc auditlog.Service) *Service {
	return &Service{
		Repo:     r,
		Lookups:  lookups,
		AuthRepo: authRepo,
		AuditSvc: auditSvc,
	}
}

// ===========================
// 🎯 Create Member
//
// Any authenticated user may create a member record; a non-admin caller
// without a linked member gets the new record attached to their account.
func (s *Service) Create(req *CreateMemberRequest, actor *auth.User, ip string) (*MemberResponse, error) {
	if _, err := time.Parse("2006-01-02", req.DateOfBirth); err != nil {
		return nil, ErrInvalidDOB
	}

	m := &Member{
		FirstName:                req.FirstName,
		OtherNames:               req.OtherNames,
		LastName:                 req.LastName,
		Sex:                      req.Sex,
		PhoneNumber:              req.PhoneNumber,
		RoomNumber:               req.RoomNumber,
		DateOfBirth:              req.DateOfBirth,
		EmergencyContactName:     req.EmergencyContactName,
		EmergencyContactPhone:    req.EmergencyContactPhone,
		EmergencyContactRelation: req.EmergencyContactRelation,
	}

	var err error
	if m.HallID, err = s.resolveLookup(lookup.TableHalls, "hall", req.Hall); err != nil {
		return nil, err
	}
	if m.ProgrammeID, err = s.resolveLookup(lookup.TableProgrammes, "programme", req.Programme); err != nil {
		return nil, err
	}
	if m.LevelID, err = s.resolveLookup(lookup.TableLevels, "level", req.Level); err != nil {
		return nil, err
	}
	if m.CongregationID, err = s.resolveLookup(lookup.TableCongregations, "congregation", req.Congregation); err != nil {
		return nil, err
	}
	if m.CommitteeID, err = s.resolveLookup(lookup.TableCommittees, "committee", req.Committee); err != nil {
		return nil, err
	}

	if err := s.Repo.Create(m); err != nil {
		return nil, err
	}

	// Self-service signup path: link the fresh record to its creator
	if actor != nil && !actor.IsAdmin && actor.MemberID == nil {
		if err := s.AuthRepo.LinkMember(actor.Username, m.ID); err != nil {
			return nil, err
		}
	}

	s.audit(actor, "MEMBER_CREATED", map[string]interface{}{
		"member_id": m.ID,
		"name":      m.FirstName + " " + m.LastName,
	}, ip)

	return s.toResponse(m)
}

// ===========================
// 🔍 Get Member by ID (with attendance)
func (s *Service) GetByID(id uint) (*MemberResponse, error) {
	m, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.toResponse(m)
}

// ===========================
// 📄 List Members (with attendance)
func (s *Service) List(offset, limit int) ([]MemberResponse, error) {
	members, err := s.Repo.List(offset, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]MemberResponse, 0, len(members))
	for i := range members {
		resp, err := s.toResponse(&members[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

// ===========================
// 🪪 List Member Cards (no attendance)
func (s *Service) ListCards(offset, limit int) ([]MemberCard, error) {
	members, err := s.Repo.List(offset, limit)
	if err != nil {
		return nil, err
	}

	cards := make([]MemberCard, 0, len(members))
	for i := range members {
		card, err := s.toCard(&members[i])
		if err != nil {
			return nil, err
		}
		cards = append(cards, *card)
	}
	return cards, nil
}

// ===========================
// 🛠 Update Member (partial; empty body leaves the record identical)
func (s *Service) Update(id uint, req *UpdateMemberRequest, actor *auth.User, ip string) (*MemberResponse, error) {
	m, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.FirstName != nil {
		m.FirstName = *req.FirstName
	}
	if req.OtherNames != nil {
		m.OtherNames = req.OtherNames
	}
	if req.LastName != nil {
		m.LastName = *req.LastName
	}
	if req.Sex != nil {
		m.Sex = *req.Sex
	}
	if req.PhoneNumber != nil {
		m.PhoneNumber = *req.PhoneNumber
	}
	if req.RoomNumber != nil {
		m.RoomNumber = req.RoomNumber
	}
	if req.DateOfBirth != nil {
		if _, err := time.Parse("2006-01-02", *req.DateOfBirth); err != nil {
			return nil, ErrInvalidDOB
		}
		m.DateOfBirth = *req.DateOfBirth
	}
	if req.EmergencyContactName != nil {
		m.EmergencyContactName = req.EmergencyContactName
	}
	if req.EmergencyContactPhone != nil {
		m.EmergencyContactPhone = req.EmergencyContactPhone
	}
	if req.EmergencyContactRelation != nil {
		m.EmergencyContactRelation = req.EmergencyContactRelation
	}

	if req.Hall != nil {
		if m.HallID, err = s.resolveLookup(lookup.TableHalls, "hall", req.Hall); err != nil {
			return nil, err
		}
	}
	if req.Programme != nil {
		if m.ProgrammeID, err = s.resolveLookup(lookup.TableProgrammes, "programme", req.Programme); err != nil {
			return nil, err
		}
	}
	if req.Level != nil {
		if m.LevelID, err = s.resolveLookup(lookup.TableLevels, "level", req.Level); err != nil {
			return nil, err
		}
	}
	if req.Congregation != nil {
		if m.CongregationID, err = s.resolveLookup(lookup.TableCongregations, "congregation", req.Congregation); err != nil {
			return nil, err
		}
	}
	if req.Committee != nil {
		if m.CommitteeID, err = s.resolveLookup(lookup.TableCommittees, "committee", req.Committee); err != nil {
			return nil, err
		}
	}

	if err := s.Repo.Update(m); err != nil {
		return nil, err
	}

	s.audit(actor, "MEMBER_UPDATED", map[string]interface{}{"member_id": m.ID}, ip)

	return s.toResponse(m)
}

// ===========================
// ❌ Delete Member
func (s *Service) Delete(id uint, actor *auth.User, ip string) error {
	if _, err := s.Repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.Repo.Delete(id); err != nil {
		return err
	}

	s.audit(actor, "MEMBER_DELETED", map[string]interface{}{"member_id": id}, ip)
	return nil
}

// ===========================
// Helpers

// resolveLookup maps a lookup name from the API onto its surrogate id.
// A name that matches no row is an explicit not-found, never a silent
// dangling reference.
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

func (s *Service) toCard(m *Member) (*MemberCard, error) {
	return &MemberCard{
		ID:                       m.ID,
		FirstName:                m.FirstName,
		OtherNames:               m.OtherNames,
		LastName:                 m.LastName,
		Sex:                      m.Sex,
		PhoneNumber:              m.PhoneNumber,
		Hall:                     s.lookupName(lookup.TableHalls, m.HallID),
		RoomNumber:               m.RoomNumber,
		Programme:                s.lookupName(lookup.TableProgrammes, m.ProgrammeID),
		Level:                    s.lookupName(lookup.TableLevels, m.LevelID),
		DateOfBirth:              m.DateOfBirth,
		Congregation:             s.lookupName(lookup.TableCongregations, m.CongregationID),
		Committee:                s.lookupName(lookup.TableCommittees, m.CommitteeID),
		EmergencyContactName:     m.EmergencyContactName,
		EmergencyContactPhone:    m.EmergencyContactPhone,
		EmergencyContactRelation: m.EmergencyContactRelation,
	}, nil
}

func (s *Service) toResponse(m *Member) (*MemberResponse, error) {
	card, err := s.toCard(m)
	if err != nil {
		return nil, err
	}

	events, err := s.Repo.EventsAttended(m.ID)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []EventSummary{}
	}

	return &MemberResponse{MemberCard: *card, EventsAttended: events}, nil
}

func (s *Service) audit(actor *auth.User, action string, details map[string]interface{}, ip string) {
	if s.AuditSvc == nil {
		return
	}
	var actorName *string
	if actor != nil {
		actorName = &actor.Username
	}
	_ = s.AuditSvc.LogAction(context.Background(), actorName, action, details, ip, "success")
}
