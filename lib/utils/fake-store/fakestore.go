// Package fakestore provides in-memory store providers for handler tests.
package fakestore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Aaron071982/riseandshineHRM-final-sub000/models"
	dbmodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/db"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type CandidateStore struct {
	mu         sync.Mutex
	Records    map[string]dbmodels.Candidate
	UpdateErr  error
	GetErr     error
	UpdateCall int
	// FailUpdate decides by call number (1-based) whether an Update fails.
	FailUpdate func(call int) bool
}

func NewCandidateStore(list ...dbmodels.Candidate) *CandidateStore {
	s := &CandidateStore{Records: map[string]dbmodels.Candidate{}}
	for _, rec := range list {
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		s.Records[rec.ID] = rec
	}
	return s
}

func (s *CandidateStore) Create(ctx context.Context, rec dbmodels.Candidate) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.ID = strings.Clone(rec.ID)
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt
	s.Records[rec.ID] = rec
	return rec.ID, nil
}

func (s *CandidateStore) Update(ctx context.Context, id string, updMap map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.UpdateCall++
	if s.UpdateErr != nil {
		return s.UpdateErr
	}
	if s.FailUpdate != nil && s.FailUpdate(s.UpdateCall) {
		return errors.New("update failed")
	}
	rec, ok := s.Records[id]
	if !ok {
		return errors.New("candidate not found")
	}
	for key, value := range updMap {
		switch key {
		case "status":
			rec.Status = value.(models.CandidateStatus)
		case "user_id":
			userID := strings.Clone(value.(string))
			rec.UserID = &userID
		case "first_name":
			rec.FirstName = value.(string)
		case "last_name":
			rec.LastName = value.(string)
		case "email":
			rec.Email = value.(string)
		case "phone":
			rec.Phone = value.(string)
		case "notes":
			rec.Notes = value.(string)
		case "forty_hour_course_completed":
			rec.FortyHourCourseCompleted = value.(bool)
		case "schedule_completed":
			rec.ScheduleCompleted = value.(bool)
		default:
			return errors.Errorf("fakestore: unsupported candidate field %q", key)
		}
	}
	rec.UpdatedAt = time.Now()
	s.Records[rec.ID] = rec
	return nil
}

func (s *CandidateStore) GetByID(ctx context.Context, id string) (*dbmodels.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	rec, ok := s.Records[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *CandidateStore) GetByUserID(ctx context.Context, userID string) (*dbmodels.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.Records {
		if rec.UserID != nil && *rec.UserID == userID {
			found := rec
			return &found, nil
		}
	}
	return nil, nil
}

func (s *CandidateStore) List(ctx context.Context, filter dbmodels.CandidateFilter) ([]dbmodels.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.filter(filter)
	offset := (filter.Page - 1) * filter.Limit
	if filter.Limit <= 0 || offset < 0 {
		return list, nil
	}
	if offset >= len(list) {
		return []dbmodels.Candidate{}, nil
	}
	end := offset + filter.Limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end], nil
}

func (s *CandidateStore) ListCount(ctx context.Context, filter dbmodels.CandidateFilter) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.filter(filter))), nil
}

func (s *CandidateStore) filter(filter dbmodels.CandidateFilter) []dbmodels.Candidate {
	list := []dbmodels.Candidate{}
	search := strings.ToLower(filter.Search)
	for _, rec := range s.Records {
		if filter.Status != "" && rec.Status != filter.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(rec.GetFullName()), search) &&
			!strings.Contains(strings.ToLower(rec.Email), search) {
			continue
		}
		list = append(list, rec)
	}
	sort.Slice(list, func(a, b int) bool { return list[a].ID < list[b].ID })
	return list
}

type TaskStore struct {
	mu          sync.Mutex
	Records     map[string][]dbmodels.OnboardingTask
	CreateCalls int
	DeleteCalls int
	UpdateCalls int
	// FailCreate decides by call number (1-based) whether a Create fails.
	FailCreate func(call int) bool
	ListErr    error
	DeleteErr  error
}

func NewTaskStore() *TaskStore {
	return &TaskStore{Records: map[string][]dbmodels.OnboardingTask{}}
}

func (s *TaskStore) Create(ctx context.Context, rec dbmodels.OnboardingTask) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.CreateCalls++
	if s.FailCreate != nil && s.FailCreate(s.CreateCalls) {
		return "", errors.New("insert failed")
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.CandidateID = strings.Clone(rec.CandidateID)
	s.Records[rec.CandidateID] = append(s.Records[rec.CandidateID], rec)
	return rec.ID, nil
}

func (s *TaskStore) GetByID(ctx context.Context, candidateID, id string) (*dbmodels.OnboardingTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.Records[candidateID] {
		if rec.ID == id {
			found := rec
			return &found, nil
		}
	}
	return nil, nil
}

func (s *TaskStore) Update(ctx context.Context, id string, updMap map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.UpdateCalls++
	for candidateID, list := range s.Records {
		for idx, rec := range list {
			if rec.ID != id {
				continue
			}
			for key, value := range updMap {
				switch key {
				case "is_completed":
					rec.IsCompleted = value.(bool)
				case "completed_at":
					completedAt := value.(time.Time)
					rec.CompletedAt = &completedAt
				case "upload_url":
					rec.UploadUrl = value.(string)
				default:
					return errors.Errorf("fakestore: unsupported task field %q", key)
				}
			}
			s.Records[candidateID][idx] = rec
			return nil
		}
	}
	return errors.New("task not found")
}

func (s *TaskStore) ListByCandidate(ctx context.Context, candidateID string) (dbmodels.OnboardingTasks, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	list := make(dbmodels.OnboardingTasks, len(s.Records[candidateID]))
	copy(list, s.Records[candidateID])
	sort.SliceStable(list, func(a, b int) bool { return list[a].SortOrder < list[b].SortOrder })
	return list, nil
}

func (s *TaskStore) DeleteByCandidate(ctx context.Context, candidateID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.DeleteCalls++
	if s.DeleteErr != nil {
		return 0, s.DeleteErr
	}
	deleted := len(s.Records[candidateID])
	delete(s.Records, candidateID)
	return deleted, nil
}

// Writes is the number of mutating calls seen so far.
func (s *TaskStore) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.CreateCalls + s.DeleteCalls + s.UpdateCalls
}

type AccountStore struct {
	mu      sync.Mutex
	Records map[string]dbmodels.User
	// RejectEmailUpdate makes every email change fail as a unique violation.
	RejectEmailUpdate bool
	UpdateErr         error
	Updates           []map[string]interface{}
}

func NewAccountStore(list ...dbmodels.User) *AccountStore {
	s := &AccountStore{Records: map[string]dbmodels.User{}}
	for _, rec := range list {
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		s.Records[rec.ID] = rec
	}
	return s
}

func (s *AccountStore) Create(ctx context.Context, rec dbmodels.User) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.emailTaken(rec.Email, "") {
		return "", gorm.ErrDuplicatedKey
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.ID = strings.Clone(rec.ID)
	s.Records[rec.ID] = rec
	return rec.ID, nil
}

func (s *AccountStore) Update(ctx context.Context, userID string, updMap map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Updates = append(s.Updates, updMap)
	if s.UpdateErr != nil {
		return s.UpdateErr
	}
	rec, ok := s.Records[userID]
	if !ok {
		return errors.New("user not found")
	}
	for key, value := range updMap {
		switch key {
		case "email":
			email := value.(string)
			if s.RejectEmailUpdate || s.emailTaken(email, userID) {
				return gorm.ErrDuplicatedKey
			}
			rec.Email = strings.Clone(email)
		case "role":
			rec.Role = value.(models.UserRole)
		case "is_active":
			rec.IsActive = value.(bool)
		default:
			return errors.Errorf("fakestore: unsupported user field %q", key)
		}
	}
	s.Records[rec.ID] = rec
	return nil
}

func (s *AccountStore) GetByID(ctx context.Context, userID string) (*dbmodels.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.Records[userID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *AccountStore) FindByEmail(ctx context.Context, email string) (*dbmodels.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.Records {
		if strings.EqualFold(rec.Email, email) {
			found := rec
			return &found, nil
		}
	}
	return nil, nil
}

func (s *AccountStore) emailTaken(email, exceptID string) bool {
	for id, rec := range s.Records {
		if id != exceptID && strings.EqualFold(rec.Email, email) {
			return true
		}
	}
	return false
}

type HistoryStore struct {
	mu      sync.Mutex
	Records []dbmodels.CandidateHistory
}

func (s *HistoryStore) Create(ctx context.Context, rec dbmodels.CandidateHistory) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.CandidateID = strings.Clone(rec.CandidateID)
	rec.CreatedAt = time.Now()
	s.Records = append(s.Records, rec)
	return rec.ID, nil
}

func (s *HistoryStore) ListCount(ctx context.Context, candidateID string) (int64, error) {
	list, _ := s.List(ctx, candidateID, 1, 1000)
	return int64(len(list)), nil
}

func (s *HistoryStore) List(ctx context.Context, candidateID string, page, limit int) ([]dbmodels.CandidateHistory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := []dbmodels.CandidateHistory{}
	for _, rec := range s.Records {
		if rec.CandidateID == candidateID {
			list = append(list, rec)
		}
	}
	offset := (page - 1) * limit
	if offset >= len(list) {
		return []dbmodels.CandidateHistory{}, nil
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end], nil
}
