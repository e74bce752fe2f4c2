// Package memstore is an in-memory store.Store used as a test double. It
// mirrors the gormstore behavior the rule layer depends on: sentinel errors,
// unique indexes on account email and (project, engineer) bid pairs, and the
// created-at orderings of each listing query.
package memstore

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/craftbridge/platform_be_craftbridge/internal/models"
	"github.com/craftbridge/platform_be_craftbridge/internal/store"
)

func New() *store.Store {
	bids := newBidStore()
	projects := newProjectStore()
	projects.bids = bids
	return &store.Store{
		Users:    &userStore{users: map[uuid.UUID]*models.User{}},
		Projects: projects,
		Bids:     bids,
		Messages: &messageStore{},
	}
}

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func containsFold(haystack []string, needle string) bool {
	for _, h := range haystack {
		if strings.Contains(strings.ToLower(h), strings.ToLower(needle)) {
			return true
		}
	}
	return false
}

type userStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
	order []uuid.UUID
}

func (s *userStore) Create(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return store.ErrDuplicate
		}
	}
	ensureID(&u.ID)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	s.users[u.ID] = &cp
	s.order = append(s.order, u.ID)
	return nil
}

func (s *userStore) ByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *userStore) ByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *userStore) Save(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.ID]; !ok {
		return store.ErrNotFound
	}
	u.UpdatedAt = time.Now()
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *userStore) ListEngineers(ctx context.Context, f store.EngineerFilter) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.User
	for i := len(s.order) - 1; i >= 0; i-- {
		u := s.users[s.order[i]]
		if u == nil || u.Role != models.RoleEngineer || !u.IsActive {
			continue
		}
		if f.Skill != "" && !containsFold(u.SkillList(), f.Skill) {
			continue
		}
		if f.Location != "" && !strings.Contains(strings.ToLower(u.Location), strings.ToLower(f.Location)) {
			continue
		}
		out = append(out, *u)
	}
	return out, nil
}

type projectStore struct {
	mu       sync.Mutex
	projects map[uuid.UUID]*models.Project
	order    []uuid.UUID
	bids     *bidStore
}

func newProjectStore() *projectStore {
	return &projectStore{projects: map[uuid.UUID]*models.Project{}}
}

func (s *projectStore) Create(ctx context.Context, p *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ensureID(&p.ID)
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	if p.Status == "" {
		p.Status = models.ProjectStatusOpen
	}
	cp := *p
	s.projects[p.ID] = &cp
	s.order = append(s.order, p.ID)
	return nil
}

func (s *projectStore) ByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *projectStore) List(ctx context.Context, f store.ProjectFilter) ([]models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Project
	for i := len(s.order) - 1; i >= 0; i-- {
		p := s.projects[s.order[i]]
		if p == nil {
			continue
		}
		if f.Status != "" && string(p.Status) != f.Status {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Difficulty != "" && p.Difficulty != f.Difficulty {
			continue
		}
		if f.Location != "" && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(f.Location)) {
			continue
		}
		if f.Skill != "" && !containsFold(p.RequiredSkillList(), f.Skill) {
			continue
		}
		if f.CommunityID != uuid.Nil && p.CommunityID != f.CommunityID {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (s *projectStore) Save(ctx context.Context, p *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[p.ID]; !ok {
		return store.ErrNotFound
	}
	p.UpdatedAt = time.Now()
	cp := *p
	s.projects[p.ID] = &cp
	return nil
}

func (s *projectStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.projects, id)
	return nil
}

func (s *projectStore) BidCount(ctx context.Context, projectID uuid.UUID) (int64, error) {
	if s.bids == nil {
		return 0, nil
	}
	bids, err := s.bids.ByProject(ctx, projectID)
	if err != nil {
		return 0, err
	}
	return int64(len(bids)), nil
}

func (s *projectStore) Categories(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := map[string]bool{}
	var out []string
	for _, id := range s.order {
		p := s.projects[id]
		if p == nil || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out, nil
}

func (s *projectStore) StatsByCommunity(ctx context.Context, communityID uuid.UUID) (int64, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total, completed int64
	for _, p := range s.projects {
		if p.CommunityID != communityID {
			continue
		}
		total++
		if p.Status == models.ProjectStatusCompleted {
			completed++
		}
	}
	return total, completed, nil
}

type bidStore struct {
	mu    sync.Mutex
	bids  map[uuid.UUID]*models.Bid
	order []uuid.UUID
}

func newBidStore() *bidStore {
	return &bidStore{bids: map[uuid.UUID]*models.Bid{}}
}

func (s *bidStore) Create(ctx context.Context, b *models.Bid) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.bids {
		if existing.ProjectID == b.ProjectID && existing.EngineerID == b.EngineerID {
			return store.ErrDuplicate
		}
	}
	ensureID(&b.ID)
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	if b.Status == "" {
		b.Status = models.BidStatusPending
	}
	cp := *b
	s.bids[b.ID] = &cp
	s.order = append(s.order, b.ID)
	return nil
}

func (s *bidStore) ByID(ctx context.Context, id uuid.UUID) (*models.Bid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bids[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (s *bidStore) ByProject(ctx context.Context, projectID uuid.UUID) ([]models.Bid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Bid
	for i := len(s.order) - 1; i >= 0; i-- {
		b := s.bids[s.order[i]]
		if b != nil && b.ProjectID == projectID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *bidStore) ByEngineer(ctx context.Context, engineerID uuid.UUID) ([]models.Bid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Bid
	for i := len(s.order) - 1; i >= 0; i-- {
		b := s.bids[s.order[i]]
		if b != nil && b.EngineerID == engineerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *bidStore) ByProjectAndEngineer(ctx context.Context, projectID, engineerID uuid.UUID) (*models.Bid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bids {
		if b.ProjectID == projectID && b.EngineerID == engineerID {
			cp := *b
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *bidStore) Save(ctx context.Context, b *models.Bid) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bids[b.ID]; !ok {
		return store.ErrNotFound
	}
	b.UpdatedAt = time.Now()
	cp := *b
	s.bids[b.ID] = &cp
	return nil
}

func (s *bidStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.bids, id)
	return nil
}

func (s *bidStore) StatsByEngineer(ctx context.Context, engineerID uuid.UUID) (int64, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total, accepted int64
	for _, b := range s.bids {
		if b.EngineerID != engineerID {
			continue
		}
		total++
		if b.Status == models.BidStatusAccepted {
			accepted++
		}
	}
	return total, accepted, nil
}

type messageStore struct {
	mu       sync.Mutex
	messages []models.ChatMessage
}

func (s *messageStore) Create(ctx context.Context, m *models.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ensureID(&m.ID)
	m.CreatedAt = time.Now()
	s.messages = append(s.messages, *m)
	return nil
}

func (s *messageStore) ByProject(ctx context.Context, projectID uuid.UUID) ([]models.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.ChatMessage
	for _, m := range s.messages {
		if m.ProjectID == projectID {
			out = append(out, m)
		}
	}
	return out, nil
}
