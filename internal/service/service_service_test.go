package service

import (
	"context"
	"errors"
	"testing"

	"github.com/noievoi/backend/internal/model"
	"github.com/noievoi/backend/internal/repository"
)

// fakeServiceRepo keeps services in memory so order assignment can be
// exercised across creates and deletes.
type fakeServiceRepo struct {
	services map[string]*model.Service
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: make(map[string]*model.Service)}
}

func (f *fakeServiceRepo) Save(ctx context.Context, svc *model.Service) error {
	f.services[svc.ID] = svc
	return nil
}

func (f *fakeServiceRepo) List(ctx context.Context) ([]*model.Service, error) {
	out := make([]*model.Service, 0, len(f.services))
	for _, s := range f.services {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, id string) (*model.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return s, nil
}

func (f *fakeServiceRepo) Update(ctx context.Context, svc *model.Service) error {
	if _, ok := f.services[svc.ID]; !ok {
		return repository.ErrNotFound
	}
	f.services[svc.ID] = svc
	return nil
}

func (f *fakeServiceRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.services[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.services, id)
	return nil
}

func (f *fakeServiceRepo) NextOrder(ctx context.Context) (int, error) {
	max := 0
	for _, s := range f.services {
		if s.Order > max {
			max = s.Order
		}
	}
	return max + 1, nil
}

func TestServiceService_Create_AssignsSequentialOrder(t *testing.T) {
	repo := newFakeServiceRepo()
	svc := NewServiceService(repo)
	ctx := context.Background()

	var ids []string
	for i, title := range []string{"First", "Second", "Third"} {
		s := &model.Service{Title: title, Slug: title, Description: "d"}
		if err := svc.Create(ctx, s); err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
		if s.Order != i+1 {
			t.Errorf("expected order %d, got %d", i+1, s.Order)
		}
		ids = append(ids, s.ID)
	}

	// 真ん中を消しても残りの表示順は動かず、次の採番は最大値+1
	if err := svc.Delete(ctx, ids[1]); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	first, _ := repo.GetByID(ctx, ids[0])
	third, _ := repo.GetByID(ctx, ids[2])
	if first.Order != 1 || third.Order != 3 {
		t.Errorf("survivors must keep orders 1 and 3, got %d and %d", first.Order, third.Order)
	}

	next := &model.Service{Title: "Fourth", Slug: "fourth", Description: "d"}
	if err := svc.Create(ctx, next); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if next.Order != 4 {
		t.Errorf("expected order 4 after deleting the middle entry, got %d", next.Order)
	}
}

func TestServiceService_Create_SetsDefaults(t *testing.T) {
	repo := newFakeServiceRepo()
	svc := NewServiceService(repo)

	s := &model.Service{Title: "T", Slug: "t", Description: "d"}
	if err := svc.Create(context.Background(), s); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if s.ID == "" {
		t.Error("expected generated ID")
	}
	if s.Icon != model.DefaultServiceIcon {
		t.Errorf("expected default icon, got %q", s.Icon)
	}
	if s.CreatedAt.IsZero() || s.UpdatedAt.IsZero() {
		t.Error("expected timestamps stamped")
	}
}

func TestServiceService_Create_KeepsExplicitIcon(t *testing.T) {
	repo := newFakeServiceRepo()
	svc := NewServiceService(repo)

	s := &model.Service{Title: "T", Slug: "t", Description: "d", Icon: "cpu"}
	if err := svc.Create(context.Background(), s); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if s.Icon != "cpu" {
		t.Errorf("explicit icon must be kept, got %q", s.Icon)
	}
}

func TestServiceService_Update_RefreshesUpdatedAt(t *testing.T) {
	repo := newFakeServiceRepo()
	svc := NewServiceService(repo)
	ctx := context.Background()

	s := &model.Service{Title: "T", Slug: "t", Description: "d"}
	if err := svc.Create(ctx, s); err != nil {
		t.Fatalf("Create: %v", err)
	}
	created := s.UpdatedAt

	s.Title = "T2"
	if err := svc.Update(ctx, s); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if s.UpdatedAt.Before(created) {
		t.Errorf("UpdatedAt must move forward: %v -> %v", created, s.UpdatedAt)
	}
}

func TestServiceService_Delete_NotFound(t *testing.T) {
	repo := newFakeServiceRepo()
	svc := NewServiceService(repo)

	err := svc.Delete(context.Background(), "nope")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
