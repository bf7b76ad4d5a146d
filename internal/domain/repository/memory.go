package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
	"wings_inventory/internal/common"
	"wings_inventory/internal/domain/model"

	"github.com/google/uuid"
)

// memoryUserRepository backs STORAGE_BACKEND=memory and the service tests.
// The mutex plays the role of the table's UNIQUE index.
type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]model.User // keyed by username
	now   func() time.Time
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		users: make(map[string]model.User),
		now:   time.Now,
	}
}

func (r *memoryUserRepository) Create(ctx context.Context, username, hashedPassword string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[username]; exists {
		return "", fmt.Errorf("memoryUserRepository.Create: %w", common.ErrDuplicateUsername)
	}
	u := model.User{ID: uuid.NewString(), Username: username, HashedPassword: hashedPassword, CreatedAt: r.now()}
	r.users[username] = u
	return u.ID, nil
}

func (r *memoryUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[username]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &u, nil
}

func (r *memoryUserRepository) Update(ctx context.Context, oldUsername, newUsername, newHashedPassword string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[oldUsername]
	if !ok {
		return fmt.Errorf("memoryUserRepository.Update: %w", common.ErrNotFound)
	}
	if newUsername != "" && newUsername != oldUsername {
		if _, taken := r.users[newUsername]; taken {
			return fmt.Errorf("memoryUserRepository.Update: %w", common.ErrDuplicateUsername)
		}
		delete(r.users, oldUsername)
		u.Username = newUsername
	}
	if newHashedPassword != "" {
		u.HashedPassword = newHashedPassword
	}
	r.users[u.Username] = u
	return nil
}

func (r *memoryUserRepository) Delete(ctx context.Context, username string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[username]; !ok {
		return fmt.Errorf("memoryUserRepository.Delete: %w", common.ErrNotFound)
	}
	delete(r.users, username)
	return nil
}

func (r *memoryUserRepository) List(ctx context.Context) ([]model.UserSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	all := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		all = append(all, u)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].Username < all[j].Username
		}
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})
	out := make([]model.UserSummary, 0, len(all))
	for _, u := range all {
		out = append(out, model.UserSummary{ID: u.ID, Username: u.Username})
	}
	return out, nil
}

type memoryProductRepository struct {
	mu       sync.RWMutex
	products map[int64]model.Product
	nextID   int64
}

func NewMemoryProductRepository() ProductRepository {
	return &memoryProductRepository{products: make(map[int64]model.Product)}
}

func (r *memoryProductRepository) Create(ctx context.Context, p *model.Product) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	p.ID = r.nextID
	r.products[p.ID] = *p
	return p.ID, nil
}

func (r *memoryProductRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &p, nil
}

func (r *memoryProductRepository) List(ctx context.Context) ([]model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryProductRepository) Update(ctx context.Context, p *model.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[p.ID]; !ok {
		return fmt.Errorf("memoryProductRepository.Update: %w", common.ErrNotFound)
	}
	r.products[p.ID] = *p
	return nil
}

func (r *memoryProductRepository) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("memoryProductRepository.Delete: %w", common.ErrNotFound)
	}
	delete(r.products, id)
	return nil
}
