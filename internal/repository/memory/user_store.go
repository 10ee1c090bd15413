package memory

import (
	"context"
	"sort"
	"time"

	"go-recruitment-tracker/internal/domain"
)

type userStore struct {
	s *Store
}

func (s *Store) Users() domain.UserRepository { return &userStore{s: s} }

func (r *userStore) Create(ctx context.Context, user *domain.User) error {
	defer r.s.lock(ctx)()
	st := r.s.state

	for _, u := range st.users {
		if u.Username == user.Username || u.Email == user.Email {
			return domain.ErrDuplicate
		}
	}

	user.ID = st.nextUserID
	st.nextUserID++
	user.CreatedAt = time.Now()
	st.users[user.ID] = *user
	return nil
}

func (r *userStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	defer r.s.lock(ctx)()
	u, ok := r.s.state.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (r *userStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	defer r.s.lock(ctx)()
	for _, u := range r.s.state.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *userStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	defer r.s.lock(ctx)()
	for _, u := range r.s.state.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *userStore) List(ctx context.Context) ([]domain.User, error) {
	defer r.s.lock(ctx)()
	users := make([]domain.User, 0, len(r.s.state.users))
	for _, u := range r.s.state.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *userStore) Update(ctx context.Context, user *domain.User) error {
	defer r.s.lock(ctx)()
	st := r.s.state
	existing, ok := st.users[user.ID]
	if !ok {
		return domain.ErrNotFound
	}
	// Username, password hash and creation time are immutable here.
	user.Username = existing.Username
	user.Password = existing.Password
	user.CreatedAt = existing.CreatedAt
	st.users[user.ID] = *user
	return nil
}

func (r *userStore) Delete(ctx context.Context, id int64) error {
	defer r.s.lock(ctx)()
	st := r.s.state
	if _, ok := st.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(st.users, id)
	return nil
}
