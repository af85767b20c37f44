package user

import "sync"

type memoryRepo struct {
	mu    sync.RWMutex
	users []User
}

func NewMemoryRepository(seed []User) Repository {
	users := make([]User, len(seed))
	copy(users, seed)
	return &memoryRepo{users: users}
}

func (r *memoryRepo) GetByID(id int) (User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

func (r *memoryRepo) GetByCredentials(username, password string) (User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username && u.Password == password {
			return u, true
		}
	}
	return User{}, false
}
