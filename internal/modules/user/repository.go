package user

// Repository defines data access for users.
type Repository interface {
	GetByID(id int) (User, bool)
	// GetByCredentials returns the user whose username and password both match exactly.
	GetByCredentials(username, password string) (User, bool)
}
