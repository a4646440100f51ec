package domain

// Role роль пользователя, определяет экран, на который он попадает после входа
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// IsValid returns true if the role is one of the known roles
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

// User результат поиска учетной записи
type User struct {
	ID   string
	Role Role
}

// IsAdmin returns true if the user is routed to the admin dashboard
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
