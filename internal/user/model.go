package user

import "time"

type Role string

const (
	RoleBuyer Role = "BUYER"
	RoleAdmin Role = "ADMIN"
)

func ValidRole(r Role) bool {
	return r == RoleBuyer || r == RoleAdmin
}

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CompanyName  string    `json:"company_name"`
	Country      string    `json:"country"`
	CreatedAt    time.Time `json:"created_at"`
}

type SignupInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	CompanyName string `json:"company_name"`
	Country     string `json:"country"`
}

// NewUserInput is the admin-side create form; unlike signup it carries an
// explicit role and requires every field.
type NewUserInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        Role   `json:"role"`
	CompanyName string `json:"company_name"`
	Country     string `json:"country"`
}

type UpdateUserInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	CompanyName string `json:"company_name"`
	Country     string `json:"country"`
}
