package entity

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RolePassenger UserRole = "passenger"
	RoleStaff     UserRole = "staff"
)

type User struct {
	Base
	Name         string   `db:"name"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
	Age          *int     `db:"age"`
	Phone        *string  `db:"phone"`
	IsVerified   bool     `db:"is_verified"`
}
