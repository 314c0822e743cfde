package entity

type User struct {
	Base
	Name           string `gorm:"unique"`
	Email          string `gorm:"unique"`
	HashedPassword string
	Role           string `gorm:"default:USER"`
}

const (
	SuperAdminRole = "SUPER_ADMIN"
	AdminRole      = "ADMIN"
	UserRole       = "USER"
)

var GlobalAdminRoles = []string{SuperAdminRole, AdminRole}
