package models

import "gorm.io/gorm"

const (
	RoleFarmer = "farmer"
	RoleAdmin  = "admin"
)

type User struct {
	gorm.Model
	Name     string
	Email    string `gorm:"unique"`
	Password string
	Role     string `gorm:"type:varchar(20);default:'farmer'"`
}
