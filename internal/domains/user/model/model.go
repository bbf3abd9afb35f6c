package model

import "pgsystem/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldUsername = "username"
	FieldPassword = "password"
	FieldName     = "name"
	FieldMobile   = "mobile"
	FieldEmail    = "email"
)

type User struct {
	Username string `db:"username"`
	Password string `db:"password"`
	Name     string `db:"name"`
	Mobile   string `db:"mobile"`
	Email    string `db:"email"`
	model.Metadata
}
