package dto

import (
	"net/url"
	"pgsystem/internal/domains/user/model"
	gDto "pgsystem/shared/dto"
	"strings"
)

type ProfileResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Mobile   string `json:"mobile"`
	Email    string `json:"email"`
	gDto.Metadata
}

func (r *ProfileResponse) FromModel(user model.User) {
	r.Username = user.Username
	r.Name = user.Name
	r.Mobile = user.Mobile
	r.Email = user.Email
	r.Metadata.FromModel(user.Metadata)
}

// UpdateProfileRequest overwrites all three fields. Empty values clear them.
type UpdateProfileRequest struct {
	Name   string `json:"name"   form:"name"   validate:"max=100"`
	Mobile string `json:"mobile" form:"mobile" validate:"max=20"`
	Email  string `json:"email"  form:"email"  validate:"max=100"`
}

func (r *UpdateProfileRequest) FromValues(values url.Values) {
	r.Name = strings.TrimSpace(values.Get(model.FieldName))
	r.Mobile = strings.TrimSpace(values.Get(model.FieldMobile))
	r.Email = strings.TrimSpace(values.Get(model.FieldEmail))
}

func (r *UpdateProfileRequest) ToFields() map[string]any {
	return map[string]any{
		model.FieldName:   r.Name,
		model.FieldMobile: r.Mobile,
		model.FieldEmail:  r.Email,
	}
}
