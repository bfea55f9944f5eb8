package mapping

import (
	"github.com/SscSPs/construct_erp/internal/core/domain"
	"github.com/SscSPs/construct_erp/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		ID:           d.ID,
		Name:         d.Name,
		Email:        d.Email,
		Role:         string(d.Role),
		AvatarURL:    d.Avatar,
		PasswordHash: d.PasswordHash,
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		Role:         domain.Role(m.Role),
		Avatar:       m.AvatarURL,
		PasswordHash: m.PasswordHash,
	}
}
