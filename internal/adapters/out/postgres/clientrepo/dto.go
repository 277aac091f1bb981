// Package clientrepo provides data transfer objects and mapping functions
// for client persistence.
package clientrepo

import (
	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/client"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ClientDTO represents the database structure for persisting clients. The
// code is stored in its canonical uppercase form and kept unique.
type ClientDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Name string    `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for client entities.
// Overrides GORM's default naming convention to use "clients" instead of
// "client_dtos".
func (ClientDTO) TableName() string {
	return "clients"
}

// fromDomain converts a client domain entity to its database representation.
func fromDomain(c *client.Client) ClientDTO {
	return ClientDTO{
		ID:   c.ID().Bytes(),
		Code: c.Code(),
		Name: c.Name(),
	}
}

// toDomain converts a database DTO to a client domain entity.
func toDomain(dto ClientDTO) (*client.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return client.RestoreClient(id, dto.Name, dto.Code)
}
