package dto

import (
	"time"

	"github.com/kwawicks/kwawicks-api/internal/domain/entity"
)

// CreateClientRequest is the body of POST /api/clients. ClientType defaults to COD.
type CreateClientRequest struct {
	ClientName           string            `json:"clientName"`
	ClientAddress        string            `json:"clientAddress"`
	ClientContactDetails string            `json:"clientContactDetails"`
	ClientType           entity.ClientType `json:"clientType"`
}

// UpdateClientRequest replaces every mutable field of a client.
type UpdateClientRequest struct {
	ClientName           string            `json:"clientName"`
	ClientAddress        string            `json:"clientAddress"`
	ClientContactDetails string            `json:"clientContactDetails"`
	ClientType           entity.ClientType `json:"clientType"`
}

type ClientResponse struct {
	ClientID             string            `json:"clientId"`
	ClientName           string            `json:"clientName"`
	ClientAddress        string            `json:"clientAddress"`
	ClientContactDetails string            `json:"clientContactDetails"`
	ClientType           entity.ClientType `json:"clientType"`
	CreatedAtUtc         time.Time         `json:"createdAtUtc"`
	UpdatedAtUtc         time.Time         `json:"updatedAtUtc"`
}
