package domain

import (
	"time"
)

type StoreStatus string

const (
	StoreStatusActive   StoreStatus = "ACTIVE"
	StoreStatusInactive StoreStatus = "INACTIVE"
)

// Store representa uma loja conectada de um time (fronteira multi-tenant:
// todo cálculo opera dentro do escopo de um único time)
type Store struct {
	ID           string      `json:"id"`
	TeamID       string      `json:"team_id"`
	Name         string      `json:"name"`
	ShopDomain   string      `json:"shop_domain"`
	Currency     string      `json:"currency"`
	Status       StoreStatus `json:"status"`
	LastSyncedAt *time.Time  `json:"last_synced_at"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
