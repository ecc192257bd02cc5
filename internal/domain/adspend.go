package domain

import (
	"time"
)

type AdPlatform string

const (
	AdPlatformFacebook AdPlatform = "FACEBOOK"
	AdPlatformGoogle   AdPlatform = "GOOGLE"
	AdPlatformTikTok   AdPlatform = "TIKTOK"
)

type AdAccountStatus string

const (
	AdAccountStatusActive   AdAccountStatus = "ACTIVE"
	AdAccountStatusInactive AdAccountStatus = "INACTIVE"
)

// AdAccount representa uma conta de anúncios conectada de um time
type AdAccount struct {
	ID         string          `json:"id"`
	TeamID     string          `json:"team_id"`
	ExternalID string          `json:"external_id"`
	Platform   AdPlatform      `json:"platform"`
	Name       string          `json:"name"`
	Currency   string          `json:"currency"`
	Status     AdAccountStatus `json:"status"`
}

// AdSpend representa uma linha diária de gasto de anúncios. A unicidade em
// {conta, data, campanha, conjunto} garante idempotência na sincronização.
type AdSpend struct {
	ID          string     `json:"id"`
	AdAccountID string     `json:"ad_account_id"`
	Platform    AdPlatform `json:"platform"`
	Date        time.Time  `json:"date"`
	CampaignID  *string    `json:"campaign_id"`
	AdSetID     *string    `json:"ad_set_id"`
	Spend       float64    `json:"spend"`
	Impressions int        `json:"impressions"`
	Clicks      int        `json:"clicks"`
	Conversions int        `json:"conversions"`
	Revenue     float64    `json:"revenue"`
	Currency    string     `json:"currency"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
