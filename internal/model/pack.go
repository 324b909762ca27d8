package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Pack struct {
	ID                      string              `json:"id" db:"id"`
	Name                    string              `json:"name" db:"name"`
	NameTranslations        map[string]string   `json:"name_translations" db:"name_translations"`
	Type                    string              `json:"type" db:"type"`
	Description             *string             `json:"description" db:"description"`
	DescriptionTranslations map[string]string   `json:"description_translations" db:"description_translations"`
	Price                   decimal.Decimal     `json:"price" db:"price"`
	Currency                string              `json:"currency" db:"currency"`
	Unit                    *string             `json:"unit" db:"unit"`
	Features                []string            `json:"features" db:"features"`
	FeaturesTranslations    map[string][]string `json:"features_translations" db:"features_translations"`
	IsActive                bool                `json:"is_active" db:"is_active"`
	CreatedAt               time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt               *time.Time          `json:"updated_at" db:"updated_at"`
}

type UpdatePackParams struct {
	Name                    *string
	NameTranslations        map[string]string
	Type                    *string
	Description             *string
	DescriptionTranslations map[string]string
	Price                   *decimal.Decimal
	Currency                *string
	Unit                    *string
	Features                []string
	FeaturesTranslations    map[string][]string
	IsActive                *bool
}
