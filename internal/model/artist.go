package model

import "time"

type Artist struct {
	ID                      string            `json:"id" db:"id"`
	Name                    string            `json:"name" db:"name"`
	Role                    *string           `json:"role" db:"role"`
	RoleTranslations        map[string]string `json:"role_translations" db:"role_translations"`
	Description             *string           `json:"description" db:"description"`
	DescriptionTranslations map[string]string `json:"description_translations" db:"description_translations"`
	ImageURL                *string           `json:"image_url" db:"image_url"`
	EventsCount             int               `json:"events_count" db:"events_count"`
	Badge                   *string           `json:"badge" db:"badge"`
	Instagram               *string           `json:"instagram" db:"instagram"`
	ShowOnWebsite           bool              `json:"show_on_website" db:"show_on_website"`
	CreatedAt               time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt               *time.Time        `json:"updated_at" db:"updated_at"`
}

type UpdateArtistParams struct {
	Name                    *string
	Role                    *string
	RoleTranslations        map[string]string
	Description             *string
	DescriptionTranslations map[string]string
	ImageURL                *string
	EventsCount             *int
	Badge                   *string
	Instagram               *string
	ShowOnWebsite           *bool
}
