package model

import (
	"sort"
	"time"
)

type Event struct {
	ID                      string            `json:"id" db:"id"`
	Title                   string            `json:"title" db:"title"`
	TitleTranslations       map[string]string `json:"title_translations" db:"title_translations"`
	Description             string            `json:"description" db:"description"`
	DescriptionTranslations map[string]string `json:"description_translations" db:"description_translations"`
	Category                string            `json:"category" db:"category"`
	Date                    string            `json:"date" db:"date"`
	Time                    string            `json:"time" db:"time"`
	Location                string            `json:"location" db:"location"`
	Address                 *string           `json:"address" db:"address"`
	City                    string            `json:"city" db:"city"`
	MapsEmbedURL            *string           `json:"maps_embed_url" db:"maps_embed_url"`
	ImageURL                *string           `json:"image_url" db:"image_url"`
	Capacity                *int              `json:"capacity" db:"capacity"`
	Featured                bool              `json:"featured" db:"featured"`
	Status                  string            `json:"status" db:"status"`
	CreatedAt               time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt               *time.Time        `json:"updated_at" db:"updated_at"`

	// Derived views over the association tables, loaded eagerly; never a
	// second source of truth.
	Artists []EventArtist `json:"artists"`
	Packs   []EventPack   `json:"packs"`
}

// EventArtist flattens an artist together with the timing and lineup data
// that belong to one specific event.
type EventArtist struct {
	Artist
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Order     int     `json:"order"`
}

// EventPack flattens a pack together with its per-event soldout flag. The
// same pack can be sold out for one event and available for another.
type EventPack struct {
	Pack
	IsSoldout bool `json:"is_soldout"`
}

// SortLineup orders a lineup ascending by order. The sort is stable: equal
// orders keep their original fetch order.
func SortLineup(artists []EventArtist) {
	sort.SliceStable(artists, func(i, j int) bool {
		return artists[i].Order < artists[j].Order
	})
}

// EventArtistEntry is the write-side shape of one lineup row.
type EventArtistEntry struct {
	ArtistID  string
	StartTime *string
	EndTime   *string
	Order     int
}

// EventPackEntry is the write-side shape of one event-pack row.
type EventPackEntry struct {
	PackID    string
	IsSoldout bool
}

type UpdateEventParams struct {
	Title                   *string
	TitleTranslations       map[string]string
	Description             *string
	DescriptionTranslations map[string]string
	Category                *string
	Date                    *string
	Time                    *string
	Location                *string
	Address                 *string
	City                    *string
	MapsEmbedURL            *string
	ImageURL                *string
	Capacity                *int
	Featured                *bool
	Status                  *string
}

// HasFields reports whether any base event column is being patched.
// Association replacement is carried separately.
func (p UpdateEventParams) HasFields() bool {
	return p.Title != nil || p.TitleTranslations != nil ||
		p.Description != nil || p.DescriptionTranslations != nil ||
		p.Category != nil || p.Date != nil || p.Time != nil ||
		p.Location != nil || p.Address != nil || p.City != nil ||
		p.MapsEmbedURL != nil || p.ImageURL != nil || p.Capacity != nil ||
		p.Featured != nil || p.Status != nil
}

type EventFilter struct {
	Category *string
	Featured *bool
	Status   *string
	Skip     int
	Limit    int
}
