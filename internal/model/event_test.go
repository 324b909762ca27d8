package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lineupEntry(id string, order int) EventArtist {
	return EventArtist{
		Artist: Artist{ID: id},
		Order:  order,
	}
}

func TestSortLineup(t *testing.T) {
	lineup := []EventArtist{
		lineupEntry("c", 3),
		lineupEntry("a", 1),
		lineupEntry("b", 2),
	}

	SortLineup(lineup)

	assert.Equal(t, "a", lineup[0].ID)
	assert.Equal(t, "b", lineup[1].ID)
	assert.Equal(t, "c", lineup[2].ID)
}

func TestSortLineupStableOnTies(t *testing.T) {
	lineup := []EventArtist{
		lineupEntry("first", 1),
		lineupEntry("second", 1),
		lineupEntry("opener", 0),
		lineupEntry("third", 1),
	}

	SortLineup(lineup)

	assert.Equal(t, "opener", lineup[0].ID)
	assert.Equal(t, "first", lineup[1].ID)
	assert.Equal(t, "second", lineup[2].ID)
	assert.Equal(t, "third", lineup[3].ID)
}

func TestSortLineupEmpty(t *testing.T) {
	assert.NotPanics(t, func() {
		SortLineup(nil)
		SortLineup([]EventArtist{})
	})
}

func TestUpdateEventParamsHasFields(t *testing.T) {
	assert.False(t, UpdateEventParams{}.HasFields())

	title := "new title"
	assert.True(t, UpdateEventParams{Title: &title}.HasFields())

	featured := false
	assert.True(t, UpdateEventParams{Featured: &featured}.HasFields())

	assert.True(t, UpdateEventParams{TitleTranslations: map[string]string{"fr": "titre"}}.HasFields())
}
