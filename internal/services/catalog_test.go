package services

import (
	"testing"

	"utsav/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_FestivalByID(t *testing.T) {
	catalog := NewCatalogService(setupDB(t))

	diwali := catalog.FestivalByID("47")
	require.NotNil(t, diwali)
	assert.Equal(t, "Diwali", diwali.Title)
	assert.Equal(t, "2026-10-20", diwali.Date)

	assert.Nil(t, catalog.FestivalByID("9999"))
}

func TestCatalog_FestivalsForMonth(t *testing.T) {
	catalog := NewCatalogService(setupDB(t))

	august := catalog.FestivalsForMonth(8)
	require.NotEmpty(t, august)
	titles := make([]string, 0, len(august))
	for _, f := range august {
		assert.Equal(t, "2026-08", f.Date[:7])
		titles = append(titles, f.Title)
	}
	assert.Contains(t, titles, "Raksha Bandhan")
	assert.Contains(t, titles, "Janmashtami")
}

func TestCatalog_FestivalsForDate(t *testing.T) {
	catalog := NewCatalogService(setupDB(t))

	onDate := catalog.FestivalsForDate("2026-08-22")
	require.Len(t, onDate, 1)
	assert.Equal(t, "Janmashtami", onDate[0].Title)

	assert.Empty(t, catalog.FestivalsForDate("2026-08-23"))
}

func TestCatalog_LookupResolvesCustomEvent(t *testing.T) {
	db := setupDB(t)
	catalog := NewCatalogService(db)

	event := models.CustomEvent{
		UserID:   "user-1",
		Title:    "Grandmother's Puja",
		Date:     "2026-09-10",
		Category: "family",
	}
	require.NoError(t, db.Create(&event).Error)

	assert.Equal(t, "Grandmother's Puja", catalog.Lookup("user-1", event.ID.String()))

	// Another user's custom event stays invisible; lookup falls back to the ID.
	assert.Equal(t, event.ID.String(), catalog.Lookup("user-2", event.ID.String()))
}

func TestCatalog_LookupFallsBackToRawID(t *testing.T) {
	catalog := NewCatalogService(setupDB(t))
	assert.Equal(t, "no-such-event", catalog.Lookup("user-1", "no-such-event"))
}

func TestCatalog_LookupPrefersFestival(t *testing.T) {
	catalog := NewCatalogService(setupDB(t))
	assert.Equal(t, "Diwali", catalog.Lookup("user-1", "47"))
}
