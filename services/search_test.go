package services

import (
	"testing"

	"hotel/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchFixtures() ([]models.Room, []models.RoomCategory) {
	categories := []models.RoomCategory{
		{ID: 1, Name: "Deluxe", BasePrice: 150, Capacity: 2},
		{ID: 2, Name: "Suite", BasePrice: 300, Capacity: 4},
	}
	rooms := []models.Room{
		{ID: 1, RoomNumber: "101", CategoryID: 1, Amenities: "wifi,air conditioning", Description: "City view room"},
		{ID: 2, RoomNumber: "201", CategoryID: 2, Amenities: "wifi,bathtub,minibar", Description: "Spacious suite with sea view"},
	}
	return rooms, categories
}

func TestSearchRoomsMatchesCategory(t *testing.T) {
	rooms, categories := searchFixtures()

	results := SearchRooms("suite", rooms, categories)

	require.NotEmpty(t, results)
	assert.Equal(t, "201", results[0].RoomNumber)
	assert.Equal(t, "Suite", results[0].RoomType)
}

func TestSearchRoomsMatchesAmenities(t *testing.T) {
	rooms, categories := searchFixtures()

	results := SearchRooms("room with bathtub", rooms, categories)

	require.NotEmpty(t, results)
	assert.Equal(t, "201", results[0].RoomNumber)
}

func TestSearchRoomsTypoStillMatches(t *testing.T) {
	rooms, categories := searchFixtures()

	results := SearchRooms("delux", rooms, categories)

	require.NotEmpty(t, results)
	assert.Equal(t, "101", results[0].RoomNumber)
}

func TestSearchRoomsEmptyQuery(t *testing.T) {
	rooms, categories := searchFixtures()

	assert.Nil(t, SearchRooms("", rooms, categories))
	assert.Nil(t, SearchRooms("   ", rooms, categories))
}

func TestSearchRoomsNoMatch(t *testing.T) {
	rooms, categories := searchFixtures()

	results := SearchRooms("zzzzqqqq", rooms, categories)

	assert.Empty(t, results)
}

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "phong deluxe", normalizeInput("  Phòng Deluxe "))
	assert.Equal(t, "suite", normalizeInput("SUITE"))
}

func TestCalculateSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, calculateSimilarity("suite", "suite"))
	assert.Greater(t, calculateSimilarity("suite", "suit"), 0.7)
	assert.Less(t, calculateSimilarity("suite", "deluxe"), 0.5)
}
