package services

import (
	"sort"
	"strings"

	"hotel/dto"
	"hotel/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// matchCategory tìm hạng phòng khớp gần đúng nhất với query
func matchCategory(query string, categories []models.RoomCategory) (uint, bool) {
	names := make([]string, 0, len(categories))
	byName := make(map[string]uint, len(categories))
	for _, c := range categories {
		name := normalizeInput(c.Name)
		names = append(names, name)
		byName[name] = c.ID
	}
	if len(names) == 0 {
		return 0, false
	}

	matcher := createMatcher(names)
	match := matcher.Closest(query)
	if match == "" {
		return 0, false
	}
	if !strings.Contains(query, match) && calculateSimilarity(query, match) < 0.5 {
		return 0, false
	}
	return byName[match], true
}

// amenityScore cộng điểm cho từng tiện nghi khớp với một từ trong query
func amenityScore(query string, amenities string) int {
	score := 0
	queryWords := strings.Fields(query)
	for _, amenity := range strings.Split(amenities, ",") {
		amenity = normalizeInput(amenity)
		if amenity == "" {
			continue
		}
		if strings.Contains(query, amenity) {
			score += 10
			continue
		}
		for _, word := range queryWords {
			if calculateSimilarity(word, amenity) >= 0.8 {
				score += 5
				break
			}
		}
	}
	return score
}

// SearchRooms xếp hạng phòng theo độ phù hợp với query:
// khớp hạng phòng được ưu tiên, tiện nghi và mô tả cộng thêm điểm.
func SearchRooms(query string, rooms []models.Room, categories []models.RoomCategory) []dto.RoomSearchResult {
	normalizedQuery := normalizeInput(query)
	if normalizedQuery == "" {
		return nil
	}

	categoryByID := make(map[uint]models.RoomCategory, len(categories))
	for _, c := range categories {
		categoryByID[c.ID] = c
	}
	matchedCategory, hasCategory := matchCategory(normalizedQuery, categories)

	results := make([]dto.RoomSearchResult, 0, len(rooms))
	for _, room := range rooms {
		category := categoryByID[room.CategoryID]
		score := 0

		if hasCategory && room.CategoryID == matchedCategory {
			score += 20
		}
		score += amenityScore(normalizedQuery, room.Amenities)
		if strings.Contains(normalizeInput(room.Description), normalizedQuery) {
			score += 5
		}

		if score == 0 {
			continue
		}
		results = append(results, dto.RoomSearchResult{
			RoomResponse: roomToResponse(room, category),
			Score:        score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].RoomNumber < results[j].RoomNumber
	})
	return results
}
