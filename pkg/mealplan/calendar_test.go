package mealplan

import (
	"strings"
	"testing"
	"time"

	"pantry-planner/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekDates(t *testing.T) {
	// 2026-08-26 is a Wednesday
	wednesday := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	dates := weekDates(wednesday)
	assert.Equal(t, "20260824", dates[domain.Monday].Format("20060102"))
	assert.Equal(t, "20260828", dates[domain.Friday].Format("20060102"))

	// Sunday anchors to the Monday six days back
	sunday := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "20260824", weekDates(sunday)[domain.Monday].Format("20060102"))
}

func TestEscapeICS(t *testing.T) {
	assert.Equal(t, `pasta\, creamy\; rich`, escapeICS("pasta, creamy; rich"))
	assert.Equal(t, `a\\b`, escapeICS(`a\b`))
	assert.Equal(t, `line\nbreak`, escapeICS("line\nbreak"))
}

func TestExportICS(t *testing.T) {
	recipe := &domain.ScoredRecipe{EnrichedRecipe: domain.EnrichedRecipe{
		ID:             42,
		Title:          "Chili, Extra Hot",
		ReadyInMinutes: 35,
		Nutrition:      &domain.RecipeNutrition{Calories: 612.4},
		SourceURL:      "https://example.com/chili",
		UsedIngredients: []domain.RecipeIngredient{
			{Name: "beans"}, {Name: "tomato"},
		},
	}}

	plan := groceryPlan(map[domain.Weekday]map[domain.MealType]*domain.ScoredRecipe{
		domain.Monday: {domain.MealTypeDinner: recipe},
	})

	now := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	ics := ExportICS(plan, []domain.MealType{domain.MealTypeDinner}, now)

	lines := strings.Split(ics, "\r\n")
	assert.Equal(t, "BEGIN:VCALENDAR", lines[0])
	assert.Equal(t, "END:VCALENDAR", lines[len(lines)-1])
	assert.Contains(t, lines, "VERSION:2.0")
	assert.Contains(t, lines, "PRODID:-//Pantry Planner//Meal Plan//EN")
	assert.Contains(t, lines, "CALSCALE:GREGORIAN")
	assert.Contains(t, lines, "METHOD:PUBLISH")

	assert.Contains(t, lines, "UID:mealplan-Mon-dinner-42-20260824@pantry-planner")
	assert.Contains(t, lines, "DTSTART;VALUE=DATE:20260824")
	assert.Contains(t, lines, "DTEND;VALUE=DATE:20260825")
	assert.Contains(t, lines, `SUMMARY:Dinner: Chili\, Extra Hot`)
	assert.Contains(t, lines, "URL:https://example.com/chili")

	var desc string
	for _, line := range lines {
		if strings.HasPrefix(line, "DESCRIPTION:") {
			desc = line
		}
	}
	require.NotEmpty(t, desc)
	assert.Contains(t, desc, "612 cal")
	assert.Contains(t, desc, "35 min")
	assert.Contains(t, desc, `Ingredients: beans\, tomato`)
}

func TestExportICSSkipsEmptySlots(t *testing.T) {
	plan := groceryPlan(nil)
	ics := ExportICS(plan, []domain.MealType{domain.MealTypeDinner}, time.Now())
	assert.NotContains(t, ics, "BEGIN:VEVENT")
}

func TestExportICSIngredientCap(t *testing.T) {
	var used []domain.RecipeIngredient
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		used = append(used, domain.RecipeIngredient{Name: name})
	}
	recipe := &domain.ScoredRecipe{EnrichedRecipe: domain.EnrichedRecipe{
		ID:              1,
		Title:           "Everything Stew",
		UsedIngredients: used,
	}}

	plan := groceryPlan(map[domain.Weekday]map[domain.MealType]*domain.ScoredRecipe{
		domain.Monday: {domain.MealTypeDinner: recipe},
	})
	ics := ExportICS(plan, []domain.MealType{domain.MealTypeDinner}, time.Now())

	assert.Contains(t, ics, `a\, b\, c\, d\, e\, f\, g\, h`)
	assert.NotContains(t, ics, `h\, i`)
}
