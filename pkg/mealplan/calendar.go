package mealplan

import (
	"fmt"
	"strings"
	"time"

	"pantry-planner/domain"
)

var mealTypeLabels = map[domain.MealType]string{
	domain.MealTypeBreakfast: "Breakfast",
	domain.MealTypeLunch:     "Lunch",
	domain.MealTypeDinner:    "Dinner",
	domain.MealTypeUnknown:   "Other",
}

// ExportICS renders the plan as an iCalendar document with one all-day event
// per filled slot. The week is anchored on the Monday of the week containing
// now.
func ExportICS(plan domain.MealPlan, mealTypes []domain.MealType, now time.Time) string {
	dates := weekDates(now)

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//Pantry Planner//Meal Plan//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
	}

	for _, day := range domain.Weekdays {
		date := dates[day]
		dateStr := date.Format("20060102")
		for _, mt := range mealTypes {
			recipe := plan[day][mt]
			if recipe == nil {
				continue
			}

			label := mealTypeLabels[mt]
			if label == "" {
				label = mealTypeLabels[domain.MealTypeUnknown]
			}
			summary := fmt.Sprintf("%s: %s", label, recipe.Title)

			descParts := []string{label}
			if recipe.Nutrition != nil && recipe.Nutrition.Calories > 0 {
				descParts = append(descParts, fmt.Sprintf("%.0f cal", recipe.Nutrition.Calories))
			}
			if recipe.ReadyInMinutes > 0 {
				descParts = append(descParts, fmt.Sprintf("%d min", recipe.ReadyInMinutes))
			}
			if names := ingredientNames(recipe, 8); len(names) > 0 {
				descParts = append(descParts, "Ingredients: "+strings.Join(names, ", "))
			}

			event := []string{
				"BEGIN:VEVENT",
				fmt.Sprintf("UID:mealplan-%s-%s-%d-%s@pantry-planner", day, mt, recipe.ID, dateStr),
				"DTSTART;VALUE=DATE:" + dateStr,
				"DTEND;VALUE=DATE:" + date.AddDate(0, 0, 1).Format("20060102"),
				"SUMMARY:" + escapeICS(summary),
				"DESCRIPTION:" + escapeICS(strings.Join(descParts, "\\n")),
			}
			if recipe.SourceURL != "" {
				event = append(event, "URL:"+recipe.SourceURL)
			}
			event = append(event, "END:VEVENT")
			lines = append(lines, event...)
		}
	}

	lines = append(lines, "END:VCALENDAR")
	return strings.Join(lines, "\r\n")
}

// weekDates maps each plan weekday to its calendar date in the week of now.
func weekDates(now time.Time) map[domain.Weekday]time.Time {
	daysFromMonday := int(now.Weekday()) - 1
	if now.Weekday() == time.Sunday {
		daysFromMonday = 6
	}
	monday := now.AddDate(0, 0, -daysFromMonday)

	dates := make(map[domain.Weekday]time.Time, len(domain.Weekdays))
	for i, day := range domain.Weekdays {
		dates[day] = monday.AddDate(0, 0, i)
	}
	return dates
}

func ingredientNames(r *domain.ScoredRecipe, limit int) []string {
	var names []string
	for _, ing := range r.UsedIngredients {
		names = append(names, ing.Name)
	}
	for _, ing := range r.MissedIngredients {
		names = append(names, ing.Name)
	}
	if len(names) > limit {
		names = names[:limit]
	}
	return names
}

// escapeICS escapes the characters RFC 5545 reserves in text values.
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, ";", `\;`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}
