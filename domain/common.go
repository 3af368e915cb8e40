package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"

	ErrParseUUID = errors.New("failed to parse UUID")
)

type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeUnknown   MealType = "unknown"
)

type Weekday string

const (
	Monday    Weekday = "Mon"
	Tuesday   Weekday = "Tue"
	Wednesday Weekday = "Wed"
	Thursday  Weekday = "Thu"
	Friday    Weekday = "Fri"
)

// Weekdays is the plan horizon, in fill order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

// MealTypeOrder is the fixed slot-filling order within one day.
var MealTypeOrder = []MealType{MealTypeBreakfast, MealTypeLunch, MealTypeDinner}
