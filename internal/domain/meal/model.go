package meal

import (
	"github.com/burenotti/go_fitness_backend/internal/domain"
	"github.com/burenotti/go_fitness_backend/internal/domain/calendar"
	"time"
)

const EventRecorded = "meal.recorded"

type Slot string

const (
	Breakfast Slot = "breakfast"
	Lunch     Slot = "lunch"
	Dinner    Slot = "dinner"
	Snack     Slot = "snack"
)

// Slots lists meal slots in the order of a day.
var Slots = []Slot{Breakfast, Lunch, Dinner, Snack}

// Energy per gram of macronutrient, kcal.
const (
	KcalPerGramProtein = 4
	KcalPerGramCarbs   = 4
	KcalPerGramFat     = 9
)

type Input struct {
	Date     calendar.Day `json:"date" validate:"required"`
	Name     string       `json:"name" validate:"required,notblank"`
	Calories int          `json:"calories" validate:"gte=0"`
	Protein  float64      `json:"protein" validate:"gte=0"`
	Carbs    float64      `json:"carbs" validate:"gte=0"`
	Fat      float64      `json:"fat" validate:"gte=0"`
	MealType Slot         `json:"meal_type" validate:"oneof=breakfast lunch dinner snack"`
}

func (in Input) Validate() error {
	return domain.Validate(in)
}

type Meal struct {
	MealID    string
	Date      calendar.Day
	Name      string
	Calories  int
	Protein   float64
	Carbs     float64
	Fat       float64
	MealType  Slot
	CreatedAt time.Time
}

func New(mealID string, in Input, now time.Time) Meal {
	return Meal{
		MealID:    mealID,
		Date:      in.Date,
		Name:      in.Name,
		Calories:  in.Calories,
		Protein:   in.Protein,
		Carbs:     in.Carbs,
		Fat:       in.Fat,
		MealType:  in.MealType,
		CreatedAt: now.UTC(),
	}
}

func (m Meal) Macros() Macros {
	return Macros{Protein: m.Protein, Carbs: m.Carbs, Fat: m.Fat}
}

type Macros struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

func (m Macros) Add(other Macros) Macros {
	return Macros{
		Protein: m.Protein + other.Protein,
		Carbs:   m.Carbs + other.Carbs,
		Fat:     m.Fat + other.Fat,
	}
}

func (m Macros) Grams() float64 {
	return m.Protein + m.Carbs + m.Fat
}

// Kcal converts each macro from grams to the energy it supplies.
func (m Macros) Kcal() Macros {
	return Macros{
		Protein: m.Protein * KcalPerGramProtein,
		Carbs:   m.Carbs * KcalPerGramCarbs,
		Fat:     m.Fat * KcalPerGramFat,
	}
}

type RecordedEvent struct {
	At       time.Time
	MealID   string
	Date     calendar.Day
	Name     string
	Calories int
	MealType Slot
}

func (e RecordedEvent) Type() string {
	return EventRecorded
}

func (e RecordedEvent) PublishedAt() time.Time {
	return e.At
}
