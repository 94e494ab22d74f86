package nutrition

import "math"

// Energy densities in kcal per gram.
const (
	ProteinDensity = 4
	CarbsDensity   = 4
	FatDensity     = 9
)

type FoodItem struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Day is one owner's food log for a calendar date (YYYY-MM-DD).
type Day struct {
	OwnerID       string     `json:"ownerId"`
	Date          string     `json:"date"`
	TotalCalories float64    `json:"totalCalories"`
	Breakfast     []FoodItem `json:"breakfast"`
	Lunch         []FoodItem `json:"lunch"`
	Dinner        []FoodItem `json:"dinner"`
	Snacks        []FoodItem `json:"snacks"`
}

func (d *Day) meals() [][]FoodItem {
	return [][]FoodItem{d.Breakfast, d.Lunch, d.Dinner, d.Snacks}
}

// Summary sums macros over all four meals. Calories come from the day total
// as logged, item calories are not re-added.
func (d *Day) Summary() Summary {
	s := Summary{Calories: d.TotalCalories}
	for _, meal := range d.meals() {
		for _, item := range meal {
			s.Protein += item.Protein
			s.Carbs += item.Carbs
			s.Fat += item.Fat
		}
	}
	s.Shares = sharesOf(s)
	return s
}

// MacroShares are percentages of calories coming from each macro.
type MacroShares struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

type Summary struct {
	Calories float64     `json:"calories"`
	Protein  float64     `json:"protein"`
	Carbs    float64     `json:"carbs"`
	Fat      float64     `json:"fat"`
	Shares   MacroShares `json:"shares"`
}

func (s Summary) add(o Summary) Summary {
	sum := Summary{
		Calories: s.Calories + o.Calories,
		Protein:  s.Protein + o.Protein,
		Carbs:    s.Carbs + o.Carbs,
		Fat:      s.Fat + o.Fat,
	}
	sum.Shares = sharesOf(sum)
	return sum
}

func sharesOf(s Summary) MacroShares {
	return MacroShares{
		Protein: share(s.Protein, ProteinDensity, s.Calories),
		Carbs:   share(s.Carbs, CarbsDensity, s.Calories),
		Fat:     share(s.Fat, FatDensity, s.Calories),
	}
}

// share is clamped to [0,100] and 0 when there are no calories.
func share(grams, density, calories float64) float64 {
	if calories <= 0 || math.IsNaN(grams) || math.IsNaN(calories) {
		return 0
	}
	pct := grams * density / calories * 100
	return math.Max(0, math.Min(100, pct))
}

type DayStatus string

const (
	DayStatusOK          DayStatus = "ok"
	DayStatusMissing     DayStatus = "missing"
	DayStatusUnavailable DayStatus = "unavailable"
)

type DaySummary struct {
	Date    string    `json:"date"`
	Status  DayStatus `json:"status"`
	Summary Summary   `json:"summary"`
}

type WeekSummary struct {
	OwnerID string        `json:"ownerId"`
	From    string        `json:"from"`
	To      string        `json:"to"`
	Days    [7]DaySummary `json:"days"`
	Totals  Summary       `json:"totals"`
}
