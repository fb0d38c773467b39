package main

import "math"

// Scoring policy: all-or-nothing per question, fixed reward per type.
const (
	pointsSingle   = 10
	pointsMultiple = 15
)

func isCorrectAllOrNothing(selected, correct []string) bool {
	if len(selected) != len(correct) {
		return false
	}
	// treat both inputs as sets to avoid accepting duplicates in `selected`
	selSet := make(map[string]struct{}, len(selected))
	for _, k := range selected {
		selSet[k] = struct{}{}
	}
	// if there were duplicates in `selected`, the set will be smaller
	if len(selSet) != len(correct) {
		return false
	}
	for _, k := range correct {
		if _, ok := selSet[k]; !ok {
			return false
		}
	}
	return true
}

func pointsForAnswer(questionType string, correct bool) int {
	if !correct {
		return 0
	}
	if questionType == TypeMultiple {
		return pointsMultiple
	}
	return pointsSingle
}

// roundPercent returns round(correct/total*100), or 0 when total is 0.
func roundPercent(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// CategoryStat is one row of the dashboard's per-category breakdown.
type CategoryStat struct {
	Category string `json:"category"`
	Total    int    `json:"total"`
	Correct  int    `json:"correct"`
	Accuracy int    `json:"accuracy"`
}

// categoryOutcome pairs an answered question's category with the result.
type categoryOutcome struct {
	Category  string
	IsCorrect bool
}

// buildCategoryBreakdown groups outcomes by category, keeping categories in
// order of first appearance. Map iteration alone would not be stable.
func buildCategoryBreakdown(outcomes []categoryOutcome) []CategoryStat {
	order := make([]string, 0)
	totals := make(map[string]int)
	corrects := make(map[string]int)
	for _, o := range outcomes {
		if _, seen := totals[o.Category]; !seen {
			order = append(order, o.Category)
		}
		totals[o.Category]++
		if o.IsCorrect {
			corrects[o.Category]++
		}
	}

	out := make([]CategoryStat, 0, len(order))
	for _, cat := range order {
		out = append(out, CategoryStat{
			Category: cat,
			Total:    totals[cat],
			Correct:  corrects[cat],
			Accuracy: roundPercent(corrects[cat], totals[cat]),
		})
	}
	return out
}
