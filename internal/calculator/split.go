package calculator

import "github.com/mmynk/gastrip/internal/models"

// SplitCost divides the total cost evenly across a party.
// A party of one pays the total unchanged; a non-positive party size is
// treated the same way. Callers clamp numPeople to at least 1 beforehand.
func SplitCost(totalCost float64, numPeople int) float64 {
	if numPeople <= 1 {
		return totalCost
	}
	return totalCost / float64(numPeople)
}

// Split builds the split result for a party size.
func Split(totalCost float64, numPeople int) models.SplitResult {
	if numPeople < 1 {
		numPeople = 1
	}
	return models.SplitResult{
		NumPeople:     numPeople,
		CostPerPerson: SplitCost(totalCost, numPeople),
	}
}
