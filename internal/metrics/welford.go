// Package metrics holds running statistics used by the hourly lateness
// aggregation.
package metrics

import "math"

// WelfordState holds running statistics using Welford's online algorithm,
// so a mean and standard deviation can be maintained across polls without
// keeping every observation.
type WelfordState struct {
	Count int     // number of observations
	Mean  float64 // running mean
	M2    float64 // sum of squared differences from the mean
}

// Resume rebuilds a state from a persisted aggregate row.
func Resume(count int, mean, m2 float64) *WelfordState {
	if count <= 0 {
		return &WelfordState{}
	}
	return &WelfordState{Count: count, Mean: mean, M2: m2}
}

// Update adds one observation.
// Reference: https://en.wikipedia.org/wiki/Algorithms_for_calculating_variance#Welford's_online_algorithm
func (w *WelfordState) Update(value float64) {
	w.Count++
	delta := value - w.Mean
	w.Mean += delta / float64(w.Count)
	delta2 := value - w.Mean
	w.M2 += delta * delta2
}

// GetMean returns the current mean.
func (w *WelfordState) GetMean() float64 {
	return w.Mean
}

// GetStdDev returns the population standard deviation, or 0 with fewer
// than two observations.
func (w *WelfordState) GetStdDev() float64 {
	if w.Count < 2 {
		return 0
	}
	return math.Sqrt(w.M2 / float64(w.Count))
}
