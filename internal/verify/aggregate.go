package verify

import (
	"math"

	"github.com/Alias1177/Verifier/models"
)

// Status bucket thresholds: at least 80% fully verified checks for a verified
// verdict, at least 60% covered (verified or partial) for a partial one.
const (
	verifiedThreshold = 0.8
	coveredThreshold  = 0.6
)

// Aggregate derives the overall status and confidence from the full check
// set. Confidence is always the rounded mean of the individual confidences,
// independent of which status bucket wins.
func Aggregate(checks []models.VerificationCheck) (string, int) {
	if len(checks) == 0 {
		return models.StatusUnverified, 0
	}

	confidenceSum := 0
	verified := 0
	covered := 0
	for _, check := range checks {
		confidenceSum += check.Confidence
		switch check.Status {
		case models.StatusVerified:
			verified++
			covered++
		case models.StatusPartiallyVerified:
			covered++
		}
	}

	confidence := int(math.Round(float64(confidenceSum) / float64(len(checks))))

	verifiedFraction := float64(verified) / float64(len(checks))
	coveredFraction := float64(covered) / float64(len(checks))

	switch {
	case verifiedFraction >= verifiedThreshold:
		return models.StatusVerified, confidence
	case coveredFraction >= coveredThreshold:
		return models.StatusPartiallyVerified, confidence
	default:
		return models.StatusUnverified, confidence
	}
}
