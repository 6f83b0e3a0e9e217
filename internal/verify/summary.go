package verify

import (
	"fmt"

	"github.com/Alias1177/Verifier/models"
)

// Summarize composes the one-line human readable verdict. The templates are
// fixed wording: rendering layers and tests match on them literally.
func Summarize(checks []models.VerificationCheck, overallStatus string) string {
	verified := 0
	unverified := 0
	for _, check := range checks {
		switch check.Status {
		case models.StatusVerified:
			verified++
		case models.StatusUnverified:
			unverified++
		}
	}

	switch overallStatus {
	case models.StatusVerified:
		return fmt.Sprintf("All %d verification checks passed. Data has been cross-referenced and validated.", verified)
	case models.StatusPartiallyVerified:
		return fmt.Sprintf("%d of %d checks passed. Some data could not be fully verified.", verified, len(checks))
	default:
		return fmt.Sprintf("Verification incomplete. %d checks could not be verified. Exercise caution.", unverified)
	}
}
