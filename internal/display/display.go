package display

import "github.com/Alias1177/Verifier/models"

// ColorFor maps a verification status to the color token rendering layers use.
func ColorFor(status string) string {
	switch status {
	case models.StatusVerified:
		return "green"
	case models.StatusPartiallyVerified:
		return "yellow"
	case models.StatusUnverified:
		return "red"
	default:
		return "gray"
	}
}

// LabelFor maps a verification status to its display label.
func LabelFor(status string) string {
	switch status {
	case models.StatusVerified:
		return "Verified"
	case models.StatusPartiallyVerified:
		return "Partially Verified"
	case models.StatusUnverified:
		return "Unverified"
	case models.StatusPending:
		return "Pending"
	default:
		return "Unknown"
	}
}
