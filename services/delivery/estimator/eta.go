package estimator

import (
	"fmt"
	"math"

	"github.com/piresc/deliveryeta/internal/pkg/models"
)

// FormatEstimate derives the customer-facing delivery estimate from a distance result
func FormatEstimate(result *models.DistanceResult, preparationMinutes, bufferMinutes int) models.DeliveryEstimate {
	travel := int(math.Ceil(float64(result.DurationMin)))
	total := preparationMinutes + travel + bufferMinutes

	return models.DeliveryEstimate{
		Distance:        result.DistanceKm,
		PreparationTime: preparationMinutes,
		TravelTime:      travel,
		BufferTime:      bufferMinutes,
		TotalTime:       total,
		FormattedTime:   FormatDuration(total),
	}
}

// FormatDuration renders a total in minutes: a 10 minute window under an
// hour, otherwise hours and minutes.
func FormatDuration(totalMinutes int) string {
	if totalMinutes < 60 {
		return fmt.Sprintf("%d-%d mins", totalMinutes, totalMinutes+10)
	}

	hours := totalMinutes / 60
	minutes := totalMinutes % 60
	if minutes == 0 {
		return fmt.Sprintf("%d hr", hours)
	}
	return fmt.Sprintf("%d hr %d mins", hours, minutes)
}
