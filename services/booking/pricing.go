package booking

import (
	"github.com/shopspring/decimal"

	"github.com/JohnRey-Adao/AppDev2-CleaningService/utils"
)

// QuoteTotal computes the charge for a booking: hourly rate times duration
// in whole hours. The rate captured here is the cleaner's rate at booking
// time; later rate changes never reprice an existing booking.
func QuoteTotal(hourlyRate decimal.Decimal, durationHours int) (decimal.Decimal, error) {
	if durationHours <= 0 {
		return decimal.Zero, utils.ValidationError{
			Field:   "durationHours",
			Message: "must be a positive number of whole hours",
		}
	}
	if !hourlyRate.IsPositive() {
		return decimal.Zero, utils.ValidationError{
			Field:   "hourlyRate",
			Message: "must be a positive amount",
		}
	}
	return hourlyRate.Mul(decimal.NewFromInt(int64(durationHours))), nil
}
