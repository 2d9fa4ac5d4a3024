package booking

import "time"

// lateFeeRate is the share of the daily rate charged per overdue day.
const lateFeeRate = 0.10

// DaysOverdue returns the number of whole days now is past endDate,
// 0 when the return is on time.
func DaysOverdue(endDate, now time.Time) int {
	if !now.After(endDate) {
		return 0
	}
	return int(now.Sub(endDate).Hours() / 24)
}

// LateFee charges 10% of the item's daily rate per overdue day, with no
// cap.
func LateFee(endDate time.Time, dailyRate float64, now time.Time) float64 {
	return float64(DaysOverdue(endDate, now)) * dailyRate * lateFeeRate
}
