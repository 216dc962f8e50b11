// Package numerology reduces birth dates to life-path and personal-year
// numbers.
//
// Reduction is the repeated digit sum ("digital root") with the master
// numbers 11, 22 and 33 kept instead of reduced further.
package numerology

import "fmt"

// IsMaster reports whether n is one of the master numbers 11, 22 or 33.
func IsMaster(n int) bool {
	return n == 11 || n == 22 || n == 33
}

// ReduceWithMasters sums the decimal digits of n until the result is a
// single digit or a master number. The halt condition is checked before
// every pass, so an intermediate 11, 22 or 33 is kept. Values of 9 or
// less, including non-positive ones, are returned unchanged.
func ReduceWithMasters(n int) int {
	for n > 9 && !IsMaster(n) {
		n = digitSum(n)
	}
	return n
}

// LifePath sums every digit of the date written as year followed by the
// two-digit month and day (1990-10-25 is "19901025") and reduces it.
func LifePath(year int, month int, day int) int {
	return ReduceWithMasters(digitSumString(fmt.Sprintf("%d%02d%02d", year, month, day)))
}

// PersonalYear reduces month, day and currentYear separately, sums the
// three and reduces the sum. Master numbers survive both stages, so the
// result is in {1..9, 11, 22, 33}.
func PersonalYear(month int, day int, currentYear int) int {
	sum := ReduceWithMasters(month) + ReduceWithMasters(day) + ReduceWithMasters(currentYear)
	return ReduceWithMasters(sum)
}

func digitSum(n int) int {
	total := 0
	for n > 0 {
		total += n % 10
		n /= 10
	}
	return total
}

func digitSumString(digits string) int {
	total := 0
	for _, ch := range digits {
		if ch >= '0' && ch <= '9' {
			total += int(ch - '0')
		}
	}
	return total
}
