package domain

import (
	"fmt"
	"strconv"
	"time"
)

// FormatPrice целое число с точкой-разделителем тысяч, как в es-AR: 26000 -> "26.000"
func FormatPrice(price int) string {
	if price < 0 {
		return "-" + FormatPrice(-price)
	}

	digits := strconv.Itoa(price)
	out := make([]byte, 0, len(digits)+len(digits)/3)
	for i := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, digits[i])
	}
	return string(out)
}

// FormatMonthlyPrice цена в виде "$26.000/mes"
func FormatMonthlyPrice(price int) string {
	return "$" + FormatPrice(price) + "/mes"
}

// FormatDate дата в формате d/m/yyyy без ведущих нулей
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}
