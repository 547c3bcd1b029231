package pricing

import "math"

// SplitAmount делит сумму на n строк с точностью до 2 знаков.
// Последняя строка получает остаток, поэтому сумма частей в пайсах точно равна total.
// Расчет ведется в целых пайсах, чтобы избежать накопления ошибок float
func SplitAmount(total float64, n int) []float64 {
	if n <= 0 {
		return nil
	}

	totalPaise := ToPaise(total)
	share := totalPaise / int64(n)

	parts := make([]float64, n)
	var assigned int64
	for i := 0; i < n-1; i++ {
		parts[i] = FromPaise(share)
		assigned += share
	}
	parts[n-1] = FromPaise(totalPaise - assigned)

	return parts
}

// ToPaise переводит рупии в пайсы с округлением
func ToPaise(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromPaise переводит пайсы в рупии
func FromPaise(paise int64) float64 {
	return float64(paise) / 100
}

// Sum сумма с округлением до пайсы
func Sum(amounts []float64) float64 {
	var paise int64
	for _, a := range amounts {
		paise += ToPaise(a)
	}
	return FromPaise(paise)
}
