package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundPercent arredonda para o inteiro mais próximo (percentuais exibidos)
func RoundPercent(f float64) int {
	return int(math.Round(f))
}
