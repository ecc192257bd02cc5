package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}

// SafeRatio divide a por b retornando 0 quando o denominador não é positivo —
// margens nunca viram NaN/Inf por base zero ou negativa
func SafeRatio(a, b float64) float64 {
	if b <= 0 {
		return 0
	}

	return a / b
}
