package calculating

import (
	"math"
	"time"
)

// DistributeMonthlyCost rateia um custo mensal recorrente sobre um período
// arbitrário de relatório: fator = dias do período (contagem inclusiva) ÷
// dias do mês-calendário que contém o início do período.
//
// O rateio é linear por dia. Um período que cruza meses continua sendo
// rateado contra o mês do início — comportamento documentado, ainda que
// discutível para períodos multi-mês.
func DistributeMonthlyCost(monthlyAmount float64, periodStart, periodEnd time.Time) float64 {
	if monthlyAmount == 0 || periodEnd.Before(periodStart) {
		return 0
	}

	days := daysInPeriod(periodStart, periodEnd)
	monthDays := daysInMonth(periodStart)

	return monthlyAmount * float64(days) / float64(monthDays)
}

// daysInPeriod conta os dias do período, inclusivo nas duas pontas
func daysInPeriod(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours()/24)) + 1
}

// daysInMonth retorna a quantidade de dias do mês-calendário da data
func daysInMonth(date time.Time) int {
	firstOfMonth := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	return firstOfMonth.AddDate(0, 1, -1).Day()
}
