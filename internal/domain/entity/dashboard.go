package entity

import (
	"slices"

	"github.com/shopspring/decimal"
)

// KPI is a single headline number on the admin dashboard.
type KPI struct {
	Key   string          `json:"clave"`
	Label string          `json:"etiqueta"`
	Value decimal.Decimal `json:"valor"`
}

// SeriesPoint is one month of a time series.
type SeriesPoint struct {
	Period string          `json:"periodo"`
	Value  decimal.Decimal `json:"valor"`
}

// DashboardMetrics is a static aggregate snapshot.
type DashboardMetrics struct {
	KPIs         []KPI         `json:"kpis"`
	Appointments []SeriesPoint `json:"citas_por_mes"`
	Revenue      []SeriesPoint `json:"ingresos_por_mes"`
	NewPatients  []SeriesPoint `json:"pacientes_nuevos"`
}

func (d DashboardMetrics) Clone() DashboardMetrics {
	return DashboardMetrics{
		KPIs:         slices.Clone(d.KPIs),
		Appointments: slices.Clone(d.Appointments),
		Revenue:      slices.Clone(d.Revenue),
		NewPatients:  slices.Clone(d.NewPatients),
	}
}

// PointsBalance is a user's gamification balance.
type PointsBalance struct {
	UserID int `json:"id_usuario"`
	Points int `json:"puntos"`
}
