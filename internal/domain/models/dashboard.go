package models

// TargetDistributionPoint is one slice of the subscription outcome breakdown.
type TargetDistributionPoint struct {
	Label string `json:"label"`
	Value Number `json:"value"`
}

// JobSuccessPoint is the subscription rate, in percent, of one job category.
type JobSuccessPoint struct {
	Job         string `json:"job"`
	SuccessRate Number `json:"success_rate"`
}

// KPI holds the dashboard headline figures. Placeholder is set while the
// figures come from configuration instead of the backend.
type KPI struct {
	TotalCustomers     int     `json:"totalCustomers"`
	OverallSuccessRate float64 `json:"overallSuccessRate"`
	AvgCallDuration    int     `json:"avgCallDuration"`
	AvgCustomerAge     int     `json:"avgCustomerAge"`
	Placeholder        bool    `json:"placeholder"`
}

// Dashboard is the normalized data behind the dashboard page.
type Dashboard struct {
	KPI                KPI                       `json:"kpi"`
	TargetDistribution []TargetDistributionPoint `json:"targetDistribution"`
	JobSuccessRate     []JobSuccessPoint         `json:"jobSuccessRate"`
}

// Normalize replaces invalid counts and rates with 0.
func (d *Dashboard) Normalize() {
	for i := range d.TargetDistribution {
		d.TargetDistribution[i].Value = NumberOf(d.TargetDistribution[i].Value.OrZero())
	}
	for i := range d.JobSuccessRate {
		d.JobSuccessRate[i].SuccessRate = NumberOf(d.JobSuccessRate[i].SuccessRate.OrZero())
	}
}
