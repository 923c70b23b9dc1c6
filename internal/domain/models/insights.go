package models

// Display labels the backend uses for the two outcome classes.
const (
	LabelSubscribed    = "Berlangganan"
	LabelNotSubscribed = "Tidak Berlangganan"
)

// AgeDistributionPoint counts customers of one age group by outcome.
type AgeDistributionPoint struct {
	AgeGroup      string `json:"age_group"`
	Subscribed    Number `json:"Berlangganan"`
	NotSubscribed Number `json:"Tidak Berlangganan"`
}

// BalanceDurationSample is one sampled customer record.
type BalanceDurationSample struct {
	Balance  Number `json:"balance"`
	Duration Number `json:"duration"`
	Y        string `json:"y"`
	YLabel   string `json:"y_label"`
}

// Insights is the normalized data behind the insights page.
type Insights struct {
	AgeDistribution       []AgeDistributionPoint  `json:"ageDistribution"`
	BalanceDurationSample []BalanceDurationSample `json:"balanceDurationSample"`
}

// Normalize replaces invalid counts, balances and durations with 0.
func (in *Insights) Normalize() {
	for i := range in.AgeDistribution {
		p := &in.AgeDistribution[i]
		p.Subscribed = NumberOf(p.Subscribed.OrZero())
		p.NotSubscribed = NumberOf(p.NotSubscribed.OrZero())
	}
	for i := range in.BalanceDurationSample {
		s := &in.BalanceDurationSample[i]
		s.Balance = NumberOf(s.Balance.OrZero())
		s.Duration = NumberOf(s.Duration.OrZero())
	}
}
