package renda

// RegressiveRate returns the fixed-income withholding rate for a holding
// period in days since the original settlement. The table steps down at
// 180, 360 and 720 days.
func RegressiveRate(daysHeld int) float64 {
	switch {
	case daysHeld <= 180:
		return 0.225
	case daysHeld <= 360:
		return 0.20
	case daysHeld <= 720:
		return 0.175
	default:
		return 0.15
	}
}

// Regime resolves the asset's effective tax regime: an unset regime falls
// back to the category convention.
func (a AssetConfig) Regime() TaxRegime {
	if a.TaxRegime == TaxDefault {
		return DefaultRegime(a.Category)
	}
	return a.TaxRegime
}

// WithholdingRate returns the rate an asset pays on income realized after
// daysHeld days, according to its effective tax regime.
func (a AssetConfig) WithholdingRate(daysHeld int) float64 {
	switch a.Regime() {
	case TaxExempt:
		return 0
	case TaxFlat:
		return float64(a.FlatRate) / 100
	default:
		return RegressiveRate(daysHeld)
	}
}

// withhold splits a gross amount into tax and net parts for the given
// holding period. Negative gross amounts pay no tax.
func (a AssetConfig) withhold(gross Money, daysHeld int) (tax, net Money) {
	if !gross.IsPositive() {
		return gross.MulFactor(0), gross
	}
	tax = gross.MulFactor(a.WithholdingRate(daysHeld))
	return tax, gross.Sub(tax)
}
