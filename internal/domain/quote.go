package domain

// CurrencyINR is the only currency fares are quoted in.
const CurrencyINR = "INR"

// Quote is a priced ride as handed to the console and HTTP surfaces.
type Quote struct {
	Ride     Ride
	Fare     float64
	Currency string
}
