package models

// GroupSummary aggregates the records of one category or route.
type GroupSummary struct {
	Name         string
	Buses        int
	PricedBuses  int
	AveragePrice float64
	TotalSeats   int
}

// RunReport holds the computed summary over a run's records.
type RunReport struct {
	TotalBuses      int
	GovernmentBuses int
	PrivateBuses    int
	ByCategory      []GroupSummary
	ByRoute         []GroupSummary
	TopRated        []BusRecord
}
