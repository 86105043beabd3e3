package models

// DefaultPlan returns the bundled seed dataset used when no persisted
// state exists (or when the persisted state cannot be read).
func DefaultPlan() *Plan {
	events := []Event{
		{ID: 1, Name: "Welcome Reception in Murray", Duration: "3 hours", PerPersonCost: 1180, MinimumCost: 140000, Category: CategoryFood},
		{ID: 5, Name: "Welcome Reception in Hyatt Regency", Duration: "3 hours", PerPersonCost: 818, MinimumCost: 68800, Category: CategoryFood},
		{ID: 6, Name: "Gala Dinner in The Verandah", Duration: "Dinner", PerPersonCost: 1628, MinimumCost: 360000, Category: CategoryFood},
		{ID: 9, Name: "Gala Dinner in Crown Wine Cellar", Duration: "Dinner", PerPersonCost: 1688, MinimumCost: 110000, Category: CategoryFood},
		{ID: 10, Name: "Gala Dinner in WaterMark", Duration: "Dinner", PerPersonCost: 0, MinimumCost: 168000, Category: CategoryFood},
		{ID: 11, Name: "Sai Kung Seafood Dinner", Duration: "Dinner", PerPersonCost: 1000, MinimumCost: 0, Category: CategoryFood},
		{ID: 12, Name: "Star Ferry", Description: "110 passengers. 3 hours 45,000", Duration: "Cocktail", PerPersonCost: 0, MinimumCost: 45000, Category: CategoryFood},
		{ID: 15, Name: "Star Ferry Canapes/ Lunch", Description: "Canapes Room.", Duration: "Cocktail", PerPersonCost: 500, MinimumCost: 0, Category: CategoryFood},
		{ID: 2, Name: "Conference Hall Rental in Murray", Description: "Main venue for keynote sessions", Duration: "Half Day", PerPersonCost: 0, MinimumCost: 75000, Category: CategoryVenue},
		{ID: 7, Name: "Conference Hall Rental in Hyatt Regency", Description: "Main venue for keynote sessions", Duration: "Half Day", PerPersonCost: 0, MinimumCost: 40800, Category: CategoryVenue},
		{ID: 8, Name: "Conference Hall Rental in W Hotel", Description: "Main venue for keynote sessions", Duration: "Half Day", PerPersonCost: 0, MinimumCost: 118000, Category: CategoryVenue},
		{ID: 3, Name: "Workshop Session", Description: "Interactive training with materials", Duration: "4 hours", PerPersonCost: 1200, MinimumCost: 0, Category: CategoryVenue},
		{ID: 13, Name: "Tour Bus for Macau", Description: "2 buses, 1 bus 4500 full day estimate", PerPersonCost: 0, MinimumCost: 9000, Category: CategoryOther},
		{ID: 14, Name: "Macau Lunch - Portugese Food", Description: "Budget 500 per person", PerPersonCost: 500, MinimumCost: 0, Category: CategoryOther},
		{ID: 16, Name: "Sai Kung Alcohol Cost", Description: "Buy Bottles and bring there.", PerPersonCost: 299.98, MinimumCost: 0, Category: CategoryOther},
		{ID: 17, Name: "Dragon Dance Performance", PerPersonCost: 0, MinimumCost: 10000, Category: CategoryOther},
		{ID: 18, Name: "Dim Sum Lunch", Duration: "Lunch", PerPersonCost: 350, MinimumCost: 0, Category: CategoryOther},
		{ID: 19, Name: "Korean BBQ Dinner", Duration: "Dinner", PerPersonCost: 800, MinimumCost: 0, Category: CategoryOther},
		{ID: 20, Name: "Star Ferry Alcohol Cost", Duration: "Lunch", PerPersonCost: 300, MinimumCost: 0, Category: CategoryOther},
		{ID: 21, Name: "Murray Lunch", PerPersonCost: 600, MinimumCost: 0, Category: CategoryOther},
		{ID: 22, Name: "Jocky Club Lunch- Saturday/ Sunday", Description: "Wouldnt know until the race schedule out in 2026.", PerPersonCost: 830, MinimumCost: 0, Category: CategoryOther},
	}

	plan := &Plan{
		Title:       "IAPN 2027 May 21-24",
		Attendees:   100,
		Currency:    CurrencyHKD,
		Events:      events,
		NextEventID: 23,
		NextDayID:   5,
		Days: []Day{
			{ID: "day1", Label: "Day 1"},
			{ID: "day2", Label: "Day 2", Notes: "Murray Conference->Star Ferry Lunch->Sai Kung Seafood Dinner"},
			{ID: "day3", Label: "Day 3", Notes: "Macau Day Trip->Lunch in Macau-> Come BackBBQ"},
			{ID: "day4", Label: "Day 4", Notes: "Conference->Dim Sum->Gala"},
		},
	}

	// The seed schedule holds copies of catalog entries, same as any
	// schedule built through the session operations.
	pick := func(id int) Event {
		e, _ := plan.EventByID(id)
		return e
	}
	plan.Schedule = map[string][]Event{
		"day1": {pick(1)},
		"day2": {pick(2), pick(11), pick(16), pick(17), pick(12), pick(15), pick(20)},
		"day3": {pick(13), pick(14), pick(19)},
		"day4": {pick(2), pick(18), pick(6)},
	}

	return plan
}
