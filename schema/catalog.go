package schema

import "time"

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SustainabilityGoalCatalog returns a fresh copy of the static goal catalog.
func SustainabilityGoalCatalog() []SustainabilityGoal {
	return []SustainabilityGoal{
		{
			ID:          "goal-net-zero",
			Title:       "Net Zero Operations",
			Description: "Reduce scope 1 and 2 emissions to net zero through efficiency and clean power purchase.",
			TargetDate:  date(2030, time.December, 31),
			Progress:    35,
			Status:      GoalOnTrack,
			SDG:         13,
		},
		{
			ID:          "goal-renewable-share",
			Title:       "100% Renewable Electricity",
			Description: "Source all plant electricity from rooftop solar and green open-access supply.",
			TargetDate:  date(2028, time.March, 31),
			Progress:    48,
			Status:      GoalOnTrack,
			SDG:         7,
		},
		{
			ID:          "goal-zero-liquid-discharge",
			Title:       "Zero Liquid Discharge",
			Description: "Treat and recycle all process effluent so no untreated water leaves the site.",
			TargetDate:  date(2027, time.September, 30),
			Progress:    62,
			Status:      GoalAtRisk,
			SDG:         6,
		},
		{
			ID:          "goal-circular-waste",
			Title:       "Zero Waste to Landfill",
			Description: "Divert at least 90% of solid waste through reuse, recycling and co-processing.",
			TargetDate:  date(2029, time.June, 30),
			Progress:    20,
			Status:      GoalDelayed,
			SDG:         12,
		},
		{
			ID:          "goal-inclusive-workforce",
			Title:       "Inclusive Workforce",
			Description: "Reach 40% women in the workforce and zero lost-time safety incidents.",
			TargetDate:  date(2026, time.March, 31),
			Progress:    100,
			Status:      GoalAchieved,
			SDG:         8,
		},
	}
}

// GreenIncentiveCatalog returns a fresh copy of the static incentive catalog.
func GreenIncentiveCatalog() []GreenIncentive {
	return []GreenIncentive{
		{
			Name:        "Green Building Subsidy",
			Description: "Capital subsidy on construction cost for certified green buildings.",
			Value:       "Up to 25% of construction cost",
			Eligibility: "LEED Gold or equivalent certification",
		},
		{
			Name:        "Solar Power Incentive",
			Description: "Reimbursement of electricity duty for captive solar generation.",
			Value:       "100% electricity duty waiver for 10 years",
			Eligibility: "Minimum 1 MW captive solar installation",
		},
		{
			Name:        "Effluent Treatment Assistance",
			Description: "Interest subvention on loans taken to build effluent treatment plants.",
			Value:       "5% interest subvention for 7 years",
			Eligibility: "New or upgraded ETP approved by the pollution control board",
		},
		{
			Name:        "Carbon Credit Facilitation",
			Description: "Advisory and registration support for carbon credit projects.",
			Value:       "Registration fees reimbursed up to 10 lakh",
			Eligibility: "Verified emission reduction project",
		},
		{
			Name:        "Women Employment Incentive",
			Description: "Payroll assistance for units with a high share of women employees.",
			Value:       "Rs 2,000 per woman employee per month for 5 years",
			Eligibility: "Female workforce above 40%",
		},
	}
}
