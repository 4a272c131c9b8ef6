package analysis

// SmokingImpact quantifies the charge difference between smoker groups.
type SmokingImpact struct {
	Multiplier float64 `json:"multiplier"`
	Difference float64 `json:"difference"`
	HighGroup  string  `json:"high_group"`
	LowGroup   string  `json:"low_group"`
}

// Insights are the headline findings derived from the full analysis.
type Insights struct {
	StrongestPredictor string         `json:"strongest_predictor"`
	CorrelationValue   float64        `json:"correlation_value"`
	Interpretation     string         `json:"interpretation"`
	Smoking            *SmokingImpact `json:"smoking_impact,omitempty"`
	SignificantFactors []string       `json:"significant_factors"`
}

// buildInsights derives the headline findings from the computed results.
func buildInsights(corr *Correlation, smokerGroups []GroupStat, tests TestResults) Insights {
	insights := Insights{
		StrongestPredictor: corr.StrongestPredictor,
		CorrelationValue:   corr.StrongestR,
		Interpretation:     corr.Interpretation,
		SignificantFactors: []string{},
	}

	if len(smokerGroups) >= 2 {
		high, low := smokerGroups[0], smokerGroups[0]
		for _, g := range smokerGroups[1:] {
			if g.Mean > high.Mean {
				high = g
			}
			if g.Mean < low.Mean {
				low = g
			}
		}
		if low.Mean > 0 {
			insights.Smoking = &SmokingImpact{
				Multiplier: high.Mean / low.Mean,
				Difference: high.Mean - low.Mean,
				HighGroup:  high.Group,
				LowGroup:   low.Group,
			}
		}
	}

	if tests.SmokerTTest.Significant {
		insights.SignificantFactors = append(insights.SignificantFactors, "smoker")
	}
	if tests.SexTTest.Significant {
		insights.SignificantFactors = append(insights.SignificantFactors, "sex")
	}
	if tests.RegionANOVA.Significant {
		insights.SignificantFactors = append(insights.SignificantFactors, "region")
	}

	return insights
}
