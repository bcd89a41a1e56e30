package service

import "github.com/ludo-technologies/cmreport/domain"

// newTestReport returns a small report with one healthy and one poor type.
func newTestReport() *domain.Report {
	return &domain.Report{
		Assembly: domain.AssemblyInfo{Name: "App", Version: "1.0.0.0"},
		AssemblyMetrics: []domain.AssemblyMetric{
			{Name: "MaintainabilityIndex", Value: 78},
			{Name: "CyclomaticComplexity", Value: 12345},
		},
		Types: []domain.MetricRecord{
			{
				Name:      "Widget",
				Container: "App",
				Category:  domain.RecordType,
				Metrics: domain.MetricValues{
					MaintainabilityIndex: 80,
					CyclomaticComplexity: 10,
					ClassCoupling:        5,
					SourceLines:          50,
					ExecutableLines:      40,
				},
			},
			{
				Name:      "Legacy<T>",
				Container: "App.Data",
				Category:  domain.RecordType,
				Metrics: domain.MetricValues{
					MaintainabilityIndex: 41,
					CyclomaticComplexity: 131,
					ClassCoupling:        52,
					SourceLines:          1480,
					ExecutableLines:      702,
				},
			},
		},
		Members: []domain.MetricRecord{
			{
				Name:      "Run(string, int) : void",
				Container: "App.Widget",
				Kind:      domain.MemberKindMethod,
				Category:  domain.RecordMember,
				Metrics: domain.MetricValues{
					MaintainabilityIndex: 58,
					CyclomaticComplexity: 21,
					ClassCoupling:        9,
					SourceLines:          88,
					ExecutableLines:      70,
				},
			},
			{
				Name:      "_name",
				Container: "App.Widget",
				Kind:      domain.MemberKindField,
				Category:  domain.RecordMember,
				Metrics: domain.MetricValues{
					MaintainabilityIndex: 100,
					SourceLines:          1,
				},
			},
		},
	}
}
