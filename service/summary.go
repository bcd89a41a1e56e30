package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ludo-technologies/cmreport/domain"
)

// MetricDistribution counts how many records fall into each band for one metric
type MetricDistribution struct {
	Metric domain.MetricKind `json:"metric"`
	Good   int               `json:"good"`
	Warn   int               `json:"warn"`
	Bad    int               `json:"bad"`
}

// Hotspot is a type or member with at least one metric in the bad band
type Hotspot struct {
	Name       string              `json:"name"`
	Category   string              `json:"category"`
	Kind       domain.MemberKind   `json:"kind,omitempty"`
	BadMetrics []domain.MetricKind `json:"bad_metrics"`
	Metrics    domain.MetricValues `json:"metrics"`
}

// ReportSummary condenses a report into counts and the worst records
type ReportSummary struct {
	Assembly           domain.AssemblyInfo  `json:"assembly"`
	TypeCount          int                  `json:"type_count"`
	MemberCount        int                  `json:"member_count"`
	TypeDistribution   []MetricDistribution `json:"type_distribution"`
	MemberDistribution []MetricDistribution `json:"member_distribution"`
	HotspotCount       int                  `json:"hotspot_count"`
	Hotspots           []Hotspot            `json:"hotspots"`
}

// Summarize builds a ReportSummary. Hotspots are ordered by the number of bad
// metrics, ties keeping document order with types before members.
// maxHotspots <= 0 keeps them all.
func Summarize(report *domain.Report, maxHotspots int) *ReportSummary {
	summary := &ReportSummary{
		Assembly:           report.Assembly,
		TypeCount:          len(report.Types),
		MemberCount:        len(report.Members),
		TypeDistribution:   distribute(report.Types),
		MemberDistribution: distribute(report.Members),
		Hotspots:           []Hotspot{},
	}

	for _, records := range [][]domain.MetricRecord{report.Types, report.Members} {
		for _, r := range records {
			if h, ok := hotspotOf(r); ok {
				summary.Hotspots = append(summary.Hotspots, h)
			}
		}
	}

	sort.SliceStable(summary.Hotspots, func(i, j int) bool {
		return len(summary.Hotspots[i].BadMetrics) > len(summary.Hotspots[j].BadMetrics)
	})

	summary.HotspotCount = len(summary.Hotspots)
	if maxHotspots > 0 && len(summary.Hotspots) > maxHotspots {
		summary.Hotspots = summary.Hotspots[:maxHotspots]
	}

	return summary
}

func distribute(records []domain.MetricRecord) []MetricDistribution {
	dist := make([]MetricDistribution, len(domain.MetricKinds))
	for i, kind := range domain.MetricKinds {
		dist[i].Metric = kind
		for _, r := range records {
			switch domain.Classify(kind, r.Metrics.Value(kind)) {
			case domain.SeverityBad:
				dist[i].Bad++
			case domain.SeverityWarn:
				dist[i].Warn++
			default:
				dist[i].Good++
			}
		}
	}
	return dist
}

func hotspotOf(r domain.MetricRecord) (Hotspot, bool) {
	var bad []domain.MetricKind
	for _, kind := range domain.MetricKinds {
		if domain.Classify(kind, r.Metrics.Value(kind)) == domain.SeverityBad {
			bad = append(bad, kind)
		}
	}
	if len(bad) == 0 {
		return Hotspot{}, false
	}
	return Hotspot{
		Name:       r.FullName(),
		Category:   r.Category.String(),
		Kind:       r.Kind,
		BadMetrics: bad,
		Metrics:    r.Metrics,
	}, true
}

// SummaryFormatter renders a ReportSummary as console text
type SummaryFormatter struct {
	utils *FormatUtils
}

// NewSummaryFormatter creates a summary formatter. color enables ANSI severity colours.
func NewSummaryFormatter(color bool) *SummaryFormatter {
	return &SummaryFormatter{utils: NewFormatUtils(color)}
}

// Format renders the summary
func (f *SummaryFormatter) Format(s *ReportSummary) string {
	var b strings.Builder

	b.WriteString(f.utils.FormatMainHeader("Code Metrics Summary"))
	b.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Assembly", strings.TrimSpace(s.Assembly.Name+" "+s.Assembly.Version)))
	b.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Types", s.TypeCount))
	b.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Members", s.MemberCount))
	b.WriteString(f.utils.FormatSectionSeparator())

	f.writeDistribution(&b, "Type Severity", s.TypeDistribution)
	if s.MemberCount > 0 {
		f.writeDistribution(&b, "Member Severity", s.MemberDistribution)
	}

	b.WriteString(f.utils.FormatSectionHeader("Hotspots"))
	if s.HotspotCount == 0 {
		b.WriteString(strings.Repeat(" ", SectionPadding) + "none\n")
		return b.String()
	}
	for _, h := range s.Hotspots {
		names := make([]string, len(h.BadMetrics))
		for i, m := range h.BadMetrics {
			names[i] = string(m)
		}
		fmt.Fprintf(&b, "%s%s [%s] %s: %s\n",
			strings.Repeat(" ", SectionPadding), f.utils.FormatSeverity(domain.SeverityBad),
			h.Category, h.Name, strings.Join(names, ", "))
	}
	if hidden := s.HotspotCount - len(s.Hotspots); hidden > 0 {
		fmt.Fprintf(&b, "%s... and %d more\n", strings.Repeat(" ", SectionPadding), hidden)
	}

	return b.String()
}

func (f *SummaryFormatter) writeDistribution(b *strings.Builder, title string, dist []MetricDistribution) {
	b.WriteString(f.utils.FormatSectionHeader(title))
	for _, d := range dist {
		value := fmt.Sprintf("%s %d  %s %d  %s %d",
			f.utils.FormatSeverity(domain.SeverityGood), d.Good,
			f.utils.FormatSeverity(domain.SeverityWarn), d.Warn,
			f.utils.FormatSeverity(domain.SeverityBad), d.Bad)
		b.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, fmt.Sprintf("%-*s", LabelWidth, d.Metric), value))
	}
	b.WriteString(f.utils.FormatSectionSeparator())
}
