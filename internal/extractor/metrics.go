package extractor

import (
	"strconv"
	"strings"

	"github.com/ludo-technologies/cmreport/domain"
	"github.com/ludo-technologies/cmreport/internal/xmltree"
)

// readMetrics applies the selective rule used for types and members: the Metrics
// child is required, recognized names fill the five fields, other names are ignored
// and absent metrics stay 0.
func readMetrics(el *xmltree.Element) (domain.MetricValues, error) {
	var values domain.MetricValues

	metricsEl := el.Child(elemMetrics)
	if metricsEl == nil {
		return values, domain.NewMissingSectionError(elemMetrics, el.Name)
	}

	for _, m := range metricsEl.ChildrenNamed(elemMetric) {
		name, value, err := readMetric(m)
		if err != nil {
			return values, err
		}
		values.Set(domain.MetricKind(name), value)
	}
	return values, nil
}

// readAssemblyMetrics keeps every child of the assembly Metrics block verbatim.
func readAssemblyMetrics(metricsEl *xmltree.Element) ([]domain.AssemblyMetric, error) {
	out := make([]domain.AssemblyMetric, 0, len(metricsEl.Children))
	for _, m := range metricsEl.Children {
		name, value, err := readMetric(m)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.AssemblyMetric{Name: name, Value: value})
	}
	return out, nil
}

func readMetric(m *xmltree.Element) (string, int, error) {
	name, ok := m.Attr(attrName)
	if !ok {
		return "", 0, domain.NewMissingAttributeError(attrName, m.Name, m.Path())
	}
	raw, ok := m.Attr(attrValue)
	if !ok {
		return "", 0, domain.NewMissingAttributeError(attrValue, m.Name, "metric "+name)
	}
	value, err := parseMetricValue(name, raw)
	if err != nil {
		return "", 0, err
	}
	return name, value, nil
}

func parseMetricValue(name, raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, domain.NewMalformedMetricError(name, raw, err)
	}
	if value < 0 {
		return 0, domain.NewMalformedMetricError(name, raw, nil)
	}
	return value, nil
}

func selectMetrics(metrics []domain.AssemblyMetric) domain.MetricValues {
	var values domain.MetricValues
	for _, m := range metrics {
		values.Set(domain.MetricKind(m.Name), m.Value)
	}
	return values
}
