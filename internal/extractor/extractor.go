package extractor

import (
	"strings"

	"github.com/ludo-technologies/cmreport/domain"
	"github.com/ludo-technologies/cmreport/internal/xmltree"
)

// Element and attribute names of the code metrics report schema
const (
	elemAssembly   = "Assembly"
	elemMetrics    = "Metrics"
	elemMetric     = "Metric"
	elemNamespaces = "Namespaces"
	elemNamespace  = "Namespace"
	elemTypes      = "Types"
	elemNamedType  = "NamedType"
	elemMembers    = "Members"

	attrName  = "Name"
	attrValue = "Value"
)

// ProgressFunc is called after each namespace has been processed
type ProgressFunc func(done, total int)

// Extractor walks a parsed code metrics document into a domain.Report
type Extractor struct {
	progress ProgressFunc
}

// Option configures an Extractor
type Option func(*Extractor)

// WithProgress registers a callback invoked once per processed namespace.
func WithProgress(fn ProgressFunc) Option {
	return func(e *Extractor) {
		e.progress = fn
	}
}

// New creates an extractor
func New(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract builds the report from the first Assembly element of doc.
// Records keep document order; nothing is sorted or deduplicated.
func (e *Extractor) Extract(doc *xmltree.Document) (*domain.Report, error) {
	assembly := doc.FindFirst(elemAssembly)
	if assembly == nil {
		return nil, domain.NewMissingSectionError(elemAssembly, "")
	}

	info, err := parseAssemblyInfo(assembly)
	if err != nil {
		return nil, err
	}

	metricsEl := assembly.Child(elemMetrics)
	if metricsEl == nil {
		return nil, domain.NewMissingSectionError(elemMetrics, elemAssembly)
	}
	assemblyMetrics, err := readAssemblyMetrics(metricsEl)
	if err != nil {
		return nil, err
	}

	report := &domain.Report{
		Assembly:        info,
		AssemblyMetrics: assemblyMetrics,
		AssemblyRecord: domain.MetricRecord{
			Name:     info.Name,
			Category: domain.RecordAssembly,
			Metrics:  selectMetrics(assemblyMetrics),
		},
		Types:   []domain.MetricRecord{},
		Members: []domain.MetricRecord{},
	}

	namespacesEl := assembly.Child(elemNamespaces)
	if namespacesEl == nil {
		return nil, domain.NewMissingSectionError(elemNamespaces, elemAssembly)
	}

	namespaces := namespacesEl.ChildrenNamed(elemNamespace)
	for i, ns := range namespaces {
		if err := e.extractNamespace(ns, report); err != nil {
			return nil, err
		}
		if e.progress != nil {
			e.progress(i+1, len(namespaces))
		}
	}

	return report, nil
}

func (e *Extractor) extractNamespace(ns *xmltree.Element, report *domain.Report) error {
	namespace, ok := ns.Attr(attrName)
	if !ok {
		return domain.NewMissingAttributeError(attrName, elemNamespace, "")
	}

	typesEl := ns.Child(elemTypes)
	if typesEl == nil {
		return nil
	}

	for _, namedType := range typesEl.ChildrenNamed(elemNamedType) {
		record, err := extractType(namedType, namespace)
		if err != nil {
			return err
		}
		report.Types = append(report.Types, record)

		members, err := extractMembers(namedType, record.FullName())
		if err != nil {
			return err
		}
		report.Members = append(report.Members, members...)
	}
	return nil
}

func extractType(el *xmltree.Element, namespace string) (domain.MetricRecord, error) {
	name, ok := el.Attr(attrName)
	if !ok {
		return domain.MetricRecord{}, domain.NewMissingAttributeError(attrName, elemNamedType, "in namespace "+namespace)
	}

	metrics, err := readMetrics(el)
	if err != nil {
		return domain.MetricRecord{}, err
	}

	return domain.MetricRecord{
		Name:      name,
		Container: namespace,
		Kind:      domain.MemberKindNone,
		Category:  domain.RecordType,
		Metrics:   metrics,
	}, nil
}

// extractMembers reads Method, Field and Property children with a non-empty Name.
// Anything else under Members is skipped.
func extractMembers(namedType *xmltree.Element, container string) ([]domain.MetricRecord, error) {
	membersEl := namedType.Child(elemMembers)
	if membersEl == nil {
		return nil, nil
	}

	var out []domain.MetricRecord
	for _, child := range membersEl.Children {
		kind, ok := domain.ParseMemberKind(child.Name)
		if !ok {
			continue
		}
		name, _ := child.Attr(attrName)
		if name == "" {
			continue
		}

		metrics, err := readMetrics(child)
		if err != nil {
			return nil, err
		}

		out = append(out, domain.MetricRecord{
			Name:      name,
			Container: container,
			Kind:      kind,
			Category:  domain.RecordMember,
			Metrics:   metrics,
		})
	}
	return out, nil
}

// parseAssemblyInfo splits "Name, Version=x.y.z, Culture=..." into name and version.
func parseAssemblyInfo(el *xmltree.Element) (domain.AssemblyInfo, error) {
	raw, ok := el.Attr(attrName)
	if !ok {
		return domain.AssemblyInfo{}, domain.NewMissingAttributeError(attrName, elemAssembly, "")
	}

	parts := strings.Split(raw, ", ")
	if len(parts) < 2 {
		return domain.AssemblyInfo{}, domain.NewMissingAttributeError("Version", elemAssembly, "expected \"Name, Version=x.y.z\", got "+quote(raw))
	}

	_, version, found := strings.Cut(parts[1], "=")
	if !found {
		return domain.AssemblyInfo{}, domain.NewMissingAttributeError("Version", elemAssembly, "expected Version=value, got "+quote(parts[1]))
	}
	if i := strings.IndexByte(version, ','); i >= 0 {
		version = version[:i]
	}

	return domain.AssemblyInfo{Name: parts[0], Version: version}, nil
}

func quote(s string) string {
	return "\"" + s + "\""
}
