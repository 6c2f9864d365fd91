// Package xmlutils provides permissive XML loading and path-based field
// extraction shared by all message parsers.
package xmlutils

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/xmlpath.v2"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

var (
	xmlnsRe  = regexp.MustCompile(`\s+xmlns(:[A-Za-z0-9_.-]+)?\s*=\s*"[^"]*"`)
	schemaRe = regexp.MustCompile(`\s+xsi:schemaLocation\s*=\s*"[^"]*"`)
)

// NormalizeDocument strips a UTF-8 BOM and all namespace/schema-location
// declarations from the raw text. Producers embed inconsistent namespace
// declarations that would otherwise block plain path lookups.
func NormalizeDocument(raw string) string {
	raw = strings.TrimPrefix(raw, "\uFEFF")
	raw = xmlnsRe.ReplaceAllString(raw, "")
	raw = schemaRe.ReplaceAllString(raw, "")
	return raw
}

// ParseDocument normalizes raw text and parses it into an XML root node.
func ParseDocument(raw string) (*xmlpath.Node, error) {
	root, err := xmlpath.Parse(strings.NewReader(NormalizeDocument(raw)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}
	return root, nil
}

// LoadXMLFile reads an XML file and returns its parsed root node.
func LoadXMLFile(xmlFilePath string) (*xmlpath.Node, error) {
	data, err := os.ReadFile(xmlFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read XML file: %w", err)
	}
	return ParseDocument(string(data))
}

var (
	pathMu    sync.Mutex
	pathCache = map[string]*xmlpath.Path{}
)

// compilePath returns the compiled path for expr, or nil when the expression
// is invalid. Invalid expressions are treated as non-matching.
func compilePath(expr string) *xmlpath.Path {
	pathMu.Lock()
	defer pathMu.Unlock()
	if p, ok := pathCache[expr]; ok {
		return p
	}
	p, err := xmlpath.Compile(expr)
	if err != nil {
		log.WithError(err).WithField("path", expr).Warn("Invalid XPath expression")
		pathCache[expr] = nil
		return nil
	}
	pathCache[expr] = p
	return p
}

// FirstMatch returns the text of the first candidate path that matches under
// node, or an empty string when none match. Absence is normal here, never an
// error: different message producers populate different optional branches of
// the same schema.
func FirstMatch(node *xmlpath.Node, paths ...string) string {
	for _, expr := range paths {
		p := compilePath(expr)
		if p == nil {
			continue
		}
		if value, ok := p.String(node); ok {
			return value
		}
	}
	return ""
}

// AllMatches returns the text of every node matching the path under node.
func AllMatches(node *xmlpath.Node, expr string) []string {
	p := compilePath(expr)
	if p == nil {
		return nil
	}
	var values []string
	iter := p.Iter(node)
	for iter.Next() {
		values = append(values, iter.Node().String())
	}
	return values
}

// JoinMatches concatenates every match of the path with a single space.
// Zero matches yield an empty string.
func JoinMatches(node *xmlpath.Node, expr string) string {
	return strings.Join(AllMatches(node, expr), " ")
}

// Nodes returns every node matching the path under node, for callers that
// need to apply further relative paths per block.
func Nodes(node *xmlpath.Node, expr string) []*xmlpath.Node {
	p := compilePath(expr)
	if p == nil {
		return nil
	}
	var nodes []*xmlpath.Node
	iter := p.Iter(node)
	for iter.Next() {
		nodes = append(nodes, iter.Node())
	}
	return nodes
}
