// Package analyzer implements the heuristic requirement analyzer: a pure,
// rule-based mapper from free-text business requirements to candidate
// entities, modules, schema skeletons and templated pseudocode.
//
// Matching is substring containment and keyword lookup, nothing smarter.
// False positives are an accepted property of the heuristic, not bugs.
package analyzer

import (
	"regexp"
	"strings"

	domain "github.com/bryanwahyu/req2spec/internal/domain/analysis"
)

const (
	maxEntities           = 8
	maxModules            = 6
	maxPseudocodeEntities = 3
)

var wordRe = regexp.MustCompile(`[a-zA-Z]+`)

// Analyzer is stateless; the zero value is ready to use. It satisfies
// the analysis.Analyzer port.
type Analyzer struct{}

func New() *Analyzer { return &Analyzer{} }

// Analyze runs the full pipeline: entity extraction -> module
// identification -> schema generation -> pseudocode generation.
// Total over all inputs; blank input yields empty entities/modules and
// the bare pseudocode skeleton.
func (a *Analyzer) Analyze(requirement string) domain.Result {
	entities := a.ExtractEntities(requirement)
	modules := a.IdentifyModules(requirement)
	schemas := a.GenerateSchemas(entities)
	pseudocode := a.GeneratePseudocode(modules, entities)

	return domain.Result{
		Entities:   entities,
		Modules:    modules,
		Schemas:    schemas,
		Pseudocode: pseudocode,
	}
}

// ExtractEntities returns candidate domain nouns: known entities matched
// by substring, then 4+ letter non-stop-word tokens in appearance order.
// First-seen deduplication, capped at maxEntities.
func (a *Analyzer) ExtractEntities(requirement string) []string {
	reqLower := strings.ToLower(requirement)

	entities := make([]string, 0, maxEntities)
	seen := make(map[string]bool)

	add := func(e string) {
		if !seen[e] {
			seen[e] = true
			entities = append(entities, e)
		}
	}

	for _, entity := range commonEntities {
		if strings.Contains(reqLower, entity) {
			add(entity)
		}
	}

	// Candidate custom entities: alphabetic runs, minus stop words and
	// short tokens
	for _, word := range wordRe.FindAllString(requirement, -1) {
		w := strings.ToLower(word)
		if stopWords[w] || len(word) <= 3 {
			continue
		}
		add(w)
	}

	if len(entities) > maxEntities {
		entities = entities[:maxEntities]
	}
	return entities
}

// IdentifyModules unions in module names from every category whose name
// or trigger keywords appear in the text. First-seen deduplication in
// category order, capped at maxModules.
func (a *Analyzer) IdentifyModules(requirement string) []string {
	reqLower := strings.ToLower(requirement)

	modules := make([]string, 0, maxModules)
	seen := make(map[string]bool)

	for _, cat := range commonModules {
		if !categoryMatches(reqLower, cat) {
			continue
		}
		for _, m := range cat.modules {
			if !seen[m] {
				seen[m] = true
				modules = append(modules, m)
			}
		}
	}

	if len(modules) > maxModules {
		modules = modules[:maxModules]
	}
	return modules
}

func categoryMatches(reqLower string, cat moduleCategory) bool {
	if strings.Contains(reqLower, cat.name) {
		return true
	}
	for _, kw := range cat.keywords {
		if strings.Contains(reqLower, kw) {
			return true
		}
	}
	return false
}

// GenerateSchemas emits one schema per entity: the predefined template
// for user/product/order, the generic fallback for everything else.
func (a *Analyzer) GenerateSchemas(entities []string) domain.SchemaSet {
	schemas := make(domain.SchemaSet, 0, len(entities))
	for _, entity := range entities {
		if tmpl, ok := schemaTemplates[entity]; ok {
			schemas = append(schemas, domain.EntitySchema{Entity: entity, Schema: tmpl})
		} else {
			schemas = append(schemas, domain.EntitySchema{Entity: entity, Schema: genericSchema()})
		}
	}
	return schemas
}

// GeneratePseudocode assembles the fixed-structure outline. Section
// presence is driven by substring matches on already-identified module
// names, in fixed relative order:
// auth -> data -> business logic -> notification -> api.
func (a *Analyzer) GeneratePseudocode(modules, entities []string) string {
	var lines []string

	lines = append(lines, "MAIN FUNCTION:", "  BEGIN")

	if anyContains(modules, "auth") {
		lines = append(lines,
			"    // Authentication",
			"    IF user_not_authenticated THEN",
			"      REDIRECT to login_page",
			"    END IF",
			"",
		)
	}

	if anyContains(modules, "data") {
		lines = append(lines,
			"    // Data Processing",
			"    INPUT user_data",
			"    VALIDATE user_data",
			"    IF validation_fails THEN",
			"      RETURN error_message",
			"    END IF",
			"",
		)
	}

	lines = append(lines, "    // Main Business Logic")
	for i, entity := range entities {
		if i >= maxPseudocodeEntities {
			break
		}
		lines = append(lines,
			"    PROCESS "+entity+"_operations",
			"    STORE "+entity+"_data IN database",
		)
	}
	lines = append(lines, "")

	if anyContains(modules, "notification") {
		lines = append(lines,
			"    // Notifications",
			"    SEND notification_to_user",
			"    LOG notification_sent",
			"",
		)
	}

	if anyContains(modules, "api") {
		lines = append(lines,
			"    // API Response",
			"    RETURN success_response WITH data",
		)
	}

	lines = append(lines, "  END")
	return strings.Join(lines, "\n")
}

func anyContains(modules []string, sub string) bool {
	for _, m := range modules {
		if strings.Contains(m, sub) {
			return true
		}
	}
	return false
}
