package analyzer

import domain "github.com/bryanwahyu/req2spec/internal/domain/analysis"

// Fixed lookup tables. All of them are read-only after package init;
// the analyzer never mutates them.

// commonEntities are the known domain nouns, matched by substring
// containment against the lowered requirement text.
var commonEntities = []string{
	"user", "product", "order", "payment",
	"customer", "admin", "report", "notification",
}

// stopWords are dropped during custom-entity tokenization.
var stopWords = map[string]bool{
	"the": true, "and": true, "or": true, "but": true, "in": true,
	"on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "up": true, "about": true,
	"into": true, "through": true, "during": true, "before": true,
	"after": true, "above": true, "below": true, "between": true,
	"among": true, "under": true, "over": true,
}

// moduleCategory maps a requirement category to the module names it
// contributes. A category fires when its name appears as a substring of
// the lowered text, or when any of its trigger keywords does.
type moduleCategory struct {
	name     string
	keywords []string
	modules  []string
}

// commonModules is ordered: truncation to the module cap depends on
// category order, so this must stay a slice, not a map.
var commonModules = []moduleCategory{
	{
		name:     "user management",
		keywords: []string{"login", "register", "auth", "sign"},
		modules:  []string{"authentication", "authorization", "user_profile", "session_management"},
	},
	{
		name:     "data processing",
		keywords: []string{"store", "save", "retrieve", "process"},
		modules:  []string{"data_validation", "data_transformation", "data_storage", "data_retrieval"},
	},
	{
		name:     "api",
		keywords: []string{"api", "endpoint", "service"},
		modules:  []string{"rest_api", "request_handler", "response_formatter", "error_handler"},
	},
	{
		name:     "database",
		keywords: []string{"database", "data", "store"},
		modules:  []string{"database_connection", "crud_operations", "data_models", "migrations"},
	},
	{
		name:     "frontend",
		keywords: []string{"interface", "ui", "frontend", "web"},
		modules:  []string{"user_interface", "components", "routing", "state_management"},
	},
	{
		name:     "notification",
		keywords: []string{"notify", "alert", "email", "message"},
		modules:  []string{"email_service", "push_notifications", "notification_queue", "templates"},
	},
	{
		name:     "payment",
		keywords: []string{"payment", "pay", "billing", "charge"},
		modules:  []string{"payment_gateway", "transaction_processing", "billing", "invoice_generation"},
	},
	{
		name:     "analytics",
		keywords: []string{"report", "analytics", "dashboard", "metrics"},
		modules:  []string{"data_collection", "reporting", "dashboard", "metrics_calculation"},
	},
}

// schemaTemplates are the predefined field/type mappings for well-known
// entities. Field order is meaningful and carries through to JSON and
// CREATE TABLE output.
var schemaTemplates = map[string]domain.Schema{
	"user": {
		{Name: "id", Type: domain.TypeUUID},
		{Name: "username", Type: domain.TypeString},
		{Name: "email", Type: domain.TypeString},
		{Name: "password_hash", Type: domain.TypeString},
		{Name: "created_at", Type: domain.TypeDateTime},
		{Name: "updated_at", Type: domain.TypeDateTime},
		{Name: "is_active", Type: domain.TypeBoolean},
	},
	"product": {
		{Name: "id", Type: domain.TypeUUID},
		{Name: "name", Type: domain.TypeString},
		{Name: "description", Type: domain.TypeText},
		{Name: "price", Type: domain.TypeDecimal},
		{Name: "category_id", Type: domain.TypeUUID},
		{Name: "created_at", Type: domain.TypeDateTime},
		{Name: "is_available", Type: domain.TypeBoolean},
	},
	"order": {
		{Name: "id", Type: domain.TypeUUID},
		{Name: "user_id", Type: domain.TypeUUID},
		{Name: "total_amount", Type: domain.TypeDecimal},
		{Name: "status", Type: domain.TypeEnum},
		{Name: "created_at", Type: domain.TypeDateTime},
		{Name: "updated_at", Type: domain.TypeDateTime},
	},
}

// genericSchema is the fallback for entities without a template.
func genericSchema() domain.Schema {
	return domain.Schema{
		{Name: "id", Type: domain.TypeUUID},
		{Name: "name", Type: domain.TypeString},
		{Name: "description", Type: domain.TypeText},
		{Name: "created_at", Type: domain.TypeDateTime},
		{Name: "updated_at", Type: domain.TypeDateTime},
		{Name: "is_active", Type: domain.TypeBoolean},
	}
}
