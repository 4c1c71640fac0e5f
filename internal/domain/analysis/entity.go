package analysis

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// ID tipe untuk Analysis
type AnalysisID string

// FieldType enum: semantic column types used in generated schemas
type FieldType string

const (
	TypeUUID     FieldType = "UUID"
	TypeString   FieldType = "String"
	TypeText     FieldType = "Text"
	TypeDecimal  FieldType = "Decimal"
	TypeDateTime FieldType = "DateTime"
	TypeBoolean  FieldType = "Boolean"
	TypeEnum     FieldType = "Enum"
)

// Field is one column of a generated schema
type Field struct {
	Name string
	Type FieldType
}

// Schema is an ordered field list for one entity. Order is meaningful:
// JSON output and CREATE TABLE rendering both follow insertion order,
// which a plain map would not preserve.
type Schema []Field

// MarshalJSON renders the schema as a JSON object with fields in order
func (s Schema) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		typ, err := json.Marshal(string(f.Type))
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(typ)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts the object form; field order follows the document
func (s *Schema) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("schema: expected object, got %v", tok)
	}
	out := Schema{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)
		valTok, err := dec.Token()
		if err != nil {
			return err
		}
		val, ok := valTok.(string)
		if !ok {
			return fmt.Errorf("schema: field %q has non-string type", key)
		}
		out = append(out, Field{Name: key, Type: FieldType(val)})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*s = out
	return nil
}

// CreateTable renders the schema as a SQL DDL skeleton:
// CREATE TABLE <entity> (<field> <type>, ...);
// Fields keep insertion order, no trailing comma.
func (s Schema) CreateTable(entity string) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "CREATE TABLE %s (\n", entity)
	for i, f := range s {
		fmt.Fprintf(&buf, "  %s %s", f.Name, f.Type)
		if i < len(s)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString(");")
	return buf.String()
}

// EntitySchema pairs an entity name with its generated schema
type EntitySchema struct {
	Entity string
	Schema Schema
}

// SchemaSet is an ordered entity -> schema mapping. Keys always mirror the
// entity list of the analysis that produced it.
type SchemaSet []EntitySchema

// Get returns the schema for an entity, ok=false when absent
func (ss SchemaSet) Get(entity string) (Schema, bool) {
	for _, es := range ss {
		if es.Entity == entity {
			return es.Schema, true
		}
	}
	return nil, false
}

// Entities returns schema keys in insertion order
func (ss SchemaSet) Entities() []string {
	out := make([]string, 0, len(ss))
	for _, es := range ss {
		out = append(out, es.Entity)
	}
	return out
}

// MarshalJSON renders the set as a JSON object keyed by entity, in order
func (ss SchemaSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, es := range ss {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(es.Entity)
		if err != nil {
			return nil, err
		}
		schema, err := es.Schema.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(schema)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts the object form, preserving document order
func (ss *SchemaSet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("schema set: expected object, got %v", tok)
	}
	out := SchemaSet{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		var schema Schema
		if err := schema.UnmarshalJSON(raw); err != nil {
			return err
		}
		out = append(out, EntitySchema{Entity: key, Schema: schema})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*ss = out
	return nil
}

// Result is the raw analyzer output: entities, modules, schemas, pseudocode
type Result struct {
	Entities   []string  `json:"entities"`
	Modules    []string  `json:"modules"`
	Schemas    SchemaSet `json:"schemas"`
	Pseudocode string    `json:"pseudocode"`
}

// Aggregate Root: Analysis
type Analysis struct {
	ID          AnalysisID `json:"id"`
	Requirement string     `json:"requirement"`
	Entities    []string   `json:"entities"`
	Modules     []string   `json:"modules"`
	Schemas     SchemaSet  `json:"schemas"`
	Pseudocode  string     `json:"pseudocode"`
	Timestamp   time.Time  `json:"timestamp"`
}

// ExportView is the downloadable document shape: exactly the keys
// entities, modules, schemas, pseudocode, timestamp.
type ExportView struct {
	Entities   []string  `json:"entities"`
	Modules    []string  `json:"modules"`
	Schemas    SchemaSet `json:"schemas"`
	Pseudocode string    `json:"pseudocode"`
	Timestamp  time.Time `json:"timestamp"`
}

// Export returns the download view of the analysis
func (a *Analysis) Export() ExportView {
	return ExportView{
		Entities:   a.Entities,
		Modules:    a.Modules,
		Schemas:    a.Schemas,
		Pseudocode: a.Pseudocode,
		Timestamp:  a.Timestamp,
	}
}

// ExportFilename builds the timestamp-derived artifact name
func (a *Analysis) ExportFilename() string {
	return fmt.Sprintf("technical_spec_%s.json", a.Timestamp.Format("20060102_150405"))
}
