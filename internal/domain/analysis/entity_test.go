package analysis

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSchema() Schema {
	return Schema{
		{Name: "id", Type: TypeUUID},
		{Name: "name", Type: TypeString},
		{Name: "created_at", Type: TypeDateTime},
		{Name: "is_active", Type: TypeBoolean},
	}
}

func TestSchemaMarshalJSON_PreservesOrder(t *testing.T) {
	data, err := json.Marshal(sampleSchema())
	require.NoError(t, err)

	// a plain map would sort keys; the schema must keep insertion order
	assert.Equal(t, `{"id":"UUID","name":"String","created_at":"DateTime","is_active":"Boolean"}`, string(data))
}

func TestSchemaJSON_RoundTrip(t *testing.T) {
	orig := sampleSchema()
	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var back Schema
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, orig, back)
}

func TestSchemaCreateTable(t *testing.T) {
	sql := sampleSchema().CreateTable("account")

	assert.Equal(t, "CREATE TABLE account (\n  id UUID,\n  name String,\n  created_at DateTime,\n  is_active Boolean\n);", sql)
}

func TestSchemaCreateTable_SingleField(t *testing.T) {
	sql := Schema{{Name: "id", Type: TypeUUID}}.CreateTable("tag")

	// no trailing comma on the last (only) field
	assert.Equal(t, "CREATE TABLE tag (\n  id UUID\n);", sql)
}

func TestSchemaSetMarshalJSON_OrderAndKeys(t *testing.T) {
	ss := SchemaSet{
		{Entity: "zebra", Schema: Schema{{Name: "id", Type: TypeUUID}}},
		{Entity: "apple", Schema: Schema{{Name: "id", Type: TypeUUID}}},
	}

	data, err := json.Marshal(ss)
	require.NoError(t, err)
	assert.Equal(t, `{"zebra":{"id":"UUID"},"apple":{"id":"UUID"}}`, string(data))

	assert.Equal(t, []string{"zebra", "apple"}, ss.Entities())
}

func TestSchemaSetJSON_RoundTrip(t *testing.T) {
	orig := SchemaSet{
		{Entity: "user", Schema: sampleSchema()},
		{Entity: "order", Schema: Schema{{Name: "id", Type: TypeUUID}}},
	}

	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var back SchemaSet
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, orig, back)
}

func TestSchemaSetGet(t *testing.T) {
	ss := SchemaSet{{Entity: "user", Schema: sampleSchema()}}

	got, ok := ss.Get("user")
	assert.True(t, ok)
	assert.Equal(t, sampleSchema(), got)

	_, ok = ss.Get("ghost")
	assert.False(t, ok)
}

func TestEmptySchemaSetMarshalsToEmptyObject(t *testing.T) {
	data, err := json.Marshal(SchemaSet{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestAnalysisExport(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	a := &Analysis{
		ID:          "a-1",
		Requirement: "build a product catalog",
		Entities:    []string{"product", "catalog"},
		Modules:     []string{"crud_operations"},
		Schemas:     SchemaSet{{Entity: "product", Schema: sampleSchema()}},
		Pseudocode:  "MAIN FUNCTION:\n  BEGIN\n  END",
		Timestamp:   ts,
	}

	view := a.Export()
	data, err := json.Marshal(view)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))

	// exactly the download keys, nothing else
	assert.Len(t, doc, 5)
	for _, key := range []string{"entities", "modules", "schemas", "pseudocode", "timestamp"} {
		assert.Contains(t, doc, key)
	}

	// ISO-8601 timestamp
	var tsStr string
	require.NoError(t, json.Unmarshal(doc["timestamp"], &tsStr))
	parsed, err := time.Parse(time.RFC3339, tsStr)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(ts))
}

func TestAnalysisExportFilename(t *testing.T) {
	a := &Analysis{Timestamp: time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)}

	assert.Equal(t, "technical_spec_20250314_092653.json", a.ExportFilename())
}
