package tableio

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/danthegoodman1/janitor/table"
	"github.com/xitongsys/parquet-go/common"
)

type (
	SchemaAccumulator struct {
		schema ParquetSchema
	}

	ParquetSchema struct {
		TagStructs SchemaTag        `json:"-,omitempty"`
		Fields     []*ParquetSchema `json:",omitempty"`
	}

	ParquetJSONSchema struct {
		Tag    string               `json:",omitempty"`
		Fields []*ParquetJSONSchema `json:",omitempty"`
	}

	SchemaTag struct {
		Name           string         `json:"name,omitempty"`
		Type           string         `json:"type,omitempty"`
		ConvertedType  string         `json:"convertedtype,omitempty"`
		RepetitionType RepetitionType `json:"repetitiontype,omitempty"`
		Encoding       string         `json:"encoding,omitempty"`
	}

	RepetitionType string
)

var (
	Optional RepetitionType = "OPTIONAL"
	Required RepetitionType = "REQUIRED"
)

func NewSchemaAccumulator() SchemaAccumulator {
	return SchemaAccumulator{
		schema: ParquetSchema{
			TagStructs: SchemaTag{
				Name:           "parquet_go_root",
				RepetitionType: Required,
			},
		},
	}
}

// SchemaForTable accumulates one optional field per column, in column order.
func SchemaForTable(t *table.Table) (*SchemaAccumulator, error) {
	sa := NewSchemaAccumulator()
	for _, col := range t.Columns() {
		if err := sa.AddColumn(col.Name, col.Kind()); err != nil {
			return nil, err
		}
	}
	return &sa, nil
}

// AddColumn adds a field for the column unless one of that name exists.
// Time, mixed and all-null columns are stored as UTF8 strings.
// parquet-go keys fields by common.StringToVariableName, so two names that
// map to the same variable name (name and Name, a b and a32b) are rejected.
func (sa *SchemaAccumulator) AddColumn(name string, kind table.Kind) error {
	if name == "" || strings.ContainsAny(name, ",=") || strings.TrimSpace(name) != name {
		return fmt.Errorf("%w: %q", ErrInvalidParquetName, name)
	}
	if sa.fieldExists(name) {
		return nil
	}
	if other, ok := sa.variableNameClash(name); ok {
		return fmt.Errorf("%w: %q collides with %q", ErrInvalidParquetName, name, other)
	}

	field := &ParquetSchema{
		TagStructs: SchemaTag{
			Name:           name,
			RepetitionType: Optional,
		},
	}
	switch kind {
	case table.KindFloat:
		field.TagStructs.Type = "DOUBLE"
	case table.KindInt:
		field.TagStructs.Type = "INT64"
	case table.KindBool:
		field.TagStructs.Type = "BOOLEAN"
	default:
		field.TagStructs.Type = "BYTE_ARRAY"
		field.TagStructs.ConvertedType = "UTF8"
		field.TagStructs.Encoding = "PLAIN"
	}
	sa.schema.Fields = append(sa.schema.Fields, field)
	return nil
}

func (sa *SchemaAccumulator) fieldExists(fieldName string) (exists bool) {
	for _, field := range sa.schema.Fields {
		if field.TagStructs.Name == fieldName {
			return true
		}
	}
	return
}

func (sa *SchemaAccumulator) variableNameClash(name string) (string, bool) {
	varName := common.StringToVariableName(name)
	for _, field := range sa.schema.Fields {
		if common.StringToVariableName(field.TagStructs.Name) == varName {
			return field.TagStructs.Name, true
		}
	}
	return "", false
}

func (sa *SchemaAccumulator) GetColumnNames() []string {
	var cols []string
	for _, field := range sa.schema.Fields {
		cols = append(cols, field.TagStructs.Name)
	}
	return cols
}

// GetType is the parquet physical type, followed by the converted type when
// the field has one (BYTE_ARRAY/UTF8).
func (ps *ParquetSchema) GetType() string {
	if ps.TagStructs.ConvertedType != "" {
		return ps.TagStructs.Type + "/" + ps.TagStructs.ConvertedType
	}
	return ps.TagStructs.Type
}

// GetColumnTypes returns the types of columns in the same order as GetColumnNames.
func (sa *SchemaAccumulator) GetColumnTypes() []string {
	var cols []string
	for _, field := range sa.schema.Fields {
		cols = append(cols, field.GetType())
	}
	return cols
}

// ToParquetJSONSchema recursively converts
func (ps *ParquetSchema) ToParquetJSONSchema() *ParquetJSONSchema {
	var tagArr []string
	if ps.TagStructs.Name != "" {
		tagArr = append(tagArr, "name="+ps.TagStructs.Name)
	}
	if ps.TagStructs.Type != "" {
		tagArr = append(tagArr, "type="+ps.TagStructs.Type)
	}
	if ps.TagStructs.ConvertedType != "" {
		tagArr = append(tagArr, "convertedtype="+ps.TagStructs.ConvertedType)
	}
	if ps.TagStructs.Encoding != "" {
		tagArr = append(tagArr, "encoding="+ps.TagStructs.Encoding)
	}
	if string(ps.TagStructs.RepetitionType) != "" {
		tagArr = append(tagArr, "repetitiontype="+string(ps.TagStructs.RepetitionType))
	}
	var fields []*ParquetJSONSchema
	for _, field := range ps.Fields {
		fields = append(fields, field.ToParquetJSONSchema())
	}
	return &ParquetJSONSchema{
		Tag:    strings.Join(tagArr, ", "),
		Fields: fields,
	}
}

// GetSchemaString returns the JSON formatted schema string
func (sa *SchemaAccumulator) GetSchemaString() (string, error) {
	b, err := json.Marshal(sa.schema.ToParquetJSONSchema())
	if err != nil {
		return "", fmt.Errorf("error in json.Marshal: %w", err)
	}
	return string(b), nil
}
