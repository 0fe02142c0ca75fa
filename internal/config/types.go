package config

import (
	"fmt"

	"github.com/alexisbeaulieu97/tablekit/internal/table"
)

// RowKeyField is the data entry that carries a row's identity.
const RowKeyField = "key"

// Definition is a table described in YAML: columns, rows and the
// presentation flags the table component accepts.
type Definition struct {
	Header            string           `yaml:"header,omitempty" validate:"max=200"`
	HasCheckboxes     bool             `yaml:"has_checkboxes,omitempty"`
	FullWidth         bool             `yaml:"full_width,omitempty"`
	DefaultDescending *bool            `yaml:"default_descending,omitempty"`
	GenerateKeys      bool             `yaml:"generate_keys,omitempty"`
	MaxColumnWidth    int              `yaml:"max_column_width,omitempty" validate:"omitempty,min=3,max=200"`
	Fields            []FieldSpec      `yaml:"fields" validate:"required,min=1,dive"`
	Data              []map[string]any `yaml:"data,omitempty"`
}

// FieldSpec is the YAML form of a column descriptor.
type FieldSpec struct {
	Key       string `yaml:"key" validate:"required,field_key"`
	Label     string `yaml:"label" validate:"required,max=100"`
	Numerical bool   `yaml:"numerical,omitempty"`
	Sortable  bool   `yaml:"sortable,omitempty"`
}

// TableFields converts the column specs to table descriptors.
func (d *Definition) TableFields() table.Fields {
	fields := make(table.Fields, 0, len(d.Fields))
	for _, f := range d.Fields {
		fields = append(fields, table.Field{
			Key:       table.FieldKey(f.Key),
			Label:     f.Label,
			Numerical: f.Numerical,
			Sortable:  f.Sortable,
		})
	}
	return fields
}

// Rows converts the data entries to table rows. The key entry becomes the
// row key and is not repeated among the values.
func (d *Definition) Rows() []table.Row {
	rows := make([]table.Row, 0, len(d.Data))
	for _, entry := range d.Data {
		values := make(map[string]any, len(entry))
		for k, v := range entry {
			if k == RowKeyField {
				continue
			}
			values[k] = v
		}
		rows = append(rows, table.NewRow(table.RowKey(rowKey(entry)), values))
	}
	return rows
}

// Options builds controller options. Callbacks and logger are left for the
// caller to fill in.
func (d *Definition) Options() table.Options {
	return table.Options{
		Fields:            d.TableFields(),
		Header:            d.Header,
		HasCheckboxes:     d.HasCheckboxes,
		FullWidth:         d.FullWidth,
		DefaultDescending: d.DefaultDescending,
	}
}

func rowKey(entry map[string]any) string {
	raw, ok := entry[RowKeyField]
	if !ok || raw == nil {
		return ""
	}
	if s, ok := raw.(string); ok {
		return s
	}
	return fmt.Sprint(raw)
}
