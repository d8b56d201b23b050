package domain

import (
	"fmt"
	"strings"
)

// Schema enumerates the persisted columns of one entity. Storage adapters
// build their statements from it and the serializers expose exactly these
// fields, so both sides read from a single list.
type Schema struct {
	Table   string
	Columns []string
}

// ColumnList renders the columns comma-separated, optionally qualified by alias.
func (s Schema) ColumnList(alias string) string {
	if alias == "" {
		return strings.Join(s.Columns, ", ")
	}
	cols := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		cols[i] = alias + "." + c
	}
	return strings.Join(cols, ", ")
}

// Placeholders renders $1..$n for an INSERT of every column.
func (s Schema) Placeholders() string {
	ph := make([]string, len(s.Columns))
	for i := range s.Columns {
		ph[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(ph, ",")
}

// UpdateSet renders "col=$n" pairs for every column except id, numbering
// from 1. The id placeholder is the returned next position.
func (s Schema) UpdateSet(skip ...string) (string, int) {
	skipped := map[string]bool{"id": true}
	for _, c := range skip {
		skipped[c] = true
	}
	var sets []string
	pos := 1
	for _, c := range s.Columns {
		if skipped[c] {
			continue
		}
		sets = append(sets, fmt.Sprintf("%s=$%d", c, pos))
		pos++
	}
	return strings.Join(sets, ", "), pos
}

// Fields returns the serialized field names.
func (s Schema) Fields() []string {
	out := make([]string, len(s.Columns))
	copy(out, s.Columns)
	return out
}

var (
	ActiveModelSchema = Schema{
		Table:   "active_model",
		Columns: []string{"id", "created_at", "updated_at", "name", "model_meta_id"},
	}
	ModelMetaSchema = Schema{
		Table:   "model_meta",
		Columns: []string{"id", "created_at", "name", "version", "description"},
	}
	LxUserSchema = Schema{
		Table:   "lx_user",
		Columns: []string{"id", "created_at", "updated_at", "name", "description"},
	}
	CenterSchema = Schema{
		Table:   "center",
		Columns: []string{"id", "name", "name_de", "name_en"},
	}
	PatientSchema = Schema{
		Table: "patient",
		Columns: []string{
			"id", "first_name", "last_name", "dob", "gender",
			"email", "phone", "center_id", "is_real_person",
		},
	}
	FrameSchema = Schema{
		Table:   "frame",
		Columns: []string{"id", "video_id", "frame_number", "image", "suffix", "extracted"},
	}
	LegacyFrameSchema = Schema{
		Table:   "legacy_frame",
		Columns: []string{"id", "video_id", "frame_number", "image", "suffix"},
	}
	PeriodicTaskSchema = Schema{
		Table:   PeriodicTaskTable,
		Columns: []string{"id", "name", "task", "enabled"},
	}
)
