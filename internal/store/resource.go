// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides database access for all AccelPress entities.
// Content entities share one descriptor-driven Resource implementation;
// admin accounts and the singleton settings have dedicated stores.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind classifies how an entity field is stored and transformed.
type Kind int

const (
	// KindText is a plain text column, nullable when the field is optional.
	KindText Kind = iota
	// KindList is a jsonb array column; always an array on the wire.
	KindList
	// KindObject is a jsonb object column; always an object on the wire.
	KindObject
	// KindRef is a bigint column surfaced as a string identifier on the wire.
	KindRef
)

// Field maps one wire field to one table column.
type Field struct {
	Column   string // snake_case column name
	Name     string // camelCase wire name
	Kind     Kind
	Required bool   // enforced on create and update
	Default  string // substituted when a text field is absent or blank
}

// Descriptor configures a Resource for one content entity.
type Descriptor struct {
	Name    string // URL path segment, e.g. "case-studies"
	Table   string
	Label   string // singular label for not-found messages, e.g. "Case study"
	OrderBy string // SQL order clause; "id DESC" when empty
	Fields  []Field
	// Prepare, when set, adjusts a wire record before it is written.
	Prepare func(rec Record)
}

// Record is a wire-shaped entity record keyed by camelCase field names.
type Record = map[string]any

// ValidationError reports required fields missing from a write payload.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// Validate checks that every required field carries a non-blank value.
func (d Descriptor) Validate(rec Record) error {
	var missing []string
	for _, f := range d.Fields {
		if !f.Required {
			continue
		}
		v, ok := rec[f.Name]
		if !ok || v == nil || strings.TrimSpace(toText(v)) == "" {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// ToRow converts a wire record into a column map ready for the database.
// Absent optional scalars become NULL; list and object fields are encoded
// as jsonb text; ref fields are coerced to int64.
func (d Descriptor) ToRow(rec Record) map[string]any {
	row := make(map[string]any, len(d.Fields))
	for _, f := range d.Fields {
		v := rec[f.Name]
		switch f.Kind {
		case KindList:
			row[f.Column] = encodeList(v)
		case KindObject:
			row[f.Column] = encodeObject(v)
		case KindRef:
			if n, ok := toRef(v); ok {
				row[f.Column] = n
			} else {
				row[f.Column] = nil
			}
		default:
			if v == nil {
				if f.Default != "" {
					row[f.Column] = f.Default
				} else {
					row[f.Column] = nil
				}
				continue
			}
			s := toText(v)
			if s == "" && f.Default != "" {
				s = f.Default
			}
			row[f.Column] = s
		}
	}
	return row
}

// FromRow converts a column map back into a wire record. It is total over
// anything ToRow could have written: malformed jsonb degrades to empty
// collections and numeric identifiers come back as strings.
func (d Descriptor) FromRow(row map[string]any) Record {
	rec := make(Record, len(d.Fields)+2)
	if id, ok := row["id"].(int64); ok {
		rec["id"] = strconv.FormatInt(id, 10)
	}
	for _, f := range d.Fields {
		v := row[f.Column]
		switch f.Kind {
		case KindList:
			rec[f.Name] = decodeList(rawJSON(v))
		case KindObject:
			rec[f.Name] = decodeObject(rawJSON(v))
		case KindRef:
			switch n := v.(type) {
			case int64:
				rec[f.Name] = strconv.FormatInt(n, 10)
			default:
				rec[f.Name] = nil
			}
		default:
			switch s := v.(type) {
			case string:
				rec[f.Name] = s
			default:
				rec[f.Name] = nil
			}
		}
	}
	if t, ok := row["created_at"].(time.Time); ok {
		rec["createdAt"] = t.UTC().Format(time.RFC3339)
	}
	return rec
}

// rawJSON normalizes a scanned jsonb value to raw bytes.
func rawJSON(v any) []byte {
	switch b := v.(type) {
	case []byte:
		return b
	case string:
		return []byte(b)
	default:
		return nil
	}
}

// Resource exposes the uniform list/get/create/update/delete operations
// for one content entity.
type Resource struct {
	db   *sql.DB
	desc Descriptor
}

// NewResource creates a Resource backed by the given database connection.
func NewResource(db *sql.DB, desc Descriptor) *Resource {
	return &Resource{db: db, desc: desc}
}

// Descriptor returns the entity configuration this resource serves.
func (r *Resource) Descriptor() Descriptor {
	return r.desc
}

// selectClause returns the full column list for SELECT statements.
func (r *Resource) selectClause() string {
	cols := make([]string, 0, len(r.desc.Fields)+2)
	cols = append(cols, "id")
	for _, f := range r.desc.Fields {
		cols = append(cols, f.Column)
	}
	cols = append(cols, "created_at")
	return strings.Join(cols, ", ")
}

// scanRow scans the current row into a column map matching selectClause.
func (r *Resource) scanRow(scan func(dest ...any) error) (map[string]any, error) {
	var id int64
	var createdAt time.Time

	dest := make([]any, 0, len(r.desc.Fields)+2)
	dest = append(dest, &id)

	texts := make([]sql.NullString, len(r.desc.Fields))
	blobs := make([][]byte, len(r.desc.Fields))
	refs := make([]sql.NullInt64, len(r.desc.Fields))
	for i, f := range r.desc.Fields {
		switch f.Kind {
		case KindList, KindObject:
			dest = append(dest, &blobs[i])
		case KindRef:
			dest = append(dest, &refs[i])
		default:
			dest = append(dest, &texts[i])
		}
	}
	dest = append(dest, &createdAt)

	if err := scan(dest...); err != nil {
		return nil, err
	}

	row := make(map[string]any, len(r.desc.Fields)+2)
	row["id"] = id
	row["created_at"] = createdAt
	for i, f := range r.desc.Fields {
		switch f.Kind {
		case KindList, KindObject:
			row[f.Column] = blobs[i]
		case KindRef:
			if refs[i].Valid {
				row[f.Column] = refs[i].Int64
			} else {
				row[f.Column] = nil
			}
		default:
			if texts[i].Valid {
				row[f.Column] = texts[i].String
			} else {
				row[f.Column] = nil
			}
		}
	}
	return row, nil
}

// List returns every record, newest-first unless the descriptor overrides
// the order. The full collection is always returned.
func (r *Resource) List(ctx context.Context) ([]Record, error) {
	order := r.desc.OrderBy
	if order == "" {
		order = "id DESC"
	}
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s", r.selectClause(), r.desc.Table, order)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.desc.Table, err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		row, err := r.scanRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.desc.Table, err)
		}
		records = append(records, r.desc.FromRow(row))
	}
	return records, rows.Err()
}

// Get retrieves one record by id. Returns nil if not found.
func (r *Resource) Get(ctx context.Context, id int64) (Record, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", r.selectClause(), r.desc.Table)

	row, err := r.scanRow(r.db.QueryRowContext(ctx, query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", r.desc.Table, err)
	}
	return r.desc.FromRow(row), nil
}

// Create validates and inserts a record, then re-reads the stored row so
// store-assigned defaults are reflected in the result.
func (r *Resource) Create(ctx context.Context, rec Record) (Record, error) {
	if err := r.desc.Validate(rec); err != nil {
		return nil, err
	}
	if r.desc.Prepare != nil {
		r.desc.Prepare(rec)
	}

	row := r.desc.ToRow(rec)
	cols := make([]string, 0, len(r.desc.Fields))
	marks := make([]string, 0, len(r.desc.Fields))
	args := make([]any, 0, len(r.desc.Fields))
	for i, f := range r.desc.Fields {
		cols = append(cols, f.Column)
		marks = append(marks, fmt.Sprintf("$%d", i+1))
		args = append(args, row[f.Column])
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		r.desc.Table, strings.Join(cols, ", "), strings.Join(marks, ", "),
	)

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return nil, fmt.Errorf("create %s: %w", r.desc.Table, err)
	}
	return r.Get(ctx, id)
}

// Update fully replaces every mutable column of an existing record and
// returns the re-read row. Returns nil if the id matches no record.
func (r *Resource) Update(ctx context.Context, id int64, rec Record) (Record, error) {
	if err := r.desc.Validate(rec); err != nil {
		return nil, err
	}
	if r.desc.Prepare != nil {
		r.desc.Prepare(rec)
	}

	var exists bool
	check := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)", r.desc.Table)
	if err := r.db.QueryRowContext(ctx, check, id).Scan(&exists); err != nil {
		return nil, fmt.Errorf("update check %s: %w", r.desc.Table, err)
	}
	if !exists {
		return nil, nil
	}

	row := r.desc.ToRow(rec)
	sets := make([]string, 0, len(r.desc.Fields))
	args := make([]any, 0, len(r.desc.Fields)+1)
	for i, f := range r.desc.Fields {
		sets = append(sets, fmt.Sprintf("%s = $%d", f.Column, i+1))
		args = append(args, row[f.Column])
	}
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d",
		r.desc.Table, strings.Join(sets, ", "), len(args),
	)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("update %s: %w", r.desc.Table, err)
	}
	return r.Get(ctx, id)
}

// Delete removes a record by id. Reports whether a row matched.
func (r *Resource) Delete(ctx context.Context, id int64) (bool, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", r.desc.Table)
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", r.desc.Table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", r.desc.Table, err)
	}
	return n > 0, nil
}
