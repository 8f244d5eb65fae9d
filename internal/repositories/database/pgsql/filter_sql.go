package pgsql

import (
	"fmt"
	"strings"

	"github.com/SscSPs/news_management_app/internal/core/domain"
	"github.com/SscSPs/news_management_app/internal/core/workflow"
)

// tableSpec tells the filter compiler how entity fields map to SQL.
type tableSpec struct {
	name    string
	alias   string
	columns map[domain.Field]string
	// lists renders membership tests of list valued fields for a bound placeholder.
	lists map[domain.Field]func(placeholder string) string
}

func workflowColumns(alias string, extra map[domain.Field]string) map[domain.Field]string {
	columns := map[domain.Field]string{
		domain.FieldStatus:    alias + ".status",
		domain.FieldCreatedBy: alias + ".created_by",
		domain.FieldIsDeleted: alias + ".is_deleted",
		domain.FieldIsActive:  alias + ".is_active",
		domain.FieldCreatedAt: alias + ".created_at",
	}
	for field, column := range extra {
		columns[field] = column
	}
	return columns
}

var articleTable = tableSpec{
	name:  "articles",
	alias: "a",
	columns: workflowColumns("a", map[domain.Field]string{
		domain.FieldTitle:      "a.title",
		domain.FieldName:       "a.title",
		domain.FieldContent:    "a.content",
		domain.FieldCategoryID: "a.category_id",
	}),
	lists: map[domain.Field]func(string) string{
		domain.FieldTagIDs: func(ph string) string {
			return "EXISTS (SELECT 1 FROM article_tags x WHERE x.article_id = a.article_id AND x.tag_id = " + ph + ")"
		},
	},
}

var categoryTable = tableSpec{
	name:  "categories",
	alias: "c",
	columns: workflowColumns("c", map[domain.Field]string{
		domain.FieldName:    "c.name",
		domain.FieldTitle:   "c.name",
		domain.FieldContent: "c.description",
	}),
}

var tagTable = tableSpec{
	name:  "tags",
	alias: "t",
	columns: workflowColumns("t", map[domain.Field]string{
		domain.FieldName:    "t.name",
		domain.FieldTitle:   "t.name",
		domain.FieldContent: "t.note",
	}),
}

// filterCompiler renders a workflow.Predicate as a parameterised WHERE clause.
type filterCompiler struct {
	table tableSpec
	args  []any
}

// compileFilter returns the SQL condition for p and its bound arguments.
func compileFilter(table tableSpec, p workflow.Predicate) (string, []any, error) {
	c := &filterCompiler{table: table}
	sql, err := c.compile(p)
	if err != nil {
		return "", nil, err
	}
	return sql, c.args, nil
}

func (c *filterCompiler) bind(v any) string {
	c.args = append(c.args, sqlValue(v))
	return fmt.Sprintf("$%d", len(c.args))
}

func (c *filterCompiler) column(field domain.Field) (string, error) {
	column, ok := c.table.columns[field]
	if !ok {
		return "", fmt.Errorf("field %q is not filterable on %s", field, c.table.name)
	}
	return column, nil
}

func (c *filterCompiler) compile(p workflow.Predicate) (string, error) {
	switch p.Op {
	case workflow.OpAnd, workflow.OpOr:
		if len(p.Children) == 0 {
			if p.Op == workflow.OpAnd {
				return "TRUE", nil
			}
			return "FALSE", nil
		}
		parts := make([]string, 0, len(p.Children))
		for _, child := range p.Children {
			part, err := c.compile(child)
			if err != nil {
				return "", err
			}
			parts = append(parts, part)
		}
		if len(parts) == 1 {
			return parts[0], nil
		}
		joiner := " AND "
		if p.Op == workflow.OpOr {
			joiner = " OR "
		}
		return "(" + strings.Join(parts, joiner) + ")", nil

	case workflow.OpEq:
		column, err := c.column(p.Field)
		if err != nil {
			return "", err
		}
		return column + " = " + c.bind(p.Value), nil

	case workflow.OpIn:
		column, err := c.column(p.Field)
		if err != nil {
			return "", err
		}
		if len(p.Values) == 0 {
			return "FALSE", nil
		}
		placeholders := make([]string, len(p.Values))
		for i, v := range p.Values {
			placeholders[i] = c.bind(v)
		}
		return column + " IN (" + strings.Join(placeholders, ", ") + ")", nil

	case workflow.OpContains:
		column, err := c.column(p.Field)
		if err != nil {
			return "", err
		}
		needle, _ := p.Value.(string)
		return column + " ILIKE " + c.bind("%"+escapeLike(needle)+"%"), nil

	case workflow.OpGte, workflow.OpLte:
		column, err := c.column(p.Field)
		if err != nil {
			return "", err
		}
		op := " >= "
		if p.Op == workflow.OpLte {
			op = " <= "
		}
		return column + op + c.bind(p.Value), nil

	case workflow.OpHas:
		render, ok := c.table.lists[p.Field]
		if !ok {
			return "", fmt.Errorf("field %q is not a list on %s", p.Field, c.table.name)
		}
		return render(c.bind(p.Value)), nil
	}
	return "", fmt.Errorf("unsupported filter operator %d", p.Op)
}

// sqlValue converts domain scalars to driver friendly values.
func sqlValue(v any) any {
	if s, ok := v.(domain.Status); ok {
		return int16(s)
	}
	return v
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
