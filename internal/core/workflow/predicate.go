package workflow

import (
	"strings"
	"time"

	"github.com/SscSPs/news_management_app/internal/core/domain"
)

// Op is the operator of a predicate node.
type Op int

const (
	OpAnd Op = iota
	OpOr
	OpEq
	OpIn
	OpContains
	OpGte
	OpLte
	OpHas
)

// Predicate is a composable filter over workflow entities. It is a plain
// value so that repositories can compile it to SQL and tests can evaluate it
// in memory with Match.
type Predicate struct {
	Op       Op
	Field    domain.Field
	Value    any
	Values   []any
	Children []Predicate
}

// And matches when every child matches. And() with no children matches everything.
func And(children ...Predicate) Predicate {
	return Predicate{Op: OpAnd, Children: children}
}

// Or matches when any child matches. Or() with no children matches nothing.
func Or(children ...Predicate) Predicate {
	return Predicate{Op: OpOr, Children: children}
}

func Eq(field domain.Field, value any) Predicate {
	return Predicate{Op: OpEq, Field: field, Value: value}
}

func In(field domain.Field, values ...any) Predicate {
	return Predicate{Op: OpIn, Field: field, Values: values}
}

// StatusIn is In over FieldStatus.
func StatusIn(statuses ...domain.Status) Predicate {
	values := make([]any, len(statuses))
	for i, s := range statuses {
		values[i] = s
	}
	return In(domain.FieldStatus, values...)
}

// Contains is a case-insensitive substring match over any of fields.
func Contains(text string, fields ...domain.Field) Predicate {
	children := make([]Predicate, len(fields))
	for i, f := range fields {
		children[i] = Predicate{Op: OpContains, Field: f, Value: text}
	}
	return Or(children...)
}

func Gte(field domain.Field, t time.Time) Predicate {
	return Predicate{Op: OpGte, Field: field, Value: t}
}

func Lte(field domain.Field, t time.Time) Predicate {
	return Predicate{Op: OpLte, Field: field, Value: t}
}

// Has matches when the list valued field contains value.
func Has(field domain.Field, value int) Predicate {
	return Predicate{Op: OpHas, Field: field, Value: value}
}

// Match evaluates the predicate against a single entity.
func (p Predicate) Match(e domain.WorkflowEntity) bool {
	switch p.Op {
	case OpAnd:
		for _, c := range p.Children {
			if !c.Match(e) {
				return false
			}
		}
		return true
	case OpOr:
		for _, c := range p.Children {
			if c.Match(e) {
				return true
			}
		}
		return false
	case OpEq:
		return e.FieldValue(p.Field) == p.Value
	case OpIn:
		v := e.FieldValue(p.Field)
		for _, candidate := range p.Values {
			if v == candidate {
				return true
			}
		}
		return false
	case OpContains:
		s, _ := e.FieldValue(p.Field).(string)
		needle, _ := p.Value.(string)
		return strings.Contains(strings.ToLower(s), strings.ToLower(needle))
	case OpGte, OpLte:
		t, ok := e.FieldValue(p.Field).(time.Time)
		bound, _ := p.Value.(time.Time)
		if !ok {
			return false
		}
		if p.Op == OpGte {
			return !t.Before(bound)
		}
		return !t.After(bound)
	case OpHas:
		ids, _ := e.FieldValue(p.Field).([]int)
		want, _ := p.Value.(int)
		for _, id := range ids {
			if id == want {
				return true
			}
		}
		return false
	}
	return false
}

// Filter keeps the entities matching p.
func Filter[T any, PT interface {
	*T
	domain.WorkflowEntity
}](items []T, p Predicate) []T {
	out := make([]T, 0, len(items))
	for i := range items {
		if p.Match(PT(&items[i])) {
			out = append(out, items[i])
		}
	}
	return out
}
