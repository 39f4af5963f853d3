// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Card is the predicate function for card builders.
type Card func(*sql.Selector)

// CardField is the predicate function for cardfield builders.
type CardField func(*sql.Selector)

// ScanJob is the predicate function for scanjob builders.
type ScanJob func(*sql.Selector)
