// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Scan is the predicate function for scan builders.
type Scan func(*sql.Selector)

// ScanResult is the predicate function for scanresult builders.
type ScanResult func(*sql.Selector)
