// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ClientGroup is the predicate function for clientgroup builders.
type ClientGroup func(*sql.Selector)

// ClientGroupMember is the predicate function for clientgroupmember builders.
type ClientGroupMember func(*sql.Selector)

// RMAItem is the predicate function for rmaitem builders.
type RMAItem func(*sql.Selector)

// SerialWarranty is the predicate function for serialwarranty builders.
type SerialWarranty func(*sql.Selector)

// Setting is the predicate function for setting builders.
type Setting func(*sql.Selector)

// SpecialRMAItem is the predicate function for specialrmaitem builders.
type SpecialRMAItem func(*sql.Selector)
