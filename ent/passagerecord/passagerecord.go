// Code generated by ent, DO NOT EDIT.

package passagerecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the passagerecord type in the database.
	Label = "passage_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPassageID holds the string denoting the passage_id field in the database.
	FieldPassageID = "passage_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldDomain holds the string denoting the domain field in the database.
	FieldDomain = "domain"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldRaw holds the string denoting the raw field in the database.
	FieldRaw = "raw"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldLength holds the string denoting the length field in the database.
	FieldLength = "length"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldValid holds the string denoting the valid field in the database.
	FieldValid = "valid"
	// FieldRetries holds the string denoting the retries field in the database.
	FieldRetries = "retries"
	// FieldNeedsRegeneration holds the string denoting the needs_regeneration field in the database.
	FieldNeedsRegeneration = "needs_regeneration"
	// Table holds the table name of the passagerecord in the database.
	Table = "passage_records"
)

// Columns holds all SQL columns for passagerecord fields.
var Columns = []string{
	FieldID,
	FieldPassageID,
	FieldCreatedAt,
	FieldTopic,
	FieldDomain,
	FieldTitle,
	FieldRaw,
	FieldLevel,
	FieldLength,
	FieldScore,
	FieldValid,
	FieldRetries,
	FieldNeedsRegeneration,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultPassageID holds the default value on creation for the "passage_id" field.
	DefaultPassageID func() uuid.UUID
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultDomain holds the default value on creation for the "domain" field.
	DefaultDomain string
	// DefaultTitle holds the default value on creation for the "title" field.
	DefaultTitle string
	// DefaultLevel holds the default value on creation for the "level" field.
	DefaultLevel string
	// DefaultLength holds the default value on creation for the "length" field.
	DefaultLength string
	// DefaultScore holds the default value on creation for the "score" field.
	DefaultScore int
	// DefaultValid holds the default value on creation for the "valid" field.
	DefaultValid bool
	// DefaultRetries holds the default value on creation for the "retries" field.
	DefaultRetries int
	// DefaultNeedsRegeneration holds the default value on creation for the "needs_regeneration" field.
	DefaultNeedsRegeneration bool
)

// OrderOption defines the ordering options for the PassageRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPassageID orders the results by the passage_id field.
func ByPassageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassageID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByDomain orders the results by the domain field.
func ByDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomain, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByRaw orders the results by the raw field.
func ByRaw(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRaw, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByLength orders the results by the length field.
func ByLength(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLength, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByValid orders the results by the valid field.
func ByValid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValid, opts...).ToFunc()
}

// ByRetries orders the results by the retries field.
func ByRetries(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetries, opts...).ToFunc()
}

// ByNeedsRegeneration orders the results by the needs_regeneration field.
func ByNeedsRegeneration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsRegeneration, opts...).ToFunc()
}
