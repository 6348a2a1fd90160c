// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/keremugurlu/readingen/ent/passagerecord"
)

// PassageRecord is the model entity for the PassageRecord schema.
type PassageRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Stable identifier independent of the row ID
	PassageID uuid.UUID `json:"passage_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// Domain holds the value of the "domain" field.
	Domain string `json:"domain,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Full generated text
	Raw string `json:"raw,omitempty"`
	// Level holds the value of the "level" field.
	Level string `json:"level,omitempty"`
	// Length holds the value of the "length" field.
	Length string `json:"length,omitempty"`
	// Structural validation score, 0-100
	Score int `json:"score,omitempty"`
	// Valid holds the value of the "valid" field.
	Valid bool `json:"valid,omitempty"`
	// Extra generation attempts spent on this passage
	Retries int `json:"retries,omitempty"`
	// Delivered without ever passing validation
	NeedsRegeneration bool `json:"needs_regeneration,omitempty"`
	selectValues      sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PassageRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case passagerecord.FieldValid, passagerecord.FieldNeedsRegeneration:
			values[i] = new(sql.NullBool)
		case passagerecord.FieldID, passagerecord.FieldScore, passagerecord.FieldRetries:
			values[i] = new(sql.NullInt64)
		case passagerecord.FieldTopic, passagerecord.FieldDomain, passagerecord.FieldTitle, passagerecord.FieldRaw, passagerecord.FieldLevel, passagerecord.FieldLength:
			values[i] = new(sql.NullString)
		case passagerecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case passagerecord.FieldPassageID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PassageRecord fields.
func (_m *PassageRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case passagerecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case passagerecord.FieldPassageID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field passage_id", values[i])
			} else if value != nil {
				_m.PassageID = *value
			}
		case passagerecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case passagerecord.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case passagerecord.FieldDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain", values[i])
			} else if value.Valid {
				_m.Domain = value.String
			}
		case passagerecord.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case passagerecord.FieldRaw:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw", values[i])
			} else if value.Valid {
				_m.Raw = value.String
			}
		case passagerecord.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = value.String
			}
		case passagerecord.FieldLength:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field length", values[i])
			} else if value.Valid {
				_m.Length = value.String
			}
		case passagerecord.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case passagerecord.FieldValid:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field valid", values[i])
			} else if value.Valid {
				_m.Valid = value.Bool
			}
		case passagerecord.FieldRetries:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retries", values[i])
			} else if value.Valid {
				_m.Retries = int(value.Int64)
			}
		case passagerecord.FieldNeedsRegeneration:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_regeneration", values[i])
			} else if value.Valid {
				_m.NeedsRegeneration = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PassageRecord.
// This includes values selected through modifiers, order, etc.
func (_m *PassageRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PassageRecord.
// Note that you need to call PassageRecord.Unwrap() before calling this method if this PassageRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PassageRecord) Update() *PassageRecordUpdateOne {
	return NewPassageRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PassageRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PassageRecord) Unwrap() *PassageRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PassageRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PassageRecord) String() string {
	var builder strings.Builder
	builder.WriteString("PassageRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("passage_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PassageID))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("domain=")
	builder.WriteString(_m.Domain)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("raw=")
	builder.WriteString(_m.Raw)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(_m.Level)
	builder.WriteString(", ")
	builder.WriteString("length=")
	builder.WriteString(_m.Length)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("valid=")
	builder.WriteString(fmt.Sprintf("%v", _m.Valid))
	builder.WriteString(", ")
	builder.WriteString("retries=")
	builder.WriteString(fmt.Sprintf("%v", _m.Retries))
	builder.WriteString(", ")
	builder.WriteString("needs_regeneration=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsRegeneration))
	builder.WriteByte(')')
	return builder.String()
}

// PassageRecords is a parsable slice of PassageRecord.
type PassageRecords []*PassageRecord
