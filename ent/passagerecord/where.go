// Code generated by ent, DO NOT EDIT.

package passagerecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/keremugurlu/readingen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldLTE(FieldID, id))
}

// PassageID applies equality check predicate on the "passage_id" field. It's identical to PassageIDEQ.
func PassageID(v uuid.UUID) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldEQ(FieldPassageID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldEQ(FieldTopic, v))
}

// Domain applies equality check predicate on the "domain" field. It's identical to DomainEQ.
func Domain(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldEQ(FieldDomain, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldEQ(FieldTitle, v))
}

// Raw applies equality check predicate on the "raw" field. It's identical to RawEQ.
func Raw(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldEQ(FieldRaw, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldEQ(FieldLevel, v))
}

// Length applies equality check predicate on the "length" field. It's identical to LengthEQ.
func Length(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldEQ(FieldLength, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldEQ(FieldScore, v))
}

// Valid applies equality check predicate on the "valid" field. It's identical to ValidEQ.
func Valid(v bool) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldEQ(FieldValid, v))
}

// Retries applies equality check predicate on the "retries" field. It's identical to RetriesEQ.
func Retries(v int) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldEQ(FieldRetries, v))
}

// NeedsRegeneration applies equality check predicate on the "needs_regeneration" field. It's identical to NeedsRegenerationEQ.
func NeedsRegeneration(v bool) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldEQ(FieldNeedsRegeneration, v))
}

// PassageIDEQ applies the EQ predicate on the "passage_id" field.
func PassageIDEQ(v uuid.UUID) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldEQ(FieldPassageID, v))
}

// PassageIDNEQ applies the NEQ predicate on the "passage_id" field.
func PassageIDNEQ(v uuid.UUID) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldNEQ(FieldPassageID, v))
}

// PassageIDIn applies the In predicate on the "passage_id" field.
func PassageIDIn(vs ...uuid.UUID) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldIn(FieldPassageID, vs...))
}

// PassageIDNotIn applies the NotIn predicate on the "passage_id" field.
func PassageIDNotIn(vs ...uuid.UUID) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldNotIn(FieldPassageID, vs...))
}

// PassageIDGT applies the GT predicate on the "passage_id" field.
func PassageIDGT(v uuid.UUID) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldGT(FieldPassageID, v))
}

// PassageIDGTE applies the GTE predicate on the "passage_id" field.
func PassageIDGTE(v uuid.UUID) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldGTE(FieldPassageID, v))
}

// PassageIDLT applies the LT predicate on the "passage_id" field.
func PassageIDLT(v uuid.UUID) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldLT(FieldPassageID, v))
}

// PassageIDLTE applies the LTE predicate on the "passage_id" field.
func PassageIDLTE(v uuid.UUID) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldLTE(FieldPassageID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldContainsFold(FieldTopic, v))
}

// DomainEQ applies the EQ predicate on the "domain" field.
func DomainEQ(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldEQ(FieldDomain, v))
}

// DomainNEQ applies the NEQ predicate on the "domain" field.
func DomainNEQ(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldNEQ(FieldDomain, v))
}

// DomainIn applies the In predicate on the "domain" field.
func DomainIn(vs ...string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldIn(FieldDomain, vs...))
}

// DomainNotIn applies the NotIn predicate on the "domain" field.
func DomainNotIn(vs ...string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldNotIn(FieldDomain, vs...))
}

// DomainGT applies the GT predicate on the "domain" field.
func DomainGT(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldGT(FieldDomain, v))
}

// DomainGTE applies the GTE predicate on the "domain" field.
func DomainGTE(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldGTE(FieldDomain, v))
}

// DomainLT applies the LT predicate on the "domain" field.
func DomainLT(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldLT(FieldDomain, v))
}

// DomainLTE applies the LTE predicate on the "domain" field.
func DomainLTE(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldLTE(FieldDomain, v))
}

// DomainContains applies the Contains predicate on the "domain" field.
func DomainContains(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldContains(FieldDomain, v))
}

// DomainHasPrefix applies the HasPrefix predicate on the "domain" field.
func DomainHasPrefix(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldHasPrefix(FieldDomain, v))
}

// DomainHasSuffix applies the HasSuffix predicate on the "domain" field.
func DomainHasSuffix(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldHasSuffix(FieldDomain, v))
}

// DomainEqualFold applies the EqualFold predicate on the "domain" field.
func DomainEqualFold(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldEqualFold(FieldDomain, v))
}

// DomainContainsFold applies the ContainsFold predicate on the "domain" field.
func DomainContainsFold(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldContainsFold(FieldDomain, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldContainsFold(FieldTitle, v))
}

// RawEQ applies the EQ predicate on the "raw" field.
func RawEQ(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldEQ(FieldRaw, v))
}

// RawNEQ applies the NEQ predicate on the "raw" field.
func RawNEQ(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldNEQ(FieldRaw, v))
}

// RawIn applies the In predicate on the "raw" field.
func RawIn(vs ...string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldIn(FieldRaw, vs...))
}

// RawNotIn applies the NotIn predicate on the "raw" field.
func RawNotIn(vs ...string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldNotIn(FieldRaw, vs...))
}

// RawGT applies the GT predicate on the "raw" field.
func RawGT(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldGT(FieldRaw, v))
}

// RawGTE applies the GTE predicate on the "raw" field.
func RawGTE(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldGTE(FieldRaw, v))
}

// RawLT applies the LT predicate on the "raw" field.
func RawLT(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldLT(FieldRaw, v))
}

// RawLTE applies the LTE predicate on the "raw" field.
func RawLTE(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldLTE(FieldRaw, v))
}

// RawContains applies the Contains predicate on the "raw" field.
func RawContains(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldContains(FieldRaw, v))
}

// RawHasPrefix applies the HasPrefix predicate on the "raw" field.
func RawHasPrefix(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldHasPrefix(FieldRaw, v))
}

// RawHasSuffix applies the HasSuffix predicate on the "raw" field.
func RawHasSuffix(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldHasSuffix(FieldRaw, v))
}

// RawEqualFold applies the EqualFold predicate on the "raw" field.
func RawEqualFold(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldEqualFold(FieldRaw, v))
}

// RawContainsFold applies the ContainsFold predicate on the "raw" field.
func RawContainsFold(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldContainsFold(FieldRaw, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldLTE(FieldLevel, v))
}

// LevelContains applies the Contains predicate on the "level" field.
func LevelContains(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldContains(FieldLevel, v))
}

// LevelHasPrefix applies the HasPrefix predicate on the "level" field.
func LevelHasPrefix(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldHasPrefix(FieldLevel, v))
}

// LevelHasSuffix applies the HasSuffix predicate on the "level" field.
func LevelHasSuffix(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldHasSuffix(FieldLevel, v))
}

// LevelEqualFold applies the EqualFold predicate on the "level" field.
func LevelEqualFold(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldEqualFold(FieldLevel, v))
}

// LevelContainsFold applies the ContainsFold predicate on the "level" field.
func LevelContainsFold(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldContainsFold(FieldLevel, v))
}

// LengthEQ applies the EQ predicate on the "length" field.
func LengthEQ(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldEQ(FieldLength, v))
}

// LengthNEQ applies the NEQ predicate on the "length" field.
func LengthNEQ(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldNEQ(FieldLength, v))
}

// LengthIn applies the In predicate on the "length" field.
func LengthIn(vs ...string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldIn(FieldLength, vs...))
}

// LengthNotIn applies the NotIn predicate on the "length" field.
func LengthNotIn(vs ...string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldNotIn(FieldLength, vs...))
}

// LengthGT applies the GT predicate on the "length" field.
func LengthGT(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldGT(FieldLength, v))
}

// LengthGTE applies the GTE predicate on the "length" field.
func LengthGTE(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldGTE(FieldLength, v))
}

// LengthLT applies the LT predicate on the "length" field.
func LengthLT(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldLT(FieldLength, v))
}

// LengthLTE applies the LTE predicate on the "length" field.
func LengthLTE(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldLTE(FieldLength, v))
}

// LengthContains applies the Contains predicate on the "length" field.
func LengthContains(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldContains(FieldLength, v))
}

// LengthHasPrefix applies the HasPrefix predicate on the "length" field.
func LengthHasPrefix(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldHasPrefix(FieldLength, v))
}

// LengthHasSuffix applies the HasSuffix predicate on the "length" field.
func LengthHasSuffix(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldHasSuffix(FieldLength, v))
}

// LengthEqualFold applies the EqualFold predicate on the "length" field.
func LengthEqualFold(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldEqualFold(FieldLength, v))
}

// LengthContainsFold applies the ContainsFold predicate on the "length" field.
func LengthContainsFold(v string) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldContainsFold(FieldLength, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldLTE(FieldScore, v))
}

// ValidEQ applies the EQ predicate on the "valid" field.
func ValidEQ(v bool) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldEQ(FieldValid, v))
}

// ValidNEQ applies the NEQ predicate on the "valid" field.
func ValidNEQ(v bool) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldNEQ(FieldValid, v))
}

// RetriesEQ applies the EQ predicate on the "retries" field.
func RetriesEQ(v int) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldEQ(FieldRetries, v))
}

// RetriesNEQ applies the NEQ predicate on the "retries" field.
func RetriesNEQ(v int) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldNEQ(FieldRetries, v))
}

// RetriesIn applies the In predicate on the "retries" field.
func RetriesIn(vs ...int) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldIn(FieldRetries, vs...))
}

// RetriesNotIn applies the NotIn predicate on the "retries" field.
func RetriesNotIn(vs ...int) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldNotIn(FieldRetries, vs...))
}

// RetriesGT applies the GT predicate on the "retries" field.
func RetriesGT(v int) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldGT(FieldRetries, v))
}

// RetriesGTE applies the GTE predicate on the "retries" field.
func RetriesGTE(v int) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldGTE(FieldRetries, v))
}

// RetriesLT applies the LT predicate on the "retries" field.
func RetriesLT(v int) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldLT(FieldRetries, v))
}

// RetriesLTE applies the LTE predicate on the "retries" field.
func RetriesLTE(v int) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldLTE(FieldRetries, v))
}

// NeedsRegenerationEQ applies the EQ predicate on the "needs_regeneration" field.
func NeedsRegenerationEQ(v bool) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldEQ(FieldNeedsRegeneration, v))
}

// NeedsRegenerationNEQ applies the NEQ predicate on the "needs_regeneration" field.
func NeedsRegenerationNEQ(v bool) predicate.PassageRecord {
	return predicate.PassageRecord(sql.FieldNEQ(FieldNeedsRegeneration, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PassageRecord) predicate.PassageRecord {
	return predicate.PassageRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PassageRecord) predicate.PassageRecord {
	return predicate.PassageRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PassageRecord) predicate.PassageRecord {
	return predicate.PassageRecord(sql.NotPredicates(p))
}
