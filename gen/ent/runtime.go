// Code generated by ent, DO NOT EDIT.

package ent

import (
	"cardvault/db/ent/schema"
	"cardvault/gen/ent/card"
	"cardvault/gen/ent/cardfield"
	"cardvault/gen/ent/scanjob"
	"time"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	cardFields := schema.Card{}.Fields()
	_ = cardFields
	// cardDescDisplayName is the schema descriptor for display_name field.
	cardDescDisplayName := cardFields[1].Descriptor()
	// card.DefaultDisplayName holds the default value on creation for the display_name field.
	card.DefaultDisplayName = cardDescDisplayName.Default.(string)
	// cardDescImageExt is the schema descriptor for image_ext field.
	cardDescImageExt := cardFields[3].Descriptor()
	// card.ImageExtValidator is a validator for the "image_ext" field. It is called by the builders before save.
	card.ImageExtValidator = cardDescImageExt.Validators[0].(func(string) error)
	// cardDescCreatedAt is the schema descriptor for created_at field.
	cardDescCreatedAt := cardFields[4].Descriptor()
	// card.DefaultCreatedAt holds the default value on creation for the created_at field.
	card.DefaultCreatedAt = cardDescCreatedAt.Default.(func() time.Time)
	// cardDescUpdatedAt is the schema descriptor for updated_at field.
	cardDescUpdatedAt := cardFields[5].Descriptor()
	// card.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	card.DefaultUpdatedAt = cardDescUpdatedAt.Default.(func() time.Time)
	// card.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	card.UpdateDefaultUpdatedAt = cardDescUpdatedAt.UpdateDefault.(func() time.Time)
	// cardDescID is the schema descriptor for id field.
	cardDescID := cardFields[0].Descriptor()
	// card.DefaultID holds the default value on creation for the id field.
	card.DefaultID = cardDescID.Default.(func() uuid.UUID)
	cardfieldFields := schema.CardField{}.Fields()
	_ = cardfieldFields
	// cardfieldDescCategory is the schema descriptor for category field.
	cardfieldDescCategory := cardfieldFields[2].Descriptor()
	// cardfield.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	cardfield.CategoryValidator = func() func(string) error {
		validators := cardfieldDescCategory.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(category string) error {
			for _, fn := range fns {
				if err := fn(category); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// cardfieldDescRawText is the schema descriptor for raw_text field.
	cardfieldDescRawText := cardfieldFields[3].Descriptor()
	// cardfield.DefaultRawText holds the default value on creation for the raw_text field.
	cardfield.DefaultRawText = cardfieldDescRawText.Default.(string)
	// cardfieldDescValue is the schema descriptor for value field.
	cardfieldDescValue := cardfieldFields[4].Descriptor()
	// cardfield.DefaultValue holds the default value on creation for the value field.
	cardfield.DefaultValue = cardfieldDescValue.Default.(string)
	// cardfieldDescSpanStart is the schema descriptor for span_start field.
	cardfieldDescSpanStart := cardfieldFields[5].Descriptor()
	// cardfield.DefaultSpanStart holds the default value on creation for the span_start field.
	cardfield.DefaultSpanStart = cardfieldDescSpanStart.Default.(int)
	// cardfieldDescSpanEnd is the schema descriptor for span_end field.
	cardfieldDescSpanEnd := cardfieldFields[6].Descriptor()
	// cardfield.DefaultSpanEnd holds the default value on creation for the span_end field.
	cardfield.DefaultSpanEnd = cardfieldDescSpanEnd.Default.(int)
	// cardfieldDescCreatedAt is the schema descriptor for created_at field.
	cardfieldDescCreatedAt := cardfieldFields[7].Descriptor()
	// cardfield.DefaultCreatedAt holds the default value on creation for the created_at field.
	cardfield.DefaultCreatedAt = cardfieldDescCreatedAt.Default.(func() time.Time)
	// cardfieldDescID is the schema descriptor for id field.
	cardfieldDescID := cardfieldFields[0].Descriptor()
	// cardfield.DefaultID holds the default value on creation for the id field.
	cardfield.DefaultID = cardfieldDescID.Default.(func() uuid.UUID)
	scanjobFields := schema.ScanJob{}.Fields()
	_ = scanjobFields
	// scanjobDescStatus is the schema descriptor for status field.
	scanjobDescStatus := scanjobFields[2].Descriptor()
	// scanjob.DefaultStatus holds the default value on creation for the status field.
	scanjob.DefaultStatus = scanjobDescStatus.Default.(string)
	// scanjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	scanjob.StatusValidator = scanjobDescStatus.Validators[0].(func(string) error)
	// scanjobDescStartedAt is the schema descriptor for started_at field.
	scanjobDescStartedAt := scanjobFields[3].Descriptor()
	// scanjob.DefaultStartedAt holds the default value on creation for the started_at field.
	scanjob.DefaultStartedAt = scanjobDescStartedAt.Default.(func() time.Time)
	// scanjobDescNeedsReview is the schema descriptor for needs_review field.
	scanjobDescNeedsReview := scanjobFields[6].Descriptor()
	// scanjob.DefaultNeedsReview holds the default value on creation for the needs_review field.
	scanjob.DefaultNeedsReview = scanjobDescNeedsReview.Default.(bool)
	// scanjobDescFieldCount is the schema descriptor for field_count field.
	scanjobDescFieldCount := scanjobFields[8].Descriptor()
	// scanjob.DefaultFieldCount holds the default value on creation for the field_count field.
	scanjob.DefaultFieldCount = scanjobDescFieldCount.Default.(int)
	// scanjobDescID is the schema descriptor for id field.
	scanjobDescID := scanjobFields[0].Descriptor()
	// scanjob.DefaultID holds the default value on creation for the id field.
	scanjob.DefaultID = scanjobDescID.Default.(func() uuid.UUID)
}
