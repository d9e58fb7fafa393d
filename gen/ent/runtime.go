// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/tobi-salau/resumescan/db/ent/schema"
	"github.com/tobi-salau/resumescan/gen/ent/scan"
	"github.com/tobi-salau/resumescan/gen/ent/scanresult"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	scanFields := schema.Scan{}.Fields()
	_ = scanFields
	// scanDescFilename is the schema descriptor for filename field.
	scanDescFilename := scanFields[1].Descriptor()
	// scan.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	scan.FilenameValidator = scanDescFilename.Validators[0].(func(string) error)
	// scanDescStoragePath is the schema descriptor for storage_path field.
	scanDescStoragePath := scanFields[2].Descriptor()
	// scan.StoragePathValidator is a validator for the "storage_path" field. It is called by the builders before save.
	scan.StoragePathValidator = scanDescStoragePath.Validators[0].(func(string) error)
	// scanDescFileSize is the schema descriptor for file_size field.
	scanDescFileSize := scanFields[3].Descriptor()
	// scan.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	scan.FileSizeValidator = scanDescFileSize.Validators[0].(func(int) error)
	// scanDescStatus is the schema descriptor for status field.
	scanDescStatus := scanFields[8].Descriptor()
	// scan.DefaultStatus holds the default value on creation for the status field.
	scan.DefaultStatus = scanDescStatus.Default.(string)
	// scan.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	scan.StatusValidator = scanDescStatus.Validators[0].(func(string) error)
	// scanDescCreatedAt is the schema descriptor for created_at field.
	scanDescCreatedAt := scanFields[10].Descriptor()
	// scan.DefaultCreatedAt holds the default value on creation for the created_at field.
	scan.DefaultCreatedAt = scanDescCreatedAt.Default.(func() time.Time)
	// scanDescUpdatedAt is the schema descriptor for updated_at field.
	scanDescUpdatedAt := scanFields[11].Descriptor()
	// scan.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	scan.DefaultUpdatedAt = scanDescUpdatedAt.Default.(func() time.Time)
	// scan.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	scan.UpdateDefaultUpdatedAt = scanDescUpdatedAt.UpdateDefault.(func() time.Time)
	// scanDescID is the schema descriptor for id field.
	scanDescID := scanFields[0].Descriptor()
	// scan.DefaultID holds the default value on creation for the id field.
	scan.DefaultID = scanDescID.Default.(func() uuid.UUID)
	scanresultFields := schema.ScanResult{}.Fields()
	_ = scanresultFields
	// scanresultDescTitle is the schema descriptor for title field.
	scanresultDescTitle := scanresultFields[2].Descriptor()
	// scanresult.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	scanresult.TitleValidator = scanresultDescTitle.Validators[0].(func(string) error)
	// scanresultDescURL is the schema descriptor for url field.
	scanresultDescURL := scanresultFields[3].Descriptor()
	// scanresult.URLValidator is a validator for the "url" field. It is called by the builders before save.
	scanresult.URLValidator = scanresultDescURL.Validators[0].(func(string) error)
	// scanresultDescPosition is the schema descriptor for position field.
	scanresultDescPosition := scanresultFields[6].Descriptor()
	// scanresult.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	scanresult.PositionValidator = scanresultDescPosition.Validators[0].(func(int) error)
	// scanresultDescCreatedAt is the schema descriptor for created_at field.
	scanresultDescCreatedAt := scanresultFields[7].Descriptor()
	// scanresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	scanresult.DefaultCreatedAt = scanresultDescCreatedAt.Default.(func() time.Time)
	// scanresultDescID is the schema descriptor for id field.
	scanresultDescID := scanresultFields[0].Descriptor()
	// scanresult.DefaultID holds the default value on creation for the id field.
	scanresult.DefaultID = scanresultDescID.Default.(func() uuid.UUID)
}
