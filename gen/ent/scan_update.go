// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tobi-salau/resumescan/gen/ent/predicate"
	"github.com/tobi-salau/resumescan/gen/ent/scan"
	"github.com/tobi-salau/resumescan/gen/ent/scanresult"
)

// ScanUpdate is the builder for updating Scan entities.
type ScanUpdate struct {
	config
	hooks    []Hook
	mutation *ScanMutation
}

// Where appends a list predicates to the ScanUpdate builder.
func (_u *ScanUpdate) Where(ps ...predicate.Scan) *ScanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ScanUpdate) SetFilename(v string) *ScanUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ScanUpdate) SetNillableFilename(v *string) *ScanUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *ScanUpdate) SetStoragePath(v string) *ScanUpdate {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *ScanUpdate) SetNillableStoragePath(v *string) *ScanUpdate {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *ScanUpdate) SetFileSize(v int) *ScanUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *ScanUpdate) SetNillableFileSize(v *int) *ScanUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *ScanUpdate) AddFileSize(v int) *ScanUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetExtractedName sets the "extracted_name" field.
func (_u *ScanUpdate) SetExtractedName(v string) *ScanUpdate {
	_u.mutation.SetExtractedName(v)
	return _u
}

// SetNillableExtractedName sets the "extracted_name" field if the given value is not nil.
func (_u *ScanUpdate) SetNillableExtractedName(v *string) *ScanUpdate {
	if v != nil {
		_u.SetExtractedName(*v)
	}
	return _u
}

// ClearExtractedName clears the value of the "extracted_name" field.
func (_u *ScanUpdate) ClearExtractedName() *ScanUpdate {
	_u.mutation.ClearExtractedName()
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *ScanUpdate) SetExtractedText(v string) *ScanUpdate {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *ScanUpdate) SetNillableExtractedText(v *string) *ScanUpdate {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (_u *ScanUpdate) ClearExtractedText() *ScanUpdate {
	_u.mutation.ClearExtractedText()
	return _u
}

// SetSearchQuery sets the "search_query" field.
func (_u *ScanUpdate) SetSearchQuery(v string) *ScanUpdate {
	_u.mutation.SetSearchQuery(v)
	return _u
}

// SetNillableSearchQuery sets the "search_query" field if the given value is not nil.
func (_u *ScanUpdate) SetNillableSearchQuery(v *string) *ScanUpdate {
	if v != nil {
		_u.SetSearchQuery(*v)
	}
	return _u
}

// ClearSearchQuery clears the value of the "search_query" field.
func (_u *ScanUpdate) ClearSearchQuery() *ScanUpdate {
	_u.mutation.ClearSearchQuery()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ScanUpdate) SetSummary(v string) *ScanUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ScanUpdate) SetNillableSummary(v *string) *ScanUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ScanUpdate) ClearSummary() *ScanUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScanUpdate) SetStatus(v string) *ScanUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScanUpdate) SetNillableStatus(v *string) *ScanUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ScanUpdate) SetErrorMessage(v string) *ScanUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ScanUpdate) SetNillableErrorMessage(v *string) *ScanUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ScanUpdate) ClearErrorMessage() *ScanUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScanUpdate) SetUpdatedAt(v time.Time) *ScanUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddResultIDs adds the "results" edge to the ScanResult entity by IDs.
func (_u *ScanUpdate) AddResultIDs(ids ...uuid.UUID) *ScanUpdate {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the ScanResult entity.
func (_u *ScanUpdate) AddResults(v ...*ScanResult) *ScanUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// Mutation returns the ScanMutation object of the builder.
func (_u *ScanUpdate) Mutation() *ScanMutation {
	return _u.mutation
}

// ClearResults clears all "results" edges to the ScanResult entity.
func (_u *ScanUpdate) ClearResults() *ScanUpdate {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to ScanResult entities by IDs.
func (_u *ScanUpdate) RemoveResultIDs(ids ...uuid.UUID) *ScanUpdate {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to ScanResult entities.
func (_u *ScanUpdate) RemoveResults(v ...*ScanResult) *ScanUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScanUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScanUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scan.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScanUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := scan.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Scan.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StoragePath(); ok {
		if err := scan.StoragePathValidator(v); err != nil {
			return &ValidationError{Name: "storage_path", err: fmt.Errorf(`ent: validator failed for field "Scan.storage_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := scan.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Scan.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := scan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Scan.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ScanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scan.Table, scan.Columns, sqlgraph.NewFieldSpec(scan.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(scan.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(scan.FieldStoragePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(scan.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(scan.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExtractedName(); ok {
		_spec.SetField(scan.FieldExtractedName, field.TypeString, value)
	}
	if _u.mutation.ExtractedNameCleared() {
		_spec.ClearField(scan.FieldExtractedName, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(scan.FieldExtractedText, field.TypeString, value)
	}
	if _u.mutation.ExtractedTextCleared() {
		_spec.ClearField(scan.FieldExtractedText, field.TypeString)
	}
	if value, ok := _u.mutation.SearchQuery(); ok {
		_spec.SetField(scan.FieldSearchQuery, field.TypeString, value)
	}
	if _u.mutation.SearchQueryCleared() {
		_spec.ClearField(scan.FieldSearchQuery, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(scan.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(scan.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scan.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(scan.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(scan.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scan.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scan.ResultsTable,
			Columns: []string{scan.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanresult.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scan.ResultsTable,
			Columns: []string{scan.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scan.ResultsTable,
			Columns: []string{scan.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScanUpdateOne is the builder for updating a single Scan entity.
type ScanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScanMutation
}

// SetFilename sets the "filename" field.
func (_u *ScanUpdateOne) SetFilename(v string) *ScanUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ScanUpdateOne) SetNillableFilename(v *string) *ScanUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *ScanUpdateOne) SetStoragePath(v string) *ScanUpdateOne {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *ScanUpdateOne) SetNillableStoragePath(v *string) *ScanUpdateOne {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *ScanUpdateOne) SetFileSize(v int) *ScanUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *ScanUpdateOne) SetNillableFileSize(v *int) *ScanUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *ScanUpdateOne) AddFileSize(v int) *ScanUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetExtractedName sets the "extracted_name" field.
func (_u *ScanUpdateOne) SetExtractedName(v string) *ScanUpdateOne {
	_u.mutation.SetExtractedName(v)
	return _u
}

// SetNillableExtractedName sets the "extracted_name" field if the given value is not nil.
func (_u *ScanUpdateOne) SetNillableExtractedName(v *string) *ScanUpdateOne {
	if v != nil {
		_u.SetExtractedName(*v)
	}
	return _u
}

// ClearExtractedName clears the value of the "extracted_name" field.
func (_u *ScanUpdateOne) ClearExtractedName() *ScanUpdateOne {
	_u.mutation.ClearExtractedName()
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *ScanUpdateOne) SetExtractedText(v string) *ScanUpdateOne {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *ScanUpdateOne) SetNillableExtractedText(v *string) *ScanUpdateOne {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (_u *ScanUpdateOne) ClearExtractedText() *ScanUpdateOne {
	_u.mutation.ClearExtractedText()
	return _u
}

// SetSearchQuery sets the "search_query" field.
func (_u *ScanUpdateOne) SetSearchQuery(v string) *ScanUpdateOne {
	_u.mutation.SetSearchQuery(v)
	return _u
}

// SetNillableSearchQuery sets the "search_query" field if the given value is not nil.
func (_u *ScanUpdateOne) SetNillableSearchQuery(v *string) *ScanUpdateOne {
	if v != nil {
		_u.SetSearchQuery(*v)
	}
	return _u
}

// ClearSearchQuery clears the value of the "search_query" field.
func (_u *ScanUpdateOne) ClearSearchQuery() *ScanUpdateOne {
	_u.mutation.ClearSearchQuery()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ScanUpdateOne) SetSummary(v string) *ScanUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ScanUpdateOne) SetNillableSummary(v *string) *ScanUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ScanUpdateOne) ClearSummary() *ScanUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScanUpdateOne) SetStatus(v string) *ScanUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScanUpdateOne) SetNillableStatus(v *string) *ScanUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ScanUpdateOne) SetErrorMessage(v string) *ScanUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ScanUpdateOne) SetNillableErrorMessage(v *string) *ScanUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ScanUpdateOne) ClearErrorMessage() *ScanUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScanUpdateOne) SetUpdatedAt(v time.Time) *ScanUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddResultIDs adds the "results" edge to the ScanResult entity by IDs.
func (_u *ScanUpdateOne) AddResultIDs(ids ...uuid.UUID) *ScanUpdateOne {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the ScanResult entity.
func (_u *ScanUpdateOne) AddResults(v ...*ScanResult) *ScanUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// Mutation returns the ScanMutation object of the builder.
func (_u *ScanUpdateOne) Mutation() *ScanMutation {
	return _u.mutation
}

// ClearResults clears all "results" edges to the ScanResult entity.
func (_u *ScanUpdateOne) ClearResults() *ScanUpdateOne {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to ScanResult entities by IDs.
func (_u *ScanUpdateOne) RemoveResultIDs(ids ...uuid.UUID) *ScanUpdateOne {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to ScanResult entities.
func (_u *ScanUpdateOne) RemoveResults(v ...*ScanResult) *ScanUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// Where appends a list predicates to the ScanUpdate builder.
func (_u *ScanUpdateOne) Where(ps ...predicate.Scan) *ScanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScanUpdateOne) Select(field string, fields ...string) *ScanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Scan entity.
func (_u *ScanUpdateOne) Save(ctx context.Context) (*Scan, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScanUpdateOne) SaveX(ctx context.Context) *Scan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScanUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scan.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScanUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := scan.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Scan.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StoragePath(); ok {
		if err := scan.StoragePathValidator(v); err != nil {
			return &ValidationError{Name: "storage_path", err: fmt.Errorf(`ent: validator failed for field "Scan.storage_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := scan.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Scan.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := scan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Scan.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ScanUpdateOne) sqlSave(ctx context.Context) (_node *Scan, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scan.Table, scan.Columns, sqlgraph.NewFieldSpec(scan.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Scan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scan.FieldID)
		for _, f := range fields {
			if !scan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scan.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(scan.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(scan.FieldStoragePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(scan.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(scan.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExtractedName(); ok {
		_spec.SetField(scan.FieldExtractedName, field.TypeString, value)
	}
	if _u.mutation.ExtractedNameCleared() {
		_spec.ClearField(scan.FieldExtractedName, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(scan.FieldExtractedText, field.TypeString, value)
	}
	if _u.mutation.ExtractedTextCleared() {
		_spec.ClearField(scan.FieldExtractedText, field.TypeString)
	}
	if value, ok := _u.mutation.SearchQuery(); ok {
		_spec.SetField(scan.FieldSearchQuery, field.TypeString, value)
	}
	if _u.mutation.SearchQueryCleared() {
		_spec.ClearField(scan.FieldSearchQuery, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(scan.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(scan.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scan.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(scan.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(scan.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scan.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scan.ResultsTable,
			Columns: []string{scan.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanresult.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scan.ResultsTable,
			Columns: []string{scan.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scan.ResultsTable,
			Columns: []string{scan.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Scan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
