// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tobi-salau/resumescan/gen/ent/predicate"
	"github.com/tobi-salau/resumescan/gen/ent/scan"
	"github.com/tobi-salau/resumescan/gen/ent/scanresult"
)

// ScanResultUpdate is the builder for updating ScanResult entities.
type ScanResultUpdate struct {
	config
	hooks    []Hook
	mutation *ScanResultMutation
}

// Where appends a list predicates to the ScanResultUpdate builder.
func (_u *ScanResultUpdate) Where(ps ...predicate.ScanResult) *ScanResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScanID sets the "scan_id" field.
func (_u *ScanResultUpdate) SetScanID(v uuid.UUID) *ScanResultUpdate {
	_u.mutation.SetScanID(v)
	return _u
}

// SetNillableScanID sets the "scan_id" field if the given value is not nil.
func (_u *ScanResultUpdate) SetNillableScanID(v *uuid.UUID) *ScanResultUpdate {
	if v != nil {
		_u.SetScanID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ScanResultUpdate) SetTitle(v string) *ScanResultUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ScanResultUpdate) SetNillableTitle(v *string) *ScanResultUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *ScanResultUpdate) SetURL(v string) *ScanResultUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *ScanResultUpdate) SetNillableURL(v *string) *ScanResultUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ScanResultUpdate) SetContent(v string) *ScanResultUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ScanResultUpdate) SetNillableContent(v *string) *ScanResultUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *ScanResultUpdate) ClearContent() *ScanResultUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetScore sets the "score" field.
func (_u *ScanResultUpdate) SetScore(v float32) *ScanResultUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ScanResultUpdate) SetNillableScore(v *float32) *ScanResultUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ScanResultUpdate) AddScore(v float32) *ScanResultUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *ScanResultUpdate) ClearScore() *ScanResultUpdate {
	_u.mutation.ClearScore()
	return _u
}

// SetPosition sets the "position" field.
func (_u *ScanResultUpdate) SetPosition(v int) *ScanResultUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *ScanResultUpdate) SetNillablePosition(v *int) *ScanResultUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *ScanResultUpdate) AddPosition(v int) *ScanResultUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetScan sets the "scan" edge to the Scan entity.
func (_u *ScanResultUpdate) SetScan(v *Scan) *ScanResultUpdate {
	return _u.SetScanID(v.ID)
}

// Mutation returns the ScanResultMutation object of the builder.
func (_u *ScanResultUpdate) Mutation() *ScanResultMutation {
	return _u.mutation
}

// ClearScan clears the "scan" edge to the Scan entity.
func (_u *ScanResultUpdate) ClearScan() *ScanResultUpdate {
	_u.mutation.ClearScan()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScanResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScanResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScanResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScanResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScanResultUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := scanresult.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ScanResult.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.URL(); ok {
		if err := scanresult.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "ScanResult.url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := scanresult.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "ScanResult.position": %w`, err)}
		}
	}
	if _u.mutation.ScanCleared() && len(_u.mutation.ScanIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScanResult.scan"`)
	}
	return nil
}

func (_u *ScanResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scanresult.Table, scanresult.Columns, sqlgraph.NewFieldSpec(scanresult.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(scanresult.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(scanresult.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(scanresult.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(scanresult.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(scanresult.FieldScore, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(scanresult.FieldScore, field.TypeFloat32, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(scanresult.FieldScore, field.TypeFloat32)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(scanresult.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(scanresult.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.ScanCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scanresult.ScanTable,
			Columns: []string{scanresult.ScanColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scan.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScanIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scanresult.ScanTable,
			Columns: []string{scanresult.ScanColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scan.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scanresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScanResultUpdateOne is the builder for updating a single ScanResult entity.
type ScanResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScanResultMutation
}

// SetScanID sets the "scan_id" field.
func (_u *ScanResultUpdateOne) SetScanID(v uuid.UUID) *ScanResultUpdateOne {
	_u.mutation.SetScanID(v)
	return _u
}

// SetNillableScanID sets the "scan_id" field if the given value is not nil.
func (_u *ScanResultUpdateOne) SetNillableScanID(v *uuid.UUID) *ScanResultUpdateOne {
	if v != nil {
		_u.SetScanID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ScanResultUpdateOne) SetTitle(v string) *ScanResultUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ScanResultUpdateOne) SetNillableTitle(v *string) *ScanResultUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *ScanResultUpdateOne) SetURL(v string) *ScanResultUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *ScanResultUpdateOne) SetNillableURL(v *string) *ScanResultUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ScanResultUpdateOne) SetContent(v string) *ScanResultUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ScanResultUpdateOne) SetNillableContent(v *string) *ScanResultUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *ScanResultUpdateOne) ClearContent() *ScanResultUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetScore sets the "score" field.
func (_u *ScanResultUpdateOne) SetScore(v float32) *ScanResultUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ScanResultUpdateOne) SetNillableScore(v *float32) *ScanResultUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ScanResultUpdateOne) AddScore(v float32) *ScanResultUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *ScanResultUpdateOne) ClearScore() *ScanResultUpdateOne {
	_u.mutation.ClearScore()
	return _u
}

// SetPosition sets the "position" field.
func (_u *ScanResultUpdateOne) SetPosition(v int) *ScanResultUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *ScanResultUpdateOne) SetNillablePosition(v *int) *ScanResultUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *ScanResultUpdateOne) AddPosition(v int) *ScanResultUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetScan sets the "scan" edge to the Scan entity.
func (_u *ScanResultUpdateOne) SetScan(v *Scan) *ScanResultUpdateOne {
	return _u.SetScanID(v.ID)
}

// Mutation returns the ScanResultMutation object of the builder.
func (_u *ScanResultUpdateOne) Mutation() *ScanResultMutation {
	return _u.mutation
}

// ClearScan clears the "scan" edge to the Scan entity.
func (_u *ScanResultUpdateOne) ClearScan() *ScanResultUpdateOne {
	_u.mutation.ClearScan()
	return _u
}

// Where appends a list predicates to the ScanResultUpdate builder.
func (_u *ScanResultUpdateOne) Where(ps ...predicate.ScanResult) *ScanResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScanResultUpdateOne) Select(field string, fields ...string) *ScanResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScanResult entity.
func (_u *ScanResultUpdateOne) Save(ctx context.Context) (*ScanResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScanResultUpdateOne) SaveX(ctx context.Context) *ScanResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScanResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScanResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScanResultUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := scanresult.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ScanResult.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.URL(); ok {
		if err := scanresult.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "ScanResult.url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := scanresult.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "ScanResult.position": %w`, err)}
		}
	}
	if _u.mutation.ScanCleared() && len(_u.mutation.ScanIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScanResult.scan"`)
	}
	return nil
}

func (_u *ScanResultUpdateOne) sqlSave(ctx context.Context) (_node *ScanResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scanresult.Table, scanresult.Columns, sqlgraph.NewFieldSpec(scanresult.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScanResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scanresult.FieldID)
		for _, f := range fields {
			if !scanresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scanresult.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(scanresult.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(scanresult.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(scanresult.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(scanresult.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(scanresult.FieldScore, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(scanresult.FieldScore, field.TypeFloat32, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(scanresult.FieldScore, field.TypeFloat32)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(scanresult.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(scanresult.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.ScanCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scanresult.ScanTable,
			Columns: []string{scanresult.ScanColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scan.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScanIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scanresult.ScanTable,
			Columns: []string{scanresult.ScanColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scan.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ScanResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scanresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
