package jsonschema

import (
	"context"
	"iter"
	"slices"

	"github.com/eelcoh/jsonschema-viewer/pointer"
	"github.com/eelcoh/jsonschema-viewer/walk"
)

// WalkItem represents a single schema yielded by the Walk and WalkSchema
// iterators.
type WalkItem struct {
	// Schema is the schema being visited.
	Schema Schema
	// Location is the chain of contexts leading from the walk root to the
	// schema. Parent is nil for entries hanging directly off the model.
	Location walk.Locations[Schema]
	// Model is the model being walked. Nil for WalkSchema walks.
	Model *Model
}

// Walk returns an iterator that yields each schema in the model, definitions
// in declaration order first and the root schema last. Each schema is visited
// before its children. Users can iterate over the results using a for loop and
// break out at any time.
func Walk(ctx context.Context, model *Model) iter.Seq[WalkItem] {
	return func(yield func(WalkItem) bool) {
		if model == nil {
			return
		}

		onPath := make(map[Schema]struct{})

		for name, schema := range model.Definitions.All() {
			loc := walk.Locations[Schema]{{ParentField: "definitions", ParentKey: pointer.From(name)}}
			if !walkSchema(ctx, schema, loc, model, onPath, yield) {
				return
			}
		}

		walkSchema(ctx, model.Root, walk.Locations[Schema]{}, model, onPath, yield)
	}
}

// WalkSchema returns an iterator that yields the schema and every schema
// nested beneath it, each one before its children. Users can iterate over the
// results using a for loop and break out at any time.
func WalkSchema(ctx context.Context, schema Schema) iter.Seq[WalkItem] {
	return func(yield func(WalkItem) bool) {
		if schema == nil {
			return
		}
		walkSchema(ctx, schema, walk.Locations[Schema]{}, nil, make(map[Schema]struct{}), yield)
	}
}

func walkSchema(ctx context.Context, schema Schema, loc walk.Locations[Schema], model *Model, onPath map[Schema]struct{}, yield func(WalkItem) bool) bool {
	if schema == nil {
		return true
	}

	// Schemas already on the current path are cycles, skip them so the walk
	// terminates.
	if _, ok := onPath[schema]; ok {
		return true
	}
	onPath[schema] = struct{}{}
	defer delete(onPath, schema)

	// Visit self schema first
	if !yield(WalkItem{Schema: schema, Location: loc, Model: model}) {
		return false
	}

	switch t := schema.(type) {
	case *ObjectSchema:
		// Walk through property schemas
		for _, prop := range t.GetProperties() {
			if !walkSchema(ctx, prop.Schema, append(slices.Clip(loc), walk.LocationContext[Schema]{Parent: schema, ParentField: "properties", ParentKey: pointer.From(prop.Name)}), model, onPath, yield) {
				return false
			}
		}
	case *ArraySchema:
		// Visit items schema
		if !walkSchema(ctx, t.GetItems(), append(slices.Clip(loc), walk.LocationContext[Schema]{Parent: schema, ParentField: "items"}), model, onPath, yield) {
			return false
		}
	case *OneOfSchema:
		// Walk through oneOf schemas
		for i, sub := range t.GetSubSchemas() {
			if !walkSchema(ctx, sub, append(slices.Clip(loc), walk.LocationContext[Schema]{Parent: schema, ParentField: "oneOf", ParentIndex: pointer.From(i)}), model, onPath, yield) {
				return false
			}
		}
	case *AnyOfSchema:
		// Walk through anyOf schemas
		for i, sub := range t.GetSubSchemas() {
			if !walkSchema(ctx, sub, append(slices.Clip(loc), walk.LocationContext[Schema]{Parent: schema, ParentField: "anyOf", ParentIndex: pointer.From(i)}), model, onPath, yield) {
				return false
			}
		}
	case *AllOfSchema:
		// Walk through allOf schemas
		for i, sub := range t.GetSubSchemas() {
			if !walkSchema(ctx, sub, append(slices.Clip(loc), walk.LocationContext[Schema]{Parent: schema, ParentField: "allOf", ParentIndex: pointer.From(i)}), model, onPath, yield) {
				return false
			}
		}
	}

	return true
}
