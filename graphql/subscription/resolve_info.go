/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package subscription

import (
	"github.com/harborgql/harbor/graphql"
	"github.com/harborgql/harbor/graphql/ast"
	"github.com/harborgql/harbor/graphql/executor"
)

// rootFieldResolveInfo implements graphql.ResolveInfo for the single invocation of the
// Subscription root field's subscribe (or resolve) callback that resolveSourceEventStream makes.
// Unlike executor.ResolveInfo, it isn't backed by an ExecutionNode tree -- there's exactly one
// field being resolved here, at the root, with no parent selection -- so it's simpler to write a
// small self-contained implementation than to adapt the executor's.
type rootFieldResolveInfo struct {
	operation      *executor.PreparedOperation
	variableValues graphql.VariableValues
	appContext     interface{}
	rootValue      interface{}
	fieldNodes     []*ast.Field
	field          graphql.Field
	args           graphql.ArgumentValues

	dataLoaders graphql.DataLoaderManagerBase
}

var _ graphql.ResolveInfo = (*rootFieldResolveInfo)(nil)

// Schema implements graphql.ResolveInfo.
func (info *rootFieldResolveInfo) Schema() graphql.Schema {
	return info.operation.Schema()
}

// Document implements graphql.ResolveInfo.
func (info *rootFieldResolveInfo) Document() ast.Document {
	return info.operation.Document()
}

// Operation implements graphql.ResolveInfo.
func (info *rootFieldResolveInfo) Operation() *ast.OperationDefinition {
	return info.operation.Definition()
}

// DataLoaderManager implements graphql.ResolveInfo.
func (info *rootFieldResolveInfo) DataLoaderManager() graphql.DataLoaderManager {
	return &info.dataLoaders
}

// RootValue implements graphql.ResolveInfo.
func (info *rootFieldResolveInfo) RootValue() interface{} {
	return info.rootValue
}

// AppContext implements graphql.ResolveInfo.
func (info *rootFieldResolveInfo) AppContext() interface{} {
	return info.appContext
}

// VariableValues implements graphql.ResolveInfo.
func (info *rootFieldResolveInfo) VariableValues() graphql.VariableValues {
	return info.variableValues
}

// ParentFieldSelection implements graphql.ResolveInfo. The Subscription root field has no parent
// selection.
func (info *rootFieldResolveInfo) ParentFieldSelection() graphql.FieldSelectionInfo {
	return nil
}

// Object implements graphql.ResolveInfo.
func (info *rootFieldResolveInfo) Object() graphql.Object {
	return info.operation.RootType()
}

// FieldDefinitions implements graphql.ResolveInfo.
func (info *rootFieldResolveInfo) FieldDefinitions() []*ast.Field {
	return info.fieldNodes
}

// Field implements graphql.ResolveInfo.
func (info *rootFieldResolveInfo) Field() graphql.Field {
	return info.field
}

// Path implements graphql.ResolveInfo.
func (info *rootFieldResolveInfo) Path() graphql.ResponsePath {
	var path graphql.ResponsePath
	path.AppendFieldName(info.fieldNodes[0].ResponseKey())
	return path
}

// Args implements graphql.ResolveInfo.
func (info *rootFieldResolveInfo) Args() graphql.ArgumentValues {
	return info.args
}
