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
	values "github.com/harborgql/harbor/graphql/internal/value"
)

// collectRootFieldNodes walks the subscription operation's top-level selection set -- honoring
// @skip/@include and resolving fragment spreads/inline fragments against the Subscription root
// type -- and requires it to name exactly one response key, per the single-root-field constraint
// on subscription operations. It is a narrower, self-contained cousin of
// executor.buildChildExecutionNodesForSelectionSet: it only ever needs to run once, over the root
// selection set, so it doesn't need that function's ExecutionNode/ExecutionContext machinery.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Single-root-field
func collectRootFieldNodes(
	schema graphql.Schema,
	operation *executor.PreparedOperation,
	rootType graphql.Object,
	variableValues graphql.VariableValues) ([]*ast.Field, graphql.Errors) {

	visitedFragmentNames := map[string]bool{}
	fieldsByResponseKey := map[string][]*ast.Field{}
	var responseKeyOrder []string

	type pendingSelectionSet struct {
		selectionSet ast.SelectionSet
		index        int
	}
	stack := []pendingSelectionSet{{selectionSet: operation.Definition().SelectionSet}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.index >= len(top.selectionSet) {
			stack = stack[:len(stack)-1]
			continue
		}
		selection := top.selectionSet[top.index]
		top.index++

		shouldInclude, err := shouldIncludeSelection(selection, variableValues)
		if err != nil {
			return nil, wrapErr(err)
		}
		if !shouldInclude {
			continue
		}

		switch selection := selection.(type) {
		case *ast.Field:
			responseKey := selection.ResponseKey()
			if _, seen := fieldsByResponseKey[responseKey]; !seen {
				responseKeyOrder = append(responseKeyOrder, responseKey)
			}
			fieldsByResponseKey[responseKey] = append(fieldsByResponseKey[responseKey], selection)

		case *ast.InlineFragment:
			if selection.HasTypeCondition() && !doesTypeConditionSatisfy(schema, selection.TypeCondition, rootType) {
				continue
			}
			stack = append(stack, pendingSelectionSet{selectionSet: selection.SelectionSet})

		case *ast.FragmentSpread:
			name := selection.Name.Value()
			if visitedFragmentNames[name] {
				continue
			}
			visitedFragmentNames[name] = true

			fragmentDef := operation.FragmentDef(name)
			if fragmentDef == nil {
				continue
			}
			if !doesTypeConditionSatisfy(schema, fragmentDef.TypeCondition, rootType) {
				continue
			}
			stack = append(stack, pendingSelectionSet{selectionSet: fragmentDef.SelectionSet})
		}
	}

	if len(responseKeyOrder) != 1 {
		return nil, subError(MultiRootSubscription,
			"Subscription operations must select exactly one top-level field.")
	}

	return fieldsByResponseKey[responseKeyOrder[0]], graphql.NoErrors()
}

// shouldIncludeSelection evaluates @skip/@include the same way executor.shouldIncludeNode does.
func shouldIncludeSelection(node ast.Selection, variableValues graphql.VariableValues) (bool, error) {
	skip, err := values.DirectiveValues(graphql.SkipDirective(), node.GetDirectives(), variableValues)
	if err != nil {
		return false, err
	}
	if shouldSkip := skip.Get("if"); shouldSkip != nil && shouldSkip.(bool) {
		return false, nil
	}

	include, err := values.DirectiveValues(graphql.IncludeDirective(), node.GetDirectives(), variableValues)
	if err != nil {
		return false, err
	}
	if shouldInclude := include.Get("if"); shouldInclude != nil && !shouldInclude.(bool) {
		return false, nil
	}

	return true, nil
}

// doesTypeConditionSatisfy mirrors executor.doesTypeConditionSatisfy, used to decide whether a
// fragment's type condition matches the Subscription root type.
func doesTypeConditionSatisfy(schema graphql.Schema, typeCondition ast.NamedType, t graphql.Object) bool {
	conditionalType := schema.TypeFromAST(typeCondition)
	if conditionalType == t {
		return true
	}
	if abstractType, ok := conditionalType.(graphql.AbstractType); ok {
		return schema.PossibleTypes(abstractType).Contains(t)
	}
	return false
}
