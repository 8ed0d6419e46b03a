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

// Package subscription implements GraphQL subscription operations: given a parsed document
// selecting a single field on the schema's Subscription root type, Subscribe produces the source
// event stream for that field and wraps it so that each event is re-executed against the
// operation's selection set, yielding a stream of query results.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Subscription
package subscription

import (
	"context"
	"fmt"

	"github.com/harborgql/harbor/graphql"
	"github.com/harborgql/harbor/graphql/ast"
	"github.com/harborgql/harbor/graphql/executor"
	values "github.com/harborgql/harbor/graphql/internal/value"
	"github.com/harborgql/harbor/iterator"
)

// Error codes surfaced in the "code" extension of errors produced while setting up a subscription.
const (
	// NoSubscriptionRoot is reported when the schema doesn't define a Subscription root type.
	NoSubscriptionRoot = "NO_SUBSCRIPTION_ROOT"

	// MultiRootSubscription is reported when the subscription operation's top-level selection set
	// doesn't resolve to exactly one response key, after accounting for @skip/@include and fragment
	// spreads.
	//
	// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Single-root-field
	MultiRootSubscription = "MULTI_ROOT_SUBSCRIPTION"

	// UnknownSubscriptionField is reported when the operation's single root selection names a field
	// that isn't defined on the Subscription root type.
	UnknownSubscriptionField = "UNKNOWN_SUBSCRIPTION_FIELD"

	// SubscriptionNotIterable is reported when the root field's subscribe/resolve callback resolves
	// to a value that doesn't implement iterator.AsyncIterator.
	SubscriptionNotIterable = "SUBSCRIPTION_NOT_ITERABLE"
)

// subError builds a graphql.Errors with a single entry tagged with the given subscription-setup
// error code.
func subError(code string, message string, nodes ...ast.Node) graphql.Errors {
	var errs graphql.Errors
	if len(nodes) == 0 {
		errs.Emplace(message, graphql.ErrorExtensions{"code": code})
		return errs
	}
	locations := make([]graphql.ErrorLocation, len(nodes))
	for i, node := range nodes {
		locations[i] = graphql.ErrorLocationOfASTNode(node)
	}
	errs.Emplace(message, graphql.ErrorExtensions{"code": code}, locations)
	return errs
}

// wrapErr builds a graphql.Errors from a single error value, as returned by the internal value and
// executor helpers Subscribe calls into.
func wrapErr(err error) graphql.Errors {
	var errs graphql.Errors
	errs.Append(err)
	return errs
}

// Params specifies the parameters to Subscribe.
type Params struct {
	// Schema of the type system the operation executes against.
	Schema graphql.Schema

	// Document that contains the subscription operation (and any fragments it uses).
	Document ast.Document

	// OperationName names the operation in Document to run; required only if Document contains more
	// than one operation.
	OperationName string

	// VariableValues holds raw values for variables declared by the operation, before input
	// coercion.
	VariableValues map[string]interface{}

	// RootValue is passed as the "source" value to the Subscription root field's subscribe callback.
	RootValue interface{}

	// AppContext is application-specific data made available to resolvers while executing each
	// event, the same way executor.ExecuteParams.AppContext is for queries and mutations.
	AppContext interface{}

	// DefaultFieldResolver is used for fields (on both the Subscription root type and the types
	// reachable from an event's result) that don't provide their own resolver. Defaults the same way
	// executor.Prepare does when left nil.
	DefaultFieldResolver graphql.FieldResolver
}

// Subscribe sets up a subscription: it resolves the operation's single root field to a source
// event stream and returns an iterator.AsyncIterator that yields one *executor.ExecutionResult per
// event, computed by re-running the operation's selection set with the event as root value.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Subscribe()
func Subscribe(ctx context.Context, params Params) (iterator.AsyncIterator, graphql.Errors) {
	if params.Schema.Subscription() == nil {
		return nil, subError(NoSubscriptionRoot, "Schema is not configured for subscriptions.")
	}

	operation, errs := executor.PrepareForSubscription(executor.PrepareParams{
		Schema:               params.Schema,
		Document:             params.Document,
		OperationName:        params.OperationName,
		DefaultFieldResolver: params.DefaultFieldResolver,
	})
	if errs.HaveOccurred() {
		return nil, errs
	}

	variableValues, errs := values.CoerceVariableValues(
		params.Schema, operation.VariableDefinitions(), params.VariableValues)
	if errs.HaveOccurred() {
		return nil, errs
	}

	rootType := operation.RootType()

	fieldNodes, errs := collectRootFieldNodes(params.Schema, operation, rootType, variableValues)
	if errs.HaveOccurred() {
		return nil, errs
	}

	fieldName := fieldNodes[0].Name.Value()
	fieldDef := rootType.Fields().Lookup(fieldName)
	if fieldDef == nil {
		return nil, subError(UnknownSubscriptionField,
			fmt.Sprintf("Subscription field %q is not defined on type %q.", fieldName, rootType.Name()),
			fieldNodes[0])
	}

	args, err := values.ArgumentValues(fieldDef, fieldNodes[0], variableValues)
	if err != nil {
		return nil, wrapErr(err)
	}

	info := &rootFieldResolveInfo{
		operation:      operation,
		variableValues: variableValues,
		appContext:     params.AppContext,
		rootValue:      params.RootValue,
		fieldNodes:     fieldNodes,
		field:          fieldDef,
		args:           args,
	}

	sourceValue, err := resolveSourceEventStream(ctx, fieldDef, params.RootValue, info)
	if err != nil {
		return nil, wrapErr(err)
	}

	sourceIterator, ok := sourceValue.(iterator.AsyncIterator)
	if !ok {
		return nil, subError(SubscriptionNotIterable,
			fmt.Sprintf("Subscription field %q did not resolve to an event stream.", fieldName),
			fieldNodes[0])
	}

	mapped := iterator.NewMapIterator(sourceIterator, func(ctx context.Context, event interface{}) (interface{}, error) {
		resultCh := operation.Execute(ctx, executor.ExecuteParams{
			RootValue:      event,
			AppContext:     params.AppContext,
			VariableValues: params.VariableValues,
		})
		result := <-resultCh
		return &result, nil
	})

	return mapped, graphql.NoErrors()
}

// resolveSourceEventStream invokes the root field's Subscriber callback, falling back to its
// Resolver, and finally to reading fieldName off rootValue the same way
// executor.DefaultFieldResolver does for an ordinary map or struct source value.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#ResolveFieldEventStream()
func resolveSourceEventStream(
	ctx context.Context,
	field graphql.Field,
	rootValue interface{},
	info graphql.ResolveInfo) (interface{}, error) {
	if subscriber := field.Subscriber(); subscriber != nil {
		return subscriber.Subscribe(ctx, rootValue, info)
	}
	if resolver := field.Resolver(); resolver != nil {
		return resolver.Resolve(ctx, rootValue, info)
	}
	defaultResolver := &executor.DefaultFieldResolver{UnresolvedAsError: true}
	return defaultResolver.Resolve(ctx, rootValue, info)
}
