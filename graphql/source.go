/**
 * Copyright (c) 2018, The Artemis Authors.
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

package graphql

import "github.com/harborgql/harbor/graphql/token"

// Source is the lexer/parser's unit of input: a GraphQL document's text together with the name and
// location offset used to report error positions against it. It's an alias for token.Source so that
// callers outside the lexer/parser/token packages can refer to it without importing token directly.
type Source = token.Source

// NewSource constructs a Source from raw GraphQL text. See token.NewSource for the available
// SourceOptions (name, location offset).
func NewSource(body string, opts ...token.SourceOption) *Source {
	return token.NewSource(body, opts...)
}
