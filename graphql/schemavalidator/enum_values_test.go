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

package schemavalidator_test

import (
	"github.com/harborgql/harbor/graphql"
	"github.com/harborgql/harbor/graphql/schemavalidator"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("checkEnumValues", func() {
	schemaWithEnum := func(enumConfig *graphql.EnumConfig) graphql.Schema {
		enum := graphql.MustNewEnum(enumConfig)
		return graphql.MustNewSchema(&graphql.SchemaConfig{
			Query: graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "Query",
				Fields: graphql.Fields{
					"color": {Type: graphql.T(enum)},
				},
			}),
		})
	}

	It("accepts ordinary value names", func() {
		errs := schemavalidator.Validate(schemaWithEnum(&graphql.EnumConfig{
			Name: "Color",
			Values: graphql.EnumValueDefinitionMap{
				"RED":  {Value: 0},
				"BLUE": {Value: 1},
			},
		}))
		Expect(errs.HaveOccurred()).Should(BeFalse())
	})

	It("reports ReservedEnumValueName for \"true\", \"false\" and \"null\"", func() {
		errs := schemavalidator.Validate(schemaWithEnum(&graphql.EnumConfig{
			Name: "Trinary",
			Values: graphql.EnumValueDefinitionMap{
				"true":  {Value: 0},
				"false": {Value: 1},
				"null":  {Value: 2},
			},
		}))
		Expect(codes(errs)).Should(ConsistOf(
			schemavalidator.ReservedEnumValueName,
			schemavalidator.ReservedEnumValueName,
			schemavalidator.ReservedEnumValueName,
		))
	})
})
