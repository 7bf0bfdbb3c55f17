// Package graphql holds schema-building helpers for the catalog query API.
package graphql

import (
	"github.com/graphql-go/graphql"
)

// NewSchema creates a GraphQL schema from a root query object.
func NewSchema(query *graphql.Object) (graphql.Schema, error) {
	return graphql.NewSchema(graphql.SchemaConfig{
		Query: query,
	})
}
