package graph

import (
	"net/http"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/graph-gophers/graphql-transport-ws/graphqlws"
)

// NewHandler parses the schema against the root resolver and returns a
// handler serving queries/mutations over HTTP POST and subscriptions over
// the graphql-ws websocket protocol on the same path.
func NewHandler(r *Resolver) (http.Handler, error) {
	schema, err := graphql.ParseSchema(Schema, r)
	if err != nil {
		return nil, err
	}

	return graphqlws.NewHandlerFunc(schema, &relay.Handler{Schema: schema}), nil
}
