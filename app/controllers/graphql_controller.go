package controllers

import (
	"net/http"
	"strings"

	"github.com/graphql-go/graphql"

	"github.com/Austinkuria/E-commerce-Site/app/services"
	"github.com/Austinkuria/E-commerce-Site/pkg/ctx"
	gql "github.com/Austinkuria/E-commerce-Site/pkg/graphql"
	"github.com/Austinkuria/E-commerce-Site/pkg/logger"
)

// GraphQLController serves the read-only catalogue query API.
type GraphQLController struct {
	schema  graphql.Schema
	service *services.CatalogService
}

func NewGraphQLController() *GraphQLController {
	gc := &GraphQLController{service: services.NewCatalogService()}

	productType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Product",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.Int},
			"name":        &graphql.Field{Type: graphql.String},
			"description": &graphql.Field{Type: graphql.String},
			"price":       &graphql.Field{Type: graphql.Float},
			"stock":       &graphql.Field{Type: graphql.Int},
			"sku":         &graphql.Field{Type: graphql.String},
			"rating":      &graphql.Field{Type: graphql.Int},
			"reviews":     &graphql.Field{Type: graphql.Int},
		},
	})

	rootQuery := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type:        graphql.NewList(productType),
				Description: "The product catalogue, optionally filtered by name.",
				Args: graphql.FieldConfigArgument{
					"search": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: gc.resolveProducts,
			},
			"product": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: gc.resolveProduct,
			},
		},
	})

	schema, err := gql.NewSchema(rootQuery)
	if err != nil {
		logger.Error("graphql: build schema", "error", err)
	}
	gc.schema = schema

	return gc
}

func (gc *GraphQLController) resolveProducts(p graphql.ResolveParams) (interface{}, error) {
	products, err := gc.service.ListAll()
	if err != nil {
		return nil, err
	}

	search, _ := p.Args["search"].(string)
	if search == "" {
		return products, nil
	}

	needle := strings.ToLower(search)
	filtered := products[:0:0]
	for _, prod := range products {
		if strings.Contains(strings.ToLower(prod.Name), needle) {
			filtered = append(filtered, prod)
		}
	}
	return filtered, nil
}

func (gc *GraphQLController) resolveProduct(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(int)
	product, err := gc.service.Find(uint(id))
	if err != nil {
		return nil, err
	}
	return product, nil
}

// Query executes a GraphQL request against the catalogue schema.
func (gc *GraphQLController) Query(c *ctx.Context) {
	var body struct {
		Query     string                 `json:"query"`
		Variables map[string]interface{} `json:"variables"`
	}
	if !c.BindJSON(&body) {
		return
	}
	if body.Query == "" {
		c.Error(http.StatusBadRequest, "The query field is required.")
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         gc.schema,
		RequestString:  body.Query,
		VariableValues: body.Variables,
		Context:        c.Context(),
	})

	c.JSON(http.StatusOK, result)
}
