// Package apiclient provides the HTTP access layer for the Nordkost ERP
// backend.
//
// # Overview
//
// The package exports two building blocks:
//
//   - Client: a thin wrapper around net/http that owns the base URL, bearer
//     token handling, and request logging.
//   - Resource[T]: a typed five-operation (List/Get/Create/Update/Delete)
//     accessor bound to one backend collection endpoint.
//
// Every backend collection follows the same convention: the collection form
// ("/v1/ansatte/") carries a trailing slash and serves list and create, while
// the item form ("/v1/ansatte/42") serves get, update, and delete. List
// responses come in two shapes, a paginated object and a bare array; the
// package normalizes both into ListResult.
//
// All failures surface as *Error with exactly one classification Kind. The
// package performs no retries and no recovery; callers decide how to react.
//
// # Usage
//
//	client, err := apiclient.New(apiclient.Config{
//		BaseURL: "https://api.nordkost.no",
//		Tokens:  apiclient.StaticToken(token),
//	})
//	if err != nil {
//		return err
//	}
//
//	ansatte := apiclient.NewResource[Ansatt](client, "/v1/ansatte/")
//	res, err := ansatte.List(ctx, &apiclient.ListParams{Page: 2, PageSize: 10, Search: "Thor"})
package apiclient
