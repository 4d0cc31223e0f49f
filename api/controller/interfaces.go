package controller

import "context"

// FactsClient is the querying surface of Client, split out so consumers
// can substitute a mock where their code takes a fact source.
//
// The catalog behind Query is read-only: clients, devices, statistics
// reports, configuration listings, and administration lookups. Query
// names are discoverable through Queries.
//
// With gomock:
//
//	//go:generate mockgen -destination=mocks/facts_client.go -package=mocks github.com/kenmoini/unifi-facts/api/controller FactsClient
//
// With testify/mock:
//
//	type MockClient struct {
//	    mock.Mock
//	}
//
//	func (m *MockClient) Query(ctx context.Context, req controller.QueryRequest) (*controller.QueryResult, error) {
//	    args := m.Called(ctx, req)
//	    return args.Get(0).(*controller.QueryResult), args.Error(1)
//	}
//
//nolint:revive // FactsClient is intentionally explicit to avoid confusion with the Client struct
type FactsClient interface {
	// Query authenticates, runs the named catalog query once, and
	// returns the normalized result.
	Query(ctx context.Context, req QueryRequest) (*QueryResult, error)
}
