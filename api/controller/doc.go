// Package controller provides a Go client for the classic UniFi
// Network controller API.
//
// The client is built for fact gathering: it authenticates with
// username and password, runs one named read-only query from a fixed
// catalog, and normalizes the controller's response envelope into a
// QueryResult that automation can consume directly. None of the
// catalog queries mutate controller state.
//
// # Features
//
//   - Cookie session per query (login, query, best-effort logout)
//   - Catalog of 46 read-only queries covering clients, devices,
//     reports, configuration, and administration
//   - Server-side defaults resolved client-side, so every request is
//     explicit about its time window and attributes
//   - Rate limiting (default: 300 requests/minute)
//   - TLS verification on by default, with an opt-out for self-signed
//     controller certificates
//   - Configurable timeouts and observability hooks
//
// # Example Usage
//
//	client, err := controller.New("https://192.168.1.1:8443", "admin", "secret")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := client.Query(context.Background(), controller.QueryRequest{
//	    Name: "list_devices",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Payload)
//
// # Sessions
//
// Every Query call opens its own controller session and closes it when
// the query finishes. No session state is kept on the Client, so a
// single Client is safe for concurrent use and never holds a stale
// login.
//
// # Query Parameters
//
// Queries that accept parameters take them through QueryParams. Unset
// fields fall back to the catalog defaults, which mirror what the
// controller would assume server-side. Time windows resolve against
// the wall clock at call time:
//
//	result, err := client.Query(ctx, controller.QueryRequest{
//	    Name: "stat_sessions",
//	    Params: controller.QueryParams{
//	        ClientMAC: "aa:bb:cc:dd:ee:ff",
//	    },
//	})
//
// # Custom Configuration
//
//	client, err := controller.NewWithConfig(&controller.ClientConfig{
//	    BaseURL:            "https://unifi.example.com:8443",
//	    Username:           "readonly",
//	    Password:           "secret",
//	    Site:               "branch-office",
//	    InsecureSkipVerify: true,
//	    Timeout:            60 * time.Second,
//	    RateLimitPerMinute: 120,
//	})
//
// # Error Handling
//
// Errors are typed. AuthenticationError reports rejected logins,
// UnsupportedQueryError reports unknown catalog names, APIError
// reports controller failure envelopes, and TransportError reports
// network failures and unrecognizable responses. API failures also
// surface through the QueryResult so callers that only relay the
// outcome need not inspect the error:
//
//	result, err := client.Query(ctx, req)
//	var apiErr *controller.APIError
//	if errors.As(err, &apiErr) {
//	    fmt.Printf("controller refused: %s\n", apiErr.Message)
//	}
package controller
