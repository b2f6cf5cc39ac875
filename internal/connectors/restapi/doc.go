// Package restapi provides a RecordFetcher for catalogues that expose one
// JSON document per identifier at "<base>/<id>".
//
// A fetch is a single GET. Any status other than 200 is reported as an
// *APIError; transport failures are wrapped. Nothing is retried.
package restapi
