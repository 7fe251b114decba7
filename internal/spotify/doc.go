// Package spotify implements a thin Spotify Web API client.
//
// A [Client] binds a single bearer token to the ability to issue requests and
// is meant to be constructed per call and discarded afterwards. Every method
// performs exactly one request and returns the response body verbatim as a
// [encoding/json.RawMessage] so callers can pass it along without reshaping.
//
// Endpoint coverage follows https://developer.spotify.com/documentation/web-api/reference/
package spotify
