// Package tools defines the MCP tool catalog exposed by the server. Each tool
// accepts a bearer token, delegates to exactly one Spotify Web API call and
// returns the response verbatim. Failures never surface as protocol errors;
// they collapse into a payload with a single "error" field so callers always
// receive a well-formed result.
package tools
