// Package utils holds small helpers shared by the server and the health
// probe: JSON response writing, the outbound HTTP client and id generation.
package utils
