// Package httputil provides the HTTP method and status code rules used when
// reading path items and responses.
package httputil

import (
	"slices"
	"strconv"
	"strings"
)

// HTTP Method Constants
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace" // OpenAPI 3.0 only
)

const (
	minStatusCode = 100
	maxStatusCode = 599
)

var oas2Methods = []string{MethodGet, MethodPut, MethodPost, MethodDelete, MethodOptions, MethodHead, MethodPatch}

var oas3Methods = append(slices.Clone(oas2Methods), MethodTrace)

// IsOAS2Method reports whether key names an operation in a Swagger 2.0 path item.
func IsOAS2Method(key string) bool {
	return slices.Contains(oas2Methods, key)
}

// IsOAS3Method reports whether key names an operation in an OpenAPI 3.0 path item.
func IsOAS3Method(key string) bool {
	return slices.Contains(oas3Methods, key)
}

// ValidateStatusCode reports whether code is a valid responses key:
// "default", an x- extension, a 1XX-5XX wildcard, or a number from 100 to 599.
func ValidateStatusCode(code string) bool {
	if code == "default" || strings.HasPrefix(code, "x-") {
		return true
	}
	if len(code) != 3 {
		return false
	}
	if code[1:] == "XX" {
		return code[0] >= '1' && code[0] <= '5'
	}
	for i := range len(code) {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	n, err := strconv.Atoi(code)
	return err == nil && n >= minStatusCode && n <= maxStatusCode
}
