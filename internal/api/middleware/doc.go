// Package middleware contains HTTP middleware shared by all routes.
package middleware
