package auth

// publicPaths lists URL paths that bypass authentication: the signup/login
// endpoints that mint tokens, and infrastructure health checks.
var publicPaths = map[string]bool{
	"/api/auth/signup": true,
	"/api/auth/login":  true,
	"/health":          true,
	"/health/db":       true,
}

// IsPublicPath reports whether the given path should bypass the auth
// middleware.
func IsPublicPath(path string) bool {
	return publicPaths[path]
}
