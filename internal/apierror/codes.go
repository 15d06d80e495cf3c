package apierror

// Error type URIs following the urn:hugmood:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:hugmood:error:validation"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:hugmood:error:not_found"

	// TypeUnauthorized indicates missing or invalid authentication (401)
	TypeUnauthorized = "urn:hugmood:error:unauthorized"

	// TypeForbidden indicates insufficient permissions (403)
	TypeForbidden = "urn:hugmood:error:forbidden"

	// TypeRateLimit indicates too many requests (429)
	TypeRateLimit = "urn:hugmood:error:rate_limit"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:hugmood:error:internal"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:hugmood:error:bad_request"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation   = "Validation Error"
	TitleNotFound     = "Resource Not Found"
	TitleUnauthorized = "Authentication Required"
	TitleForbidden    = "Permission Denied"
	TitleRateLimit    = "Rate Limit Exceeded"
	TitleInternal     = "Internal Server Error"
	TitleBadRequest   = "Bad Request"
)
