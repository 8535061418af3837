package middleware

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	oapimiddleware "github.com/oapi-codegen/nethttp-middleware"
	"go.uber.org/zap"

	"github.com/staffline/workforce/platform/go/problem"
)

// OpenAPIValidator validates parameters and request bodies against spec and
// rejects mismatches with a problem+json response.
func OpenAPIValidator(spec *openapi3.T, logger *zap.Logger) func(http.Handler) http.Handler {
	return oapimiddleware.OapiRequestValidatorWithOptions(spec, &oapimiddleware.Options{
		Options: openapi3filter.Options{
			ExcludeRequestBody:    false,
			ExcludeResponseBody:   true,
			MultiError:            false,
			AuthenticationFunc:    openapi3filter.NoopAuthenticationFunc,
			IncludeResponseStatus: false,
		},
		SilenceServersWarning: true,
		ErrorHandler: func(w http.ResponseWriter, message string, statusCode int) {
			if logger != nil {
				logger.Warn("request rejected by openapi validator",
					zap.Int("status", statusCode),
					zap.String("reason", message),
				)
			}
			problem.Write(w, validatorProblem(message, statusCode))
		},
	})
}

func validatorProblem(message string, statusCode int) problem.Details {
	switch statusCode {
	case http.StatusNotFound:
		return problem.New(statusCode, "Resource not found", message, problem.TypeNotFound, nil)
	case http.StatusBadRequest:
		return problem.New(statusCode, "Validation failed", message, problem.TypeValidation, nil)
	default:
		return problem.New(statusCode, http.StatusText(statusCode), message, "", nil)
	}
}
