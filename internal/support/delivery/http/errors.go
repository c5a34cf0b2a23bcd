package http

import (
	"net/http"

	pkgErrors "customer-support-router/pkg/errors"
)

var (
	errInvalidBody   = pkgErrors.ErrBadRequest
	errQueryRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "query is required")
)
