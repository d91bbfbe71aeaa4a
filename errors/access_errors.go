package errors

import "errors"

var (
	ErrForbidden         = errors.New("access denied")
	ErrRouteBlocked      = errors.New("route blocked for role")
	ErrSelfApproval      = errors.New("requester cannot act on their own request")
	ErrInvalidTransition = errors.New("transition not allowed from current state")
	ErrEvidenceRequired  = errors.New("completion evidence is required before review")
)
