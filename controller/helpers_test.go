package controller_test

import "github.com/stretchr/testify/mock"

// anyCtx matches the request-scoped context handed to services.
var anyCtx = mock.Anything
