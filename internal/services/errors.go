package services

import "errors"

// ErrAccountExists is returned when signup targets an id that is
// already taken, whether detected by the lookup or by losing the
// insert race.
var ErrAccountExists = errors.New("account already exists")

// ErrInvalidCredentials is returned for both an unknown account id and
// a wrong password. The two cases are intentionally indistinguishable
// to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrForbidden is returned when an authenticated caller is not
// entitled to the operation.
var ErrForbidden = errors.New("forbidden")
