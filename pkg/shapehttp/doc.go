// Package shapehttp guards HTTP handlers with shape checks on JSON request
// bodies.
//
//	r := chi.NewRouter()
//	r.With(shapehttp.Require(userShape, shapehttp.WithLogger(log))).
//	    Post("/users", createUser)
//
// Require and RequireAll answer 415 for a missing or non-JSON content type, 413
// for bodies over the size limit, 400 for malformed JSON and 422 when the
// payload does not match. Accepted requests keep their body and carry the
// decoded value, available through PayloadFromContext.
package shapehttp
