package estimate

// Result is the outcome of one estimation call. Exactly one of the three
// variants below is returned; callers switch on the concrete type or use
// Object() for the wire rendering.
type Result interface {
	// Object renders the result as the JSON object handed back to the tool
	// caller: the verbatim upstream body on success, or a structured error.
	Object() map[string]interface{}
}

// Success carries the upstream response body, passed through unmodified.
// Its structure is owned entirely by the remote service.
type Success struct {
	Body map[string]interface{}
}

func (s Success) Object() map[string]interface{} {
	return s.Body
}

// TransportError is any failure of the HTTP request/response cycle:
// connection refused, DNS failure, timeout, or a non-2xx status. StatusCode
// is set only when a response was actually received.
type TransportError struct {
	Message    string
	StatusCode *int
}

func (e TransportError) Object() map[string]interface{} {
	var code interface{}
	if e.StatusCode != nil {
		code = *e.StatusCode
	}
	return map[string]interface{}{
		"error":       "HTTP error occurred: " + e.Message,
		"status_code": code,
	}
}

// CallError is any other failure, such as an unparseable response body.
type CallError struct {
	Message string
}

func (e CallError) Object() map[string]interface{} {
	return map[string]interface{}{
		"error": "An error occurred: " + e.Message,
	}
}
