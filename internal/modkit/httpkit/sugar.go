package httpkit

import (
	"net/http"

	phttp "dashboard/internal/platform/net/http"
	"dashboard/internal/platform/net/http/bind"
)

// Get registers a no-body handler and uses the envelope adapter
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// GetRaw registers a handler whose success body is written without the envelope
// errors are still enveloped
func GetRaw(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Handle(func(req *http.Request) Response {
		out, err := h(req)
		if err != nil {
			return Error(err)
		}
		return Raw(out)
	}))
}

// GetQuery registers a handler whose input is bound from the query string and URL params
func GetQuery[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.GetQuery(r, path, h)
}

// Bind parses and validates query string and URL params into T, for handlers
// that write their own response
func Bind[T any](r *http.Request) (T, error) { return bind.ParseQuery[T](r) }

// WriteError writes err as an error envelope
func WriteError(w http.ResponseWriter, r *http.Request, err error) { phttp.RespondError(w, r, err) }
