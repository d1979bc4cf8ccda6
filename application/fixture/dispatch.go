package fixture

import (
	"http-fixture/application/http/actor/server"
	"http-fixture/application/http/semantic"
	"http-fixture/application/util/form"
)

// Dispatch echoes GET and HEAD requests, and any request carrying D.
// The echo is plain text when CT is "text/plain" and an HTML page otherwise.
//
// Every other request is redirected back to its own path, with all its
// parameters re-sent as the query string.
func Dispatch(c *server.HandleContext, request *semantic.Request) *semantic.Response {
	_, forced := request.Param(ParamForceEcho)
	if request.Method.IsFetch() || forced {
		if ct, ok := request.Param(ParamContentType); ok && sanitize(ct) == "text/plain" {
			return EchoBack(c, request)
		}
		return Page(c, request)
	}

	spec := ResolveRedirect(request)
	location := "http://" + EffectiveHost(request) + request.EscapedPath
	if params := request.Params(); params.Len() > 0 {
		location += "?" + form.Encode(params.Pairs())
	}

	c.Logger().Debug("re-posting as redirect",
		"method", request.Method,
		"status", spec.Status.Code,
		"location", location,
	)

	return redirectResponse(spec, location)
}
