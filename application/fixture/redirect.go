package fixture

import (
	"net"
	"strings"

	"http-fixture/application/http/actor/server"
	"http-fixture/application/http/semantic"
	"http-fixture/application/http/semantic/status"
	"http-fixture/application/util/markup"
	"http-fixture/application/util/rule"
)

const (
	// RedirectReason replaces the standard reason phrase of every redirect.
	RedirectReason = "Artificial redirect"

	DefaultRedirectTarget = "lorem1.txt"

	RedirectCookieName  = "redirect2"
	RedirectCookieValue = "ok"
)

// Request parameters read by the handlers.
const (
	ParamStatus      = "ST"
	ParamTarget      = "TO"
	ParamContentType = "CT"
	ParamForceEcho   = "D"
	ParamNoEcho      = "STUM"
	ParamLorem       = "LOREM"
)

// RedirectSpec is the outcome of a redirect.
type RedirectSpec struct {
	Status status.Status
	Target string
	Cookie string
}

// ResolveRedirect reads ST and TO from request, falling back to
// 303 and [DefaultRedirectTarget]. An ST that is not a valid final status
// code is ignored.
func ResolveRedirect(request *semantic.Request) RedirectSpec {
	spec := RedirectSpec{
		Status: status.SeeOther.WithReason(RedirectReason),
		Target: DefaultRedirectTarget,
		Cookie: RedirectCookieName + "=" + RedirectCookieValue,
	}

	if v, ok := request.Param(ParamStatus); ok {
		if st, err := status.Parse(sanitize(v)); err == nil && st.IsFinal() {
			spec.Status = st.WithReason(RedirectReason)
		}
	}

	if v, ok := request.Param(ParamTarget); ok {
		spec.Target = sanitize(v)
	}

	return spec
}

// Redirect answers with an empty-bodied redirect to http://<host>/<target>,
// setting the redirect cookie.
func Redirect(c *server.HandleContext, request *semantic.Request) *semantic.Response {
	spec := ResolveRedirect(request)
	location := "http://" + EffectiveHost(request) + "/" + spec.Target

	c.Logger().Debug("redirecting", "status", spec.Status.Code, "location", location)

	return redirectResponse(spec, location)
}

// EffectiveHost is the Host the client sent, or the address the server
// is bound to when there was none.
func EffectiveHost(request *semantic.Request) string {
	if request.Host != "" {
		return request.Host
	}

	addr := request.ServerAddr
	if request.ServerPort != "" && request.ServerPort != "80" {
		return net.JoinHostPort(addr, request.ServerPort)
	}
	if strings.Contains(addr, ":") {
		// IPv6 literal.
		return "[" + addr + "]"
	}
	return addr
}

func redirectResponse(spec RedirectSpec, location string) *semantic.Response {
	l := uint(0)
	res := &semantic.Response{
		Status:        spec.Status,
		ContentLength: &l,
	}
	res.Headers.Set("Set-Cookie", spec.Cookie)
	res.Headers.Set("Location", location)

	return res
}

// sanitize strips markup from a value taken from the request before it is
// reflected, and drops control characters so it cannot break a header line.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if rule.IsCTL(r) {
			return -1
		}
		return r
	}, markup.StripTags(s))
}
