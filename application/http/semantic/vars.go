package semantic

import (
	"net"
	"sort"
	"strings"
)

// Vars is the server-variable environment of a request,
// named the way a CGI gateway exports them (REQUEST_METHOD, HTTP_HOST, ...).
//
// Reference: https://datatracker.ietf.org/doc/html/rfc3875#section-4.1
type Vars map[string]string

func (v Vars) Get(name string) (value string, ok bool) {
	value, ok = v[name]
	return
}

// Names returns every variable name in ascending order.
func (v Vars) Names() []string {
	names := make([]string, 0, len(v))
	for k := range v {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Protocol-specific meta-variable name of a header field.
// Reference: https://datatracker.ietf.org/doc/html/rfc3875#section-4.1.18
func headerVarName(field string) string {
	return "HTTP_" + strings.ToUpper(strings.ReplaceAll(field, "-", "_"))
}

func (r *Request) buildVars(software string) Vars {
	vars := Vars{
		"GATEWAY_INTERFACE": "CGI/1.1",
		"REQUEST_METHOD":    string(r.Method),
		"REQUEST_URI":       r.RequestURI,
		"QUERY_STRING":      r.RawQuery,
		"SCRIPT_NAME":       r.Path,
		"SERVER_PROTOCOL":   r.Version.String(),
		"SERVER_ADDR":       r.ServerAddr,
		"SERVER_PORT":       r.ServerPort,
		"SERVER_NAME":       r.serverName(),
		"REMOTE_ADDR":       r.RemoteAddr,
		"REMOTE_PORT":       r.RemotePort,
	}
	if software != "" {
		vars["SERVER_SOFTWARE"] = software
	}

	// Content-Type and Content-Length are exported without the HTTP_ prefix.
	// Reference: https://datatracker.ietf.org/doc/html/rfc3875#section-4.1.18-4
	for _, name := range r.Headers.Names() {
		value, _ := r.Headers.Joined(name)
		switch name {
		case "Content-Type":
			vars["CONTENT_TYPE"] = value
		case "Content-Length":
			vars["CONTENT_LENGTH"] = value
		default:
			vars[headerVarName(name)] = value
		}
	}

	return vars
}

func (r *Request) serverName() string {
	if r.Host == "" {
		return r.ServerAddr
	}
	if name, _, err := net.SplitHostPort(r.Host); err == nil {
		return name
	}
	return r.Host
}
