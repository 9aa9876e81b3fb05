package http

var statusText = map[int]string{
	// Informational 1XX
	// Reference: https://datatracker.ietf.org/doc/html/rfc9110#name-informational-1xx
	100: "Continue",
	101: "Switching Protocols",

	// Successful 2XX
	// Reference: https://datatracker.ietf.org/doc/html/rfc9110#name-successful-2xx
	200: "OK",
	201: "Created",
	202: "Accepted",
	203: "Non-Authoritative Information",
	204: "No Content",
	205: "Reset Content",
	206: "Partial Content",

	// Redirection 3xx
	// Reference: https://datatracker.ietf.org/doc/html/rfc9110#name-redirection-3xx
	300: "Multiple Choices",
	301: "Moved Permanently",
	302: "Found",
	303: "See Other",
	304: "Not Modified",
	305: "Use Proxy",
	307: "Temporary Redirect",
	308: "Permanent Redirect",

	// Client Error 4xx
	// Reference: https://datatracker.ietf.org/doc/html/rfc9110#name-client-error-4xx
	400: "Bad Request",
	401: "Unauthorized",
	402: "Payment Required",
	403: "Forbidden",
	404: "Not Found",
	405: "Method Not Allowed",
	406: "Not Acceptable",
	407: "Proxy Authentication Required",
	408: "Request Timeout",
	409: "Conflict",
	410: "Gone",
	411: "Length Required",
	412: "Precondition Failed",
	413: "Content Too Large",
	414: "URI Too Long",
	415: "Unsupported Media Type",
	416: "Range Not Satisfiable",
	417: "Expectation Failed",
	418: "I'm a teapot", // Unused. But I like the joke.
	421: "Misdirected Request",
	422: "Unprocessable Content",
	426: "Upgrade Required",

	// Server Error 5xx
	// Reference: https://datatracker.ietf.org/doc/html/rfc9110#name-server-error-5xx
	500: "Internal Server Error",
	501: "Not Implemented",
	502: "Bad Gateway",
	503: "Service Unavailable",
	504: "Gateway Timeout",
	505: "HTTP Version Not Supported",
}

// StatusText returns the reason phrase for code, or "" if it is unknown.
func StatusText(code int) string {
	return statusText[code]
}
