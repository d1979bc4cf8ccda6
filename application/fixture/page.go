package fixture

import (
	"bytes"
	"html/template"
	"io"
	"strings"

	"http-fixture/application/http/actor/server"
	"http-fixture/application/http/semantic"
	"http-fixture/application/http/semantic/status"

	"github.com/pkg/errors"
)

// LoremParagraphs is the number of filler paragraphs written when LOREM is set.
const LoremParagraphs = 1000

const LoremText = `Lorem ipsum dolor sit amet, consectetuer adipiscing elit, sed diam nonummy nibh euismod tincidunt ut laoreet dolore
magna aliquam erat volutpat. Ut wisi enim ad minim veniam, quis nostrud exerci tation ullamcorper suscipit lobortis
nisl ut aliquip ex ea commodo consequat. Duis autem vel eum iriure dolor in hendrerit in vulputate velit esse molestie
consequat, vel illum dolore eu feugiat nulla facilisis at vero eros et accumsan et iusto odio dignissim qui blandit
praesent luptatum zzril delenit augue duis dolore te feugait nulla facilisi. Nam liber tempor cum soluta nobis eleifend
option congue nihil imperdiet doming id quod mazim placerat facer possim assum. Typi non habent claritatem insitam;
est usus legentis in iis qui facit eorum claritatem. Investigationes demonstraverunt lectores legere me lius quod ii
legunt saepius. Claritas est etiam processus dynamicus, qui sequitur mutationem consuetudium lectorum. Mirum est notare
quam littera gothica, quam nunc putamus parum claram, anteposuerit litterarum formas humanitatis per seacula quarta
decima et quinta decima. Eodem modo typi, qui nunc nobis videntur parum clari, fiant sollemnes in futurum.`

var pageTemplate = template.Must(template.New("page").Parse(`<html><head>
<title>Test Script for LightHttpClient</title>
</head>
<body>
<img src="B.png" width="16" height="16" alt="B symbol"/>
<pre>
{{if .ShowDump}}{{.Dump}}{{end}}
</pre>
<ul>
<li><a href="?CT=text/plain">text/plain</a></li>
</ul>
{{range .Lorem}}<p>{{.}}
 {{$.LoremText}}
</p>
{{end}}</body>
</html>
`))

type pageData struct {
	ShowDump  bool
	Dump      string
	Lorem     []int
	LoremText string
}

// RenderPage writes the HTML rendering of request to w.
// STUM leaves the echo block empty, LOREM appends [LoremParagraphs] paragraphs.
func RenderPage(w io.Writer, request *semantic.Request) error {
	data := pageData{LoremText: LoremText}

	if _, ok := request.Param(ParamNoEcho); !ok {
		dump := new(strings.Builder)
		if err := Dump(dump, request, DefaultFormat); err != nil {
			return err
		}
		data.ShowDump = true
		data.Dump = dump.String()
	}

	if _, ok := request.Param(ParamLorem); ok {
		data.Lorem = make([]int, LoremParagraphs)
		for i := range data.Lorem {
			data.Lorem[i] = i + 1
		}
	}

	if err := pageTemplate.Execute(w, data); err != nil {
		return errors.Wrap(err, "rendering page")
	}

	return nil
}

// Page answers with the HTML rendering of request.
func Page(c *server.HandleContext, request *semantic.Request) *semantic.Response {
	buf := bytes.NewBuffer(nil)
	if err := RenderPage(buf, request); err != nil {
		return c.Error(err)
	}

	return contentResponse(status.OK, "text/html; charset=UTF-8", buf.Bytes())
}

// Lorem serves the default redirect target.
func Lorem(c *server.HandleContext, request *semantic.Request) *semantic.Response {
	return contentResponse(status.OK, "text/plain", []byte(LoremText+"\n"))
}
