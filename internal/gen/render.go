package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"text/template"
)

const fileTemplate = `// Code generated by aotjsongen. DO NOT EDIT.

package {{.Package}}

import (
{{- if .UsesTime}}
	"time"
{{end}}
	"github.com/viant/aotjson"
	"github.com/viant/aotjson/cursor"
	"github.com/viant/aotjson/sink"
)

func init() {
{{- range .Types}}
	aotjson.Register[{{.Name}}]({{.Converter}}{})
{{- end}}
}
{{range .Types}}
var {{.NamesVar}} = []string{ {{- range $i, $f := .Fields}}{{if $i}}, {{end}}{{quote $f.JSONName}}{{end -}} }

// {{.Converter}} converts {{.Name}} values.
type {{.Converter}} struct{}

func ({{.Converter}}) Decode(c *cursor.Cursor) (v {{.Name}}, err error) {
	if c.Kind() == cursor.Null {
		return v, c.AcceptNull({{quote .Name}})
	}
	if err = c.Expect(cursor.BeginObject); err != nil {
		return v, err
	}
	var seen uint64
	var kind cursor.Kind
	for {
		if kind, err = c.Next(); err != nil {
			return {{.Name}}{}, err
		}
		if kind == cursor.EndObject {
			break
		}
		switch c.Name() {
{{- range .Fields}}
		case {{quote .JSONName}}:
			if err = c.Mark(&seen, {{.Bit}}); err == nil {
				v.{{.GoName}}, err = {{.DecodeExpr}}
			}
{{- end}}
		default:
			err = c.SkipUnknown()
		}
		if err != nil {
			return {{.Name}}{}, err
		}
	}
	if err = c.Required(seen, {{.RequiredMask}}, {{.NamesVar}}); err != nil {
		return {{.Name}}{}, err
	}
	return v, nil
}

func ({{.Converter}}) Encode(w *sink.Writer, v *{{.Name}}) {
	if v == nil {
		w.AddNull()
		return
	}
	w.BeginObject()
{{- range .Fields}}
	w.RawName({{.NameLiteral}})
	{{.EncodeStmt}}
{{- end}}
	w.EndObject()
}
{{end}}`

var fileTmpl = template.Must(template.New("aotjson").Funcs(template.FuncMap{
	"quote": strconv.Quote,
}).Parse(fileTemplate))

// Render produces the gofmt-ed source for plan.
func Render(plan *Plan) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := fileTmpl.Execute(buf, plan); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return buf.Bytes(), fmt.Errorf("formatting generated code: %w", err)
	}
	return src, nil
}
