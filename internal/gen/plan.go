package gen

import (
	"fmt"
	"go/types"
	"reflect"
	"strconv"
	"strings"

	"github.com/viant/tagly/format/text"
	"go.uber.org/zap"

	"github.com/viant/aotjson/sink"
)

// maxFields bounds the fields of one type to the width of the presence mask.
const maxFields = 64

// ShapeKind classifies how a field type is converted.
type ShapeKind int

const (
	ShapePrimitive ShapeKind = iota
	ShapeTime
	ShapeBytes
	ShapeStruct
	ShapePointer
	ShapeSlice
	ShapeMap
)

// Shape describes a field type as seen by the generated code.
type Shape struct {
	Kind ShapeKind
	// Type is the Go type expression inside the generated package.
	Type string
	// Method is the cursor/sink method suffix of a primitive, e.g. Float64.
	Method string
	Elem   *Shape
}

// Field is one JSON member of a generated type.
type Field struct {
	GoName   string
	JSONName string
	Bit      int
	Required bool
	Shape    *Shape
}

// Type is one struct type with a generated converter.
type Type struct {
	Name   string
	Fields []*Field
}

// Plan is everything needed to render one output file.
type Plan struct {
	Package string
	PkgPath string
	Types   []*Type
}

var primitiveMethods = map[types.BasicKind]string{
	types.String:  "String",
	types.Bool:    "Bool",
	types.Int:     "Int",
	types.Int32:   "Int32",
	types.Int64:   "Int64",
	types.Uint64:  "Uint64",
	types.Float32: "Float32",
	types.Float64: "Float64",
}

// Converter returns the generated converter type name.
func (t *Type) Converter() string { return t.Name + "Converter" }

// NamesVar returns the name of the JSON field name table.
func (t *Type) NamesVar() string {
	return strings.ToLower(t.Name[:1]) + t.Name[1:] + "FieldNames"
}

// RequiredMask returns the presence bits of the required fields.
func (t *Type) RequiredMask() string {
	var mask uint64
	for _, f := range t.Fields {
		if f.Required {
			mask |= 1 << uint(f.Bit)
		}
	}
	return fmt.Sprintf("%#x", mask)
}

// UsesTime reports whether the rendered file references the time package.
func (p *Plan) UsesTime() bool {
	for _, t := range p.Types {
		for _, f := range t.Fields {
			if elem := f.Shape.Elem; elem != nil && elem.Kind == ShapeTime {
				return true
			}
		}
	}
	return false
}

// NameLiteral returns the pre-escaped `"name":` literal as a Go string literal.
func (f *Field) NameLiteral() string {
	w := sink.New(sink.Config{InitialSize: len(f.JSONName) + 8})
	defer w.Release()
	w.Name(f.JSONName)
	literal := string(w.Bytes())
	if strings.Contains(literal, "`") {
		return strconv.Quote(literal)
	}
	return "`" + literal + "`"
}

// DecodeExpr returns the expression reading the member value; the cursor is on the member name.
func (f *Field) DecodeExpr() string {
	s := f.Shape
	switch s.Kind {
	case ShapePrimitive:
		return "c.Read" + s.Method + "()"
	case ShapeTime:
		return "c.ReadTime()"
	case ShapeBytes:
		return "c.ReadBase64()"
	case ShapeStruct:
		return fmt.Sprintf("aotjson.Read[%s](c, %s)", s.Type, s.converter())
	case ShapePointer:
		return fmt.Sprintf("aotjson.ReadPtr[%s](c, %s)", s.Elem.Type, s.Elem.converter())
	case ShapeSlice:
		return fmt.Sprintf("aotjson.ReadSlice[%s](c, %s)", s.Elem.Type, s.Elem.converter())
	case ShapeMap:
		return fmt.Sprintf("aotjson.ReadMap[%s](c, %s)", s.Elem.Type, s.Elem.converter())
	}
	return ""
}

// EncodeStmt returns the statement writing the member value.
func (f *Field) EncodeStmt() string {
	s := f.Shape
	expr := "v." + f.GoName
	switch s.Kind {
	case ShapePrimitive:
		return "w.Add" + s.Method + "(" + expr + ")"
	case ShapeTime:
		return "w.AddTime(" + expr + ")"
	case ShapeBytes:
		return "w.AddBase64(" + expr + ")"
	case ShapeStruct:
		return s.converter() + ".Encode(w, &" + expr + ")"
	case ShapePointer:
		return s.Elem.converter() + ".Encode(w, " + expr + ")"
	case ShapeSlice:
		return fmt.Sprintf("aotjson.EncodeSlice[%s](w, %s, %s)", s.Elem.Type, expr, s.Elem.converter())
	case ShapeMap:
		return fmt.Sprintf("aotjson.EncodeMap[%s](w, %s, %s)", s.Elem.Type, expr, s.Elem.converter())
	}
	return ""
}

func (s *Shape) converter() string {
	switch s.Kind {
	case ShapePrimitive:
		return "aotjson." + s.Method + "Converter{}"
	case ShapeTime:
		return "aotjson.TimeConverter{}"
	case ShapeBytes:
		return "aotjson.BytesConverter{}"
	case ShapeStruct:
		return s.Type + "Converter{}"
	}
	return ""
}

type analyzer struct {
	pkg        *types.Package
	caseFormat text.CaseFormat
	logger     *zap.Logger
	queue      []*types.TypeName
	seen       map[string]bool
}

// Analyze plans converters for the named struct types of pkg and for every
// struct of pkg they reach.
func Analyze(pkg *types.Package, names []string, caseFormat text.CaseFormat, logger *zap.Logger) (*Plan, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &analyzer{pkg: pkg, caseFormat: caseFormat, logger: logger, seen: map[string]bool{}}
	for _, name := range names {
		obj, ok := pkg.Scope().Lookup(name).(*types.TypeName)
		if !ok {
			return nil, fmt.Errorf("type %s not found in package %s", name, pkg.Path())
		}
		a.enqueue(obj)
	}
	result := &Plan{Package: pkg.Name(), PkgPath: pkg.Path()}
	for len(a.queue) > 0 {
		obj := a.queue[0]
		a.queue = a.queue[1:]
		planned, err := a.planType(obj)
		if err != nil {
			return nil, err
		}
		result.Types = append(result.Types, planned)
	}
	return result, nil
}

func (a *analyzer) enqueue(obj *types.TypeName) {
	if a.seen[obj.Name()] {
		return
	}
	a.seen[obj.Name()] = true
	a.queue = append(a.queue, obj)
}

func (a *analyzer) planType(obj *types.TypeName) (*Type, error) {
	st, ok := obj.Type().Underlying().(*types.Struct)
	if !ok {
		return nil, fmt.Errorf("type %s is not a struct", obj.Name())
	}
	if named, ok := obj.Type().(*types.Named); ok && named.TypeParams().Len() > 0 {
		return nil, fmt.Errorf("generic type %s is not supported", obj.Name())
	}
	result := &Type{Name: obj.Name()}
	names := map[string]string{}
	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		if field.Embedded() {
			return nil, fmt.Errorf("%s.%s: embedded fields are not supported", obj.Name(), field.Name())
		}
		if !field.Exported() {
			continue
		}
		tag := parseJSONTag(formatName(field.Name(), a.caseFormat), reflect.StructTag(st.Tag(i)).Get("json"))
		if tag.Transient {
			continue
		}
		if tag.OmitEmpty {
			a.logger.Warn("omitempty is ignored", zap.String("type", obj.Name()), zap.String("field", field.Name()))
		}
		if prev, ok := names[tag.Name]; ok {
			return nil, fmt.Errorf("%s: fields %s and %s both map to %q", obj.Name(), prev, field.Name(), tag.Name)
		}
		names[tag.Name] = field.Name()
		if len(result.Fields) == maxFields {
			return nil, fmt.Errorf("type %s has more than %d fields", obj.Name(), maxFields)
		}
		shape, err := a.shape(field.Type())
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", obj.Name(), field.Name(), err)
		}
		result.Fields = append(result.Fields, &Field{
			GoName:   field.Name(),
			JSONName: tag.Name,
			Bit:      len(result.Fields),
			Required: shape.Kind == ShapePrimitive || shape.Kind == ShapeTime || shape.Kind == ShapeStruct,
			Shape:    shape,
		})
	}
	a.logger.Debug("planned type", zap.String("type", obj.Name()), zap.Int("fields", len(result.Fields)))
	return result, nil
}

func (a *analyzer) shape(t types.Type) (*Shape, error) {
	t = types.Unalias(t)
	switch tt := t.(type) {
	case *types.Pointer:
		elem, err := a.element(tt.Elem())
		if err != nil {
			return nil, err
		}
		return &Shape{Kind: ShapePointer, Type: "*" + elem.Type, Elem: elem}, nil
	case *types.Slice:
		if basic, ok := types.Unalias(tt.Elem()).(*types.Basic); ok && basic.Kind() == types.Byte {
			return &Shape{Kind: ShapeBytes, Type: "[]byte"}, nil
		}
		elem, err := a.element(tt.Elem())
		if err != nil {
			return nil, err
		}
		return &Shape{Kind: ShapeSlice, Type: "[]" + elem.Type, Elem: elem}, nil
	case *types.Map:
		if key, ok := types.Unalias(tt.Key()).(*types.Basic); !ok || key.Kind() != types.String {
			return nil, fmt.Errorf("unsupported map key type %s", tt.Key())
		}
		elem, err := a.element(tt.Elem())
		if err != nil {
			return nil, err
		}
		return &Shape{Kind: ShapeMap, Type: "map[string]" + elem.Type, Elem: elem}, nil
	}
	return a.element(t)
}

// element classifies types that have a standalone converter.
func (a *analyzer) element(t types.Type) (*Shape, error) {
	t = types.Unalias(t)
	switch tt := t.(type) {
	case *types.Basic:
		method, ok := primitiveMethods[tt.Kind()]
		if !ok {
			return nil, fmt.Errorf("unsupported type %s", tt)
		}
		return &Shape{Kind: ShapePrimitive, Type: tt.Name(), Method: method}, nil
	case *types.Named:
		obj := tt.Obj()
		if obj.Pkg() != nil && obj.Pkg().Path() == "time" && obj.Name() == "Time" {
			return &Shape{Kind: ShapeTime, Type: "time.Time"}, nil
		}
		if obj.Pkg() == a.pkg {
			if _, ok := tt.Underlying().(*types.Struct); ok {
				a.enqueue(obj)
				return &Shape{Kind: ShapeStruct, Type: obj.Name()}, nil
			}
		}
		return nil, fmt.Errorf("unsupported type %s", types.TypeString(tt, types.RelativeTo(a.pkg)))
	case *types.Slice:
		if basic, ok := types.Unalias(tt.Elem()).(*types.Basic); ok && basic.Kind() == types.Byte {
			return &Shape{Kind: ShapeBytes, Type: "[]byte"}, nil
		}
	}
	return nil, fmt.Errorf("unsupported element type %s", types.TypeString(t, types.RelativeTo(a.pkg)))
}
