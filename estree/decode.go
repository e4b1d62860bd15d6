// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package estree

import (
	"bytes"
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"go/token"
	"maps"
	"slices"
	"strings"

	"fillmore-labs.com/constenum/tsast"
)

var (
	// ErrInvalidNode is returned for nodes missing required properties.
	ErrInvalidNode = errors.New("invalid ESTree node")

	// ErrInvalidRange is returned for node ranges outside the source text.
	ErrInvalidRange = errors.New("invalid source range")
)

// Decode converts a typescript-estree Program into a *[tsast.File].
//
// tree is the JSON produced by typescript-estree with range information
// enabled; comments are picked up when present. src is the source text the
// tree was parsed from. The file is registered in fset under filename.
func Decode(fset *token.FileSet, filename string, src, tree []byte) (*tsast.File, error) {
	var root object
	if err := json.Unmarshal(tree, &root); err != nil {
		return nil, fmt.Errorf("estree: %w", err)
	}

	if t := root.typ(); t != "Program" {
		return nil, fmt.Errorf("estree: %w: root is %q, want Program", ErrInvalidNode, t)
	}

	file := fset.AddFile(filename, -1, len(src))
	file.SetLinesForContent(src)

	d := decoder{file: file, src: src}

	f := d.program(root)
	if d.err != nil {
		return nil, fmt.Errorf("estree: %w", d.err)
	}

	return f, nil
}

// object is an undecoded ESTree node.
type object map[string]json.RawMessage

func (o object) typ() string {
	var t string
	_ = json.Unmarshal(o["type"], &t) // missing types are reported by the caller

	return t
}

// decoder holds the state of a single [Decode] call.
// The first error stops further decoding; later calls return zero values.
type decoder struct {
	file *token.File
	src  []byte
	err  error
}

func (d *decoder) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

func (d *decoder) pos(offset int) token.Pos {
	return d.file.Pos(offset)
}

// span returns the validated source offsets of a node.
func (d *decoder) span(o object) (from, to int) {
	var r [2]int
	if err := json.Unmarshal(o["range"], &r); err != nil {
		d.fail(fmt.Errorf("%w: %s without range", ErrInvalidRange, o.typ()))

		return 0, 0
	}

	if r[0] < 0 || r[0] > r[1] || r[1] > len(d.src) {
		d.fail(fmt.Errorf("%w: %s at [%d, %d]", ErrInvalidRange, o.typ(), r[0], r[1]))

		return 0, 0
	}

	return r[0], r[1]
}

// find returns the position of the first occurrence of text at or after offset,
// or token.NoPos.
func (d *decoder) find(offset int, text string) token.Pos {
	if offset < 0 || offset > len(d.src) {
		return token.NoPos
	}

	i := bytes.Index(d.src[offset:], []byte(text))
	if i < 0 {
		return token.NoPos
	}

	return d.pos(offset + i)
}

func (d *decoder) offset(pos token.Pos) int {
	return int(pos) - d.file.Base()
}

func (d *decoder) object(o object, key string) object {
	raw, ok := o[key]
	if !ok || !isObject(raw) {
		return nil
	}

	var child object
	if err := json.Unmarshal(raw, &child); err != nil {
		d.fail(fmt.Errorf("%w: %s.%s: %w", ErrInvalidNode, o.typ(), key, err))

		return nil
	}

	if _, ok := child["type"]; !ok {
		return nil // not a node, e.g. a regex description
	}

	return child
}

// list decodes an array of nodes; holes are kept as nil.
func (d *decoder) list(o object, key string) []object {
	raw, ok := o[key]
	if !ok || !isArray(raw) {
		return nil
	}

	var children []object
	if err := json.Unmarshal(raw, &children); err != nil {
		d.fail(fmt.Errorf("%w: %s.%s: %w", ErrInvalidNode, o.typ(), key, err))

		return nil
	}

	return children
}

func (d *decoder) str(o object, key string) string {
	var s string
	_ = json.Unmarshal(o[key], &s) // absent strings are empty

	return s
}

func (d *decoder) flag(o object, key string) bool {
	var b bool
	_ = json.Unmarshal(o[key], &b) // absent flags are false

	return b
}

func isObject(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)

	return len(raw) > 0 && raw[0] == '{'
}

func isArray(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)

	return len(raw) > 0 && raw[0] == '['
}

// ----------------------------------------------------------------------------
// Program

func (d *decoder) program(o object) *tsast.File {
	f := &tsast.File{
		FileStart: d.pos(0),
		FileEnd:   d.pos(len(d.src)),
		Name:      d.file.Name(),
	}

	for _, s := range d.list(o, "body") {
		if stmt := d.stmt(s); stmt != nil {
			f.Stmts = append(f.Stmts, stmt)
		}
	}

	for _, c := range d.list(o, "comments") {
		if comment := d.comment(c); comment != nil {
			f.Comments = append(f.Comments, comment)
		}
	}

	slices.SortStableFunc(f.Comments, func(a, b *tsast.Comment) int { return cmp.Compare(a.Slash, b.Slash) })

	return f
}

func (d *decoder) comment(o object) *tsast.Comment {
	if o == nil {
		return nil
	}

	from, _ := d.span(o)
	value := d.str(o, "value")

	switch o.typ() {
	case "Line":
		return &tsast.Comment{Slash: d.pos(from), Text: "//" + value}

	case "Block":
		return &tsast.Comment{Slash: d.pos(from), Text: "/*" + value + "*/"}

	default: // hashbang
		return nil
	}
}

// ----------------------------------------------------------------------------
// Nodes

// stmt decodes a node in statement position.
func (d *decoder) stmt(o object) tsast.Stmt {
	switch n := d.node(o).(type) {
	case nil:
		return nil

	case tsast.Stmt:
		return n

	default:
		return &tsast.ExprStmt{X: n.(tsast.Expr)}
	}
}

// expr decodes a node in expression position.
func (d *decoder) expr(o object) tsast.Expr {
	switch n := d.node(o).(type) {
	case nil:
		return nil

	case tsast.Expr:
		return n

	default:
		return &tsast.Unknown{Type: o.typ(), From: n.Pos(), To: n.End(), Children: []tsast.Node{n}}
	}
}

func (d *decoder) exprs(o object, key string) []tsast.Expr {
	var list []tsast.Expr
	for _, c := range d.list(o, key) {
		list = append(list, d.expr(c)) // keeps holes
	}

	return list
}

func (d *decoder) ident(o object) *tsast.Ident {
	if o == nil {
		return nil
	}

	switch o.typ() {
	case "Identifier":
		from, _ := d.span(o)

		return &tsast.Ident{NamePos: d.pos(from), Name: d.str(o, "name")}

	case "PrivateIdentifier":
		from, _ := d.span(o)

		return &tsast.Ident{NamePos: d.pos(from), Name: "#" + d.str(o, "name")}

	default:
		return nil
	}
}

func (d *decoder) block(o object) *tsast.BlockStmt {
	if o == nil {
		return nil
	}

	from, to := d.span(o)
	b := &tsast.BlockStmt{Lbrace: d.pos(from), Rbrace: d.pos(max(from, to-1))}

	for _, s := range d.list(o, "body") {
		if stmt := d.stmt(s); stmt != nil {
			b.List = append(b.List, stmt)
		}
	}

	return b
}

// node decodes any ESTree node.
func (d *decoder) node(o object) tsast.Node {
	if o == nil || d.err != nil {
		return nil
	}

	t := o.typ()
	if t == "" {
		d.fail(fmt.Errorf("%w: node without type", ErrInvalidNode))

		return nil
	}

	from, to := d.span(o)

	switch t {
	// Expressions
	case "Identifier", "PrivateIdentifier":
		return d.ident(o)

	case "Literal":
		return d.literal(o, from, to)

	case "TemplateLiteral":
		return d.template(o, from, to)

	case "MemberExpression":
		return d.member(o, to)

	case "ChainExpression", "TSAsExpression", "TSSatisfiesExpression",
		"TSNonNullExpression", "TSTypeAssertion", "TSInstantiationExpression":
		return d.expr(d.object(o, "expression"))

	case "CallExpression", "NewExpression":
		return d.call(o, t == "NewExpression", from, to)

	case "UnaryExpression", "UpdateExpression":
		op := d.str(o, "operator")
		x := &tsast.UnaryExpr{OpPos: d.pos(from), Op: op, X: d.expr(d.object(o, "argument"))}

		if t == "UpdateExpression" && !d.flag(o, "prefix") {
			x.OpPos, x.Postfix = d.pos(max(from, to-len(op))), true
		}

		return x

	case "BinaryExpression", "LogicalExpression":
		x := &tsast.BinaryExpr{X: d.expr(d.object(o, "left")), Op: d.str(o, "operator")}
		x.Y = d.expr(d.object(o, "right"))

		if x.X != nil && x.Y != nil {
			x.OpPos = d.find(d.offset(x.X.End()), x.Op)

			return x
		}

	case "AssignmentExpression":
		x := &tsast.AssignExpr{Lhs: d.expr(d.object(o, "left")), Op: d.str(o, "operator")}
		x.Rhs = d.expr(d.object(o, "right"))

		if x.Lhs != nil && x.Rhs != nil {
			x.OpPos = d.find(d.offset(x.Lhs.End()), x.Op)

			return x
		}

	case "ConditionalExpression":
		x := &tsast.CondExpr{
			Cond: d.expr(d.object(o, "test")),
			Then: d.expr(d.object(o, "consequent")),
			Else: d.expr(d.object(o, "alternate")),
		}

		if x.Cond != nil && x.Then != nil && x.Else != nil {
			return x
		}

	case "ArrayExpression", "ArrayPattern":
		return &tsast.ArrayLit{Lbrack: d.pos(from), Elts: d.exprs(o, "elements"), Rbrack: d.pos(max(from, to-1))}

	case "ObjectExpression", "ObjectPattern":
		return &tsast.ObjectLit{Lbrace: d.pos(from), Props: d.exprs(o, "properties"), Rbrace: d.pos(max(from, to-1))}

	case "Property":
		x := &tsast.Property{
			Computed:  d.flag(o, "computed"),
			Shorthand: d.flag(o, "shorthand"),
		}
		x.Key = d.expr(d.object(o, "key"))
		x.Value = d.expr(d.object(o, "value"))

		if x.Key != nil {
			return x
		}

	case "SpreadElement", "RestElement":
		x := &tsast.SpreadElement{Ellipsis: d.pos(from), X: d.expr(d.object(o, "argument"))}
		if x.X != nil {
			return x
		}

	case "FunctionExpression", "ArrowFunctionExpression":
		x := &tsast.FuncLit{
			Func:   d.pos(from),
			Name:   d.ident(d.object(o, "id")),
			Params: d.exprs(o, "params"),
			Arrow:  t == "ArrowFunctionExpression",
		}

		if body := d.object(o, "body"); body != nil && body.typ() == "BlockStatement" {
			x.Body = d.block(body)
		} else if body := d.expr(body); body != nil {
			x.Body = body
		}

		if x.Body != nil {
			return x
		}

	// Statements and declarations
	case "TSEnumDeclaration":
		return d.enum(o, token.NoPos, from, to)

	case "ExportNamedDeclaration":
		return d.exportNamed(o, from, to)

	case "ExportDefaultDeclaration":
		decl := d.object(o, "declaration")
		if strings.HasSuffix(decl.typ(), "Declaration") {
			return &tsast.ExportNamed{Export: d.pos(from), Decl: d.stmt(decl)}
		}

		if x := d.expr(decl); x != nil {
			return &tsast.ExportDefault{Export: d.pos(from), X: x}
		}

	case "TSExportAssignment":
		if x := d.expr(d.object(o, "expression")); x != nil {
			return &tsast.ExportDefault{Export: d.pos(from), X: x, Assign: true}
		}

	case "ExpressionStatement":
		if x := d.expr(d.object(o, "expression")); x != nil {
			return &tsast.ExprStmt{X: x}
		}

	case "VariableDeclaration":
		kind := d.str(o, "kind")
		s := &tsast.VarDecl{KindPos: d.find(from, kind), Kind: kind}

		for _, spec := range d.list(o, "declarations") {
			if spec == nil {
				continue
			}

			if name := d.expr(d.object(spec, "id")); name != nil {
				s.Specs = append(s.Specs, &tsast.VarSpec{Name: name, Init: d.expr(d.object(spec, "init"))})
			}
		}

		if s.KindPos.IsValid() {
			return s
		}

	case "FunctionDeclaration", "TSDeclareFunction":
		s := &tsast.FuncDecl{
			Func:   d.pos(from),
			Name:   d.ident(d.object(o, "id")),
			Params: d.exprs(o, "params"),
			Body:   d.block(d.object(o, "body")),
		}

		if s.Name != nil || s.Body != nil {
			return s
		}

	case "BlockStatement", "StaticBlock":
		return d.block(o)

	case "ReturnStatement":
		return &tsast.ReturnStmt{Return: d.pos(from), Result: d.expr(d.object(o, "argument"))}

	case "IfStatement":
		s := &tsast.IfStmt{
			If:   d.pos(from),
			Cond: d.expr(d.object(o, "test")),
			Then: d.stmt(d.object(o, "consequent")),
			Else: d.stmt(d.object(o, "alternate")),
		}

		if s.Cond != nil && s.Then != nil {
			return s
		}

	case "TSModuleDeclaration":
		name := d.ident(d.object(o, "id"))
		body := d.object(o, "body")

		if name != nil && body.typ() == "TSModuleBlock" {
			keyword := d.find(from, d.str(o, "kind"))
			if !keyword.IsValid() || keyword > name.Pos() {
				keyword = d.pos(from)
			}

			return &tsast.ModuleDecl{Keyword: keyword, Name: name, Body: d.block(body)}
		}

		if body != nil {
			return &tsast.Unknown{Type: t, From: d.pos(from), To: d.pos(to), Children: []tsast.Node{d.node(body)}}
		}

		return d.opaque(t, from, to)
	}

	if d.err != nil {
		return nil
	}

	if opaque(t) {
		return d.opaque(t, from, to)
	}

	return d.unknown(o, t, from, to)
}

// ----------------------------------------------------------------------------
// Expressions

func (d *decoder) literal(o object, from, to int) *tsast.BasicLit {
	x := &tsast.BasicLit{ValuePos: d.pos(from), ValueEnd: d.pos(to), Value: string(d.src[from:to])}

	value := bytes.TrimSpace(o["value"])

	switch {
	case isObject(o["regex"]):
		x.Kind = tsast.RegExp

	case d.str(o, "bigint") != "":
		x.Kind = tsast.BigInt

	case len(value) > 0 && value[0] == '"':
		x.Kind = tsast.String
		x.Value = d.str(o, "value")

	case bytes.Equal(value, []byte("true")), bytes.Equal(value, []byte("false")):
		x.Kind = tsast.Boolean

	case bytes.Equal(value, []byte("null")):
		x.Kind = tsast.Null

	default:
		x.Kind = tsast.Number
	}

	return x
}

func (d *decoder) template(o object, from, to int) *tsast.TemplateLit {
	x := &tsast.TemplateLit{Lquote: d.pos(from), Rquote: d.pos(max(from, to-1))}

	for _, q := range d.list(o, "quasis") {
		var value struct {
			Raw    string  `json:"raw"`
			Cooked *string `json:"cooked"`
		}

		_ = json.Unmarshal(q["value"], &value) // missing values are empty

		if value.Cooked != nil {
			x.Quasis = append(x.Quasis, *value.Cooked)
		} else {
			x.Quasis = append(x.Quasis, value.Raw)
		}
	}

	x.Exprs = d.exprs(o, "expressions")

	return x
}

func (d *decoder) member(o object, to int) tsast.Expr {
	base, property := d.expr(d.object(o, "object")), d.object(o, "property")
	if base == nil || property == nil {
		d.fail(fmt.Errorf("%w: incomplete MemberExpression", ErrInvalidNode))

		return nil
	}

	optional := d.flag(o, "optional")

	if !d.flag(o, "computed") {
		sel := d.ident(property)
		if sel == nil {
			d.fail(fmt.Errorf("%w: MemberExpression property is %s", ErrInvalidNode, property.typ()))

			return nil
		}

		return &tsast.MemberExpr{X: base, Sel: sel, Optional: optional}
	}

	index := d.expr(property)
	if index == nil {
		return nil
	}

	return &tsast.IndexExpr{
		X:        base,
		Lbrack:   d.find(d.offset(base.End()), "["),
		Index:    index,
		Rbrack:   d.pos(max(0, to-1)),
		Optional: optional,
	}
}

func (d *decoder) call(o object, isNew bool, from, to int) tsast.Expr {
	fun := d.expr(d.object(o, "callee"))
	if fun == nil {
		return nil
	}

	x := &tsast.CallExpr{Fun: fun, Args: d.exprs(o, "arguments")}

	if isNew {
		x.New = d.pos(from)
	}

	if end := d.offset(fun.End()); to > end {
		x.Lparen, x.Rparen = d.find(end, "("), d.pos(to-1)
	}

	return x
}

// ----------------------------------------------------------------------------
// Declarations

func (d *decoder) enum(o object, export token.Pos, from, to int) tsast.Stmt {
	name := d.ident(d.object(o, "id"))
	if name == nil {
		d.fail(fmt.Errorf("%w: TSEnumDeclaration without name", ErrInvalidNode))

		return nil
	}

	decl := &tsast.EnumDecl{
		Export: export,
		Enum:   d.find(from, "enum"),
		Name:   name,
		Rbrace: d.pos(max(from, to-1)),
	}

	if !decl.Enum.IsValid() || decl.Enum > name.Pos() {
		decl.Enum = d.pos(from)
	}

	if d.flag(o, "declare") {
		decl.Declare = d.find(from, "declare")
	}

	if d.flag(o, "const") {
		if decl.Const = d.find(from, "const"); !decl.Const.IsValid() || decl.Const > decl.Enum {
			decl.Const = decl.Enum // keep the modifier flag
		}
	}

	members := d.list(o, "members")
	if members == nil {
		members = d.list(d.object(o, "body"), "members")
	}

	decl.Lbrace = d.find(d.offset(name.End()), "{")

	for _, m := range members {
		if m == nil {
			continue
		}

		member := &tsast.EnumMember{
			Name:     d.expr(d.object(m, "id")),
			Computed: d.flag(m, "computed"),
			Init:     d.expr(d.object(m, "initializer")),
		}

		if member.Name == nil {
			d.fail(fmt.Errorf("%w: TSEnumMember without name", ErrInvalidNode))

			return nil
		}

		decl.Members = append(decl.Members, member)
	}

	return decl
}

func (d *decoder) exportNamed(o object, from, to int) tsast.Stmt {
	decl := d.object(o, "declaration")
	if decl.typ() == "TSEnumDeclaration" {
		declFrom, declTo := d.span(decl)

		return d.enum(decl, d.pos(from), declFrom, declTo)
	}

	s := &tsast.ExportNamed{Export: d.pos(from), Decl: d.stmt(decl)}

	for _, spec := range d.list(o, "specifiers") {
		if spec == nil {
			continue
		}

		local, exported := d.ident(d.object(spec, "local")), d.ident(d.object(spec, "exported"))
		if local == nil {
			continue // string module export names
		}

		if exported == nil || exported.NamePos == local.NamePos {
			exported = local
		}

		s.Specs = append(s.Specs, &tsast.ExportSpec{Local: local, Exported: exported})
	}

	if s.Decl == nil {
		s.Rbrace = d.pos(max(from, to-1))
		if i := bytes.LastIndexByte(d.src[from:to], '}'); i >= 0 {
			s.Rbrace = d.pos(from + i)
		}
	}

	return s
}

// ----------------------------------------------------------------------------
// Everything else

// unknown decodes a node the model does not name, keeping all child nodes
// that can hold value references.
func (d *decoder) unknown(o object, t string, from, to int) *tsast.Unknown {
	x := &tsast.Unknown{Type: t, From: d.pos(from), To: d.pos(to)}

	for _, key := range slices.Sorted(maps.Keys(o)) {
		if skipField(o, t, key) {
			continue
		}

		raw := o[key]

		switch {
		case isObject(raw):
			if n := d.node(d.object(o, key)); n != nil {
				x.Children = append(x.Children, n)
			}

		case isArray(raw):
			for _, c := range d.list(o, key) {
				if n := d.node(c); n != nil {
					x.Children = append(x.Children, n)
				}
			}
		}
	}

	slices.SortStableFunc(x.Children, func(a, b tsast.Node) int { return cmp.Compare(a.Pos(), b.Pos()) })

	return x
}

func (d *decoder) opaque(t string, from, to int) *tsast.Unknown {
	return &tsast.Unknown{Type: t, From: d.pos(from), To: d.pos(to)}
}

// skipField reports whether a field of an unknown node holds no value references.
func skipField(o object, t, key string) bool {
	switch key {
	case "type", "range", "loc", "parent", "comments", "tokens",
		"typeAnnotation", "returnType", "typeParameters", "typeArguments",
		"superTypeArguments", "superTypeParameters", "implements":
		return true

	case "key": // class members
		var computed bool
		_ = json.Unmarshal(o["computed"], &computed) // absent means not computed

		return !computed

	case "label", "imported", "exported":
		return true

	case "meta", "property":
		return t == "MetaProperty"

	default:
		return false
	}
}

// valueTS holds the TypeScript-specific node types that can contain value references.
var valueTS = map[string]bool{
	"TSEnumDeclaration":             true,
	"TSEnumBody":                    true,
	"TSEnumMember":                  true,
	"TSModuleDeclaration":           true,
	"TSModuleBlock":                 true,
	"TSExportAssignment":            true,
	"TSAsExpression":                true,
	"TSSatisfiesExpression":         true,
	"TSNonNullExpression":           true,
	"TSTypeAssertion":               true,
	"TSInstantiationExpression":     true,
	"TSParameterProperty":           true,
	"TSImportEqualsDeclaration":     true,
	"TSExternalModuleReference":     true,
	"TSQualifiedName":               true,
	"TSDeclareFunction":             true,
	"TSAbstractMethodDefinition":    true,
	"TSAbstractPropertyDefinition":  true,
	"TSAbstractAccessorProperty":    true,
	"TSEmptyBodyFunctionExpression": true,
}

// opaque reports whether a node type is type-only or declares names only.
// References inside such nodes are not value usages.
func opaque(t string) bool {
	switch t {
	case "ImportDeclaration", "ExportAllDeclaration", "MetaProperty":
		return true

	default:
		return strings.HasPrefix(t, "TS") && !valueTS[t]
	}
}
