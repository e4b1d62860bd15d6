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


package treesitter

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"iter"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"fillmore-labs.com/constenum/tsast"
)

// ErrSyntax is returned for source text the grammar does not accept.
var ErrSyntax = errors.New("syntax error")

// Parse parses TypeScript source text into a *[tsast.File].
// The file is registered in fset under filename.
func Parse(ctx context.Context, fset *token.FileSet, filename string, src []byte) (*tsast.File, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(typescript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("treesitter: %w", err)
	}
	defer tree.Close()

	file := fset.AddFile(filename, -1, len(src))
	file.SetLinesForContent(src)

	c := converter{file: file, src: src}

	root := tree.RootNode()
	if root.HasError() {
		return nil, c.syntaxError(root)
	}

	return c.program(root), nil
}

// converter holds the state of a single [Parse] call.
type converter struct {
	file     *token.File
	src      []byte
	comments []*tsast.Comment
}

func (c *converter) pos(n *sitter.Node) token.Pos { return c.file.Pos(int(n.StartByte())) }

// last returns the position of the final byte of n, e.g. a closing bracket.
func (c *converter) last(n *sitter.Node) token.Pos {
	return c.file.Pos(max(int(n.StartByte()), int(n.EndByte())-1))
}

func (c *converter) text(n *sitter.Node) string { return n.Content(c.src) }

func (c *converter) syntaxError(root *sitter.Node) error {
	n := firstError(root)
	if n == nil {
		return fmt.Errorf("treesitter: %s: %w", c.file.Name(), ErrSyntax)
	}

	posn := c.file.Position(c.pos(n))

	if n.IsMissing() {
		return fmt.Errorf("treesitter: %s: %w: missing %q", posn, ErrSyntax, n.Type())
	}

	text, _, _ := strings.Cut(c.text(n), "\n")

	return fmt.Errorf("treesitter: %s: %w: unexpected %q", posn, ErrSyntax, text)
}

// firstError returns the first erroneous or missing node below n in source order.
func firstError(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}

	if !n.HasError() {
		return nil
	}

	for i := range int(n.ChildCount()) {
		if child := n.Child(i); child != nil {
			if e := firstError(child); e != nil {
				return e
			}
		}
	}

	return nil
}

// children yields the children of n with their field names, skipping comments.
func children(n *sitter.Node) iter.Seq2[string, *sitter.Node] {
	return func(yield func(string, *sitter.Node) bool) {
		for i := range int(n.ChildCount()) {
			child := n.Child(i)
			if child == nil || child.Type() == "comment" {
				continue
			}

			if !yield(n.FieldNameForChild(i), child) {
				return
			}
		}
	}
}

// value returns the first named child of n that is not type syntax, or nil.
func value(n *sitter.Node) *sitter.Node {
	if n == nil {
		return nil
	}

	for _, child := range children(n) {
		if child.IsNamed() && !opaque[child.Type()] {
			return child
		}
	}

	return nil
}

// optional reports whether a member access or call is part of an optional chain.
func optional(n *sitter.Node) bool {
	for _, child := range children(n) {
		if t := child.Type(); t == "optional_chain" || t == "?." {
			return true
		}
	}

	return false
}

// ----------------------------------------------------------------------------
// Program

func (c *converter) program(root *sitter.Node) *tsast.File {
	f := &tsast.File{
		FileStart: c.file.Pos(0),
		FileEnd:   c.file.Pos(len(c.src)),
		Name:      c.file.Name(),
		Stmts:     c.stmts(root),
	}

	c.collectComments(root)
	f.Comments = c.comments

	return f
}

// collectComments appends all comments below n in source order.
func (c *converter) collectComments(n *sitter.Node) {
	if n.Type() == "comment" {
		c.comments = append(c.comments, &tsast.Comment{Slash: c.pos(n), Text: c.text(n)})

		return
	}

	for i := range int(n.ChildCount()) {
		if child := n.Child(i); child != nil {
			c.collectComments(child)
		}
	}
}

// ----------------------------------------------------------------------------
// Nodes

func (c *converter) stmts(n *sitter.Node) []tsast.Stmt {
	var list []tsast.Stmt

	for _, child := range children(n) {
		if !child.IsNamed() {
			continue
		}

		if s := c.stmt(child); s != nil {
			list = append(list, s)
		}
	}

	return list
}

// stmt converts a node in statement position.
func (c *converter) stmt(n *sitter.Node) tsast.Stmt {
	switch x := c.node(n).(type) {
	case nil:
		return nil

	case tsast.Stmt:
		return x

	default:
		return &tsast.ExprStmt{X: x.(tsast.Expr)}
	}
}

// expr converts a node in expression position.
func (c *converter) expr(n *sitter.Node) tsast.Expr {
	switch x := c.node(n).(type) {
	case nil:
		return nil

	case tsast.Expr:
		return x

	default:
		return &tsast.Unknown{Type: n.Type(), From: x.Pos(), To: x.End(), Children: []tsast.Node{x}}
	}
}

// exprs converts the named children of n.
func (c *converter) exprs(n *sitter.Node) []tsast.Expr {
	if n == nil {
		return nil
	}

	var list []tsast.Expr

	for _, child := range children(n) {
		if !child.IsNamed() {
			continue
		}

		if x := c.expr(child); x != nil {
			list = append(list, x)
		}
	}

	return list
}

func (c *converter) ident(n *sitter.Node) *tsast.Ident {
	if n == nil {
		return nil
	}

	return &tsast.Ident{NamePos: c.pos(n), Name: c.text(n)}
}

func (c *converter) block(n *sitter.Node) *tsast.BlockStmt {
	if n == nil {
		return nil
	}

	return &tsast.BlockStmt{Lbrace: c.pos(n), List: c.stmts(n), Rbrace: c.last(n)}
}

// node converts any named node.
func (c *converter) node(n *sitter.Node) tsast.Node {
	if n == nil || !n.IsNamed() {
		return nil
	}

	switch n.Type() {
	// Expressions
	case "identifier", "undefined", "private_property_identifier":
		return c.ident(n)

	case "property_identifier", "type_identifier", "statement_identifier",
		"comment", "hash_bang_line":
		return nil // names, not references

	case "shorthand_property_identifier", "shorthand_property_identifier_pattern":
		return c.shorthand(n)

	case "number", "string", "regex", "true", "false", "null":
		return c.literal(n)

	case "template_string":
		return c.template(n)

	case "computed_property_name":
		return c.node(value(n))

	case "parenthesized_expression":
		if x := c.expr(value(n)); x != nil {
			return &tsast.ParenExpr{Lparen: c.pos(n), X: x, Rparen: c.last(n)}
		}

	case "as_expression", "satisfies_expression", "non_null_expression",
		"type_assertion", "instantiation_expression":
		return c.node(value(n))

	case "member_expression":
		return c.member(n)

	case "subscript_expression":
		return c.subscript(n)

	case "call_expression":
		return c.call(n, false)

	case "new_expression":
		return c.call(n, true)

	case "unary_expression", "update_expression":
		return c.unary(n)

	case "binary_expression":
		op := n.ChildByFieldName("operator")
		x := &tsast.BinaryExpr{X: c.expr(n.ChildByFieldName("left")), Y: c.expr(n.ChildByFieldName("right"))}

		if op != nil && x.X != nil && x.Y != nil {
			x.OpPos, x.Op = c.pos(op), c.text(op)

			return x
		}

	case "assignment_expression", "augmented_assignment_expression":
		return c.assign(n)

	case "ternary_expression":
		x := &tsast.CondExpr{
			Cond: c.expr(n.ChildByFieldName("condition")),
			Then: c.expr(n.ChildByFieldName("consequence")),
			Else: c.expr(n.ChildByFieldName("alternative")),
		}

		if x.Cond != nil && x.Then != nil && x.Else != nil {
			return x
		}

	case "array", "array_pattern":
		return c.array(n)

	case "object", "object_pattern":
		return &tsast.ObjectLit{Lbrace: c.pos(n), Props: c.exprs(n), Rbrace: c.last(n)}

	case "pair", "pair_pattern":
		return c.pair(n)

	case "spread_element", "rest_pattern":
		if x := c.expr(value(n)); x != nil {
			return &tsast.SpreadElement{Ellipsis: c.pos(n), X: x}
		}

	case "function_expression", "function", "generator_function", "arrow_function":
		return c.funcLit(n)

	case "required_parameter", "optional_parameter":
		return c.param(n)

	// Statements and declarations
	case "enum_declaration":
		return c.enum(n, token.NoPos, token.NoPos)

	case "ambient_declaration":
		return c.ambient(n, token.NoPos)

	case "export_statement":
		return c.export(n)

	case "expression_statement":
		switch x := c.node(value(n)).(type) {
		case tsast.Expr:
			return &tsast.ExprStmt{X: x}

		case tsast.Stmt: // namespaces parse as expressions
			return x
		}

	case "lexical_declaration", "variable_declaration":
		return c.varDecl(n)

	case "function_declaration", "generator_function_declaration", "function_signature":
		s := &tsast.FuncDecl{
			Func:   c.pos(n),
			Name:   c.ident(n.ChildByFieldName("name")),
			Params: c.exprs(n.ChildByFieldName("parameters")),
			Body:   c.block(n.ChildByFieldName("body")),
		}

		if s.Name != nil || s.Body != nil {
			return s
		}

	case "statement_block":
		return c.block(n)

	case "return_statement":
		return &tsast.ReturnStmt{Return: c.pos(n), Result: c.expr(value(n))}

	case "if_statement":
		return c.ifStmt(n)

	case "internal_module", "module":
		return c.module(n)
	}

	if opaque[n.Type()] {
		return &tsast.Unknown{Type: n.Type(), From: c.pos(n), To: c.file.Pos(int(n.EndByte()))}
	}

	return c.unknown(n)
}

// ----------------------------------------------------------------------------
// Expressions

func (c *converter) literal(n *sitter.Node) *tsast.BasicLit {
	text := c.text(n)
	x := &tsast.BasicLit{ValuePos: c.pos(n), ValueEnd: c.file.Pos(int(n.EndByte())), Value: text}

	switch n.Type() {
	case "number":
		x.Kind = tsast.Number
		if strings.HasSuffix(text, "n") {
			x.Kind = tsast.BigInt
		}

	case "string":
		x.Kind = tsast.String
		if len(text) >= 2 {
			x.Value = cook(text[1 : len(text)-1])
		}

	case "regex":
		x.Kind = tsast.RegExp

	case "true", "false":
		x.Kind = tsast.Boolean

	default:
		x.Kind = tsast.Null
	}

	return x
}

// template splits a template string at its substitutions.
func (c *converter) template(n *sitter.Node) *tsast.TemplateLit {
	x := &tsast.TemplateLit{Lquote: c.pos(n), Rquote: c.last(n)}

	start := int(n.StartByte()) + 1

	for _, child := range children(n) {
		if child.Type() != "template_substitution" {
			continue
		}

		x.Quasis = append(x.Quasis, cook(string(c.src[start:int(child.StartByte())])))
		x.Exprs = append(x.Exprs, c.expr(value(child)))
		start = int(child.EndByte())
	}

	x.Quasis = append(x.Quasis, cook(string(c.src[start:max(start, int(n.EndByte())-1)])))

	return x
}

func (c *converter) member(n *sitter.Node) tsast.Expr {
	x, property := c.expr(n.ChildByFieldName("object")), n.ChildByFieldName("property")
	if x == nil || property == nil {
		return c.unknown(n)
	}

	return &tsast.MemberExpr{X: x, Sel: c.ident(property), Optional: optional(n)}
}

func (c *converter) subscript(n *sitter.Node) tsast.Expr {
	x, index := c.expr(n.ChildByFieldName("object")), c.expr(n.ChildByFieldName("index"))
	if x == nil || index == nil {
		return c.unknown(n)
	}

	s := &tsast.IndexExpr{X: x, Index: index, Rbrack: c.last(n), Optional: optional(n)}

	for _, child := range children(n) {
		if child.Type() == "[" {
			s.Lbrack = c.pos(child)

			break
		}
	}

	return s
}

func (c *converter) call(n *sitter.Node, isNew bool) tsast.Expr {
	field := "function"
	if isNew {
		field = "constructor"
	}

	fun, args := c.expr(n.ChildByFieldName(field)), n.ChildByFieldName("arguments")
	if fun == nil {
		return c.unknown(n)
	}

	if args != nil && args.Type() == "template_string" {
		x := c.unknown(n)
		x.Type = "tagged_template"

		return x
	}

	x := &tsast.CallExpr{Fun: fun}

	if isNew {
		x.New = c.pos(n)
	}

	if args != nil {
		x.Lparen, x.Args, x.Rparen = c.pos(args), c.exprs(args), c.last(args)
	}

	return x
}

func (c *converter) unary(n *sitter.Node) tsast.Expr {
	op, arg := n.ChildByFieldName("operator"), n.ChildByFieldName("argument")

	x := c.expr(arg)
	if op == nil || x == nil {
		return c.unknown(n)
	}

	return &tsast.UnaryExpr{
		OpPos:   c.pos(op),
		Op:      c.text(op),
		X:       x,
		Postfix: op.StartByte() > arg.StartByte(),
	}
}

func (c *converter) assign(n *sitter.Node) tsast.Expr {
	x := &tsast.AssignExpr{Lhs: c.expr(n.ChildByFieldName("left")), Rhs: c.expr(n.ChildByFieldName("right"))}
	if x.Lhs == nil || x.Rhs == nil {
		return c.unknown(n)
	}

	op := n.ChildByFieldName("operator")
	if op == nil {
		for _, child := range children(n) {
			if child.Type() == "=" {
				op = child

				break
			}
		}
	}

	if op != nil {
		x.OpPos, x.Op = c.pos(op), c.text(op)
	}

	return x
}

// array converts array literals and patterns. Elisions become nil elements.
func (c *converter) array(n *sitter.Node) *tsast.ArrayLit {
	x := &tsast.ArrayLit{Lbrack: c.pos(n), Rbrack: c.last(n)}

	hole := true

	for _, child := range children(n) {
		switch {
		case child.Type() == ",":
			if hole {
				x.Elts = append(x.Elts, nil)
			}

			hole = true

		case child.IsNamed():
			x.Elts = append(x.Elts, c.expr(child))
			hole = false
		}
	}

	return x
}

func (c *converter) pair(n *sitter.Node) tsast.Expr {
	key := n.ChildByFieldName("key")
	if key == nil {
		return c.unknown(n)
	}

	p := &tsast.Property{Value: c.expr(n.ChildByFieldName("value"))}

	switch key.Type() {
	case "computed_property_name":
		p.Key, p.Computed = c.expr(value(key)), true

	case "property_identifier", "private_property_identifier":
		p.Key = c.ident(key)

	default:
		p.Key = c.expr(key)
	}

	if p.Key == nil {
		return c.unknown(n)
	}

	return p
}

// shorthand converts { A } to a property whose key and value are distinct identifiers.
func (c *converter) shorthand(n *sitter.Node) *tsast.Property {
	return &tsast.Property{Key: c.ident(n), Value: c.ident(n), Shorthand: true}
}

func (c *converter) funcLit(n *sitter.Node) tsast.Expr {
	x := &tsast.FuncLit{
		Func:  c.pos(n),
		Name:  c.ident(n.ChildByFieldName("name")),
		Arrow: n.Type() == "arrow_function",
	}

	if p := c.expr(n.ChildByFieldName("parameter")); p != nil {
		x.Params = []tsast.Expr{p}
	} else {
		x.Params = c.exprs(n.ChildByFieldName("parameters"))
	}

	switch body := n.ChildByFieldName("body"); {
	case body == nil:
		return c.unknown(n)

	case body.Type() == "statement_block":
		x.Body = c.block(body)

	default:
		b := c.expr(body)
		if b == nil {
			return c.unknown(n)
		}

		x.Body = b
	}

	return x
}

// param converts a parameter to its binding pattern. Defaults are kept as
// an assignment pattern.
func (c *converter) param(n *sitter.Node) tsast.Expr {
	pattern := c.expr(n.ChildByFieldName("pattern"))
	if pattern == nil {
		return c.unknown(n)
	}

	if init := c.expr(n.ChildByFieldName("value")); init != nil {
		return &tsast.Unknown{
			Type:     "assignment_pattern",
			From:     c.pos(n),
			To:       c.file.Pos(int(n.EndByte())),
			Children: []tsast.Node{pattern, init},
		}
	}

	return pattern
}

// ----------------------------------------------------------------------------
// Statements and declarations

// enum converts an enum declaration. Modifiers outside of n are passed in.
func (c *converter) enum(n *sitter.Node, export, declare token.Pos) tsast.Stmt {
	name, body := n.ChildByFieldName("name"), n.ChildByFieldName("body")
	if name == nil || body == nil {
		return c.unknown(n)
	}

	decl := &tsast.EnumDecl{
		Export:  export,
		Declare: declare,
		Enum:    c.pos(n),
		Name:    c.ident(name),
		Lbrace:  c.pos(body),
		Rbrace:  c.last(body),
	}

	for _, child := range children(n) {
		switch child.Type() {
		case "const":
			decl.Const = c.pos(child)

		case "enum":
			decl.Enum = c.pos(child)
		}
	}

	for _, m := range children(body) {
		if !m.IsNamed() {
			continue
		}

		var member *tsast.EnumMember
		if m.Type() == "enum_assignment" {
			member = c.enumMember(m.ChildByFieldName("name"))
			if member != nil {
				member.Init = c.expr(m.ChildByFieldName("value"))
			}
		} else {
			member = c.enumMember(m)
		}

		if member != nil {
			decl.Members = append(decl.Members, member)
		}
	}

	return decl
}

func (c *converter) enumMember(n *sitter.Node) *tsast.EnumMember {
	if n == nil {
		return nil
	}

	var member tsast.EnumMember

	switch n.Type() {
	case "computed_property_name":
		member.Name, member.Computed = c.expr(value(n)), true

	case "property_identifier", "identifier", "private_property_identifier":
		member.Name = c.ident(n)

	default:
		member.Name = c.expr(n)
	}

	if member.Name == nil {
		return nil
	}

	return &member
}

// ambient converts a declare declaration.
func (c *converter) ambient(n *sitter.Node, export token.Pos) tsast.Stmt {
	declare, inner := token.NoPos, (*sitter.Node)(nil)

	for _, child := range children(n) {
		switch {
		case child.Type() == "declare":
			declare = c.pos(child)

		case child.IsNamed() && inner == nil:
			inner = child
		}
	}

	switch {
	case inner == nil:
		return c.unknown(n)

	case inner.Type() == "enum_declaration":
		return c.enum(inner, export, declare)

	default:
		return c.stmt(inner)
	}
}

func (c *converter) export(n *sitter.Node) tsast.Stmt {
	export, assign := c.pos(n), false

	var clause *sitter.Node

	for _, child := range children(n) {
		switch child.Type() {
		case "export":
			export = c.pos(child)

		case "=":
			assign = true

		case "*", "namespace_export", "type":
			return &tsast.Unknown{Type: "export_all", From: c.pos(n), To: c.file.Pos(int(n.EndByte()))}

		case "export_clause":
			clause = child
		}
	}

	if decl := n.ChildByFieldName("declaration"); decl != nil {
		switch decl.Type() {
		case "enum_declaration":
			return c.enum(decl, export, token.NoPos)

		case "ambient_declaration":
			if s, ok := c.ambient(decl, export).(*tsast.EnumDecl); ok {
				return s
			}
		}

		return &tsast.ExportNamed{Export: export, Decl: c.stmt(decl)}
	}

	if x := n.ChildByFieldName("value"); x != nil || assign {
		if x == nil {
			x = value(n)
		}

		if v := c.expr(x); v != nil {
			return &tsast.ExportDefault{Export: export, X: v, Assign: assign}
		}
	}

	if clause == nil {
		return c.unknown(n)
	}

	s := &tsast.ExportNamed{Export: export, Rbrace: c.last(clause)}

	for _, spec := range children(clause) {
		if spec.Type() != "export_specifier" {
			continue
		}

		local := c.exportName(spec.ChildByFieldName("name"))
		if local == nil {
			continue // string module export names
		}

		exported := c.exportName(spec.ChildByFieldName("alias"))
		if exported == nil {
			exported = local
		}

		s.Specs = append(s.Specs, &tsast.ExportSpec{Local: local, Exported: exported})
	}

	return s
}

func (c *converter) exportName(n *sitter.Node) *tsast.Ident {
	if n == nil || n.Type() == "string" {
		return nil
	}

	return c.ident(n)
}

func (c *converter) varDecl(n *sitter.Node) tsast.Stmt {
	s := &tsast.VarDecl{KindPos: c.pos(n)}

	for _, child := range children(n) {
		switch {
		case !child.IsNamed() && s.Kind == "":
			s.KindPos, s.Kind = c.pos(child), c.text(child)

		case child.Type() == "variable_declarator":
			if name := c.expr(child.ChildByFieldName("name")); name != nil {
				s.Specs = append(s.Specs, &tsast.VarSpec{Name: name, Init: c.expr(child.ChildByFieldName("value"))})
			}
		}
	}

	return s
}

func (c *converter) ifStmt(n *sitter.Node) tsast.Stmt {
	cond := n.ChildByFieldName("condition")
	if cond != nil && cond.Type() == "parenthesized_expression" {
		cond = value(cond)
	}

	s := &tsast.IfStmt{
		If:   c.pos(n),
		Cond: c.expr(cond),
		Then: c.stmt(n.ChildByFieldName("consequence")),
	}

	if alt := n.ChildByFieldName("alternative"); alt != nil {
		if alt.Type() == "else_clause" {
			alt = value(alt)
		}

		s.Else = c.stmt(alt)
	}

	if s.Cond == nil || s.Then == nil {
		return c.unknown(n)
	}

	return s
}

// module converts namespaces. Dotted and quoted names keep only their body.
func (c *converter) module(n *sitter.Node) tsast.Stmt {
	name, body := n.ChildByFieldName("name"), n.ChildByFieldName("body")
	if body == nil {
		return &tsast.Unknown{Type: n.Type(), From: c.pos(n), To: c.file.Pos(int(n.EndByte()))}
	}

	if name == nil || name.Type() != "identifier" {
		return &tsast.Unknown{
			Type:     n.Type(),
			From:     c.pos(n),
			To:       c.file.Pos(int(n.EndByte())),
			Children: []tsast.Node{c.block(body)},
		}
	}

	keyword := c.pos(n)

	for _, child := range children(n) {
		if t := child.Type(); t == "namespace" || t == "module" {
			keyword = c.pos(child)

			break
		}
	}

	return &tsast.ModuleDecl{Keyword: keyword, Name: c.ident(name), Body: c.block(body)}
}

// ----------------------------------------------------------------------------
// Everything else

// unknown converts a node the model does not name, keeping all children
// that can hold value references.
func (c *converter) unknown(n *sitter.Node) *tsast.Unknown {
	x := &tsast.Unknown{Type: n.Type(), From: c.pos(n), To: c.file.Pos(int(n.EndByte()))}

	for field, child := range children(n) {
		if !child.IsNamed() || skipField(field, child) {
			continue
		}

		if node := c.node(child); node != nil {
			x.Children = append(x.Children, node)
		}
	}

	return x
}

// skipField reports whether a field of an unknown node holds no value references.
func skipField(field string, child *sitter.Node) bool {
	switch field {
	case "type", "type_parameters", "type_arguments", "return_type", "label":
		return true

	case "name", "key", "property": // class members
		return child.Type() != "computed_property_name"

	default:
		return false
	}
}

// opaque holds the node types that are type-only or declare names only.
// References inside such nodes are not value usages.
var opaque = map[string]bool{
	"type_annotation":           true,
	"type_arguments":            true,
	"type_parameters":           true,
	"type_alias_declaration":    true,
	"interface_declaration":     true,
	"implements_clause":         true,
	"import_statement":          true,
	"index_signature":           true,
	"property_signature":        true,
	"method_signature":          true,
	"abstract_method_signature": true,
	"call_signature":            true,
	"construct_signature":       true,
	"asserts_annotation":        true,
	"type_predicate_annotation": true,
	"meta_property":             true,
}
