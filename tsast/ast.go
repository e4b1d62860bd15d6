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

package tsast

import "go/token"

// Node is implemented by all syntax tree nodes.
type Node interface {
	Pos() token.Pos // position of first character belonging to the node
	End() token.Pos // position of first character immediately after the node
}

// Expr is implemented by all expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by all statement and declaration nodes.
type Stmt interface {
	Node
	stmtNode()
}

// ----------------------------------------------------------------------------
// Comments

// A Comment node represents a single //-style or /*-style comment.
type Comment struct {
	Slash token.Pos // position of "/" starting the comment
	Text  string    // comment text, including the comment markers
}

func (c *Comment) Pos() token.Pos { return c.Slash }
func (c *Comment) End() token.Pos { return c.Slash + token.Pos(len(c.Text)) }

// ----------------------------------------------------------------------------
// Expressions

type (
	// An Ident node represents an identifier.
	Ident struct {
		NamePos token.Pos // identifier position
		Name    string    // identifier name
	}

	// A BasicLit node represents a literal of basic type.
	BasicLit struct {
		ValuePos token.Pos // literal position
		ValueEnd token.Pos // position immediately after the literal
		Kind     LitKind   // the kind of literal
		Value    string    // the cooked value for strings, the source text otherwise
	}

	// A TemplateLit node represents a template literal.
	// Quasis always has one element more than Exprs.
	TemplateLit struct {
		Lquote token.Pos // position of the opening "`"
		Quasis []string  // cooked text parts
		Exprs  []Expr    // substitutions
		Rquote token.Pos // position of the closing "`"
	}

	// A MemberExpr node represents a property access X.Sel or X?.Sel.
	MemberExpr struct {
		X        Expr   // object
		Sel      *Ident // property name
		Optional bool   // X?.Sel
	}

	// An IndexExpr node represents an element access X[Index].
	IndexExpr struct {
		X        Expr      // object
		Lbrack   token.Pos // position of "["
		Index    Expr      // index expression
		Rbrack   token.Pos // position of "]"
		Optional bool      // X?.[Index]
	}

	// A CallExpr node represents a call Fun(Args) or a construction new Fun(Args).
	CallExpr struct {
		New    token.Pos // position of "new" keyword, or token.NoPos
		Fun    Expr      // function expression
		Lparen token.Pos // position of "("
		Args   []Expr    // arguments
		Rparen token.Pos // position of ")"
	}

	// A UnaryExpr node represents a prefix or postfix unary expression.
	UnaryExpr struct {
		OpPos   token.Pos // position of Op
		Op      string    // operator
		X       Expr      // operand
		Postfix bool      // X++ or X--
	}

	// A BinaryExpr node represents a binary or logical expression.
	BinaryExpr struct {
		X     Expr      // left operand
		OpPos token.Pos // position of Op
		Op    string    // operator
		Y     Expr      // right operand
	}

	// An AssignExpr node represents an assignment.
	AssignExpr struct {
		Lhs   Expr      // assignment target
		OpPos token.Pos // position of Op
		Op    string    // "=", "+=", ...
		Rhs   Expr      // assigned value
	}

	// A CondExpr node represents a conditional expression Cond ? Then : Else.
	CondExpr struct {
		Cond Expr
		Then Expr
		Else Expr
	}

	// A ParenExpr node represents a parenthesized expression.
	ParenExpr struct {
		Lparen token.Pos // position of "("
		X      Expr      // parenthesized expression
		Rparen token.Pos // position of ")"
	}

	// An ArrayLit node represents an array literal. Holes are nil.
	ArrayLit struct {
		Lbrack token.Pos
		Elts   []Expr
		Rbrack token.Pos
	}

	// An ObjectLit node represents an object literal.
	ObjectLit struct {
		Lbrace token.Pos
		Props  []Expr // *Property or *SpreadElement
		Rbrace token.Pos
	}

	// A Property node represents a property of an object literal.
	Property struct {
		Key       Expr // *Ident, *BasicLit or, when Computed, any expression
		Value     Expr // property value; for shorthand properties an *Ident equal to Key
		Computed  bool // [Key]: Value
		Shorthand bool // { Key }
	}

	// A SpreadElement node represents ...X.
	SpreadElement struct {
		Ellipsis token.Pos
		X        Expr
	}

	// A FuncLit node represents a function expression or an arrow function.
	FuncLit struct {
		Func   token.Pos // position of "function" keyword or of the parameter list
		Name   *Ident    // optional name
		Params []Expr    // parameter patterns
		Body   Node      // *BlockStmt, or an Expr for concise arrow bodies
		Arrow  bool      // arrow function
	}
)

// LitKind is the kind of a [BasicLit].
type LitKind uint8

const (
	Number LitKind = iota + 1
	String
	BigInt
	RegExp
	Boolean
	Null
)

// ----------------------------------------------------------------------------
// Statements and declarations

type (
	// An EnumDecl node represents an enum declaration.
	EnumDecl struct {
		Export  token.Pos // position of "export" modifier, or token.NoPos
		Declare token.Pos // position of "declare" modifier, or token.NoPos
		Const   token.Pos // position of "const" modifier, or token.NoPos
		Enum    token.Pos // position of "enum" keyword
		Name    *Ident
		Lbrace  token.Pos
		Members []*EnumMember
		Rbrace  token.Pos
	}

	// An EnumMember node represents a single enum member.
	EnumMember struct {
		Name     Expr // *Ident, *BasicLit, *TemplateLit or, when Computed, any expression
		Computed bool // [Name]
		Init     Expr // initializer, or nil
	}

	// An ExprStmt node represents an expression statement.
	ExprStmt struct {
		X Expr
	}

	// A VarDecl node represents a var, let or const declaration.
	VarDecl struct {
		KindPos token.Pos // position of Kind
		Kind    string    // "var", "let" or "const"
		Specs   []*VarSpec
	}

	// A VarSpec node represents a single declarator Name = Init.
	VarSpec struct {
		Name Expr // binding pattern
		Init Expr // or nil
	}

	// A FuncDecl node represents a function declaration.
	FuncDecl struct {
		Func   token.Pos // position of "function" keyword
		Name   *Ident
		Params []Expr
		Body   *BlockStmt // nil for overloads and ambient declarations
	}

	// A BlockStmt node represents a braced statement list.
	BlockStmt struct {
		Lbrace token.Pos
		List   []Stmt
		Rbrace token.Pos
	}

	// A ReturnStmt node represents a return statement.
	ReturnStmt struct {
		Return token.Pos
		Result Expr // or nil
	}

	// An IfStmt node represents an if statement.
	IfStmt struct {
		If   token.Pos
		Cond Expr
		Then Stmt
		Else Stmt // or nil
	}

	// A ModuleDecl node represents a namespace or module declaration.
	ModuleDecl struct {
		Keyword token.Pos // position of "namespace" or "module"
		Name    *Ident
		Body    *BlockStmt
	}

	// An ExportNamed node represents export { Local as Exported } or an exported declaration.
	ExportNamed struct {
		Export token.Pos
		Decl   Stmt // exported declaration, or nil
		Specs  []*ExportSpec
		Rbrace token.Pos // position of "}" closing the specifier list
	}

	// An ExportSpec node represents a single export specifier.
	ExportSpec struct {
		Local    *Ident
		Exported *Ident // equal to Local when not renamed
	}

	// An ExportDefault node represents export default X or export = X.
	ExportDefault struct {
		Export token.Pos
		X      Expr
		Assign bool // export = X
	}
)

// An Unknown node represents any syntax the model does not name.
// It can appear in expression and statement position.
type Unknown struct {
	Type     string    // the kind of syntax, e.g. an ESTree or tree-sitter node type
	From, To token.Pos // node extent
	Children []Node    // child nodes in source order
}

// ----------------------------------------------------------------------------
// File

// A File node represents a TypeScript source file.
type File struct {
	FileStart, FileEnd token.Pos // start and end of entire file
	Name               string    // file name
	Stmts              []Stmt
	Comments           []*Comment // all comments in source order
}

func (f *File) Pos() token.Pos { return f.FileStart }
func (f *File) End() token.Pos { return f.FileEnd }
