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

// Pos and End implementations for expression nodes.

func (x *Ident) Pos() token.Pos       { return x.NamePos }
func (x *BasicLit) Pos() token.Pos    { return x.ValuePos }
func (x *TemplateLit) Pos() token.Pos { return x.Lquote }
func (x *MemberExpr) Pos() token.Pos  { return x.X.Pos() }
func (x *IndexExpr) Pos() token.Pos   { return x.X.Pos() }

func (x *CallExpr) Pos() token.Pos {
	if x.New.IsValid() {
		return x.New
	}

	return x.Fun.Pos()
}

func (x *UnaryExpr) Pos() token.Pos {
	if x.Postfix {
		return x.X.Pos()
	}

	return x.OpPos
}

func (x *BinaryExpr) Pos() token.Pos    { return x.X.Pos() }
func (x *AssignExpr) Pos() token.Pos    { return x.Lhs.Pos() }
func (x *CondExpr) Pos() token.Pos      { return x.Cond.Pos() }
func (x *ParenExpr) Pos() token.Pos     { return x.Lparen }
func (x *ArrayLit) Pos() token.Pos      { return x.Lbrack }
func (x *ObjectLit) Pos() token.Pos     { return x.Lbrace }
func (x *Property) Pos() token.Pos      { return x.Key.Pos() }
func (x *SpreadElement) Pos() token.Pos { return x.Ellipsis }
func (x *FuncLit) Pos() token.Pos       { return x.Func }
func (x *Unknown) Pos() token.Pos       { return x.From }

func (x *Ident) End() token.Pos       { return token.Pos(int(x.NamePos) + len(x.Name)) }
func (x *BasicLit) End() token.Pos    { return x.ValueEnd }
func (x *TemplateLit) End() token.Pos { return x.Rquote + 1 }
func (x *MemberExpr) End() token.Pos  { return x.Sel.End() }
func (x *IndexExpr) End() token.Pos   { return x.Rbrack + 1 }

func (x *CallExpr) End() token.Pos {
	if x.Rparen.IsValid() {
		return x.Rparen + 1
	}

	return x.Fun.End() // new F
}

func (x *UnaryExpr) End() token.Pos {
	if x.Postfix {
		return token.Pos(int(x.OpPos) + len(x.Op))
	}

	return x.X.End()
}

func (x *BinaryExpr) End() token.Pos { return x.Y.End() }
func (x *AssignExpr) End() token.Pos { return x.Rhs.End() }
func (x *CondExpr) End() token.Pos   { return x.Else.End() }
func (x *ParenExpr) End() token.Pos  { return x.Rparen + 1 }
func (x *ArrayLit) End() token.Pos   { return x.Rbrack + 1 }
func (x *ObjectLit) End() token.Pos  { return x.Rbrace + 1 }

func (x *Property) End() token.Pos {
	if x.Value != nil {
		return x.Value.End()
	}

	return x.Key.End()
}

func (x *SpreadElement) End() token.Pos { return x.X.End() }
func (x *FuncLit) End() token.Pos       { return x.Body.End() }
func (x *Unknown) End() token.Pos       { return x.To }

// exprNode() ensures that only expression nodes can be assigned to an Expr.
func (*Ident) exprNode()         {}
func (*BasicLit) exprNode()      {}
func (*TemplateLit) exprNode()   {}
func (*MemberExpr) exprNode()    {}
func (*IndexExpr) exprNode()     {}
func (*CallExpr) exprNode()      {}
func (*UnaryExpr) exprNode()     {}
func (*BinaryExpr) exprNode()    {}
func (*AssignExpr) exprNode()    {}
func (*CondExpr) exprNode()      {}
func (*ParenExpr) exprNode()     {}
func (*ArrayLit) exprNode()      {}
func (*ObjectLit) exprNode()     {}
func (*Property) exprNode()      {}
func (*SpreadElement) exprNode() {}
func (*FuncLit) exprNode()       {}
func (*Unknown) exprNode()       {}

// Pos and End implementations for statement nodes.

func (s *EnumDecl) Pos() token.Pos {
	for _, pos := range [...]token.Pos{s.Export, s.Declare, s.Const} {
		if pos.IsValid() {
			return pos
		}
	}

	return s.Enum
}

func (s *EnumMember) Pos() token.Pos    { return s.Name.Pos() }
func (s *ExprStmt) Pos() token.Pos      { return s.X.Pos() }
func (s *VarDecl) Pos() token.Pos       { return s.KindPos }
func (s *VarSpec) Pos() token.Pos       { return s.Name.Pos() }
func (s *FuncDecl) Pos() token.Pos      { return s.Func }
func (s *BlockStmt) Pos() token.Pos     { return s.Lbrace }
func (s *ReturnStmt) Pos() token.Pos    { return s.Return }
func (s *IfStmt) Pos() token.Pos        { return s.If }
func (s *ModuleDecl) Pos() token.Pos    { return s.Keyword }
func (s *ExportNamed) Pos() token.Pos   { return s.Export }
func (s *ExportSpec) Pos() token.Pos    { return s.Local.Pos() }
func (s *ExportDefault) Pos() token.Pos { return s.Export }

func (s *EnumDecl) End() token.Pos { return s.Rbrace + 1 }

func (s *EnumMember) End() token.Pos {
	if s.Init != nil {
		return s.Init.End()
	}

	return s.Name.End()
}

func (s *ExprStmt) End() token.Pos { return s.X.End() }

func (s *VarDecl) End() token.Pos {
	if n := len(s.Specs); n > 0 {
		return s.Specs[n-1].End()
	}

	return token.Pos(int(s.KindPos) + len(s.Kind))
}

func (s *VarSpec) End() token.Pos {
	if s.Init != nil {
		return s.Init.End()
	}

	return s.Name.End()
}

func (s *FuncDecl) End() token.Pos {
	switch {
	case s.Body != nil:
		return s.Body.End()

	case len(s.Params) > 0:
		return s.Params[len(s.Params)-1].End()

	default:
		return s.Name.End()
	}
}

func (s *BlockStmt) End() token.Pos { return s.Rbrace + 1 }

func (s *ReturnStmt) End() token.Pos {
	if s.Result != nil {
		return s.Result.End()
	}

	return s.Return + token.Pos(len("return"))
}

func (s *IfStmt) End() token.Pos {
	if s.Else != nil {
		return s.Else.End()
	}

	return s.Then.End()
}

func (s *ModuleDecl) End() token.Pos { return s.Body.End() }

func (s *ExportNamed) End() token.Pos {
	if s.Decl != nil {
		return s.Decl.End()
	}

	return s.Rbrace + 1
}

func (s *ExportSpec) End() token.Pos    { return s.Exported.End() }
func (s *ExportDefault) End() token.Pos { return s.X.End() }

// stmtNode() ensures that only statement nodes can be assigned to a Stmt.
func (*EnumDecl) stmtNode()      {}
func (*ExprStmt) stmtNode()      {}
func (*VarDecl) stmtNode()       {}
func (*FuncDecl) stmtNode()      {}
func (*BlockStmt) stmtNode()     {}
func (*ReturnStmt) stmtNode()    {}
func (*IfStmt) stmtNode()        {}
func (*ModuleDecl) stmtNode()    {}
func (*ExportNamed) stmtNode()   {}
func (*ExportDefault) stmtNode() {}
func (*Unknown) stmtNode()       {}
