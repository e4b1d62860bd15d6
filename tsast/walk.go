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

import (
	"iter"

	"fillmore-labs.com/constenum/tsast/edge"
)

// Children yields the direct children of n in source order, together with the
// field of n that holds them. Absent optional children are skipped.
func Children(n Node) iter.Seq2[edge.Kind, Node] {
	return func(yield func(edge.Kind, Node) bool) {
		c := children{yield: yield}
		c.node(n)
	}
}

// children adapts a yield function, remembering when the consumer stopped.
type children struct {
	yield func(edge.Kind, Node) bool
	done  bool
}

func (c *children) emit(k edge.Kind, n Node) {
	if c.done {
		return
	}

	if !c.yield(k, n) {
		c.done = true
	}
}

func (c *children) expr(k edge.Kind, x Expr) {
	if x != nil {
		c.emit(k, x)
	}
}

func (c *children) exprs(k edge.Kind, list []Expr) {
	for _, x := range list {
		c.expr(k, x)
	}
}

func (c *children) stmt(k edge.Kind, s Stmt) {
	if s != nil {
		c.emit(k, s)
	}
}

func (c *children) ident(k edge.Kind, id *Ident) {
	if id != nil {
		c.emit(k, id)
	}
}

func (c *children) block(k edge.Kind, b *BlockStmt) {
	if b != nil {
		c.emit(k, b)
	}
}

func (c *children) node(n Node) {
	switch n := n.(type) {
	case *File:
		for _, s := range n.Stmts {
			c.stmt(edge.File_Stmts, s)
		}

	// Expressions
	case *Ident, *BasicLit, nil:
		// leaves

	case *TemplateLit:
		c.exprs(edge.TemplateLit_Exprs, n.Exprs)

	case *MemberExpr:
		c.expr(edge.MemberExpr_X, n.X)
		c.ident(edge.MemberExpr_Sel, n.Sel)

	case *IndexExpr:
		c.expr(edge.IndexExpr_X, n.X)
		c.expr(edge.IndexExpr_Index, n.Index)

	case *CallExpr:
		c.expr(edge.CallExpr_Fun, n.Fun)
		c.exprs(edge.CallExpr_Args, n.Args)

	case *UnaryExpr:
		c.expr(edge.UnaryExpr_X, n.X)

	case *BinaryExpr:
		c.expr(edge.BinaryExpr_X, n.X)
		c.expr(edge.BinaryExpr_Y, n.Y)

	case *AssignExpr:
		c.expr(edge.AssignExpr_Lhs, n.Lhs)
		c.expr(edge.AssignExpr_Rhs, n.Rhs)

	case *CondExpr:
		c.expr(edge.CondExpr_Cond, n.Cond)
		c.expr(edge.CondExpr_Then, n.Then)
		c.expr(edge.CondExpr_Else, n.Else)

	case *ParenExpr:
		c.expr(edge.ParenExpr_X, n.X)

	case *ArrayLit:
		c.exprs(edge.ArrayLit_Elts, n.Elts)

	case *ObjectLit:
		c.exprs(edge.ObjectLit_Props, n.Props)

	case *Property:
		c.expr(edge.Property_Key, n.Key)
		c.expr(edge.Property_Value, n.Value) // for shorthand properties, { A } reads A

	case *SpreadElement:
		c.expr(edge.SpreadElement_X, n.X)

	case *FuncLit:
		c.ident(edge.FuncLit_Name, n.Name)
		c.exprs(edge.FuncLit_Params, n.Params)

		if n.Body != nil {
			c.emit(edge.FuncLit_Body, n.Body)
		}

	case *Unknown:
		for _, child := range n.Children {
			if child != nil {
				c.emit(edge.Unknown_Children, child)
			}
		}

	// Statements
	case *EnumDecl:
		c.ident(edge.EnumDecl_Name, n.Name)

		for _, m := range n.Members {
			if m != nil {
				c.emit(edge.EnumDecl_Members, m)
			}
		}

	case *EnumMember:
		c.expr(edge.EnumMember_Name, n.Name)
		c.expr(edge.EnumMember_Init, n.Init)

	case *ExprStmt:
		c.expr(edge.ExprStmt_X, n.X)

	case *VarDecl:
		for _, s := range n.Specs {
			if s != nil {
				c.emit(edge.VarDecl_Specs, s)
			}
		}

	case *VarSpec:
		c.expr(edge.VarSpec_Name, n.Name)
		c.expr(edge.VarSpec_Init, n.Init)

	case *FuncDecl:
		c.ident(edge.FuncDecl_Name, n.Name)
		c.exprs(edge.FuncDecl_Params, n.Params)
		c.block(edge.FuncDecl_Body, n.Body)

	case *BlockStmt:
		for _, s := range n.List {
			c.stmt(edge.BlockStmt_List, s)
		}

	case *ReturnStmt:
		c.expr(edge.ReturnStmt_Result, n.Result)

	case *IfStmt:
		c.expr(edge.IfStmt_Cond, n.Cond)
		c.stmt(edge.IfStmt_Then, n.Then)
		c.stmt(edge.IfStmt_Else, n.Else)

	case *ModuleDecl:
		c.ident(edge.ModuleDecl_Name, n.Name)
		c.block(edge.ModuleDecl_Body, n.Body)

	case *ExportNamed:
		c.stmt(edge.ExportNamed_Decl, n.Decl)

		for _, s := range n.Specs {
			if s != nil {
				c.emit(edge.ExportNamed_Specs, s)
			}
		}

	case *ExportSpec:
		c.ident(edge.ExportSpec_Local, n.Local)

		if n.Exported != n.Local {
			c.ident(edge.ExportSpec_Exported, n.Exported)
		}

	case *ExportDefault:
		c.expr(edge.ExportDefault_X, n.X)
	}
}

// A Cursor describes a node encountered during [Inspect].
type Cursor struct {
	Node   Node      // the current node
	Parent Node      // the parent of Node, nil at the root
	Edge   edge.Kind // the field of Parent holding Node
}

// Inspect traverses the tree rooted at root in pre-order and source order.
// It calls f for every node; when f returns true, Inspect descends into the
// children of the node.
func Inspect(root Node, f func(Cursor) bool) {
	inspect(Cursor{Node: root, Edge: edge.Invalid}, f)
}

func inspect(c Cursor, f func(Cursor) bool) {
	if !f(c) {
		return
	}

	for k, child := range Children(c.Node) {
		inspect(Cursor{Node: child, Parent: c.Node, Edge: k}, f)
	}
}

// Preorder yields all nodes of the tree rooted at root in pre-order and source order.
func Preorder(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		ok := true
		Inspect(root, func(c Cursor) bool {
			ok = ok && yield(c.Node)

			return ok
		})
	}
}
