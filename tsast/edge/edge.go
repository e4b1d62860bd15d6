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

// Package edge defines identifiers for each field of a tsast.Node
// struct type that refers to another Node.
package edge

// Kind describes a field of a tsast.Node struct type.
type Kind uint8

//nolint:revive
const (
	Invalid Kind = iota // for nodes at the root of the traversal

	// Kinds are sorted alphabetically.
	// Numbering is not stable.

	ArrayLit_Elts
	AssignExpr_Lhs
	AssignExpr_Rhs
	BinaryExpr_X
	BinaryExpr_Y
	BlockStmt_List
	CallExpr_Args
	CallExpr_Fun
	CondExpr_Cond
	CondExpr_Else
	CondExpr_Then
	EnumDecl_Members
	EnumDecl_Name
	EnumMember_Init
	EnumMember_Name
	ExportDefault_X
	ExportNamed_Decl
	ExportNamed_Specs
	ExportSpec_Exported
	ExportSpec_Local
	ExprStmt_X
	File_Stmts
	FuncDecl_Body
	FuncDecl_Name
	FuncDecl_Params
	FuncLit_Body
	FuncLit_Name
	FuncLit_Params
	IfStmt_Cond
	IfStmt_Else
	IfStmt_Then
	IndexExpr_Index
	IndexExpr_X
	MemberExpr_Sel
	MemberExpr_X
	ModuleDecl_Body
	ModuleDecl_Name
	ObjectLit_Props
	ParenExpr_X
	Property_Key
	Property_Value
	ReturnStmt_Result
	SpreadElement_X
	TemplateLit_Exprs
	UnaryExpr_X
	Unknown_Children
	VarDecl_Specs
	VarSpec_Init
	VarSpec_Name

	maxKind
)

var fieldNames = [...]string{
	Invalid:             "Invalid",
	ArrayLit_Elts:       "ArrayLit.Elts",
	AssignExpr_Lhs:      "AssignExpr.Lhs",
	AssignExpr_Rhs:      "AssignExpr.Rhs",
	BinaryExpr_X:        "BinaryExpr.X",
	BinaryExpr_Y:        "BinaryExpr.Y",
	BlockStmt_List:      "BlockStmt.List",
	CallExpr_Args:       "CallExpr.Args",
	CallExpr_Fun:        "CallExpr.Fun",
	CondExpr_Cond:       "CondExpr.Cond",
	CondExpr_Else:       "CondExpr.Else",
	CondExpr_Then:       "CondExpr.Then",
	EnumDecl_Members:    "EnumDecl.Members",
	EnumDecl_Name:       "EnumDecl.Name",
	EnumMember_Init:     "EnumMember.Init",
	EnumMember_Name:     "EnumMember.Name",
	ExportDefault_X:     "ExportDefault.X",
	ExportNamed_Decl:    "ExportNamed.Decl",
	ExportNamed_Specs:   "ExportNamed.Specs",
	ExportSpec_Exported: "ExportSpec.Exported",
	ExportSpec_Local:    "ExportSpec.Local",
	ExprStmt_X:          "ExprStmt.X",
	File_Stmts:          "File.Stmts",
	FuncDecl_Body:       "FuncDecl.Body",
	FuncDecl_Name:       "FuncDecl.Name",
	FuncDecl_Params:     "FuncDecl.Params",
	FuncLit_Body:        "FuncLit.Body",
	FuncLit_Name:        "FuncLit.Name",
	FuncLit_Params:      "FuncLit.Params",
	IfStmt_Cond:         "IfStmt.Cond",
	IfStmt_Else:         "IfStmt.Else",
	IfStmt_Then:         "IfStmt.Then",
	IndexExpr_Index:     "IndexExpr.Index",
	IndexExpr_X:         "IndexExpr.X",
	MemberExpr_Sel:      "MemberExpr.Sel",
	MemberExpr_X:        "MemberExpr.X",
	ModuleDecl_Body:     "ModuleDecl.Body",
	ModuleDecl_Name:     "ModuleDecl.Name",
	ObjectLit_Props:     "ObjectLit.Props",
	ParenExpr_X:         "ParenExpr.X",
	Property_Key:        "Property.Key",
	Property_Value:      "Property.Value",
	ReturnStmt_Result:   "ReturnStmt.Result",
	SpreadElement_X:     "SpreadElement.X",
	TemplateLit_Exprs:   "TemplateLit.Exprs",
	UnaryExpr_X:         "UnaryExpr.X",
	Unknown_Children:    "Unknown.Children",
	VarDecl_Specs:       "VarDecl.Specs",
	VarSpec_Init:        "VarSpec.Init",
	VarSpec_Name:        "VarSpec.Name",
}

// String returns a description of the edge kind in the form "Type.Field".
func (k Kind) String() string {
	if k >= maxKind {
		return "<invalid>"
	}

	return fieldNames[k]
}

// Name reports whether an identifier in this field is a name rather than a value reference.
func (k Kind) Name() bool {
	switch k {
	case MemberExpr_Sel, ExportSpec_Exported, EnumDecl_Name, EnumMember_Name:
		return true

	default:
		return false
	}
}
