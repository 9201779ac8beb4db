package structure

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// Inspect parses a Python source text and derives its structural summary:
// imports, function/class inventory and complexity counters. It is a pure
// function of the source, with no I/O and no external process. A source that
// cannot be parsed yields a Summary whose only populated field is ParseError.
//
// Each call builds its own parser, so concurrent calls never share state.
func Inspect(source []byte) Summary {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil || tree == nil {
		return Summary{ParseError: fmt.Sprintf("syntax error: failed to parse source: %v", err)}
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return Summary{ParseError: fmt.Sprintf("syntax error near line %d", firstErrorLine(root))}
	}

	var summary Summary

	WalkAST(root, func(n *sitter.Node) {
		switch n.Type() {
		case "import_statement":
			summary.Imports = append(summary.Imports, importedModules(n, source)...)
		case "import_from_statement":
			if target := fromImportTarget(n, source); target != "" {
				summary.Imports = append(summary.Imports, target)
			}
		case "function_definition":
			summary.Functions = append(summary.Functions, FunctionInfo{
				Name:       fieldText(n, "name", source),
				Parameters: parameterNames(n.ChildByFieldName("parameters"), source),
				Line:       lineOf(n),
			})
			summary.Complexity.Functions++
		case "class_definition":
			summary.Classes = append(summary.Classes, ClassInfo{
				Name:    fieldText(n, "name", source),
				Methods: methodNames(n.ChildByFieldName("body"), source),
				Line:    lineOf(n),
			})
			summary.Complexity.Classes++
		case "if_statement", "elif_clause", "try_statement", "except_clause":
			summary.Complexity.Branches++
		case "for_statement", "while_statement":
			summary.Complexity.Loops++
		}
	})

	return summary
}

// firstErrorLine locates the first error or missing node in the tree
func firstErrorLine(root *sitter.Node) int {
	line := lineOf(root)
	found := false

	WalkAST(root, func(n *sitter.Node) {
		if found {
			return
		}
		if n.Type() == "ERROR" || n.IsMissing() {
			line = lineOf(n)
			found = true
		}
	})

	return line
}

// importedModules collects every module named by a plain import statement,
// e.g. "import os, sys" yields both "os" and "sys".
func importedModules(node *sitter.Node, source []byte) []string {
	var modules []string

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)

		switch child.Type() {
		case "dotted_name":
			modules = append(modules, nodeText(child, source))
		case "aliased_import":
			// "import numpy as np" records the real module name, not the alias.
			if name := aliasedOriginalName(child, source); name != "" {
				modules = append(modules, name)
			}
		}
	}

	return modules
}

// fromImportTarget records a from-import as a single combined "module.name"
// string using only the first imported name of the statement. A statement
// importing several names still yields one entry; see the inspector tests
// for the recording rule.
func fromImportTarget(node *sitter.Node, source []byte) string {
	var module string

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)

		switch child.Type() {
		case "relative_import":
			if module == "" {
				module = nodeText(child, source)
			}
		case "dotted_name":
			if module == "" {
				module = nodeText(child, source)
				continue
			}
			return module + "." + nodeText(child, source)
		case "aliased_import":
			if module != "" {
				if name := aliasedOriginalName(child, source); name != "" {
					return module + "." + name
				}
			}
		case "wildcard_import":
			if module != "" {
				return module + ".*"
			}
		case "import_list":
			if module != "" {
				if name := firstListedName(child, source); name != "" {
					return module + "." + name
				}
			}
		case "identifier":
			if module != "" {
				return module + "." + nodeText(child, source)
			}
		}
	}

	return ""
}

// aliasedOriginalName extracts the original (pre-"as") name of an aliased import
func aliasedOriginalName(node *sitter.Node, source []byte) string {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() == "dotted_name" {
			return nodeText(child, source)
		}
	}
	return ""
}

// firstListedName extracts the first imported name from a parenthesized import list
func firstListedName(node *sitter.Node, source []byte) string {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)

		switch child.Type() {
		case "identifier", "dotted_name":
			return nodeText(child, source)
		case "aliased_import":
			if name := aliasedOriginalName(child, source); name != "" {
				return name
			}
		}
	}
	return ""
}

// parameterNames collects declared parameter names in declaration order,
// skipping splat markers and separators.
func parameterNames(params *sitter.Node, source []byte) []string {
	if params == nil {
		return nil
	}

	var names []string

	for i := 0; i < int(params.ChildCount()); i++ {
		child := params.Child(i)

		switch child.Type() {
		case "identifier":
			names = append(names, nodeText(child, source))
		case "typed_parameter":
			if name := firstIdentifier(child, source); name != "" {
				names = append(names, name)
			}
		case "default_parameter", "typed_default_parameter":
			if name := fieldText(child, "name", source); name != "" {
				names = append(names, name)
			}
		}
	}

	return names
}

// firstIdentifier returns the text of the first identifier child of a node
func firstIdentifier(node *sitter.Node, source []byte) string {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() == "identifier" {
			return nodeText(child, source)
		}
	}
	return ""
}

// methodNames collects the names of a class body's immediate function
// definitions, in source order. Nested classes and deeper nesting levels are
// not descended into; decorated methods count through their wrapper node.
func methodNames(body *sitter.Node, source []byte) []string {
	if body == nil {
		return nil
	}

	var methods []string

	for i := 0; i < int(body.ChildCount()); i++ {
		child := body.Child(i)

		switch child.Type() {
		case "function_definition":
			methods = append(methods, fieldText(child, "name", source))
		case "decorated_definition":
			def := child.ChildByFieldName("definition")
			if def != nil && def.Type() == "function_definition" {
				methods = append(methods, fieldText(def, "name", source))
			}
		}
	}

	return methods
}
