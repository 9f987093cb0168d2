package sema

import "github.com/gulc-lang/gulc/ast"

// Contract is any resolved contract clause attached to a Function,
// Constructor, Operator, or CallOperator.
type Contract interface {
	Node
	isContract()
}

// Requires is a resolved `requires(cond)` precondition.
type Requires struct {
	AST       *ast.Requires
	Condition Expression
}

func (*Requires) isNode()     {}
func (*Requires) isContract() {}

// Ensures is a resolved `ensures(cond)` postcondition.
type Ensures struct {
	AST       *ast.Ensures
	Condition Expression
}

func (*Ensures) isNode()     {}
func (*Ensures) isContract() {}

// Throws is a resolved `throws(Type)` clause. ExceptionType is nil for a
// bare `throws` (any exception type permitted).
type Throws struct {
	AST           *ast.Throws
	ExceptionType Type
}

func (*Throws) isNode()     {}
func (*Throws) isContract() {}

// Where is a resolved `where T: Trait` template-parameter constraint.
type Where struct {
	AST       *ast.Where
	Parameter *TemplateParameter
	Condition Expression
}

func (*Where) isNode()     {}
func (*Where) isContract() {}
