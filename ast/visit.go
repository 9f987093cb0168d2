package ast

import "fmt"

// Visit calls f once for n and then recurses into every child Node n owns,
// in source order. It panics on a Node type it does not recognize, the same
// failure mode gapil/ast's visitor uses: an unhandled case here means a new
// node kind was added to this package without being taught to the walker,
// which every later pass depends on to see the whole tree.
func Visit(n Node, f func(Node)) {
	if n == nil {
		return
	}
	f(n)

	switch t := n.(type) {
	case *Identifier, *NamespacePath:
		// leaves

	case *Attribute:
		Visit(t.Name, f)
		for _, a := range t.Arguments {
			Visit(a, f)
		}
	case *AttributeDecl:
		for _, a := range t.Attributes {
			Visit(a, f)
		}
		Visit(t.Name, f)
		for _, p := range t.Parameters {
			Visit(p, f)
		}

	case *Requires:
		Visit(t.Condition, f)
	case *Ensures:
		Visit(t.Condition, f)
	case *Throws:
		Visit(t.ExceptionType, f)
	case *Where:
		Visit(t.Parameter, f)
		Visit(t.Condition, f)

	case *Qualified:
		Visit(t.Underlying, f)
	case *BuiltinRef:
		// leaf
	case *PointerRef:
		Visit(t.To, f)
	case *ReferenceRef:
		Visit(t.To, f)
	case *RValueReferenceRef:
		Visit(t.To, f)
	case *FunctionPointerRef:
		for _, p := range t.Parameters {
			if p.Label != nil {
				Visit(p.Label, f)
			}
			Visit(p.Type, f)
		}
		Visit(t.Return, f)
	case *DimensionRef:
		Visit(t.Element, f)
		for _, s := range t.Sizes {
			Visit(s, f)
		}
	case *FlatArrayRef:
		Visit(t.Element, f)
		Visit(t.Length, f)
	case *Unresolved:
		if t.Namespace != nil {
			Visit(t.Namespace, f)
		}
		Visit(t.Name, f)
		for _, a := range t.Arguments {
			visitTemplateArg(a, f)
		}
	case *UnresolvedNested:
		Visit(t.Container, f)
		Visit(t.Name, f)
		for _, a := range t.Arguments {
			visitTemplateArg(a, f)
		}
	case *SelfRef:
		// leaf
	case *ImaginaryRef:
		Visit(t.Of, f)
	case *VTableRef:
		Visit(t.Of, f)
	case *LabeledRef:
		Visit(t.Label, f)
		Visit(t.Underlying, f)

	case *File:
		for _, i := range t.Imports {
			Visit(i, f)
		}
		for _, d := range t.Declarations {
			Visit(d, f)
		}
	case *Import:
		for _, a := range t.Attributes {
			Visit(a, f)
		}
		Visit(t.Path, f)
	case *Namespace:
		for _, a := range t.Attributes {
			Visit(a, f)
		}
		Visit(t.Path, f)
		for _, d := range t.Declarations {
			Visit(d, f)
		}
	case *TemplateParameter:
		Visit(t.Name, f)
		if t.ConstType != nil {
			Visit(t.ConstType, f)
		}
		if t.DefaultType != nil {
			Visit(t.DefaultType, f)
		}
		if t.DefaultConst != nil {
			Visit(t.DefaultConst, f)
		}
	case *Struct:
		visitDeclCommon(t.declCommon, f)
		for _, tp := range t.TemplateParameters {
			Visit(tp, f)
		}
		for _, i := range t.Inherits {
			Visit(i, f)
		}
		visitContracts(t.Contracts, f)
		for _, m := range t.Members {
			Visit(m, f)
		}
	case *Trait:
		visitDeclCommon(t.declCommon, f)
		for _, tp := range t.TemplateParameters {
			Visit(tp, f)
		}
		for _, i := range t.Inherits {
			Visit(i, f)
		}
		visitContracts(t.Contracts, f)
		for _, m := range t.Members {
			Visit(m, f)
		}
	case *EnumConst:
		visitDeclCommon(t.declCommon, f)
		if t.Value != nil {
			Visit(t.Value, f)
		}
	case *Enum:
		visitDeclCommon(t.declCommon, f)
		if t.UnderlyingType != nil {
			Visit(t.UnderlyingType, f)
		}
		for _, c := range t.Constants {
			Visit(c, f)
		}
	case *Parameter:
		for _, a := range t.Attributes {
			Visit(a, f)
		}
		if t.Label != nil {
			Visit(t.Label, f)
		}
		Visit(t.Name, f)
		Visit(t.Type, f)
		if t.Default != nil {
			Visit(t.Default, f)
		}
	case *Function:
		visitDeclCommon(t.declCommon, f)
		for _, tp := range t.TemplateParameters {
			Visit(tp, f)
		}
		for _, p := range t.Parameters {
			Visit(p, f)
		}
		if t.ReturnType != nil {
			Visit(t.ReturnType, f)
		}
		visitContracts(t.Contracts, f)
		if t.Body != nil {
			Visit(t.Body, f)
		}
	case *Constructor:
		visitDeclCommon(t.declCommon, f)
		for _, p := range t.Parameters {
			Visit(p, f)
		}
		visitContracts(t.Contracts, f)
		if t.Body != nil {
			Visit(t.Body, f)
		}
	case *Destructor:
		visitDeclCommon(t.declCommon, f)
		if t.Body != nil {
			Visit(t.Body, f)
		}
	case *Operator:
		visitDeclCommon(t.declCommon, f)
		for _, p := range t.Parameters {
			Visit(p, f)
		}
		if t.ReturnType != nil {
			Visit(t.ReturnType, f)
		}
		visitContracts(t.Contracts, f)
		if t.Body != nil {
			Visit(t.Body, f)
		}
	case *CastOperator:
		visitDeclCommon(t.declCommon, f)
		Visit(t.TargetType, f)
		if t.Body != nil {
			Visit(t.Body, f)
		}
	case *CallOperator:
		visitDeclCommon(t.declCommon, f)
		for _, p := range t.Parameters {
			Visit(p, f)
		}
		if t.ReturnType != nil {
			Visit(t.ReturnType, f)
		}
		visitContracts(t.Contracts, f)
		if t.Body != nil {
			Visit(t.Body, f)
		}
	case *SubscriptOperator:
		visitDeclCommon(t.declCommon, f)
		for _, p := range t.Parameters {
			Visit(p, f)
		}
		Visit(t.ValueType, f)
		if t.Get != nil {
			Visit(t.Get, f)
		}
		if t.Set != nil {
			Visit(t.Set, f)
		}
		if t.SetValueName != nil {
			Visit(t.SetValueName, f)
		}
	case *Property:
		visitDeclCommon(t.declCommon, f)
		Visit(t.Type, f)
		if t.Get != nil {
			Visit(t.Get, f)
		}
		if t.Set != nil {
			Visit(t.Set, f)
		}
		if t.SetValueName != nil {
			Visit(t.SetValueName, f)
		}
	case *Extension:
		visitDeclCommon(t.declCommon, f)
		Visit(t.ExtendedType, f)
		for _, i := range t.Inherits {
			Visit(i, f)
		}
		for _, m := range t.Members {
			Visit(m, f)
		}
	case *TypeAlias:
		visitDeclCommon(t.declCommon, f)
		for _, tp := range t.TemplateParameters {
			Visit(tp, f)
		}
		Visit(t.Underlying, f)
	case *TypeSuffix:
		visitDeclCommon(t.declCommon, f)
		Visit(t.Type, f)
	case *Variable:
		visitDeclCommon(t.declCommon, f)
		if t.Type != nil {
			Visit(t.Type, f)
		}
		if t.Value != nil {
			Visit(t.Value, f)
		}

	case *Compound:
		for _, s := range t.Statements {
			Visit(s, f)
		}
	case *Break:
		if t.Label != nil {
			Visit(t.Label, f)
		}
	case *Continue:
		if t.Label != nil {
			Visit(t.Label, f)
		}
	case *Fallthrough:
		// leaf
	case *Goto:
		Visit(t.Label, f)
	case *Labeled:
		Visit(t.Label, f)
		Visit(t.Statement, f)
	case *Return:
		if t.Value != nil {
			Visit(t.Value, f)
		}
	case *If:
		Visit(t.Condition, f)
		Visit(t.Then, f)
		if t.Else != nil {
			Visit(t.Else, f)
		}
	case *While:
		Visit(t.Condition, f)
		Visit(t.Body, f)
	case *DoWhile:
		Visit(t.Body, f)
		Visit(t.Condition, f)
	case *For:
		if t.Init != nil {
			Visit(t.Init, f)
		}
		if t.Condition != nil {
			Visit(t.Condition, f)
		}
		if t.Step != nil {
			Visit(t.Step, f)
		}
		Visit(t.Body, f)
	case *Case:
		for _, v := range t.Values {
			Visit(v, f)
		}
		Visit(t.Body, f)
	case *Switch:
		Visit(t.Value, f)
		for _, c := range t.Cases {
			Visit(c, f)
		}
	case *Catch:
		if t.ExceptionType != nil {
			Visit(t.ExceptionType, f)
		}
		if t.Binding != nil {
			Visit(t.Binding, f)
		}
		Visit(t.Body, f)
	case *Do:
		Visit(t.Body, f)
	case *DoCatch:
		Visit(t.Body, f)
		for _, c := range t.Catches {
			Visit(c, f)
		}
	case *ExprStmt:
		Visit(t.Value, f)
	case *VariableDeclStmt:
		Visit(t.Decl, f)

	case *IntegerLiteral, *FloatLiteral, *CharLiteral, *StringLiteral, *BoolLiteral:
		// leaves
	case *ArrayLiteral:
		for _, e := range t.Elements {
			Visit(e, f)
		}
	case *Paren:
		Visit(t.Inner, f)
	case *InfixOperator:
		Visit(t.LHS, f)
		Visit(t.RHS, f)
	case *PrefixOperator:
		if t.Operand != nil {
			Visit(t.Operand, f)
		}
		if t.OperandType != nil {
			Visit(t.OperandType, f)
		}
		if t.Member != nil {
			Visit(t.Member, f)
		}
	case *PostfixOperator:
		Visit(t.Operand, f)
	case *AssignmentOperator:
		Visit(t.LHS, f)
		Visit(t.RHS, f)
	case *As:
		Visit(t.Value, f)
		Visit(t.Target, f)
	case *Is:
		Visit(t.Value, f)
		Visit(t.Target, f)
	case *Has:
		Visit(t.Value, f)
		Visit(t.Trait, f)
	case *CheckExtendsType:
		Visit(t.Derived, f)
		Visit(t.Base, f)
	case *Ternary:
		Visit(t.Condition, f)
		Visit(t.Then, f)
		Visit(t.Else, f)
	case *Try:
		Visit(t.Value, f)
	case *Ref:
		Visit(t.Value, f)
	case *IdentifierExpr:
		Visit(t.Name, f)
	case *CurrentSelfExpr:
		// leaf
	case *LabeledArgument:
		Visit(t.Label, f)
		Visit(t.Value, f)
	case *FunctionCall:
		Visit(t.Target, f)
		for _, a := range t.Arguments {
			Visit(a, f)
		}
	case *MemberAccessCall:
		Visit(t.Target, f)
		Visit(t.Member, f)
		for _, a := range t.Arguments {
			Visit(a, f)
		}
	case *SubscriptCall:
		Visit(t.Target, f)
		for _, a := range t.Arguments {
			Visit(a, f)
		}
	case *TypeExpr:
		Visit(t.Value, f)
	case *VariableDeclExpr:
		Visit(t.Name, f)
		if t.Type != nil {
			Visit(t.Type, f)
		}
		Visit(t.Value, f)

	default:
		panic(fmt.Sprintf("ast.Visit: unhandled node type %T", t))
	}
}

func visitTemplateArg(a *TemplateArg, f func(Node)) {
	if a.Type != nil {
		Visit(a.Type, f)
	}
	if a.Const != nil {
		Visit(a.Const, f)
	}
}

func visitDeclCommon(d declCommon, f func(Node)) {
	for _, a := range d.Attributes {
		Visit(a, f)
	}
	Visit(d.Name, f)
}

func visitContracts(cs Contracts, f func(Node)) {
	for _, c := range cs {
		Visit(c, f)
	}
}
