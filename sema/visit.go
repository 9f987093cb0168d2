package sema

import "fmt"

// Visit calls f once for n and then recurses into every child Node it
// owns. Like ast.Visit, it panics on an unrecognized concrete type rather
// than silently skipping it, so every node kind the resolved graph can
// hold has a case here.
func Visit(n Node, f func(Node)) {
	if n == nil {
		return
	}
	f(n)

	switch t := n.(type) {
	case *Builtin, *Self, *TemplateTypenameRef, *VTable, *CurrentSelf,
		*Fallthrough, *Break, *Continue:
		// leaves (or nodes whose targets are back-references already
		// visited elsewhere in the tree)

	case *Goto:
		for _, d := range t.PreGotoDeferred {
			Visit(d, f)
		}

	case *LabeledStmt:
		Visit(t.Statement, f)

	case *Pointer:
		Visit(t.To, f)
	case *Reference:
		Visit(t.To, f)
	case *RValueReference:
		Visit(t.To, f)
	case *FunctionPointer:
		for _, p := range t.Parameters {
			Visit(p.Type, f)
		}
		Visit(t.Return, f)
	case *Dimension:
		Visit(t.Element, f)
		for _, s := range t.Sizes {
			if s != nil {
				Visit(s, f)
			}
		}
	case *FlatArray:
		Visit(t.Element, f)
		if t.Length != nil {
			Visit(t.Length, f)
		}
	case *Qualified:
		Visit(t.Underlying, f)
	case *Imaginary:
		Visit(t.Of, f)
	case *Labeled:
		Visit(t.Underlying, f)
	case *Alias:
		Visit(t.Underlying, f)
	case *Dependent:
		if t.Container != nil {
			Visit(t.Container, f)
		}
	case *Nested:
		Visit(t.Container, f)
		Visit(t.Resolved, f)
	case *TemplateParameter:
		if t.ConstType != nil {
			Visit(t.ConstType, f)
		}
		if t.DefaultType != nil {
			Visit(t.DefaultType, f)
		}
		if t.DefaultConst != nil {
			Visit(t.DefaultConst, f)
		}

	case *Namespace:
		t.VisitMembers(func(o Owned) { Visit(o, f) })
	case *Struct:
		for _, tp := range t.TemplateParameters {
			Visit(tp, f)
		}
		if t.Base != nil {
			Visit(t.Base, f)
		}
		for _, tr := range t.Traits {
			Visit(tr, f)
		}
		for _, m := range t.Fields {
			Visit(m, f)
		}
		for _, c := range t.Constructors {
			Visit(c, f)
		}
		if t.Destructor != nil {
			Visit(t.Destructor, f)
		}
		for _, m := range t.Methods {
			Visit(m, f)
		}
		for _, o := range t.Operators {
			Visit(o, f)
		}
		for _, o := range t.CastOperators {
			Visit(o, f)
		}
		for _, o := range t.CallOperators {
			Visit(o, f)
		}
		for _, o := range t.SubscriptOperators {
			Visit(o, f)
		}
		for _, p := range t.Properties {
			Visit(p, f)
		}
	case *TemplateStructInst:
		if t.Base != nil {
			Visit(t.Base, f)
		}
		for _, tr := range t.Traits {
			Visit(tr, f)
		}
		for _, m := range t.Fields {
			Visit(m, f)
		}
		for _, m := range t.Methods {
			Visit(m, f)
		}
	case *Trait:
		for _, tp := range t.TemplateParameters {
			Visit(tp, f)
		}
		for _, i := range t.Inherits {
			Visit(i, f)
		}
		for _, m := range t.Methods {
			Visit(m, f)
		}
		for _, p := range t.Properties {
			Visit(p, f)
		}
	case *TemplateTraitInst:
		for _, i := range t.Inherits {
			Visit(i, f)
		}
		for _, m := range t.Methods {
			Visit(m, f)
		}
	case *EnumConst:
		// leaf (Value is a plain int64, not itself a Node)
	case *Enum:
		if t.Underlying != nil {
			Visit(t.Underlying, f)
		}
		for _, c := range t.Constants {
			Visit(c, f)
		}
	case *Parameter:
		Visit(t.Type, f)
		if t.Default != nil {
			Visit(t.Default, f)
		}
	case *Function:
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
	case *TemplateFunctionInst:
		for _, p := range t.Parameters {
			Visit(p, f)
		}
		if t.ReturnType != nil {
			Visit(t.ReturnType, f)
		}
		if t.Body != nil {
			Visit(t.Body, f)
		}
	case *Constructor:
		for _, p := range t.Parameters {
			Visit(p, f)
		}
		visitContracts(t.Contracts, f)
		if t.Body != nil {
			Visit(t.Body, f)
		}
	case *Destructor:
		if t.Body != nil {
			Visit(t.Body, f)
		}
	case *Operator:
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
		Visit(t.TargetType, f)
		if t.Body != nil {
			Visit(t.Body, f)
		}
	case *CallOperator:
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
	case *Property:
		Visit(t.Type, f)
		if t.Get != nil {
			Visit(t.Get, f)
		}
		if t.Set != nil {
			Visit(t.Set, f)
		}
	case *Extension:
		Visit(t.ExtendedType, f)
		for _, i := range t.Inherits {
			Visit(i, f)
		}
		for _, m := range t.Methods {
			Visit(m, f)
		}
		for _, p := range t.Properties {
			Visit(p, f)
		}
	case *Variable:
		Visit(t.Type, f)
		if t.Value != nil {
			Visit(t.Value, f)
		}
	case *TypeSuffix:
		Visit(t.Type, f)

	case *Requires:
		Visit(t.Condition, f)
	case *Ensures:
		Visit(t.Condition, f)
	case *Throws:
		if t.ExceptionType != nil {
			Visit(t.ExceptionType, f)
		}
	case *Where:
		Visit(t.Condition, f)

	case *IntegerLiteral, *FloatLiteral, *CharLiteral, *StringLiteral, *BoolLiteral:
		// leaves
	case *ArrayLiteral:
		for _, e := range t.Elements {
			Visit(e, f)
		}
	case *LocalVariableRef, *ParameterRef, *VariableRef, *PropertyRef,
		*EnumConstRef, *TemplateConstRef, *FunctionReference,
		*ConstructorReference, *DestructorReference:
		// reference nodes: their target is a back-pointer into a
		// declaration already reachable from the tree root, not a child
	case *ConstBinding:
		Visit(t.Value, f)
	case *MemberVariableRef:
		Visit(t.Target, f)
	case *MemberPropertyRef:
		Visit(t.Target, f)
	case *PropertyGetCall:
		if t.Target != nil {
			Visit(t.Target, f)
		}
	case *PropertySetCall:
		if t.Target != nil {
			Visit(t.Target, f)
		}
		Visit(t.Value, f)
	case *SubscriptRef:
		Visit(t.Target, f)
	case *SubscriptCall:
		Visit(t.Target, f)
		for _, a := range t.Arguments {
			Visit(a, f)
		}
	case *VTableFunctionReference:
		Visit(t.Target, f)
	case *CallOperatorReference:
		Visit(t.Target, f)
	case *ConstructorCall:
		for _, a := range t.Arguments {
			Visit(a, f)
		}
	case *DestructorCall:
		Visit(t.Target, f)
	case *MemberAccessCall:
		Visit(t.Target, f)
		for _, a := range t.Arguments {
			Visit(a, f)
		}
	case *FunctionCall:
		for _, a := range t.Arguments {
			Visit(a, f)
		}
	case *InfixOperator:
		Visit(t.LHS, f)
		Visit(t.RHS, f)
	case *PrefixOperator:
		Visit(t.Operand, f)
	case *PostfixOperator:
		Visit(t.Operand, f)
	case *MemberInfixOperatorCall:
		Visit(t.LHS, f)
		Visit(t.RHS, f)
	case *MemberPrefixOperatorCall:
		Visit(t.Operand, f)
	case *MemberPostfixOperatorCall:
		Visit(t.Operand, f)
	case *AssignmentOperator:
		Visit(t.LHS, f)
		Visit(t.RHS, f)
	case *StructAssignmentOperator:
		Visit(t.LHS, f)
		Visit(t.RHS, f)
	case *ImplicitCast:
		Visit(t.Value, f)
	case *ExplicitCast:
		Visit(t.Value, f)
	case *ImplicitDeref:
		Visit(t.Value, f)
	case *LValueToRValue:
		Visit(t.Value, f)
	case *RValueToInRef:
		Visit(t.Value, f)
	case *Ref:
		Visit(t.Value, f)
	case *Ternary:
		Visit(t.Condition, f)
		Visit(t.Then, f)
		Visit(t.Else, f)
	case *Try:
		Visit(t.Value, f)
	case *Is:
		Visit(t.Value, f)
	case *Has:
		Visit(t.Value, f)
	case *CheckExtendsType:
		// operands are Types, visited through their owning declaration
	case *SolvedConstExpr:
		Visit(t.Original, f)
	case *StoreTemporaryValue:
		Visit(t.Value, f)
	case *TemporaryValueRef:
		// Store already visited where it was created

	case *Compound:
		for _, s := range t.Statements {
			Visit(s, f)
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
	case *Return:
		if t.Value != nil {
			Visit(t.Value, f)
		}
		for _, d := range t.PreReturnDeferred {
			Visit(d, f)
		}
	case *ExprStmt:
		Visit(t.Value, f)
	case *VariableDeclStmt:
		Visit(t.Decl, f)

	default:
		panic(fmt.Sprintf("sema.Visit: unhandled node type %T", t))
	}
}

func visitContracts(cs []Contract, f func(Node)) {
	for _, c := range cs {
		Visit(c, f)
	}
}
