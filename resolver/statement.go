package resolver

import (
	"github.com/gulc-lang/gulc/ast"
	"github.com/gulc-lang/gulc/sema"
)

// runExprResolver is P7: it resolves every declaration body left over from
// P1-P6 (sema/expr.go's comment catalogs the node kinds this produces),
// then drains the queue of instantiated template bodies template.go could
// not resolve at instantiation time (pendingBodies), since those need the
// rest of P7 available to resolve calls, operators, and conversions inside
// them the same way an ordinary body does. With Options.WarnUnusedAttribute
// set, it finally warns about every @attribute in the unit's files whose
// name no AttributeDecl declared (knownAttributes, filled by P1).
func (r *resolver) runExprResolver(root *sema.Namespace) {
	root.VisitMembers(func(o sema.Owned) { r.resolveBodiesOf(o) })
	r.drainPendingBodies()
	if r.opts.WarnUnusedAttribute && r.unit != nil {
		for _, f := range r.unit.Files {
			ast.Visit(f, func(n ast.Node) {
				if a, ok := n.(*ast.Attribute); ok && a.Name != nil && r.knownAttributes[a.Name.Value] == nil {
					r.errorf(a, "unknown attribute %q", a.Name.Value)
				}
			})
		}
	}
}

func (r *resolver) resolveBodiesOf(o sema.Owned) {
	switch n := o.(type) {
	case *sema.Namespace:
		n.VisitMembers(func(c sema.Owned) { r.resolveBodiesOf(c) })
	case *sema.Struct:
		r.with(n, func() {
			r.addMembers(n)
			for _, c := range n.Constructors {
				r.resolveConstructorBody(c)
			}
			if n.Destructor != nil {
				r.resolveDestructorBody(n.Destructor)
			}
			for _, m := range n.Methods {
				r.resolveFunctionBody(m)
			}
			for _, op := range n.Operators {
				r.resolveOperatorBody(op)
			}
			for _, op := range n.CastOperators {
				r.resolveCastOperatorBody(op)
			}
			for _, op := range n.CallOperators {
				r.resolveCallOperatorBody(op)
			}
			for _, op := range n.SubscriptOperators {
				r.resolveSubscriptOperatorBody(op)
			}
			for _, p := range n.Properties {
				r.resolvePropertyBody(p)
			}
		})
	case *sema.Trait:
		r.with(n, func() {
			r.addMembers(n)
			for _, m := range n.Methods {
				r.resolveFunctionBody(m)
			}
			for _, p := range n.Properties {
				r.resolvePropertyBody(p)
			}
		})
	case *sema.Function:
		r.resolveFunctionBody(n)
	case *sema.Variable:
		if astVar, ok := n.AST.(*ast.Variable); ok && astVar.Value != nil {
			n.Value = r.resolveExpr(astVar.Value)
		}
	case *sema.Extension:
		r.with(n.ExtendedType, func() {
			for _, m := range n.Methods {
				r.resolveFunctionBody(m)
			}
			for _, p := range n.Properties {
				r.resolvePropertyBody(p)
			}
		})
	}
}

func (r *resolver) resolveFunctionBody(fn *sema.Function) {
	astFn, ok := fn.AST.(*ast.Function)
	if !ok || astFn.Body == nil {
		return
	}
	r.withFunction(fn, func() {
		r.withReturn(fn.ReturnType, func() {
			for _, p := range fn.Parameters {
				r.addNamed(p)
			}
			fn.Contracts = r.resolveContracts(astFn.Contracts)
			fn.Body = r.resolveCompound(astFn.Body)
		})
	})
}

func (r *resolver) resolveConstructorBody(c *sema.Constructor) {
	astC, ok := c.AST.(*ast.Constructor)
	if !ok || astC.Body == nil {
		return
	}
	voidType := &sema.Builtin{Named: sema.Named("void"), Kind: sema.Void}
	r.withReturn(voidType, func() {
		for _, p := range c.Parameters {
			r.addNamed(p)
		}
		c.Contracts = r.resolveContracts(astC.Contracts)
		c.Body = r.resolveCompound(astC.Body)
	})
}

func (r *resolver) resolveDestructorBody(d *sema.Destructor) {
	astD, ok := d.AST.(*ast.Destructor)
	if !ok || astD.Body == nil {
		return
	}
	voidType := &sema.Builtin{Named: sema.Named("void"), Kind: sema.Void}
	r.withReturn(voidType, func() {
		d.Body = r.resolveCompound(astD.Body)
	})
}

func (r *resolver) resolveOperatorBody(op *sema.Operator) {
	astOp, ok := op.AST.(*ast.Operator)
	if !ok || astOp.Body == nil {
		return
	}
	r.withReturn(op.ReturnType, func() {
		for _, p := range op.Parameters {
			r.addNamed(p)
		}
		op.Contracts = r.resolveContracts(astOp.Contracts)
		op.Body = r.resolveCompound(astOp.Body)
	})
}

func (r *resolver) resolveCastOperatorBody(op *sema.CastOperator) {
	astOp, ok := op.AST.(*ast.CastOperator)
	if !ok || astOp.Body == nil {
		return
	}
	r.withReturn(op.TargetType, func() {
		op.Body = r.resolveCompound(astOp.Body)
	})
}

func (r *resolver) resolveCallOperatorBody(op *sema.CallOperator) {
	astOp, ok := op.AST.(*ast.CallOperator)
	if !ok || astOp.Body == nil {
		return
	}
	r.withReturn(op.ReturnType, func() {
		for _, p := range op.Parameters {
			r.addNamed(p)
		}
		op.Contracts = r.resolveContracts(astOp.Contracts)
		op.Body = r.resolveCompound(astOp.Body)
	})
}

func (r *resolver) resolveSubscriptOperatorBody(op *sema.SubscriptOperator) {
	astOp, ok := op.AST.(*ast.SubscriptOperator)
	if !ok {
		return
	}
	if astOp.Get != nil {
		r.withReturn(op.ValueType, func() {
			for _, p := range op.Parameters {
				r.addNamed(p)
			}
			op.Get = r.resolveCompound(astOp.Get)
		})
	}
	if astOp.Set != nil {
		voidType := &sema.Builtin{Named: sema.Named("void"), Kind: sema.Void}
		r.withReturn(voidType, func() {
			for _, p := range op.Parameters {
				r.addNamed(p)
			}
			if astOp.SetValueName != nil {
				r.addNamed(&sema.Parameter{Named: sema.Named(astOp.SetValueName.Value), Type: op.ValueType})
			}
			op.Set = r.resolveCompound(astOp.Set)
		})
	}
}

func (r *resolver) resolvePropertyBody(p *sema.Property) {
	astP, ok := p.AST.(*ast.Property)
	if !ok {
		return
	}
	if astP.Get != nil {
		r.withReturn(p.Type, func() {
			p.Get = r.resolveCompound(astP.Get)
		})
	}
	if astP.Set != nil {
		voidType := &sema.Builtin{Named: sema.Named("void"), Kind: sema.Void}
		r.withReturn(voidType, func() {
			if astP.SetValueName != nil {
				r.addNamed(&sema.Parameter{Named: sema.Named(astP.SetValueName.Value), Type: p.Type})
			}
			p.Set = r.resolveCompound(astP.Set)
		})
	}
}

func (r *resolver) resolveContracts(conts ast.Contracts) []sema.Contract {
	out := make([]sema.Contract, 0, len(conts))
	for _, c := range conts {
		switch n := c.(type) {
		case *ast.Requires:
			out = append(out, &sema.Requires{AST: n, Condition: r.resolveExpr(n.Condition)})
		case *ast.Ensures:
			out = append(out, &sema.Ensures{AST: n, Condition: r.resolveExpr(n.Condition)})
		case *ast.Throws:
			var et sema.Type
			if n.ExceptionType != nil {
				et = r.resolveASTType(n.ExceptionType)
			}
			out = append(out, &sema.Throws{AST: n, ExceptionType: et})
		case *ast.Where:
			found := r.get(n, n.Parameter.Value)
			tp, _ := found.(*sema.TemplateParameter)
			out = append(out, &sema.Where{AST: n, Parameter: tp, Condition: r.resolveExpr(n.Condition)})
		}
	}
	return out
}

// resolveCompound resolves one `{ ... }` block into its own nested scope,
// tracking locals declared directly in it (sema.Compound.LocalCount) and
// pushing onto localStack so a Return/Goto anywhere inside can compute the
// destructor calls owed on the way out (spec §4.7).
func (r *resolver) resolveCompound(body *ast.Compound) *sema.Compound {
	if body == nil {
		return nil
	}
	var out *sema.Compound
	r.with(nil, func() {
		r.localStack = append(r.localStack, nil)
		defer func() { r.localStack = r.localStack[:len(r.localStack)-1] }()

		stmts := make([]sema.Statement, 0, len(body.Statements))
		for _, s := range body.Statements {
			if rs := r.resolveStmt(s); rs != nil {
				stmts = append(stmts, rs)
			}
		}
		locals := r.localStack[len(r.localStack)-1]
		out = &sema.Compound{AST: body, Statements: stmts, LocalCount: len(locals)}
	})
	return out
}

func (r *resolver) declareLocal(v *sema.Variable) {
	r.addNamed(v)
	top := len(r.localStack) - 1
	if top >= 0 {
		r.localStack[top] = append(r.localStack[top], v)
	}
}

// deferredDestructors walks localStack from innermost to outermost scope,
// and within each scope in reverse declaration order, collecting a
// DestructorCall for every local whose type declares a destructor — the
// order spec §4.7 requires values be torn down in when control leaves
// through a return or goto.
func (r *resolver) deferredDestructors() []*sema.DestructorCall {
	var out []*sema.DestructorCall
	for i := len(r.localStack) - 1; i >= 0; i-- {
		scopeLocals := r.localStack[i]
		for j := len(scopeLocals) - 1; j >= 0; j-- {
			v := scopeLocals[j]
			if d := destructorOf(v.Type); d != nil {
				out = append(out, &sema.DestructorCall{Destructor: d, Target: &sema.LocalVariableRef{Var: v}})
			}
		}
	}
	return out
}

func destructorOf(t sema.Type) *sema.Destructor {
	if s, ok := stripQualifierOnly(t).(*sema.Struct); ok {
		return s.Destructor
	}
	return nil
}

func (r *resolver) resolveStmt(s ast.Stmt) sema.Statement {
	switch n := s.(type) {
	case *ast.ExprStmt:
		return &sema.ExprStmt{AST: n, Value: r.resolveExpr(n.Value)}
	case *ast.VariableDeclStmt:
		return r.resolveVariableDeclStmt(n)
	case *ast.Return:
		ret := &sema.Return{AST: n}
		if n.Value != nil {
			v := r.resolveExpr(n.Value)
			if rt := r.scope.returnTypeOf(); rt != nil && v != nil {
				if converted, _, ok := r.convert(v, rt); ok {
					v = converted
				}
			}
			ret.Value = v
		}
		ret.PreReturnDeferred = r.deferredDestructors()
		return ret
	case *ast.If:
		return r.resolveIf(n)
	case *ast.While:
		return r.resolveWhile(n)
	case *ast.DoWhile:
		return r.resolveDoWhile(n)
	case *ast.For:
		return r.resolveFor(n)
	case *ast.Switch:
		return r.resolveSwitch(n)
	case *ast.Do:
		return &sema.Do{AST: n, Body: r.resolveCompound(n.Body)}
	case *ast.DoCatch:
		return r.resolveDoCatch(n)
	case *ast.Compound:
		return r.resolveCompound(n)
	case *ast.Break:
		return &sema.Break{AST: n, Target: r.breakTarget(n.Label)}
	case *ast.Continue:
		return &sema.Continue{AST: n, Target: r.continueTarget(n.Label)}
	case *ast.Fallthrough:
		return &sema.Fallthrough{AST: n}
	case *ast.Goto:
		return &sema.Goto{AST: n, Target: r.labelTargets[n.Label.Value], PreGotoDeferred: r.deferredDestructors()}
	case *ast.Labeled:
		return r.resolveLabeled(n)
	default:
		r.icef(s, "unhandled ast.Stmt kind %T", s)
		return nil
	}
}

func (r *resolver) resolveVariableDeclStmt(n *ast.VariableDeclStmt) sema.Statement {
	astV := n.Decl
	v := &sema.Variable{AST: astV, Named: sema.Named(astV.Name.Value)}
	if astV.Value != nil {
		v.Value = r.resolveExpr(astV.Value)
	}
	if astV.Type != nil {
		v.Type = r.resolveASTType(astV.Type)
		if v.Value != nil {
			if converted, _, ok := r.convert(v.Value, v.Type); ok {
				v.Value = converted
			}
		}
	} else if v.Value != nil {
		v.Type = v.Value.ExpressionType()
	}
	r.declareLocal(v)
	return &sema.VariableDeclStmt{AST: n, Decl: v}
}

func (r *resolver) resolveIf(n *ast.If) sema.Statement {
	cond := r.resolveExpr(n.Condition)
	then := r.resolveCompound(n.Then)
	var els sema.Statement
	if n.Else != nil {
		els = r.resolveStmt(n.Else)
	}
	return &sema.If{AST: n, Condition: cond, Then: then, Else: els}
}

func (r *resolver) resolveWhile(n *ast.While) sema.Statement {
	w := &sema.While{AST: n}
	r.breakStack = append(r.breakStack, w)
	r.continueStack = append(r.continueStack, w)
	w.Condition = r.resolveExpr(n.Condition)
	w.Body = r.resolveCompound(n.Body)
	r.breakStack = r.breakStack[:len(r.breakStack)-1]
	r.continueStack = r.continueStack[:len(r.continueStack)-1]
	return w
}

func (r *resolver) resolveDoWhile(n *ast.DoWhile) sema.Statement {
	w := &sema.DoWhile{AST: n}
	r.breakStack = append(r.breakStack, w)
	r.continueStack = append(r.continueStack, w)
	w.Body = r.resolveCompound(n.Body)
	w.Condition = r.resolveExpr(n.Condition)
	r.breakStack = r.breakStack[:len(r.breakStack)-1]
	r.continueStack = r.continueStack[:len(r.continueStack)-1]
	return w
}

func (r *resolver) resolveFor(n *ast.For) sema.Statement {
	f := &sema.For{AST: n}
	r.with(nil, func() {
		if n.Init != nil {
			f.Init = r.resolveStmt(n.Init)
		}
		if n.Condition != nil {
			f.Condition = r.resolveExpr(n.Condition)
		}
		r.breakStack = append(r.breakStack, f)
		r.continueStack = append(r.continueStack, f)
		f.Body = r.resolveCompound(n.Body)
		if n.Step != nil {
			f.Step = r.resolveStmt(n.Step)
		}
		r.breakStack = r.breakStack[:len(r.breakStack)-1]
		r.continueStack = r.continueStack[:len(r.continueStack)-1]
	})
	return f
}

func (r *resolver) resolveSwitch(n *ast.Switch) sema.Statement {
	sw := &sema.Switch{AST: n, Value: r.resolveExpr(n.Value)}
	r.breakStack = append(r.breakStack, sw)
	for _, c := range n.Cases {
		values := make([]sema.Expression, len(c.Values))
		for i, v := range c.Values {
			values[i] = r.resolveExpr(v)
		}
		sw.Cases = append(sw.Cases, &sema.Case{AST: c, Values: values, Body: r.resolveCompound(c.Body)})
	}
	r.breakStack = r.breakStack[:len(r.breakStack)-1]
	return sw
}

func (r *resolver) resolveDoCatch(n *ast.DoCatch) sema.Statement {
	dc := &sema.DoCatch{AST: n, Body: r.resolveCompound(n.Body)}
	for _, c := range n.Catches {
		sc := &sema.Catch{AST: c}
		r.with(nil, func() {
			if c.ExceptionType != nil {
				sc.ExceptionType = r.resolveASTType(c.ExceptionType)
			}
			if c.Binding != nil {
				sc.Binding = &sema.Variable{Named: sema.Named(c.Binding.Value), Type: sc.ExceptionType}
				r.addNamed(sc.Binding)
			}
			sc.Body = r.resolveCompound(c.Body)
		})
		dc.Catches = append(dc.Catches, sc)
	}
	return dc
}

func (r *resolver) resolveLabeled(n *ast.Labeled) sema.Statement {
	l := &sema.LabeledStmt{AST: n, Name: n.Label.Value, LocalCount: r.currentLocalCount()}
	previous := r.labelTargets[n.Label.Value]
	r.labelTargets[n.Label.Value] = l
	l.Statement = r.resolveStmt(n.Statement)
	if previous != nil {
		r.labelTargets[n.Label.Value] = previous
	} else {
		delete(r.labelTargets, n.Label.Value)
	}
	return l
}

func (r *resolver) currentLocalCount() int {
	if len(r.localStack) == 0 {
		return 0
	}
	return len(r.localStack[len(r.localStack)-1])
}

func (r *resolver) breakTarget(label *ast.Identifier) sema.Statement {
	if label != nil {
		return r.labelTargets[label.Value]
	}
	if len(r.breakStack) == 0 {
		return nil
	}
	return r.breakStack[len(r.breakStack)-1]
}

func (r *resolver) continueTarget(label *ast.Identifier) sema.Statement {
	if label != nil {
		return r.labelTargets[label.Value]
	}
	if len(r.continueStack) == 0 {
		return nil
	}
	return r.continueStack[len(r.continueStack)-1]
}

// drainPendingBodies resolves every instantiated template body template.go
// deferred, in a scope where the template's parameter names are bound
// directly to their concrete substitution (typenames to the substituted
// sema.Type, consts wrapped in a sema.ConstBinding), the same scope-based
// name resolution every other pass performs rather than a second
// interpreter (template.go's doc comment on pendingBody).
func (r *resolver) drainPendingBodies() {
	for _, pb := range r.pendingBodies {
		pb := pb
		r.with(pb.self, func() {
			for name, t := range pb.typeBindings {
				r.add(name, t)
			}
			for name, e := range pb.constBindings {
				r.addNamed(&sema.ConstBinding{Named: sema.Named(name), Value: e})
			}
			r.withReturn(pb.returnType, func() {
				for _, p := range pb.params {
					r.addNamed(p)
				}
				*pb.target = r.resolveCompound(pb.astBody)
			})
		})
	}
	r.pendingBodies = nil
}
