package resolver

import (
	"github.com/gulc-lang/gulc/ast"
	"github.com/gulc-lang/gulc/mangle"
	"github.com/gulc-lang/gulc/sema"
)

// operatorCode maps an Operator declaration's kind to the two-letter
// Itanium <operator-name> it mangles as (spec §4.8); `^^` (OpPow) has no
// Itanium equivalent and uses the vendor extension `v23pow` instead.
var operatorCode = map[ast.OperatorKind]string{
	ast.OpAdd:       "pl",
	ast.OpSub:       "mi",
	ast.OpMul:       "ml",
	ast.OpDiv:       "dv",
	ast.OpMod:       "rm",
	ast.OpInc:       "pp",
	ast.OpDec:       "mm",
	ast.OpNeg:       "ng",
	ast.OpNot:       "nt",
	ast.OpBitNot:    "co",
	ast.OpBitAnd:    "an",
	ast.OpBitOr:     "or",
	ast.OpBitXor:    "eo",
	ast.OpShl:       "ls",
	ast.OpShr:       "rs",
	ast.OpAssign:    "aS",
	ast.OpEq:        "eq",
	ast.OpNe:        "ne",
	ast.OpGt:        "gt",
	ast.OpLt:        "lt",
	ast.OpGe:        "ge",
	ast.OpLe:        "le",
	ast.OpSpaceship: "ss",
	ast.OpPow:       "v23pow",
}

// runMangler is P8. It runs in the two-phase order spec §4.8 requires:
// first every nominal type declaration (struct/trait/enum, including
// template instantiations) gets its mangled name, so the second phase can
// reference any of them by an already-settled Class entity while mangling
// functions, variables, and operator overloads.
func (r *resolver) runMangler(root *sema.Namespace) {
	entities := map[interface{}]mangle.Entity{}
	r.mangleTypes(root, entities)
	for _, t := range r.instCache {
		r.mangleInstantiatedType(t, entities)
	}
	r.mangleMembers(root, entities)
	for _, fi := range r.funcInstCache {
		r.mangleFunctionInst(fi, entities)
	}
}

func (r *resolver) mangleTypes(ns *sema.Namespace, entities map[interface{}]mangle.Entity) {
	ns.VisitMembers(func(o sema.Owned) {
		switch n := o.(type) {
		case *sema.Namespace:
			r.mangleTypes(n, entities)
		case *sema.Struct:
			n.MangledName = mangle.Mangle(classEntity(n, entities))
		case *sema.Trait:
			n.MangledName = mangle.Mangle(classEntity(n, entities))
		case *sema.Enum:
			n.MangledName = mangle.Mangle(classEntity(n, entities))
		}
	})
}

func (r *resolver) mangleInstantiatedType(t sema.Type, entities map[interface{}]mangle.Entity) {
	switch n := t.(type) {
	case *sema.TemplateStructInst:
		n.MangledName = mangle.Mangle(classEntity(n, entities))
	case *sema.TemplateTraitInst:
		n.MangledName = mangle.Mangle(classEntity(n, entities))
	}
}

// mangleMembers is P8's second phase: every function, variable, and
// struct/trait member declaration reachable from the namespace tree.
func (r *resolver) mangleMembers(ns *sema.Namespace, entities map[interface{}]mangle.Entity) {
	ns.VisitMembers(func(o sema.Owned) {
		switch n := o.(type) {
		case *sema.Namespace:
			r.mangleMembers(n, entities)
		case *sema.Function:
			n.MangledName = mangle.Mangle(functionEntity(n, scopeEntity(n.Owner(), entities), entities))
		case *sema.Variable:
			n.MangledName = mangle.Mangle(variableEntity(n, entities))
		case *sema.Struct:
			r.mangleStructMembers(n, entities)
		case *sema.Trait:
			for _, m := range n.Methods {
				m.MangledName = mangle.Mangle(functionEntity(m, classEntity(n, entities), entities))
			}
		case *sema.Extension:
			target := typeEntity(n.ExtendedType, entities)
			scope, _ := target.(mangle.Scope)
			for _, m := range n.Methods {
				m.MangledName = mangle.Mangle(functionEntity(m, scope, entities))
			}
			for _, p := range n.Properties {
				p.MangledName = mangle.Mangle(&mangle.Function{Parent: scope, Name: "get_" + p.Name(), Return: typeEntity(p.Type, entities)})
			}
		}
	})
}

func (r *resolver) mangleStructMembers(s *sema.Struct, entities map[interface{}]mangle.Entity) {
	self := classEntity(s, entities)
	for _, c := range s.Constructors {
		code := "C2"
		if c.Kind == sema.ConstructorCopy {
			c.MangledName = mangle.Mangle(&mangle.Function{
				Parent: self, OperatorName: "C2",
				Parameters: []mangle.Type{mangle.Reference{To: mangle.Qualified{Qualifier: mangle.Immut, Underlying: self}}},
			})
			continue
		}
		if c.Kind == sema.ConstructorMove {
			c.MangledName = mangle.Mangle(&mangle.Function{
				Parent: self, OperatorName: "C2",
				Parameters: []mangle.Type{mangle.RValueReference{To: self}},
			})
			continue
		}
		c.MangledName = mangle.Mangle(&mangle.Function{
			Parent: self, OperatorName: code,
			Parameters:  paramTypes(c.Parameters, entities),
			ParamLabels: paramLabels(c.Parameters),
		})
	}
	if s.Destructor != nil {
		s.Destructor.MangledName = mangle.Mangle(&mangle.Function{Parent: self, OperatorName: "D2"})
	}
	for _, m := range s.Methods {
		m.MangledName = mangle.Mangle(functionEntity(m, self, entities))
	}
	for _, op := range s.Operators {
		code := operatorCode[op.Kind]
		op.MangledName = mangle.Mangle(&mangle.Function{
			Parent: self, OperatorName: code,
			Return:      typeEntity(op.ReturnType, entities),
			Parameters:  paramTypes(op.Parameters, entities),
			ParamLabels: paramLabels(op.Parameters),
		})
	}
	for _, op := range s.CastOperators {
		op.MangledName = mangle.Mangle(&mangle.Function{
			Parent: self, OperatorName: "cv" + mangleTypeSuffix(op.TargetType, entities),
			Return: typeEntity(op.TargetType, entities),
		})
	}
	for _, op := range s.CallOperators {
		op.MangledName = mangle.Mangle(&mangle.Function{
			Parent: self, OperatorName: "cl",
			Return:      typeEntity(op.ReturnType, entities),
			Parameters:  paramTypes(op.Parameters, entities),
			ParamLabels: paramLabels(op.Parameters),
		})
	}
	for _, op := range s.SubscriptOperators {
		op.MangledName = mangle.Mangle(&mangle.Function{
			Parent: self, OperatorName: "ix",
			Return:      typeEntity(op.ValueType, entities),
			Parameters:  paramTypes(op.Parameters, entities),
			ParamLabels: paramLabels(op.Parameters),
		})
	}
	for _, p := range s.Properties {
		p.MangledName = mangle.Mangle(&mangle.Function{Parent: self, Name: "get_" + p.Name(), Return: typeEntity(p.Type, entities)})
	}
	for _, f := range s.Fields {
		f.MangledName = mangle.Mangle(variableEntityIn(f, self, entities))
	}
}

// mangleTypeSuffix returns the cast target type's source-level name, which
// mangleStructMembers appends after "cv" to form a cast operator's
// <operator-name>, keeping a struct's several cast-operator overloads
// (e.g. `as i32` vs `as f64`) distinct. The suffix is the type's name as
// written (e.g. "i32"), not the Itanium <type> encoding (e.g. "i") that a
// C++ conversion function carries after "cv".
func mangleTypeSuffix(t sema.Type, entities map[interface{}]mangle.Entity) string {
	return t.Name()
}

func (r *resolver) mangleFunctionInst(fi *sema.TemplateFunctionInst, entities map[interface{}]mangle.Entity) {
	parent := scopeEntity(fi.Original.Owner(), entities)
	args := make([]mangle.Type, len(fi.Arguments))
	for i, a := range fi.Arguments {
		args[i] = templateArgEntity(a, entities)
	}
	fi.MangledName = mangle.Mangle(&mangle.Function{
		Parent:       parent,
		Name:         fi.Name(),
		Return:       typeEntity(fi.ReturnType, entities),
		Parameters:   paramTypes(fi.Parameters, entities),
		ParamLabels:  paramLabels(fi.Parameters),
		TemplateArgs: args,
	})
}

func functionEntity(fn *sema.Function, parent mangle.Scope, entities map[interface{}]mangle.Entity) *mangle.Function {
	return &mangle.Function{
		Parent:      parent,
		Name:        fn.Name(),
		Return:      typeEntity(fn.ReturnType, entities),
		Parameters:  paramTypes(fn.Parameters, entities),
		ParamLabels: paramLabels(fn.Parameters),
	}
}

func variableEntity(v *sema.Variable, entities map[interface{}]mangle.Entity) *mangle.Function {
	return variableEntityIn(v, scopeEntity(v.Owner(), entities), entities)
}

// variableEntityIn mangles a Variable as a plain data symbol: the same
// <nested-name> machinery a method uses, but IsData suppresses the
// <bare-function-type> a real function's encoding would append.
func variableEntityIn(v *sema.Variable, parent mangle.Scope, entities map[interface{}]mangle.Entity) *mangle.Function {
	return &mangle.Function{Parent: parent, Name: v.Name(), IsData: true}
}

func paramTypes(params []*sema.Parameter, entities map[interface{}]mangle.Entity) []mangle.Type {
	out := make([]mangle.Type, len(params))
	for i, p := range params {
		out[i] = typeEntity(p.Type, entities)
	}
	return out
}

func paramLabels(params []*sema.Parameter) []string {
	out := make([]string, len(params))
	for i, p := range params {
		out[i] = p.Label
	}
	return out
}

// classEntity builds (and caches, so repeated references share one
// pointer for Itanium substitution purposes) the mangle.Class for a
// nominal type declaration, recursively resolving its enclosing scope.
func classEntity(n sema.Owned, entities map[interface{}]mangle.Entity) *mangle.Class {
	if e, ok := entities[n]; ok {
		return e.(*mangle.Class)
	}
	// A TemplateStructInst/TemplateTraitInst is never itself added to a
	// namespace (it lives only in instCache), so its own Owner() is always
	// nil; its enclosing scope is the template it was instantiated from.
	owner := n.Owner()
	var templateArgs []mangle.Type
	switch t := n.(type) {
	case *sema.TemplateStructInst:
		owner = t.Original.Owner()
		for _, a := range t.Arguments {
			templateArgs = append(templateArgs, templateArgEntity(a, entities))
		}
	case *sema.TemplateTraitInst:
		owner = t.Original.Owner()
		for _, a := range t.Arguments {
			templateArgs = append(templateArgs, templateArgEntity(a, entities))
		}
	}
	parent := scopeEntity(owner, entities)
	c := &mangle.Class{Parent: parent, Name: n.Name(), TemplateArgs: templateArgs}
	entities[n] = c
	return c
}

func templateArgEntity(a sema.TemplateArgument, entities map[interface{}]mangle.Entity) mangle.Type {
	if a.Type != nil {
		return typeEntity(a.Type, entities)
	}
	return constArgEntity(a.Const, entities)
}

func constArgEntity(e sema.Expression, entities map[interface{}]mangle.Entity) mangle.Type {
	switch n := e.(type) {
	case *sema.IntegerLiteral:
		return mangle.ValueArg{Type: typeEntity(n.Type, entities), Value: n.Value}
	case *sema.BoolLiteral:
		v := int64(0)
		if n.Value {
			v = 1
		}
		return mangle.ValueArg{Type: mangle.Bool, Value: v}
	case *sema.EnumConstRef:
		return mangle.ValueArg{Type: typeEntity(n.Target.ExpressionType(), entities), Value: n.Target.Value}
	default:
		return mangle.ValueArg{Type: mangle.I32, Value: 0}
	}
}

// scopeEntity mirrors classEntity for any Owner that can stand as a
// mangling scope: a Namespace (skipped at the unnamed root, which mangles
// as an unscoped name) or a type declaration.
func scopeEntity(o sema.Owner, entities map[interface{}]mangle.Entity) mangle.Scope {
	if o == nil {
		return nil
	}
	switch n := o.(type) {
	case *sema.Namespace:
		if n.Name() == "" {
			return nil
		}
		if e, ok := entities[n]; ok {
			return e.(*mangle.Namespace)
		}
		var parent mangle.Scope
		if owned, ok := o.(sema.Owned); ok {
			parent = scopeEntity(owned.Owner(), entities)
		}
		ns := &mangle.Namespace{Parent: parent, Name: n.Name()}
		entities[n] = ns
		return ns
	case *sema.Struct:
		return classEntity(n, entities)
	case *sema.Trait:
		return classEntity(n, entities)
	case *sema.Enum:
		return classEntity(n, entities)
	case *sema.TemplateStructInst:
		return classEntity(n, entities)
	case *sema.TemplateTraitInst:
		return classEntity(n, entities)
	default:
		return nil
	}
}

// typeEntity converts a resolved sema.Type into the mangle.Type it mangles
// as, the single place spec §4.8's builtin/pointer/reference/qualifier
// letter table (P/R/O/K) is applied from the resolver side.
func typeEntity(t sema.Type, entities map[interface{}]mangle.Entity) mangle.Type {
	if t == nil {
		return mangle.Void
	}
	switch n := t.(type) {
	case *sema.Builtin:
		return builtinEntity(n.Kind)
	case *sema.Pointer:
		return mangle.Pointer{To: typeEntity(n.To, entities)}
	case *sema.Reference:
		return mangle.Reference{To: typeEntity(n.To, entities)}
	case *sema.RValueReference:
		return mangle.RValueReference{To: typeEntity(n.To, entities)}
	case *sema.Qualified:
		q := mangle.Unqualified
		if n.Qualifier == ast.QualImmut || n.Qualifier == ast.QualConst {
			q = mangle.Immut
		}
		return mangle.Qualified{Qualifier: q, Underlying: typeEntity(n.Underlying, entities)}
	case *sema.Struct:
		return classEntity(n, entities)
	case *sema.Trait:
		return classEntity(n, entities)
	case *sema.Enum:
		return classEntity(n, entities)
	case *sema.TemplateStructInst:
		return classEntity(n, entities)
	case *sema.TemplateTraitInst:
		return classEntity(n, entities)
	case *sema.Alias:
		return typeEntity(n.Underlying, entities)
	case *sema.Self:
		return typeEntity(n.Resolved, entities)
	case *sema.VTable:
		return mangle.Pointer{To: typeEntity(n.Of, entities)}
	default:
		return mangle.Void
	}
}

func builtinEntity(k sema.BuiltinKind) mangle.Builtin {
	switch k {
	case sema.Void:
		return mangle.Void
	case sema.Bool:
		return mangle.Bool
	case sema.Char:
		return mangle.Char
	case sema.I8:
		return mangle.I8
	case sema.U8:
		return mangle.U8
	case sema.I16:
		return mangle.I16
	case sema.U16:
		return mangle.U16
	case sema.I32:
		return mangle.I32
	case sema.U32:
		return mangle.U32
	case sema.I64:
		return mangle.I64
	case sema.U64:
		return mangle.U64
	case sema.F16:
		return mangle.F16
	case sema.F32:
		return mangle.F32
	case sema.F64:
		return mangle.F64
	default:
		return mangle.Void
	}
}
