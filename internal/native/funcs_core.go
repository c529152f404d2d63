package native

import "github.com/ebitengine/purego"

// Core API: configuration, contexts, symbols, sorts, expressions, quantifiers
// and integer/real arithmetic. Array arguments are passed as a pointer to the
// first element of a uintptr slice; Z3 strings come back as Go strings (purego
// copies them before the underlying buffer is reused by Z3).
var (
	MkConfig      func() uintptr
	DelConfig     func(cfg uintptr)
	SetParamValue func(cfg uintptr, id, value string)

	MkContextRC      func(cfg uintptr) uintptr
	DelContext       func(ctx uintptr)
	UpdateParamValue func(ctx uintptr, id, value string)
	SetErrorHandler  func(ctx, handler uintptr)
	GetErrorCode     func(ctx uintptr) uint32
	GetErrorMsg      func(ctx uintptr, code uint32) string
	GetVersion       func(major, minor, build, revision *uint32)

	IncRef func(ctx, ast uintptr)
	DecRef func(ctx, ast uintptr)

	MkIntSymbol     func(ctx uintptr, i int32) uintptr
	MkStringSymbol  func(ctx uintptr, s string) uintptr
	GetSymbolKind   func(ctx, sym uintptr) uint32
	GetSymbolInt    func(ctx, sym uintptr) int32
	GetSymbolString func(ctx, sym uintptr) string

	ASTToString func(ctx, ast uintptr) string
	GetASTHash  func(ctx, ast uintptr) uint32
	IsEqAST     func(ctx, a, b uintptr) bool
	Translate   func(ctx, ast, target uintptr) uintptr
	Simplify    func(ctx, ast uintptr) uintptr

	SortToAST    func(ctx, sort uintptr) uintptr
	SortToString func(ctx, sort uintptr) string
	IsEqSort     func(ctx, a, b uintptr) bool
	GetSort      func(ctx, ast uintptr) uintptr
	GetSortKind  func(ctx, sort uintptr) uint32
	MkBoolSort   func(ctx uintptr) uintptr

	MkTrue           func(ctx uintptr) uintptr
	MkFalse          func(ctx uintptr) uintptr
	MkNumeral        func(ctx uintptr, numeral string, sort uintptr) uintptr
	GetNumeralString func(ctx, ast uintptr) string
	MkConst          func(ctx, sym, sort uintptr) uintptr

	MkAnd      func(ctx uintptr, n uint32, args *uintptr) uintptr
	MkOr       func(ctx uintptr, n uint32, args *uintptr) uintptr
	MkDistinct func(ctx uintptr, n uint32, args *uintptr) uintptr
	MkNot      func(ctx, a uintptr) uintptr
	MkImplies  func(ctx, a, b uintptr) uintptr
	MkIff      func(ctx, a, b uintptr) uintptr
	MkXor      func(ctx, a, b uintptr) uintptr
	MkEq       func(ctx, a, b uintptr) uintptr
	MkIte      func(ctx, cond, t, e uintptr) uintptr

	MkFuncDecl       func(ctx, sym uintptr, n uint32, domain *uintptr, rng uintptr) uintptr
	MkApp            func(ctx, decl uintptr, n uint32, args *uintptr) uintptr
	FuncDeclToAST    func(ctx, decl uintptr) uintptr
	FuncDeclToString func(ctx, decl uintptr) string
	GetDeclName      func(ctx, decl uintptr) uintptr
	GetArity         func(ctx, decl uintptr) uint32
	GetDomain        func(ctx, decl uintptr, i uint32) uintptr
	GetRange         func(ctx, decl uintptr) uintptr

	MkForallConst         func(ctx uintptr, weight, n uint32, bound *uintptr, npats uint32, pats *uintptr, body uintptr) uintptr
	MkExistsConst         func(ctx uintptr, weight, n uint32, bound *uintptr, npats uint32, pats *uintptr, body uintptr) uintptr
	IsQuantifierForall    func(ctx, ast uintptr) bool
	IsQuantifierExists    func(ctx, ast uintptr) bool
	GetQuantifierNumBound func(ctx, ast uintptr) uint32
	GetQuantifierBody     func(ctx, ast uintptr) uintptr

	MkIntSort    func(ctx uintptr) uintptr
	MkRealSort   func(ctx uintptr) uintptr
	MkInt        func(ctx uintptr, v int32, sort uintptr) uintptr
	MkInt64      func(ctx uintptr, v int64, sort uintptr) uintptr
	MkReal       func(ctx uintptr, num, den int32) uintptr
	MkAdd        func(ctx uintptr, n uint32, args *uintptr) uintptr
	MkSub        func(ctx uintptr, n uint32, args *uintptr) uintptr
	MkMul        func(ctx uintptr, n uint32, args *uintptr) uintptr
	MkUnaryMinus func(ctx, a uintptr) uintptr
	MkDiv        func(ctx, a, b uintptr) uintptr
	MkMod        func(ctx, a, b uintptr) uintptr
	MkRem        func(ctx, a, b uintptr) uintptr
	MkPower      func(ctx, a, b uintptr) uintptr
	MkLt         func(ctx, a, b uintptr) uintptr
	MkLe         func(ctx, a, b uintptr) uintptr
	MkGt         func(ctx, a, b uintptr) uintptr
	MkGe         func(ctx, a, b uintptr) uintptr

	OpenLog   func(filename string) bool
	CloseLog  func()
	AppendLog func(s string)
)

func registerCore(lib uintptr) {
	purego.RegisterLibFunc(&MkConfig, lib, "Z3_mk_config")
	purego.RegisterLibFunc(&DelConfig, lib, "Z3_del_config")
	purego.RegisterLibFunc(&SetParamValue, lib, "Z3_set_param_value")

	purego.RegisterLibFunc(&MkContextRC, lib, "Z3_mk_context_rc")
	purego.RegisterLibFunc(&DelContext, lib, "Z3_del_context")
	purego.RegisterLibFunc(&UpdateParamValue, lib, "Z3_update_param_value")
	purego.RegisterLibFunc(&SetErrorHandler, lib, "Z3_set_error_handler")
	purego.RegisterLibFunc(&GetErrorCode, lib, "Z3_get_error_code")
	purego.RegisterLibFunc(&GetErrorMsg, lib, "Z3_get_error_msg")
	purego.RegisterLibFunc(&GetVersion, lib, "Z3_get_version")

	purego.RegisterLibFunc(&IncRef, lib, "Z3_inc_ref")
	purego.RegisterLibFunc(&DecRef, lib, "Z3_dec_ref")

	purego.RegisterLibFunc(&MkIntSymbol, lib, "Z3_mk_int_symbol")
	purego.RegisterLibFunc(&MkStringSymbol, lib, "Z3_mk_string_symbol")
	purego.RegisterLibFunc(&GetSymbolKind, lib, "Z3_get_symbol_kind")
	purego.RegisterLibFunc(&GetSymbolInt, lib, "Z3_get_symbol_int")
	purego.RegisterLibFunc(&GetSymbolString, lib, "Z3_get_symbol_string")

	purego.RegisterLibFunc(&ASTToString, lib, "Z3_ast_to_string")
	purego.RegisterLibFunc(&GetASTHash, lib, "Z3_get_ast_hash")
	purego.RegisterLibFunc(&IsEqAST, lib, "Z3_is_eq_ast")
	purego.RegisterLibFunc(&Translate, lib, "Z3_translate")
	purego.RegisterLibFunc(&Simplify, lib, "Z3_simplify")

	purego.RegisterLibFunc(&SortToAST, lib, "Z3_sort_to_ast")
	purego.RegisterLibFunc(&SortToString, lib, "Z3_sort_to_string")
	purego.RegisterLibFunc(&IsEqSort, lib, "Z3_is_eq_sort")
	purego.RegisterLibFunc(&GetSort, lib, "Z3_get_sort")
	purego.RegisterLibFunc(&GetSortKind, lib, "Z3_get_sort_kind")
	purego.RegisterLibFunc(&MkBoolSort, lib, "Z3_mk_bool_sort")

	purego.RegisterLibFunc(&MkTrue, lib, "Z3_mk_true")
	purego.RegisterLibFunc(&MkFalse, lib, "Z3_mk_false")
	purego.RegisterLibFunc(&MkNumeral, lib, "Z3_mk_numeral")
	purego.RegisterLibFunc(&GetNumeralString, lib, "Z3_get_numeral_string")
	purego.RegisterLibFunc(&MkConst, lib, "Z3_mk_const")

	purego.RegisterLibFunc(&MkAnd, lib, "Z3_mk_and")
	purego.RegisterLibFunc(&MkOr, lib, "Z3_mk_or")
	purego.RegisterLibFunc(&MkDistinct, lib, "Z3_mk_distinct")
	purego.RegisterLibFunc(&MkNot, lib, "Z3_mk_not")
	purego.RegisterLibFunc(&MkImplies, lib, "Z3_mk_implies")
	purego.RegisterLibFunc(&MkIff, lib, "Z3_mk_iff")
	purego.RegisterLibFunc(&MkXor, lib, "Z3_mk_xor")
	purego.RegisterLibFunc(&MkEq, lib, "Z3_mk_eq")
	purego.RegisterLibFunc(&MkIte, lib, "Z3_mk_ite")

	purego.RegisterLibFunc(&MkFuncDecl, lib, "Z3_mk_func_decl")
	purego.RegisterLibFunc(&MkApp, lib, "Z3_mk_app")
	purego.RegisterLibFunc(&FuncDeclToAST, lib, "Z3_func_decl_to_ast")
	purego.RegisterLibFunc(&FuncDeclToString, lib, "Z3_func_decl_to_string")
	purego.RegisterLibFunc(&GetDeclName, lib, "Z3_get_decl_name")
	purego.RegisterLibFunc(&GetArity, lib, "Z3_get_arity")
	purego.RegisterLibFunc(&GetDomain, lib, "Z3_get_domain")
	purego.RegisterLibFunc(&GetRange, lib, "Z3_get_range")

	purego.RegisterLibFunc(&MkForallConst, lib, "Z3_mk_forall_const")
	purego.RegisterLibFunc(&MkExistsConst, lib, "Z3_mk_exists_const")
	purego.RegisterLibFunc(&IsQuantifierForall, lib, "Z3_is_quantifier_forall")
	purego.RegisterLibFunc(&IsQuantifierExists, lib, "Z3_is_quantifier_exists")
	purego.RegisterLibFunc(&GetQuantifierNumBound, lib, "Z3_get_quantifier_num_bound")
	purego.RegisterLibFunc(&GetQuantifierBody, lib, "Z3_get_quantifier_body")

	purego.RegisterLibFunc(&MkIntSort, lib, "Z3_mk_int_sort")
	purego.RegisterLibFunc(&MkRealSort, lib, "Z3_mk_real_sort")
	purego.RegisterLibFunc(&MkInt, lib, "Z3_mk_int")
	purego.RegisterLibFunc(&MkInt64, lib, "Z3_mk_int64")
	purego.RegisterLibFunc(&MkReal, lib, "Z3_mk_real")
	purego.RegisterLibFunc(&MkAdd, lib, "Z3_mk_add")
	purego.RegisterLibFunc(&MkSub, lib, "Z3_mk_sub")
	purego.RegisterLibFunc(&MkMul, lib, "Z3_mk_mul")
	purego.RegisterLibFunc(&MkUnaryMinus, lib, "Z3_mk_unary_minus")
	purego.RegisterLibFunc(&MkDiv, lib, "Z3_mk_div")
	purego.RegisterLibFunc(&MkMod, lib, "Z3_mk_mod")
	purego.RegisterLibFunc(&MkRem, lib, "Z3_mk_rem")
	purego.RegisterLibFunc(&MkPower, lib, "Z3_mk_power")
	purego.RegisterLibFunc(&MkLt, lib, "Z3_mk_lt")
	purego.RegisterLibFunc(&MkLe, lib, "Z3_mk_le")
	purego.RegisterLibFunc(&MkGt, lib, "Z3_mk_gt")
	purego.RegisterLibFunc(&MkGe, lib, "Z3_mk_ge")

	purego.RegisterLibFunc(&OpenLog, lib, "Z3_open_log")
	purego.RegisterLibFunc(&CloseLog, lib, "Z3_close_log")
	purego.RegisterLibFunc(&AppendLog, lib, "Z3_append_log")
}
