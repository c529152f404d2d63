package native

import "github.com/ebitengine/purego"

// Theory extensions: AST vectors, the real algebraic number package,
// polynomial subresultants and floating-point arithmetic.
var (
	MkASTVector        func(ctx uintptr) uintptr
	ASTVectorIncRef    func(ctx, vec uintptr)
	ASTVectorDecRef    func(ctx, vec uintptr)
	ASTVectorSize      func(ctx, vec uintptr) uint32
	ASTVectorGet       func(ctx, vec uintptr, i uint32) uintptr
	ASTVectorSet       func(ctx, vec uintptr, i uint32, ast uintptr)
	ASTVectorPush      func(ctx, vec, ast uintptr)
	ASTVectorResize    func(ctx, vec uintptr, n uint32)
	ASTVectorTranslate func(ctx, vec, target uintptr) uintptr
	ASTVectorToString  func(ctx, vec uintptr) string

	AlgebraicIsValue func(ctx, ast uintptr) bool
	AlgebraicIsPos   func(ctx, ast uintptr) bool
	AlgebraicIsNeg   func(ctx, ast uintptr) bool
	AlgebraicIsZero  func(ctx, ast uintptr) bool
	AlgebraicSign    func(ctx, ast uintptr) int32
	AlgebraicAdd     func(ctx, a, b uintptr) uintptr
	AlgebraicSub     func(ctx, a, b uintptr) uintptr
	AlgebraicMul     func(ctx, a, b uintptr) uintptr
	AlgebraicDiv     func(ctx, a, b uintptr) uintptr
	AlgebraicRoot    func(ctx, a uintptr, k uint32) uintptr
	AlgebraicPower   func(ctx, a uintptr, k uint32) uintptr
	AlgebraicLt      func(ctx, a, b uintptr) bool
	AlgebraicGt      func(ctx, a, b uintptr) bool
	AlgebraicLe      func(ctx, a, b uintptr) bool
	AlgebraicGe      func(ctx, a, b uintptr) bool
	AlgebraicEq      func(ctx, a, b uintptr) bool
	AlgebraicNeq     func(ctx, a, b uintptr) bool

	PolynomialSubresultants func(ctx, p, q, x uintptr) uintptr

	MkFPASort             func(ctx uintptr, ebits, sbits uint32) uintptr
	MkFPASort16           func(ctx uintptr) uintptr
	MkFPASort32           func(ctx uintptr) uintptr
	MkFPASort64           func(ctx uintptr) uintptr
	MkFPASort128          func(ctx uintptr) uintptr
	MkFPARoundingModeSort func(ctx uintptr) uintptr

	MkFPARoundNearestTiesToEven func(ctx uintptr) uintptr
	MkFPARoundNearestTiesToAway func(ctx uintptr) uintptr
	MkFPARoundTowardPositive    func(ctx uintptr) uintptr
	MkFPARoundTowardNegative    func(ctx uintptr) uintptr
	MkFPARoundTowardZero        func(ctx uintptr) uintptr

	MkFPANumeralDouble func(ctx uintptr, v float64, sort uintptr) uintptr
	MkFPANumeralInt    func(ctx uintptr, v int32, sort uintptr) uintptr
	MkFPAInf           func(ctx, sort uintptr, negative bool) uintptr
	MkFPANaN           func(ctx, sort uintptr) uintptr
	MkFPAZero          func(ctx, sort uintptr, negative bool) uintptr

	MkFPAAdd             func(ctx, rm, a, b uintptr) uintptr
	MkFPASub             func(ctx, rm, a, b uintptr) uintptr
	MkFPAMul             func(ctx, rm, a, b uintptr) uintptr
	MkFPADiv             func(ctx, rm, a, b uintptr) uintptr
	MkFPAFMA             func(ctx, rm, a, b, c uintptr) uintptr
	MkFPASqrt            func(ctx, rm, a uintptr) uintptr
	MkFPARoundToIntegral func(ctx, rm, a uintptr) uintptr
	MkFPANeg             func(ctx, a uintptr) uintptr
	MkFPAAbs             func(ctx, a uintptr) uintptr
	MkFPARem             func(ctx, a, b uintptr) uintptr
	MkFPAMin             func(ctx, a, b uintptr) uintptr
	MkFPAMax             func(ctx, a, b uintptr) uintptr

	MkFPALt  func(ctx, a, b uintptr) uintptr
	MkFPAGt  func(ctx, a, b uintptr) uintptr
	MkFPALeq func(ctx, a, b uintptr) uintptr
	MkFPAGeq func(ctx, a, b uintptr) uintptr
	MkFPAEq  func(ctx, a, b uintptr) uintptr

	MkFPAIsNaN       func(ctx, a uintptr) uintptr
	MkFPAIsInfinite  func(ctx, a uintptr) uintptr
	MkFPAIsZero      func(ctx, a uintptr) uintptr
	MkFPAIsNormal    func(ctx, a uintptr) uintptr
	MkFPAIsSubnormal func(ctx, a uintptr) uintptr
	MkFPAIsPositive  func(ctx, a uintptr) uintptr
	MkFPAIsNegative  func(ctx, a uintptr) uintptr

	MkFPAToFPFloat   func(ctx, rm, t, sort uintptr) uintptr
	MkFPAToReal      func(ctx, t uintptr) uintptr
	GetNumeralDouble func(ctx, ast uintptr) float64
)

func registerTheories(lib uintptr) {
	purego.RegisterLibFunc(&MkASTVector, lib, "Z3_mk_ast_vector")
	purego.RegisterLibFunc(&ASTVectorIncRef, lib, "Z3_ast_vector_inc_ref")
	purego.RegisterLibFunc(&ASTVectorDecRef, lib, "Z3_ast_vector_dec_ref")
	purego.RegisterLibFunc(&ASTVectorSize, lib, "Z3_ast_vector_size")
	purego.RegisterLibFunc(&ASTVectorGet, lib, "Z3_ast_vector_get")
	purego.RegisterLibFunc(&ASTVectorSet, lib, "Z3_ast_vector_set")
	purego.RegisterLibFunc(&ASTVectorPush, lib, "Z3_ast_vector_push")
	purego.RegisterLibFunc(&ASTVectorResize, lib, "Z3_ast_vector_resize")
	purego.RegisterLibFunc(&ASTVectorTranslate, lib, "Z3_ast_vector_translate")
	purego.RegisterLibFunc(&ASTVectorToString, lib, "Z3_ast_vector_to_string")

	purego.RegisterLibFunc(&AlgebraicIsValue, lib, "Z3_algebraic_is_value")
	purego.RegisterLibFunc(&AlgebraicIsPos, lib, "Z3_algebraic_is_pos")
	purego.RegisterLibFunc(&AlgebraicIsNeg, lib, "Z3_algebraic_is_neg")
	purego.RegisterLibFunc(&AlgebraicIsZero, lib, "Z3_algebraic_is_zero")
	purego.RegisterLibFunc(&AlgebraicSign, lib, "Z3_algebraic_sign")
	purego.RegisterLibFunc(&AlgebraicAdd, lib, "Z3_algebraic_add")
	purego.RegisterLibFunc(&AlgebraicSub, lib, "Z3_algebraic_sub")
	purego.RegisterLibFunc(&AlgebraicMul, lib, "Z3_algebraic_mul")
	purego.RegisterLibFunc(&AlgebraicDiv, lib, "Z3_algebraic_div")
	purego.RegisterLibFunc(&AlgebraicRoot, lib, "Z3_algebraic_root")
	purego.RegisterLibFunc(&AlgebraicPower, lib, "Z3_algebraic_power")
	purego.RegisterLibFunc(&AlgebraicLt, lib, "Z3_algebraic_lt")
	purego.RegisterLibFunc(&AlgebraicGt, lib, "Z3_algebraic_gt")
	purego.RegisterLibFunc(&AlgebraicLe, lib, "Z3_algebraic_le")
	purego.RegisterLibFunc(&AlgebraicGe, lib, "Z3_algebraic_ge")
	purego.RegisterLibFunc(&AlgebraicEq, lib, "Z3_algebraic_eq")
	purego.RegisterLibFunc(&AlgebraicNeq, lib, "Z3_algebraic_neq")

	purego.RegisterLibFunc(&PolynomialSubresultants, lib, "Z3_polynomial_subresultants")

	purego.RegisterLibFunc(&MkFPASort, lib, "Z3_mk_fpa_sort")
	purego.RegisterLibFunc(&MkFPASort16, lib, "Z3_mk_fpa_sort_16")
	purego.RegisterLibFunc(&MkFPASort32, lib, "Z3_mk_fpa_sort_32")
	purego.RegisterLibFunc(&MkFPASort64, lib, "Z3_mk_fpa_sort_64")
	purego.RegisterLibFunc(&MkFPASort128, lib, "Z3_mk_fpa_sort_128")
	purego.RegisterLibFunc(&MkFPARoundingModeSort, lib, "Z3_mk_fpa_rounding_mode_sort")

	purego.RegisterLibFunc(&MkFPARoundNearestTiesToEven, lib, "Z3_mk_fpa_round_nearest_ties_to_even")
	purego.RegisterLibFunc(&MkFPARoundNearestTiesToAway, lib, "Z3_mk_fpa_round_nearest_ties_to_away")
	purego.RegisterLibFunc(&MkFPARoundTowardPositive, lib, "Z3_mk_fpa_round_toward_positive")
	purego.RegisterLibFunc(&MkFPARoundTowardNegative, lib, "Z3_mk_fpa_round_toward_negative")
	purego.RegisterLibFunc(&MkFPARoundTowardZero, lib, "Z3_mk_fpa_round_toward_zero")

	purego.RegisterLibFunc(&MkFPANumeralDouble, lib, "Z3_mk_fpa_numeral_double")
	purego.RegisterLibFunc(&MkFPANumeralInt, lib, "Z3_mk_fpa_numeral_int")
	purego.RegisterLibFunc(&MkFPAInf, lib, "Z3_mk_fpa_inf")
	purego.RegisterLibFunc(&MkFPANaN, lib, "Z3_mk_fpa_nan")
	purego.RegisterLibFunc(&MkFPAZero, lib, "Z3_mk_fpa_zero")

	purego.RegisterLibFunc(&MkFPAAdd, lib, "Z3_mk_fpa_add")
	purego.RegisterLibFunc(&MkFPASub, lib, "Z3_mk_fpa_sub")
	purego.RegisterLibFunc(&MkFPAMul, lib, "Z3_mk_fpa_mul")
	purego.RegisterLibFunc(&MkFPADiv, lib, "Z3_mk_fpa_div")
	purego.RegisterLibFunc(&MkFPAFMA, lib, "Z3_mk_fpa_fma")
	purego.RegisterLibFunc(&MkFPASqrt, lib, "Z3_mk_fpa_sqrt")
	purego.RegisterLibFunc(&MkFPARoundToIntegral, lib, "Z3_mk_fpa_round_to_integral")
	purego.RegisterLibFunc(&MkFPANeg, lib, "Z3_mk_fpa_neg")
	purego.RegisterLibFunc(&MkFPAAbs, lib, "Z3_mk_fpa_abs")
	purego.RegisterLibFunc(&MkFPARem, lib, "Z3_mk_fpa_rem")
	purego.RegisterLibFunc(&MkFPAMin, lib, "Z3_mk_fpa_min")
	purego.RegisterLibFunc(&MkFPAMax, lib, "Z3_mk_fpa_max")

	purego.RegisterLibFunc(&MkFPALt, lib, "Z3_mk_fpa_lt")
	purego.RegisterLibFunc(&MkFPAGt, lib, "Z3_mk_fpa_gt")
	purego.RegisterLibFunc(&MkFPALeq, lib, "Z3_mk_fpa_leq")
	purego.RegisterLibFunc(&MkFPAGeq, lib, "Z3_mk_fpa_geq")
	purego.RegisterLibFunc(&MkFPAEq, lib, "Z3_mk_fpa_eq")

	purego.RegisterLibFunc(&MkFPAIsNaN, lib, "Z3_mk_fpa_is_nan")
	purego.RegisterLibFunc(&MkFPAIsInfinite, lib, "Z3_mk_fpa_is_infinite")
	purego.RegisterLibFunc(&MkFPAIsZero, lib, "Z3_mk_fpa_is_zero")
	purego.RegisterLibFunc(&MkFPAIsNormal, lib, "Z3_mk_fpa_is_normal")
	purego.RegisterLibFunc(&MkFPAIsSubnormal, lib, "Z3_mk_fpa_is_subnormal")
	purego.RegisterLibFunc(&MkFPAIsPositive, lib, "Z3_mk_fpa_is_positive")
	purego.RegisterLibFunc(&MkFPAIsNegative, lib, "Z3_mk_fpa_is_negative")

	purego.RegisterLibFunc(&MkFPAToFPFloat, lib, "Z3_mk_fpa_to_fp_float")
	purego.RegisterLibFunc(&MkFPAToReal, lib, "Z3_mk_fpa_to_real")
	purego.RegisterLibFunc(&GetNumeralDouble, lib, "Z3_get_numeral_double")
}
