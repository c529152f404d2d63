package native

import "github.com/ebitengine/purego"

// Solvers, models, tactics, goals, parameter sets, quantifier elimination and
// the fixedpoint engine.
var (
	MkSolver              func(ctx uintptr) uintptr
	MkSimpleSolver        func(ctx uintptr) uintptr
	MkSolverForLogic      func(ctx, logic uintptr) uintptr
	SolverIncRef          func(ctx, s uintptr)
	SolverDecRef          func(ctx, s uintptr)
	SolverToString        func(ctx, s uintptr) string
	SolverAssert          func(ctx, s, ast uintptr)
	SolverAssertAndTrack  func(ctx, s, ast, track uintptr)
	SolverCheck           func(ctx, s uintptr) int32
	SolverCheckAssumps    func(ctx, s uintptr, n uint32, assumptions *uintptr) int32
	SolverGetModel        func(ctx, s uintptr) uintptr
	SolverPush            func(ctx, s uintptr)
	SolverPop             func(ctx, s uintptr, n uint32)
	SolverReset           func(ctx, s uintptr)
	SolverGetNumScopes    func(ctx, s uintptr) uint32
	SolverGetAssertions   func(ctx, s uintptr) uintptr
	SolverGetUnsatCore    func(ctx, s uintptr) uintptr
	SolverReasonUnknown   func(ctx, s uintptr) string
	SolverGetStatistics   func(ctx, s uintptr) uintptr
	SolverFromString      func(ctx, s uintptr, str string)
	SolverSetParams       func(ctx, s, params uintptr)
	SolverInterrupt       func(ctx, s uintptr)

	ModelIncRef         func(ctx, m uintptr)
	ModelDecRef         func(ctx, m uintptr)
	ModelToString       func(ctx, m uintptr) string
	ModelEval           func(ctx, m, ast uintptr, completion bool, out *uintptr) bool
	ModelGetNumConsts   func(ctx, m uintptr) uint32
	ModelGetNumFuncs    func(ctx, m uintptr) uint32
	ModelGetConstDecl   func(ctx, m uintptr, i uint32) uintptr
	ModelGetFuncDecl    func(ctx, m uintptr, i uint32) uintptr
	ModelGetConstInterp func(ctx, m, decl uintptr) uintptr
	ModelGetFuncInterp  func(ctx, m, decl uintptr) uintptr

	FuncInterpIncRef        func(ctx, fi uintptr)
	FuncInterpDecRef        func(ctx, fi uintptr)
	FuncInterpGetNumEntries func(ctx, fi uintptr) uint32
	FuncInterpGetElse       func(ctx, fi uintptr) uintptr
	FuncInterpGetArity      func(ctx, fi uintptr) uint32

	MkTactic       func(ctx uintptr, name string) uintptr
	TacticIncRef   func(ctx, t uintptr)
	TacticDecRef   func(ctx, t uintptr)
	TacticApply    func(ctx, t, goal uintptr) uintptr
	TacticAndThen  func(ctx, t1, t2 uintptr) uintptr
	TacticOrElse   func(ctx, t1, t2 uintptr) uintptr
	TacticRepeat   func(ctx, t uintptr, max uint32) uintptr
	TacticGetHelp  func(ctx, t uintptr) string

	MkGoal       func(ctx uintptr, models, unsatCores, proofs bool) uintptr
	GoalIncRef   func(ctx, g uintptr)
	GoalDecRef   func(ctx, g uintptr)
	GoalAssert   func(ctx, g, ast uintptr)
	GoalSize     func(ctx, g uintptr) uint32
	GoalFormula  func(ctx, g uintptr, i uint32) uintptr
	GoalReset    func(ctx, g uintptr)
	GoalToString func(ctx, g uintptr) string

	ApplyResultIncRef         func(ctx, r uintptr)
	ApplyResultDecRef         func(ctx, r uintptr)
	ApplyResultGetNumSubgoals func(ctx, r uintptr) uint32
	ApplyResultGetSubgoal     func(ctx, r uintptr, i uint32) uintptr
	ApplyResultToString       func(ctx, r uintptr) string

	MkParams        func(ctx uintptr) uintptr
	ParamsIncRef    func(ctx, p uintptr)
	ParamsDecRef    func(ctx, p uintptr)
	ParamsSetBool   func(ctx, p, sym uintptr, v bool)
	ParamsSetUint   func(ctx, p, sym uintptr, v uint32)
	ParamsSetDouble func(ctx, p, sym uintptr, v float64)
	ParamsSetSymbol func(ctx, p, sym, value uintptr)
	ParamsToString  func(ctx, p uintptr) string

	QELite         func(ctx, vars, body uintptr) uintptr
	QEModelProject func(ctx, model uintptr, n uint32, vars *uintptr, body uintptr) uintptr

	MkFixedpoint               func(ctx uintptr) uintptr
	FixedpointIncRef           func(ctx, fp uintptr)
	FixedpointDecRef           func(ctx, fp uintptr)
	FixedpointAssert           func(ctx, fp, ast uintptr)
	FixedpointRegisterRelation func(ctx, fp, decl uintptr)
	FixedpointAddRule          func(ctx, fp, rule, name uintptr)
	FixedpointAddFact          func(ctx, fp, pred uintptr, n uint32, args *uint32)
	FixedpointQuery            func(ctx, fp, query uintptr) int32
	FixedpointGetAnswer        func(ctx, fp uintptr) uintptr
	FixedpointReasonUnknown    func(ctx, fp uintptr) string
	FixedpointToString         func(ctx, fp uintptr, n uint32, args *uintptr) string
	FixedpointFromString       func(ctx, fp uintptr, s string) uintptr
	FixedpointSetParams        func(ctx, fp, params uintptr)
	FixedpointGetAssertions    func(ctx, fp uintptr) uintptr
	FixedpointGetStatistics    func(ctx, fp uintptr) uintptr

	StatsIncRef         func(ctx, st uintptr)
	StatsDecRef         func(ctx, st uintptr)
	StatsToString       func(ctx, st uintptr) string
	StatsSize           func(ctx, st uintptr) uint32
	StatsGetKey         func(ctx, st uintptr, i uint32) string
	StatsIsUint         func(ctx, st uintptr, i uint32) bool
	StatsIsDouble       func(ctx, st uintptr, i uint32) bool
	StatsGetUintValue   func(ctx, st uintptr, i uint32) uint32
	StatsGetDoubleValue func(ctx, st uintptr, i uint32) float64
)

func registerSolver(lib uintptr) {
	purego.RegisterLibFunc(&MkSolver, lib, "Z3_mk_solver")
	purego.RegisterLibFunc(&MkSimpleSolver, lib, "Z3_mk_simple_solver")
	purego.RegisterLibFunc(&MkSolverForLogic, lib, "Z3_mk_solver_for_logic")
	purego.RegisterLibFunc(&SolverIncRef, lib, "Z3_solver_inc_ref")
	purego.RegisterLibFunc(&SolverDecRef, lib, "Z3_solver_dec_ref")
	purego.RegisterLibFunc(&SolverToString, lib, "Z3_solver_to_string")
	purego.RegisterLibFunc(&SolverAssert, lib, "Z3_solver_assert")
	purego.RegisterLibFunc(&SolverAssertAndTrack, lib, "Z3_solver_assert_and_track")
	purego.RegisterLibFunc(&SolverCheck, lib, "Z3_solver_check")
	purego.RegisterLibFunc(&SolverCheckAssumps, lib, "Z3_solver_check_assumptions")
	purego.RegisterLibFunc(&SolverGetModel, lib, "Z3_solver_get_model")
	purego.RegisterLibFunc(&SolverPush, lib, "Z3_solver_push")
	purego.RegisterLibFunc(&SolverPop, lib, "Z3_solver_pop")
	purego.RegisterLibFunc(&SolverReset, lib, "Z3_solver_reset")
	purego.RegisterLibFunc(&SolverGetNumScopes, lib, "Z3_solver_get_num_scopes")
	purego.RegisterLibFunc(&SolverGetAssertions, lib, "Z3_solver_get_assertions")
	purego.RegisterLibFunc(&SolverGetUnsatCore, lib, "Z3_solver_get_unsat_core")
	purego.RegisterLibFunc(&SolverReasonUnknown, lib, "Z3_solver_get_reason_unknown")
	purego.RegisterLibFunc(&SolverGetStatistics, lib, "Z3_solver_get_statistics")
	purego.RegisterLibFunc(&SolverFromString, lib, "Z3_solver_from_string")
	purego.RegisterLibFunc(&SolverSetParams, lib, "Z3_solver_set_params")
	purego.RegisterLibFunc(&SolverInterrupt, lib, "Z3_solver_interrupt")

	purego.RegisterLibFunc(&ModelIncRef, lib, "Z3_model_inc_ref")
	purego.RegisterLibFunc(&ModelDecRef, lib, "Z3_model_dec_ref")
	purego.RegisterLibFunc(&ModelToString, lib, "Z3_model_to_string")
	purego.RegisterLibFunc(&ModelEval, lib, "Z3_model_eval")
	purego.RegisterLibFunc(&ModelGetNumConsts, lib, "Z3_model_get_num_consts")
	purego.RegisterLibFunc(&ModelGetNumFuncs, lib, "Z3_model_get_num_funcs")
	purego.RegisterLibFunc(&ModelGetConstDecl, lib, "Z3_model_get_const_decl")
	purego.RegisterLibFunc(&ModelGetFuncDecl, lib, "Z3_model_get_func_decl")
	purego.RegisterLibFunc(&ModelGetConstInterp, lib, "Z3_model_get_const_interp")
	purego.RegisterLibFunc(&ModelGetFuncInterp, lib, "Z3_model_get_func_interp")

	purego.RegisterLibFunc(&FuncInterpIncRef, lib, "Z3_func_interp_inc_ref")
	purego.RegisterLibFunc(&FuncInterpDecRef, lib, "Z3_func_interp_dec_ref")
	purego.RegisterLibFunc(&FuncInterpGetNumEntries, lib, "Z3_func_interp_get_num_entries")
	purego.RegisterLibFunc(&FuncInterpGetElse, lib, "Z3_func_interp_get_else")
	purego.RegisterLibFunc(&FuncInterpGetArity, lib, "Z3_func_interp_get_arity")

	purego.RegisterLibFunc(&MkTactic, lib, "Z3_mk_tactic")
	purego.RegisterLibFunc(&TacticIncRef, lib, "Z3_tactic_inc_ref")
	purego.RegisterLibFunc(&TacticDecRef, lib, "Z3_tactic_dec_ref")
	purego.RegisterLibFunc(&TacticApply, lib, "Z3_tactic_apply")
	purego.RegisterLibFunc(&TacticAndThen, lib, "Z3_tactic_and_then")
	purego.RegisterLibFunc(&TacticOrElse, lib, "Z3_tactic_or_else")
	purego.RegisterLibFunc(&TacticRepeat, lib, "Z3_tactic_repeat")
	purego.RegisterLibFunc(&TacticGetHelp, lib, "Z3_tactic_get_help")

	purego.RegisterLibFunc(&MkGoal, lib, "Z3_mk_goal")
	purego.RegisterLibFunc(&GoalIncRef, lib, "Z3_goal_inc_ref")
	purego.RegisterLibFunc(&GoalDecRef, lib, "Z3_goal_dec_ref")
	purego.RegisterLibFunc(&GoalAssert, lib, "Z3_goal_assert")
	purego.RegisterLibFunc(&GoalSize, lib, "Z3_goal_size")
	purego.RegisterLibFunc(&GoalFormula, lib, "Z3_goal_formula")
	purego.RegisterLibFunc(&GoalReset, lib, "Z3_goal_reset")
	purego.RegisterLibFunc(&GoalToString, lib, "Z3_goal_to_string")

	purego.RegisterLibFunc(&ApplyResultIncRef, lib, "Z3_apply_result_inc_ref")
	purego.RegisterLibFunc(&ApplyResultDecRef, lib, "Z3_apply_result_dec_ref")
	purego.RegisterLibFunc(&ApplyResultGetNumSubgoals, lib, "Z3_apply_result_get_num_subgoals")
	purego.RegisterLibFunc(&ApplyResultGetSubgoal, lib, "Z3_apply_result_get_subgoal")
	purego.RegisterLibFunc(&ApplyResultToString, lib, "Z3_apply_result_to_string")

	purego.RegisterLibFunc(&MkParams, lib, "Z3_mk_params")
	purego.RegisterLibFunc(&ParamsIncRef, lib, "Z3_params_inc_ref")
	purego.RegisterLibFunc(&ParamsDecRef, lib, "Z3_params_dec_ref")
	purego.RegisterLibFunc(&ParamsSetBool, lib, "Z3_params_set_bool")
	purego.RegisterLibFunc(&ParamsSetUint, lib, "Z3_params_set_uint")
	purego.RegisterLibFunc(&ParamsSetDouble, lib, "Z3_params_set_double")
	purego.RegisterLibFunc(&ParamsSetSymbol, lib, "Z3_params_set_symbol")
	purego.RegisterLibFunc(&ParamsToString, lib, "Z3_params_to_string")

	purego.RegisterLibFunc(&QELite, lib, "Z3_qe_lite")
	purego.RegisterLibFunc(&QEModelProject, lib, "Z3_qe_model_project")

	purego.RegisterLibFunc(&MkFixedpoint, lib, "Z3_mk_fixedpoint")
	purego.RegisterLibFunc(&FixedpointIncRef, lib, "Z3_fixedpoint_inc_ref")
	purego.RegisterLibFunc(&FixedpointDecRef, lib, "Z3_fixedpoint_dec_ref")
	purego.RegisterLibFunc(&FixedpointAssert, lib, "Z3_fixedpoint_assert")
	purego.RegisterLibFunc(&FixedpointRegisterRelation, lib, "Z3_fixedpoint_register_relation")
	purego.RegisterLibFunc(&FixedpointAddRule, lib, "Z3_fixedpoint_add_rule")
	purego.RegisterLibFunc(&FixedpointAddFact, lib, "Z3_fixedpoint_add_fact")
	purego.RegisterLibFunc(&FixedpointQuery, lib, "Z3_fixedpoint_query")
	purego.RegisterLibFunc(&FixedpointGetAnswer, lib, "Z3_fixedpoint_get_answer")
	purego.RegisterLibFunc(&FixedpointReasonUnknown, lib, "Z3_fixedpoint_get_reason_unknown")
	purego.RegisterLibFunc(&FixedpointToString, lib, "Z3_fixedpoint_to_string")
	purego.RegisterLibFunc(&FixedpointFromString, lib, "Z3_fixedpoint_from_string")
	purego.RegisterLibFunc(&FixedpointSetParams, lib, "Z3_fixedpoint_set_params")
	purego.RegisterLibFunc(&FixedpointGetAssertions, lib, "Z3_fixedpoint_get_assertions")
	purego.RegisterLibFunc(&FixedpointGetStatistics, lib, "Z3_fixedpoint_get_statistics")

	purego.RegisterLibFunc(&StatsIncRef, lib, "Z3_stats_inc_ref")
	purego.RegisterLibFunc(&StatsDecRef, lib, "Z3_stats_dec_ref")
	purego.RegisterLibFunc(&StatsToString, lib, "Z3_stats_to_string")
	purego.RegisterLibFunc(&StatsSize, lib, "Z3_stats_size")
	purego.RegisterLibFunc(&StatsGetKey, lib, "Z3_stats_get_key")
	purego.RegisterLibFunc(&StatsIsUint, lib, "Z3_stats_is_uint")
	purego.RegisterLibFunc(&StatsIsDouble, lib, "Z3_stats_is_double")
	purego.RegisterLibFunc(&StatsGetUintValue, lib, "Z3_stats_get_uint_value")
	purego.RegisterLibFunc(&StatsGetDoubleValue, lib, "Z3_stats_get_double_value")
}
