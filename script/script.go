// Package script exposes xform matrices to Lua.
//
// The module registers under the name "xform" and hands out matrix
// userdata with method and operator metatables:
//
//	local xform = require("xform")
//	local m = xform.scale(2, 3):mul(xform.translate(10, 20))
//	local x, y = m:map(1, 1)
//	print(m:kind())          --> translate|scale
//	print(m * xform.identity())
//
// Matrices are value types: every operation except set returns a fresh
// matrix and leaves its operands untouched. set mutates the receiver in
// place, which is what scripts poking individual elements expect.
package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/gogpu/xform"
)

// ModuleName is the name scripts pass to require.
const ModuleName = "xform"

// matrixTypeName keys the userdata metatable.
const matrixTypeName = "xform.matrix"

// Preload registers the xform module so Lua code can require("xform").
func Preload(L *lua.LState) {
	L.PreloadModule(ModuleName, Loader)
}

// Loader builds the module table. Use with PreloadModule, or directly for
// custom module setups.
func Loader(L *lua.LState) int {
	registerMatrixType(L)

	mod := L.SetFuncs(L.NewTable(), exports)
	L.Push(mod)
	return 1
}

var exports = map[string]lua.LGFunction{
	"matrix":    luaMatrix,
	"identity":  luaIdentity,
	"translate": luaTranslate,
	"scale":     luaScale,
	"rotate":    luaRotate,
	"shear":     luaShear,
}

func registerMatrixType(L *lua.LState) {
	mt := L.NewTypeMetatable(matrixTypeName)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), matrixMethods))
	L.SetField(mt, "__mul", L.NewFunction(matrixMul))
	L.SetField(mt, "__eq", L.NewFunction(matrixEq))
	L.SetField(mt, "__tostring", L.NewFunction(matrixTostring))
}

var matrixMethods = map[string]lua.LGFunction{
	"mul":    matrixMul,
	"invert": matrixInvert,
	"map":    matrixMap,
	"kind":   matrixKind,
	"get":    matrixGet,
	"set":    matrixSet,
}

// pushMatrix wraps m in a typed userdata.
func pushMatrix(L *lua.LState, m xform.Matrix) {
	ud := L.NewUserData()
	ud.Value = m
	L.SetMetatable(ud, L.GetTypeMetatable(matrixTypeName))
	L.Push(ud)
}

// checkMatrix extracts the matrix at stack position n, raising a Lua
// argument error for anything else.
func checkMatrix(L *lua.LState, n int) xform.Matrix {
	ud := L.CheckUserData(n)
	if m, ok := ud.Value.(xform.Matrix); ok {
		return m
	}
	L.ArgError(n, "matrix expected")
	return xform.Matrix{}
}

func luaMatrix(L *lua.LState) int {
	var m xform.Matrix
	for i := range m {
		m[i] = float64(L.CheckNumber(i + 1))
	}
	pushMatrix(L, m)
	return 1
}

func luaIdentity(L *lua.LState) int {
	pushMatrix(L, xform.Identity())
	return 1
}

func luaTranslate(L *lua.LState) int {
	x := float64(L.CheckNumber(1))
	y := float64(L.CheckNumber(2))
	pushMatrix(L, xform.Translate(x, y))
	return 1
}

func luaScale(L *lua.LState) int {
	sx := float64(L.CheckNumber(1))
	sy := float64(L.CheckNumber(2))
	pushMatrix(L, xform.Scale(sx, sy))
	return 1
}

func luaRotate(L *lua.LState) int {
	angle := float64(L.CheckNumber(1))
	pushMatrix(L, xform.Rotate(angle))
	return 1
}

func luaShear(L *lua.LState) int {
	x := float64(L.CheckNumber(1))
	y := float64(L.CheckNumber(2))
	pushMatrix(L, xform.Shear(x, y))
	return 1
}

func matrixMul(L *lua.LState) int {
	m := checkMatrix(L, 1)
	o := checkMatrix(L, 2)
	pushMatrix(L, m.Multiply(o))
	return 1
}

func matrixEq(L *lua.LState) int {
	m := checkMatrix(L, 1)
	o := checkMatrix(L, 2)
	L.Push(lua.LBool(m == o))
	return 1
}

func matrixTostring(L *lua.LState) int {
	m := checkMatrix(L, 1)
	L.Push(lua.LString(m.String()))
	return 1
}

// matrixInvert returns the inverse and a boolean; on a singular matrix
// the inverse is the identity and the boolean is false, mirroring
// xform.Matrix.Invert.
func matrixInvert(L *lua.LState) int {
	m := checkMatrix(L, 1)
	inv, ok := m.Invert()
	pushMatrix(L, inv)
	L.Push(lua.LBool(ok))
	return 2
}

func matrixMap(L *lua.LState) int {
	m := checkMatrix(L, 1)
	x := float64(L.CheckNumber(2))
	y := float64(L.CheckNumber(3))
	p := m.MapPoint(xform.Pt(x, y))
	L.Push(lua.LNumber(p.X))
	L.Push(lua.LNumber(p.Y))
	return 2
}

func matrixKind(L *lua.LState) int {
	m := checkMatrix(L, 1)
	L.Push(lua.LString(m.Kind().String()))
	return 1
}

func matrixGet(L *lua.LState) int {
	m := checkMatrix(L, 1)
	i := L.CheckInt(2)
	if i < 0 || i >= len(m) {
		L.ArgError(2, "index out of range [0, 8]")
		return 0
	}
	L.Push(lua.LNumber(m[i]))
	return 1
}

func matrixSet(L *lua.LState) int {
	ud := L.CheckUserData(1)
	m, ok := ud.Value.(xform.Matrix)
	if !ok {
		L.ArgError(1, "matrix expected")
		return 0
	}
	i := L.CheckInt(2)
	if i < 0 || i >= len(m) {
		L.ArgError(2, "index out of range [0, 8]")
		return 0
	}
	m[i] = float64(L.CheckNumber(3))
	ud.Value = m
	return 0
}
