package script

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/m4theushw/material-ui-x/internal/rows"
)

func stringReader(s string) io.Reader { return strings.NewReader(s) }

// toLua converts cell values and rows. Unknown types become their
// fmt representation.
func toLua(L *lua.LState, v any) lua.LValue {
	switch t := v.(type) {
	case nil:
		return lua.LNil
	case bool:
		return lua.LBool(t)
	case string:
		return lua.LString(t)
	case int:
		return lua.LNumber(t)
	case int32:
		return lua.LNumber(t)
	case int64:
		return lua.LNumber(t)
	case float32:
		return lua.LNumber(t)
	case float64:
		return lua.LNumber(t)
	case time.Time:
		return lua.LNumber(t.Unix())
	case rows.Row:
		return mapToTable(L, t)
	case map[string]any:
		return mapToTable(L, t)
	case []any:
		tbl := L.NewTable()
		for i, e := range t {
			tbl.RawSetInt(i+1, toLua(L, e))
		}
		return tbl
	case lua.LValue:
		return t
	}
	return lua.LString(fmt.Sprint(v))
}

func mapToTable(L *lua.LState, m map[string]any) *lua.LTable {
	tbl := L.NewTable()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		tbl.RawSetString(k, toLua(L, m[k]))
	}
	return tbl
}

// fromLua converts a result. Integral numbers become int64, matching how
// row ids are normalized.
func fromLua(v lua.LValue) any {
	switch t := v.(type) {
	case lua.LBool:
		return bool(t)
	case lua.LString:
		return string(t)
	case lua.LNumber:
		f := float64(t)
		if f == float64(int64(f)) {
			return int64(f)
		}
		return f
	case *lua.LTable:
		return tableToGo(t)
	}
	return nil
}

func tableToGo(t *lua.LTable) any {
	if n := t.Len(); n > 0 {
		out := make([]any, n)
		for i := 1; i <= n; i++ {
			out[i-1] = fromLua(t.RawGetInt(i))
		}
		return out
	}
	out := map[string]any{}
	t.ForEach(func(k, v lua.LValue) {
		out[k.String()] = fromLua(v)
	})
	return out
}
