// Package lua runs user scripts that extend the editor.
//
// A Host owns one sandboxed gopher-lua state. Scripts see the base, table,
// string and math libraries plus a global "barcode" table:
//
//	barcode.bind("ctrl+t", function()
//	    barcode.insert("TODO: ")
//	end)
//
//	barcode.bind("f5", function()
//	    local x, y = barcode.cursor()
//	    barcode.message("line " .. y .. " of " .. barcode.line_count())
//	end)
//
// Positions seen by scripts are 1-based, as usual in Lua.
//
// Every call into Lua runs under a context with a deadline, so a runaway
// script is stopped instead of freezing the editor.
package lua
