// Package scraper compiles and refreshes Lua adapter scripts.
package scraper

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/anisan-cli/streamkit/filesystem"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

var bytecodeCache sync.Map

// protoKey ties a compiled prototype to the script's path and modification time.
func protoKey(scriptPath string) (string, error) {
	info, err := filesystem.API().Stat(scriptPath)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s@%d", scriptPath, info.ModTime().UnixNano()), nil
}

// PreCompileAndLoad executes a Lua script within the provided LState, utilizing a bytecode cache to minimize compilation overhead.
func PreCompileAndLoad(L *lua.LState, scriptPath string) error {
	key, err := protoKey(scriptPath)
	if err != nil {
		return err
	}

	if cachedProto, exists := bytecodeCache.Load(key); exists {
		fn := L.NewFunctionFromProto(cachedProto.(*lua.FunctionProto))
		L.Push(fn)
		return L.PCall(0, lua.MultRet, nil)
	}

	proto, err := Compile(scriptPath)
	if err != nil {
		return err
	}

	bytecodeCache.Store(key, proto)

	fn := L.NewFunctionFromProto(proto)
	L.Push(fn)
	return L.PCall(0, lua.MultRet, nil)
}

// Compile parses and compiles the script at scriptPath without running it.
func Compile(scriptPath string) (*lua.FunctionProto, error) {
	content, err := filesystem.API().ReadFile(scriptPath)
	if err != nil {
		return nil, err
	}

	chunk, err := parse.Parse(bytes.NewReader(content), scriptPath)
	if err != nil {
		return nil, err
	}

	return lua.Compile(chunk, scriptPath)
}

// Invalidate drops every compiled prototype of scriptPath.
func Invalidate(scriptPath string) {
	prefix := scriptPath + "@"
	bytecodeCache.Range(func(k, _ any) bool {
		if strings.HasPrefix(k.(string), prefix) {
			bytecodeCache.Delete(k)
		}
		return true
	})
}
