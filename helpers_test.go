package genlower_test

import "github.com/suspendlang/genlower/internal/debugcontext"

func fixedLoc() debugcontext.Location {
	return debugcontext.Loc("test.gen", 1, 0)
}
