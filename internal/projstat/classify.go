package projstat

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// LineKind discriminates what kind of declaration a line starts with.
type LineKind int

const (
	// KindNone means the line starts no recognized declaration.
	KindNone LineKind = iota
	// KindFunction means the line starts a function-like declaration.
	KindFunction
	// KindClass means the line starts a class-like declaration.
	KindClass
)

// LineClass is the classification of a single source line.
type LineClass struct {
	// Kind is the detected declaration kind.
	Kind LineKind
	// Name is the captured identifier (empty for KindNone).
	Name string
}

// Heuristic line-anchored declaration patterns. These are deliberately not a
// parser: they only look at the start of a single line.
var (
	// function MyFunc(
	funcRe = regexp.MustCompile(`^\s*function\s+(\w+)\s*\(`)
	// export const MyFunc = (...) =>, optionally with a type annotation
	arrowRe = regexp.MustCompile(`^\s*(?:export\s+)?(?:const|let|var)\s+(\w+)\s*(?::[^={]+)?=\s*\(.*\)\s*=>`)
	// export class MyClass
	classRe = regexp.MustCompile(`^\s*(?:export\s+)?class\s+(\w+)`)
)

// ClassifyLine matches a line against the declaration patterns and returns
// its classification. Function patterns take precedence over class patterns.
func ClassifyLine(line string) LineClass {
	if m := funcRe.FindStringSubmatch(line); m != nil {
		return LineClass{Kind: KindFunction, Name: m[1]}
	}

	if m := arrowRe.FindStringSubmatch(line); m != nil {
		return LineClass{Kind: KindFunction, Name: m[1]}
	}

	if m := classRe.FindStringSubmatch(line); m != nil {
		return LineClass{Kind: KindClass, Name: m[1]}
	}

	return LineClass{Kind: KindNone}
}

// IsComponent reports whether the captured identifier follows the
// uppercase-first component naming convention.
func (lc LineClass) IsComponent() bool {
	if lc.Kind == KindNone || lc.Name == "" {
		return false
	}

	r, _ := utf8.DecodeRuneInString(lc.Name)

	return unicode.IsUpper(r)
}
