package bin

import "strings"

// Lang is the source language an object was most likely compiled from.
type Lang int

const (
	LangUnknown Lang = iota
	LangC
	LangCXX
	LangObjC
	LangSwift
	LangRust
	LangGo
	LangDlang
	LangMSVC
	LangJava
	LangKotlin
)

var langNames = map[Lang]string{
	LangUnknown: "unknown",
	LangC:       "c",
	LangCXX:     "c++",
	LangObjC:    "objc",
	LangSwift:   "swift",
	LangRust:    "rust",
	LangGo:      "go",
	LangDlang:   "dlang",
	LangMSVC:    "msvc",
	LangJava:    "java",
	LangKotlin:  "kotlin",
}

func (l Lang) String() string {
	if s, ok := langNames[l]; ok {
		return s
	}
	return "unknown"
}

// ParseLang maps a language name back to its Lang.
func ParseLang(s string) Lang {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "cxx", "cpp":
		return LangCXX
	case "d":
		return LangDlang
	}
	for l, name := range langNames {
		if name == s {
			return l
		}
	}
	return LangUnknown
}

// isSwift reports whether o links the Swift runtime.
func isSwift(o *Object) bool {
	for _, s := range o.Symbols {
		if strings.Contains(s.Name, "swift_once") {
			return true
		}
	}
	for _, i := range o.Imports {
		if strings.Contains(i.Name, "swift_once") {
			return true
		}
	}
	for _, lib := range o.Libs {
		if strings.Contains(lib, "libswiftCore") {
			return true
		}
	}
	return false
}

// DetectLang guesses o's source language from its symbol, import and
// library names. A language the plugin reported in Info wins.
func DetectLang(o *Object) Lang {
	if o.Info != nil && o.Info.Lang != "" {
		if l := ParseLang(o.Info.Lang); l != LangUnknown {
			return l
		}
	}
	if isSwift(o) {
		return LangSwift
	}

	names := make([]string, 0, len(o.Symbols)+len(o.Imports))
	for _, s := range o.Symbols {
		names = append(names, s.Name)
	}
	for _, i := range o.Imports {
		names = append(names, i.Name)
	}

	var objc, rust, golang, dlang, msvc, cxx, java, kotlin bool
	for _, n := range names {
		n = strings.TrimPrefix(n, "imp.")
		switch {
		case strings.HasPrefix(n, "_OBJC_CLASS_$"), strings.HasPrefix(n, "objc_msgSend"),
			strings.HasPrefix(n, "_objc_msgSend"):
			objc = true
		case strings.Contains(n, "rust_begin_unwind"), strings.Contains(n, "__rust_alloc"),
			strings.HasPrefix(n, "_ZN") && strings.Contains(n, "17h") && strings.HasSuffix(n, "E"):
			rust = true
		case n == "runtime.main", n == "main.main", strings.HasPrefix(n, "go.buildid"),
			strings.HasPrefix(n, "go:buildid"):
			golang = true
		case n == "_Dmain", strings.HasPrefix(n, "_D2rt"):
			dlang = true
		case strings.HasPrefix(n, "??"), strings.HasPrefix(n, "?") && strings.Contains(n, "@@"):
			msvc = true
		case strings.HasPrefix(n, "Java_"), strings.HasPrefix(n, "JNI_OnLoad"):
			java = true
		case strings.HasPrefix(n, "kfun:"), strings.HasPrefix(n, "Kotlin_"):
			kotlin = true
		case strings.HasPrefix(n, "_Z"), strings.HasPrefix(n, "__Z"):
			cxx = true
		}
	}
	for _, lib := range o.Libs {
		switch {
		case strings.Contains(lib, "libobjc"):
			objc = true
		case strings.Contains(lib, "libstdc++"), strings.Contains(lib, "libc++"):
			cxx = true
		}
	}

	switch {
	case objc:
		return LangObjC
	case rust:
		return LangRust
	case golang:
		return LangGo
	case dlang:
		return LangDlang
	case kotlin:
		return LangKotlin
	case java:
		return LangJava
	case msvc:
		return LangMSVC
	case cxx:
		return LangCXX
	}
	return LangC
}
