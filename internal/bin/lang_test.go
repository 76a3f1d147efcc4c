package bin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLang(t *testing.T) {
	tests := []struct {
		name    string
		syms    []string
		imports []string
		libs    []string
		info    string
		want    Lang
	}{
		{"plain c", []string{"main", "_start"}, []string{"puts"}, nil, "", LangC},
		{"cxx", []string{"_Z3foov"}, nil, nil, "", LangCXX},
		{"cxx lib", nil, nil, []string{"libstdc++.so.6"}, "", LangCXX},
		{"rust", []string{"_ZN4core3fmt5write17h0123456789abcdefE"}, nil, nil, "", LangRust},
		{"rust runtime", nil, []string{"__rust_alloc"}, nil, "", LangRust},
		{"objc", nil, []string{"objc_msgSend"}, nil, "", LangObjC},
		{"objc class", []string{"_OBJC_CLASS_$_NSObject"}, nil, nil, "", LangObjC},
		{"swift", nil, []string{"swift_once"}, nil, "", LangSwift},
		{"swift lib", nil, nil, []string{"/usr/lib/swift/libswiftCore.dylib"}, "", LangSwift},
		{"go", []string{"runtime.main", "main.main"}, nil, nil, "", LangGo},
		{"dlang", []string{"_Dmain"}, nil, nil, "", LangDlang},
		{"msvc", []string{"??0Foo@@QAE@XZ"}, nil, nil, "", LangMSVC},
		{"java", []string{"Java_com_example_Foo_bar"}, nil, nil, "", LangJava},
		{"kotlin", []string{"kfun:main"}, nil, nil, "", LangKotlin},
		{"plt prefix", nil, []string{"imp.objc_msgSend"}, nil, "", LangObjC},
		{"reported", []string{"_Z3foov"}, nil, nil, "rust", LangRust},
		{"reported unknown", []string{"_Z3foov"}, nil, nil, "cobol", LangCXX},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Object{Libs: tt.libs}
			for _, n := range tt.syms {
				o.Symbols = append(o.Symbols, &Symbol{Name: n})
			}
			for _, n := range tt.imports {
				o.Imports = append(o.Imports, &Import{Name: n})
			}
			if tt.info != "" {
				o.Info = &Info{Lang: tt.info}
			}
			assert.Equal(t, tt.want, DetectLang(o))
		})
	}
}

func TestLangString(t *testing.T) {
	assert.Equal(t, "c++", LangCXX.String())
	assert.Equal(t, "unknown", Lang(99).String())
	assert.Equal(t, LangCXX, ParseLang("cxx"))
	assert.Equal(t, LangSwift, ParseLang(" Swift "))
	assert.Equal(t, LangUnknown, ParseLang("cobol"))
}
