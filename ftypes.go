package main

// Supported language profiles: file matchers, keyword tables and comment
// markers used by the syntax highlighter.

import (
	"path/filepath"
	"strings"
)

// Profile flags.
const (
	HighlightNumbers = 1 << 0
	HighlightStrings = 1 << 1
)

// Profile describes how to highlight one language. Profiles are static and
// never mutated once built.
type Profile struct {
	Name              string   // Display name shown in the status bar.
	FileMatch         []string // Extensions (".c") or filename fragments ("Makefile").
	Languages         []string // Language names as reported by detection (see detect.go).
	Keywords          []string // Keyword table; "|" suffix is class 2, "$" suffix is class 3.
	SingleLineComment string   // e.g. "//".
	MultiLineStart    string   // e.g. "/*".
	MultiLineEnd      string   // e.g. "*/".
	Flags             int      // HighlightNumbers | HighlightStrings.

	keywords []keyword // Parsed Keywords, in table order.
}

// newProfile parses the keyword table of p.
func newProfile(p Profile) *Profile {
	p.keywords = make([]keyword, 0, len(p.Keywords))
	for _, entry := range p.Keywords {
		p.keywords = append(p.keywords, parseKeyword(entry))
	}
	return &p
}

// profiles is the list of all built-in language profiles.
var profiles = []*Profile{
	newProfile(Profile{
		Name:      "C",
		FileMatch: []string{".c", ".h", ".cpp", ".hpp"},
		Languages: []string{"C", "C++"},
		Keywords: []string{
			"switch", "free", "if", "while", "for", "break", "continue", "return", "else", "sizeof", "default", "do", "extern",
			"typedef", "static", "enum", "case", "template", "operator", "goto", "system",

			"class$", "struct$", "union$",

			"#define|", "#include|", "#if|", "#ifdef|", "#ifndef|", "#else|", "#endif|", "#undef|", "#pragma|", "#error|", "#line|",

			"int|", "long|", "double|", "const|", "float|", "char|", "unsigned|", "signed|", "auto|", "short|",
			"void|", "time_t|", "size_t|", "ssize_t|", "NULL|", "erow",
		},
		SingleLineComment: "//",
		MultiLineStart:    "/*",
		MultiLineEnd:      "*/",
		Flags:             HighlightNumbers | HighlightStrings,
	}),
	newProfile(Profile{
		Name:      "Python",
		FileMatch: []string{".py", ".by", ".pyw"},
		Languages: []string{"Python"},
		Keywords: []string{
			"False|", "None|", "True|", "and|", "as|", "assert|", "async|", "await|", "break|",
			"class|", "continue|", "def|", "del|", "elif|", "else|", "except|", "finally|",
			"for|", "from|", "global|", "if|", "import|", "in|", "is|", "lambda|", "nonlocal|",
			"not|", "or|", "pass|", "raise|", "return|", "try|", "while|", "with|", "yield|",

			"abs", "all", "any", "ascii", "bin", "bool", "bytearray", "bytes", "callable", "chr", "classmethod",
			"compile", "complex", "delattr", "dict", "dir", "divmod", "enumerate", "eval", "exec", "filter",
			"float", "format", "frozenset", "getattr", "globals", "hasattr", "hash", "help", "hex", "id", "input",
			"int", "isinstance", "issubclass", "iter", "len", "list", "locals", "map", "max", "memoryview", "min",
			"next", "object", "oct", "open", "ord", "pow", "print", "property", "range", "repr", "reversed", "round",
			"set", "setattr", "slice", "sorted", "staticmethod", "str", "sum", "super", "tuple", "type", "vars", "zip",
		},
		SingleLineComment: "#",
		MultiLineStart:    "'''",
		MultiLineEnd:      "'''",
		Flags:             HighlightNumbers | HighlightStrings,
	}),
	newProfile(Profile{
		Name:      "Assembly",
		FileMatch: []string{".asm", ".s"},
		Languages: []string{"Assembly", "Unix Assembly"},
		Keywords: []string{
			// Registers
			"al$", "ah$", "bl$", "bh$", "cl$", "ch$", "dl$", "dh$",
			"sil$", "dil$", "bpl$", "spl$", "r8b$", "r9b$", "r10b$", "r11b$", "r12b$", "r13b$", "r14b$", "r15b$",
			"ax$", "bx$", "cx$", "dx$", "si$", "di$", "bp$", "sp$", "r8w$", "r9w$", "r10w$", "r11w$", "r12w$", "r13w$", "r14w$", "r15w$",
			"eax$", "ebx$", "ecx$", "edx$", "esi$", "edi$", "ebp$", "esp$", "r8d$", "r9d$", "r10d$", "r11d$", "r12d$", "r13d$", "r14d$", "r15d$",
			"rax$", "rbx$", "rcx$", "rdx$", "rsi$", "rdi$", "rbp$", "rsp$", "r8$", "r9$", "r10$", "r11$", "r12$", "r13$", "r14$", "r15$",
			"mm0$", "mm1$", "mm2$", "mm3$", "mm4$", "mm5$", "mm6$", "mm7$",
			"xmm0$", "xmm1$", "xmm2$", "xmm3$", "xmm4$", "xmm5$", "xmm6$", "xmm7$", "xmm8$", "xmm9$", "xmm10$", "xmm11$", "xmm12$", "xmm13$", "xmm14$", "xmm15$",
			"ymm0$", "ymm1$", "ymm2$", "ymm3$", "ymm4$", "ymm5$", "ymm6$", "ymm7$", "ymm8$", "ymm9$", "ymm10$", "ymm11$", "ymm12$", "ymm13$", "ymm14$", "ymm15$",
			"zmm0$", "zmm1$", "zmm2$", "zmm3$", "zmm4$", "zmm5$", "zmm6$", "zmm7$", "zmm8$", "zmm9$", "zmm10$", "zmm11$", "zmm12$", "zmm13$", "zmm14$", "zmm15$",
			"k0$", "k1$", "k2$", "k3$", "k4$", "k5$", "k6$", "k7$",
			"st0$", "st1$", "st2$", "st3$", "st4$", "st5$", "st6$", "st7$",
			"cr0$", "cr2$", "cr3$", "cr4$", "cr8$",
			"dr0$", "dr1$", "dr2$", "dr3$", "dr6$", "dr7$",
			"cs$", "ds$", "es$", "fs$", "gs$", "ss$",
			"rip$", "eflags$",

			// Instructions
			"mov|", "add|", "sub|", "mul|", "imul|", "div|", "idiv|", "inc|", "dec|",
			"and|", "or|", "xor|", "not|", "neg|", "shl|", "shr|", "sal|", "sar|", "rol|", "ror|",
			"cmp|", "test|", "jmp|", "je|", "jne|", "jg|", "jge|", "jl|", "jle|", "ja|", "jae|", "jb|", "jbe|",
			"call|", "ret|", "push|", "pop|", "lea|",
			"nop|", "hlt|", "int|", "syscall|", "sysret|",
			"cmovz|", "cmovnz|", "cmovg|", "cmovge|", "cmovl|", "cmovle|",
			"sete|", "setne|", "setg|", "setge|", "setl|", "setle|",
			"movzx|", "movsx|", "movaps|", "movups|", "movdqu|", "movdqa|",
			"addps|", "subps|", "mulps|", "divps|", "sqrtps|",
			"addpd|", "subpd|", "mulpd|", "divpd|", "sqrtpd|",
			"pand|", "por|", "pxor|", "pandn|", "pslld|", "psrld|", "psrad|",
			"prefetchnta|", "prefetcht0|", "prefetcht1|", "prefetcht2|",
			"cvtsi2sd|", "cvtsi2ss|", "cvtss2sd|", "cvtsd2ss|",
			"cvtdq2ps|", "cvtps2dq|", "cvttps2dq|",
			"movq|", "movhpd|", "movlpd|",
			"rdtsc|", "rdmsr|", "wrmsr|",
			"lfence|", "sfence|", "mfence|",
			"clflush|", "clflushopt|", "xchg|", "xadd|", "lock|",
			"bt|", "bts|", "btr|", "btc|",
			"test|", "popcnt|", "bsf|", "bsr|",
			"paddb|", "paddw|", "paddd|", "paddq|", "pmuludq|", "psubb|", "psubw|", "psubd|", "psubq|",
			"pause|", "crc32|", "rdrand|", "rdseed|",

			// Directives
			"entry", "global", "extern", "section", "segment", "org", "align", "db", "dw", "dd", "dq", "rb", "rw", "rd", "rq",
			"resb", "resw", "resd", "resq",
			"equ", "times", "struc", "endstruc", "macro", "endm", "repeat", "endrepeat", "while", "endw",
			"if", "else", "elif", "endif", "define", "undef", "include", "incbin",
			"import", "export", "stdcall", "fastcall", "cdecl",
			"end", "use16", "use32", "use64",
			"label", "default", "dup",
			"flat", "public", "virtual", "common",
			"int3", "sysenter", "sysexit", "iretq", "iret",
			"bits", "org", "cpu", "model",
			"proc", "endp", "data", "code",
			"macro", "local", "ends", "group",
			"format", "call", "jmp", "ret", "start",
		},
		SingleLineComment: ";",
		MultiLineStart:    ";",
		MultiLineEnd:      ";",
		Flags:             HighlightNumbers | HighlightStrings,
	}),
}

// matchProfile selects the profile for filename by its extension or, for
// matchers that are not extensions, by a fragment of the name.
func matchProfile(filename string) *Profile {
	if filename == "" {
		return nil
	}
	ext := filepath.Ext(filename)
	for _, p := range profiles {
		for _, m := range p.FileMatch {
			isExt := strings.HasPrefix(m, ".")
			if (isExt && ext != "" && ext == m) || (!isExt && strings.Contains(filename, m)) {
				return p
			}
		}
	}
	return nil
}

// profileByLanguage returns the profile serving a detected language name.
func profileByLanguage(language string) *Profile {
	if language == "" {
		return nil
	}
	for _, p := range profiles {
		for _, l := range p.Languages {
			if strings.EqualFold(l, language) {
				return p
			}
		}
	}
	return nil
}
