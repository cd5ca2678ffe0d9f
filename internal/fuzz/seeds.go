package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB: ограничение для тестового корпуса
)

var languageSeeds = []string{
	"int a = 5;\ndouble b = 2.5;\nboolean c = true;",
	"// int a;\nint b;",
	"/* block\ncomment */ int a;",
	"int a = 5\nint b == 6;\nint = ;",
	"String s = \"a // not a comment\";",
	"char c = '\\n';",
	"int a, b = 1, c;",
	"int a,;",
	"int a = 1;\nint a = 2;",
	"int y = z + 1;",
	"double d = -1.5e-3 * (2 + 3);",
	"String s = \"x\" + 1 + 'c';",
	"long l = 2.5;",
	"boolean b = !true && (1 < 2);",
	"List<String> xs;",
	"static int a = 5;",
	"print(x);",
	"   \n\t\n",
	"",
	"int a = \"unterminated;\nint b;",
	"int a = ((1);",
	"int é = 1;",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все исходники примеров
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".java", ".decl":
		default:
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
