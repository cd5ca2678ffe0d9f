package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32 // просто ID источника
	// FileFlags encodes metadata about a source file.
	FileFlags uint8 // метаданные
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска (тест, stdin)
	FileHadBOM
	FileNormalizedCRLF
	FileNormalizedNFC
)

// File captures metadata and content for a single source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // offsets of '\n'
	Hash    [32]byte
	Flags   FileFlags
}

// Line is one physical line of a snippet.
// Blank lines are kept so that Num always matches the editor's numbering.
type Line struct {
	Num  uint32 // 1-based
	Raw  string // без '\n' и завершающего '\r'
	Text string // Raw без пробелов по краям
}

// Blank reports whether the line has nothing but whitespace.
func (l Line) Blank() bool { return l.Text == "" }
