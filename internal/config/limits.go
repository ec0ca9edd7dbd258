package config

const (
	MaxQuestionChars = 1000
	MaxValueChars    = 10000
	MaxExamples      = 10
	MaxExampleChars  = 1000
	MaxFormBytes     = 2 << 20  // 2MB per form document
	MaxExportBytes   = 20 << 20 // 20MB for export-pdf (image answers inline)
)
