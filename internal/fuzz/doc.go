// Package fuzztests houses Go fuzz harnesses that exercise the cmakefmt
// pipeline (source -> lexer -> parser -> formatter). Its goal is to smoke
// test robustness and the round-trip guarantees on arbitrary inputs.
//
// Назначение: запускать fuzz-обработчики, которые загружают байты в FileSet и
// прогоняют их через лексер/парсер/форматтер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/parser, internal/diag,
// internal/format, internal/testkit.

package fuzztests
