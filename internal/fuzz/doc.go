// Package fuzztests houses Go fuzz harnesses for the comment stripper, the
// tokenizer and the three analyzers. They guard against panics and check
// result invariants on arbitrary input.
//
// Назначение: прогонять произвольные байты через все стадии анализа.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
