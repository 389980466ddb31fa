package parser

import (
	"cmakefmt/internal/diag"
	"cmakefmt/internal/source"
)

// count учитывает диагностику и сообщает, можно ли её ещё отправить.
func (p *Parser) count(sev diag.Severity) bool {
	if p.opts.Reporter == nil {
		return false // нет reporter - ничего не записали
	}
	if sev == diag.SevError {
		if p.opts.Enough() {
			return false // достигли максимального количества ошибок
		}
		p.opts.CurrentErrors++
	}
	return true
}

// репортует диагностику и передает спан
func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	if !p.count(sev) {
		return false
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil)
	return true
}
